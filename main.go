package main

import (
	"context"
	"flag"
	"log"

	"brazyl/cache"
	"brazyl/config"
	"brazyl/controllers"
	dbpkg "brazyl/db"
	"brazyl/router"
	"brazyl/services"
	"brazyl/tools"
	"brazyl/workers"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env é opcional (dev); em produção as variáveis vêm do ambiente.
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.json", "caminho do arquivo de configuração")
	flag.Parse()

	cfg := config.Get(*configPath)
	dbpkg.SetConfigurations(cfg)

	database, err := dbpkg.Connect()
	if err != nil {
		log.Fatalf("erro ao conectar no banco: %v", err)
	}
	defer database.Close()

	dbpkg.AutoMigrate(database)
	if err := dbpkg.SeedPlans(database); err != nil {
		log.Fatalf("erro no seed dos planos: %v", err)
	}

	redisCache := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.RedisTTL())
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Printf("redis indisponível, seguindo sem cache: %v", err)
		redisCache = nil
	}

	planRegistry := services.NewPlanRegistry(database, cfg.PlansRefreshInterval())
	if err := planRegistry.Load(); err != nil {
		log.Fatalf("erro ao carregar registry de planos: %v", err)
	}
	planRegistry.StartRefresh()
	defer planRegistry.Stop()

	messenger := tools.NewAvisaClient(cfg.Avisa.BaseURL, cfg.Avisa.Token, cfg.AvisaTimeout())

	followSvc := services.NewFollowService(database)
	notificationSvc := services.NewNotificationService(
		database,
		messenger,
		cfg.ClaimTimeout(),
		cfg.Notifications.BatchSize,
	)

	sweeper, err := workers.StartNotificationsProcessor(notificationSvc, cfg.Notifications.SweepCron)
	if err != nil {
		log.Fatalf("erro ao agendar sweep de notificações: %v", err)
	}
	defer sweeper.Stop()

	controllers.Setup(cfg, followSvc, notificationSvc, planRegistry, redisCache)

	r := gin.Default()
	r.Use(dbpkg.SetDBtoContext(database))
	router.Initialize(r, cfg)

	log.Printf("Brazyl API listening on :%s", cfg.ApiPort)
	if err := r.Run(":" + cfg.ApiPort); err != nil {
		log.Fatal(err)
	}
}
