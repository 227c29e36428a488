package config

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

type Configuration struct {
	ApiPort string `json:"api_port"`
	LogPath string `json:"log_path"`

	Database string `json:"database"` // "sqlite3" ou "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	Redis struct {
		Addr       string `json:"addr"`
		Password   string `json:"password"`
		DB         int    `json:"db"`
		TTLSeconds int    `json:"ttl_seconds"`
	} `json:"redis"`

	Avisa struct {
		BaseURL        string `json:"base_url"`
		Token          string `json:"token"`
		TimeoutSeconds int    `json:"timeout_seconds"`
	} `json:"avisa"`

	Security struct {
		// ApiKey autentica chamadores internos confiáveis (N8N, cron externo).
		ApiKey string `json:"api_key"`
	} `json:"security"`

	Notifications struct {
		SweepCron           string `json:"sweep_cron"`            // expressão cron do sweep, ex: "* * * * *"
		ClaimTimeoutSeconds int    `json:"claim_timeout_seconds"` // janela para re-claim de linhas SENDING órfãs
		BatchSize           int    `json:"batch_size"`
	} `json:"notifications"`

	Plans struct {
		RefreshMinutes int `json:"refresh_minutes"` // recarga periódica do registry de planos
	} `json:"plans"`
}

func Get(path string) Configuration {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	var c Configuration
	if err := json.Unmarshal(b, &c); err != nil {
		log.Fatal(err)
	}

	// defaults (pra evitar nil/zero chato)
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.Redis.TTLSeconds <= 0 {
		c.Redis.TTLSeconds = 300
	}
	if c.Avisa.BaseURL == "" {
		c.Avisa.BaseURL = "https://api.avisaapp.com.br"
	}
	if c.Avisa.TimeoutSeconds <= 0 {
		c.Avisa.TimeoutSeconds = 30
	}
	if c.Notifications.SweepCron == "" {
		c.Notifications.SweepCron = "* * * * *"
	}
	if c.Notifications.ClaimTimeoutSeconds <= 0 {
		c.Notifications.ClaimTimeoutSeconds = 300
	}
	if c.Notifications.BatchSize <= 0 {
		c.Notifications.BatchSize = 100
	}
	if c.Plans.RefreshMinutes <= 0 {
		c.Plans.RefreshMinutes = 15
	}

	return c
}

// ClaimTimeout devolve a janela de re-claim como duração.
func (c Configuration) ClaimTimeout() time.Duration {
	return time.Duration(c.Notifications.ClaimTimeoutSeconds) * time.Second
}

// RedisTTL devolve o TTL do cache como duração.
func (c Configuration) RedisTTL() time.Duration {
	return time.Duration(c.Redis.TTLSeconds) * time.Second
}

// AvisaTimeout devolve o timeout das chamadas ao Avisa como duração.
func (c Configuration) AvisaTimeout() time.Duration {
	return time.Duration(c.Avisa.TimeoutSeconds) * time.Second
}

// PlansRefreshInterval devolve o intervalo de recarga do registry de planos.
func (c Configuration) PlansRefreshInterval() time.Duration {
	return time.Duration(c.Plans.RefreshMinutes) * time.Minute
}
