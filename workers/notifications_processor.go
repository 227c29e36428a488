package workers

import (
	"context"
	"log"

	"brazyl/services"

	"github.com/robfig/cron/v3"
)

// StartNotificationsProcessor agenda o sweep de notificações pendentes na
// expressão cron configurada (padrão: a cada minuto). O claim atômico dentro do
// service garante despacho único mesmo com passes sobrepostos ou múltiplas
// réplicas do processo.
func StartNotificationsProcessor(svc *services.NotificationService, cronSpec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(cronSpec, func() {
		processed, err := svc.ProcessPending(context.Background())
		if err != nil {
			log.Printf("notifications worker: erro no sweep: %v", err)
			return
		}
		if processed > 0 {
			log.Printf("notifications worker: %d notificações enviadas", processed)
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
