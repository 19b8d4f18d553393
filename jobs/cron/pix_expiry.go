package cron

import (
	"encoding/json"
	"time"

	"github.com/jasonlvhit/gocron"

	"github.com/betconta/betconta/config"
	"github.com/betconta/betconta/mq_client"
	"github.com/betconta/betconta/services/pix_service"
)

type PixExpiryJob struct {
}

func (j *PixExpiryJob) Process() {
	s := gocron.NewScheduler()
	s.Every(5).Minutes().Do(sweepPixKeys)
	<-s.Start()
}

func sweepPixKeys() {
	registry := pix_service.NewRegistry(pix_service.NewGormStore(config.DataBase))

	started := time.Now()

	closed, err := registry.Sweep(started)
	if err != nil {
		config.Logger.Errorf("pix sweep failed: %v", err)
		return
	}

	config.Logger.Infof("pix sweep closed %d expired keys", closed)

	if closed > 0 {
		payload, _ := json.Marshal(map[string]interface{}{"closed": closed, "swept_at": started})
		mq_client.Enqueue("pix_sweep", payload)
	}

	config.InfluxDB.NewPoint(
		"pix_sweep",
		map[string]string{},
		map[string]interface{}{
			"closed":      closed,
			"duration_ms": time.Since(started).Milliseconds(),
		},
	)
}
