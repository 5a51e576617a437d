package config

import (
	"fmt"
	"time"
)

const defaultLowStockThreshold = 5

type Notifications struct {
	RabbitMQURL       string
	LowStockThreshold int
	ShutdownTimeout   time.Duration
}

func LoadNotifications() (Notifications, error) {
	threshold, err := getEnvInt("LOW_STOCK_THRESHOLD", defaultLowStockThreshold)
	if err != nil {
		return Notifications{}, err
	}

	cfg := Notifications{
		RabbitMQURL:       getEnv("RABBITMQ_URL", ""),
		LowStockThreshold: threshold,
		ShutdownTimeout:   defaultShutdownTimeout,
	}

	if cfg.RabbitMQURL == "" {
		return Notifications{}, fmt.Errorf("RABBITMQ_URL is required")
	}

	return cfg, nil
}
