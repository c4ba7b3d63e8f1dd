package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPPort          string
	LeadWindowDays    int
	SchedulerInterval time.Duration
	RetryAttempts     int
	RetryBackoff      time.Duration
	KafkaBrokers      []string
	AlertTopic        string
	OutboxPoll        time.Duration
	OutboxBatchSize   int
	OutboxMaxAttempts int
}

func Load() *Config {
	return &Config{
		HTTPPort:          getEnv("HTTP_PORT", "9000"),
		LeadWindowDays:    getEnvInt("ALERT_LEAD_WINDOW_DAYS", 7),
		SchedulerInterval: getEnvDuration("SCHEDULER_INTERVAL", time.Hour),
		RetryAttempts:     getEnvInt("STORE_RETRY_ATTEMPTS", 3),
		RetryBackoff:      getEnvDuration("STORE_RETRY_BACKOFF", 50*time.Millisecond),
		KafkaBrokers:      strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		AlertTopic:        getEnv("KAFKA_ALERT_TOPIC", "alertas_notificaciones"),
		OutboxPoll:        getEnvDuration("OUTBOX_POLL_INTERVAL", 2*time.Second),
		OutboxBatchSize:   getEnvInt("OUTBOX_BATCH_SIZE", 50),
		OutboxMaxAttempts: getEnvInt("OUTBOX_MAX_ATTEMPTS", 5),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
