package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		PaymentExpiryInterval     time.Duration
		HoldExpiryInterval        time.Duration
		CapacityReconcileInterval time.Duration
		StatusBackfillInterval    time.Duration

		PaymentExpiryBatch  int64
		HoldExpiryBatch     int64
		StatusBackfillChunk int64
	}

	HTTPServer struct {
		Port         string
		PprofEnabled bool
		PprofPort    string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Kafka struct {
		Brokers string
		Topic   string
		Sarama  Sarama
	}

	Sarama struct {
		Version string
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	paymentExpiryInterval, err := osGetEnvDuration("BACKGROUND_PAYMENT_EXPIRY_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	holdExpiryInterval, err := osGetEnvDuration("BACKGROUND_HOLD_EXPIRY_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	capacityReconcileInterval, err := osGetEnvDuration("BACKGROUND_CAPACITY_RECONCILE_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	statusBackfillInterval, err := osGetEnvDuration("BACKGROUND_STATUS_BACKFILL_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	paymentExpiryBatch, err := osGetInt("BACKGROUND_PAYMENT_EXPIRY_BATCH")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	holdExpiryBatch, err := osGetInt("BACKGROUND_HOLD_EXPIRY_BATCH")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	statusBackfillChunk, err := osGetInt("BACKGROUND_STATUS_BACKFILL_CHUNK")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			PaymentExpiryInterval:     paymentExpiryInterval,
			HoldExpiryInterval:        holdExpiryInterval,
			CapacityReconcileInterval: capacityReconcileInterval,
			StatusBackfillInterval:    statusBackfillInterval,
			PaymentExpiryBatch:        int64(paymentExpiryBatch),
			HoldExpiryBatch:           int64(holdExpiryBatch),
			StatusBackfillChunk:       int64(statusBackfillChunk),
		},
		Server: HTTPServer{
			Port:         os.Getenv("PORT"),
			PprofEnabled: pprofEnabled,
			PprofPort:    os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Kafka: Kafka{
			Brokers: os.Getenv("KAFKA_BROKERS"),
			Topic:   os.Getenv("KAFKA_TOPIC"),
			Sarama: Sarama{
				Version: os.Getenv("KAFKA_SARAMA_VERSION"),
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.PaymentExpiryInterval == time.Duration(0) {
		return errors.New("BACKGROUND_PAYMENT_EXPIRY_INTERVAL is required")
	}
	if cfg.Tasks.HoldExpiryInterval == time.Duration(0) {
		return errors.New("BACKGROUND_HOLD_EXPIRY_INTERVAL is required")
	}
	if cfg.Tasks.CapacityReconcileInterval == time.Duration(0) {
		return errors.New("BACKGROUND_CAPACITY_RECONCILE_INTERVAL is required")
	}
	if cfg.Tasks.StatusBackfillInterval == time.Duration(0) {
		return errors.New("BACKGROUND_STATUS_BACKFILL_INTERVAL is required")
	}
	if cfg.Tasks.PaymentExpiryBatch == 0 {
		return errors.New("BACKGROUND_PAYMENT_EXPIRY_BATCH is required")
	}
	if cfg.Tasks.HoldExpiryBatch == 0 {
		return errors.New("BACKGROUND_HOLD_EXPIRY_BATCH is required")
	}
	if cfg.Tasks.StatusBackfillChunk == 0 {
		return errors.New("BACKGROUND_STATUS_BACKFILL_CHUNK is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
