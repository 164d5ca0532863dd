package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress       string
	DatabaseURI      string
	JWTSecret        string
	PickupLeadTime   time.Duration
	DeliveryLeadTime time.Duration
	ShutdownTimeout  time.Duration
}

const (
	defaultRunAddress       = ":8080"
	defaultJWTSecret        = "change-me-in-production"
	defaultPickupLeadTime   = 24 * time.Hour
	defaultDeliveryLeadTime = 72 * time.Hour
	defaultShutdownTimeout  = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:      getString(lookup, "DATABASE_URI", ""),
		JWTSecret:        getString(lookup, "JWT_SECRET", defaultJWTSecret),
		PickupLeadTime:   getDuration(lookup, "PICKUP_LEAD_TIME", defaultPickupLeadTime),
		DeliveryLeadTime: getDuration(lookup, "DELIVERY_LEAD_TIME", defaultDeliveryLeadTime),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("agron", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pickupLeadStr      = cfg.PickupLeadTime.String()
		deliveryLeadStr    = cfg.DeliveryLeadTime.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&pickupLeadStr, "pickup-lead", pickupLeadStr, "Offset added to now for estimated pickup on job acceptance")
	fs.StringVar(&deliveryLeadStr, "delivery-lead", deliveryLeadStr, "Offset added to now for estimated delivery on job acceptance")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.PickupLeadTime, err = time.ParseDuration(pickupLeadStr); err != nil {
		return nil, fmt.Errorf("invalid pickup lead time: %w", err)
	}

	if cfg.DeliveryLeadTime, err = time.ParseDuration(deliveryLeadStr); err != nil {
		return nil, fmt.Errorf("invalid delivery lead time: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.PickupLeadTime <= 0 {
		cfg.PickupLeadTime = defaultPickupLeadTime
	}

	if cfg.DeliveryLeadTime <= cfg.PickupLeadTime {
		cfg.DeliveryLeadTime = cfg.PickupLeadTime + defaultDeliveryLeadTime - defaultPickupLeadTime
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
