package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Demo
		PaymentReminders
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path     string
		LogLevel string // silent, error, warn or info
		SeedDemo bool   // Insert the two demo students into an empty store
	}
	Demo struct {
		Enabled bool // Block every write over HTTP
	}
	PaymentReminders struct {
		Enabled  bool
		Schedule string // Cron format: "0 8 * * *" = daily at 08:00
	}
)

// NewConfig reads the configuration from the environment, falling back to
// defaults for anything unset.
func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", DefaultHost)
	v.SetDefault("shutdown_timeout_in_seconds", DefaultShutdownTimeout)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_log_level", DefaultDatabaseLogLevel)
	v.SetDefault("seed_demo_data", true)

	// Demo mode defaults
	v.SetDefault("demo_mode", false)

	// Payment reminder defaults
	v.SetDefault("payment_reminders_enabled", false)
	v.SetDefault("payment_reminders_schedule", DefaultPaymentReminderCron)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path:     v.GetString("DATABASE_PATH"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
			SeedDemo: v.GetBool("SEED_DEMO_DATA"),
		},
		Demo: Demo{
			Enabled: v.GetBool("DEMO_MODE"),
		},
		PaymentReminders: PaymentReminders{
			Enabled:  v.GetBool("PAYMENT_REMINDERS_ENABLED"),
			Schedule: v.GetString("PAYMENT_REMINDERS_SCHEDULE"),
		},
	}
}
