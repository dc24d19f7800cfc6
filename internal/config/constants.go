package config

// Default paths for databases
const (
	// DefaultDatabasePath is the default location of the office store file
	DefaultDatabasePath = "./reforco-escolar.db"
)

// Defaults for the optional features.
const (
	DefaultPort                = 8188
	DefaultHost                = "0.0.0.0"
	DefaultShutdownTimeout     = 2
	DefaultDatabaseLogLevel    = "warn"
	DefaultPaymentReminderCron = "0 8 * * *" // Daily at 08:00
)
