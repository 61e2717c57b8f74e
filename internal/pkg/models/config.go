package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	Provider  ProviderConfig
	Reconcile ReconcileConfig
	Crypto    CryptoConfig
	APIKey    APIKeyConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// ProviderConfig contains ACHQ provider API configuration
type ProviderConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
	MaxRetries     int
}

// ReconcileConfig controls the reconciliation and submission sweeps
type ReconcileConfig struct {
	CronSpec       string // cron expression for the reconciliation run
	SubmitCronSpec string // cron expression for the due-schedule submission sweep
	WorkerCount    int    // bounded worker pool size per reconciliation run
	LockTTLSeconds int    // TTL for the per-schedule submission lock
}

// CryptoConfig contains bank detail encryption configuration
type CryptoConfig struct {
	Passphrase string
	Salt       string
}

// APIKeyConfig stores API keys for service-to-service authentication
type APIKeyConfig struct {
	OpsKey string
}

// NewRelicConfig contains New Relic observability configuration
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
