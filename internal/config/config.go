package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, storage backends,
// upstream providers and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"production" yaml:"environment"`
	// LogLevel overrides the environment default log level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`
	// Version is reported by the health endpoints
	Version string `env:"VERSION" env-default:"1.0.0" yaml:"version"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// It must stay above Generator.Timeout so the pipeline can report its own timeout.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists CORS origins; "*" allows any origin
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"smartdomain" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis configures the result cache. An empty Addr disables caching.
	Redis struct {
		Addr             string        `env:"REDIS_ADDR" env-default:"" yaml:"addr"`
		Password         string        `env:"REDIS_PASSWORD" env-default:"" yaml:"password"`
		DB               int           `env:"REDIS_DB" env-default:"0" yaml:"db"`
		PoolSize         int           `env:"REDIS_POOL_SIZE" env-default:"10" yaml:"poolSize"`
		DialTimeout      time.Duration `env:"REDIS_DIAL_TIMEOUT" env-default:"5s" yaml:"dialTimeout"`
		OperationTimeout time.Duration `env:"REDIS_OPERATION_TIMEOUT" env-default:"500ms" yaml:"operationTimeout"`
	} `yaml:"redis"`

	// JWT holds the RSA keys used for session tokens
	JWT struct {
		// PublicKey is the PEM encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key, only needed to issue tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// TTL is the lifetime of issued tokens
		TTL time.Duration `env:"JWT_TTL" env-default:"720h" yaml:"ttl"`
	} `yaml:"jwt"`

	// LLM selects and configures the completion provider
	LLM struct {
		// Provider is either gemini or bedrock
		Provider string `env:"LLM_PROVIDER" env-default:"gemini" yaml:"provider"`
		// APIKey authenticates against Gemini
		APIKey string `env:"LLM_API_KEY" yaml:"apiKey"`
		// Model overrides the provider default model
		Model string `env:"LLM_MODEL" env-default:"" yaml:"model"`
		// Region is the AWS region used by bedrock
		Region string `env:"LLM_REGION" env-default:"us-east-1" yaml:"region"`

		AnalysisTemperature float64 `env:"LLM_ANALYSIS_TEMPERATURE" env-default:"0.7" yaml:"analysisTemperature"`
		AnalysisMaxTokens   int     `env:"LLM_ANALYSIS_MAX_TOKENS" env-default:"800" yaml:"analysisMaxTokens"`
		NamingTemperature   float64 `env:"LLM_NAMING_TEMPERATURE" env-default:"0.9" yaml:"namingTemperature"`
		NamingMaxTokens     int     `env:"LLM_NAMING_MAX_TOKENS" env-default:"1000" yaml:"namingMaxTokens"`
	} `yaml:"llm"`

	// Registrar configures the domain availability API
	Registrar struct {
		APIKey    string `env:"REGISTRAR_API_KEY" yaml:"apiKey"`
		APISecret string `env:"REGISTRAR_API_SECRET" yaml:"apiSecret"`
		// BaseURL points at production or the OTE sandbox
		BaseURL string `env:"REGISTRAR_BASE_URL" env-default:"https://api.godaddy.com" yaml:"baseURL"`
		// RequestsPerMinute paces outbound calls
		RequestsPerMinute int           `env:"REGISTRAR_REQUESTS_PER_MINUTE" env-default:"60" yaml:"requestsPerMinute"`
		Timeout           time.Duration `env:"REGISTRAR_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"registrar"`

	// Generator configures the suggestion pipeline
	Generator struct {
		// Timeout bounds the whole pipeline
		Timeout   time.Duration `env:"GENERATOR_TIMEOUT" env-default:"20s" yaml:"timeout"`
		BatchSize int           `env:"GENERATOR_BATCH_SIZE" env-default:"5" yaml:"batchSize"`
		// DefaultTLDs are used when a request names none
		DefaultTLDs          []string      `env:"GENERATOR_DEFAULT_TLDS" env-default:".com,.io,.app" env-separator:"," yaml:"defaultTlds"` //nolint: lll
		DefaultSuggestions   int           `env:"GENERATOR_DEFAULT_SUGGESTIONS" env-default:"2" yaml:"defaultSuggestions"`
		GuestMaxSuggestions  int           `env:"GENERATOR_GUEST_MAX_SUGGESTIONS" env-default:"2" yaml:"guestMaxSuggestions"`
		UserMaxSuggestions   int           `env:"GENERATOR_USER_MAX_SUGGESTIONS" env-default:"4" yaml:"userMaxSuggestions"`
		MinDescriptionLength int           `env:"GENERATOR_MIN_DESCRIPTION_LENGTH" env-default:"5" yaml:"minDescriptionLength"`
		MaxDescriptionLength int           `env:"GENERATOR_MAX_DESCRIPTION_LENGTH" env-default:"500" yaml:"maxDescriptionLength"`
		AnalysisCacheTTL     time.Duration `env:"GENERATOR_ANALYSIS_CACHE_TTL" env-default:"1h" yaml:"analysisCacheTTL"`
		NamesCacheTTL        time.Duration `env:"GENERATOR_NAMES_CACHE_TTL" env-default:"1h" yaml:"namesCacheTTL"`
		DomainCacheTTL       time.Duration `env:"GENERATOR_DOMAIN_CACHE_TTL" env-default:"30m" yaml:"domainCacheTTL"`
	} `yaml:"generator"`

	// RateLimit configures request quotas of the generate endpoint
	RateLimit struct {
		GuestDailyPerIP      int `env:"RATE_LIMIT_GUEST_DAILY_PER_IP" env-default:"5" yaml:"guestDailyPerIP"`
		GuestDailyPerSession int `env:"RATE_LIMIT_GUEST_DAILY_PER_SESSION" env-default:"2" yaml:"guestDailyPerSession"`
		GuestPerMinute       int `env:"RATE_LIMIT_GUEST_PER_MINUTE" env-default:"2" yaml:"guestPerMinute"`
		UserDaily            int `env:"RATE_LIMIT_USER_DAILY" env-default:"10" yaml:"userDaily"`
		UserPerMinute        int `env:"RATE_LIMIT_USER_PER_MINUTE" env-default:"2" yaml:"userPerMinute"`
	} `yaml:"rateLimit"`

	// APIKeys configures the monthly request allowance per subscription plan.
	// A negative value means unlimited.
	APIKeys struct {
		FreeMonthly         int `env:"API_KEYS_FREE_MONTHLY" env-default:"0" yaml:"freeMonthly"`
		ProfessionalMonthly int `env:"API_KEYS_PROFESSIONAL_MONTHLY" env-default:"1000" yaml:"professionalMonthly"`
		EnterpriseMonthly   int `env:"API_KEYS_ENTERPRISE_MONTHLY" env-default:"-1" yaml:"enterpriseMonthly"`
	} `yaml:"apiKeys"`

	// Favorites configures saved domains
	Favorites struct {
		MaxPerUser   int `env:"FAVORITES_MAX_PER_USER" env-default:"100" yaml:"maxPerUser"`
		DefaultLimit int `env:"FAVORITES_DEFAULT_LIMIT" env-default:"20" yaml:"defaultLimit"`
		MaxLimit     int `env:"FAVORITES_MAX_LIMIT" env-default:"100" yaml:"maxLimit"`
	} `yaml:"favorites"`

	// History configures search history
	History struct {
		// DedupWindow skips recording a search repeated within this period
		DedupWindow  time.Duration `env:"HISTORY_DEDUP_WINDOW" env-default:"1h" yaml:"dedupWindow"`
		DefaultLimit int           `env:"HISTORY_DEFAULT_LIMIT" env-default:"50" yaml:"defaultLimit"`
		MaxLimit     int           `env:"HISTORY_MAX_LIMIT" env-default:"100" yaml:"maxLimit"`
	} `yaml:"history"`

	// Worker configures background jobs
	Worker struct {
		// MaxWorkers is the number of concurrent history jobs
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// MaxAttempts is the number of attempts for a history job
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// CleanupInterval is how often old bookkeeping rows are removed
		CleanupInterval time.Duration `env:"WORKER_CLEANUP_INTERVAL" env-default:"1h" yaml:"cleanupInterval"`
		// RateLimitRetention is the age after which rate limiting rows are removed
		RateLimitRetention time.Duration `env:"WORKER_RATE_LIMIT_RETENTION" env-default:"168h" yaml:"rateLimitRetention"`
		// UsageRetention is the age after which API key usage rows are removed
		UsageRetention time.Duration `env:"WORKER_USAGE_RETENTION" env-default:"2160h" yaml:"usageRetention"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// LoadEnv fills a Config from environment variables only.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}

	return &cfg, nil
}
