package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultUploadDir         = "uploads"
	defaultMaxUploadBytes    = 10 << 20
	defaultBcryptCost        = 10
	defaultGeocodingBaseURL  = "https://nominatim.openstreetmap.org"
	defaultGeocodingAgent    = "ParcelService/1.0"
	defaultGeocodingTimeout  = 5 * time.Second
	defaultGeocodingDelay    = time.Second
	defaultGeocodingCacheTTL = 24 * time.Hour
	defaultKafkaTopic        = "delivery.recorded"
	defaultCleanupInterval   = time.Hour
	defaultCleanupGrace      = 24 * time.Hour
	defaultLogLevel          = "info"
	defaultCORSOrigins       = "*"
)

type (
	Tasks struct {
		PhotoCleanupInterval time.Duration
		PhotoCleanupGrace    time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
		GRPCHealthPort   string // пусто - grpc health не поднимается
		LogLevel         string
		CORSOrigins      string // через запятую, "*" - любой origin
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Storage struct {
		UploadDir      string
		MaxUploadBytes int64
	}

	Auth struct {
		BcryptCost int
	}

	Geocoding struct {
		BaseURL   string
		UserAgent string
		Timeout   time.Duration
		Delay     time.Duration
		CacheTTL  time.Duration
	}

	Redis struct {
		Addr     string // пусто - кеш геокодинга выключен
		Password string
		DB       int
	}

	Kafka struct {
		Brokers string // пусто - события не публикуются
		Topic   string
	}

	Config struct {
		Tasks     Tasks
		Server    HTTPServer
		Database  Database
		Storage   Storage
		Auth      Auth
		Geocoding Geocoding
		Redis     Redis
		Kafka     Kafka
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

func (k Kafka) BrokerList() []string {
	return splitList(k.Brokers)
}

func (s HTTPServer) CORSOriginList() []string {
	return splitList(s.CORSOrigins)
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}

func loadFromEnv() (*Config, error) {
	cleanupInterval, err := osGetEnvDuration("BACKGROUND_PHOTO_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cleanupGrace, err := osGetEnvDuration("BACKGROUND_PHOTO_CLEANUP_GRACE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxUploadBytes, err := osGetInt("MAX_UPLOAD_BYTES")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	bcryptCost, err := osGetInt("BCRYPT_COST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	geocodingTimeout, err := osGetEnvDuration("GEOCODING_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	geocodingDelay, err := osGetEnvDuration("GEOCODING_DELAY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	geocodingCacheTTL, err := osGetEnvDuration("GEOCODING_CACHE_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			PhotoCleanupInterval: withDefault(cleanupInterval, defaultCleanupInterval),
			PhotoCleanupGrace:    withDefault(cleanupGrace, defaultCleanupGrace),
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
			GRPCHealthPort:   os.Getenv("GRPC_HEALTH_PORT"),
			LogLevel:         withDefault(os.Getenv("LOG_LEVEL"), defaultLogLevel),
			CORSOrigins:      withDefault(os.Getenv("CORS_ALLOWED_ORIGINS"), defaultCORSOrigins),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Storage: Storage{
			UploadDir:      withDefault(os.Getenv("UPLOAD_DIR"), defaultUploadDir),
			MaxUploadBytes: int64(withDefault(maxUploadBytes, defaultMaxUploadBytes)),
		},
		Auth: Auth{
			BcryptCost: withDefault(bcryptCost, defaultBcryptCost),
		},
		Geocoding: Geocoding{
			BaseURL:   withDefault(os.Getenv("GEOCODING_BASE_URL"), defaultGeocodingBaseURL),
			UserAgent: withDefault(os.Getenv("GEOCODING_USER_AGENT"), defaultGeocodingAgent),
			Timeout:   withDefault(geocodingTimeout, defaultGeocodingTimeout),
			Delay:     withDefault(geocodingDelay, defaultGeocodingDelay),
			CacheTTL:  withDefault(geocodingCacheTTL, defaultGeocodingCacheTTL),
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Kafka: Kafka{
			Brokers: os.Getenv("KAFKA_BROKERS"),
			Topic:   withDefault(os.Getenv("KAFKA_TOPIC"), defaultKafkaTopic),
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
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

	if cfg.Storage.MaxUploadBytes < 0 {
		return errors.New("MAX_UPLOAD_BYTES must be positive")
	}
	// bcrypt.MinCost..bcrypt.MaxCost
	if cfg.Auth.BcryptCost < 4 || cfg.Auth.BcryptCost > 31 {
		return errors.New("BCRYPT_COST must be between 4 and 31")
	}

	if cfg.Geocoding.Delay < 0 {
		return errors.New("GEOCODING_DELAY must not be negative")
	}

	if cfg.Tasks.PhotoCleanupGrace < 0 {
		return errors.New("BACKGROUND_PHOTO_CLEANUP_GRACE must not be negative")
	}

	return nil
}

func withDefault[T comparable](val, def T) T {
	var zero T
	if val == zero {
		return def
	}
	return val
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
