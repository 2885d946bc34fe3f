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
	defaultLogLevel         = "info"
	defaultCalendarTimezone = "UTC"
	defaultOrderStoreTTL    = 10 * time.Second
	defaultTokenTTL         = 12 * time.Hour

	maxPoolConns = 1000
)

type (
	Tasks struct {
		CollectionRefreshInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host           string
		Port           string
		User           string
		Password       string
		DBName         string
		SSLMode        string
		MigrateOnStart bool
		MaxConns       int32 // 0 - значение по умолчанию пула
		MinConns       int32
	}

	// OrderStore - удаленное REST-хранилище заказов.
	OrderStore struct {
		BaseURL string
		Timeout time.Duration
	}

	User struct {
		Username     string
		PasswordHash string
	}

	Auth struct {
		JWTSecret string
		TokenTTL  time.Duration
		Admin     User
		User      User
	}

	Calendar struct {
		Timezone string
		Location *time.Location
	}

	Logger struct {
		Level string
	}

	Kafka struct {
		PortHealthcheck  string
		Brokers          string
		Topic            string
		ConsumerGroup    string
		PublisherEnabled bool
		Sarama           Sarama
		Handlers         KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
		ProducerRetryMax          int
	}

	KafkaHandlers struct {
		OrderLifecycleChanged OrderLifecycleChanged
	}

	OrderLifecycleChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Logger     Logger
		Tasks      Tasks
		Server     HTTPServer
		Database   Database
		OrderStore OrderStore
		Auth       Auth
		Calendar   Calendar
		Kafka      Kafka
	}
)

func (k Kafka) BrokerList() []string {
	brokers := strings.Split(k.Brokers, ",")
	result := make([]string, 0, len(brokers))
	for _, b := range brokers {
		if b = strings.TrimSpace(b); b != "" {
			result = append(result, b)
		}
	}
	return result
}

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
	refreshInterval, err := osGetEnvDuration("BACKGROUND_COLLECTION_REFRESH_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaProducerRetryMax, err := osGetInt("KAFKA_SARAMA_PRODUCER_RETRY_MAX")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	publisherEnabled, err := osGetBool("KAFKA_PUBLISHER_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	lifecycleChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_LIFECYCLE_CHANGED_PROCESS_TIMEOUT")
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

	migrateOnStart, err := osGetBool("POSTGRES_MIGRATE_ON_START")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxConns, err := osGetInt("POSTGRES_MAX_CONNS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	minConns, err := osGetInt("POSTGRES_MIN_CONNS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if maxConns > maxPoolConns || minConns > maxPoolConns {
		return nil, fmt.Errorf("loading config: pool size must not exceed %d", maxPoolConns)
	}

	orderStoreTimeout, err := osGetEnvDuration("ORDER_STORE_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if orderStoreTimeout == 0 {
		orderStoreTimeout = defaultOrderStoreTTL
	}

	tokenTTL, err := osGetEnvDuration("AUTH_TOKEN_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if tokenTTL == 0 {
		tokenTTL = defaultTokenTTL
	}

	timezone := osGetString("CALENDAR_TIMEZONE", defaultCalendarTimezone)
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("loading config: CALENDAR_TIMEZONE=%q: %w", timezone, err)
	}

	return &Config{
		Logger: Logger{
			Level: osGetString("LOG_LEVEL", defaultLogLevel),
		},
		Tasks: Tasks{
			CollectionRefreshInterval: refreshInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:           os.Getenv("POSTGRES_HOST"),
			Port:           os.Getenv("POSTGRES_PORT"),
			User:           os.Getenv("POSTGRES_USER"),
			Password:       os.Getenv("POSTGRES_PASSWORD"),
			DBName:         os.Getenv("POSTGRES_DB"),
			SSLMode:        os.Getenv("POSTGRES_SSLMODE"),
			MigrateOnStart: migrateOnStart,
			MaxConns:       int32(maxConns), //nolint:gosec // ограничено maxPoolConns
			MinConns:       int32(minConns), //nolint:gosec // ограничено maxPoolConns
		},
		OrderStore: OrderStore{
			BaseURL: os.Getenv("ORDER_STORE_BASE_URL"),
			Timeout: orderStoreTimeout,
		},
		Auth: Auth{
			JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
			TokenTTL:  tokenTTL,
			Admin: User{
				Username:     os.Getenv("AUTH_ADMIN_USERNAME"),
				PasswordHash: os.Getenv("AUTH_ADMIN_PASSWORD_HASH"),
			},
			User: User{
				Username:     os.Getenv("AUTH_USER_USERNAME"),
				PasswordHash: os.Getenv("AUTH_USER_PASSWORD_HASH"),
			},
		},
		Calendar: Calendar{
			Timezone: timezone,
			Location: location,
		},
		Kafka: Kafka{
			Brokers:          os.Getenv("KAFKA_BROKERS"),
			Topic:            os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:    os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck:  os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			PublisherEnabled: publisherEnabled,
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
				ProducerRetryMax:          saramaProducerRetryMax,
			},
			Handlers: KafkaHandlers{
				OrderLifecycleChanged: OrderLifecycleChanged{
					ProcessTimeout: lifecycleChangedTimeout,
				},
			},
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
	if cfg.Database.MaxConns < 0 || cfg.Database.MinConns < 0 {
		return errors.New("POSTGRES_MAX_CONNS and POSTGRES_MIN_CONNS must not be negative")
	}

	if cfg.Tasks.CollectionRefreshInterval == time.Duration(0) {
		return errors.New("BACKGROUND_COLLECTION_REFRESH_INTERVAL is required")
	}

	if cfg.OrderStore.BaseURL == "" {
		return errors.New("ORDER_STORE_BASE_URL is required")
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}
	if cfg.Auth.Admin.Username == "" || cfg.Auth.Admin.PasswordHash == "" {
		return errors.New("AUTH_ADMIN_USERNAME and AUTH_ADMIN_PASSWORD_HASH are required")
	}
	if cfg.Auth.User.Username == "" || cfg.Auth.User.PasswordHash == "" {
		return errors.New("AUTH_USER_USERNAME and AUTH_USER_PASSWORD_HASH are required")
	}
	if cfg.Auth.Admin.Username == cfg.Auth.User.Username {
		return errors.New("AUTH_ADMIN_USERNAME and AUTH_USER_USERNAME must differ")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.OrderLifecycleChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_LIFECYCLE_CHANGED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetString(s, fallback string) string {
	if val := os.Getenv(s); val != "" {
		return val
	}
	return fallback
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
