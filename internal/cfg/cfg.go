package cfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

const (
	CatalogSourceStatic   = "static"
	CatalogSourcePostgres = "postgres"
)

type Config struct {
	Http    *HTTPConfig
	Grpc    *GRPCConfig
	Log     *LogCfg
	Catalog *CatalogCfg
	Cart    *CartCfg
	Db      *PGDBCfg // nil, если каталог не читается из PostgreSQL
	Redis   *RedisCfg
	Kafka   *KafkaCfg
	Minio   *MinIOCfg
}

type HTTPConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
	SwaggerURL     string
}

type GRPCConfig struct {
	Port        string
	NetworkMode string
}

type LogCfg struct {
	Level string
}

type CatalogCfg struct {
	Source string // static | postgres
	File   string // путь к YAML-каталогу вместо встроенного
}

type CartCfg struct {
	DeliveryFee      int64
	InstallationRate decimal.Decimal
}

type PGDBCfg struct {
	Host          string
	Port          string
	User          string
	Password      string
	DBName        string
	SSLMode       string
	MigrationsDir string
}

type RedisCfg struct {
	Enabled     bool
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
	CatalogTTL  time.Duration
}

type KafkaCfg struct {
	Enabled           bool
	Topic             string
	Brokers           []string
	NetworkMode       string
	Partitions        int
	ReplicationFactor int
	QueueSize         int
	MaxRetries        int
}

type MinIOCfg struct {
	Enabled           bool
	MinioEndpoint     string // Адрес конечной точки Minio
	BucketName        string // Бакет с изображениями товаров
	MinioRootUser     string
	MinioRootPassword string
	MinioUseSSL       bool
	URLTTL            time.Duration // Время жизни подписанной ссылки
	ResolveLimit      int           // Лимит одновременных запросов подписи
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catalog, err := loadCatalogCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cart, err := loadCartCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var db *PGDBCfg
	if catalog.Source == CatalogSourcePostgres {
		db, err = LoadPGDBCfg(log)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kafka, err := loadKafkaCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minio, err := loadMinIOCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:    http,
		Grpc:    loadGRPCConfig(),
		Log:     LoadLogCfg(),
		Catalog: catalog,
		Cart:    cart,
		Db:      db,
		Redis:   redis,
		Kafka:   kafka,
		Minio:   minio,
	}, nil
}

// LoadLogCfg читает уровень логирования. Вызывается до создания логгера.
func LoadLogCfg() *LogCfg {
	return &LogCfg{Level: getEnvOrDefault("LOG_LEVEL", "info")}
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort           = "8080"
		defaultReadTimeout    = 5 * time.Second
		defaultWriteTimeout   = 10 * time.Second
		defaultIdleTimeout    = 60 * time.Second
		defaultRequestTimeout = 5 * time.Second
		defaultSwaggerURL     = "http://localhost:8080/swagger/doc.json"
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	requestTimeout, err := parseDurationEnv("HTTP_REQUEST_TIMEOUT", defaultRequestTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_REQUEST_TIMEOUT")
		return nil, err
	}

	return &HTTPConfig{
		Port:           port,
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		IdleTimeout:    idleTimeout,
		RequestTimeout: requestTimeout,
		SwaggerURL:     getEnvOrDefault("SWAGGER_URL", defaultSwaggerURL),
	}, nil
}

func loadGRPCConfig() *GRPCConfig {
	const (
		defaultPort        = "8091"
		defaultNetworkMode = "tcp"
	)

	return &GRPCConfig{
		Port:        getEnvOrDefault("GRPC_PORT", defaultPort),
		NetworkMode: getEnvOrDefault("GRPC_NETWORK_MODE", defaultNetworkMode),
	}
}

func loadCatalogCfg(log logger.Logger) (*CatalogCfg, error) {
	source := strings.ToLower(getEnvOrDefault("CATALOG_SOURCE", CatalogSourceStatic))
	if source != CatalogSourceStatic && source != CatalogSourcePostgres {
		err := e.Wrap("CATALOG_SOURCE", e.ErrIncorrectEnvVariable)
		log.Errorf(err, "invalid CATALOG_SOURCE: %s", source)
		return nil, err
	}

	return &CatalogCfg{
		Source: source,
		File:   getEnv("CATALOG_FILE"),
	}, nil
}

func loadCartCfg(log logger.Logger) (*CartCfg, error) {
	const (
		defaultDeliveryFee      = 1500
		defaultInstallationRate = "0.15"
	)

	fee, err := parseInt64Env("CART_DELIVERY_FEE", defaultDeliveryFee)
	if err != nil || fee < 0 {
		err = e.Wrap("CART_DELIVERY_FEE", e.ErrIncorrectEnvVariable)
		log.Errorf(err, "invalid CART_DELIVERY_FEE")
		return nil, err
	}

	rate, err := decimal.NewFromString(getEnvOrDefault("CART_INSTALLATION_RATE", defaultInstallationRate))
	if err != nil || rate.IsNegative() {
		err = e.Wrap("CART_INSTALLATION_RATE", e.ErrIncorrectEnvVariable)
		log.Errorf(err, "invalid CART_INSTALLATION_RATE")
		return nil, err
	}

	return &CartCfg{
		DeliveryFee:      fee,
		InstallationRate: rate,
	}, nil
}

// LoadPGDBCfg читает параметры PostgreSQL. Нужен для источника каталога postgres и команды migrate.
func LoadPGDBCfg(log logger.Logger) (*PGDBCfg, error) {
	const (
		defaultHost          = "localhost"
		defaultPort          = "5432"
		defaultSSLMode       = "disable"
		defaultMigrationsDir = "db/migrations"
	)

	user := getEnv("POSTGRES_USER")
	if user == "" {
		err := fmt.Errorf("POSTGRES_USER is required")
		log.Errorf(err, "missing POSTGRES_USER")
		return nil, err
	}

	password := getEnv("POSTGRES_PASSWORD")
	if password == "" {
		err := fmt.Errorf("POSTGRES_PASSWORD is required")
		log.Errorf(err, "missing POSTGRES_PASSWORD")
		return nil, err
	}

	dbName := getEnv("POSTGRES_DB")
	if dbName == "" {
		err := fmt.Errorf("POSTGRES_DB is required")
		log.Errorf(err, "missing POSTGRES_DB")
		return nil, err
	}

	return &PGDBCfg{
		Host:          getEnvOrDefault("POSTGRES_HOST", defaultHost),
		Port:          getEnvOrDefault("POSTGRES_PORT", defaultPort),
		User:          user,
		Password:      password,
		DBName:        dbName,
		SSLMode:       getEnvOrDefault("SSL_MODE", defaultSSLMode),
		MigrationsDir: getEnvOrDefault("MIGRATIONS_DIR", defaultMigrationsDir),
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr         = "localhost:6379"
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
		defaultCatalogTTL   = 5 * time.Minute
	)

	enabled, err := parseBoolEnv("REDIS_ENABLED", false)
	if err != nil {
		log.Errorf(err, "invalid REDIS_ENABLED")
		return nil, err
	}

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	catalogTTL, err := parseDurationEnv("CATALOG_CACHE_TTL", defaultCatalogTTL)
	if err != nil {
		log.Errorf(err, "invalid CATALOG_CACHE_TTL")
		return nil, err
	}

	return &RedisCfg{
		Enabled:     enabled,
		Addr:        getEnvOrDefault("REDIS_ADDR", defaultAddr),
		Password:    getEnv("REDIS_PASSWORD"),
		User:        getEnv("REDIS_USER"),
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     max(readTimeout, writeTimeout),
		CatalogTTL:  catalogTTL,
	}, nil
}

func loadKafkaCfg() (*KafkaCfg, error) {
	const (
		defaultTopic             = "storefront.cart-events"
		defaultPartitions        = 3
		defaultReplicationFactor = 1
		defaultNetworkMode       = "tcp"
		defaultQueueSize         = 256
		defaultMaxRetries        = 3
	)

	enabled, err := parseBoolEnv("KAFKA_ENABLED", false)
	if err != nil {
		return nil, e.Wrap("KAFKA_ENABLED", err)
	}

	var brokers []string
	if brokerStr := getEnv("KAFKA_BROKERS"); brokerStr != "" {
		brokers = strings.Split(brokerStr, ",")
	}
	if enabled && len(brokers) == 0 {
		return nil, fmt.Errorf("KAFKA_BROKERS environment variable is required")
	}

	partitions, err := parseIntEnv("KAFKA_PARTITIONS", defaultPartitions)
	if err != nil {
		return nil, e.Wrap("KAFKA_PARTITIONS", err)
	}

	replicationFactor, err := parseIntEnv("REPLICATION_FACTOR", defaultReplicationFactor)
	if err != nil {
		return nil, e.Wrap("REPLICATION_FACTOR", err)
	}

	queueSize, err := parseIntEnv("KAFKA_QUEUE_SIZE", defaultQueueSize)
	if err != nil {
		return nil, e.Wrap("KAFKA_QUEUE_SIZE", err)
	}

	maxRetries, err := parseIntEnv("KAFKA_MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		return nil, e.Wrap("KAFKA_MAX_RETRIES", err)
	}

	return &KafkaCfg{
		Enabled:           enabled,
		Brokers:           brokers,
		Topic:             getEnvOrDefault("KAFKA_TOPIC", defaultTopic),
		Partitions:        partitions,
		ReplicationFactor: replicationFactor,
		NetworkMode:       getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode),
		QueueSize:         queueSize,
		MaxRetries:        maxRetries,
	}, nil
}

func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultEndpoint     = "minio:9000"
		defaultBucket       = "product-images"
		defaultURLTTL       = 15 * time.Minute
		defaultResolveLimit = 8
	)

	enabled, err := parseBoolEnv("MINIO_ENABLED", false)
	if err != nil {
		log.Errorf(err, "invalid MINIO_ENABLED")
		return nil, err
	}

	useSSL, err := parseBoolEnv("MINIO_USE_SSL", false)
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	urlTTL, err := parseDurationEnv("MINIO_URL_TTL", defaultURLTTL)
	if err != nil {
		log.Errorf(err, "invalid MINIO_URL_TTL")
		return nil, err
	}

	return &MinIOCfg{
		Enabled:           enabled,
		MinioEndpoint:     getEnvOrDefault("MINIO_ENDPOINT", defaultEndpoint),
		BucketName:        getEnvOrDefault("BUCKET_NAME", defaultBucket),
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
		URLTTL:            urlTTL,
		ResolveLimit:      defaultResolveLimit,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}

func parseInt64Env(key string, defaultValue int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	boolValue, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return boolValue, nil
}
