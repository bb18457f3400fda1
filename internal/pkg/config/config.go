package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	App          AppConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Redis        RedisConfig
	Kafka        KafkaConfig
	Outbox       OutboxConfig
	Notification NotificationConfig
	RBAC         RBACConfig
	Idempotency  IdempotencyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type AppConfig struct {
	TimeZone string `envconfig:"APP_TIMEZONE" default:"UTC"`
}

// Location resolves the server timezone used to evaluate "today".
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID,Idempotent-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	AddSource  bool   `envconfig:"LOG_ADD_SOURCE" default:"false"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type RedisConfig struct {
	Addr        string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password    string        `envconfig:"REDIS_PASSWORD" default:""`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	CalendarTTL time.Duration `envconfig:"REDIS_CALENDAR_TTL" default:"5m"`
	Enabled     bool          `envconfig:"REDIS_ENABLED" default:"true"`
}

type KafkaConfig struct {
	Brokers     []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	TopicPrefix string   `envconfig:"KAFKA_TOPIC_PREFIX" default:""`
	ClientID    string   `envconfig:"KAFKA_CLIENT_ID" default:"yacht-charter"`
}

type OutboxConfig struct {
	Interval    time.Duration   `envconfig:"OUTBOX_INTERVAL" default:"1s"`
	BatchSize   int32           `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
	MaxAttempts int32           `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"10"`
	Backoff     []time.Duration `envconfig:"OUTBOX_BACKOFF" default:"1s,5s,30s,2m,10m"`
	Source      string          `envconfig:"OUTBOX_SOURCE" default:"app://yacht-charter"`
	Lease       time.Duration   `envconfig:"OUTBOX_LEASE" default:"30s"`
}

type IdempotencyConfig struct {
	TTL           time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`
	SweepInterval time.Duration `envconfig:"IDEMPOTENCY_SWEEP_INTERVAL" default:"10m"`
}

// RBACConfig points at casbin model/policy files. Empty paths use the
// built-in role table.
type RBACConfig struct {
	ModelPath  string `envconfig:"RBAC_MODEL_PATH" default:""`
	PolicyPath string `envconfig:"RBAC_POLICY_PATH" default:""`
}

// NotificationConfig is the event → recipient policy table. An empty value
// disables notifications for that event.
type NotificationConfig struct {
	OnCreated       string `envconfig:"NOTIFY_ON_CREATED" default:"owner"`
	OnConfirmed     string `envconfig:"NOTIFY_ON_CONFIRMED" default:"requester"`
	OnRejected      string `envconfig:"NOTIFY_ON_REJECTED" default:""`
	OnCancelled     string `envconfig:"NOTIFY_ON_CANCELLED" default:""`
	OnCompleted     string `envconfig:"NOTIFY_ON_COMPLETED" default:""`
	OnReviewCreated string `envconfig:"NOTIFY_ON_REVIEW_CREATED" default:"owner"`
	OnMessageSent   string `envconfig:"NOTIFY_ON_MESSAGE_SENT" default:"recipient"`
}

// Recipients splits a comma separated recipient list ("owner,requester").
func Recipients(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		App: AppConfig{
			TimeZone: "UTC",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Redis: RedisConfig{
			Enabled: false,
		},
		Outbox: OutboxConfig{
			Interval:    100 * time.Millisecond,
			BatchSize:   10,
			MaxAttempts: 3,
			Backoff:     []time.Duration{10 * time.Millisecond},
			Source:      "app://yacht-charter-test",
			Lease:       time.Second,
		},
		Idempotency: IdempotencyConfig{
			TTL:           time.Hour,
			SweepInterval: time.Minute,
		},
		Kafka: KafkaConfig{
			ClientID: "yacht-charter-test",
		},
		Notification: NotificationConfig{
			OnCreated:       "owner",
			OnConfirmed:     "requester",
			OnReviewCreated: "owner",
			OnMessageSent:   "recipient",
		},
	}
}
