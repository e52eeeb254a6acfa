package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DriverPostgres は PostgreSQL をストアとして利用します。
	DriverPostgres = "postgres"
	// DriverMemory はプロセス内メモリをストアとして利用します。
	DriverMemory = "memory"

	defaultExpirySchedule = "0 5 0 * * *"
	defaultEventsTopic    = "benefit-ledger.deposits"
	defaultTokenTTL       = time.Hour
	defaultJWTIssuer      = "benefit-ledger"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Events   EventsConfig   `yaml:"events"`
	Jobs     JobsConfig     `yaml:"jobs"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig は gRPC サーバーと HTTP プローブに関する設定です。
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
	// HTTPAddr が空の場合 HTTP プローブは起動しません。
	HTTPAddr string `yaml:"http_addr"`
}

// DatabaseConfig はストアに関する設定です。
type DatabaseConfig struct {
	Driver             string        `yaml:"driver"`
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"ssl_mode"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
}

// AuthConfig はトークン発行に関する設定です。
type AuthConfig struct {
	JWTSecret   string        `yaml:"jwt_secret"`
	JWTIssuer   string        `yaml:"jwt_issuer"`
	TokenTTL    time.Duration `yaml:"-"`
	TokenTTLRaw string        `yaml:"token_ttl"`
}

// EventsConfig は Kafka への通知に関する設定です。Brokers が空の場合は通知しません。
type EventsConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// Enabled は通知先が設定されているかを返します。
func (e EventsConfig) Enabled() bool {
	return len(e.Brokers) > 0
}

// JobsConfig は定期ジョブの設定です。
type JobsConfig struct {
	ExpirySchedule string `yaml:"expiry_schedule"`
}

// LogConfig はログ出力の設定です。
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load は指定されたパスから設定ファイルを読み込みます。${VAR} 形式の値は環境変数で展開されます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(b))), &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}

	if err := c.Database.validateAndNormalize(); err != nil {
		return err
	}
	if err := c.Auth.validateAndNormalize(); err != nil {
		return err
	}
	c.Events.normalize()
	if c.Jobs.ExpirySchedule == "" {
		c.Jobs.ExpirySchedule = defaultExpirySchedule
	}
	if err := c.Log.validateAndNormalize(); err != nil {
		return err
	}

	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Driver == "" {
		d.Driver = DriverPostgres
	}
	switch d.Driver {
	case DriverMemory:
		return nil
	case DriverPostgres:
	default:
		return fmt.Errorf("config: database.driver %q is not supported", d.Driver)
	}

	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func (a *AuthConfig) validateAndNormalize() error {
	if a.JWTSecret == "" {
		return fmt.Errorf("config: auth.jwt_secret must be set")
	}
	if a.JWTIssuer == "" {
		a.JWTIssuer = defaultJWTIssuer
	}

	ttl, err := parseDurationAllowEmpty(a.TokenTTLRaw)
	if err != nil {
		return fmt.Errorf("config: auth.token_ttl: %w", err)
	}
	if ttl == 0 {
		ttl = defaultTokenTTL
	}
	a.TokenTTL = ttl

	return nil
}

func (e *EventsConfig) normalize() {
	brokers := make([]string, 0, len(e.Brokers))
	for _, b := range e.Brokers {
		if trimmed := strings.TrimSpace(b); trimmed != "" {
			brokers = append(brokers, trimmed)
		}
	}
	e.Brokers = brokers
	if e.Topic == "" {
		e.Topic = defaultEventsTopic
	}
}

func (l *LogConfig) validateAndNormalize() error {
	if l.Level == "" {
		l.Level = "info"
	}
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
		l.Level = strings.ToLower(l.Level)
	default:
		return fmt.Errorf("config: log.level %q is not supported", l.Level)
	}

	if l.Format == "" {
		l.Format = "text"
	}
	if l.Format != "text" && l.Format != "json" {
		return fmt.Errorf("config: log.format %q is not supported", l.Format)
	}
	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}
