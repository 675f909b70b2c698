package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀, 如 SCORE_REDIS_HOST 覆盖 redis.host
const EnvPrefix = "SCORE"

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Rules    RulesConfig    `mapstructure:"rules"`
	NATS     NATSConfig     `mapstructure:"nats"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Database DatabaseConfig `mapstructure:"database"`
	Persist  PersistConfig  `mapstructure:"persist"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

type AppConfig struct {
	Name       string `mapstructure:"name"`
	LogLevel   string `mapstructure:"log_level"`
	Mode       string `mapstructure:"mode"`
	HTTPAddr   string `mapstructure:"http_addr"`
	HealthAddr string `mapstructure:"health_addr"`
}

// RulesConfig 计分规则开关
type RulesConfig struct {
	OpenTanyao    bool `mapstructure:"open_tanyao"`
	DoubleYakuman bool `mapstructure:"double_yakuman"`
}

type NATSConfig struct {
	URL           string        `mapstructure:"url"`
	MaxReconnects int           `mapstructure:"max_reconnects"`
	ReconnectWait time.Duration `mapstructure:"reconnect_wait"`
	Subject       string        `mapstructure:"subject"`
	QueueGroup    string        `mapstructure:"queue_group"`
	WorkerCount   int           `mapstructure:"worker_count"`
	BufferSize    int           `mapstructure:"buffer_size"`
	DrainTimeout  time.Duration `mapstructure:"drain_timeout"`
}

type RedisConfig struct {
	Host      string        `mapstructure:"host"`
	Port      int           `mapstructure:"port"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	PoolSize  int           `mapstructure:"pool_size"`
	ResultTTL time.Duration `mapstructure:"result_ttl"`
}

// Addr Redis 地址
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Name            string        `mapstructure:"name"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN PostgreSQL 连接串
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Name,
	)
}

// PersistConfig 异步落库的 Worker Pool 配置
type PersistConfig struct {
	Workers   int `mapstructure:"workers"`
	QueueSize int `mapstructure:"queue_size"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

// setDefaults 配置文件缺省项
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "mahjong-score")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.mode", "release")
	v.SetDefault("app.http_addr", ":8080")
	v.SetDefault("app.health_addr", ":8081")

	v.SetDefault("rules.open_tanyao", true)
	v.SetDefault("rules.double_yakuman", true)

	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", 2*time.Second)
	v.SetDefault("nats.subject", "mahjong.score.request")
	v.SetDefault("nats.queue_group", "score-group")
	v.SetDefault("nats.worker_count", 16)
	v.SetDefault("nats.buffer_size", 1024)
	v.SetDefault("nats.drain_timeout", 5*time.Second)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.result_ttl", 24*time.Hour)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "mahjong")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", time.Hour)

	v.SetDefault("persist.workers", 4)
	v.SetDefault("persist.queue_size", 1000)

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
}

// Load 从指定路径加载配置, 环境变量优先
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.NATS.Subject == "" {
		return fmt.Errorf("nats.subject 不能为空")
	}
	if c.Persist.Workers <= 0 || c.Persist.QueueSize <= 0 {
		return fmt.Errorf("persist.workers 和 persist.queue_size 必须大于 0")
	}
	if c.Redis.ResultTTL < 0 {
		return fmt.Errorf("redis.result_ttl 不能为负数")
	}
	return nil
}
