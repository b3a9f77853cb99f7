package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	MySQL    MySQLConfig    `mapstructure:"mysql"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Lmstfy   LmstfyConfig   `mapstructure:"lmstfy"`
	Cashfree CashfreeConfig `mapstructure:"cashfree"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

type ServerConfig struct {
	Port        string `mapstructure:"port"`
	FrontendURL string `mapstructure:"frontend_url"` // 支付完成后的回跳地址
	BaseURL     string `mapstructure:"base_url"`     // webhook notify_url 的外部地址
}

type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type LmstfyConfig struct {
	Host        string        `mapstructure:"host"`
	Namespace   string        `mapstructure:"namespace"`
	NotifyQueue string        `mapstructure:"notify_queue"`
	Token       string        `mapstructure:"token"`
	Timeout     int           `mapstructure:"timeout"`       // 拉取消息超时（秒）
	TTR         int           `mapstructure:"ttr"`           // Time-To-Run（秒）
	PollBackoff time.Duration `mapstructure:"poll_backoff"`  // 消费出错后的退避时间
}

// CashfreeConfig 支付网关配置
// 环境和凭据在启动时一次性确定，选中环境缺少凭据属于启动失败而非运行时错误
type CashfreeConfig struct {
	Env           string `mapstructure:"env"` // SANDBOX / PRODUCTION
	AppID         string `mapstructure:"app_id"`
	SecretKey     string `mapstructure:"secret_key"`
	AppIDProd     string `mapstructure:"app_id_prod"`
	SecretKeyProd string `mapstructure:"secret_key_prod"`
}

// IsProduction 是否为生产环境
func (c *CashfreeConfig) IsProduction() bool {
	return c.Env == "PRODUCTION"
}

// Credentials 返回选中环境的凭据
func (c *CashfreeConfig) Credentials() (appID, secretKey string) {
	if c.IsProduction() {
		return c.AppIDProd, c.SecretKeyProd
	}
	return c.AppID, c.SecretKey
}

// Load 从配置文件加载配置
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	// 兼容性处理：如果 server.port 为空，使用默认值
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Lmstfy.Timeout == 0 {
		cfg.Lmstfy.Timeout = 3
	}
	if cfg.Lmstfy.TTR == 0 {
		cfg.Lmstfy.TTR = 30
	}
	if cfg.Lmstfy.PollBackoff == 0 {
		cfg.Lmstfy.PollBackoff = time.Second
	}

	return &cfg, nil
}

// LoadDefault 加载默认配置文件路径
func LoadDefault() (*Config, error) {
	return Load("config/config.yaml")
}

// Validate 验证配置完整性
func (c *Config) Validate() error {
	if c.MySQL.DSN == "" {
		return fmt.Errorf("mysql dsn is required")
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("redis addr is required")
	}
	if c.Lmstfy.Host == "" {
		return fmt.Errorf("lmstfy host is required")
	}

	// 选中环境的网关凭据缺失是致命错误
	appID, secretKey := c.Cashfree.Credentials()
	if appID == "" || secretKey == "" {
		return fmt.Errorf("cashfree credentials missing for environment %q", c.Cashfree.Env)
	}

	return nil
}
