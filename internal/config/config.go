package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	MinSyncWorkers   = 2
	MaxSyncWorkers   = 5
	MinSyncQueueSize = 100
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Marketplace   Marketplace   `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	AnalyticsSync AnalyticsSync `mapstructure:",squash"`
	WarehouseSync WarehouseSync `mapstructure:",squash"`
	ManualSync    ManualSync    `mapstructure:",squash"`
	Reporting     Reporting     `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Marketplace agrupa os endereços e limites da API externa do marketplace
type Marketplace struct {
	ContentURL        string        `mapstructure:"marketplace_content_url"`
	AdvertURL         string        `mapstructure:"marketplace_advert_url"`
	AnalyticsURL      string        `mapstructure:"marketplace_analytics_url"`
	SuppliesURL       string        `mapstructure:"marketplace_supplies_url"`
	RequestsPerSecond float64       `mapstructure:"marketplace_requests_per_second"`
	Burst             int           `mapstructure:"marketplace_burst"`
	Timeout           time.Duration `mapstructure:"marketplace_timeout"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type AnalyticsSync struct {
	CronSchedule string `mapstructure:"analytics_sync_cron"`
	LookbackDays int    `mapstructure:"analytics_sync_lookback_days"`
	Workers      int    `mapstructure:"analytics_sync_workers"`
	QueueSize    int    `mapstructure:"analytics_sync_queue_size"`
	AccountRole  int    `mapstructure:"sync_account_role"`
	Enabled      bool   `mapstructure:"analytics_sync_enabled"`
}

type WarehouseSync struct {
	CronSchedule string `mapstructure:"warehouse_sync_cron"`
	Workers      int    `mapstructure:"warehouse_sync_workers"`
	QueueSize    int    `mapstructure:"warehouse_sync_queue_size"`
	AccountRole  int    `mapstructure:"sync_account_role"`
	Enabled      bool   `mapstructure:"warehouse_sync_enabled"`
}

type ManualSync struct {
	MinInterval time.Duration `mapstructure:"manual_sync_min_interval"`
}

type Reporting struct {
	MaxPeriods    int `mapstructure:"report_max_periods"`
	MaxPeriodDays int `mapstructure:"report_max_period_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/seller_analytics?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL

	viper.SetDefault("MARKETPLACE_CONTENT_URL", "https://content-api.wildberries.ru")
	viper.SetDefault("MARKETPLACE_ADVERT_URL", "https://advert-api.wildberries.ru")
	viper.SetDefault("MARKETPLACE_ANALYTICS_URL", "https://seller-analytics-api.wildberries.ru")
	viper.SetDefault("MARKETPLACE_SUPPLIES_URL", "https://supplies-api.wildberries.ru")
	viper.SetDefault("MARKETPLACE_REQUESTS_PER_SECOND", 0.3) // limite por chave de API
	viper.SetDefault("MARKETPLACE_BURST", 1)
	viper.SetDefault("MARKETPLACE_TIMEOUT", "45s")

	// Sincronização de analytics: todos os dias à 01:30
	viper.SetDefault("ANALYTICS_SYNC_CRON", "30 1 * * *")
	viper.SetDefault("ANALYTICS_SYNC_LOOKBACK_DAYS", 14)
	viper.SetDefault("ANALYTICS_SYNC_WORKERS", 3)
	viper.SetDefault("ANALYTICS_SYNC_QUEUE_SIZE", 100)
	viper.SetDefault("ANALYTICS_SYNC_ENABLED", true)

	// Sincronização de armazéns: todos os dias à meia-noite
	viper.SetDefault("WAREHOUSE_SYNC_CRON", "0 0 * * *")
	viper.SetDefault("WAREHOUSE_SYNC_WORKERS", 2)
	viper.SetDefault("WAREHOUSE_SYNC_QUEUE_SIZE", 100)
	viper.SetDefault("WAREHOUSE_SYNC_ENABLED", true)

	viper.SetDefault("SYNC_ACCOUNT_ROLE", 3)
	viper.SetDefault("MANUAL_SYNC_MIN_INTERVAL", "6h")

	viper.SetDefault("REPORT_MAX_PERIODS", 10)
	viper.SetDefault("REPORT_MAX_PERIOD_DAYS", 7)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Normalize()

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Normalize aplica os limites dos pools de sincronização e do intervalo manual
func (c *Config) Normalize() {
	c.AnalyticsSync.Workers = clampWorkers(c.AnalyticsSync.Workers)
	c.WarehouseSync.Workers = clampWorkers(c.WarehouseSync.Workers)

	if c.AnalyticsSync.QueueSize < MinSyncQueueSize {
		c.AnalyticsSync.QueueSize = MinSyncQueueSize
	}
	if c.WarehouseSync.QueueSize < MinSyncQueueSize {
		c.WarehouseSync.QueueSize = MinSyncQueueSize
	}

	if c.AnalyticsSync.LookbackDays <= 0 {
		c.AnalyticsSync.LookbackDays = 14
	}

	if c.ManualSync.MinInterval <= 0 {
		c.ManualSync.MinInterval = 6 * time.Hour
	}
	// o limite é informado ao vendedor em horas inteiras
	if rest := c.ManualSync.MinInterval % time.Hour; rest != 0 {
		rounded := c.ManualSync.MinInterval - rest + time.Hour
		logrus.Warnf("MANUAL_SYNC_MIN_INTERVAL %s arredondado para %s", c.ManualSync.MinInterval, rounded)
		c.ManualSync.MinInterval = rounded
	}

	if c.Reporting.MaxPeriods <= 0 {
		c.Reporting.MaxPeriods = 10
	}
	if c.Reporting.MaxPeriodDays <= 0 {
		c.Reporting.MaxPeriodDays = 7
	}

	if c.Marketplace.Timeout <= 0 {
		c.Marketplace.Timeout = 45 * time.Second
	}
	if c.Marketplace.Burst <= 0 {
		c.Marketplace.Burst = 1
	}
}

func clampWorkers(n int) int {
	if n < MinSyncWorkers {
		return MinSyncWorkers
	}
	if n > MaxSyncWorkers {
		return MaxSyncWorkers
	}
	return n
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
