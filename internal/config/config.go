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

// Origens do dataset de vendas
const (
	DatasetSourceCSV      = "csv"
	DatasetSourcePostgres = "postgres"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Dataset  Dataset  `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Model    Model    `mapstructure:",squash"`
	Charts   Charts   `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Dataset struct {
	Source string `mapstructure:"dataset_source"`
	Path   string `mapstructure:"dataset_path"`
	Table  string `mapstructure:"dataset_table"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Model struct {
	Paths         []string      `mapstructure:"model_paths"`
	RemoteTimeout time.Duration `mapstructure:"model_remote_timeout"`
}

type Charts struct {
	Theme string `mapstructure:"chart_theme"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("DATASET_SOURCE", DatasetSourceCSV)
	viper.SetDefault("DATASET_PATH", "dataset/vgsales.csv")
	viper.SetDefault("DATASET_TABLE", "vgsales")

	// Usados apenas com DATASET_SOURCE=postgres
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/vgsales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("MODEL_PATHS", "model/video_game_sales.json,video_game_sales.json")
	viper.SetDefault("MODEL_REMOTE_TIMEOUT", "10s")

	viper.SetDefault("CHART_THEME", "chalk")
}

// NewConfig lê o ambiente (e o .env, se houver) sobre os defaults
func NewConfig() (*Config, error) {
	if path, ok := loadEnvFile(); ok {
		logrus.WithField("path", path).Info("env file loaded")
	}

	SetDefaults()
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env é opcional: sem ele valem ambiente e defaults
	if err := viper.ReadInConfig(); err != nil {
		logrus.WithError(err).Debug("viper did not read .env")
	}

	cfg := &Config{}
	hooks := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	if err := viper.Unmarshal(cfg, viper.DecodeHook(hooks)); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Database.DSN = cfg.Database.dsn()
	return cfg, nil
}

func (d Database) dsn() string {
	return fmt.Sprintf("%s://%s:%s@%s", d.Driver, d.User, d.Password, d.URL)
}

// Validate rejeita combinações que impediriam a inicialização
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case DatasetSourceCSV:
		if c.Dataset.Path == "" {
			return fmt.Errorf("DATASET_PATH must be set when DATASET_SOURCE=%s", DatasetSourceCSV)
		}
	case DatasetSourcePostgres:
		if c.Dataset.Table == "" {
			return fmt.Errorf("DATASET_TABLE must be set when DATASET_SOURCE=%s", DatasetSourcePostgres)
		}
	default:
		return fmt.Errorf("invalid DATASET_SOURCE %q: expected %s or %s", c.Dataset.Source, DatasetSourceCSV, DatasetSourcePostgres)
	}

	if len(c.Model.Paths) == 0 {
		return fmt.Errorf("MODEL_PATHS must list at least one candidate path")
	}

	return nil
}

// loadEnvFile procura .env no diretório atual e no pai
func loadEnvFile() (string, bool) {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.WithError(err).Warn("could not resolve working directory")
		return "", false
	}

	for _, dir := range []string{cwd, filepath.Dir(cwd)} {
		path := filepath.Join(dir, ".env")
		if godotenv.Load(path) == nil {
			return path, true
		}
	}
	return "", false
}
