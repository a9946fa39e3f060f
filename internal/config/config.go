package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Estratégias de agregação de categorias
const (
	CategoryStrategySkip   = "skip"
	CategoryStrategyBucket = "bucket"
)

// Tipos de armazenamento de sessão
const (
	SessionStorePostgres = "postgres"
	SessionStoreMemory   = "memory"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Backend      Backend      `mapstructure:",squash"`
	Session      Session      `mapstructure:",squash"`
	SessionPurge SessionPurge `mapstructure:",squash"`
	Dashboard    Dashboard    `mapstructure:",squash"`
	Import       Import       `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Backend aponta para a API Spendy que detém os dados
type Backend struct {
	BaseURL string        `mapstructure:"spendy_api_base_url"`
	Timeout time.Duration `mapstructure:"spendy_api_timeout"`
}

type Session struct {
	Store string        `mapstructure:"session_store"`
	TTL   time.Duration `mapstructure:"session_ttl"`
	File  string        `mapstructure:"session_file"`
}

type SessionPurge struct {
	CronSchedule string `mapstructure:"session_purge_cron"`
	Enabled      bool   `mapstructure:"session_purge_enabled"`
}

type Dashboard struct {
	CategoryStrategy    string `mapstructure:"category_strategy"`
	UncategorizedLabel  string `mapstructure:"uncategorized_label"`
	MonthlyErrorMessage string `mapstructure:"monthly_error_message"`
}

type Import struct {
	ClassifierFile string `mapstructure:"classifier_file"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/spendy?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SPENDY_API_BASE_URL", "http://localhost:8080")
	viper.SetDefault("SPENDY_API_TIMEOUT", "15s")

	viper.SetDefault("SESSION_STORE", SessionStoreMemory)
	viper.SetDefault("SESSION_TTL", "24h")
	viper.SetDefault("SESSION_FILE", "")

	viper.SetDefault("SESSION_PURGE_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("SESSION_PURGE_ENABLED", true)

	viper.SetDefault("CATEGORY_STRATEGY", CategoryStrategySkip)
	viper.SetDefault("UNCATEGORIZED_LABEL", "Uncategorized")
	viper.SetDefault("MONTHLY_ERROR_MESSAGE", "Grafico mensile non disponibile al momento.")

	viper.SetDefault("CLASSIFIER_FILE", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Opcional, já que o godotenv já populou o ambiente
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar configuração")
	}

	config.Backend.BaseURL = strings.TrimRight(config.Backend.BaseURL, "/")
	config.Server.AllowedOrigins = trimAll(config.Server.AllowedOrigins)

	if config.Session.File == "" {
		config.Session.File = defaultSessionFile()
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejeita combinações de configuração que não fazem sentido
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return errors.New("SPENDY_API_BASE_URL é obrigatório")
	}

	if c.Backend.Timeout <= 0 {
		return errors.Errorf("SPENDY_API_TIMEOUT inválido: %s", c.Backend.Timeout)
	}

	switch c.Dashboard.CategoryStrategy {
	case CategoryStrategySkip, CategoryStrategyBucket:
	default:
		return errors.Errorf("CATEGORY_STRATEGY inválida: %q (valores aceitos: skip, bucket)", c.Dashboard.CategoryStrategy)
	}

	switch c.Session.Store {
	case SessionStorePostgres, SessionStoreMemory:
	default:
		return errors.Errorf("SESSION_STORE inválido: %q (valores aceitos: postgres, memory)", c.Session.Store)
	}

	if c.Session.TTL <= 0 {
		return errors.Errorf("SESSION_TTL inválido: %s", c.Session.TTL)
	}

	return nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "spendy", "session.json")
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
