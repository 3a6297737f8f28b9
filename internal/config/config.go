package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	GoogleAds    GoogleAds    `mapstructure:",squash"`
	PublishRetry PublishRetry `mapstructure:",squash"`
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

type GoogleAds struct {
	BaseURL         string `mapstructure:"google_ads_base_url"`
	URL             string `mapstructure:"-"`
	Version         string `mapstructure:"google_ads_api_version"`
	TokenURL        string `mapstructure:"google_ads_token_url"`
	DeveloperToken  string `mapstructure:"google_ads_developer_token"`
	ClientID        string `mapstructure:"google_ads_client_id"`
	ClientSecret    string `mapstructure:"google_ads_client_secret"`
	RefreshToken    string `mapstructure:"google_ads_refresh_token"`
	LoginCustomerID string `mapstructure:"google_ads_login_customer_id"`
	CustomerID      string `mapstructure:"google_ads_customer_id"`

	AccessToken    string    `mapstructure:"-"`
	TokenExpiresAt time.Time `mapstructure:"-"`
}

// Configured indica se as credenciais mínimas para publicar estão presentes
func (g GoogleAds) Configured() bool {
	return g.DeveloperToken != "" &&
		g.ClientID != "" &&
		g.ClientSecret != "" &&
		g.RefreshToken != ""
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type PublishRetry struct {
	CronSchedule        string `mapstructure:"publish_retry_cron"`
	BatchSize           int    `mapstructure:"publish_retry_batch_size"`
	RequestDelaySeconds int    `mapstructure:"publish_retry_request_delay_seconds"`
	Enabled             bool   `mapstructure:"publish_retry_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/campaigns")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_API_VERSION", "v22")
	viper.SetDefault("GOOGLE_ADS_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_ADS_REFRESH_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_CUSTOMER_ID", "")

	// Defaults para reprocessamento de publicações com erro transitório
	viper.SetDefault("PUBLISH_RETRY_CRON", "*/30 * * * *")     // A cada 30 minutos
	viper.SetDefault("PUBLISH_RETRY_BATCH_SIZE", 10)           // Campanhas por ciclo
	viper.SetDefault("PUBLISH_RETRY_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("PUBLISH_RETRY_ENABLED", false)           // Habilitar reprocessamento

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)

	// A API aceita apenas IDs de cliente sem hífens
	config.GoogleAds.CustomerID = strings.ReplaceAll(config.GoogleAds.CustomerID, "-", "")
	config.GoogleAds.LoginCustomerID = strings.ReplaceAll(config.GoogleAds.LoginCustomerID, "-", "")

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
