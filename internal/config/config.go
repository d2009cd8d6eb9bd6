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

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	WhatsApp    WhatsApp    `mapstructure:",squash"`
	Render      Render      `mapstructure:",squash"`
	StatusSync  StatusSync  `mapstructure:",squash"`
	OfferImport OfferImport `mapstructure:",squash"`
	SecretKey   string      `mapstructure:"secret_key"`
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

type App struct {
	LogLevel              string `mapstructure:"log_level"`
	DashboardSeriesMonths int    `mapstructure:"dashboard_series_months"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// WhatsApp guarda as credenciais da Cloud API (Graph API da Meta) usada
// no envio de ofertas.
type WhatsApp struct {
	BaseURL        string    `mapstructure:"whatsapp_base_url"`
	URL            string    `mapstructure:"whatsapp_url"`
	Version        string    `mapstructure:"whatsapp_version"`
	AccessToken    string    `mapstructure:"whatsapp_access_token"`
	AppID          string    `mapstructure:"whatsapp_app_id"`
	AppSecret      string    `mapstructure:"whatsapp_app_secret"`
	LongLivedToken string    `mapstructure:"whatsapp_long_lived_token"`
	PhoneNumberID  string    `mapstructure:"whatsapp_phone_number_id"`
	Enabled        bool      `mapstructure:"whatsapp_enabled"`
	TokenExpiresAt time.Time `mapstructure:"-"`
}

// Render identifica o serviço na plataforma de hospedagem onde os
// tokens renovados são persistidos como secret files.
type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type StatusSync struct {
	CronSchedule      string `mapstructure:"status_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"status_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"status_sync_enabled"`
}

type OfferImport struct {
	MaxCodeDistance   int `mapstructure:"offer_import_max_code_distance"`
	MaxConcurrentJobs int `mapstructure:"offer_broadcast_max_concurrent_jobs"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/backoffice")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("WHATSAPP_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("WHATSAPP_VERSION", "v22.0")
	viper.SetDefault("WHATSAPP_APP_ID", "your_app_id")
	viper.SetDefault("WHATSAPP_APP_SECRET", "your_app_secret")
	viper.SetDefault("WHATSAPP_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("WHATSAPP_PHONE_NUMBER_ID", "")
	viper.SetDefault("WHATSAPP_ENABLED", false)

	// Defaults para sincronização de status de clientes
	viper.SetDefault("STATUS_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("STATUS_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("STATUS_SYNC_ENABLED", false)

	viper.SetDefault("OFFER_IMPORT_MAX_CODE_DISTANCE", 1)
	viper.SetDefault("OFFER_BROADCAST_MAX_CONCURRENT_JOBS", 3)

	viper.SetDefault("DASHBOARD_SERIES_MONTHS", 12)
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

	config.WhatsApp.URL = fmt.Sprintf("%s/%s", config.WhatsApp.BaseURL, config.WhatsApp.Version)

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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
