package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config carries every credential and tunable the service needs. It is built
// once in main and injected into each component; nothing reads the
// environment after startup.
type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Shopify     Shopify     `mapstructure:",squash"`
	GoogleAds   GoogleAds   `mapstructure:",squash"`
	MetaAds     MetaAds     `mapstructure:",squash"`
	Attribution Attribution `mapstructure:",squash"`
	SummarySync SummarySync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
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

type Shopify struct {
	Store       string `mapstructure:"shopify_store"`
	AccessToken string `mapstructure:"shopify_password"`
	APIVersion  string `mapstructure:"shopify_api_version"`
	GraphQLURL  string `mapstructure:"-"`
}

type GoogleAds struct {
	ClientID        string `mapstructure:"google_client_id"`
	ClientSecret    string `mapstructure:"google_client_secret"`
	RefreshToken    string `mapstructure:"google_refresh_token"`
	DeveloperToken  string `mapstructure:"google_ads_developer_token"`
	CustomerID      string `mapstructure:"google_ads_customer_id"`
	LoginCustomerID string `mapstructure:"google_ads_login_customer_id"`
	TokenURL        string `mapstructure:"google_oauth_token_url"`
	APIURL          string `mapstructure:"google_ads_api_url"`
}

type MetaAds struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	Version     string `mapstructure:"meta_version"`
	URL         string `mapstructure:"-"`
	AccessToken string `mapstructure:"fb_access_token"`
	AdAccountID string `mapstructure:"fb_ad_account_id"`
}

// Attribution configures the UTM sources attributed to the paid-social
// channel. Meta injects `{{site_source_name}}` literally when the macro is
// left unresolved, so it is part of the default set.
type Attribution struct {
	PaidSocialSources []string `mapstructure:"paid_social_sources"`
}

type SummarySync struct {
	CronSchedule string `mapstructure:"summary_sync_cron"`
	LookbackDays int    `mapstructure:"summary_sync_lookback_days"`
	Enabled      bool   `mapstructure:"summary_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 3001)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SHOPIFY_API_VERSION", "2023-10")

	viper.SetDefault("GOOGLE_OAUTH_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_ADS_API_URL", "https://googleads.googleapis.com/v20")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v19.0")

	viper.SetDefault("PAID_SOCIAL_SOURCES", "facebook,instagram,meta,fb,ig,{{site_source_name}}")

	viper.SetDefault("SUMMARY_SYNC_CRON", "0 3 * * *") // every day at 3am
	viper.SetDefault("SUMMARY_SYNC_LOOKBACK_DAYS", 3)
	viper.SetDefault("SUMMARY_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env): ", err)
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

	config.Shopify.GraphQLURL = fmt.Sprintf(
		"https://%s/admin/api/%s/graphql.json",
		config.Shopify.Store,
		config.Shopify.APIVersion,
	)

	config.MetaAds.URL = fmt.Sprintf("%s/%s", config.MetaAds.BaseURL, config.MetaAds.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile loads the .env file from the usual local development locations.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from: ", location)
			return
		}
	}

	logrus.Info("no .env file found, relying on environment variables")
}
