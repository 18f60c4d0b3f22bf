package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App          AppConfig
	Mongo        MongoConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Session      SessionConfig
	Email        EmailConfig
	SMS          SMSConfig
	Consultation ConsultationConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type MongoConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

type SessionConfig struct {
	TTL        time.Duration
	CookieName string
}

// EmailConfig holds the SMTP transport credentials. The email channel is
// disabled when credentials are absent.
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (c EmailConfig) Enabled() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// SMSConfig holds the Twilio account credentials and sender number.
type SMSConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

func (c SMSConfig) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

// ConsultationConfig is the static price table. Prices are checked against
// MaxAmount at booking time so a misconfigured table can never exceed the
// platform's payment ceiling.
type ConsultationConfig struct {
	Prices    map[string]int
	MaxAmount int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env is fine, everything can come from the environment.
	_ = viper.ReadInConfig()

	viper.SetDefault("APP_PORT", "3000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("MONGO_URI", "mongodb://127.0.0.1:27017")
	viper.SetDefault("MONGO_DATABASE", "healthconnect")
	viper.SetDefault("REDIS_HOST", "127.0.0.1")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("CONSULTATION_PRICE_SCHEDULED", 299)
	viper.SetDefault("CONSULTATION_PRICE_INSTANT", 499)
	viper.SetDefault("CONSULTATION_PRICE_EMERGENCY", 999)
	viper.SetDefault("CONSULTATION_MAX_AMOUNT", 1000)

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	sessionTTL, err := time.ParseDuration(viper.GetString("SESSION_TTL"))
	if err != nil {
		sessionTTL = 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Mongo: MongoConfig{
			URI:      viper.GetString("MONGO_URI"),
			Database: viper.GetString("MONGO_DATABASE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Session: SessionConfig{
			TTL:        sessionTTL,
			CookieName: "healthconnect_session",
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			Username: viper.GetString("SMTP_USERNAME"),
			Password: viper.GetString("SMTP_PASSWORD"),
			From:     viper.GetString("SMTP_FROM"),
		},
		SMS: SMSConfig{
			AccountSID: viper.GetString("TWILIO_ACCOUNT_SID"),
			AuthToken:  viper.GetString("TWILIO_AUTH_TOKEN"),
			FromNumber: viper.GetString("TWILIO_FROM_NUMBER"),
		},
		Consultation: ConsultationConfig{
			Prices: map[string]int{
				"scheduled": viper.GetInt("CONSULTATION_PRICE_SCHEDULED"),
				"instant":   viper.GetInt("CONSULTATION_PRICE_INSTANT"),
				"emergency": viper.GetInt("CONSULTATION_PRICE_EMERGENCY"),
			},
			MaxAmount: viper.GetInt("CONSULTATION_MAX_AMOUNT"),
		},
	}

	if config.Email.From == "" {
		config.Email.From = config.Email.Username
	}

	return config, nil
}
