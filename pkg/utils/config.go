package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Email    EmailConfig
	Media    MediaConfig
	OTP      OTPConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Env         string
	LogPath     string
	FrontendURL string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type EmailConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	From       string
	AdminEmail string
}

type MediaConfig struct {
	StoreURL      string
	APIKey        string
	MaxUploadSize int64
}

type OTPConfig struct {
	ExpiryHours        int
	Length             int
	ResetExpiryMinutes int
}

// Production reports whether the app runs in production mode. Error detail
// in 500 responses is suppressed when true.
func (c *Config) Production() bool {
	return c.App.Env == "production"
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_EXPIRY_HOURS", 72)
	viper.SetDefault("OTP_EXPIRY_HOURS", 24)
	viper.SetDefault("OTP_LENGTH", 6)
	viper.SetDefault("RESET_EXPIRY_MINUTES", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("MEDIA_MAX_UPLOAD", 10<<20)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:        viper.GetString("APP_NAME"),
			Port:        viper.GetString("PORT"),
			Env:         viper.GetString("APP_ENV"),
			LogPath:     viper.GetString("LOG_PATH"),
			FrontendURL: viper.GetString("FRONTEND_URL"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		Email: EmailConfig{
			Host:       viper.GetString("SMTP_HOST"),
			Port:       viper.GetString("SMTP_PORT"),
			User:       viper.GetString("SMTP_USER"),
			Password:   viper.GetString("SMTP_PASS"),
			From:       viper.GetString("EMAIL_FROM"),
			AdminEmail: viper.GetString("ADMIN_EMAIL"),
		},
		Media: MediaConfig{
			StoreURL:      viper.GetString("MEDIA_STORE_URL"),
			APIKey:        viper.GetString("MEDIA_API_KEY"),
			MaxUploadSize: viper.GetInt64("MEDIA_MAX_UPLOAD"),
		},
		OTP: OTPConfig{
			ExpiryHours:        viper.GetInt("OTP_EXPIRY_HOURS"),
			Length:             viper.GetInt("OTP_LENGTH"),
			ResetExpiryMinutes: viper.GetInt("RESET_EXPIRY_MINUTES"),
		},
	}

	return config, nil
}
