package utils

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Email    EmailConfig
	OTP      OTPConfig
	Session  SessionConfig
	Upload   UploadConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
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
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type OTPConfig struct {
	ExpiryMinutes int
}

type SessionConfig struct {
	CookieName  string
	ExpiryHours int
}

// UploadConfig selects where product images land.
// Backend is "local" (uploads dir served under /uploads/) or "s3".
type UploadConfig struct {
	Backend   string
	Dir       string
	URLPrefix string
	S3        S3Config
}

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	PublicURL string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("OTP_EXPIRY_MINUTES", 10)
	viper.SetDefault("SESSION_COOKIE_NAME", "session_token")
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("UPLOAD_BACKEND", "local")
	viper.SetDefault("UPLOAD_DIR", "uploads/")
	viper.SetDefault("UPLOAD_URL_PREFIX", "/uploads/")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:5174")
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
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
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		OTP: OTPConfig{
			ExpiryMinutes: viper.GetInt("OTP_EXPIRY_MINUTES"),
		},
		Session: SessionConfig{
			CookieName:  viper.GetString("SESSION_COOKIE_NAME"),
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Upload: UploadConfig{
			Backend:   viper.GetString("UPLOAD_BACKEND"),
			Dir:       viper.GetString("UPLOAD_DIR"),
			URLPrefix: viper.GetString("UPLOAD_URL_PREFIX"),
			S3: S3Config{
				Bucket:    viper.GetString("S3_BUCKET"),
				Region:    viper.GetString("S3_REGION"),
				Endpoint:  viper.GetString("S3_ENDPOINT"),
				AccessKey: viper.GetString("S3_ACCESS_KEY"),
				SecretKey: viper.GetString("S3_SECRET_KEY"),
				PublicURL: viper.GetString("S3_PUBLIC_URL"),
			},
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	return config, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
