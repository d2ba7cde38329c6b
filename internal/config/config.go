package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DB        DBConfig        `envPrefix:"DB_"`
	Storage   StorageConfig   `envPrefix:"STORAGE_"`
	Redis     RedisConfig     `envPrefix:"REDIS_"`
	Auth      AuthConfig      `envPrefix:"AUTH_"`
	Dashboard DashboardConfig `envPrefix:"DASHBOARD_"`
}

// DBConfig selects the dashboard database. Type defaults to sqlite, and an
// empty DB_TYPE still resolves to that default. DB_TYPE=none disables
// persistence and the dashboard falls back to its built-in sample figures.
type DBConfig struct {
	Type     string `env:"TYPE" envDefault:"sqlite"`
	DSN      string `env:"DSN" envDefault:""`
	User     string `env:"USER" envDefault:""`
	Password string `env:"PASSWORD" envDefault:""`
	Addr     string `env:"ADDR" envDefault:""`
	Name     string `env:"NAME" envDefault:"cloudvault"`
	Path     string `env:"PATH" envDefault:"datas/cloudvault.db"`
	Port     string `env:"PORT" envDefault:"3306"`
	Seed     bool   `env:"SEED" envDefault:"true"`
}

type StorageConfig struct {
	Type           string `env:"TYPE" envDefault:"local"`
	LocalDir       string `env:"LOCAL_DIR" envDefault:"datas/files"`
	PublicBaseURL  string `env:"PUBLIC_BASE_URL" envDefault:"/files"`
	QuotaBytes     int64  `env:"QUOTA_BYTES" envDefault:"107374182400"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" envDefault:"52428800"`

	S3  S3Config  `envPrefix:"S3_"`
	OSS OSSConfig `envPrefix:"OSS_"`
	COS COSConfig `envPrefix:"COS_"`
	R2  R2Config  `envPrefix:"R2_"`
}

// S3Config covers Amazon S3 and S3 compatible endpoints.
type S3Config struct {
	Region          string `env:"REGION"`
	Bucket          string `env:"BUCKET"`
	Prefix          string `env:"PREFIX"`
	Endpoint        string `env:"ENDPOINT"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	SessionToken    string `env:"SESSION_TOKEN"`
	ForcePathStyle  bool   `env:"FORCE_PATH_STYLE" envDefault:"false"`
}

// OSSConfig is the Aliyun OSS backend.
type OSSConfig struct {
	Endpoint        string `env:"ENDPOINT"`
	Bucket          string `env:"BUCKET"`
	Prefix          string `env:"PREFIX"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	AccessKeySecret string `env:"ACCESS_KEY_SECRET"`
}

// COSConfig is the Tencent Cloud COS backend.
type COSConfig struct {
	BucketURL string `env:"BUCKET_URL"`
	Prefix    string `env:"PREFIX"`
	SecretID  string `env:"SECRET_ID"`
	SecretKey string `env:"SECRET_KEY"`
}

// R2Config is the Cloudflare R2 backend.
type R2Config struct {
	AccountID       string `env:"ACCOUNT_ID"`
	Endpoint        string `env:"ENDPOINT"`
	Region          string `env:"REGION" envDefault:"auto"`
	Bucket          string `env:"BUCKET"`
	Prefix          string `env:"PREFIX"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
}

// RedisConfig enables the dashboard summary cache when Addr is set.
type RedisConfig struct {
	Addr     string        `env:"ADDR" envDefault:""`
	Password string        `env:"PASSWORD" envDefault:""`
	DB       int           `env:"DB" envDefault:"0"`
	TTL      time.Duration `env:"TTL" envDefault:"30s"`
}

// AuthConfig holds the placeholder credential pair accepted by the sign-in
// endpoint and the settings the sign-in pages use to reach it.
type AuthConfig struct {
	PlaceholderEmail    string        `env:"PLACEHOLDER_EMAIL" envDefault:"user@example.com"`
	PlaceholderPassword string        `env:"PLACEHOLDER_PASSWORD" envDefault:"password123"`
	APIBaseURL          string        `env:"API_BASE_URL" envDefault:""`
	ClientTimeout       time.Duration `env:"CLIENT_TIMEOUT" envDefault:"10s"`
}

type DashboardConfig struct {
	ImageRemoteHosts  []string `env:"IMAGE_REMOTE_HOSTS" envSeparator:"," envDefault:"assets.basehub.com,basehub.earth"`
	NotificationLimit int      `env:"NOTIFICATION_LIMIT" envDefault:"20"`
	BackupLimit       int      `env:"BACKUP_LIMIT" envDefault:"10"`
}

func ParseConfig() (Config, error) {
	var conf Config
	if err := env.Parse(&conf); err != nil {
		logrus.WithError(err).Error("env.Parse error")
		return Config{}, err
	}
	logrus.WithFields(logrus.Fields{
		"http_port":    conf.HTTPPort,
		"db_type":      conf.DB.Type,
		"storage_type": conf.Storage.Type,
		"redis":        conf.Redis.Addr != "",
		"auth_api":     conf.AuthAPIBaseURL(),
	}).Debug("config loaded")
	return conf, nil
}

// AuthAPIBaseURL is where the sign-in pages send their JSON requests. It
// defaults to this server's own listener.
func (c Config) AuthAPIBaseURL() string {
	if base := strings.TrimSpace(c.Auth.APIBaseURL); base != "" {
		return strings.TrimRight(base, "/")
	}
	port := strings.TrimSpace(c.HTTPPort)
	if port == "" {
		port = "8080"
	}
	return fmt.Sprintf("http://127.0.0.1:%s", port)
}

// Level parses LogLevel, defaulting to info.
func (c Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(strings.TrimSpace(c.LogLevel))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
