package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`

	DBUser     string `yaml:"db_user" env:"DB_USER" env-default:"root"`
	DBPassword string `yaml:"db_password" env:"DB_PASSWORD"`
	DBHost     string `yaml:"db_host" env:"DB_HOST" env-default:"localhost"`
	DBPort     int    `yaml:"db_port" env:"DB_PORT" env-default:"3306"`
	DBName     string `yaml:"db_name" env:"DB_NAME" env-default:"print3d"`
	DBPoolSize int    `yaml:"db_pool_size" env:"DB_POOL_SIZE" env-default:"10"`

	S3 S3Config `yaml:"s3"`

	ExchangeRateINR float64 `yaml:"exchange_rate_inr" env:"EXCHANGE_RATE_INR" env-default:"83"`
	UploadDir       string  `yaml:"upload_dir" env:"UPLOAD_DIR" env-default:"./uploads"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"30s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type S3Config struct {
	AccessKey     string `yaml:"access_key" env:"S3_ACCESS_KEY"`
	SecretKey     string `yaml:"secret_key" env:"S3_SECRET_KEY"`
	Region        string `yaml:"region" env:"S3_REGION"`
	Bucket        string `yaml:"bucket" env:"S3_BUCKET"`
	ACL           string `yaml:"acl" env:"S3_ACL" env-default:"private"`
	PresignExpiry int    `yaml:"presign_expiry_seconds" env:"PRESIGN_EXPIRY_SECONDS" env-default:"60"`
}

// Enabled reports whether the object-store backend should be used.
// All four credentials must be present; anything less falls back to disk.
func (s S3Config) Enabled() bool {
	return s.AccessKey != "" && s.SecretKey != "" && s.Region != "" && s.Bucket != ""
}

func MustConfig() *Config {
	// .env is optional, environment variables win either way.
	_ = godotenv.Load()

	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			log.Fatalf("cannot read config %s: %s", path, err)
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from env: %s", err)
	}

	return &cfg
}
