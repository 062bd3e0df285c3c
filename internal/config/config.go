package config

import (
	"github.com/kelseyhightower/envconfig"
)

type S3Config struct {
	Endpoint        string `envconfig:"S3_ENDPOINT"`
	AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY"`
	Bucket          string `envconfig:"S3_BUCKET"`
	Region          string `envconfig:"S3_REGION" default:"auto"`
}

type Config struct {
	Port   string `envconfig:"PORT" default:"8080"`
	AppEnv string `envconfig:"APP_ENV" default:"development"`

	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`

	// Upload pipeline limits.
	MaxFileSize   int64 `envconfig:"MAX_FILE_SIZE" default:"10485760"`
	MaxBatchFiles int   `envconfig:"MAX_BATCH_FILES" default:"50"`

	UploadDir      string `envconfig:"UPLOAD_DIR" default:"uploads"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173"`

	// "local" keeps files on the UploadDir tree; "s3" targets any
	// S3-compatible store.
	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"local"`
	S3            S3Config
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
