package config

import (
	"context"
	"fmt"
	"time"

	"github.com/fhuszti/captions-ms-go/internal/logger"
	"github.com/fhuszti/captions-ms-go/internal/usecase/media"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	ServerPort     int
	MaxUploadBytes int64

	// persistence; an empty DSN keeps records in memory
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// upload; an empty endpoint disables the upload tier
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioPublicURL string
	BucketImages   string
	BucketVideos   string

	RedisAddr       string
	RedisPassword   string
	RecordsCacheTTL time.Duration

	JWTSecret string

	// inference; empty values disable the inference tier
	OllamaHost   string
	CaptionModel string
	SynthURL     string
	SynthModel   string

	// SampleAssetsDir overrides the bundled sample images when set.
	SampleAssetsDir string

	Tiers media.Tiers
}

func setDefaults() {
	viper.SetDefault("MARIADB_MAX_OPEN_CONN", 10)
	viper.SetDefault("MARIADB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("MARIADB_CONN_MAX_LIFETIME", 300)
	viper.SetDefault("MINIO_USE_SSL", false)
	viper.SetDefault("MINIO_BUCKET_IMAGES", "images")
	viper.SetDefault("MINIO_BUCKET_VIDEOS", "videos")
	viper.SetDefault("RECORDS_CACHE_TTL", 60)
	viper.SetDefault("CAPTION_MODEL", "llava")
	viper.SetDefault("MAX_UPLOAD_MB", media.MaxUploadSize/(1024*1024))
	viper.SetDefault("TIER_INFERENCE", true)
	viper.SetDefault("TIER_UPLOAD", true)
	viper.SetDefault("TIER_INLINE_FALLBACK", true)
	viper.SetDefault("TIER_PERSISTENCE", true)
}

func Load() (*Settings, error) {
	ctx := context.Background()
	if err := godotenv.Load(".env"); err != nil {
		logger.Info(ctx, "No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()
	setDefaults()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		logger.Warnf(ctx, "Warning: could not read .env file: %v", err)
	}

	if !viper.IsSet("SERVER_PORT") {
		return nil, fmt.Errorf("SERVER_PORT is required")
	}
	if viper.GetString("MINIO_ENDPOINT") != "" {
		if viper.GetString("MINIO_ACCESS_KEY") == "" {
			return nil, fmt.Errorf("MINIO_ACCESS_KEY is required")
		}
		if viper.GetString("MINIO_SECRET_KEY") == "" {
			return nil, fmt.Errorf("MINIO_SECRET_KEY is required")
		}
	}
	if viper.GetInt("MAX_UPLOAD_MB") <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}

	return &Settings{
		ServerPort:     viper.GetInt("SERVER_PORT"),
		MaxUploadBytes: int64(viper.GetInt("MAX_UPLOAD_MB")) * 1024 * 1024,

		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,

		MinioEndpoint:  viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey: viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:    viper.GetBool("MINIO_USE_SSL"),
		MinioPublicURL: viper.GetString("MINIO_PUBLIC_URL"),
		BucketImages:   viper.GetString("MINIO_BUCKET_IMAGES"),
		BucketVideos:   viper.GetString("MINIO_BUCKET_VIDEOS"),

		RedisAddr:       viper.GetString("REDIS_ADDR"),
		RedisPassword:   viper.GetString("REDIS_PASSWORD"),
		RecordsCacheTTL: time.Duration(viper.GetInt("RECORDS_CACHE_TTL")) * time.Second,

		JWTSecret: viper.GetString("JWT_SECRET"),

		OllamaHost:   viper.GetString("OLLAMA_HOST"),
		CaptionModel: viper.GetString("CAPTION_MODEL"),
		SynthURL:     viper.GetString("SYNTH_URL"),
		SynthModel:   viper.GetString("SYNTH_MODEL"),

		SampleAssetsDir: viper.GetString("SAMPLE_ASSETS_DIR"),

		Tiers: media.Tiers{
			Inference:      viper.GetBool("TIER_INFERENCE"),
			Upload:         viper.GetBool("TIER_UPLOAD"),
			InlineFallback: viper.GetBool("TIER_INLINE_FALLBACK"),
			Persistence:    viper.GetBool("TIER_PERSISTENCE"),
		},
	}, nil
}

// Buckets lists the buckets the upload tier writes to.
func (s *Settings) Buckets() []string {
	return []string{s.BucketImages, s.BucketVideos}
}
