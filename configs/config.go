package configs

import (
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	config *Config
	once   sync.Once
)

type Config struct {
	Viper *viper.Viper
}

func GetConfig() *Config {
	once.Do(func() {
		initialize()
	})
	return config
}

func initialize() {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Printf("No config file found, using defaults and environment: %v", err)
	}

	config = &Config{
		Viper: v,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8000")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "pet_social")
	v.SetDefault("database.ssl", "disable")
	v.SetDefault("database.timezone", "UTC")
	v.SetDefault("redis.address", "pet-social-redis:6379")
	v.SetDefault("jwt.expiration_time", 86400)
	v.SetDefault("minio.endpoint", "pet-social-minio:9000")
	v.SetDefault("minio.external_endpoint", "localhost:9000")
	v.SetDefault("minio.use_ssl", false)
}
