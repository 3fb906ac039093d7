package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string      `yaml:"env" env:"ENV" env-default:"local"`
	StoragePath string      `yaml:"storage_path" env:"STORAGE_PATH" env-required:"true"`
	HTTP        HTTPConfig  `yaml:"http"`
	Redis       RedisConfig `yaml:"redis"`
	Sync        SyncConfig  `yaml:"sync"`
	Codes       CodesConfig `yaml:"codes"`
	JWT         JWTConfig   `yaml:"jwt"`
}

type HTTPConfig struct {
	Port int `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type RedisConfig struct {
	Addr string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
}

type SyncConfig struct {
	Interval time.Duration `yaml:"interval" env:"SYNC_INTERVAL" env-default:"10s"`
}

type CodesConfig struct {
	Alphabet string `yaml:"alphabet" env-default:"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"`
	Length   int    `yaml:"length" env-default:"7"`
}

type JWTConfig struct {
	Secret string        `yaml:"secret" env:"JWT_SECRET" env-required:"true"`
	TTL    time.Duration `yaml:"ttl" env-default:"1h"`
}

func Load(path string) *Config {
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		path = envPath
	}

	var config Config
	err := cleanenv.ReadConfig(path, &config)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &config
}
