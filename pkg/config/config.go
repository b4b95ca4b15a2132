package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

func New() *Config {
	once.Do(func() {
		err := godotenv.Load("./configs/.env")
		if err != nil {
			log.Fatal("loading envs error: ", err)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

// MustString fatals when the key is unset. Used for keys the server
// cannot run without (JWT secret, issuer, audience, DB coordinates).
func (c *Config) MustString(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("required config key %s is not set", key)
	}
	return v
}
