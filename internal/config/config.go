package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Addr           string
	DBPath         string
	MediaDir       string
	Env            string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads configuration from environment variables, falling back to a
// .env file outside production.
func Load() Config {
	env := getenv("HIVER_ENV", "dev")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Debug().Msg("no .env file found; using environment variables")
		}
	}

	return Config{
		Addr:           getenv("HIVER_ADDR", ":5000"),
		DBPath:         getenv("HIVER_DB", "hiver.db"),
		MediaDir:       getenv("HIVER_MEDIA_DIR", "media"),
		Env:            env,
		RateLimitRPS:   getenvFloat("HIVER_RATE_LIMIT_RPS", 50),
		RateLimitBurst: getenvInt("HIVER_RATE_LIMIT_BURST", 100),
	}
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("not an integer; using default")
		return def
	}
	return n
}

func getenvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("not a number; using default")
		return def
	}
	return f
}
