package commands

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/agiangrant/hashtags/internal/debug"
)

// Stdout receives command output.
var Stdout io.Writer = os.Stdout

// Env holds defaults read from the environment and .env.
type Env struct {
	Theme string
	Width float32
	Debug bool
}

var env = Env{Width: 320}

// LoadEnv reads .env (if present) and the HASHTAGS_* variables.
func LoadEnv() Env {
	// A missing .env is fine
	_ = godotenv.Load()

	env = Env{
		Theme: getEnv("HASHTAGS_THEME", ""),
		Width: getEnvFloat("HASHTAGS_WIDTH", 320),
		Debug: getEnvBool("HASHTAGS_DEBUG", false),
	}
	if env.Debug {
		debug.SetOutput(os.Stderr)
	}
	return env
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float32) float32 {
	v, err := strconv.ParseFloat(os.Getenv(key), 32)
	if err != nil {
		return fallback
	}
	return float32(v)
}

func getEnvBool(key string, fallback bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return fallback
}
