package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	API   APIConfig
	Store StoreConfig
	Redis RedisConfig
	App   AppConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// StoreConfig selects where session tokens live. "memory" keeps them for the
// lifetime of the process, "file" writes them to a state file (one session per
// workstation user), "redis" shares them across front-desk terminals.
type StoreConfig struct {
	Backend    string // memory, file or redis
	FilePath   string
	Namespace  string
	SessionTTL time.Duration
}

type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

type AppConfig struct {
	Name     string
	LoginURL string // where a blocked guest action sends the user
}

func Load(appName string) *Config {
	return &Config{
		API: APIConfig{
			BaseURL: getEnv("HOTEL_API_BASE_URL", "http://localhost:8080"),
			Timeout: getDuration("HOTEL_API_TIMEOUT", 30*time.Second),
		},
		Store: StoreConfig{
			Backend:    getEnv("SESSION_STORE", "file"),
			FilePath:   getEnv("SESSION_FILE", defaultSessionFile(appName)),
			Namespace:  getEnv("SESSION_NAMESPACE", appName),
			SessionTTL: getDuration("SESSION_TTL", 7*24*time.Hour),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		App: AppConfig{
			Name:     appName,
			LoginURL: getEnv("HOTEL_LOGIN_URL", "/login"),
		},
	}
}

func defaultSessionFile(appName string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return dir + string(os.PathSeparator) + appName + string(os.PathSeparator) + "session.json"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
