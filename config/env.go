package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	defaultAppPort      = "8080"
	defaultAppEnv       = "local"
	defaultJWTSecret    = "change-me-in-production"
	defaultCacheTTL     = 30 * time.Second
	defaultRateLimit    = 200
	defaultMaxBodyBytes = 4 << 20
	defaultEventWorkers = 4
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

// Load reads config/app.json and .env once. Missing files are not an error.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"APP_PORT":       defaultAppPort,
		"APP_ENV":        defaultAppEnv,
		"JWT_SECRET":     defaultJWTSecret,
		"REDIS_ADDR":     "",
		"REDIS_PASSWORD": "",
		"SEED_FIXTURES":  "true",
		"AUTH_ENFORCE":   "false",
	}
}

func AppPort() string {
	_ = Load()
	return get("APP_PORT", defaultAppPort)
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

func JWTSecret() string {
	_ = Load()
	return get("JWT_SECRET", defaultJWTSecret)
}

// RedisAddr is empty unless a cache server is configured.
func RedisAddr() string {
	_ = Load()
	return get("REDIS_ADDR", "")
}

func RedisPassword() string {
	_ = Load()
	return get("REDIS_PASSWORD", "")
}

// CacheTTL accepts a Go duration ("45s") or a plain number of seconds.
func CacheTTL() time.Duration {
	_ = Load()
	raw := get("CACHE_TTL", "")
	if raw == "" {
		return defaultCacheTTL
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return defaultCacheTTL
}

// RateLimit is the number of requests one client may make per minute.
func RateLimit() int {
	_ = Load()
	return getInt("RATE_LIMIT", defaultRateLimit)
}

func MaxBodyBytes() int64 {
	_ = Load()
	return int64(getInt("MAX_BODY_BYTES", defaultMaxBodyBytes))
}

func EventWorkers() int {
	_ = Load()
	return getInt("EVENT_WORKERS", defaultEventWorkers)
}

// SeedFixtures reports whether the stores start with the bundled fixtures.
func SeedFixtures() bool {
	_ = Load()
	return getBool("SEED_FIXTURES", true)
}

// AuthEnforce turns on server-side permission checks for the CRUD routes.
func AuthEnforce() bool {
	_ = Load()
	return getBool("AUTH_ENFORCE", false)
}

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mergeEnviron(loaded)

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}

		switch v := val.(type) {
		case string:
			out[k] = strings.TrimSpace(v)
		case float64:
			out[k] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(v)
		}
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

// mergeEnviron lets real environment variables override both files for the
// keys this service knows about.
func mergeEnviron(out map[string]string) {
	for _, key := range knownKeys {
		if v, ok := os.LookupEnv(key); ok {
			out[key] = strings.TrimSpace(v)
		}
	}
}

var knownKeys = []string{
	"APP_PORT", "APP_ENV", "JWT_SECRET", "REDIS_ADDR", "REDIS_PASSWORD",
	"CACHE_TTL", "RATE_LIMIT", "MAX_BODY_BYTES", "EVENT_WORKERS",
	"SEED_FIXTURES", "AUTH_ENFORCE",
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(get(key, ""))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(get(key, ""))
	if err != nil {
		return fallback
	}
	return b
}

// Get reads any config key by name with an optional fallback.
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}

// Set overrides a key for the rest of the process. Intended for tests and
// CLI flags.
func Set(key, value string) {
	_ = Load()
	mu.Lock()
	defer mu.Unlock()
	values[strings.ToUpper(key)] = value
}
