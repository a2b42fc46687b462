package resource

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/spf13/viper"

	"weather-widget/configs"
)

var (
	mu         sync.RWMutex
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// init loads application properties from YAML
func init() {
	if err := Load(); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
}

// Load reads the file named by PROPERTIES_FILE_PATH, falling back to the
// embedded configs/application.yml. It can be called again after the
// environment changes (e.g. once a .env file has been loaded).
func Load() error {
	if path, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok && path != "" {
		return Init(path)
	}
	return InitFromBytes(configs.ApplicationYML)
}

// Init loads properties from a YAML file on disk.
func Init(filepath string) error {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("failed to read properties file %s: %w", filepath, err)
	}
	return InitFromBytes(content)
}

// InitFromBytes replaces the current properties with the given YAML document.
func InitFromBytes(content []byte) error {
	raw := viper.New()
	raw.SetConfigType("yml")
	if err := raw.ReadConfig(bytes.NewReader(content)); err != nil {
		return fmt.Errorf("failed to parse properties: %w", err)
	}

	resolved := viper.New()
	parsePropertiesMap("", raw.AllSettings(), resolved)

	mu.Lock()
	properties = resolved
	mu.Unlock()
	return nil
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result *viper.Viper) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result.Set(fullKey, resolveEnvVariable(v))
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result.Set(fullKey, v)
		case []any:
			result.Set(fullKey, v)
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable replaces every ${ENV:default} placeholder in value
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(placeholder string) string {
		matches := envPattern.FindStringSubmatch(placeholder)
		if envValue, exists := os.LookupEnv(matches[1]); exists {
			return envValue
		}
		return matches[2]
	})
}

func current() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	return properties
}

func GetString(key string) string {
	return current().GetString(key)
}

func GetStringOrDefault(key, defaultValue string) string {
	if value := current().GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDuration(key string) time.Duration {
	return current().GetDuration(key)
}

func GetInt(key string) int {
	return current().GetInt(key)
}
