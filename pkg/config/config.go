package config

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/alapierre/credstore/pkg/logging"
)

var logger = logging.Component("pkg/config")

// EnvPrefix marks environment variables picked up by GetEnvConfig.
const EnvPrefix = "CREDSTORE_"

const (
	KeyBackend       = "CREDSTORE_BACKEND"
	KeyService       = "CREDSTORE_SERVICE"
	KeyAccessGroup   = "CREDSTORE_ACCESS_GROUP"
	KeyAccessibility = "CREDSTORE_ACCESSIBILITY"
	KeyProfile       = "CREDSTORE_PROFILE"
)

type Config map[string]string

func Parse(r io.Reader) (Config, error) {
	config := make(Config)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		config[key] = value
	}
	return config, scanner.Err()
}

// LoadFile returns an empty Config when path does not exist.
func LoadFile(path string) (Config, error) {
	logger.Debugf("Loading config from %s", path)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(Config), nil
		}
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Merge copies non-empty values of other into c.
func (c Config) Merge(other Config) {
	for k, v := range other {
		if v == "" {
			continue
		}
		c[k] = v
	}
}

// Get treats an empty value the same as a missing key.
func (c Config) Get(key string, defaultValue string) string {
	if v, ok := c[key]; ok && v != "" {
		return v
	}
	return defaultValue
}

// MergeConfigs merges configs in priority order, first wins.
func MergeConfigs(priority ...Config) Config {
	res := make(Config)
	for i := len(priority) - 1; i >= 0; i-- {
		res.Merge(priority[i])
	}
	return res
}

func GetEnvConfig() Config {
	res := make(Config)
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, EnvPrefix) {
			parts := strings.SplitN(env, "=", 2)
			res[parts[0]] = parts[1]
		}
	}
	return res
}
