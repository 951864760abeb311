package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string        `yaml:"addr"`
	JWTSecret     string        `yaml:"jwt_secret"`
	APITimeout    time.Duration `yaml:"timeout"`
	DatabasePath  string        `yaml:"database_path"`
	MaxConns      int           `yaml:"max_conns"`
	TokenDuration time.Duration `yaml:"token_duration"`
	PublicDir     string        `yaml:"public_dir"`
	SeedDemoData  bool          `yaml:"seed_demo_data"`
}

// LoadConfig builds the configuration from defaults, then environment
// variables, then an optional YAML file (highest precedence). The JWT secret
// has no default: deployments must provide one.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("DOGWALK_ADDR", ":8080"),
		JWTSecret:     os.Getenv("DOGWALK_JWT_SECRET"),
		APITimeout:    15 * time.Second,
		DatabasePath:  getEnv("DOGWALK_DATABASE_PATH", "dogwalk.db"),
		MaxConns:      getEnvInt("DOGWALK_MAX_CONNS", 10),
		TokenDuration: 1 * time.Hour,
		PublicDir:     getEnv("DOGWALK_PUBLIC_DIR", "public"),
		SeedDemoData:  getEnvBool("DOGWALK_SEED_DEMO_DATA", true),
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}

	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}

	return def
}
