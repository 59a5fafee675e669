// config/config.go
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/gewnthar/imagefetch/utils"
)

type HTTPConfig struct {
	TimeoutStr string        `yaml:"timeout"`
	UserAgent  string        `yaml:"user_agent"`
	Timeout    time.Duration `yaml:"-"` // Parsed duration, 0 means no timeout
}

type ManifestConfig struct {
	Path string `yaml:"path"` // CSV with a filename,url header; rows are appended to the built-in table
}

type ReportConfig struct {
	Path string `yaml:"path"` // CSV run report, skipped when empty
}

type DiscoverConfig struct {
	PageURL  string `yaml:"page_url"`
	Selector string `yaml:"selector"` // defaults to "img"
}

type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

type Config struct {
	OutputDir string           `yaml:"output_dir"`
	HTTP      HTTPConfig       `yaml:"http"`
	Manifest  ManifestConfig   `yaml:"manifest"`
	Report    ReportConfig     `yaml:"report"`
	Discover  []DiscoverConfig `yaml:"discover"`
	Database  DatabaseConfig   `yaml:"database"`
}

var AppConfig = Default()

// DefaultPaths are searched in order when no explicit config path is given.
var DefaultPaths = []string{
	"imagefetch.yaml",
	"config/imagefetch.yaml",
}

// Environment variables that override database settings. They may come from a .env file.
const (
	EnvDBHost     = "IMAGEFETCH_DB_HOST"
	EnvDBPort     = "IMAGEFETCH_DB_PORT"
	EnvDBUser     = "IMAGEFETCH_DB_USER"
	EnvDBPassword = "IMAGEFETCH_DB_PASSWORD"
	EnvDBName     = "IMAGEFETCH_DB_NAME"
)

// Default returns the configuration of a plain run: built-in table into public/images,
// no report, no history, no HTTP timeout.
func Default() Config {
	return Config{
		OutputDir: utils.DefaultOutputDir,
		Database: DatabaseConfig{
			Host:   "localhost",
			Port:   "3306",
			DBName: "imagefetch",
		},
	}
}

// FindConfigFile returns the first of DefaultPaths that exists, or "" if none do.
func FindConfigFile() string {
	for _, p := range DefaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// LoadConfig reads the YAML file at configPath into AppConfig, then applies the .env
// overlay. An empty configPath means defaults only.
func LoadConfig(configPath string, envFile string) error {
	cfg, err := Load(configPath, envFile)
	if err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

// Load is LoadConfig without touching AppConfig.
func Load(configPath string, envFile string) (Config, error) {
	cfg := Default()

	if configPath != "" {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
		}
		log.Printf("Config: Loaded configuration from %s\n", configPath)
	}

	if envFile != "" {
		// A missing .env is normal; anything else is not.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}
	applyEnv(&cfg.Database)

	if cfg.OutputDir == "" {
		cfg.OutputDir = utils.DefaultOutputDir
	}

	if cfg.HTTP.TimeoutStr != "" {
		d, err := time.ParseDuration(cfg.HTTP.TimeoutStr)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse http timeout: %w", err)
		}
		if d < 0 {
			return cfg, fmt.Errorf("http timeout must not be negative, got %s", d)
		}
		cfg.HTTP.Timeout = d
	}

	for i, d := range cfg.Discover {
		if d.PageURL == "" {
			return cfg, fmt.Errorf("discover entry %d has no page_url", i)
		}
		if d.Selector == "" {
			cfg.Discover[i].Selector = "img"
		}
	}

	return cfg, nil
}

func applyEnv(db *DatabaseConfig) {
	if v := os.Getenv(EnvDBHost); v != "" {
		db.Host = v
	}
	if v := os.Getenv(EnvDBPort); v != "" {
		db.Port = v
	}
	if v := os.Getenv(EnvDBUser); v != "" {
		db.User = v
	}
	if v := os.Getenv(EnvDBPassword); v != "" {
		db.Password = v
	}
	if v := os.Getenv(EnvDBName); v != "" {
		db.DBName = v
	}
}
