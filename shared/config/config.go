package config

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Origin of the local development client, always allowed by CORS.
const DevFrontendOrigin = "http://localhost:5173"

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	LogLevel       string   `yaml:"log_level"`
	LogJSON        bool     `yaml:"log_json"`
	SecureHeaders  bool     `yaml:"secure_headers"` // adds HSTS, enable behind https

	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	Pool Pool `yaml:"pool"`
}

// Pool holds database/sql connection pool settings. Zero values fall back to defaults.
type Pool struct {
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	Pg Pg `yaml:"pg"`
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic(fmt.Sprintf("can't unmarshal config file %s: %v", configPath, err))
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder, then applies
// environment overrides. A .env file in the working directory is loaded first if present.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	if err := loadDotenv(".env"); err != nil {
		panic(err.Error())
	}

	cfg := &Config{Public: public, Private: private}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		panic(err.Error())
	}
	cfg.setDefaults()
	return cfg
}

// loadDotenv loads envPath into the process environment. A missing file is not an error.
func loadDotenv(envPath string) error {
	if _, err := os.Stat(envPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("can't stat env file %s: %w", envPath, err)
	}
	if err := godotenv.Load(envPath); err != nil {
		return fmt.Errorf("can't load env file %s: %w", envPath, err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Public.Port = port
	}
	if v := getenv("FRONTEND_URL"); v != "" {
		c.Public.AllowedOrigins = append(c.Public.AllowedOrigins, v)
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.Public.LogLevel = v
	}
	if v := getenv("DATABASE_HOST"); v != "" {
		c.Private.Pg.Host = v
	}
	if v := getenv("DATABASE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DATABASE_PORT %q: %w", v, err)
		}
		c.Private.Pg.Port = port
	}
	if v := getenv("DATABASE_USER"); v != "" {
		c.Private.Pg.User = v
	}
	if v := getenv("DATABASE_PASSWORD"); v != "" {
		c.Private.Pg.Password = v
	}
	if v := getenv("DATABASE_NAME"); v != "" {
		c.Private.Pg.Dbname = v
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Public.Port == 0 {
		c.Public.Port = 3000
	}
	if c.Public.LogLevel == "" {
		c.Public.LogLevel = "info"
	}
	if c.Public.RequestTimeout == 0 {
		c.Public.RequestTimeout = 10 * time.Second
	}
	if c.Public.ShutdownTimeout == 0 {
		c.Public.ShutdownTimeout = 15 * time.Second
	}
	if c.Private.Pg.Port == 0 {
		c.Private.Pg.Port = 5432
	}
}

// Origins returns the CORS allow-list: the dev client plus configured origins, without empties or duplicates.
func (c *Config) Origins() []string {
	seen := map[string]bool{}
	origins := []string{}
	for _, o := range append([]string{DevFrontendOrigin}, c.Public.AllowedOrigins...) {
		if o == "" || seen[o] {
			continue
		}
		seen[o] = true
		origins = append(origins, o)
	}
	return origins
}
