package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

var ErrUnknownConnection = errors.New("unknown database connection")

const DefaultConnection = "pgsql"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Generator GeneratorConfig `mapstructure:"generator"`
}

type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DatabaseConfig maps connection names to database URLs
// (postgres://, mysql://, sqlite:).
type DatabaseConfig struct {
	Default     string            `mapstructure:"default"`
	Connections map[string]string `mapstructure:"connections"`
	Migrate     bool              `mapstructure:"migrate"`
	// CreateIfMissing creates the default Postgres database on startup.
	CreateIfMissing bool `mapstructure:"create_if_missing"`
}

type AuthConfig struct {
	AccessTokenSecret string `mapstructure:"access_token_secret"`
}

type GeneratorConfig struct {
	BasePath  string `mapstructure:"base_path"`
	StubsPath string `mapstructure:"stubs_path"`
}

// Load reads config.yaml from ./configs or the working directory, then
// environment variables (SERVER_PORT, DATABASE_DEFAULT, ...). A missing file
// is not an error.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./configs", "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Println("Config file not found, using defaults and environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if cfg.Database.Connections == nil {
		cfg.Database.Connections = map[string]string{}
	}
	if _, ok := cfg.Database.Connections[DefaultConnection]; !ok {
		if dsn := postgresFromEnv(v); dsn != "" {
			cfg.Database.Connections[DefaultConnection] = dsn
		}
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("database.default", DefaultConnection)
	v.SetDefault("database.migrate", true)
	v.SetDefault("database.create_if_missing", false)

	v.SetDefault("generator.base_path", ".")
	v.SetDefault("generator.stubs_path", "")

	// shared with the token issuer
	_ = v.BindEnv("auth.access_token_secret", "AUTH_ACCESS_TOKEN_SECRET", "ACCESS_TOKEN_SECRET")
}

// postgresFromEnv assembles the default connection from the DB_* variables.
func postgresFromEnv(v *viper.Viper) string {
	host := v.GetString("DB_HOST")
	database := v.GetString("DB_DATABASE")
	if host == "" || database == "" {
		return ""
	}
	port := v.GetString("DB_PORT")
	if port == "" {
		port = "5432"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(v.GetString("DB_USERNAME"), v.GetString("DB_PASSWORD")),
		Host:     host + ":" + port,
		Path:     "/" + database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Connection resolves a connection name to its URL. An empty name selects the
// default connection.
func (c *Config) Connection(name string) (string, error) {
	if name == "" {
		name = c.Database.Default
	}
	dsn, ok := c.Database.Connections[name]
	if !ok || dsn == "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownConnection, name)
	}
	return dsn, nil
}
