package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configDir  = ".accessdbcheck"
	configFile = "config"
	configType = "yaml"
	envPrefix  = "ACCESSDB"
)

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"dsn":       "connection.dsn",
	"driver":    "connection.driver",
	"host":      "connection.host",
	"port":      "connection.port",
	"database":  "connection.database",
	"user":      "connection.username",
	"table":     "check.table",
	"rows":      "check.preview_rows",
	"format":    "check.format",
	"log-level": "log.level",
}

// Options controls where Load looks for configuration.
type Options struct {
	// Path is an explicit config file. When empty, ~/.accessdbcheck/config.yaml
	// is used if it exists.
	Path string
	// EnvFile is a dotenv file loaded into the environment first. Missing is fine.
	EnvFile string
	// Flags are bound over every other source.
	Flags *pflag.FlagSet
}

// Load resolves the configuration from defaults, the config file, ACCESSDB_*
// environment variables and flags, in increasing order of precedence.
func Load(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if opts.Path != "" {
		v.SetConfigFile(opts.Path)
	} else {
		dir, err := configDirPath()
		if err != nil {
			return nil, fmt.Errorf("config dir: %w", err)
		}
		v.SetConfigName(configFile)
		v.SetConfigType(configType)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || opts.Path != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Connection.DSN == "" && cfg.Connection.Password == "" {
		secret, err := lookupSecret(cfg.Connection.Username)
		if err != nil {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("keyring lookup failed: %v", err))
		}
		cfg.Connection.Password = secret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults registers every key so that environment variables can
// override keys absent from the config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("connection.dsn", "")
	v.SetDefault("connection.driver", "")
	v.SetDefault("connection.odbc_driver", "ODBC Driver 17 for SQL Server")
	v.SetDefault("connection.host", "localhost")
	v.SetDefault("connection.port", 1433)
	v.SetDefault("connection.database", "AccessDb")
	v.SetDefault("connection.username", "sa")
	v.SetDefault("connection.password", "")
	v.SetDefault("connection.trust_server_certificate", true)

	v.SetDefault("check.table", "AccessRequest")
	v.SetDefault("check.preview_rows", 5)
	v.SetDefault("check.format", FormatDetail)

	v.SetDefault("log.level", "warn")
}

func configDirPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDir), nil
}
