// Package config contains code to set the default values and read
// config files and environment variables used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	_                  = pflag.Bool("setup-db", false, "Creates the database schema and exits")
	validLogLevels     = []string{"debug", "info", "warn", "error", "fatal"}
	validDBDrivers     = []string{"sqlite", "postgres"}
	validDiscordScopes = []string{"identify guilds", "identify email guilds"}
)

func genSecret() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	// A missing .env file is fine, the variables may come from the environment
	_ = godotenv.Load()

	return load()
}

func load() error {
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "APP_LOG_LEVEL")
	v.BindEnv("app.support_link", "SUPPORT_LINK")

	v.BindEnv("host.port", "HOST_PORT")
	v.BindEnv("host.cors", "HOST_CORS")

	v.BindEnv("session.secret", "SESSION_SECRET", "FLASK_SECRET")
	v.BindEnv("session.max_age", "SESSION_MAX_AGE")
	v.BindEnv("session.secure", "SESSION_SECURE")

	v.BindEnv("discord.client_id", "DISCORD_CLIENT_ID")
	v.BindEnv("discord.client_secret", "DISCORD_CLIENT_SECRET")
	v.BindEnv("discord.redirect_uri", "DISCORD_REDIRECT_URI")
	v.BindEnv("discord.token", "DISCORD_TOKEN")
	v.BindEnv("discord.scopes", "DISCORD_SCOPES")
	v.BindEnv("discord.api_base", "DISCORD_API_BASE")
	v.BindEnv("discord.timeout", "DISCORD_TIMEOUT")

	v.BindEnv("security.rate_limit", "SECURITY_RATE_LIMIT")

	v.BindEnv("streams.enabled", "STREAMS_ENABLED")
	v.BindEnv("streams.api_key", "STREAMS_API_KEY")

	v.BindEnv("database.driver", "DATABASE_DRIVER")
	v.BindEnv("database.dsn", "DATABASE_DSN")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)

	v.SetDefault("session.max_age", "168h")
	v.SetDefault("session.secure", false)

	v.SetDefault("discord.scopes", "identify guilds")
	v.SetDefault("discord.api_base", "https://discord.com/api")
	v.SetDefault("discord.timeout", "10s")

	v.SetDefault("security.rate_limit", 10)

	v.SetDefault("streams.enabled", true)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "database.db")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	return validate()
}

func validate() error {
	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if !slices.Contains(validDBDrivers, v.GetString("database.driver")) {
		return errors.New("invalid database driver provided")
	}

	if v.GetString("database.dsn") == "" {
		return errors.New("database.dsn can't be empty")
	}

	// Only the schema is needed in setup mode
	if v.GetBool("setup-db") {
		return nil
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if v.GetString("session.secret") == "" {
		fmt.Println("WARNING: You haven't set a session secret. Here is a random one you can use:\n\n" + genSecret() + "\n\nSet it as SESSION_SECRET or session.secret in config.toml.")
		return errors.New("session.secret is missing")
	}

	if v.GetDuration("session.max_age") <= 0 {
		return errors.New("session.max_age must be a positive duration")
	}

	if v.GetString("discord.client_id") == "" {
		return errors.New("discord.client_id can't be empty")
	}
	if v.GetString("discord.client_secret") == "" {
		return errors.New("discord.client_secret can't be empty")
	}
	if v.GetString("discord.redirect_uri") == "" {
		return errors.New("discord.redirect_uri can't be empty")
	}

	scopes := strings.Join(strings.Fields(v.GetString("discord.scopes")), " ")
	if !slices.Contains(validDiscordScopes, scopes) {
		return fmt.Errorf("unsupported discord.scopes %q", scopes)
	}
	v.Set("discord.scopes", scopes)

	if v.GetDuration("discord.timeout") <= 0 {
		return errors.New("discord.timeout must be a positive duration")
	}

	if v.GetInt("security.rate_limit") < 0 {
		return errors.New("security.rate_limit can't be negative")
	}

	return nil
}
