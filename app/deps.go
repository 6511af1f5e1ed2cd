// Package app wires the configuration into the handlers and routes
package app

import (
	"strings"

	"github.com/PowerNightVS/discord-web/discord"
	"github.com/PowerNightVS/discord-web/internal"
	"github.com/PowerNightVS/discord-web/internal/service"
	"github.com/PowerNightVS/discord-web/pkg/security"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// NewDeps builds the handler dependencies from the loaded configuration
func NewDeps() *internal.Deps {
	d := &internal.Deps{
		Discord: discord.New(discord.Config{
			ClientID:     viper.GetString("discord.client_id"),
			ClientSecret: viper.GetString("discord.client_secret"),
			RedirectURI:  viper.GetString("discord.redirect_uri"),
			Scopes:       strings.Fields(viper.GetString("discord.scopes")),
			BotToken:     viper.GetString("discord.token"),
			APIBase:      viper.GetString("discord.api_base"),
			Timeout:      viper.GetDuration("discord.timeout"),
		}),
		Sessions: security.NewSessions(
			viper.GetString("session.secret"),
			viper.GetDuration("session.max_age"),
			viper.GetBool("session.secure"),
		),
		Streams:     service.NewStreamRegistry(service.DefaultMaxStreams),
		SupportLink: viper.GetString("app.support_link"),
	}

	if !d.Discord.HasBotToken() {
		zap.L().Warn("No Discord bot token set, the landing page won't list any servers")
	}

	return d
}

// RouterConfigFromViper reads the route switches from the loaded configuration
func RouterConfigFromViper() RouterConfig {
	return RouterConfig{
		CORSOrigins:    splitOrigins(viper.GetStringSlice("host.cors")),
		RateLimit:      viper.GetInt("security.rate_limit"),
		StreamsEnabled: viper.GetBool("streams.enabled"),
		StreamsAPIKey:  viper.GetString("streams.api_key"),
	}
}
