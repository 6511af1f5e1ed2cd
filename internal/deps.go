package internal

import (
	"github.com/PowerNightVS/discord-web/discord"
	"github.com/PowerNightVS/discord-web/internal/service"
	"github.com/PowerNightVS/discord-web/pkg/security"
)

type Deps struct {
	Discord     *discord.Client
	Sessions    *security.Sessions
	Streams     *service.StreamRegistry
	SupportLink string
}
