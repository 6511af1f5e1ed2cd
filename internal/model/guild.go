package model

import (
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// DefaultGuildIcon is shown for servers without an uploaded icon
const DefaultGuildIcon = "/static/img/default-server.svg"

// Guild is a server the bot has joined, as returned by
// /users/@me/guilds?with_counts=true
type Guild struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Icon                   string `json:"icon,omitempty"`
	ApproximateMemberCount *int   `json:"approximate_member_count,omitempty"`
	Description            string `json:"description,omitempty"`
}

func (g Guild) IconURL() string {
	if g.Icon == "" {
		return DefaultGuildIcon
	}

	return discordgo.EndpointGuildIcon(g.ID, g.Icon)
}

func (g Guild) MemberCount() string {
	if g.ApproximateMemberCount == nil {
		return "Unknown"
	}

	return strconv.Itoa(*g.ApproximateMemberCount)
}
