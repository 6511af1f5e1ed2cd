package discord

import (
	"context"
	"net/http"

	"github.com/PowerNightVS/discord-web/internal/model"
)

// BotGuilds lists the servers the bot is in, with approximate member counts
func (c *Client) BotGuilds(ctx context.Context) ([]model.Guild, error) {
	if c.botToken == "" {
		return nil, ErrNoBotToken
	}

	var guilds []model.Guild

	err := c.getJSON(ctx, "/users/@me/guilds?with_counts=true", func(r *http.Request) {
		r.Header.Set("Authorization", "Bot "+c.botToken)
	}, &guilds)
	if err != nil {
		return nil, err
	}

	return guilds, nil
}
