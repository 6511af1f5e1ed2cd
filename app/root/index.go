// Package root contains the public pages of the site
package root

import (
	"net/http"

	"github.com/PowerNightVS/discord-web/internal"
	"github.com/PowerNightVS/discord-web/internal/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Index renders the landing page. A failing guild lookup only hides the
// server list, the page itself is always rendered.
func Index(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")

	guilds := []model.Guild{}
	if d.Discord.HasBotToken() {
		fetched, err := d.Discord.BotGuilds(c.Request.Context())
		if err != nil {
			zap.L().Warn("Failed to fetch bot guilds", zap.Error(err), zap.String("requestID", requestID))
		} else {
			guilds = fetched
		}
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Guilds":      guilds,
		"Streams":     d.Streams.List(),
		"InviteLink":  d.Discord.InviteLink(),
		"SupportLink": d.SupportLink,
	})
}
