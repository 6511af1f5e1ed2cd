// Package dashboard renders the logged in user's overview page
package dashboard

import (
	"net/http"

	"github.com/PowerNightVS/discord-web/internal"
	"github.com/PowerNightVS/discord-web/internal/model"
	"github.com/PowerNightVS/discord-web/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// The bot doesn't report its status to the site yet
const (
	botOnline     = true
	botWakeUpTime = "08:00 AM"
)

func Dashboard(c *gin.Context, d *internal.Deps) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":          middleware.Profile(c),
		"Commands":      model.DefaultCommands,
		"BotOnline":     botOnline,
		"BotWakeUpTime": botWakeUpTime,
		"InviteLink":    d.Discord.InviteLink(),
		"SupportLink":   d.SupportLink,
	})
}
