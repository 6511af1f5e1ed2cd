package root

import (
	"net/http"

	"github.com/PowerNightVS/discord-web/internal"
	"github.com/gin-gonic/gin"
)

func About(c *gin.Context, d *internal.Deps) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"InviteLink":  d.Discord.InviteLink(),
		"SupportLink": d.SupportLink,
	})
}
