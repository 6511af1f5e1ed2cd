package stream

import (
	"net/http"

	"github.com/PowerNightVS/discord-web/internal"
	"github.com/gin-gonic/gin"
)

func Page(c *gin.Context, d *internal.Deps) {
	c.HTML(http.StatusOK, "stream.html", gin.H{
		"Streams":     d.Streams.List(),
		"InviteLink":  d.Discord.InviteLink(),
		"SupportLink": d.SupportLink,
	})
}

// List returns the active streams as JSON, newest first
func List(c *gin.Context, d *internal.Deps) {
	c.JSON(http.StatusOK, gin.H{
		"streams": d.Streams.List(),
	})
}
