// Package auth contains the Discord OAuth2 login flow
package auth

import (
	"net/http"

	"github.com/PowerNightVS/discord-web/internal"
	"github.com/gin-gonic/gin"
)

func Login(c *gin.Context, d *internal.Deps) {
	c.Redirect(http.StatusFound, d.Discord.AuthURL())
}
