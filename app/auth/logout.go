package auth

import (
	"net/http"

	"github.com/PowerNightVS/discord-web/internal"
	"github.com/PowerNightVS/discord-web/pkg/middleware"
	"github.com/gin-gonic/gin"
)

func Logout(c *gin.Context, d *internal.Deps) {
	middleware.ClearSession(c, d.Sessions)
	c.Redirect(http.StatusFound, "/")
}
