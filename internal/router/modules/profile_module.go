package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"ourstory/internal/container"
	handlers "ourstory/internal/interface/http"
	"ourstory/internal/interface/middleware"
)

// ProfileModule wires the profile directory routes.
// GET /api/profiles is public; POST and DELETE carry the password in the
// body and are rate-limited per IP (profile creation is a favorite of
// drive-by scripts).
type ProfileModule struct {
	Handler *handlers.ProfileHandler
}

func NewProfileModule(h *handlers.ProfileHandler) *ProfileModule {
	return &ProfileModule{Handler: h}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	var writeLimiter gin.HandlerFunc
	if container.GetConfig().RateLimitEnabled {
		writeLimiter = middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIP(), nil)
	} else {
		writeLimiter = func(c *gin.Context) { c.Next() }
	}

	rg.GET("/profiles", m.Handler.List)
	rg.POST("/profiles", writeLimiter, m.Handler.Create)
	rg.DELETE("/profiles", writeLimiter, m.Handler.Delete)
}
