package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"ourstory/internal/container"
	handlers "ourstory/internal/interface/http"
	"ourstory/internal/interface/middleware"
)

// DiaryModule wires the per-profile diary routes. Reads are cheap and
// limited per IP and route; writes are additionally limited per profile
// so a stuck client cannot flood one diary.
type DiaryModule struct {
	Handler *handlers.DiaryHandler
}

func NewDiaryModule(h *handlers.DiaryHandler) *DiaryModule {
	return &DiaryModule{Handler: h}
}

func (m *DiaryModule) Register(rg *gin.RouterGroup) {
	noop := func(c *gin.Context) { c.Next() }
	readLimiter, writeLimiter := noop, noop
	if container.GetConfig().RateLimitEnabled {
		rdb := container.GetRedis()
		readLimiter = middleware.RateLimit(rdb, 300, time.Minute, middleware.KeyByIPAndPath(), nil)
		writeLimiter = middleware.RateLimit(rdb, 60, time.Minute, middleware.KeyByProfile(), nil)
	}

	rg.GET("/diary/:profile", readLimiter, m.Handler.List)
	rg.POST("/diary/:profile", writeLimiter, m.Handler.Create)
	rg.PUT("/diary/:profile", writeLimiter, m.Handler.Update)
	rg.DELETE("/diary/:profile", writeLimiter, m.Handler.Delete)
}
