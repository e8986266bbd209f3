package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/sportsstore/config"
	"github.com/junaidrashid-git/sportsstore/logger"
	"github.com/junaidrashid-git/sportsstore/realtime"
	"github.com/junaidrashid-git/sportsstore/session"
	"gorm.io/gorm"
)

// Deps are the process-wide collaborators the routes hand to controllers.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      *logger.Logger
	Sessions session.Store
	Hub      *realtime.Hub
}

// SetupRoutes is the single entry-point that wires up the store, cart, admin
// and realtime route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := deps.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 1️⃣ Public catalog and session cart
	SetupStoreRoutes(r, deps)

	// 2️⃣ Admin routes (API-key or JWT protected)
	SetupAdminRoutes(r, deps)

	// 3️⃣ Realtime catalog feed
	r.GET("/ws/catalog", deps.Hub.Handler)
}
