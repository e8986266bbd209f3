package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/junaidrashid-git/sportsstore/controllers/cart"
	storeControllers "github.com/junaidrashid-git/sportsstore/controllers/store"
	"github.com/junaidrashid-git/sportsstore/session"
)

// SetupStoreRoutes registers the public catalog and the "/cart/*" endpoints.
func SetupStoreRoutes(r *gin.Engine, deps Deps) {
	pageSize := deps.Config.Catalog.PageSize
	r.GET("/", storeControllers.Index(deps.DB, deps.Log, pageSize))
	r.GET("/store", storeControllers.Index(deps.DB, deps.Log, pageSize))

	cartGroup := r.Group("/cart")
	cartGroup.Use(session.Middleware(deps.Sessions))
	{
		cartGroup.GET("", cartControllers.Index(deps.DB, deps.Log))
		cartGroup.POST("/add/:id", cartControllers.Add(deps.DB, deps.Log))
		cartGroup.POST("/remove/:id", cartControllers.Remove(deps.DB, deps.Log))
		cartGroup.POST("/plus/:id", cartControllers.Plus(deps.DB, deps.Log))
		cartGroup.POST("/min/:id", cartControllers.Min(deps.DB, deps.Log))
		cartGroup.POST("/clear", cartControllers.Clear(deps.DB, deps.Log))
	}
}
