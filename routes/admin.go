package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/junaidrashid-git/sportsstore/controllers/product"
	"github.com/junaidrashid-git/sportsstore/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the admin guard.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.AdminOnly(deps.Config.Admin))
	{
		productDeps := productcontroller.Deps{Log: deps.Log, Events: deps.Hub}

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.Index(deps.DB, productDeps))
			productAdmin.GET("/create", productcontroller.Create(deps.DB, productDeps))
			productAdmin.POST("/create", productcontroller.CreatePost(deps.DB, productDeps))
			productAdmin.GET("/edit/:id", productcontroller.Edit(deps.DB, productDeps))
			productAdmin.POST("/edit/:id", productcontroller.EditPost(deps.DB, productDeps))
			productAdmin.GET("/delete/:id", productcontroller.Delete(deps.DB, productDeps))
			productAdmin.POST("/delete/:id", productcontroller.DeleteConfirmed(deps.DB, productDeps))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(deps.DB, productDeps))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(deps.DB, productDeps))
		}
	}
}
