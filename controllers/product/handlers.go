package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	storeControllers "github.com/junaidrashid-git/sportsstore/controllers/store"
	"github.com/junaidrashid-git/sportsstore/logger"
	"github.com/junaidrashid-git/sportsstore/repositories"
	"github.com/junaidrashid-git/sportsstore/results"
	"github.com/junaidrashid-git/sportsstore/viewmodels"
	"gorm.io/gorm"
)

// Deps are the process-wide collaborators shared by every request.
type Deps struct {
	Log    *logger.Logger
	Events EventPublisher
}

// newController builds a controller whose repositories share one unit of
// work scoped to the current request.
func newController(db *gorm.DB, deps Deps) *Controller {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	uow := repositories.NewUnitOfWork(db)
	return &Controller{
		Products:   repositories.NewProductRepository(uow),
		Categories: repositories.NewCategoryRepository(uow),
		Log:        log,
		Events:     deps.Events,
	}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return 0, false
	}
	return uint(id), true
}

func respond(c *gin.Context, pc *Controller, result results.Result, err error, msg string) {
	if err != nil {
		pc.Log.Error(msg, "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
		return
	}
	results.Write(c, result)
}

// GET /admin/products?categoryId=
func Index(db *gorm.DB, deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := storeControllers.QueryID(c, "categoryId")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}
		pc := newController(db, deps)
		result, err := pc.Index(c.Request.Context(), categoryID)
		respond(c, pc, result, err, "Failed to list products")
	}
}

// GET /admin/products/create
func Create(db *gorm.DB, deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		pc := newController(db, deps)
		result, err := pc.Create(c.Request.Context())
		respond(c, pc, result, err, "Failed to load product form")
	}
}

// POST /admin/products/create
func CreatePost(db *gorm.DB, deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var vm viewmodels.EditViewModel
		bindErr := c.ShouldBind(&vm)

		pc := newController(db, deps)
		result, err := pc.CreatePost(c.Request.Context(), vm, bindErr)
		respond(c, pc, result, err, "Failed to create product")
	}
}

// GET /admin/products/edit/:id
func Edit(db *gorm.DB, deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		pc := newController(db, deps)
		result, err := pc.Edit(c.Request.Context(), id)
		respond(c, pc, result, err, "Failed to load product")
	}
}

// POST /admin/products/edit/:id
func EditPost(db *gorm.DB, deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		var vm viewmodels.EditViewModel
		bindErr := c.ShouldBind(&vm)

		pc := newController(db, deps)
		result, err := pc.EditPost(c.Request.Context(), id, vm, bindErr)
		respond(c, pc, result, err, "Failed to update product")
	}
}

// GET /admin/products/delete/:id
func Delete(db *gorm.DB, deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		pc := newController(db, deps)
		result, err := pc.Delete(c.Request.Context(), id)
		respond(c, pc, result, err, "Failed to load product")
	}
}

// POST /admin/products/delete/:id
func DeleteConfirmed(db *gorm.DB, deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		pc := newController(db, deps)
		results.Write(c, pc.DeleteConfirmed(c.Request.Context(), id))
	}
}
