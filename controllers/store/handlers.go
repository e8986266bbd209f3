package storeControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/sportsstore/logger"
	"github.com/junaidrashid-git/sportsstore/repositories"
	"github.com/junaidrashid-git/sportsstore/results"
	"gorm.io/gorm"
)

// GET /store?categoryId=&page=
func Index(db *gorm.DB, log *logger.Logger, pageSize int) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := QueryID(c, "categoryId")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}
		page := 1
		if raw := c.Query("page"); raw != "" {
			page, err = strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
				return
			}
		}

		uow := repositories.NewUnitOfWork(db)
		sc := &Controller{
			Products:   repositories.NewProductRepository(uow),
			Categories: repositories.NewCategoryRepository(uow),
			PageSize:   pageSize,
		}
		result, err := sc.Index(c.Request.Context(), categoryID, page)
		if err != nil {
			log.Error("store index failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load catalog"})
			return
		}
		results.Write(c, result)
	}
}

// QueryID reads an optional numeric id from the query string.
func QueryID(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return nil, err
	}
	v := uint(id)
	return &v, nil
}
