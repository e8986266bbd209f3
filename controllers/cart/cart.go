package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/sportsstore/logger"
	"github.com/junaidrashid-git/sportsstore/models"
	"github.com/junaidrashid-git/sportsstore/repositories"
	"github.com/junaidrashid-git/sportsstore/results"
	"github.com/junaidrashid-git/sportsstore/session"
	"gorm.io/gorm"
)

type cartAction func(c *gin.Context, cc *Controller, cart *models.Cart) (results.Result, error)

// handle loads the session cart, runs action, saves the cart and only then
// writes the result, so the session cookie goes out before the body.
func handle(db *gorm.DB, log *logger.Logger, action cartAction) gin.HandlerFunc {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *gin.Context) {
		sess, err := session.FromContext(c)
		if err != nil {
			log.Error("cart without session", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Session unavailable"})
			return
		}

		cc := &Controller{
			Products: repositories.NewProductRepository(repositories.NewUnitOfWork(db)),
			Log:      log,
		}
		result, err := session.WithCart(c.Request.Context(), sess, cc.Products, func(cart *models.Cart) (results.Result, error) {
			return action(c, cc, cart)
		})
		if err != nil {
			if errors.Is(err, models.ErrInvalidQuantity) || errors.Is(err, errBadProductID) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			log.Error("cart action failed", "error", err, "path", c.FullPath())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		results.Write(c, result)
	}
}

var errBadProductID = errors.New("invalid product id")

func productID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		return 0, errBadProductID
	}
	return uint(id), nil
}

func withProductID(fn func(c *gin.Context, cc *Controller, cart *models.Cart, id uint) (results.Result, error)) cartAction {
	return func(c *gin.Context, cc *Controller, cart *models.Cart) (results.Result, error) {
		id, err := productID(c)
		if err != nil {
			return results.Result{}, err
		}
		return fn(c, cc, cart, id)
	}
}

// GET /cart
func Index(db *gorm.DB, log *logger.Logger) gin.HandlerFunc {
	return handle(db, log, func(c *gin.Context, cc *Controller, cart *models.Cart) (results.Result, error) {
		return cc.Index(cart), nil
	})
}

// POST /cart/add/:id
func Add(db *gorm.DB, log *logger.Logger) gin.HandlerFunc {
	return handle(db, log, withProductID(func(c *gin.Context, cc *Controller, cart *models.Cart, id uint) (results.Result, error) {
		quantity, err := strconv.Atoi(c.DefaultPostForm("quantity", "1"))
		if err != nil {
			return results.Result{}, models.ErrInvalidQuantity
		}
		return cc.Add(c.Request.Context(), cart, id, quantity)
	}))
}

// POST /cart/remove/:id
func Remove(db *gorm.DB, log *logger.Logger) gin.HandlerFunc {
	return handle(db, log, withProductID(func(c *gin.Context, cc *Controller, cart *models.Cart, id uint) (results.Result, error) {
		return cc.Remove(c.Request.Context(), cart, id)
	}))
}

// POST /cart/plus/:id
func Plus(db *gorm.DB, log *logger.Logger) gin.HandlerFunc {
	return handle(db, log, withProductID(func(c *gin.Context, cc *Controller, cart *models.Cart, id uint) (results.Result, error) {
		return cc.Plus(cart, id), nil
	}))
}

// POST /cart/min/:id
func Min(db *gorm.DB, log *logger.Logger) gin.HandlerFunc {
	return handle(db, log, withProductID(func(c *gin.Context, cc *Controller, cart *models.Cart, id uint) (results.Result, error) {
		return cc.Min(cart, id), nil
	}))
}

// POST /cart/clear
func Clear(db *gorm.DB, log *logger.Logger) gin.HandlerFunc {
	return handle(db, log, func(c *gin.Context, cc *Controller, cart *models.Cart) (results.Result, error) {
		return cc.Clear(cart), nil
	})
}
