package cartControllers

import (
	"context"
	"fmt"

	"github.com/junaidrashid-git/sportsstore/logger"
	"github.com/junaidrashid-git/sportsstore/models"
	"github.com/junaidrashid-git/sportsstore/repositories"
	"github.com/junaidrashid-git/sportsstore/results"
)

const controllerName = "Cart"

// Controller runs the cart actions. The cart is handed in by the caller,
// which loads it from the session before the action and stores it after.
type Controller struct {
	Products repositories.ProductRepository
	Log      *logger.Logger
}

func toIndex() results.Result {
	return results.Redirect("Index", controllerName, nil)
}

// Index shows the cart lines with their total, or the EmptyCart view.
func (cc *Controller) Index(cart *models.Cart) results.Result {
	if cart.IsEmpty() {
		return results.View("EmptyCart", nil, nil)
	}
	return results.View("Index", cart.Lines(), map[string]any{
		"Total":         cart.TotalValue(),
		"NumberOfItems": cart.NumberOfItems(),
	})
}

// Add puts quantity of a product in the cart and returns to the store.
func (cc *Controller) Add(ctx context.Context, cart *models.Cart, productID uint, quantity int) (results.Result, error) {
	product, err := cc.Products.GetByID(ctx, productID)
	if err != nil {
		return results.Result{}, fmt.Errorf("load product %d: %w", productID, err)
	}
	if product == nil {
		return results.NotFound(), nil
	}
	if err := cart.AddLine(*product, quantity); err != nil {
		return results.Result{}, err
	}
	cc.Log.Debug("cart line added", "product_id", productID, "quantity", quantity)
	return results.Redirect("Index", "Store", nil), nil
}

func (cc *Controller) Remove(ctx context.Context, cart *models.Cart, productID uint) (results.Result, error) {
	product, err := cc.Products.GetByID(ctx, productID)
	if err != nil {
		return results.Result{}, fmt.Errorf("load product %d: %w", productID, err)
	}
	if product != nil {
		cart.RemoveLine(*product)
	}
	return toIndex(), nil
}

func (cc *Controller) Plus(cart *models.Cart, productID uint) results.Result {
	cart.IncreaseQuantity(productID)
	return toIndex()
}

func (cc *Controller) Min(cart *models.Cart, productID uint) results.Result {
	cart.DecreaseQuantity(productID)
	return toIndex()
}

func (cc *Controller) Clear(cart *models.Cart) results.Result {
	cart.Clear()
	return toIndex()
}
