package productcontroller

import (
	"context"
	"fmt"
	"net/http"

	storeControllers "github.com/junaidrashid-git/sportsstore/controllers/store"
	"github.com/junaidrashid-git/sportsstore/logger"
	"github.com/junaidrashid-git/sportsstore/models"
	"github.com/junaidrashid-git/sportsstore/realtime"
	"github.com/junaidrashid-git/sportsstore/repositories"
	"github.com/junaidrashid-git/sportsstore/results"
	"github.com/junaidrashid-git/sportsstore/viewmodels"
)

const controllerName = "Product"

// EventPublisher receives committed catalog changes.
type EventPublisher interface {
	Publish(ev realtime.Event)
}

// Controller runs the product admin workflows. Every action is stateless
// across requests; build one per request.
type Controller struct {
	Products   repositories.ProductRepository
	Categories repositories.CategoryRepository
	Log        *logger.Logger
	Events     EventPublisher
}

func (pc *Controller) toIndex() results.Result {
	return results.Redirect("Index", controllerName, nil)
}

func (pc *Controller) publish(kind string, p *models.Product) {
	if pc.Events == nil {
		return
	}
	pc.Events.Publish(realtime.Event{Type: kind, ProductID: p.ID, Name: p.Name})
}

func (pc *Controller) categoryList(ctx context.Context, selected *uint) (viewmodels.SelectList, error) {
	categories, err := pc.Categories.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	return viewmodels.NewCategorySelectList(categories, selected), nil
}

// formView shows the create/edit form again with the category list attached.
func (pc *Controller) formView(ctx context.Context, vm viewmodels.EditViewModel, outcome viewmodels.ValidationOutcome) (results.Result, error) {
	categories, err := pc.categoryList(ctx, vm.CategoryID)
	if err != nil {
		return results.Result{}, err
	}
	data := map[string]any{"Categories": categories}
	if outcome.IsValid() {
		return results.View("Edit", vm, data), nil
	}
	data["Errors"] = outcome.Errors
	return results.View("Edit", vm, data).WithStatus(http.StatusUnprocessableEntity), nil
}

// validate resolves the submitted category and applies the product rules.
func (pc *Controller) validate(ctx context.Context, vm viewmodels.EditViewModel) (viewmodels.ValidationOutcome, error) {
	found := false
	if vm.CategoryID != nil {
		category, err := pc.Categories.GetByID(ctx, *vm.CategoryID)
		if err != nil {
			return viewmodels.ValidationOutcome{}, fmt.Errorf("load category %d: %w", *vm.CategoryID, err)
		}
		found = category != nil
	}
	return vm.Validate(found), nil
}

// Index lists every product, optionally filtered by category, with the
// category list for the filter.
func (pc *Controller) Index(ctx context.Context, categoryID *uint) (results.Result, error) {
	listing, found, err := storeControllers.ListProducts(ctx, pc.Products, pc.Categories, categoryID, 1, 0)
	if err != nil {
		return results.Result{}, err
	}
	if !found {
		return results.NotFound(), nil
	}
	categories, err := pc.categoryList(ctx, categoryID)
	if err != nil {
		return results.Result{}, err
	}
	return results.View("", listing.Products, map[string]any{
		"Categories": categories,
		"CategoryId": categoryID,
	}), nil
}

func (pc *Controller) Create(ctx context.Context) (results.Result, error) {
	return pc.formView(ctx, viewmodels.EditViewModel{}, viewmodels.ValidOutcome())
}

// CreatePost persists a valid product. A form that failed to bind is shown
// again; a form that breaks a product rule is dropped and the caller goes
// back to the listing.
func (pc *Controller) CreatePost(ctx context.Context, vm viewmodels.EditViewModel, bindErr error) (results.Result, error) {
	if bindErr != nil {
		return pc.formView(ctx, vm, viewmodels.BindingFailure(bindErr))
	}

	outcome, err := pc.validate(ctx, vm)
	if err != nil {
		return results.Result{}, err
	}
	if outcome.Kind == viewmodels.RuleViolated {
		pc.Log.Info("product create rejected", "errors", outcome.Errors)
		return pc.toIndex(), nil
	}

	product := vm.ToProduct()
	pc.Products.Add(&product)
	if err := pc.Products.SaveChanges(ctx); err != nil {
		return results.Result{}, fmt.Errorf("create product: %w", err)
	}
	pc.Log.Info("product created", "product_id", product.ID, "name", product.Name)
	pc.publish(realtime.ProductCreated, &product)
	return pc.toIndex(), nil
}

func (pc *Controller) Edit(ctx context.Context, id uint) (results.Result, error) {
	product, err := pc.Products.GetByID(ctx, id)
	if err != nil {
		return results.Result{}, fmt.Errorf("load product %d: %w", id, err)
	}
	if product == nil {
		return results.NotFound(), nil
	}
	return pc.formView(ctx, viewmodels.NewEditViewModel(*product), viewmodels.ValidOutcome())
}

// EditPost copies a valid form onto the stored product and commits it. The
// two failure kinds behave as in CreatePost and never touch the product.
func (pc *Controller) EditPost(ctx context.Context, id uint, vm viewmodels.EditViewModel, bindErr error) (results.Result, error) {
	product, err := pc.Products.GetByID(ctx, id)
	if err != nil {
		return results.Result{}, fmt.Errorf("load product %d: %w", id, err)
	}
	if product == nil {
		return results.NotFound(), nil
	}
	vm.ID = id

	if bindErr != nil {
		return pc.formView(ctx, vm, viewmodels.BindingFailure(bindErr))
	}

	outcome, err := pc.validate(ctx, vm)
	if err != nil {
		return results.Result{}, err
	}
	if outcome.Kind == viewmodels.RuleViolated {
		pc.Log.Info("product edit rejected", "product_id", id, "errors", outcome.Errors)
		return pc.toIndex(), nil
	}

	vm.ApplyTo(product)
	if err := pc.Products.SaveChanges(ctx); err != nil {
		return results.Result{}, fmt.Errorf("update product %d: %w", id, err)
	}
	pc.Log.Info("product updated", "product_id", id)
	pc.publish(realtime.ProductUpdated, product)
	return pc.toIndex(), nil
}

func (pc *Controller) Delete(ctx context.Context, id uint) (results.Result, error) {
	product, err := pc.Products.GetByID(ctx, id)
	if err != nil {
		return results.Result{}, fmt.Errorf("load product %d: %w", id, err)
	}
	if product == nil {
		return results.NotFound(), nil
	}
	return results.View("", nil, map[string]any{"ProductName": product.Name}), nil
}

// DeleteConfirmed removes the product on a best-effort basis: store failures
// are logged and the caller is still sent back to the listing.
func (pc *Controller) DeleteConfirmed(ctx context.Context, id uint) results.Result {
	product, err := pc.Products.GetByID(ctx, id)
	if err != nil {
		pc.Log.Error("product delete lookup failed", "product_id", id, "error", err)
		return pc.toIndex()
	}
	if product == nil {
		return results.NotFound()
	}

	pc.Products.Delete(product)
	if err := pc.Products.SaveChanges(ctx); err != nil {
		pc.Log.Error("product delete failed", "product_id", id, "error", err)
		return pc.toIndex()
	}
	pc.Log.Info("product deleted", "product_id", id, "name", product.Name)
	pc.publish(realtime.ProductDeleted, product)
	return pc.toIndex()
}
