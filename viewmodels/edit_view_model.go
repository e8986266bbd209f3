package viewmodels

import (
	"strings"

	"github.com/junaidrashid-git/sportsstore/models"
	"github.com/shopspring/decimal"
)

// EditViewModel carries the product form for create and edit. It is never persisted.
type EditViewModel struct {
	ID          uint            `form:"-" json:"id,omitempty"`
	Name        string          `form:"name" json:"name" binding:"max=100"`
	Description string          `form:"description" json:"description" binding:"max=500"`
	Price       decimal.Decimal `form:"price" json:"price"`
	CategoryID  *uint           `form:"categoryId" json:"category_id"`
}

func NewEditViewModel(p models.Product) EditViewModel {
	return EditViewModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  copyID(p.CategoryID),
	}
}

// ToProduct builds a new, unsaved product from the form.
func (vm EditViewModel) ToProduct() models.Product {
	var p models.Product
	vm.ApplyTo(&p)
	return p
}

// ApplyTo copies the editable fields onto an already loaded product.
func (vm EditViewModel) ApplyTo(p *models.Product) {
	p.Name = strings.TrimSpace(vm.Name)
	p.Description = strings.TrimSpace(vm.Description)
	p.Price = vm.Price
	p.CategoryID = copyID(vm.CategoryID)
	if p.Category != nil && (p.CategoryID == nil || p.Category.ID != *p.CategoryID) {
		p.Category = nil
	}
}

// Validate applies the product rule set. categoryFound reports whether
// CategoryID resolved to a stored category.
func (vm EditViewModel) Validate(categoryFound bool) ValidationOutcome {
	errs := map[string]string{}
	if strings.TrimSpace(vm.Name) == "" {
		errs["name"] = "name is required"
	}
	if !vm.Price.IsPositive() {
		errs["price"] = "price must be greater than zero"
	}
	if vm.CategoryID == nil || !categoryFound {
		errs["category_id"] = "category does not exist"
	}
	if len(errs) > 0 {
		return RuleViolation(errs)
	}
	return ValidOutcome()
}

func copyID(id *uint) *uint {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
