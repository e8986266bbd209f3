package viewmodels

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/junaidrashid-git/sportsstore/models"
	"github.com/shopspring/decimal"
)

func uintPtr(v uint) *uint { return &v }

func TestEditViewModelMapping(t *testing.T) {
	p := models.Product{
		ID:          4,
		Name:        "Running shoes",
		Description: "Protective and fashionable",
		Price:       decimal.NewFromInt(95),
		CategoryID:  uintPtr(1),
		Category:    &models.Category{ID: 1, Name: "Soccer"},
	}

	vm := NewEditViewModel(p)
	if vm.Name != "Running shoes" || !vm.Price.Equal(decimal.NewFromInt(95)) || *vm.CategoryID != 1 {
		t.Fatalf("unexpected view model: %+v", vm)
	}

	*vm.CategoryID = 2
	if *p.CategoryID != 1 {
		t.Fatalf("view model shares the category id pointer with the product")
	}

	vm.Name = "  Trail shoes "
	vm.ApplyTo(&p)
	if p.Name != "Trail shoes" || *p.CategoryID != 2 {
		t.Fatalf("ApplyTo: %+v", p)
	}
	if p.Category != nil {
		t.Fatalf("stale category association kept after category change")
	}

	fresh := vm.ToProduct()
	if fresh.ID != 0 || fresh.Name != "Trail shoes" {
		t.Fatalf("ToProduct: %+v", fresh)
	}
}

func TestEditViewModelValidate(t *testing.T) {
	tests := []struct {
		name          string
		vm            EditViewModel
		categoryFound bool
		wantKind      OutcomeKind
		wantField     string
	}{
		{"valid", EditViewModel{Name: "Ball", Price: decimal.NewFromInt(10), CategoryID: uintPtr(1)}, true, Valid, ""},
		{"negative price", EditViewModel{Name: "Ball", Price: decimal.NewFromInt(-1), CategoryID: uintPtr(1)}, true, RuleViolated, "price"},
		{"zero price", EditViewModel{Name: "Ball", Price: decimal.Zero, CategoryID: uintPtr(1)}, true, RuleViolated, "price"},
		{"blank name", EditViewModel{Name: "  ", Price: decimal.NewFromInt(1), CategoryID: uintPtr(1)}, true, RuleViolated, "name"},
		{"no category", EditViewModel{Name: "Ball", Price: decimal.NewFromInt(1)}, false, RuleViolated, "category_id"},
		{"unknown category", EditViewModel{Name: "Ball", Price: decimal.NewFromInt(1), CategoryID: uintPtr(9)}, false, RuleViolated, "category_id"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.vm.Validate(tc.categoryFound)
			if got.Kind != tc.wantKind {
				t.Fatalf("kind: got=%s want=%s", got.Kind, tc.wantKind)
			}
			if tc.wantField != "" {
				if _, ok := got.Errors[tc.wantField]; !ok {
					t.Fatalf("expected error on %q, got %v", tc.wantField, got.Errors)
				}
			}
		})
	}
}

func TestBindingFailure(t *testing.T) {
	type form struct {
		Name string `validate:"max=3"`
	}
	err := validator.New().Struct(form{Name: "too long"})

	out := BindingFailure(err)
	if out.Kind != BindingFailed || out.IsValid() {
		t.Fatalf("kind: got=%s", out.Kind)
	}
	if _, ok := out.Errors["Name"]; !ok {
		t.Fatalf("expected field error for Name, got %v", out.Errors)
	}

	plain := BindingFailure(errors.New("bad price"))
	if plain.Errors[""] != "bad price" {
		t.Fatalf("plain error not kept: %v", plain.Errors)
	}
}

func TestNewCategorySelectList(t *testing.T) {
	categories := []models.Category{{ID: 3, Name: "Watersports"}, {ID: 1, Name: "Soccer"}, {ID: 2, Name: "Chess"}}

	list := NewCategorySelectList(categories, uintPtr(1))

	if len(list) != 3 {
		t.Fatalf("len: got=%d", len(list))
	}
	if list[0].Text != "Chess" || list[1].Text != "Soccer" || list[2].Text != "Watersports" {
		t.Fatalf("order: %+v", list)
	}
	if !list[1].Selected || list[0].Selected || list[1].Value != "1" {
		t.Fatalf("selection: %+v", list)
	}
	if categories[0].Name != "Watersports" {
		t.Fatalf("input slice was reordered")
	}
}
