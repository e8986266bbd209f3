package storeControllers

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/sportsstore/models"
	"github.com/junaidrashid-git/sportsstore/testutil"
	"github.com/junaidrashid-git/sportsstore/viewmodels"
)

func newController(pageSize int) *Controller {
	cat := testutil.NewCatalog()
	return &Controller{
		Products:   &testutil.FakeProductRepository{Catalog: cat},
		Categories: &testutil.FakeCategoryRepository{Catalog: cat},
		PageSize:   pageSize,
	}
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func uintPtr(v uint) *uint { return &v }

func TestListProductsAllSortedByName(t *testing.T) {
	sc := newController(0)
	listing, found, err := ListProducts(t.Context(), sc.Products, sc.Categories, nil, 1, 0)
	if err != nil || !found {
		t.Fatalf("ListProducts: found=%v err=%v", found, err)
	}
	got := names(listing.Products)
	if len(got) != 11 {
		t.Fatalf("count: got=%d want=11", len(got))
	}
	if got[0] != "Bling-bling King" || got[10] != "Unsteady chair" {
		t.Fatalf("order: %v", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] == got[i] {
			t.Fatalf("duplicate %q", got[i])
		}
	}
}

func TestListProductsByCategory(t *testing.T) {
	sc := newController(0)
	listing, found, err := ListProducts(t.Context(), sc.Products, sc.Categories, uintPtr(1), 1, 0)
	if err != nil || !found {
		t.Fatalf("ListProducts: found=%v err=%v", found, err)
	}
	want := []string{"Corner flags", "Football", "Running shoes", "Stadium"}
	got := names(listing.Products)
	if len(got) != len(want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got=%v want=%v", got, want)
		}
	}
	if listing.Category == nil || listing.Category.Name != "Soccer" {
		t.Fatalf("category: %+v", listing.Category)
	}
}

func TestListProductsUnknownCategory(t *testing.T) {
	sc := newController(0)
	_, found, err := ListProducts(t.Context(), sc.Products, sc.Categories, uintPtr(42), 1, 0)
	if err != nil || found {
		t.Fatalf("ListProducts: found=%v err=%v", found, err)
	}
}

func TestListProductsPaging(t *testing.T) {
	sc := newController(0)
	tests := []struct {
		page      int
		wantFirst string
		wantLen   int
	}{
		{page: 0, wantFirst: "Bling-bling King", wantLen: 4},
		{page: 1, wantFirst: "Bling-bling King", wantLen: 4},
		{page: 2, wantFirst: "Kayak", wantLen: 4},
		{page: 3, wantFirst: "Surf board", wantLen: 3},
		{page: 9, wantLen: 0},
		{page: math.MaxInt, wantLen: 0},
	}
	for _, tt := range tests {
		listing, _, err := ListProducts(t.Context(), sc.Products, sc.Categories, nil, tt.page, 4)
		if err != nil {
			t.Fatalf("page %d: %v", tt.page, err)
		}
		if len(listing.Products) != tt.wantLen {
			t.Fatalf("page %d: len=%d want=%d", tt.page, len(listing.Products), tt.wantLen)
		}
		if tt.wantLen > 0 && listing.Products[0].Name != tt.wantFirst {
			t.Fatalf("page %d: first=%q want=%q", tt.page, listing.Products[0].Name, tt.wantFirst)
		}
		if listing.TotalPages != 3 || listing.TotalItems != 11 {
			t.Fatalf("page %d: totals pages=%d items=%d", tt.page, listing.TotalPages, listing.TotalItems)
		}
	}
}

func TestIndexView(t *testing.T) {
	sc := newController(4)
	result, err := sc.Index(t.Context(), uintPtr(3), 1)
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if !result.IsView() {
		t.Fatalf("expected view, got %s", result.Kind)
	}
	products, ok := result.Model.([]models.Product)
	if !ok || len(products) != 4 || products[0].Name != "Bling-bling King" {
		t.Fatalf("model: %v", result.Model)
	}
	categories, ok := result.Data["Categories"].(viewmodels.SelectList)
	if !ok || len(categories) != 3 {
		t.Fatalf("categories: %v", result.Data["Categories"])
	}
	for _, item := range categories {
		if item.Selected != (item.Text == "Chess") {
			t.Fatalf("selection: %+v", item)
		}
	}
}

func TestIndexUnknownCategoryIsNotFound(t *testing.T) {
	sc := newController(4)
	result, err := sc.Index(t.Context(), uintPtr(99), 1)
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if !result.IsNotFound() {
		t.Fatalf("expected not found, got %s", result.Kind)
	}
}

func TestIndexHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.SeededDB(t)
	router := gin.New()
	router.GET("/store", Index(db, testutil.Logger(t), 4))

	tests := []struct {
		url  string
		want int
	}{
		{url: "/store", want: http.StatusOK},
		{url: "/store?page=3", want: http.StatusOK},
		{url: "/store?page=9223372036854775807", want: http.StatusOK},
		{url: "/store?categoryId=999", want: http.StatusNotFound},
		{url: "/store?categoryId=abc", want: http.StatusBadRequest},
		{url: "/store?page=x", want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))
		if w.Code != tt.want {
			t.Fatalf("%s: status=%d want=%d body=%s", tt.url, w.Code, tt.want, w.Body.String())
		}
	}
}
