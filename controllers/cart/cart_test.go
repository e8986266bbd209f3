package cartControllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/sportsstore/models"
	"github.com/junaidrashid-git/sportsstore/session"
	"github.com/junaidrashid-git/sportsstore/testutil"
	"gorm.io/gorm"
)

// client replays cookies between requests like a browser.
type client struct {
	router  http.Handler
	cookies []*http.Cookie
}

func (cl *client) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range cl.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	cl.router.ServeHTTP(w, req)
	if set := w.Result().Cookies(); len(set) > 0 {
		cl.cookies = set
	}
	return w
}

func newClient(t *testing.T) (*client, uint) {
	t.Helper()
	cl, football, _ := newClientWithDB(t)
	return cl, football
}

func newClientWithDB(t *testing.T) (*client, uint, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.SeededDB(t)
	log := testutil.Logger(t)

	r := gin.New()
	r.Use(session.Middleware(session.NewMemoryStore(session.MemoryOptions{Name: "sportsstore"})))
	r.GET("/cart", Index(db, log))
	r.POST("/cart/add/:id", Add(db, log))
	r.POST("/cart/remove/:id", Remove(db, log))
	r.POST("/cart/plus/:id", Plus(db, log))
	r.POST("/cart/min/:id", Min(db, log))
	r.POST("/cart/clear", Clear(db, log))

	var football models.Product
	if err := db.Where("name = ?", "Football").First(&football).Error; err != nil {
		t.Fatalf("load football: %v", err)
	}
	return &client{router: r}, football.ID, db
}

func TestCartFlowAcrossRequests(t *testing.T) {
	cl, football := newClient(t)
	id := itoa(football)

	if w := cl.do(http.MethodGet, "/cart", nil); !strings.Contains(w.Body.String(), `"view":"EmptyCart"`) {
		t.Fatalf("empty cart: %s", w.Body.String())
	}

	w := cl.do(http.MethodPost, "/cart/add/"+id, url.Values{"quantity": {"2"}})
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/store" {
		t.Fatalf("add: %d %q", w.Code, w.Header().Get("Location"))
	}

	w = cl.do(http.MethodGet, "/cart", nil)
	if !strings.Contains(w.Body.String(), `"Total":"50"`) || !strings.Contains(w.Body.String(), `"view":"Index"`) {
		t.Fatalf("cart index: %s", w.Body.String())
	}

	cl.do(http.MethodPost, "/cart/plus/"+id, nil)
	w = cl.do(http.MethodGet, "/cart", nil)
	if !strings.Contains(w.Body.String(), `"NumberOfItems":3`) {
		t.Fatalf("after plus: %s", w.Body.String())
	}

	cl.do(http.MethodPost, "/cart/min/"+id, nil)
	w = cl.do(http.MethodGet, "/cart", nil)
	if !strings.Contains(w.Body.String(), `"NumberOfItems":2`) {
		t.Fatalf("after min: %s", w.Body.String())
	}

	w = cl.do(http.MethodPost, "/cart/remove/"+id, nil)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/cart" {
		t.Fatalf("remove: %d %q", w.Code, w.Header().Get("Location"))
	}
	if w := cl.do(http.MethodGet, "/cart", nil); !strings.Contains(w.Body.String(), `"view":"EmptyCart"`) {
		t.Fatalf("after remove: %s", w.Body.String())
	}
}

func TestCartDropsProductsDeletedFromCatalog(t *testing.T) {
	cl, football, db := newClientWithDB(t)
	var kayak models.Product
	if err := db.Where("name = ?", "Kayak").First(&kayak).Error; err != nil {
		t.Fatalf("load kayak: %v", err)
	}
	cl.do(http.MethodPost, "/cart/add/"+itoa(football), nil)
	cl.do(http.MethodPost, "/cart/add/"+itoa(kayak.ID), nil)

	if err := db.Model(&kayak).Update("price", 300).Error; err != nil {
		t.Fatalf("reprice kayak: %v", err)
	}
	if w := cl.do(http.MethodGet, "/cart", nil); !strings.Contains(w.Body.String(), `"Total":"325"`) {
		t.Fatalf("cart after reprice: %s", w.Body.String())
	}

	if err := db.Delete(&models.Product{}, football).Error; err != nil {
		t.Fatalf("delete football: %v", err)
	}
	w := cl.do(http.MethodGet, "/cart", nil)
	if !strings.Contains(w.Body.String(), `"NumberOfItems":1`) || !strings.Contains(w.Body.String(), `"Total":"300"`) {
		t.Fatalf("cart after delete: %s", w.Body.String())
	}
}

func TestCartClear(t *testing.T) {
	cl, football := newClient(t)
	cl.do(http.MethodPost, "/cart/add/"+itoa(football), nil)
	if w := cl.do(http.MethodGet, "/cart", nil); !strings.Contains(w.Body.String(), `"NumberOfItems":1`) {
		t.Fatalf("default quantity: %s", w.Body.String())
	}
	cl.do(http.MethodPost, "/cart/clear", nil)
	if w := cl.do(http.MethodGet, "/cart", nil); !strings.Contains(w.Body.String(), `"view":"EmptyCart"`) {
		t.Fatalf("after clear: %s", w.Body.String())
	}
}

func TestCartBadInput(t *testing.T) {
	cl, football := newClient(t)
	tests := []struct {
		path string
		form url.Values
		want int
	}{
		{path: "/cart/add/abc", want: http.StatusBadRequest},
		{path: "/cart/add/" + itoa(football), form: url.Values{"quantity": {"0"}}, want: http.StatusBadRequest},
		{path: "/cart/add/" + itoa(football), form: url.Values{"quantity": {"many"}}, want: http.StatusBadRequest},
		{path: "/cart/add/9999", want: http.StatusNotFound},
	}
	for _, tt := range tests {
		if w := cl.do(http.MethodPost, tt.path, tt.form); w.Code != tt.want {
			t.Fatalf("%s %v: status=%d want=%d", tt.path, tt.form, w.Code, tt.want)
		}
	}
	if w := cl.do(http.MethodGet, "/cart", nil); !strings.Contains(w.Body.String(), `"view":"EmptyCart"`) {
		t.Fatalf("bad input changed cart: %s", w.Body.String())
	}
}

func TestCartWithoutSessionMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/cart", Index(testutil.DB(t), nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status: %d", w.Code)
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
