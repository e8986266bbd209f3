package results

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

// Routes maps "Controller/Action" to a path template. Segments written as
// :name are filled from the redirect's route values; the rest go to the query.
type Routes map[string]string

var DefaultRoutes = Routes{
	"Store/Index":    "/store",
	"Cart/Index":     "/cart",
	"Product/Index":  "/admin/products",
	"Product/Create": "/admin/products/create",
	"Product/Edit":   "/admin/products/edit/:id",
	"Product/Delete": "/admin/products/delete/:id",
}

// Path resolves a controller action to a URL.
func (rt Routes) Path(controller, action string, values map[string]string) (string, error) {
	tmpl, ok := rt[controller+"/"+action]
	if !ok {
		return "", fmt.Errorf("no route for %s/%s", controller, action)
	}

	used := map[string]bool{}
	segments := strings.Split(tmpl, "/")
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		name := seg[1:]
		v, ok := values[name]
		if !ok {
			return "", fmt.Errorf("route %s/%s needs value %q", controller, action, name)
		}
		segments[i] = url.PathEscape(v)
		used[name] = true
	}
	path := strings.Join(segments, "/")

	keys := make([]string, 0, len(values))
	for k := range values {
		if !used[k] {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return path, nil
	}
	sort.Strings(keys)
	q := url.Values{}
	for _, k := range keys {
		q.Set(k, values[k])
	}
	return path + "?" + q.Encode(), nil
}

// Write renders r on c using DefaultRoutes for redirects.
func Write(c *gin.Context, r Result) {
	DefaultRoutes.Write(c, r)
}

func (rt Routes) Write(c *gin.Context, r Result) {
	switch r.Kind {
	case KindView:
		status := r.Status
		if status == 0 {
			status = http.StatusOK
		}
		c.JSON(status, gin.H{
			"view":  r.ViewName,
			"model": r.Model,
			"data":  r.Data,
		})
	case KindRedirect:
		path, err := rt.Path(r.Controller, r.Action, r.RouteValues)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Redirect(http.StatusSeeOther, path)
	case KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unknown result"})
	}
}
