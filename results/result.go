package results

import "net/http"

type Kind int

const (
	KindView Kind = iota
	KindRedirect
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindView:
		return "view"
	case KindRedirect:
		return "redirect"
	case KindNotFound:
		return "not_found"
	}
	return "unknown"
}

// Result is what every controller action returns: render a view, redirect to
// another action, or report that the requested entity does not exist.
type Result struct {
	Kind Kind

	ViewName string
	Model    any
	Data     map[string]any
	Status   int

	Action      string
	Controller  string
	RouteValues map[string]string
}

// View renders name with model. An empty name means the action's default view.
func View(name string, model any, data map[string]any) Result {
	if data == nil {
		data = map[string]any{}
	}
	return Result{Kind: KindView, ViewName: name, Model: model, Data: data, Status: http.StatusOK}
}

func Redirect(action, controller string, routeValues map[string]string) Result {
	return Result{Kind: KindRedirect, Action: action, Controller: controller, RouteValues: routeValues}
}

func NotFound() Result {
	return Result{Kind: KindNotFound, Status: http.StatusNotFound}
}

// WithStatus overrides the HTTP status of a view result.
func (r Result) WithStatus(status int) Result {
	r.Status = status
	return r
}

func (r Result) IsView() bool     { return r.Kind == KindView }
func (r Result) IsRedirect() bool { return r.Kind == KindRedirect }
func (r Result) IsNotFound() bool { return r.Kind == KindNotFound }
