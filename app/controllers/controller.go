package controllers

import "github.com/shashiranjanraj/shopadmin/pkg/ctx"

// URLResolver builds the path of a named route.
type URLResolver interface {
	URL(name string, params map[string]string) (string, error)
}

// created answers 201 with a Location header pointing at the named show
// route for id.
func created(cx *ctx.Context, urls URLResolver, route, id string, data any) {
	if urls != nil {
		if loc, err := urls.URL(route, map[string]string{"id": id}); err == nil {
			cx.SetHeader("Location", loc)
		}
	}
	cx.Created(data)
}
