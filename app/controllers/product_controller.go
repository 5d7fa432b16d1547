package controllers

import (
	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/app/repositories"
	"github.com/shashiranjanraj/shopadmin/app/services"
	"github.com/shashiranjanraj/shopadmin/pkg/ctx"
	"github.com/shashiranjanraj/shopadmin/pkg/query"
)

type ProductController struct {
	service *services.ProductService
	urls    URLResolver
}

func NewProductController(service *services.ProductService, urls URLResolver) *ProductController {
	return &ProductController{service: service, urls: urls}
}

// Index lists products. Query: search, category, status, page, limit.
func (c *ProductController) Index(cx *ctx.Context) {
	p := query.ParamsFromValues(cx.R.URL.Query(), repositories.ProductQuery.FilterKeys()...)
	cx.Success(c.service.List(cx.Context(), p))
}

func (c *ProductController) Show(cx *ctx.Context) {
	p, err := c.service.Find(cx.Context(), cx.Param("id"))
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(p)
}

func (c *ProductController) Store(cx *ctx.Context) {
	var in models.ProductInput
	if !cx.Decode(&in) {
		return
	}

	p, err := c.service.Create(cx.Context(), in)
	if err != nil {
		cx.Fail(err)
		return
	}
	created(cx, c.urls, "products.show", p.ID, p)
}

func (c *ProductController) Update(cx *ctx.Context) {
	var patch models.ProductPatch
	if !cx.Decode(&patch) {
		return
	}

	p, err := c.service.Update(cx.Context(), cx.Param("id"), patch)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(p)
}

func (c *ProductController) Destroy(cx *ctx.Context) {
	if err := c.service.Delete(cx.Context(), cx.Param("id")); err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(nil)
}
