package controllers

import (
	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/app/repositories"
	"github.com/shashiranjanraj/shopadmin/app/services"
	"github.com/shashiranjanraj/shopadmin/pkg/ctx"
	"github.com/shashiranjanraj/shopadmin/pkg/query"
)

type OrderController struct {
	service *services.OrderService
	urls    URLResolver
}

func NewOrderController(service *services.OrderService, urls URLResolver) *OrderController {
	return &OrderController{service: service, urls: urls}
}

// Index lists orders. Query: search, status, page, limit.
func (c *OrderController) Index(cx *ctx.Context) {
	p := query.ParamsFromValues(cx.R.URL.Query(), repositories.OrderQuery.FilterKeys()...)
	cx.Success(c.service.List(cx.Context(), p))
}

func (c *OrderController) Show(cx *ctx.Context) {
	o, err := c.service.Find(cx.Context(), cx.Param("id"))
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(o)
}

func (c *OrderController) Store(cx *ctx.Context) {
	var in models.OrderInput
	if !cx.Decode(&in) {
		return
	}

	o, err := c.service.Create(cx.Context(), in)
	if err != nil {
		cx.Fail(err)
		return
	}
	created(cx, c.urls, "orders.show", o.ID, o)
}

func (c *OrderController) Update(cx *ctx.Context) {
	var patch models.OrderPatch
	if !cx.Decode(&patch) {
		return
	}

	o, err := c.service.Update(cx.Context(), cx.Param("id"), patch)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(o)
}
