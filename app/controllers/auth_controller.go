package controllers

import (
	"errors"

	"github.com/shashiranjanraj/shopadmin/app/models"
	"github.com/shashiranjanraj/shopadmin/app/services"
	"github.com/shashiranjanraj/shopadmin/pkg/ctx"
	"github.com/shashiranjanraj/shopadmin/pkg/middleware"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Login(cx *ctx.Context) {
	var in models.LoginInput
	if !cx.BindJSON(&in) {
		return
	}

	session, err := c.service.Login(cx.Context(), in)
	if errors.Is(err, services.ErrInvalidCredentials) {
		cx.Unauthorized("Invalid email or password")
		return
	}
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(session)
}

// Me returns the authenticated user. Requires middleware.Auth.
func (c *AuthController) Me(cx *ctx.Context) {
	id, ok := middleware.UserIDFromCtx(cx.R)
	if !ok {
		cx.Unauthorized()
		return
	}

	profile, err := c.service.Me(cx.Context(), id)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(profile)
}
