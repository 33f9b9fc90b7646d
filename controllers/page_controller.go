package controllers

import (
	"net/http"

	"item-catalog/services"

	"github.com/gin-gonic/gin"
)

type IPageController interface {
	Feed(ctx *gin.Context)
	UserList(ctx *gin.Context)
	NotFound(ctx *gin.Context)
}

type PageController struct {
	service services.ICatalogService
}

func NewPageController(service services.ICatalogService) IPageController {
	return &PageController{service: service}
}

func (c *PageController) Feed(ctx *gin.Context) {
	latest, categories, err := c.service.Feed(ctx.Request.Context())
	if err != nil {
		ErrorPage(ctx, http.StatusInternalServerError)
		return
	}

	render(ctx, http.StatusOK, "feed.html", gin.H{
		"latest":     *latest,
		"categories": *categories,
	})
}

func (c *PageController) UserList(ctx *gin.Context) {
	users, err := c.service.ListUsers(ctx.Request.Context())
	if err != nil {
		ErrorPage(ctx, http.StatusInternalServerError)
		return
	}

	render(ctx, http.StatusOK, "userlist.html", gin.H{"users": *users})
}

// NotFound backs the router's no-route handler.
func (c *PageController) NotFound(ctx *gin.Context) {
	ErrorPage(ctx, http.StatusNotFound)
}

// ErrorPage renders the dedicated error view with a matching status code.
// Supported statuses: 403, 404, 410, 500.
func ErrorPage(ctx *gin.Context, status int) {
	render(ctx, status, "error.html", gin.H{"error": status})
}
