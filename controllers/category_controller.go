package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"item-catalog/constants"
	"item-catalog/dto"
	"item-catalog/services"

	"github.com/gin-gonic/gin"
)

type ICategoryController interface {
	Show(ctx *gin.Context)
	NewForm(ctx *gin.Context)
	Create(ctx *gin.Context)
	EditForm(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type CategoryController struct {
	service services.ICatalogService
}

func NewCategoryController(service services.ICatalogService) ICategoryController {
	return &CategoryController{service: service}
}

func (c *CategoryController) Show(ctx *gin.Context) {
	categoryID, ok := parseID(ctx, "id")
	if !ok {
		ErrorPage(ctx, http.StatusNotFound)
		return
	}

	category, items, err := c.service.GetCategory(ctx.Request.Context(), categoryID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			flashRedirect(ctx, constants.MsgItemNotFound, "/")
			return
		}
		ErrorPage(ctx, http.StatusInternalServerError)
		return
	}

	render(ctx, http.StatusOK, "category.html", gin.H{
		"category": category,
		"items":    *items,
	})
}

func (c *CategoryController) NewForm(ctx *gin.Context) {
	render(ctx, http.StatusOK, "new-category.html", nil)
}

func (c *CategoryController) Create(ctx *gin.Context) {
	var input dto.EntryInput
	if err := ctx.ShouldBind(&input); err != nil {
		flashRedirect(ctx, constants.MsgMissingFields, "/category/new")
		return
	}

	category, err := c.service.CreateCategory(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			flashRedirect(ctx, constants.MsgMissingFields, "/category/new")
			return
		}
		ErrorPage(ctx, http.StatusInternalServerError)
		return
	}

	flashRedirect(ctx, constants.MsgCategoryCreated, fmt.Sprintf("/category/%d", category.ID))
}

func (c *CategoryController) EditForm(ctx *gin.Context) {
	categoryID, ok := parseID(ctx, "id")
	if !ok {
		ErrorPage(ctx, http.StatusNotFound)
		return
	}

	category, _, err := c.service.GetCategory(ctx.Request.Context(), categoryID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			flashRedirect(ctx, constants.MsgCategoryNotFound, "/feed")
			return
		}
		ErrorPage(ctx, http.StatusInternalServerError)
		return
	}

	render(ctx, http.StatusOK, "edit-category.html", gin.H{"category": category})
}

func (c *CategoryController) Update(ctx *gin.Context) {
	categoryID, ok := parseID(ctx, "id")
	if !ok {
		ErrorPage(ctx, http.StatusNotFound)
		return
	}

	var input dto.EntryInput
	_ = ctx.ShouldBind(&input)

	_, err := c.service.UpdateCategory(ctx.Request.Context(), categoryID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			flashRedirect(ctx, constants.MsgCategoryNotFound, "/feed")
		case errors.Is(err, services.ErrValidation):
			flashRedirect(ctx, constants.MsgMissingFields, fmt.Sprintf("/category/%d/edit", categoryID))
		default:
			ErrorPage(ctx, http.StatusInternalServerError)
		}
		return
	}

	flashRedirect(ctx, constants.MsgCategoryEdited, fmt.Sprintf("/category/%d", categoryID))
}

func (c *CategoryController) Delete(ctx *gin.Context) {
	categoryID, ok := parseID(ctx, "id")
	if !ok {
		ErrorPage(ctx, http.StatusNotFound)
		return
	}

	err := c.service.DeleteCategory(ctx.Request.Context(), categoryID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			flashRedirect(ctx, constants.MsgCategoryNotFound, "/feed")
			return
		}
		ErrorPage(ctx, http.StatusInternalServerError)
		return
	}

	flashRedirect(ctx, constants.MsgCategoryDeleted, "/feed")
}
