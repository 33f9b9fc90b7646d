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

type IItemController interface {
	Show(ctx *gin.Context)
	NewForm(ctx *gin.Context)
	Create(ctx *gin.Context)
	EditForm(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ItemController struct {
	service services.ICatalogService
}

func NewItemController(service services.ICatalogService) IItemController {
	return &ItemController{service: service}
}

func (c *ItemController) Show(ctx *gin.Context) {
	categoryID, ok := parseID(ctx, "id")
	if !ok {
		ErrorPage(ctx, http.StatusNotFound)
		return
	}
	itemID, ok := parseID(ctx, "itemId")
	if !ok {
		ErrorPage(ctx, http.StatusNotFound)
		return
	}

	item, err := c.service.GetItem(ctx.Request.Context(), categoryID, itemID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			flashRedirect(ctx, constants.MsgItemNotFound, "/")
			return
		}
		ErrorPage(ctx, http.StatusInternalServerError)
		return
	}

	render(ctx, http.StatusOK, "item.html", gin.H{"item": item})
}

func (c *ItemController) NewForm(ctx *gin.Context) {
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

	render(ctx, http.StatusOK, "new-item.html", gin.H{"category": category})
}

func (c *ItemController) Create(ctx *gin.Context) {
	categoryID, ok := parseID(ctx, "id")
	if !ok {
		ErrorPage(ctx, http.StatusNotFound)
		return
	}

	var input dto.EntryInput
	_ = ctx.ShouldBind(&input)

	item, err := c.service.CreateItem(ctx.Request.Context(), categoryID, currentUserID(ctx), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			flashRedirect(ctx, constants.MsgCategoryNotFound, "/feed")
		case errors.Is(err, services.ErrValidation):
			flashRedirect(ctx, constants.MsgMissingFields, fmt.Sprintf("/category/%d/new", categoryID))
		default:
			ErrorPage(ctx, http.StatusInternalServerError)
		}
		return
	}

	flashRedirect(ctx, constants.MsgItemCreated, fmt.Sprintf("/category/%d/%d", categoryID, item.ID))
}

func (c *ItemController) EditForm(ctx *gin.Context) {
	categoryID, ok := parseID(ctx, "id")
	if !ok {
		ErrorPage(ctx, http.StatusNotFound)
		return
	}
	itemID, ok := parseID(ctx, "itemId")
	if !ok {
		ErrorPage(ctx, http.StatusNotFound)
		return
	}

	item, err := c.service.GetItem(ctx.Request.Context(), categoryID, itemID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			flashRedirect(ctx, constants.MsgItemNotFound, "/")
			return
		}
		ErrorPage(ctx, http.StatusInternalServerError)
		return
	}

	if item.UserID != currentUserID(ctx) {
		flashRedirect(ctx, constants.MsgNotYourItem, fmt.Sprintf("/category/%d/%d", categoryID, itemID))
		return
	}

	render(ctx, http.StatusOK, "edit-item.html", gin.H{"item": item})
}

func (c *ItemController) Update(ctx *gin.Context) {
	categoryID, ok := parseID(ctx, "id")
	if !ok {
		ErrorPage(ctx, http.StatusNotFound)
		return
	}
	itemID, ok := parseID(ctx, "itemId")
	if !ok {
		ErrorPage(ctx, http.StatusNotFound)
		return
	}

	var input dto.EntryInput
	_ = ctx.ShouldBind(&input)

	_, err := c.service.UpdateItem(ctx.Request.Context(), categoryID, itemID, currentUserID(ctx), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			flashRedirect(ctx, constants.MsgItemNotFound, "/")
		case errors.Is(err, services.ErrForbidden):
			flashRedirect(ctx, constants.MsgNotYourItem, fmt.Sprintf("/category/%d/%d", categoryID, itemID))
		case errors.Is(err, services.ErrValidation):
			flashRedirect(ctx, constants.MsgMissingFields, fmt.Sprintf("/category/%d/%d/edit", categoryID, itemID))
		default:
			ErrorPage(ctx, http.StatusInternalServerError)
		}
		return
	}

	flashRedirect(ctx, constants.MsgItemEdited, fmt.Sprintf("/category/%d/%d", categoryID, itemID))
}

func (c *ItemController) Delete(ctx *gin.Context) {
	categoryID, ok := parseID(ctx, "id")
	if !ok {
		ErrorPage(ctx, http.StatusNotFound)
		return
	}
	itemID, ok := parseID(ctx, "itemId")
	if !ok {
		ErrorPage(ctx, http.StatusNotFound)
		return
	}

	err := c.service.DeleteItem(ctx.Request.Context(), categoryID, itemID, currentUserID(ctx))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			flashRedirect(ctx, constants.MsgItemNotFound, "/feed")
		case errors.Is(err, services.ErrForbidden):
			flashRedirect(ctx, constants.MsgNotAuthorized, fmt.Sprintf("/category/%d/%d", categoryID, itemID))
		default:
			ErrorPage(ctx, http.StatusInternalServerError)
		}
		return
	}

	flashRedirect(ctx, constants.MsgItemDeleted, fmt.Sprintf("/category/%d", categoryID))
}
