package controllers

import (
	"errors"
	"net/http"

	"item-catalog/dto"
	"item-catalog/services"

	"github.com/gin-gonic/gin"
)

type IAPIController interface {
	ListCategories(ctx *gin.Context)
	GetCategory(ctx *gin.Context)
	GetItem(ctx *gin.Context)
}

// APIController serves the unauthenticated, read-only JSON projections.
// Response shapes are frozen; see dto.CategoryResponse and dto.ItemResponse.
type APIController struct {
	service services.ICatalogService
}

func NewAPIController(service services.ICatalogService) IAPIController {
	return &APIController{service: service}
}

func (c *APIController) ListCategories(ctx *gin.Context) {
	categories, err := c.service.ListCategories(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"Categories": dto.NewCategoryResponses(*categories)})
}

func (c *APIController) GetCategory(ctx *gin.Context) {
	categoryID, ok := parseID(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	category, items, err := c.service.GetCategory(ctx.Request.Context(), categoryID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"Meta":  dto.NewCategoryResponse(*category),
		"Items": dto.NewItemResponses(*items),
	})
}

func (c *APIController) GetItem(ctx *gin.Context) {
	itemID, ok := parseID(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	item, err := c.service.GetItemByID(ctx.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error"})
		return
	}

	ctx.JSON(http.StatusOK, dto.NewItemResponse(*item))
}
