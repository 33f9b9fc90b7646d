package dto

import "item-catalog/models"

// EntryInput carries the form fields shared by category and item forms.
// Emptiness is validated in the service layer so failures can redirect
// back to the form instead of returning a bare 400.
type EntryInput struct {
	Name        string `form:"name"`
	Description string `form:"description"`
}

type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ItemResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  uint   `json:"category_id"`
	UserID      uint   `json:"user_id"`
}

// The response shapes above are a compatibility contract for API consumers.

func NewCategoryResponse(c models.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}

func NewItemResponse(i models.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		CategoryID:  i.CategoryID,
		UserID:      i.UserID,
	}
}

func NewCategoryResponses(categories []models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, NewCategoryResponse(c))
	}
	return responses
}

func NewItemResponses(items []models.Item) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, i := range items {
		responses = append(responses, NewItemResponse(i))
	}
	return responses
}
