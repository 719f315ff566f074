package dto

// CreateCategoryRequest creates a category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	Type string `json:"type" binding:"required,oneof=income expense"`
}

// UpdateCategoryRequest applies a partial update; nil fields are untouched.
type UpdateCategoryRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Type *string `json:"type,omitempty" binding:"omitempty,oneof=income expense"`
}
