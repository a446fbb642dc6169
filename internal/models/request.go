package models

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
}
