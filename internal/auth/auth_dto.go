package auth

type LoginRequest struct {
	Registration string `json:"registration" binding:"required,len=6,numeric"`
	Password     string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID           string `json:"id"`
	Registration string `json:"registration"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}
