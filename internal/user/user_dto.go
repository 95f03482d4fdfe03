package user

type CreateUserRequest struct {
	Registration   string  `json:"registration" binding:"required,len=6,numeric"`
	Name           string  `json:"name" binding:"required"`
	Password       string  `json:"password" binding:"required,min=6"`
	Role           string  `json:"role" binding:"omitempty,oneof=ADMIN EMPLOYEE"`
	MorningEntry   *string `json:"morning_entry" binding:"omitempty,len=5"`
	MorningExit    *string `json:"morning_exit" binding:"omitempty,len=5"`
	AfternoonEntry *string `json:"afternoon_entry" binding:"omitempty,len=5"`
	AfternoonExit  *string `json:"afternoon_exit" binding:"omitempty,len=5"`
}

type UpdateUserRequest struct {
	Name           *string `json:"name"`
	Password       *string `json:"password" binding:"omitempty,min=6"`
	Role           *string `json:"role" binding:"omitempty,oneof=ADMIN EMPLOYEE"`
	MorningEntry   *string `json:"morning_entry" binding:"omitempty,len=5"`
	MorningExit    *string `json:"morning_exit" binding:"omitempty,len=5"`
	AfternoonEntry *string `json:"afternoon_entry" binding:"omitempty,len=5"`
	AfternoonExit  *string `json:"afternoon_exit" binding:"omitempty,len=5"`
}

type UserResponse struct {
	ID             string  `json:"id"`
	Registration   string  `json:"registration"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	MorningEntry   *string `json:"morning_entry,omitempty"`
	MorningExit    *string `json:"morning_exit,omitempty"`
	AfternoonEntry *string `json:"afternoon_entry,omitempty"`
	AfternoonExit  *string `json:"afternoon_exit,omitempty"`
	CreatedAt      string  `json:"created_at"`
}
