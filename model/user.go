package model

import "time"

const (
	RoleAdmin    = "Admin"
	RoleManager  = "Manager"
	RoleCustomer = "Customer"
)

type Customer struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        *string   `json:"phone,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
	IsActive     bool      `json:"is_active"`
	RoleName     string    `json:"role"`
}

// RegisterReq represents customer registration payload
// swagger:model RegisterReq
type RegisterReq struct {
	FirstName string  `json:"first_name" validate:"required,max=50"`
	LastName  string  `json:"last_name" validate:"required,max=50"`
	Email     string  `json:"email" validate:"required,email,max=100"`
	Password  string  `json:"password" validate:"required,min=6"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// LoginReq represents login payload
// swagger:model LoginReq
type LoginReq struct {
	Login    string `json:"login" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
