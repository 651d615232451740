package author

type CreateAuthorReq struct {
	FirstName string  `json:"first_name" validate:"required,max=50"`
	LastName  string  `json:"last_name" validate:"required,max=50"`
	Country   *string `json:"country,omitempty" validate:"omitempty,max=50"`
}

type UpdateAuthorReq struct {
	ID        int64   `json:"id" validate:"required,gt=0"`
	FirstName string  `json:"first_name" validate:"required,max=50"`
	LastName  string  `json:"last_name" validate:"required,max=50"`
	Country   *string `json:"country,omitempty" validate:"omitempty,max=50"`
}
