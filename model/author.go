package model

type Author struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Country   *string `json:"country,omitempty"`
}
