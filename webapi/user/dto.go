package user

// CreateUser is the request body for registering a user.
type CreateUser struct {
	Username string `json:"username" validate:"required,min=3,max=15,alphanum"`
	Country  string `json:"country" validate:"required,len=2"`
}

// UpdateUser is the request body for changing user details.
type UpdateUser struct {
	Username string `json:"username" validate:"required,min=3,max=15,alphanum"`
	Country  string `json:"country" validate:"required,len=2"`
}
