package users

type RegisterRequest struct {
	Username  string `json:"username" validate:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateMeRequest changes only the fields that are present. A new password
// requires the current one.
type UpdateMeRequest struct {
	FirstName       *string `json:"first_name" validate:"omitnil,max=100"`
	LastName        *string `json:"last_name" validate:"omitnil,max=100"`
	Password        *string `json:"password" validate:"omitnil,min=1"`
	CurrentPassword string  `json:"current_password" validate:"required_with=Password"`
}
