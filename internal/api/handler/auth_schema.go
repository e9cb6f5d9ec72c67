package handler

// messageResponse is the envelope for signup outcomes and auth failures.
type messageResponse struct {
	Message string `json:"message"`
}

type signInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signInResponse struct {
	Token    string   `json:"token"`
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

type signUpRequest struct {
	Username  string   `json:"username"  validate:"required,min=3,max=20"`
	FirstName string   `json:"firstName" validate:"required,max=50"`
	LastName  string   `json:"lastName"  validate:"required,max=50"`
	Email     string   `json:"email"     validate:"required,email,max=50"`
	Password  string   `json:"password"  validate:"required,min=6,max=40"`
	Roles     []string `json:"roles,omitempty"`
}
