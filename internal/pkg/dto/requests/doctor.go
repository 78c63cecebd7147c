package requests

// SignupDoctor covers POST /signup.
type SignupDoctor struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

// LoginDoctor covers POST /login.
type LoginDoctor struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateDoctor covers PATCH /update/{doctorId}. All fields optional; only
// non-nil fields are written.
type UpdateDoctor struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" validate:"omitempty,email"`
}
