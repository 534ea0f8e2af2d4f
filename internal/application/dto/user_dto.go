package dto

// SignupRequest entrada del registro (password en texto, se hashea en el use case).
type SignupRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

// SignupResponse salida del registro con el id generado por el store.
type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// LoginRequest entrada del login: password más email o username (al menos
// uno de los dos identificadores).
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required_without=Username,omitempty,email"`
	Username string `json:"username" form:"username" validate:"required_without=Email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginResponse salida del login; JWTToken solo cuando la emisión está habilitada.
type LoginResponse struct {
	Message  string `json:"message"`
	JWTToken string `json:"jwt_token,omitempty"`
}
