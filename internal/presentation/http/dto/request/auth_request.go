package request

// RegisterRequest represents a registration request
type RegisterRequest struct {
	FirstName   string  `json:"first_name" binding:"required,min=2,max=100"`
	LastName    string  `json:"last_name" binding:"required,min=2,max=100"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8"`
	Role        string  `json:"role" binding:"required,oneof=buyer seller logistics"`
	CompanyName *string `json:"company_name"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
