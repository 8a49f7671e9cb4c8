package auth

// registerRequest is the JSON body for POST /auth/register.
type registerRequest struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"correct horse battery"`
}

// loginRequest is the JSON body for POST /auth/login.
type loginRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"correct horse battery"`
}

// UserDTO is the public representation of an account. The password hash
// never leaves the server.
type UserDTO struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
}

type registerResponse struct {
	Message string  `json:"message" example:"user registered"`
	User    UserDTO `json:"user"`
}

type loginResponse struct {
	Message string  `json:"message" example:"login successful"`
	User    UserDTO `json:"user"`
	Token   string  `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
