package dto

// SignupRequest is the body for POST /signup.
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// SigninRequest is the body for POST /signin.
type SigninRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse wraps the outcome of a successful signup/signin.
type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// ProfileResponse is returned by GET /profile.
type ProfileResponse struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}
