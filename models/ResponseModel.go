package models

// LoginRequest is the body for POST /api/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"password"`
	IP       string `json:"ip" example:"192.168.1.1"`
}

// LoginResponse is used in @Success for login
type LoginResponse struct {
	Message     string    `json:"message" example:"User successfully logged in"`
	AccessToken string    `json:"access_token" example:"eyJhbGc..."`
	SessionID   string    `json:"session_id" example:"uuid"`
	User        LoginUser `json:"user"`
}

// LoginUser is the user object inside LoginResponse
type LoginUser struct {
	ID       int    `json:"id" example:"1"`
	Email    string `json:"email" example:"user@example.com"`
	FullName string `json:"full_name" example:"Anish Kumar"`
}

// SuccessResponse is used in @Success for generic success
type SuccessResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// ErrorResponse is used in @Failure for error bodies
type ErrorResponse struct {
	Error string `json:"error" example:"record not found"`
}

// ValidateSessionResponse is used in @Success for validate session (swagger)
type ValidateSessionResponse struct {
	Valid bool   `json:"valid" example:"true"`
	Email string `json:"email,omitempty"`
}

// ImportResult summarizes a mobile export import run.
type ImportResult struct {
	Imported int      `json:"imported" example:"12"`
	Skipped  int      `json:"skipped" example:"1"`
	IDs      []string `json:"ids"`
}
