package dtos

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserProfile is the signed-in operator as returned by the backend.
type UserProfile struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	ImageURL string `json:"image,omitempty"`
}

// LoginData is the payload of a successful login.
type LoginData struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// Roles the backend issues. Only admins may enter the dashboard.
const (
	RoleAdmin = "ADMIN"
	RolePilot = "PILOT"
)
