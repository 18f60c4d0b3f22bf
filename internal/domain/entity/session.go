package entity

// Session links a request cookie (or bearer token) to an authenticated
// identity. It lives in Redis for as long as the store retains it.
type Session struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
