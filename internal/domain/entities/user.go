package entities

// User is the authenticated identity attached to a session token.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
