package user

// User is an admin account. PasswordHash is a bcrypt hash and never leaves
// the server.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

type CreateInput struct {
	Username     string
	PasswordHash string
}
