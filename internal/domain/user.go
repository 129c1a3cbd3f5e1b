package domain

// User is a customer account. Phone is the natural key; the admin panel reads
// the users collection directly, so field names are wire-stable. Passwords are
// stored as-is: this system interoperates with a client-side prototype that
// never hashed them.
type User struct {
	ID       string  `json:"id"`
	Nickname string  `json:"nickname"`
	Phone    string  `json:"phone"`
	Password string  `json:"password"`
	Avatar   *string `json:"avatar"`
	Created  int64   `json:"created"`
}

// Session is the single active identity record shared by every tab of the
// same origin. Absence means an anonymous visitor. Last login wins globally.
type Session struct {
	Phone    string `json:"phone"`
	Nickname string `json:"nickname"`
}

type CreateUserInput struct {
	Nickname string `json:"nickname"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginInput struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}
