package model

// Collection names in the backing document store. They are kept exactly as the
// mobile clients created them, including the historical "Login" name for the
// user collection.
const (
	CollectionUsers    = "Login"
	CollectionServices = "Service"
)

// UserAccount represents an account in the Login collection.
//
// The password is stored and serialized as plaintext: the admin customer
// screen displays and edits it in place. A known weakness of this system,
// kept deliberately.
type UserAccount struct {
	ID       string `json:"id"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     bool   `json:"role"` // true = administrator, false = customer
}

// Session is the outcome of a successful login. It is ephemeral: nothing is
// persisted server-side, the role flag alone decides the route.
type Session struct {
	Admin bool `json:"admin"`
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest carries self-registration credentials. Role is always false
// for self-registered accounts.
type RegisterRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpsertUserRequest is used by the admin user-management endpoints
type UpsertUserRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     bool   `json:"role"`
}
