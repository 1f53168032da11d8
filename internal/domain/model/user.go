package model

import "devfolio/internal/common"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the only entity whose read shape differs from its insert shape
// beyond server-assigned fields: the stored credential is a bcrypt hash
// and is never serialized.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt hash, never exposed
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (u *InsertUser) Validate() error {
	ve := common.NewValidationError()
	if u.Username == "" {
		ve.Missing("username")
	}
	if u.Password == "" {
		ve.Missing("password")
	}
	if u.Name == "" {
		ve.Missing("name")
	}
	if u.Email == "" {
		ve.Missing("email")
	}
	if u.Role != "" && u.Role != RoleUser && u.Role != RoleAdmin {
		ve.Add("role", "must be either \"admin\" or \"user\"")
	}
	return ve.OrNil()
}
