package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrInvalidEmail  = errors.New("email must contain '@'")
	ErrUnknownRole   = errors.New("role must be USER or ADMIN")
)

// Known roles. The role set is closed; anything else is rejected at the boundary.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User represents a storefront account as seen by the order workflow: a stable
// username, a contact address, and a role set. Credential issuance and
// password hashing live upstream; the stored password is opaque here.
type User struct {
	ID        int64
	Username  string
	Email     string
	Password  string
	Roles     []string
	CreatedAt time.Time
}

// NewUser builds a user ensuring required invariants. Roles default to USER.
func NewUser(username, email, password string, roles ...string) (*User, error) {
	user := &User{}
	if err := user.SetUsername(username); err != nil {
		return nil, err
	}
	if err := user.SetEmail(email); err != nil {
		return nil, err
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		roles = []string{RoleUser}
	}
	for _, role := range roles {
		if err := user.GrantRole(role); err != nil {
			return nil, err
		}
	}
	return user, nil
}

// SetUsername trims and validates the username.
func (u *User) SetUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}
	u.Username = username
	return nil
}

// SetEmail applies a minimal shape check on the contact address.
func (u *User) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	u.Email = email
	return nil
}

// SetPassword stores the opaque credential produced upstream.
func (u *User) SetPassword(password string) error {
	password = strings.TrimSpace(password)
	if password == "" {
		return ErrEmptyPassword
	}
	u.Password = password
	return nil
}

// GrantRole adds a role from the closed set, ignoring duplicates.
func (u *User) GrantRole(role string) error {
	role = strings.ToUpper(strings.TrimSpace(role))
	switch role {
	case RoleUser, RoleAdmin:
	default:
		return ErrUnknownRole
	}
	if u.HasRole(role) {
		return nil
	}
	u.Roles = append(u.Roles, role)
	return nil
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// Validate re-applies core invariants for persistence.
func (u *User) Validate() error {
	if err := u.SetUsername(u.Username); err != nil {
		return err
	}
	if err := u.SetEmail(u.Email); err != nil {
		return err
	}
	if err := u.SetPassword(u.Password); err != nil {
		return err
	}
	for _, role := range u.Roles {
		if role != RoleUser && role != RoleAdmin {
			return ErrUnknownRole
		}
	}
	return nil
}
