package mapper

import (
	"time"

	usersdomain "github.com/Apurer/go-storefront-api/internal/domains/users/domain"
	usersports "github.com/Apurer/go-storefront-api/internal/domains/users/ports"
)

// User is the transport-layer shape of an account. The password hash never
// leaves the service.
type User struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterRequest carries a new account registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ToRegisterInput converts a registration request into the service input.
func ToRegisterInput(req RegisterRequest) usersports.RegisterInput {
	return usersports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}
}

// FromDomainUser converts a domain user to the transport representation.
func FromDomainUser(user *usersdomain.User) User {
	if user == nil {
		return User{}
	}
	roles := make([]string, len(user.Roles))
	copy(roles, user.Roles)
	return User{
		Username:  user.Username,
		Email:     user.Email,
		Roles:     roles,
		CreatedAt: user.CreatedAt,
	}
}

// FromDomainUsers converts a list of domain users.
func FromDomainUsers(users []*usersdomain.User) []User {
	result := make([]User, 0, len(users))
	for _, user := range users {
		result = append(result, FromDomainUser(user))
	}
	return result
}
