package entity

type Role string

const (
	RoleCustomer Role = "ROLE_CUSTOMER"
	RoleSeller   Role = "ROLE_SELLER"
	RoleAdmin    Role = "ROLE_ADMIN"
)

type UserType string

const (
	TypeCustomer UserType = "CUSTOMER"
	TypeSeller   UserType = "SELLER"
	TypeAdmin    UserType = "ADMIN"
)

// User adalah identity hasil login / profile fetch.
type User struct {
	ID        string   `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Roles     []Role   `json:"roles"`
	Type      UserType `json:"type"`
	Verified  bool     `json:"verified,omitempty"`
}

// HasRole reports whether the user carries the given role tag.
func (u *User) HasRole(role Role) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
