package enums

import "fmt"

// UserRole represents the canonical user_role enum in Postgres.
type UserRole string

const (
	UserRoleBuyer        UserRole = "buyer"
	UserRoleSeller       UserRole = "seller"
	UserRoleAdmin        UserRole = "admin"
	UserRoleAdminManager UserRole = "admin_manager"
)

var validUserRoles = []UserRole{
	UserRoleBuyer,
	UserRoleSeller,
	UserRoleAdmin,
	UserRoleAdminManager,
}

// SellerRoles lists the roles that may own listings and receive tenders.
var SellerRoles = []UserRole{
	UserRoleSeller,
	UserRoleAdmin,
	UserRoleAdminManager,
}

// String implements fmt.Stringer.
func (r UserRole) String() string {
	return string(r)
}

// IsValid reports whether the value is a known UserRole.
func (r UserRole) IsValid() bool {
	for _, candidate := range validUserRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// CanSell reports whether the role may list inventory on the marketplace.
func (r UserRole) CanSell() bool {
	for _, candidate := range SellerRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseUserRole converts raw input into a UserRole.
func ParseUserRole(value string) (UserRole, error) {
	for _, candidate := range validUserRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user role %q", value)
}
