package authorization

// UserRole identifies a user's role in the fixed role hierarchy.
type UserRole string

const (
	RoleUser       UserRole = "user"
	RoleSupport    UserRole = "support"
	RoleAccountant UserRole = "accountant"
	RoleBetaReader UserRole = "beta_reader"
	RoleAdmin      UserRole = "admin"
	RoleSuperAdmin UserRole = "super_admin"
)

// roleRanks orders roles for user-management checks. A requester may only
// manage users whose rank is strictly lower than their own.
var roleRanks = map[UserRole]int{
	RoleUser:       1,
	RoleSupport:    2,
	RoleAccountant: 2,
	RoleBetaReader: 2,
	RoleAdmin:      3,
	RoleSuperAdmin: 4,
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, ok := roleRanks[r]
	return ok
}

// Rank returns the role's position in the hierarchy; unknown roles rank as a
// basic user.
func (r UserRole) Rank() int {
	if rank, ok := roleRanks[r]; ok {
		return rank
	}
	return roleRanks[RoleUser]
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Outranks reports whether r sits strictly above other in the hierarchy.
func (r UserRole) Outranks(other UserRole) bool {
	return r.Rank() > other.Rank()
}

// ParseUserRole normalizes a stored role string, defaulting to the basic
// user role for anything unrecognized.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}
