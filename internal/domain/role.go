package domain

type Role string

const (
	RoleAdmin    Role = "Role.Admin"
	RoleUser     Role = "Role.User"
	RoleReadOnly Role = "Role.ReadOnly"
)

// AnyRole is the set accepted by endpoints open to every authenticated caller.
var AnyRole = []Role{RoleAdmin, RoleUser, RoleReadOnly}
