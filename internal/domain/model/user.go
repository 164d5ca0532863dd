package model

import "time"

// Role identifies which side of the marketplace a user acts on.
type Role string

const (
	RoleFarmer      Role = "farmer"
	RoleBuyer       Role = "buyer"
	RoleTransporter Role = "transporter"
)

// ParseRole converts a raw string into a Role.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleFarmer, RoleBuyer, RoleTransporter:
		return Role(raw), true
	}
	return "", false
}

// Valid reports whether the role is one of the known marketplace roles.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// User represents a registered marketplace participant.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Actor is an authenticated user performing an operation.
type Actor struct {
	ID   int64
	Role Role
}
