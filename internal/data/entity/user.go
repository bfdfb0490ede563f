package entity

import "time"

type Role string

const (
	RoleDirector  Role = "director"
	RoleManager   Role = "manager"
	RoleEmployee  Role = "employee"
	RoleWarehouse Role = "warehouse"
)

// roleLevels orders the role hierarchy for "at least this privileged" checks.
var roleLevels = map[Role]int{
	RoleDirector:  4,
	RoleManager:   3,
	RoleEmployee:  2,
	RoleWarehouse: 1,
}

// Level returns the rank of the role. Unknown roles rank 0 and never pass
// a minimum-role check.
func (r Role) Level() int {
	return roleLevels[r]
}

// ParseRole canonicalizes a role string. The legacy "admin" value maps to
// director; unrecognized values pass through unchanged and rank 0.
func ParseRole(s string) Role {
	if s == "admin" {
		return RoleDirector
	}
	return Role(s)
}

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

type User struct {
	ID           int64      `db:"id"`
	Username     string     `db:"username"`
	PasswordHash string     `db:"password_hash"`
	Token        *string    `db:"token"`
	Role         Role       `db:"role"`
	Email        *string    `db:"email"`
	Status       UserStatus `db:"status"`
	CreatedAt    time.Time  `db:"created_at"`
}
