package entities

import "time"

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	FullName     string
	Role         UserRole
	CreatedAt    time.Time
}

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleAgent UserRole = "agent"
)

const DefaultRole = RoleAgent

func (r UserRole) String() string {
	return string(r)
}

type UserModify struct {
	Username     *string
	Password     *string
	PasswordHash *string
	FullName     *string
	Role         *UserRole
}
