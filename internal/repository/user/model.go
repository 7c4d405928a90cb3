package user

import "time"

type UserDB struct {
	ID           int64
	Username     string
	PasswordHash string
	FullName     string
	Role         string
	CreatedAt    time.Time
}

type UserModifyDB struct {
	Username     *string
	PasswordHash *string
	FullName     *string
	Role         *string
}
