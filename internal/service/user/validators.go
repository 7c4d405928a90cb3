package user

import (
	"strings"
	"unicode/utf8"

	"parcel-service/internal/entities"
)

// Верхние границы совпадают с VARCHAR-колонками таблицы users.
const (
	minUsernameLength = 3
	maxUsernameLength = 50
	minPasswordLength = 6
	maxFullNameLength = 100
)

func isValidUsername(username string) bool {
	n := utf8.RuneCountInString(username)
	return n >= minUsernameLength && n <= maxUsernameLength
}

func isValidPassword(password string) bool {
	return utf8.RuneCountInString(password) >= minPasswordLength
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func isValidFullName(fullName string) bool {
	return utf8.RuneCountInString(fullName) <= maxFullNameLength
}

func isValidRole(role entities.UserRole) bool {
	switch role {
	case entities.RoleAdmin, entities.RoleAgent:
		return true
	default:
		return false
	}
}
