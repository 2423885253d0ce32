package utils

import (
	"errors"
	"regexp"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
)

var phonePattern = regexp.MustCompile(`^\+?[\d\s\-\(\)]{7,15}$`)

// ValidatePhone accepts international numbers with optional +, spaces,
// dashes and parentheses, 7 to 15 characters.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}

// IsDuplicateKeyError recognizes unique-constraint violations across the
// drivers we run against (MySQL error 1062 in production, sqlite in tests).
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "constraint failed")
}
