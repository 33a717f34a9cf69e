package database

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const pqUniqueViolation = "23505"

// IsDuplicateKey reports whether err is a unique constraint violation.
// GORM translates sqlite/mysql/pgx errors when TranslateError is on; lib/pq
// and Oracle errors are matched here.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}

	// ORA-00001: unique constraint violated
	return strings.Contains(err.Error(), "ORA-00001")
}
