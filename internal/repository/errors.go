package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound is returned by updates, deletes and name lookups that match no row.
	ErrNotFound = errors.New("record not found")

	// ErrInsufficientInventory is returned when a wood or core has no stock left.
	ErrInsufficientInventory = errors.New("insufficient inventory")

	// ErrPersistence is returned when a write affects no rows or yields no id.
	ErrPersistence = errors.New("persistence failure")

	// ErrDuplicateLicense is returned when a wand license is already held.
	ErrDuplicateLicense = errors.New("wand license already registered")

	// ErrInUse is returned when a delete would orphan rows that reference the record.
	ErrInUse = errors.New("record is still referenced")
)

// DecodeError reports a stored column that could not be mapped onto its field.
type DecodeError struct {
	Entity string
	Column string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s.%s: %v", e.Entity, e.Column, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// isUniqueViolation reports whether err is a unique-key violation from
// either supported driver.
func isUniqueViolation(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return true
		}
		// Primary result code only when extended codes are off.
		return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(liteErr.Error(), "UNIQUE")
	}
	return false
}

// isForeignKeyViolation reports whether err is a foreign-key failure from
// either supported driver.
func isForeignKeyViolation(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1451 || myErr.Number == 1452
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
			return true
		}
		return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(liteErr.Error(), "FOREIGN KEY")
	}
	return false
}
