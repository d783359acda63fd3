package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Typed repository errors. Callers match with errors.Is; raw driver error
// text never crosses this boundary.
var (
	ErrNotFound            = errors.New("record not found")
	ErrForeignKeyViolation = errors.New("referenced record does not exist")
	ErrDuplicateKey        = errors.New("record already exists")
	ErrValidation          = errors.New("invalid field value")
	ErrConnectivity        = errors.New("database unreachable")
)

// Translate maps gorm and driver errors onto the typed taxonomy. Unknown
// errors keep their chain for logging but get a stable message prefix.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrForeignKeyViolation),
		errors.Is(err, ErrDuplicateKey),
		errors.Is(err, ErrValidation),
		errors.Is(err, ErrConnectivity):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKeyViolation
	}
	if isConnectivity(err) {
		return fmt.Errorf("%w: %w", ErrConnectivity, err)
	}
	return fmt.Errorf("storage failure: %w", err)
}

// isConnectivity spots errors that mean the database, not the statement,
// failed. database/sql does not export its closed-pool error, so that one
// has to be matched by message.
func isConnectivity(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "database is closed") ||
		strings.Contains(msg, "connection refused")
}

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

const dateLayout = "2006-01-02"

func parseDate(value, field string) (time.Time, error) {
	if value == "" {
		return time.Time{}, validationError("%s is required", field)
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, validationError("%s must be in YYYY-MM-DD format", field)
	}
	return t, nil
}
