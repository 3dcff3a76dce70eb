package errors

import (
	"errors"
	"fmt"

	kdb "github.com/docstokg/docstokg-web/pkg/db"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
)

// requested data is missing.
type Missing struct {
	Table    string
	Identity string
}

var _ error = Missing{}

func (m Missing) Error() string {
	return fmt.Sprintf("%s is not found in %s", m.Identity, m.Table)
}
func (m Missing) Unwrap() error {
	return kdb.ErrMissing
}

// requested data conflicts with existing one.
type Conflict struct {
	Table    string
	Identity string
	Cause    error
}

var _ error = Conflict{}

func (c Conflict) Error() string {
	return fmt.Sprintf("%s conflicts in %s: %v", c.Identity, c.Table, c.Cause)
}

func (c Conflict) Unwrap() []error {
	return []error{kdb.ErrConflict, c.Cause}
}

// CodeOf returns SQLSTATE of err if it is caused by PostgreSQL. Otherwise, empty string.
func CodeOf(err error) string {
	if pgerr := new(pgconn.PgError); errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	return CodeOf(err) == pgerrcode.UniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	return CodeOf(err) == pgerrcode.ForeignKeyViolation
}
