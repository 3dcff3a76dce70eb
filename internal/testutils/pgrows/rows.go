// pgrows provides in-memory pgx.Rows for testing code which reads query results.
package pgrows

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgproto3/v2"
	"github.com/jackc/pgx/v4"
)

// Rows is a pgx.Rows returning fixed values.
type Rows struct {
	columns []pgproto3.FieldDescription
	values  [][]interface{}
	cursor  int
	closed  bool
	err     error
}

var _ pgx.Rows = &Rows{}

// New returns Rows with columns and rows.
//
// Each row should have values as many as columns. nil is SQL NULL.
func New(columns []string, rows ...[]interface{}) *Rows {
	fds := make([]pgproto3.FieldDescription, 0, len(columns))
	for _, c := range columns {
		fds = append(fds, pgproto3.FieldDescription{Name: []byte(c)})
	}
	return &Rows{columns: fds, values: rows, cursor: -1}
}

// Failing returns empty Rows which reports err after iteration.
func Failing(columns []string, err error) *Rows {
	r := New(columns)
	r.err = err
	return r
}

func (r *Rows) Closed() bool {
	return r.closed
}

func (r *Rows) Close() {
	r.closed = true
}

func (r *Rows) Err() error {
	return r.err
}

func (r *Rows) CommandTag() pgconn.CommandTag {
	return pgconn.CommandTag(fmt.Sprintf("SELECT %d", len(r.values)))
}

func (r *Rows) FieldDescriptions() []pgproto3.FieldDescription {
	return r.columns
}

func (r *Rows) Next() bool {
	if r.closed {
		return false
	}
	r.cursor += 1
	if len(r.values) <= r.cursor {
		r.closed = true
		return false
	}
	return true
}

type setter interface {
	Set(src interface{}) error
}

func (r *Rows) Scan(dest ...interface{}) error {
	if r.cursor < 0 || len(r.values) <= r.cursor {
		return errors.New("pgrows: no current row")
	}
	row := r.values[r.cursor]
	if len(row) != len(dest) {
		return fmt.Errorf("pgrows: %d values for %d destinations", len(row), len(dest))
	}

	for nth, d := range dest {
		if s, ok := d.(setter); ok {
			if err := s.Set(row[nth]); err != nil {
				return err
			}
			continue
		}

		rv := reflect.ValueOf(d)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return fmt.Errorf("pgrows: destination %d is not a pointer", nth)
		}
		if row[nth] == nil {
			rv.Elem().Set(reflect.Zero(rv.Elem().Type()))
			continue
		}
		src := reflect.ValueOf(row[nth])
		if !src.CanConvert(rv.Elem().Type()) {
			return fmt.Errorf(
				"pgrows: column %s: %T can not be scanned into %s",
				r.columns[nth].Name, row[nth], rv.Elem().Type(),
			)
		}
		rv.Elem().Set(src.Convert(rv.Elem().Type()))
	}
	return nil
}

func (r *Rows) Values() ([]interface{}, error) {
	if r.cursor < 0 || len(r.values) <= r.cursor {
		return nil, errors.New("pgrows: no current row")
	}
	return r.values[r.cursor], nil
}

func (r *Rows) RawValues() [][]byte {
	return nil
}
