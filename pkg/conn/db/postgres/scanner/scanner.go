package scanner

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/jackc/pgx/v4"
)

type Queryer interface {
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
}

// type-safe scanner for pgx.Rows
//
// # example
//
//	type Doc struct {
//		DocId int64  `sql:"doc_id"`
//		Name  string `sql:"document_name"`
//	}
//
//	docs, err := scanner.New[Doc]().QueryAll(
//		ctx, conn, `select "doc_id", "document_name" from "document"`,
//	)
//
// # mapping rule
//
// columns are mapped into
//
//  1. field with tag `sql:"column_name"`
//  2. or, field named as same as the column name
//  3. or, field which has a name in CamelCase version of column name ("id_run" -> "IdRun").
//
// Fields can be any types pgx can scan into, including pgtype's nullable types.
type Scanner[T any] interface {
	// scan all rows in pgx.Rows and convert to []T
	ScanAll(pgx.Rows) ([]T, error)

	// scan all rows in response of query.
	QueryAll(context.Context, Queryer, string, ...interface{}) ([]T, error)
}

type scanner[T any] struct {
	byTag  map[string][]int
	byName map[string][]int
}

// New returns a Scanner for struct type T.
//
// It panics when T is not a struct.
func New[T any]() Scanner[T] {
	typ := reflect.TypeOf(*new(T))
	if typ.Kind() != reflect.Struct {
		panic(fmt.Sprintf("scanner: %s is not a struct", typ))
	}

	byTag := map[string][]int{}
	byName := map[string][]int{}
	// fields of embedded structs are promoted, as same as Go does.
	for _, f := range reflect.VisibleFields(typ) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		byName[f.Name] = f.Index
		if tag, ok := f.Tag.Lookup("sql"); ok {
			byTag[tag] = f.Index
		}
	}

	return &scanner[T]{byTag: byTag, byName: byName}
}

func camel(s string) string {
	b := &strings.Builder{}
	for _, ss := range strings.Split(s, "_") {
		if len(ss) == 0 {
			b.WriteString("_")
			continue
		}
		b.WriteString(strings.ToUpper(ss[0:1]))
		b.WriteString(ss[1:])
	}
	return b.String()
}

func (s *scanner[T]) field(column string) ([]int, bool) {
	if f, ok := s.byTag[column]; ok {
		return f, true
	}
	if f, ok := s.byName[column]; ok {
		return f, true
	}
	if f, ok := s.byName[camel(column)]; ok {
		return f, true
	}
	return nil, false
}

func (s *scanner[T]) ScanAll(rows pgx.Rows) ([]T, error) {
	columns := rows.FieldDescriptions()
	fields := make([][]int, 0, len(columns))
	for _, fd := range columns {
		col := string(fd.Name)
		f, ok := s.field(col)
		if !ok {
			return nil, fmt.Errorf(
				`field for column "%s" is not found in type "%T"`, col, *new(T),
			)
		}
		fields = append(fields, f)
	}

	ret := []T{}
	for rows.Next() {
		elem := new(T)
		re := reflect.ValueOf(elem).Elem()

		dest := make([]interface{}, len(fields))
		for nth, f := range fields {
			dest[nth] = re.FieldByIndex(f).Addr().Interface()
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		ret = append(ret, *elem)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}

func (s *scanner[T]) QueryAll(ctx context.Context, conn Queryer, q string, params ...interface{}) ([]T, error) {
	rows, err := conn.Query(ctx, q, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return s.ScanAll(rows)
}
