// marshal converts nullable column values into domain values.
//
// Columns read from the database can be NULL. Every NULL is turned into a default value here,
// and nowhere else.
//
// - progress percentages (task states): NULL -> 0
//
// - flags: NULL -> false
//
// - texts: NULL -> ""
package marshal

import (
	"strings"
	"time"

	"github.com/jackc/pgtype"
)

// Percentage returns the value of v, or 0 when v is NULL.
//
// Values out of [0, 100] are clamped into the range.
func Percentage(v pgtype.Int4) int {
	if v.Status != pgtype.Present {
		return 0
	}
	switch p := int(v.Int); {
	case p < 0:
		return 0
	case 100 < p:
		return 100
	default:
		return p
	}
}

// Flag returns the value of v, or false when v is NULL.
func Flag(v pgtype.Bool) bool {
	return v.Status == pgtype.Present && v.Bool
}

// Text returns the value of v, or "" when v is NULL.
func Text(v pgtype.Text) string {
	if v.Status != pgtype.Present {
		return ""
	}
	return v.String
}

// Int returns a pointer to the value of v, or nil when v is NULL.
func Int(v pgtype.Int4) *int {
	if v.Status != pgtype.Present {
		return nil
	}
	i := int(v.Int)
	return &i
}

// Time returns the value of v, or zero time when v is NULL.
func Time(v pgtype.Timestamptz) time.Time {
	if v.Status != pgtype.Present {
		return time.Time{}
	}
	return v.Time
}

// List splits comma-separated v into trimmed items. NULL or empty is empty list.
func List(v pgtype.Text) []string {
	ret := []string{}
	for _, item := range strings.Split(Text(v), ",") {
		if item = strings.TrimSpace(item); item != "" {
			ret = append(ret, item)
		}
	}
	return ret
}

// JoinList is the inverse of List. Empty list is NULL.
func JoinList(items []string) pgtype.Text {
	trimmed := []string{}
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			trimmed = append(trimmed, item)
		}
	}
	if len(trimmed) == 0 {
		return pgtype.Text{Status: pgtype.Null}
	}
	return pgtype.Text{String: strings.Join(trimmed, ","), Status: pgtype.Present}
}

// NullableText converts "" into NULL.
func NullableText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Status: pgtype.Null}
	}
	return pgtype.Text{String: s, Status: pgtype.Present}
}

// NullableInt converts nil into NULL.
func NullableInt(i *int) pgtype.Int4 {
	if i == nil {
		return pgtype.Int4{Status: pgtype.Null}
	}
	return pgtype.Int4{Int: int32(*i), Status: pgtype.Present}
}
