package marshal_test

import (
	"testing"
	"time"

	"github.com/docstokg/docstokg-web/pkg/cmp"
	"github.com/docstokg/docstokg-web/pkg/db/postgres/marshal"
	"github.com/jackc/pgtype"
)

func TestPercentage(t *testing.T) {
	for name, testcase := range map[string]struct {
		when pgtype.Int4
		then int
	}{
		"NULL is 0":           {when: pgtype.Int4{Status: pgtype.Null}, then: 0},
		"undefined is 0":      {when: pgtype.Int4{}, then: 0},
		"present value":       {when: pgtype.Int4{Int: 42, Status: pgtype.Present}, then: 42},
		"100 is kept":         {when: pgtype.Int4{Int: 100, Status: pgtype.Present}, then: 100},
		"negative is clamped": {when: pgtype.Int4{Int: -3, Status: pgtype.Present}, then: 0},
		"over 100 is clamped": {when: pgtype.Int4{Int: 120, Status: pgtype.Present}, then: 100},
	} {
		t.Run(name, func(t *testing.T) {
			if actual := marshal.Percentage(testcase.when); actual != testcase.then {
				t.Errorf("Percentage(%+v) = %d, want %d", testcase.when, actual, testcase.then)
			}
		})
	}
}

func TestFlag(t *testing.T) {
	if marshal.Flag(pgtype.Bool{Status: pgtype.Null}) {
		t.Error("NULL is true")
	}
	if marshal.Flag(pgtype.Bool{Bool: false, Status: pgtype.Present}) {
		t.Error("false is true")
	}
	if !marshal.Flag(pgtype.Bool{Bool: true, Status: pgtype.Present}) {
		t.Error("true is false")
	}
}

func TestTextAndTime(t *testing.T) {
	if s := marshal.Text(pgtype.Text{Status: pgtype.Null}); s != "" {
		t.Errorf("NULL is %q", s)
	}
	if s := marshal.Text(pgtype.Text{String: "abc", Status: pgtype.Present}); s != "abc" {
		t.Errorf("unexpected: %q", s)
	}

	if tm := marshal.Time(pgtype.Timestamptz{Status: pgtype.Null}); !tm.IsZero() {
		t.Errorf("NULL is %s", tm)
	}
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	if tm := marshal.Time(pgtype.Timestamptz{Time: now, Status: pgtype.Present}); !tm.Equal(now) {
		t.Errorf("unexpected: %s", tm)
	}
}

func TestList(t *testing.T) {
	for name, testcase := range map[string]struct {
		when pgtype.Text
		then []string
	}{
		"NULL":               {when: pgtype.Text{Status: pgtype.Null}, then: []string{}},
		"empty":              {when: marshal.NullableText(""), then: []string{}},
		"single":             {when: marshal.NullableText("chapter"), then: []string{"chapter"}},
		"trimmed and sparse": {when: marshal.NullableText(" chapter, ,section ,"), then: []string{"chapter", "section"}},
	} {
		t.Run(name, func(t *testing.T) {
			actual := marshal.List(testcase.when)
			if !cmp.SliceEq(actual, testcase.then) {
				t.Errorf("unmatch: (actual, expected) = (%v, %v)", actual, testcase.then)
			}
		})
	}

	t.Run("JoinList is inverse of List", func(t *testing.T) {
		items := []string{"chapter", "section", "paragraph"}
		if actual := marshal.List(marshal.JoinList(items)); !cmp.SliceEq(actual, items) {
			t.Errorf("unmatch: %v", actual)
		}
		if v := marshal.JoinList([]string{" ", ""}); v.Status != pgtype.Null {
			t.Errorf("empty list is not NULL: %+v", v)
		}
	})
}

func TestNullableInt(t *testing.T) {
	if v := marshal.NullableInt(nil); v.Status != pgtype.Null {
		t.Errorf("nil is not NULL: %+v", v)
	}
	three := 3
	v := marshal.NullableInt(&three)
	if v.Status != pgtype.Present || v.Int != 3 {
		t.Errorf("unexpected: %+v", v)
	}
	if p := marshal.Int(v); p == nil || *p != 3 {
		t.Errorf("round trip: %v", p)
	}
	if p := marshal.Int(pgtype.Int4{Status: pgtype.Null}); p != nil {
		t.Errorf("NULL is %d", *p)
	}
}
