package sqlxrepos

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/Ocheing/TRINITY-DRIVING-COLLEGE/core"
)

type fakeResult int64

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return int64(r), nil }

func TestOrderBy(t *testing.T) {
	tests := []struct {
		ordering []core.DBOrdering
		want     string
	}{
		{nil, ""},
		{[]core.DBOrdering{{Field: "created_at"}}, " ORDER BY created_at DESC"},
		{[]core.DBOrdering{{Field: "price", Ascending: true}, {Field: "created_at"}}, " ORDER BY price ASC, created_at DESC"},
	}
	for _, tt := range tests {
		if got := orderBy(tt.ordering); got != tt.want {
			t.Errorf("orderBy(%v) = %q; want %q", tt.ordering, got, tt.want)
		}
	}
}

func TestIsUUID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"d2b5b8f4-5d3c-4e0a-9d6a-8d1c34f0e111", true},
		{"", false},
		{"42", false},
		{"d2b5b8f4-5d3c-4e0a-9d6a", false},
	}
	for _, tt := range tests {
		if got := isUUID(tt.id); got != tt.want {
			t.Errorf("isUUID(%q) = %v; want %v", tt.id, got, tt.want)
		}
	}
}

func TestTrapNoRowsErr(t *testing.T) {
	notFound := core.NotFoundError("course not found")
	if err := trapNoRowsErr(sql.ErrNoRows, notFound, "getting course"); err != notFound {
		t.Errorf("trapNoRowsErr(ErrNoRows) = %v; want %v", err, notFound)
	}
	cause := errors.New("connection reset")
	if err := trapNoRowsErr(cause, notFound, "getting course"); err == nil || err.Error() != "getting course: connection reset" {
		t.Errorf("trapNoRowsErr(cause) = %v", err)
	}
}

func TestCheckAffected(t *testing.T) {
	notFound := core.NotFoundError("course not found")
	if err := checkAffected(fakeResult(0), notFound, "deleting course"); err != notFound {
		t.Errorf("checkAffected(0) = %v; want %v", err, notFound)
	}
	if err := checkAffected(fakeResult(1), notFound, "deleting course"); err != nil {
		t.Errorf("checkAffected(1) = %v; want nil", err)
	}
}
