package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	e := New(ErrNav, "not a directory")
	assert.Equal(t, "NAV: not a directory", e.Error())

	wrapped := Wrap(fmt.Errorf("permission denied"), ErrFS, "list /root")
	assert.Equal(t, "FS: list /root: permission denied", wrapped.Error())
	assert.EqualError(t, wrapped.Unwrap(), "permission denied")
}

func TestIsCode(t *testing.T) {
	e := New(ErrNav, "at filesystem root")
	assert.True(t, IsCode(e, ErrNav))
	assert.False(t, IsCode(e, ErrFS))
	assert.False(t, IsCode(nil, ErrNav))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrNav))

	// Wrapped structured errors still match through errors.As.
	outer := fmt.Errorf("outer: %w", New(ErrPoll, "sample failed"))
	assert.True(t, IsCode(outer, ErrPoll))
}

func TestNewf(t *testing.T) {
	e := Newf(ErrNav, "entry %d out of range", 7)
	assert.Equal(t, "NAV: entry 7 out of range", e.Error())
}
