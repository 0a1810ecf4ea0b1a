package uuidx

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	id := New()
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.NotEqual(t, uuid.Nil, id)
	assert.NotEqual(t, id, New(), "successive IDs differ")
}

func TestNewString(t *testing.T) {
	s := NewString()
	parsed, err := uuid.Parse(s)
	assert.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
