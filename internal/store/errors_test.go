package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewQueryError("count_keyboards", KindConnection, cause)

	assert.True(t, errors.Is(err, ErrDataAccess))
	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsDataAccessError(fmt.Errorf("search: %w", err)))
	assert.Equal(t,
		"data access failure: count_keyboards failed (connection): dial tcp: connection refused",
		err.Error())

	noCause := NewQueryError("ping", KindTimeout, nil)
	assert.Equal(t, "data access failure: ping failed (timeout)", noCause.Error())
}

func TestFailureKindOf(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewQueryError("random_keyboards", KindStatement, context.Canceled))
	assert.Equal(t, KindStatement, FailureKindOf(err))
	assert.Equal(t, KindUnknown, FailureKindOf(errors.New("plain")))
	assert.False(t, IsDataAccessError(errors.New("plain")))
}
