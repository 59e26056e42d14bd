//go:build unit

package patch_test

import (
	"testing"

	"hotel-block-service/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	n := 4
	assert.Equal(t, 4, patch.Coalesce(&n, 2))
	assert.Equal(t, 2, patch.Coalesce[int](nil, 2))
}

func TestNullable(t *testing.T) {
	current := uuid.New()
	next := uuid.New()
	zero := uuid.Nil

	assert.Equal(t, &current, patch.Nullable(nil, &current))
	assert.Nil(t, patch.Nullable(&zero, &current))

	got := patch.Nullable(&next, &current)
	if assert.NotNil(t, got) {
		assert.Equal(t, next, *got)
		assert.NotSame(t, &next, got)
	}
}
