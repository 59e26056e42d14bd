//go:build unit || e2e

package testutil

import (
	"testing"

	"hotel-block-service/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

// AssertErrorIs matches marked errors too, which assert.ErrorIs cannot see.
func AssertErrorIs(t *testing.T, err, target error) bool {
	t.Helper()
	return assert.Truef(t, errs.Is(err, target), "expected %q in chain %q", target, err)
}
