//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"plateshare-server/internal/infra"

	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cause := errors.New("connection reset")

	t.Run("defaults to db failure", func(t *testing.T) {
		err := infra.WrapRepoErr("failed to insert listing", cause)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "DB_FAILURE: failed to insert listing")
	})

	t.Run("explicit kind", func(t *testing.T) {
		err := infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.False(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Equal(t, "NOT_FOUND: listing not found", err.Error())
	})

	t.Run("plain errors have no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(cause, infra.KindNotFound))
	})
}
