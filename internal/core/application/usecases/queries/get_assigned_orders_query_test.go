package queries_test

import (
	"testing"

	"verification/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAssignedOrdersQuery(t *testing.T) {
	t.Run("should create query with valid verifier id", func(t *testing.T) {
		query, err := queries.NewGetAssignedOrdersQuery(7)

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Equal(t, int64(7), query.VerifierID().Value())
	})

	t.Run("should fail with non positive verifier id", func(t *testing.T) {
		_, err := queries.NewGetAssignedOrdersQuery(0)
		require.Error(t, err)

		_, err = queries.NewGetAssignedOrdersQuery(-3)
		require.Error(t, err)
	})

	t.Run("should reject zero value query", func(t *testing.T) {
		var query queries.GetAssignedOrdersQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrGetAssignedOrdersQueryIsNotConstructed)
	})
}
