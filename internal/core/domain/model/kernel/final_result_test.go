package kernel_test

import (
	"testing"

	"verification/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalResult(t *testing.T) {
	t.Run("conforme can export", func(t *testing.T) {
		assert.True(t, kernel.Conforme.CanExportReport())
		assert.True(t, kernel.Conforme.IsConforme())
		assert.False(t, kernel.Conforme.RequiresObservations())
	})

	t.Run("entrevista faltante blocks export", func(t *testing.T) {
		assert.False(t, kernel.EntrevistaFaltante.CanExportReport())
		assert.True(t, kernel.EntrevistaFaltante.RequiresLandlordInterview())
	})

	t.Run("observado and rechazado require observations", func(t *testing.T) {
		assert.True(t, kernel.Observado.RequiresObservations())
		assert.True(t, kernel.Rechazado.RequiresObservations())
		assert.True(t, kernel.Observado.CanExportReport())
		assert.True(t, kernel.Rechazado.CanExportReport())
	})

	t.Run("string round trip", func(t *testing.T) {
		for _, r := range []kernel.FinalResult{
			kernel.Conforme, kernel.Observado, kernel.Rechazado, kernel.EntrevistaFaltante,
		} {
			parsed, err := kernel.FinalResultFromString(r.String())

			require.NoError(t, err)
			assert.Equal(t, r, parsed)
		}
	})

	t.Run("unknown value fails validation", func(t *testing.T) {
		require.Error(t, kernel.FinalResultUnknown.Validate())
		require.Error(t, kernel.FinalResult(99).Validate())
		assert.Equal(t, "UNKNOWN", kernel.FinalResult(99).String())
	})

	t.Run("unknown name fails parsing", func(t *testing.T) {
		_, err := kernel.FinalResultFromString("APROBADO")

		require.Error(t, err)
	})
}
