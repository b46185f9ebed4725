package report_test

import (
	"testing"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReport(t *testing.T, result kernel.FinalResult) *report.Report {
	t.Helper()

	code, err := kernel.NewReportCode("INF-2025-0042")
	require.NoError(t, err)
	orderID, err := kernel.NewID(10)
	require.NoError(t, err)

	r, err := report.NewReport(code, orderID, result)
	require.NoError(t, err)
	return r
}

func TestNewReport(t *testing.T) {
	t.Run("should create empty skeleton", func(t *testing.T) {
		r := newReport(t, kernel.Conforme)

		require.NoError(t, r.Validate())
		assert.True(t, r.ID().IsZero())
		assert.Equal(t, kernel.Conforme, r.FinalResult())
		assert.False(t, r.IsResultValid())
		assert.Zero(t, r.Completeness())
		assert.False(t, r.IsComplete())
	})

	t.Run("should reject unknown final result", func(t *testing.T) {
		code, err := kernel.NewReportCode("INF-2025-0042")
		require.NoError(t, err)
		orderID, err := kernel.NewID(10)
		require.NoError(t, err)

		_, err = report.NewReport(code, orderID, kernel.FinalResultUnknown)

		require.Error(t, err)
	})
}

func TestReport_Completeness(t *testing.T) {
	fillers := []func(t *testing.T, r *report.Report){
		func(t *testing.T, r *report.Report) {
			r.SetDwelling(report.Dwelling{DwellingType: "CASA", Material: "LADRILLO", Floors: 2})
		},
		func(t *testing.T, r *report.Report) {
			r.SetZone(report.Zone{ZoneType: "URBANA", RiskLevel: "BAJO"})
		},
		func(t *testing.T, r *report.Report) {
			r.SetLocation(report.GeoLocation{Latitude: -12.089, Longitude: -77.047})
		},
		func(t *testing.T, r *report.Report) {
			r.SetResidence(report.Residence{Ownership: "ALQUILADA", YearsOfResidence: 3})
		},
		func(t *testing.T, r *report.Report) {
			require.NoError(t, r.AddContactReference(
				report.ContactReference{Name: "Juana Rios", Relationship: "VECINA"}))
		},
		func(t *testing.T, r *report.Report) {
			require.NoError(t, r.AddAttachment("https://storage.example.com/fachada.jpg"))
		},
		func(t *testing.T, r *report.Report) {
			require.NoError(t, r.UpdateResult(
				kernel.Observado, false, "resumen", []string{"fachada distinta"}))
		},
	}

	t.Run("grows monotonically as sections are filled", func(t *testing.T) {
		r := newReport(t, kernel.Conforme)
		previous := r.Completeness()

		for _, fill := range fillers {
			fill(t, r)
			current := r.Completeness()
			assert.GreaterOrEqual(t, current, previous)
			previous = current
		}

		assert.Equal(t, 100, r.Completeness())
		assert.True(t, r.IsComplete())
	})

	t.Run("rounds to nearest integer percent", func(t *testing.T) {
		r := newReport(t, kernel.Conforme)

		r.SetDwelling(report.Dwelling{DwellingType: "CASA"})
		assert.Equal(t, 14, r.Completeness())

		r.SetZone(report.Zone{ZoneType: "URBANA"})
		assert.Equal(t, 29, r.Completeness())

		r.SetLocation(report.GeoLocation{Latitude: -12.089, Longitude: -77.047})
		assert.Equal(t, 43, r.Completeness())

		r.SetResidence(report.Residence{Ownership: "PROPIA"})
		assert.Equal(t, 57, r.Completeness())
	})

	t.Run("garage and glossary do not factor in", func(t *testing.T) {
		r := newReport(t, kernel.Conforme)

		r.SetGarage(report.Garage{Present: true, Capacity: 1})
		r.SetGlossary([]string{"PTP: permiso temporal de permanencia"})
		r.SetCasuistics([]string{"caso de mudanza reciente"})

		assert.Zero(t, r.Completeness())
	})

	t.Run("result fields do not factor in", func(t *testing.T) {
		r := newReport(t, kernel.Conforme)

		require.NoError(t, r.UpdateResult(kernel.Conforme, true, "todo conforme", nil))

		assert.Zero(t, r.Completeness())
	})
}

func TestReport_CanExport(t *testing.T) {
	t.Run("missing landlord interview blocks export", func(t *testing.T) {
		r := newReport(t, kernel.EntrevistaFaltante)

		assert.False(t, r.CanExport())
	})

	t.Run("every other result is exportable", func(t *testing.T) {
		for _, result := range []kernel.FinalResult{
			kernel.Conforme, kernel.Observado, kernel.Rechazado,
		} {
			r := newReport(t, kernel.Conforme)
			observations := []string{"defecto registrado en la visita"}
			if result == kernel.Conforme {
				observations = nil
			}

			require.NoError(t, r.UpdateResult(result, true, "resumen", observations))
			assert.True(t, r.CanExport(), "result %s must be exportable", result)
		}
	})
}

func TestReport_UpdateResult(t *testing.T) {
	t.Run("observado requires observations", func(t *testing.T) {
		r := newReport(t, kernel.Conforme)

		err := r.UpdateResult(kernel.Observado, false, "resumen", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, report.ErrObservationsAreRequired)
	})

	t.Run("rechazado requires observations", func(t *testing.T) {
		r := newReport(t, kernel.Conforme)

		err := r.UpdateResult(kernel.Rechazado, false, "resumen", nil)

		require.Error(t, err)
	})

	t.Run("stores verdict and sign off", func(t *testing.T) {
		r := newReport(t, kernel.EntrevistaFaltante)

		err := r.UpdateResult(kernel.Conforme, true, "  todo conforme  ", nil)

		require.NoError(t, err)
		assert.Equal(t, kernel.Conforme, r.FinalResult())
		assert.True(t, r.IsResultValid())
		assert.Equal(t, "todo conforme", r.Summary())
	})
}

func TestReport_SetLandlordInterview(t *testing.T) {
	t.Run("stores interview without touching the result", func(t *testing.T) {
		r := newReport(t, kernel.EntrevistaFaltante)

		err := r.SetLandlordInterview(report.LandlordInterview{
			LandlordName:    "Rosa Mendoza",
			LandlordPhone:   "912345678",
			Interviewed:     true,
			ConfirmsTenancy: true,
		})

		require.NoError(t, err)
		require.NotNil(t, r.Interview())
		assert.Equal(t, kernel.EntrevistaFaltante, r.FinalResult())
		assert.False(t, r.CanExport())
	})

	t.Run("requires landlord name", func(t *testing.T) {
		r := newReport(t, kernel.EntrevistaFaltante)

		err := r.SetLandlordInterview(report.LandlordInterview{Interviewed: true})

		require.Error(t, err)
	})
}

func TestRestoreReport(t *testing.T) {
	t.Run("should restore filled report", func(t *testing.T) {
		id, err := kernel.NewID(31)
		require.NoError(t, err)
		code, err := kernel.NewReportCode("INF-2025-0042")
		require.NoError(t, err)
		orderID, err := kernel.NewID(10)
		require.NoError(t, err)

		r, err := report.RestoreReport(
			id, code, orderID, kernel.Observado, true, "resumen",
			&report.Dwelling{DwellingType: "CASA"},
			&report.Zone{ZoneType: "URBANA"},
			&report.GeoLocation{Latitude: -12.089, Longitude: -77.047},
			&report.Residence{Ownership: "PROPIA"},
			nil,
			[]report.ContactReference{{Name: "Juana Rios"}},
			nil,
			[]string{"fachada distinta"},
			nil, nil,
			[]string{"https://storage.example.com/fachada.jpg"})

		require.NoError(t, err)
		assert.Equal(t, int64(31), r.ID().Value())
		assert.True(t, r.IsComplete())
		assert.True(t, r.CanExport())
	})
}

func TestReport_Validate(t *testing.T) {
	t.Run("zero value fails", func(t *testing.T) {
		r := &report.Report{}

		err := r.Validate()

		require.Error(t, err)
		assert.Equal(t, report.ErrReportIsNotConstructed, err)
	})
}
