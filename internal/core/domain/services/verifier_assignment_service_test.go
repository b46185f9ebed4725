package services_test

import (
	"testing"
	"time"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/order"
	"verification/internal/core/domain/model/verifier"
	"verification/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()

	code, err := kernel.NewOrderCode("VRF-2025-0042")
	require.NoError(t, err)
	document, err := kernel.NewDocumentNumber(kernel.DNI, "45871236")
	require.NoError(t, err)
	phone, err := kernel.NewPhoneNumber("987654321")
	require.NoError(t, err)
	address, err := kernel.NewAddress("Av. Arequipa 1234", "Lince", "Lima", "Lima", "")
	require.NoError(t, err)
	client, err := order.NewClient(
		"Maria Torres", document, phone, nil, address, false, "", "")
	require.NoError(t, err)
	ruc, err := kernel.NewRuc("20512345678")
	require.NoError(t, err)
	company, err := order.NewCompany("Inmobiliaria Surco SAC", ruc, "", phone, nil)
	require.NoError(t, err)

	o, err := order.NewOrder(code, client, company)
	require.NoError(t, err)
	return o
}

func namedVerifier(t *testing.T, id int64, schedule string) *verifier.Verifier {
	t.Helper()

	verifierID, err := kernel.NewID(id)
	require.NoError(t, err)
	document, err := kernel.NewDocumentNumber(kernel.DNI, "70123456")
	require.NoError(t, err)
	phone, err := kernel.NewPhoneNumber("998877665")
	require.NoError(t, err)
	workSchedule, err := kernel.NewWorkSchedule(schedule)
	require.NoError(t, err)

	v, err := verifier.RestoreVerifier(
		verifierID, "Pedro Salas", document, phone, nil, verifier.Activo, workSchedule)
	require.NoError(t, err)
	return v
}

// nextWeekday returns the next occurrence of the given weekday at least
// one day in the future, so the visit-date boundary always passes.
func nextWeekday(t *testing.T, day time.Weekday) kernel.VisitDate {
	t.Helper()

	candidate := time.Now().AddDate(0, 0, 1)
	for candidate.Weekday() != day {
		candidate = candidate.AddDate(0, 0, 1)
	}

	date, err := kernel.NewVisitDate(candidate)
	require.NoError(t, err)
	return date
}

func tenAM(t *testing.T) kernel.VisitTime {
	t.Helper()
	visitTime, err := kernel.NewVisitTime("10:00")
	require.NoError(t, err)
	return visitTime
}

func TestVerifierAssignmentService_Dispatch(t *testing.T) {
	service := services.NewVerifierAssignmentService()

	t.Run("should pick the least loaded verifier", func(t *testing.T) {
		o := pendingOrder(t)
		busy := namedVerifier(t, 1, "LUNES A VIERNES")
		idle := namedVerifier(t, 2, "LUNES A VIERNES")

		assigned, err := service.Dispatch(o, []services.VerifierLoad{
			{Verifier: busy, ActiveOrderCount: 4},
			{Verifier: idle, ActiveOrderCount: 1},
		}, nextWeekday(t, time.Tuesday), tenAM(t))

		require.NoError(t, err)
		assert.Equal(t, int64(2), assigned.ID().Value())
		assert.Equal(t, order.Asignado, o.Status())
		require.NotNil(t, o.Verifier())
		assert.Equal(t, int64(2), o.Verifier().Value())
	})

	t.Run("first candidate wins ties", func(t *testing.T) {
		o := pendingOrder(t)
		first := namedVerifier(t, 1, "LUNES A VIERNES")
		second := namedVerifier(t, 2, "LUNES A VIERNES")

		assigned, err := service.Dispatch(o, []services.VerifierLoad{
			{Verifier: first, ActiveOrderCount: 2},
			{Verifier: second, ActiveOrderCount: 2},
		}, nextWeekday(t, time.Tuesday), tenAM(t))

		require.NoError(t, err)
		assert.Equal(t, int64(1), assigned.ID().Value())
	})

	t.Run("should skip inactive verifiers", func(t *testing.T) {
		o := pendingOrder(t)
		inactive := namedVerifier(t, 1, "LUNES A VIERNES")
		inactive.Deactivate()
		active := namedVerifier(t, 2, "LUNES A VIERNES")

		assigned, err := service.Dispatch(o, []services.VerifierLoad{
			{Verifier: inactive, ActiveOrderCount: 0},
			{Verifier: active, ActiveOrderCount: 5},
		}, nextWeekday(t, time.Tuesday), tenAM(t))

		require.NoError(t, err)
		assert.Equal(t, int64(2), assigned.ID().Value())
	})

	t.Run("should skip verifiers not working the visit day", func(t *testing.T) {
		o := pendingOrder(t)
		weekdaysOnly := namedVerifier(t, 1, "LUNES A VIERNES")
		saturdays := namedVerifier(t, 2, "LUNES A SABADO")

		assigned, err := service.Dispatch(o, []services.VerifierLoad{
			{Verifier: weekdaysOnly, ActiveOrderCount: 0},
			{Verifier: saturdays, ActiveOrderCount: 5},
		}, nextWeekday(t, time.Saturday), tenAM(t))

		require.NoError(t, err)
		assert.Equal(t, int64(2), assigned.ID().Value())
	})

	t.Run("should return ErrVerifierNotFound without candidates", func(t *testing.T) {
		o := pendingOrder(t)

		_, err := service.Dispatch(o, nil, nextWeekday(t, time.Tuesday), tenAM(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrVerifierNotFound)
		assert.Equal(t, order.Pendiente, o.Status())
	})

	t.Run("should return ErrVerifierNotFound when none eligible", func(t *testing.T) {
		o := pendingOrder(t)
		inactive := namedVerifier(t, 1, "LUNES A VIERNES")
		inactive.Deactivate()

		_, err := service.Dispatch(o, []services.VerifierLoad{
			{Verifier: inactive, ActiveOrderCount: 0},
		}, nextWeekday(t, time.Tuesday), tenAM(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrVerifierNotFound)
	})

	t.Run("should not assign an already assigned order", func(t *testing.T) {
		o := pendingOrder(t)
		v := namedVerifier(t, 1, "LUNES A VIERNES")
		loads := []services.VerifierLoad{{Verifier: v, ActiveOrderCount: 0}}

		_, err := service.Dispatch(o, loads, nextWeekday(t, time.Tuesday), tenAM(t))
		require.NoError(t, err)

		_, err = service.Dispatch(o, loads, nextWeekday(t, time.Tuesday), tenAM(t))
		require.Error(t, err)
	})

	t.Run("should reject zero value candidate", func(t *testing.T) {
		o := pendingOrder(t)

		_, err := service.Dispatch(o, []services.VerifierLoad{
			{Verifier: &verifier.Verifier{}, ActiveOrderCount: 0},
		}, nextWeekday(t, time.Tuesday), tenAM(t))

		require.Error(t, err)
	})
}
