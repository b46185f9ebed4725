package order_test

import (
	"testing"
	"time"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/observation"
	"verification/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, v int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(v)
	require.NoError(t, err)
	return id
}

func validOrderCode(t *testing.T) kernel.OrderCode {
	t.Helper()
	code, err := kernel.NewOrderCode("VRF-2025-0042")
	require.NoError(t, err)
	return code
}

func validClient(t *testing.T) order.Client {
	t.Helper()
	client, err := order.NewClient(
		"Maria Torres", validDocument(t), validPhone(t), nil,
		validAddress(t), false, "", "")
	require.NoError(t, err)
	return client
}

func validCompany(t *testing.T) order.Company {
	t.Helper()
	company, err := order.NewCompany(
		"Inmobiliaria Surco SAC", validRuc(t), "Carlos Paredes", validPhone(t), nil)
	require.NoError(t, err)
	return company
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(validOrderCode(t), validClient(t), validCompany(t))
	require.NoError(t, err)
	return o
}

func visitSlot(t *testing.T) (kernel.VisitDate, kernel.VisitTime) {
	t.Helper()
	date, err := kernel.NewVisitDate(time.Now().Add(72 * time.Hour))
	require.NoError(t, err)
	visitTime, err := kernel.NewVisitTime("10:30")
	require.NoError(t, err)
	return date, visitTime
}

func assignedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newOrder(t)
	date, visitTime := visitSlot(t)
	require.NoError(t, o.Assign(mustID(t, 5), date, visitTime))
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pendiente, o.Status())
		assert.True(t, o.IsPending())
		assert.True(t, o.ID().IsZero())
		assert.Zero(t, o.Version())
		assert.False(t, o.HasVerifier())
		assert.False(t, o.HasReport())
		assert.Nil(t, o.VisitDate())
		assert.Nil(t, o.VisitTime())
		assert.Empty(t, o.Observations())
	})

	t.Run("should reject invalid parts", func(t *testing.T) {
		var client order.Client

		_, err := order.NewOrder(validOrderCode(t), client, validCompany(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrClientIsNotConstructed)
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("should assign verifier and schedule visit", func(t *testing.T) {
		o := newOrder(t)
		date, visitTime := visitSlot(t)

		err := o.Assign(mustID(t, 5), date, visitTime)

		require.NoError(t, err)
		assert.Equal(t, order.Asignado, o.Status())
		assert.True(t, o.IsAssigned())
		require.NotNil(t, o.Verifier())
		assert.Equal(t, int64(5), o.Verifier().Value())
		require.NotNil(t, o.VisitDate())
		require.NotNil(t, o.VisitTime())
	})

	t.Run("should reject assignment on assigned order", func(t *testing.T) {
		o := assignedOrder(t)
		date, visitTime := visitSlot(t)

		err := o.Assign(mustID(t, 6), date, visitTime)

		require.Error(t, err)
		assert.Equal(t, int64(5), o.Verifier().Value())
	})

	t.Run("should reject zero verifier id", func(t *testing.T) {
		o := newOrder(t)
		date, visitTime := visitSlot(t)
		var zeroID kernel.ID

		require.Error(t, o.Assign(zeroID, date, visitTime))
		assert.Equal(t, order.Pendiente, o.Status())
	})

	t.Run("should reject unscheduled visit slot", func(t *testing.T) {
		o := newOrder(t)
		var date kernel.VisitDate
		var visitTime kernel.VisitTime

		err := o.Assign(mustID(t, 5), date, visitTime)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrVisitNotScheduled)
	})

	t.Run("should allow reassignment after resolution", func(t *testing.T) {
		o := assignedOrder(t)
		require.NoError(t, o.MarkObserved())
		require.NoError(t, o.MarkResolved())
		date, visitTime := visitSlot(t)

		err := o.Assign(mustID(t, 9), date, visitTime)

		require.NoError(t, err)
		assert.Equal(t, order.Asignado, o.Status())
		assert.Equal(t, int64(9), o.Verifier().Value())
	})
}

func TestOrder_Workflow(t *testing.T) {
	t.Run("full happy path", func(t *testing.T) {
		o := assignedOrder(t)

		require.NoError(t, o.StartProcessing())
		assert.True(t, o.IsInProgress())

		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completada, o.Status())
		assert.True(t, o.IsTerminal())
	})

	t.Run("should not complete without visit in progress", func(t *testing.T) {
		o := assignedOrder(t)

		require.Error(t, o.Complete())
		assert.Equal(t, order.Asignado, o.Status())
	})

	t.Run("should cancel from any active status", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelada, o.Status())

		o = assignedOrder(t)
		require.NoError(t, o.Cancel())
		assert.True(t, o.IsTerminal())
	})

	t.Run("should not cancel a completed order", func(t *testing.T) {
		o := assignedOrder(t)
		require.NoError(t, o.StartProcessing())
		require.NoError(t, o.Complete())

		require.Error(t, o.Cancel())
	})

	t.Run("observed order resumes via subsanada", func(t *testing.T) {
		o := assignedOrder(t)
		require.NoError(t, o.StartProcessing())

		require.NoError(t, o.MarkObserved())
		assert.Equal(t, order.Observado, o.Status())

		require.NoError(t, o.MarkResolved())
		assert.Equal(t, order.Subsanada, o.Status())

		require.NoError(t, o.StartProcessing())
		assert.True(t, o.IsInProgress())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("performs guarded transition", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus(order.Observado))
		assert.Equal(t, order.Observado, o.Status())
	})

	t.Run("rejects asignado without verifier", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(order.Asignado)

		require.Error(t, err)
		assert.Equal(t, order.Pendiente, o.Status())
	})

	t.Run("accepts asignado when verifier already present", func(t *testing.T) {
		o := assignedOrder(t)
		require.NoError(t, o.MarkObserved())
		require.NoError(t, o.MarkResolved())

		require.NoError(t, o.ChangeStatus(order.Asignado))
		assert.Equal(t, order.Asignado, o.Status())
	})
}

func TestOrder_Observations(t *testing.T) {
	restoredOrder := func(t *testing.T) *order.Order {
		o, err := order.RestoreOrder(
			mustID(t, 10), 3, validOrderCode(t), validClient(t), validCompany(t),
			order.EnProceso, ptrID(t, 5), ptrDate(t), ptrTime(t),
			nil, nil, nil)
		require.NoError(t, err)
		return o
	}

	t.Run("should add observation and expose derived flags", func(t *testing.T) {
		o := restoredOrder(t)
		obs, err := observation.NewObservation(
			mustID(t, 10), observation.FachadaNoCoincide,
			"la fachada registrada no coincide con la del sitio")
		require.NoError(t, err)

		require.NoError(t, o.AddObservation(obs))

		assert.Equal(t, 1, o.PendingObservationCount())
		assert.True(t, o.HasPendingObservations())
		assert.True(t, o.RequiresAttention())
	})

	t.Run("should reject observation of another order", func(t *testing.T) {
		o := restoredOrder(t)
		obs, err := observation.NewObservation(
			mustID(t, 99), observation.Otro,
			"descripcion de un defecto cualquiera")
		require.NoError(t, err)

		require.Error(t, o.AddObservation(obs))
		assert.Empty(t, o.Observations())
	})

	t.Run("resolving observations does not move the order", func(t *testing.T) {
		o := restoredOrder(t)
		obs, err := observation.NewObservation(
			mustID(t, 10), observation.DocumentoInconsistente,
			"el documento presentado no coincide con el registro")
		require.NoError(t, err)
		require.NoError(t, o.AddObservation(obs))

		require.NoError(t, obs.UpdateStatus(observation.Subsanada))

		assert.Equal(t, order.EnProceso, o.Status())
		assert.Zero(t, o.PendingObservationCount())
		assert.False(t, o.RequiresAttention())
	})

	t.Run("terminal orders never require attention", func(t *testing.T) {
		o := restoredOrder(t)
		obs, err := observation.NewObservation(
			mustID(t, 10), observation.ZonaDeRiesgo,
			"zona restringida durante la visita programada")
		require.NoError(t, err)
		require.NoError(t, o.AddObservation(obs))

		require.NoError(t, o.Cancel())

		assert.True(t, o.HasPendingObservations())
		assert.False(t, o.RequiresAttention())
	})
}

func TestOrder_AttachReport(t *testing.T) {
	t.Run("should attach once", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.AttachReport(mustID(t, 31)))

		assert.True(t, o.HasReport())
		assert.Equal(t, int64(31), o.Report().Value())
	})

	t.Run("should reject second report", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AttachReport(mustID(t, 31)))

		err := o.AttachReport(mustID(t, 32))

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrReportAlreadyAttached)
	})
}

func TestOrder_AttachDocument(t *testing.T) {
	t.Run("should attach stored document", func(t *testing.T) {
		o := newOrder(t)
		doc, err := order.NewAttachedDocument(
			"contrato.pdf", "https://storage.example.com/contrato.pdf")
		require.NoError(t, err)

		require.NoError(t, o.AttachDocument(doc))

		require.Len(t, o.Documents(), 1)
		assert.NotEmpty(t, o.Documents()[0].StorageKey())
	})

	t.Run("should reject zero value document", func(t *testing.T) {
		o := newOrder(t)

		require.Error(t, o.AttachDocument(order.AttachedDocument{}))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore persisted order", func(t *testing.T) {
		o, err := order.RestoreOrder(
			mustID(t, 10), 7, validOrderCode(t), validClient(t), validCompany(t),
			order.Asignado, ptrID(t, 5), ptrDate(t), ptrTime(t),
			ptrID(t, 31), nil, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(7), o.Version())
		assert.Equal(t, order.Asignado, o.Status())
		assert.True(t, o.HasVerifier())
		assert.True(t, o.HasReport())
	})

	t.Run("should restore entrevista faltante status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			mustID(t, 10), 1, validOrderCode(t), validClient(t), validCompany(t),
			order.EntrevistaFaltante, ptrID(t, 5), ptrDate(t), ptrTime(t),
			nil, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, order.EntrevistaFaltante, o.Status())
	})

	t.Run("should reject visit slot without verifier", func(t *testing.T) {
		_, err := order.RestoreOrder(
			mustID(t, 10), 1, validOrderCode(t), validClient(t), validCompany(t),
			order.Pendiente, nil, ptrDate(t), ptrTime(t),
			nil, nil, nil)

		require.Error(t, err)
	})

	t.Run("should reject verifier without visit slot", func(t *testing.T) {
		_, err := order.RestoreOrder(
			mustID(t, 10), 1, validOrderCode(t), validClient(t), validCompany(t),
			order.Asignado, ptrID(t, 5), nil, nil,
			nil, nil, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrVisitNotScheduled)
	})

	t.Run("should restore past visit dates", func(t *testing.T) {
		date, err := kernel.RestoreVisitDate(time.Now().Add(-240 * time.Hour))
		require.NoError(t, err)
		visitTime := ptrTime(t)

		o, err := order.RestoreOrder(
			mustID(t, 10), 2, validOrderCode(t), validClient(t), validCompany(t),
			order.Completada, ptrID(t, 5), &date, visitTime,
			nil, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, order.Completada, o.Status())
	})
}

func TestOrder_SetID(t *testing.T) {
	t.Run("assigns once", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.SetID(mustID(t, 44)))
		assert.Equal(t, int64(44), o.ID().Value())

		require.Error(t, o.SetID(mustID(t, 45)))
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order fails", func(t *testing.T) {
		var o *order.Order

		require.Error(t, o.Validate())
	})

	t.Run("zero value fails", func(t *testing.T) {
		o := &order.Order{}

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func ptrID(t *testing.T, v int64) *kernel.ID {
	t.Helper()
	id := mustID(t, v)
	return &id
}

func ptrDate(t *testing.T) *kernel.VisitDate {
	t.Helper()
	date, err := kernel.NewVisitDate(time.Now().Add(72 * time.Hour))
	require.NoError(t, err)
	return &date
}

func ptrTime(t *testing.T) *kernel.VisitTime {
	t.Helper()
	visitTime, err := kernel.NewVisitTime("10:30")
	require.NoError(t, err)
	return &visitTime
}
