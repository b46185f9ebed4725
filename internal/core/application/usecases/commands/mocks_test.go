package commands_test

import (
	"context"
	"testing"
	"time"

	"verification/internal/core/application/usecases/commands"
	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/observation"
	"verification/internal/core/domain/model/order"
	"verification/internal/core/domain/model/report"
	"verification/internal/core/domain/model/verifier"
	"verification/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetFirstInPendingStatus(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllRequiringAttention(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockObservationRepository struct{ mock.Mock }

func (m *MockObservationRepository) Add(ctx context.Context, obs *observation.Observation) error {
	args := m.Called(ctx, obs)
	return args.Error(0)
}

func (m *MockObservationRepository) Update(ctx context.Context, obs *observation.Observation) error {
	args := m.Called(ctx, obs)
	return args.Error(0)
}

func (m *MockObservationRepository) Get(ctx context.Context, id kernel.ID) (*observation.Observation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*observation.Observation), args.Error(1)
}

func (m *MockObservationRepository) GetAllByOrder(ctx context.Context, orderID kernel.ID) ([]*observation.Observation, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*observation.Observation), args.Error(1)
}

func (m *MockObservationRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReportRepository struct{ mock.Mock }

func (m *MockReportRepository) Add(ctx context.Context, r *report.Report) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReportRepository) Update(ctx context.Context, r *report.Report) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReportRepository) Get(ctx context.Context, id kernel.ID) (*report.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Report), args.Error(1)
}

func (m *MockReportRepository) GetByOrder(ctx context.Context, orderID kernel.ID) (*report.Report, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Report), args.Error(1)
}

type MockVerifierRepository struct{ mock.Mock }

func (m *MockVerifierRepository) Add(ctx context.Context, v *verifier.Verifier) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVerifierRepository) Update(ctx context.Context, v *verifier.Verifier) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVerifierRepository) Get(ctx context.Context, id kernel.ID) (*verifier.Verifier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*verifier.Verifier), args.Error(1)
}

func (m *MockVerifierRepository) GetAllActive(ctx context.Context) ([]*verifier.Verifier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*verifier.Verifier), args.Error(1)
}

func (m *MockVerifierRepository) CountActiveOrders(ctx context.Context, verifierID kernel.ID) (int, error) {
	args := m.Called(ctx, verifierID)
	return args.Int(0), args.Error(1)
}

// MockUoW implements every unit of work facet used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ObservationRepository() ports.ObservationRepository {
	args := m.Called()
	return args.Get(0).(ports.ObservationRepository)
}

func (m *MockUoW) ReportRepository() ports.ReportRepository {
	args := m.Called()
	return args.Get(0).(ports.ReportRepository)
}

func (m *MockUoW) VerifierRepository() ports.VerifierRepository {
	args := m.Called()
	return args.Get(0).(ports.VerifierRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockObservationUoWFactory struct{ mock.Mock }

func (m *MockObservationUoWFactory) Create() commands.ObservationUoW {
	args := m.Called()
	return args.Get(0).(commands.ObservationUoW)
}

type MockReportUoWFactory struct{ mock.Mock }

func (m *MockReportUoWFactory) Create() commands.ReportUoW {
	args := m.Called()
	return args.Get(0).(commands.ReportUoW)
}

type MockOrderReportUoWFactory struct{ mock.Mock }

func (m *MockOrderReportUoWFactory) Create() commands.OrderReportUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderReportUoW)
}

type MockVerifierUoWFactory struct{ mock.Mock }

func (m *MockVerifierUoWFactory) Create() commands.VerifierUoW {
	args := m.Called()
	return args.Get(0).(commands.VerifierUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// Shared fixtures.

func testOrder(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()

	orderID, err := kernel.NewID(id)
	require.NoError(t, err)
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

	var verifierID *kernel.ID
	var visitDate *kernel.VisitDate
	var visitTime *kernel.VisitTime
	if status != order.Pendiente {
		assignee, idErr := kernel.NewID(5)
		require.NoError(t, idErr)
		date, dateErr := kernel.NewVisitDate(time.Now().AddDate(0, 0, 2))
		require.NoError(t, dateErr)
		slot, timeErr := kernel.NewVisitTime("10:00")
		require.NoError(t, timeErr)
		verifierID, visitDate, visitTime = &assignee, &date, &slot
	}

	aggregate, err := order.RestoreOrder(
		orderID, 1, code, client, company, status,
		verifierID, visitDate, visitTime, nil, nil, nil)
	require.NoError(t, err)
	return aggregate
}

func testTenantOrder(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()

	orderID, err := kernel.NewID(id)
	require.NoError(t, err)
	code, err := kernel.NewOrderCode("VRF-2025-0043")
	require.NoError(t, err)
	document, err := kernel.NewDocumentNumber(kernel.DNI, "45871236")
	require.NoError(t, err)
	phone, err := kernel.NewPhoneNumber("987654321")
	require.NoError(t, err)
	address, err := kernel.NewAddress("Av. Arequipa 1234", "Lince", "Lima", "Lima", "")
	require.NoError(t, err)
	client, err := order.NewClient(
		"Jorge Quispe", document, phone, nil, address, true, "Rosa Mendoza", "912345678")
	require.NoError(t, err)
	ruc, err := kernel.NewRuc("20512345678")
	require.NoError(t, err)
	company, err := order.NewCompany("Inmobiliaria Surco SAC", ruc, "", phone, nil)
	require.NoError(t, err)

	assignee, err := kernel.NewID(5)
	require.NoError(t, err)
	date, err := kernel.NewVisitDate(time.Now().AddDate(0, 0, 2))
	require.NoError(t, err)
	slot, err := kernel.NewVisitTime("10:00")
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(
		orderID, 1, code, client, company, status,
		&assignee, &date, &slot, nil, nil, nil)
	require.NoError(t, err)
	return aggregate
}

func testVerifier(t *testing.T, id int64, schedule string) *verifier.Verifier {
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
