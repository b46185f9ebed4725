package commands_test

import (
	"testing"
	"time"

	"verification/internal/core/application/usecases/commands"
	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/observation"
	"verification/internal/pkg/apperr"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testObservation(t *testing.T, id, orderID int64) *observation.Observation {
	t.Helper()

	observationID, err := kernel.NewID(id)
	require.NoError(t, err)
	ownerID, err := kernel.NewID(orderID)
	require.NoError(t, err)

	obs, err := observation.RestoreObservation(
		observationID, ownerID, observation.FachadaNoCoincide,
		"la fachada registrada no coincide con la del sitio",
		observation.Pendiente, time.Now().Add(-time.Hour), nil)
	require.NoError(t, err)
	return obs
}

func TestUpdateObservationStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateObservationStatusCommand(10, 3, "SUBSANADA")
	require.NoError(t, err)

	obs := testObservation(t, 3, 10)

	observationRepo := new(MockObservationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ObservationRepository").Return(observationRepo).Once(),
		observationRepo.On("Get", ctx, cmd.ObservationID()).Return(obs, nil).Once(),
		uow.On("ObservationRepository").Return(observationRepo).Once(),
		observationRepo.On("Update", ctx, mock.AnythingOfType("*observation.Observation")).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockObservationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateObservationStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, obs.IsResolved())
	require.NotNil(t, obs.ResolvedAt())
}

func TestUpdateObservationStatusCommandHandler_Handle_WrongOrder(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateObservationStatusCommand(10, 3, "SUBSANADA")
	require.NoError(t, err)

	obs := testObservation(t, 3, 99) // belongs to another order

	observationRepo := new(MockObservationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ObservationRepository").Return(observationRepo).Once(),
		observationRepo.On("Get", ctx, cmd.ObservationID()).Return(obs, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockObservationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateObservationStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, apperr.ErrObservationNotFound)
	require.True(t, obs.IsPending())
	observationRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestNewUpdateObservationStatusCommand(t *testing.T) {
	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := commands.NewUpdateObservationStatusCommand(10, 3, "ARCHIVADA")

		require.Error(t, err)
	})

	t.Run("should accept legacy resuelta", func(t *testing.T) {
		cmd, err := commands.NewUpdateObservationStatusCommand(10, 3, "RESUELTA")

		require.NoError(t, err)
		require.Equal(t, observation.Resuelta, cmd.NewStatus())
	})
}
