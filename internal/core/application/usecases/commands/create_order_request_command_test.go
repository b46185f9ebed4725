package commands_test

import (
	"testing"

	"verification/internal/core/application/usecases/commands"
	"verification/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientParams() commands.ClientParams {
	return commands.ClientParams{
		Name:           "Maria Torres",
		DocumentType:   "DNI",
		DocumentNumber: "45871236",
		Phone:          "987654321",
		Street:         "Av. Arequipa 1234",
		District:       "Lince",
		Province:       "Lima",
		Department:     "Lima",
	}
}

func validCompanyParams() commands.CompanyParams {
	return commands.CompanyParams{
		LegalName: "Inmobiliaria Surco SAC",
		Ruc:       "20512345678",
		Phone:     "987654321",
	}
}

func TestNewCreateOrderRequestCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderRequestCommand(
			"VRF-2025-0042", validClientParams(), validCompanyParams())

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "VRF-2025-0042", cmd.OrderCode().Value())
		assert.Equal(t, "Maria Torres", cmd.Client().Name())
		assert.Equal(t, "Inmobiliaria Surco SAC", cmd.Company().LegalName())
	})

	t.Run("should accept tenant with landlord data", func(t *testing.T) {
		client := validClientParams()
		client.IsTenant = true
		client.LandlordName = "Rosa Mendoza"
		client.LandlordPhone = "912345678"

		cmd, err := commands.NewCreateOrderRequestCommand(
			"VRF-2025-0042", client, validCompanyParams())

		require.NoError(t, err)
		assert.True(t, cmd.Client().IsTenant())
	})

	t.Run("should reject tenant without landlord data", func(t *testing.T) {
		client := validClientParams()
		client.IsTenant = true

		_, err := commands.NewCreateOrderRequestCommand(
			"VRF-2025-0042", client, validCompanyParams())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrLandlordDataIsRequired)
	})

	t.Run("should reject malformed document", func(t *testing.T) {
		client := validClientParams()
		client.DocumentNumber = "123"

		_, err := commands.NewCreateOrderRequestCommand(
			"VRF-2025-0042", client, validCompanyParams())

		require.Error(t, err)
	})

	t.Run("should reject malformed ruc", func(t *testing.T) {
		company := validCompanyParams()
		company.Ruc = "30123456789"

		_, err := commands.NewCreateOrderRequestCommand(
			"VRF-2025-0042", validClientParams(), company)

		require.Error(t, err)
	})

	t.Run("should reject empty order code", func(t *testing.T) {
		_, err := commands.NewCreateOrderRequestCommand(
			"", validClientParams(), validCompanyParams())

		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		cmd := commands.CreateOrderRequestCommand{}

		require.ErrorIs(t, cmd.Validate(),
			commands.ErrCreateOrderRequestCommandIsNotConstructed)
	})
}
