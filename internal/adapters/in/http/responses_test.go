package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"verification/internal/core/domain/model/kernel"
	"verification/internal/core/domain/model/order"
	"verification/internal/pkg/apperr"
	"verification/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRespondError(t *testing.T, err error) (int, Envelope) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	require.NoError(t, respondError(ctx, err))

	var envelope Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec.Code, envelope
}

func buildOrder(t *testing.T) *order.Order {
	t.Helper()

	documentType, err := kernel.DocumentTypeFromString("DNI")
	require.NoError(t, err)
	document, err := kernel.NewDocumentNumber(documentType, "45871236")
	require.NoError(t, err)
	phone, err := kernel.NewPhoneNumber("987654321")
	require.NoError(t, err)
	address, err := kernel.NewAddress("Av. Arequipa 1234", "Lince", "Lima", "Lima", "")
	require.NoError(t, err)
	client, err := order.NewClient("Maria Torres", document, phone, nil, address, false, "", "")
	require.NoError(t, err)

	ruc, err := kernel.NewRuc("20512345678")
	require.NoError(t, err)
	companyPhone, err := kernel.NewPhoneNumber("987654322")
	require.NoError(t, err)
	company, err := order.NewCompany("Creditos Andinos SAC", ruc, "Carla Paredes", companyPhone, nil)
	require.NoError(t, err)

	orderCode, err := kernel.NewOrderCode("VRF-2025-0001")
	require.NoError(t, err)
	testOrder, err := order.NewOrder(orderCode, client, company)
	require.NoError(t, err)
	return testOrder
}

func TestRespondError(t *testing.T) {
	t.Run("should map rejected status move to business rule violation", func(t *testing.T) {
		testOrder := buildOrder(t)
		require.NoError(t, testOrder.Cancel())

		verifierID, err := kernel.NewID(7)
		require.NoError(t, err)
		visitDate, err := kernel.NewVisitDate(time.Now().AddDate(0, 0, 2))
		require.NoError(t, err)
		visitTime, err := kernel.NewVisitTime("10:00")
		require.NoError(t, err)

		assignErr := testOrder.Assign(verifierID, visitDate, visitTime)
		require.Error(t, assignErr)

		code, envelope := executeRespondError(t, assignErr)

		assert.Equal(t, http.StatusUnprocessableEntity, code)
		assert.False(t, envelope.Success)
		assert.Equal(t, "BUSINESS_RULE_VIOLATION", envelope.Code)
		assert.Contains(t, envelope.Message, "CANCELADA -> ASIGNADO")
	})

	t.Run("should keep the coded error's own status and code", func(t *testing.T) {
		wrapped := apperr.ErrStaleOrderVersion.WrapMessage("order 5 changed since it was loaded")

		code, envelope := executeRespondError(t, wrapped)

		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, "CONFLICT", envelope.Code)
	})

	t.Run("should map missing objects to not found", func(t *testing.T) {
		code, envelope := executeRespondError(t, errs.NewObjectNotFoundError("order", 42))

		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "NOT_FOUND", envelope.Code)
	})

	t.Run("should map malformed values to validation error", func(t *testing.T) {
		code, envelope := executeRespondError(t, errs.NewValueIsRequiredError("order code"))

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "VALIDATION_ERROR", envelope.Code)
	})
}
