package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	openapitypes "github.com/oapi-codegen/runtime/types"
)

// CustomValidator adapts go-playground/validator to echo's Validator
// interface. Struct tags gate obviously malformed payloads before the
// command constructors apply the domain rules.
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator creates the request payload validator.
func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// ClientRequest carries the client block of an order intake payload.
type ClientRequest struct {
	Name           string `json:"name" validate:"required"`
	DocumentType   string `json:"document_type" validate:"required"`
	DocumentNumber string `json:"document_number" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Street         string `json:"street" validate:"required"`
	District       string `json:"district" validate:"required"`
	Province       string `json:"province" validate:"required"`
	Department     string `json:"department" validate:"required"`
	Reference      string `json:"reference"`
	IsTenant       bool   `json:"is_tenant"`
	LandlordName   string `json:"landlord_name"`
	LandlordPhone  string `json:"landlord_phone"`
}

// CompanyRequest carries the requesting company block of an order intake
// payload.
type CompanyRequest struct {
	LegalName   string `json:"legal_name" validate:"required"`
	Ruc         string `json:"ruc" validate:"required,len=11"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
}

// CreateOrderRequest is the payload for registering a verification order.
type CreateOrderRequest struct {
	OrderCode string         `json:"order_code" validate:"required"`
	Client    ClientRequest  `json:"client" validate:"required"`
	Company   CompanyRequest `json:"company" validate:"required"`
}

// AssignVerifierRequest is the payload for assigning a verifier and visit
// slot to an order.
type AssignVerifierRequest struct {
	VerifierID int64             `json:"verifier_id" validate:"required,gt=0"`
	VisitDate  openapitypes.Date `json:"visit_date" validate:"required"`
	VisitTime  string            `json:"visit_time" validate:"required"`
}

// CompleteOrderRequest is the payload for completing a visit. The report
// code names the verification report opened for the order.
type CompleteOrderRequest struct {
	ReportCode string `json:"report_code" validate:"required"`
}

// UpdateOrderStatusRequest is the payload for an explicit status change.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateObservationRequest is the payload for recording a field defect
// against an order.
type CreateObservationRequest struct {
	Type        string `json:"type" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// UpdateObservationStatusRequest is the payload for moving an observation
// through its sub-lifecycle.
type UpdateObservationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateReportRequest is the payload for recording the report verdict.
type UpdateReportRequest struct {
	FinalResult   string   `json:"final_result" validate:"required"`
	IsResultValid bool     `json:"is_result_valid"`
	Summary       string   `json:"summary"`
	Observations  []string `json:"observations"`
}

// UpdateLandlordInterviewRequest is the payload for supplying the landlord
// interview of a tenant client's report.
type UpdateLandlordInterviewRequest struct {
	LandlordName    string `json:"landlord_name" validate:"required"`
	LandlordPhone   string `json:"landlord_phone"`
	Interviewed     bool   `json:"interviewed"`
	ConfirmsTenancy bool   `json:"confirms_tenancy"`
	Notes           string `json:"notes"`
}

// CreateVerifierRequest is the payload for registering a field agent.
type CreateVerifierRequest struct {
	Name           string `json:"name" validate:"required"`
	DocumentType   string `json:"document_type" validate:"required"`
	DocumentNumber string `json:"document_number" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Schedule       string `json:"schedule" validate:"required"`
}
