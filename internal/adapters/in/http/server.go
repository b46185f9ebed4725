// Package http exposes the verification workflow over a REST API built on
// echo. The server translates payloads into commands and queries, delegates
// to the application layer, and renders results in a uniform envelope.
package http

import (
	"net/http"
	"strconv"

	"verification/internal/core/application/usecases/commands"
	"verification/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler             commands.CreateOrderRequestCommandHandler
	assignVerifierHandler          commands.AssignVerifierCommandHandler
	startVisitHandler              commands.StartVisitCommandHandler
	completeOrderHandler           commands.CompleteOrderCommandHandler
	cancelOrderHandler             commands.CancelOrderCommandHandler
	updateOrderStatusHandler       commands.UpdateOrderStatusCommandHandler
	createObservationHandler       commands.CreateObservationCommandHandler
	updateObservationStatusHandler commands.UpdateObservationStatusCommandHandler
	updateReportHandler            commands.UpdateReportCommandHandler
	updateInterviewHandler         commands.UpdateLandlordInterviewCommandHandler
	createVerifierHandler          commands.CreateVerifierCommandHandler

	// Query handlers
	getOrderSummariesHandler  queries.GetOrderSummariesQueryHandler
	getReportSummariesHandler queries.GetReportSummariesQueryHandler
	getAssignedOrdersHandler  queries.GetAssignedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderRequestCommandHandler,
	assignVerifierHandler commands.AssignVerifierCommandHandler,
	startVisitHandler commands.StartVisitCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	createObservationHandler commands.CreateObservationCommandHandler,
	updateObservationStatusHandler commands.UpdateObservationStatusCommandHandler,
	updateReportHandler commands.UpdateReportCommandHandler,
	updateInterviewHandler commands.UpdateLandlordInterviewCommandHandler,
	createVerifierHandler commands.CreateVerifierCommandHandler,
	getOrderSummariesHandler queries.GetOrderSummariesQueryHandler,
	getReportSummariesHandler queries.GetReportSummariesQueryHandler,
	getAssignedOrdersHandler queries.GetAssignedOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:             createOrderHandler,
		assignVerifierHandler:          assignVerifierHandler,
		startVisitHandler:              startVisitHandler,
		completeOrderHandler:           completeOrderHandler,
		cancelOrderHandler:             cancelOrderHandler,
		updateOrderStatusHandler:       updateOrderStatusHandler,
		createObservationHandler:       createObservationHandler,
		updateObservationStatusHandler: updateObservationStatusHandler,
		updateReportHandler:            updateReportHandler,
		updateInterviewHandler:         updateInterviewHandler,
		createVerifierHandler:          createVerifierHandler,
		getOrderSummariesHandler:       getOrderSummariesHandler,
		getReportSummariesHandler:      getReportSummariesHandler,
		getAssignedOrdersHandler:       getAssignedOrdersHandler,
	}
}

// RegisterRoutes wires the API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrderSummaries)
	api.POST("/orders/:orderID/assign", s.AssignVerifier)
	api.POST("/orders/:orderID/start", s.StartVisit)
	api.POST("/orders/:orderID/complete", s.CompleteOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.PATCH("/orders/:orderID/status", s.UpdateOrderStatus)
	api.POST("/orders/:orderID/observations", s.CreateObservation)
	api.PATCH("/orders/:orderID/observations/:observationID/status", s.UpdateObservationStatus)
	api.PUT("/orders/:orderID/interview", s.UpdateLandlordInterview)

	api.GET("/reports", s.GetReportSummaries)
	api.PUT("/reports/:reportID", s.UpdateReport)

	api.POST("/verifiers", s.CreateVerifier)
	api.GET("/verifiers/:verifierID/agenda", s.GetAssignedOrders)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderRequestCommand(req.OrderCode,
		commands.ClientParams{
			Name:           req.Client.Name,
			DocumentType:   req.Client.DocumentType,
			DocumentNumber: req.Client.DocumentNumber,
			Phone:          req.Client.Phone,
			Email:          req.Client.Email,
			Street:         req.Client.Street,
			District:       req.Client.District,
			Province:       req.Client.Province,
			Department:     req.Client.Department,
			Reference:      req.Client.Reference,
			IsTenant:       req.Client.IsTenant,
			LandlordName:   req.Client.LandlordName,
			LandlordPhone:  req.Client.LandlordPhone,
		},
		commands.CompanyParams{
			LegalName:   req.Company.LegalName,
			Ruc:         req.Company.Ruc,
			ContactName: req.Company.ContactName,
			Phone:       req.Company.Phone,
			Email:       req.Company.Email,
		})
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, nil)
}

// AssignVerifier handles POST /api/v1/orders/:orderID/assign.
func (s *Server) AssignVerifier(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return err
	}

	var req AssignVerifierRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAssignVerifierCommand(orderID, req.VerifierID, req.VisitDate.Time, req.VisitTime)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignVerifierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, nil)
}

// StartVisit handles POST /api/v1/orders/:orderID/start.
func (s *Server) StartVisit(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return err
	}

	cmd, err := commands.NewStartVisitCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.startVisitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, nil)
}

// CompleteOrder handles POST /api/v1/orders/:orderID/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return err
	}

	var req CompleteOrderRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, req.ReportCode)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, nil)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, nil)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderID/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return err
	}

	var req UpdateOrderStatusRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, nil)
}

// CreateObservation handles POST /api/v1/orders/:orderID/observations.
func (s *Server) CreateObservation(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return err
	}

	var req CreateObservationRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateObservationCommand(orderID, req.Type, req.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createObservationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, nil)
}

// UpdateObservationStatus handles
// PATCH /api/v1/orders/:orderID/observations/:observationID/status.
func (s *Server) UpdateObservationStatus(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return err
	}
	observationID, err := pathID(ctx, "observationID")
	if err != nil {
		return err
	}

	var req UpdateObservationStatusRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateObservationStatusCommand(orderID, observationID, req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateObservationStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, nil)
}

// UpdateReport handles PUT /api/v1/reports/:reportID.
func (s *Server) UpdateReport(ctx echo.Context) error {
	reportID, err := pathID(ctx, "reportID")
	if err != nil {
		return err
	}

	var req UpdateReportRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateReportCommand(reportID, req.FinalResult,
		req.IsResultValid, req.Summary, req.Observations)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateReportHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, nil)
}

// UpdateLandlordInterview handles PUT /api/v1/orders/:orderID/interview.
func (s *Server) UpdateLandlordInterview(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return err
	}

	var req UpdateLandlordInterviewRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateLandlordInterviewCommand(orderID, commands.InterviewParams{
		LandlordName:    req.LandlordName,
		LandlordPhone:   req.LandlordPhone,
		Interviewed:     req.Interviewed,
		ConfirmsTenancy: req.ConfirmsTenancy,
		Notes:           req.Notes,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateInterviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, nil)
}

// CreateVerifier handles POST /api/v1/verifiers.
func (s *Server) CreateVerifier(ctx echo.Context) error {
	var req CreateVerifierRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateVerifierCommand(req.Name, req.DocumentType,
		req.DocumentNumber, req.Phone, req.Email, req.Schedule)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createVerifierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusCreated, nil)
}

// OrderSummaryResponse is one row of GET /api/v1/orders.
type OrderSummaryResponse struct {
	OrderID                 int64   `json:"order_id"`
	OrderCode               string  `json:"order_code"`
	ClientName              string  `json:"client_name"`
	Status                  string  `json:"status"`
	VerifierName            *string `json:"verifier_name,omitempty"`
	PendingObservationCount int     `json:"pending_observation_count"`
	RequiresAttention       bool    `json:"requires_attention"`
}

// GetOrderSummaries handles GET /api/v1/orders.
func (s *Server) GetOrderSummaries(ctx echo.Context) error {
	summaries, err := s.getOrderSummariesHandler.Handle(ctx.Request().Context(),
		queries.NewGetOrderSummariesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(summaries))
	for i, summary := range summaries {
		response[i] = OrderSummaryResponse{
			OrderID:                 summary.OrderID,
			OrderCode:               summary.OrderCode,
			ClientName:              summary.ClientName,
			Status:                  summary.Status,
			VerifierName:            summary.VerifierName,
			PendingObservationCount: summary.PendingObservationCount,
			RequiresAttention:       summary.RequiresAttention(),
		}
	}

	return respond(ctx, http.StatusOK, response)
}

// ReportSummaryResponse is one row of GET /api/v1/reports.
type ReportSummaryResponse struct {
	ReportID      int64  `json:"report_id"`
	ReportCode    string `json:"report_code"`
	OrderID       int64  `json:"order_id"`
	FinalResult   string `json:"final_result"`
	IsResultValid bool   `json:"is_result_valid"`
	Completeness  int    `json:"completeness"`
	IsComplete    bool   `json:"is_complete"`
	CanExport     bool   `json:"can_export"`
}

// GetReportSummaries handles GET /api/v1/reports.
func (s *Server) GetReportSummaries(ctx echo.Context) error {
	summaries, err := s.getReportSummariesHandler.Handle(ctx.Request().Context(),
		queries.NewGetReportSummariesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ReportSummaryResponse, len(summaries))
	for i, summary := range summaries {
		response[i] = ReportSummaryResponse{
			ReportID:      summary.ReportID,
			ReportCode:    summary.ReportCode,
			OrderID:       summary.OrderID,
			FinalResult:   summary.FinalResult,
			IsResultValid: summary.IsResultValid,
			Completeness:  summary.Completeness(),
			IsComplete:    summary.IsComplete(),
			CanExport:     summary.CanExport(),
		}
	}

	return respond(ctx, http.StatusOK, response)
}

// AgendaItemResponse is one row of GET /api/v1/verifiers/:verifierID/agenda.
type AgendaItemResponse struct {
	OrderID    int64  `json:"order_id"`
	OrderCode  string `json:"order_code"`
	ClientName string `json:"client_name"`
	Street     string `json:"street"`
	District   string `json:"district"`
	Status     string `json:"status"`
	VisitDate  string `json:"visit_date"`
	VisitTime  string `json:"visit_time"`
}

// GetAssignedOrders handles GET /api/v1/verifiers/:verifierID/agenda.
func (s *Server) GetAssignedOrders(ctx echo.Context) error {
	verifierID, err := pathID(ctx, "verifierID")
	if err != nil {
		return err
	}

	query, err := queries.NewGetAssignedOrdersQuery(verifierID)
	if err != nil {
		return respondError(ctx, err)
	}

	agenda, err := s.getAssignedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AgendaItemResponse, len(agenda))
	for i, item := range agenda {
		response[i] = AgendaItemResponse{
			OrderID:    item.OrderID,
			OrderCode:  item.OrderCode,
			ClientName: item.ClientName,
			Street:     item.Street,
			District:   item.District,
			Status:     item.Status,
			VisitDate:  item.VisitDate.Format("2006-01-02"),
			VisitTime:  item.VisitTime,
		}
	}

	return respond(ctx, http.StatusOK, response)
}

// pathID parses a positive numeric path parameter.
func pathID(ctx echo.Context, name string) (int64, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return id, nil
}

func bindAndValidate(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return ctx.Validate(req)
}
