// Package http exposes the transport order use cases over a REST API built on
// Echo. Handlers translate HTTP requests into commands and queries and map
// rejected state changes onto meaningful status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"transportation/internal/core/application/usecases/commands"
	"transportation/internal/core/application/usecases/queries"
	"transportation/internal/core/domain/model/kernel"
	"transportation/internal/core/domain/model/transportorder"
	"transportation/internal/core/ports"
	"transportation/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler    commands.CreateTransportOrderCommandHandler
	changeStateHandler    commands.ChangeTransportOrderStateCommandHandler
	reportProblemHandler  commands.ReportProblemCommandHandler
	createLoadUnitHandler commands.CreateLoadUnitCommandHandler

	ordersByUnitHandler queries.GetOrdersByTransportUnitQueryHandler
	activeOrdersHandler queries.GetActiveOrdersQueryHandler

	translator ports.Translator
}

// NewServer creates a new HTTP server with the required command and query
// handlers. The translator renders message codes of rejected state changes
// into response messages.
func NewServer(
	createOrderHandler commands.CreateTransportOrderCommandHandler,
	changeStateHandler commands.ChangeTransportOrderStateCommandHandler,
	reportProblemHandler commands.ReportProblemCommandHandler,
	createLoadUnitHandler commands.CreateLoadUnitCommandHandler,
	ordersByUnitHandler queries.GetOrdersByTransportUnitQueryHandler,
	activeOrdersHandler queries.GetActiveOrdersQueryHandler,
	translator ports.Translator,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		changeStateHandler:    changeStateHandler,
		reportProblemHandler:  reportProblemHandler,
		createLoadUnitHandler: createLoadUnitHandler,
		ordersByUnitHandler:   ordersByUnitHandler,
		activeOrdersHandler:   activeOrdersHandler,
		translator:            translator,
	}
}

// RegisterRoutes mounts all API routes on the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/transport-orders", s.CreateTransportOrder)
	api.GET("/transport-orders", s.GetTransportOrders)
	api.POST("/transport-orders/:id/state", s.ChangeTransportOrderState)
	api.POST("/transport-orders/:id/problem", s.ReportProblem)
	api.POST("/load-units", s.CreateLoadUnit)

	e.GET("/health", s.Health)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createTransportOrderRequest struct {
	TransportUnitBK     string `json:"transportUnitBK"`
	Priority            string `json:"priority"`
	SourceLocation      string `json:"sourceLocation"`
	TargetLocation      string `json:"targetLocation"`
	TargetLocationGroup string `json:"targetLocationGroup"`
}

type createTransportOrderResponse struct {
	ID string `json:"id"`
}

type changeStateRequest struct {
	State string `json:"state"`
}

type reportProblemRequest struct {
	Text      string `json:"text"`
	MessageNo string `json:"messageNo"`
}

type createLoadUnitRequest struct {
	TransportUnitBK  string `json:"transportUnitBK"`
	PhysicalPosition string `json:"physicalPosition"`
	ProductSKU       string `json:"productSKU"`
}

type createLoadUnitResponse struct {
	ID string `json:"id"`
}

type transportOrderResponse struct {
	ID                  string     `json:"id"`
	TransportUnitBK     string     `json:"transportUnitBK,omitempty"`
	Priority            string     `json:"priority"`
	State               string     `json:"state"`
	SourceLocation      string     `json:"sourceLocation,omitempty"`
	TargetLocation      string     `json:"targetLocation,omitempty"`
	TargetLocationGroup string     `json:"targetLocationGroup,omitempty"`
	StartDate           *time.Time `json:"startDate,omitempty"`
	EndDate             *time.Time `json:"endDate,omitempty"`
	ProblemText         string     `json:"problemText,omitempty"`
}

// stateNames maps the API representation of lifecycle states to their domain
// values.
var stateNames = map[string]transportorder.State{
	"INITIALIZED": transportorder.Initialized,
	"STARTED":     transportorder.Started,
	"FINISHED":    transportorder.Finished,
	"ONFAILURE":   transportorder.OnFailure,
	"CANCELED":    transportorder.Canceled,
}

// priorityNames maps the API representation of priorities to their domain
// values.
var priorityNames = map[string]transportorder.PriorityLevel{
	"LOWEST":  transportorder.PriorityLowest,
	"LOW":     transportorder.PriorityLow,
	"NORMAL":  transportorder.PriorityNormal,
	"HIGH":    transportorder.PriorityHigh,
	"HIGHEST": transportorder.PriorityHighest,
}

// CreateTransportOrder handles POST /api/v1/transport-orders.
func (s *Server) CreateTransportOrder(ctx echo.Context) error {
	var req createTransportOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	priority := transportorder.PriorityNormal
	if req.Priority != "" {
		p, ok := priorityNames[req.Priority]
		if !ok {
			return badRequest(ctx, "Unknown priority: "+req.Priority)
		}
		priority = p
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateTransportOrderCommand(
		orderID,
		req.TransportUnitBK,
		priority,
		req.SourceLocation,
		req.TargetLocation,
		req.TargetLocationGroup,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createTransportOrderResponse{ID: orderID.String()})
}

// ChangeTransportOrderState handles POST /api/v1/transport-orders/:id/state.
func (s *Server) ChangeTransportOrderState(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req changeStateRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	// Unknown state names become an Unknown state; the command constructor
	// rejects it like any other undefined target.
	cmd, err := commands.NewChangeTransportOrderStateCommand(orderID, stateNames[req.State])
	if err != nil {
		return badRequest(ctx, "Invalid state change: "+err.Error())
	}

	if err = s.changeStateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReportProblem handles POST /api/v1/transport-orders/:id/problem.
func (s *Server) ReportProblem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req reportProblemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReportProblemCommand(orderID, req.Text, req.MessageNo)
	if err != nil {
		return badRequest(ctx, "Invalid problem report: "+err.Error())
	}

	if err = s.reportProblemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateLoadUnit handles POST /api/v1/load-units.
func (s *Server) CreateLoadUnit(ctx echo.Context) error {
	var req createLoadUnitRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	unitID := kernel.NewUUID()
	cmd, err := commands.NewCreateLoadUnitCommand(unitID, req.TransportUnitBK, req.PhysicalPosition, req.ProductSKU)
	if err != nil {
		return badRequest(ctx, "Invalid load unit data: "+err.Error())
	}

	if err = s.createLoadUnitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createLoadUnitResponse{ID: unitID.String()})
}

// GetTransportOrders handles GET /api/v1/transport-orders. With a
// transportUnit query parameter it lists all orders of that unit; without one
// it lists every non-terminal order.
func (s *Server) GetTransportOrders(ctx echo.Context) error {
	var orders []queries.TransportOrderQueryResponse

	if bk := ctx.QueryParam("transportUnit"); bk != "" {
		query, err := queries.NewGetOrdersByTransportUnitQuery(bk)
		if err != nil {
			return badRequest(ctx, "Invalid transport unit: "+err.Error())
		}

		orders, err = s.ordersByUnitHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return internalError(ctx, "Failed to retrieve orders")
		}
	} else {
		var err error
		orders, err = s.activeOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
		if err != nil {
			return internalError(ctx, "Failed to retrieve orders")
		}
	}

	response := make([]transportOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = transportOrderResponse{
			ID:                  o.ID.String(),
			TransportUnitBK:     o.TransportUnitBK,
			Priority:            o.Priority.String(),
			State:               o.State.String(),
			SourceLocation:      o.SourceLocation,
			TargetLocation:      o.TargetLocation,
			TargetLocationGroup: o.TargetLocationGroup,
			StartDate:           o.StartDate,
			EndDate:             o.EndDate,
			ProblemText:         o.ProblemText,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// mapError converts application errors to HTTP responses. Rejected state
// changes keep their classification: unknown targets and incomplete orders are
// client errors, conflicts with the current lifecycle are 409s.
func (s *Server) mapError(ctx echo.Context, err error) error {
	var stateErr *transportorder.StateChangeError
	if errors.As(err, &stateErr) {
		message := s.translator.Translate(stateErr.MessageCode, stateErr.TranslationArgs()...)

		status := http.StatusConflict
		if errors.Is(err, transportorder.ErrNullTargetState) ||
			errors.Is(err, transportorder.ErrIncompleteOrder) {
			status = http.StatusBadRequest
		}

		return ctx.JSON(status, errorResponse{Code: status, Message: message})
	}

	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	return internalError(ctx, "Request failed")
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, errorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
