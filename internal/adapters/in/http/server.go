package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the fulfillment API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	processOrderHandler commands.ProcessOrderCommandHandler
	updateStatusHandler commands.UpdateOrderStatusCommandHandler
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	processOrderHandler commands.ProcessOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
) *Server {
	return &Server{
		processOrderHandler: processOrderHandler,
		updateStatusHandler: updateStatusHandler,
		getAllOrdersHandler: getAllOrdersHandler,
	}
}

// RegisterRoutes attaches the API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/orders", s.GetOrders)
	e.POST("/order-new", s.CreateOrder)
	e.PATCH("/order-status-update", s.UpdateOrderStatus)
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse is the JSON body returned for successful mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewOrderRequest is the payload accepted by POST /order-new.
type NewOrderRequest struct {
	ID         string          `json:"id"`
	Status     string          `json:"status"`
	Items      []OrderItemBody `json:"items"`
	TotalPrice float64         `json:"total_price"`
}

// OrderItemBody is one item position inside a new order payload.
type OrderItemBody struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// StatusUpdateRequest is the payload accepted by PATCH /order-status-update.
type StatusUpdateRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// GetOrders handles GET /orders - retrieves every stored order record.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Failed to retrieve orders",
		})
	}

	return ctx.JSON(http.StatusOK, orders)
}

// CreateOrder handles POST /order-new - runs the order processing flow.
//
// The response reflects the persisted outcome: an order whose processing
// collapsed into a failure status reports 400 with a generic message even
// though its record was stored.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request NewOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
		})
	}

	items := make([]commands.ItemPayload, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, commands.ItemPayload{
			Title:       item.Title,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	cmd, err := commands.NewProcessOrderCommand(request.ID, request.Status, items, request.TotalPrice)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid order data: " + err.Error(),
		})
	}

	processedOrder, err := s.processOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if isValidationError(err) {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid order data: " + err.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Failed to process order",
		})
	}

	if processedOrder.Status().IsFailed() {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Order was not processed. Please try again.",
		})
	}

	return ctx.JSON(http.StatusCreated, MessageResponse{
		Message: "Successfully created",
	})
}

// UpdateOrderStatus handles PATCH /order-status-update - overwrites the
// stored status of an order.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var request StatusUpdateRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(request.ID, request.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid status data: " + err.Error(),
		})
	}

	if handleErr := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Failed to update order status",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// isValidationError reports whether the error stems from malformed input
// rather than an infrastructure failure.
func isValidationError(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}
