package http_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of ports.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(
	ctx context.Context, externalID string, status order.Status,
) error {
	args := m.Called(ctx, externalID, status)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, externalID string) (*order.Order, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatuses(
	ctx context.Context, statuses ...order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

// MockOrderUoW is a mock unit of work that hands out the shared repository.
type MockOrderUoW struct {
	mock.Mock
	repo *MockOrderRepository
}

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	return m.repo
}

// MockUoWFactory creates passthrough units of work over a shared repository.
type MockUoWFactory struct {
	repo *MockOrderRepository
}

func (f *MockUoWFactory) Create() commands.OrderUoW {
	uow := &MockOrderUoW{repo: f.repo}
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	return uow
}

// MockDeliveryProvider is a mock implementation of ports.DeliveryProvider.
type MockDeliveryProvider struct {
	mock.Mock
}

func (m *MockDeliveryProvider) AuthToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockDeliveryProvider) RegisterOrder(
	ctx context.Context, aggregate *order.Order,
) (ports.RegistrationConfirmation, error) {
	args := m.Called(ctx, aggregate)
	return args.Get(0).(ports.RegistrationConfirmation), args.Error(1)
}

func (m *MockDeliveryProvider) OrderStatus(
	ctx context.Context, orderID string,
) (ports.StatusReport, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(ports.StatusReport), args.Error(1)
}

// testServer wires a Server with mocked persistence and delivery provider.
// The query handler receives a nil database: listing tests run against the
// mutation endpoints only.
func testServer(repo *MockOrderRepository, provider *MockDeliveryProvider) *echo.Echo {
	factory := &MockUoWFactory{repo: repo}
	logger := slog.New(slog.DiscardHandler)

	server := httpadapter.NewServer(
		commands.NewProcessOrderCommandHandler(factory, provider, logger),
		commands.NewUpdateOrderStatusCommandHandler(factory),
		// no database behind the listing endpoint in these tests
		queries.NewGetAllOrdersQueryHandler(nil),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func Test_Server_CreateOrder(t *testing.T) {
	t.Run("should return 201 when order is processed successfully", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("Add", mock.Anything, mock.Anything).Return(nil)
		repo.On("UpdateStatus", mock.Anything, "order-1", order.Registered).Return(nil)

		provider := new(MockDeliveryProvider)
		provider.On("RegisterOrder", mock.Anything, mock.Anything).
			Return(ports.RegistrationConfirmation{Status: "REGISTERED"}, nil)

		e := testServer(repo, provider)

		body := `{"id":"order-1","status":"NEW","items":[{"title":"Pizza","quantity":1,"price":500}],"total_price":500}`
		rec := performRequest(e, http.MethodPost, "/order-new", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"message":"Successfully created"}`, rec.Body.String())
		repo.AssertExpectations(t)
		provider.AssertExpectations(t)
	})

	t.Run("should return 400 with generic message when processing collapses to failure", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("Add", mock.Anything, mock.Anything).Return(nil)
		repo.On("UpdateStatus", mock.Anything, "order-1", order.Failed).Return(nil)

		provider := new(MockDeliveryProvider)
		provider.On("RegisterOrder", mock.Anything, mock.Anything).
			Return(ports.RegistrationConfirmation{},
				errs.NewDeliveryRegistrationError("order-1", "too many orders"))

		e := testServer(repo, provider)

		body := `{"id":"order-1","status":"NEW","items":[{"title":"Pizza","quantity":1,"price":500}],"total_price":500}`
		rec := performRequest(e, http.MethodPost, "/order-new", body)

		// The record was stored with FAILED status, yet the response hides
		// the provider's reason behind a generic message.
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"Order was not processed. Please try again."}`, rec.Body.String())
		repo.AssertExpectations(t)
	})

	t.Run("should return 400 when order id is missing", func(t *testing.T) {
		repo := new(MockOrderRepository)
		provider := new(MockDeliveryProvider)
		e := testServer(repo, provider)

		body := `{"status":"NEW","items":[],"total_price":0}`
		rec := performRequest(e, http.MethodPost, "/order-new", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("should return 400 when status is not in the vocabulary", func(t *testing.T) {
		repo := new(MockOrderRepository)
		provider := new(MockDeliveryProvider)
		e := testServer(repo, provider)

		body := `{"id":"order-1","status":"SHIPPED","items":[{"title":"Pizza","quantity":1,"price":500}],"total_price":500}`
		rec := performRequest(e, http.MethodPost, "/order-new", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("should return 400 when an item is invalid", func(t *testing.T) {
		repo := new(MockOrderRepository)
		provider := new(MockDeliveryProvider)
		e := testServer(repo, provider)

		body := `{"id":"order-1","status":"NEW","items":[{"title":"Pizza","quantity":-1,"price":500}],"total_price":500}`
		rec := performRequest(e, http.MethodPost, "/order-new", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("should return 400 on malformed body", func(t *testing.T) {
		repo := new(MockOrderRepository)
		provider := new(MockDeliveryProvider)
		e := testServer(repo, provider)

		rec := performRequest(e, http.MethodPost, "/order-new", `{"id":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should return 500 when provider authentication fails", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("Add", mock.Anything, mock.Anything).Return(nil)

		provider := new(MockDeliveryProvider)
		provider.On("RegisterOrder", mock.Anything, mock.Anything).
			Return(ports.RegistrationConfirmation{}, errs.NewAuthenticationError("bycycle"))

		e := testServer(repo, provider)

		body := `{"id":"order-1","status":"NEW","items":[{"title":"Pizza","quantity":1,"price":500}],"total_price":500}`
		rec := performRequest(e, http.MethodPost, "/order-new", body)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func Test_Server_UpdateOrderStatus(t *testing.T) {
	t.Run("should return 204 on successful status update", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("UpdateStatus", mock.Anything, "order-1", order.Done).Return(nil)

		e := testServer(repo, new(MockDeliveryProvider))

		rec := performRequest(e, http.MethodPatch, "/order-status-update",
			`{"id":"order-1","status":"DONE"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
		repo.AssertExpectations(t)
	})

	t.Run("should return 400 when status is not in the vocabulary", func(t *testing.T) {
		repo := new(MockOrderRepository)
		e := testServer(repo, new(MockDeliveryProvider))

		rec := performRequest(e, http.MethodPatch, "/order-status-update",
			`{"id":"order-1","status":"SHIPPED"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should return 400 when order id is missing", func(t *testing.T) {
		repo := new(MockOrderRepository)
		e := testServer(repo, new(MockDeliveryProvider))

		rec := performRequest(e, http.MethodPatch, "/order-status-update",
			`{"status":"DONE"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should return 204 even when no record matches the id", func(t *testing.T) {
		// The update performs no existence check: the storage layer reports
		// success for zero matched records.
		repo := new(MockOrderRepository)
		repo.On("UpdateStatus", mock.Anything, "no-such-order", order.Done).Return(nil)

		e := testServer(repo, new(MockDeliveryProvider))

		rec := performRequest(e, http.MethodPatch, "/order-status-update",
			`{"id":"no-such-order","status":"DONE"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		repo.AssertExpectations(t)
	})
}

func performRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func Test_Server_CreateOrder_ProviderStatusIsPersisted(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.Anything).Return(nil)
	repo.On("UpdateStatus", mock.Anything, "order-1", order.Processing).Return(nil)

	provider := new(MockDeliveryProvider)
	provider.On("RegisterOrder", mock.Anything, mock.Anything).
		Return(ports.RegistrationConfirmation{}, nil)

	e := testServer(repo, provider)

	body := `{"id":"order-1","status":"NEW","items":[{"title":"Pizza","quantity":1,"price":500}],"total_price":500}`
	rec := performRequest(e, http.MethodPost, "/order-new", body)

	// A confirmation without a status defaults to PROCESSING.
	require.Equal(t, http.StatusCreated, rec.Code)
	repo.AssertExpectations(t)
}
