package commands

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ProcessOrderCommandHandler runs the order processing pipeline: parse the
// raw payload into the Order model, persist it, delegate to the delivery
// provider, reconcile the status from the provider's response and persist
// the update.
//
// Failure policy: a registration rejection from the provider
// (errs.DeliveryRegistrationError) is swallowed and collapses the order into
// the terminal Failed status — the order is still returned to the caller.
// Any other provider error, including errs.AuthenticationError, propagates
// uncaught.
type ProcessOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	provider   ports.DeliveryProvider
	logger     *slog.Logger
}

// NewProcessOrderCommandHandler creates a handler for the order processing
// pipeline. The delivery provider is injected at construction time; there is
// no implicit default provider.
func NewProcessOrderCommandHandler(
	uowFactory OrderUoWFactory,
	provider ports.DeliveryProvider,
	logger *slog.Logger,
) ProcessOrderCommandHandler {
	return ProcessOrderCommandHandler{
		uowFactory: uowFactory,
		provider:   provider,
		logger:     logger.With("component", "process_order"),
	}
}

// Handle processes the raw order payload and returns the reconciled order.
//
// Steps:
//  1. Parse the payload into an Order. A validation error propagates
//     immediately; nothing is persisted.
//  2. Insert the parsed order. A second call with the same external id
//     creates a duplicate record.
//  3. Register the order with the delivery provider.
//  4. Persist the reconciled status: the provider's status on success
//     (Processing when missing or unrecognized), Failed on registration
//     rejection.
//
// The insert and the status update are independent writes. A crash between
// them leaves the record in its pre-registration status.
func (h *ProcessOrderCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	parsed, err := h.parseOrder(cmd)
	if err != nil {
		return nil, err
	}

	if err = h.insertOrder(ctx, parsed); err != nil {
		return nil, err
	}

	confirmation, err := h.provider.RegisterOrder(ctx, parsed)
	if err != nil {
		var regErr *errs.DeliveryRegistrationError
		if !errors.As(err, &regErr) {
			return nil, err
		}

		h.logger.WarnContext(ctx, "Delivery registration failed, collapsing order to FAILED",
			"order_id", parsed.ID(), "provider_message", regErr.Message)

		if updateErr := h.updateStatus(ctx, parsed.ID(), order.Failed); updateErr != nil {
			return nil, updateErr
		}
		if statusErr := parsed.ChangeStatus(order.Failed); statusErr != nil {
			return nil, statusErr
		}

		return parsed, nil
	}

	status := order.StatusFromProvider(confirmation.Status)
	if err = h.updateStatus(ctx, parsed.ID(), status); err != nil {
		return nil, err
	}
	if err = parsed.ChangeStatus(status); err != nil {
		return nil, err
	}

	return parsed, nil
}

// parseOrder turns the raw payload into the Order aggregate, surfacing a
// validation error for any shape violation.
func (h *ProcessOrderCommandHandler) parseOrder(cmd ProcessOrderCommand) (*order.Order, error) {
	status, err := order.StatusFromString(cmd.Status())
	if err != nil {
		return nil, err
	}

	payloads := cmd.Items()
	items := make([]order.Item, 0, len(payloads))
	for _, p := range payloads {
		item, itemErr := order.NewItem(p.Title, p.Description, p.Quantity, p.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.NewOrder(cmd.OrderID(), status, items, cmd.TotalPrice())
}

func (h *ProcessOrderCommandHandler) insertOrder(ctx context.Context, aggregate *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *ProcessOrderCommandHandler) updateStatus(
	ctx context.Context,
	externalID string,
	status order.Status,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().UpdateStatus(ctx, externalID, status); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
