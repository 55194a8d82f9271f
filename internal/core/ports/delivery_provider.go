package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// RegistrationConfirmation is the parsed body of a successful registration
// call. Status carries the provider's suggested order status and may be
// empty when the response omits the field.
type RegistrationConfirmation struct {
	Status string `json:"status"`
}

// StatusReport is the parsed body of a status lookup. The zero value means
// the provider had no information (or the lookup failed).
type StatusReport struct {
	Status string `json:"status"`
}

// IsEmpty reports whether the lookup produced no status information.
func (r StatusReport) IsEmpty() bool {
	return r.Status == ""
}

// DeliveryProvider is the outbound port for external fulfillment services.
// Concrete providers encapsulate authentication and endpoint conventions;
// they are selected at construction time, not by runtime type inspection.
type DeliveryProvider interface {
	// AuthToken obtains a fresh bearer token from the provider.
	// Fails with errs.AuthenticationError when the provider's login call
	// does not succeed. No token caching: every registration re-authenticates.
	AuthToken(ctx context.Context) (string, error)

	// RegisterOrder sends the order's full representation to the provider.
	// On a non-success response it fails with errs.DeliveryRegistrationError
	// carrying the order id and the provider's error_message (or a generic
	// fallback). On success it returns the parsed confirmation.
	RegisterOrder(ctx context.Context, aggregate *order.Order) (RegistrationConfirmation, error)

	// OrderStatus looks up the provider's view of an order. Best-effort:
	// a non-success response degrades to an empty report with a nil error.
	OrderStatus(ctx context.Context, orderID string) (StatusReport, error)
}
