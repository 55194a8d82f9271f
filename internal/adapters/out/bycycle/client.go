// Package bycycle implements the DeliveryProvider port for the ByCycle
// courier service, which delivers orders to customers by cycle.
//
// The client encapsulates the provider's endpoint conventions: a GET /login
// call returning a bearer token, POST /register-order/{id} for registration
// and GET /order-status/{id} for best-effort status lookups. Every call
// re-authenticates; the provider specifies no token lifetime.
package bycycle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

const providerName = "bycycle"

const defaultTimeout = 10 * time.Second

// Client talks to the ByCycle courier API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a ByCycle client for the given base URL.
// The underlying HTTP client carries an explicit timeout: the provider
// specifies none, and outbound calls must not hang a request forever.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
			},
		},
	}
}

// AuthToken obtains a fresh bearer token via GET {base}/login.
// Any failure — transport, non-success status or an empty token in the
// body — surfaces as errs.AuthenticationError.
func (c *Client) AuthToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/login", nil)
	if err != nil {
		return "", errs.NewAuthenticationErrorWithCause(providerName, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.NewAuthenticationErrorWithCause(providerName, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return "", errs.NewAuthenticationErrorWithCause(providerName,
			fmt.Errorf("login returned %s", resp.Status))
	}

	var body struct {
		Token string `json:"token"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", errs.NewAuthenticationErrorWithCause(providerName, err)
	}
	if body.Token == "" {
		return "", errs.NewAuthenticationErrorWithCause(providerName,
			fmt.Errorf("login response carries no token"))
	}

	return body.Token, nil
}

// RegisterOrder sends the order's full representation to
// POST {base}/register-order/{id} with a bearer token header.
//
// A non-success response fails with errs.DeliveryRegistrationError carrying
// the body's error_message (or a generic fallback). Transport failures are
// folded into the same error type: a provider that is down and a provider
// that rejected the order are indistinguishable to the pipeline. Only
// authentication failures surface differently.
func (c *Client) RegisterOrder(
	ctx context.Context,
	aggregate *order.Order,
) (ports.RegistrationConfirmation, error) {
	token, err := c.AuthToken(ctx)
	if err != nil {
		return ports.RegistrationConfirmation{}, err
	}

	payload, err := json.Marshal(orderPayloadFromDomain(aggregate))
	if err != nil {
		return ports.RegistrationConfirmation{},
			errs.NewDeliveryRegistrationErrorWithCause(aggregate.ID(), registrationFallbackMessage, err)
	}

	url := c.baseURL + "/register-order/" + aggregate.ID()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return ports.RegistrationConfirmation{},
			errs.NewDeliveryRegistrationErrorWithCause(aggregate.ID(), registrationFallbackMessage, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.RegistrationConfirmation{},
			errs.NewDeliveryRegistrationErrorWithCause(aggregate.ID(), registrationFallbackMessage, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		var body struct {
			ErrorMessage string `json:"error_message"`
		}
		// The failure body is decoded best-effort; a malformed body
		// degrades to the fallback message.
		_ = json.NewDecoder(resp.Body).Decode(&body)

		message := body.ErrorMessage
		if message == "" {
			message = registrationFallbackMessage
		}
		return ports.RegistrationConfirmation{},
			errs.NewDeliveryRegistrationError(aggregate.ID(), message)
	}

	var confirmation ports.RegistrationConfirmation
	if err = json.NewDecoder(resp.Body).Decode(&confirmation); err != nil {
		return ports.RegistrationConfirmation{},
			errs.NewDeliveryRegistrationErrorWithCause(aggregate.ID(), registrationFallbackMessage, err)
	}

	return confirmation, nil
}

// OrderStatus looks up the provider's view of an order via
// GET {base}/order-status/{id}. Best-effort: a non-success response
// degrades to an empty report with a nil error. Authentication failures
// still propagate, as the lookup cannot even be attempted without a token.
func (c *Client) OrderStatus(ctx context.Context, orderID string) (ports.StatusReport, error) {
	token, err := c.AuthToken(ctx)
	if err != nil {
		return ports.StatusReport{}, err
	}

	url := c.baseURL + "/order-status/" + orderID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.StatusReport{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.StatusReport{}, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return ports.StatusReport{}, nil
	}

	var report ports.StatusReport
	if err = json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return ports.StatusReport{}, err
	}

	return report, nil
}

const registrationFallbackMessage = "delivery registration error"

func isSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

// orderPayload is the order's wire representation sent to the provider.
type orderPayload struct {
	ID         string        `json:"id"`
	Status     string        `json:"status"`
	Items      []itemPayload `json:"items"`
	TotalPrice float64       `json:"total_price"`
}

type itemPayload struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

func orderPayloadFromDomain(aggregate *order.Order) orderPayload {
	domainItems := aggregate.Items()
	items := make([]itemPayload, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, itemPayload{
			Title:       item.Title(),
			Description: item.Description(),
			Quantity:    item.Quantity(),
			Price:       item.Price(),
		})
	}

	return orderPayload{
		ID:         aggregate.ID(),
		Status:     string(aggregate.Status()),
		Items:      items,
		TotalPrice: aggregate.TotalPrice(),
	}
}
