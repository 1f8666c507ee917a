package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"food-delivery-api/internal/config"
	"food-delivery-api/internal/model"

	"github.com/shopspring/decimal"
)

// Intent statuses as reported by Stripe. "succeeded" is the only
// terminal-success value.
const (
	IntentStatusSucceeded      = "succeeded"
	IntentStatusRequiresAction = "requires_action"
	IntentStatusCanceled       = "canceled"
)

type StripeClient interface {
	CreateIntent(ctx context.Context, params *CreateIntentParams) (*Intent, error)
	RetrieveIntent(ctx context.Context, intentID string) (*Intent, error)
}

// Customer carries the identity and shipping fields attached to an intent.
// All fields optional; shipping is only sent when Street is set.
type Customer struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Street    string
	City      string
	State     string
	ZipCode   string
	Country   string
}

type CreateIntentParams struct {
	Amount   decimal.Decimal // major units; converted to cents on the wire
	Currency string

	// Audit metadata, descriptive only.
	OriginalAmount decimal.Decimal
	PromoCode      string
	Discount       decimal.Decimal
	Customer       *Customer
}

type Intent struct {
	ID           string            `json:"id"`
	ClientSecret string            `json:"client_secret"`
	Status       string            `json:"status"`
	Amount       int64             `json:"amount"` // minor units
	Metadata     map[string]string `json:"metadata"`
}

// APIError is a non-transient rejection from Stripe; never retried.
type APIError struct {
	Type       string `json:"type"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("stripe: %s (%s)", e.Message, e.Type)
}

// ConnectionError marks transient connectivity failures, the only class the
// retry policy acts on.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "stripe connection error: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func IsConnectionError(err error) bool {
	var connErr *ConnectionError
	return errors.As(err, &connErr)
}

type stripeClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	secretKey  string
	retry      retryPolicy
}

func NewStripeClient(cfg *config.Stripe) StripeClient {
	return &stripeClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: cfg.BaseApiURL,
		secretKey:  cfg.SecretKey,
		retry: retryPolicy{
			maxAttempts: 3,
			delay:       time.Second,
			retryable:   IsConnectionError,
		},
	}
}

func (c *stripeClientImpl) CreateIntent(ctx context.Context, params *CreateIntentParams) (*Intent, error) {
	if !params.Amount.IsPositive() {
		return nil, model.ErrInvalidAmount
	}

	currency := params.Currency
	if currency == "" {
		currency = "usd"
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(toMinorUnits(params.Amount), 10))
	form.Set("currency", currency)
	form.Set("metadata[original_amount]", params.OriginalAmount.String())
	form.Set("metadata[discount]", params.Discount.String())
	if params.PromoCode != "" {
		form.Set("metadata[promo_code]", params.PromoCode)
	}

	if cust := params.Customer; cust != nil {
		fullName := strings.TrimSpace(cust.FirstName + " " + cust.LastName)
		form.Set("metadata[customer_name]", fullName)
		form.Set("metadata[customer_email]", cust.Email)
		if cust.Email != "" {
			form.Set("receipt_email", cust.Email)
		}
		if cust.Street != "" {
			form.Set("shipping[name]", fullName)
			form.Set("shipping[phone]", cust.Phone)
			form.Set("shipping[address][line1]", cust.Street)
			form.Set("shipping[address][city]", cust.City)
			form.Set("shipping[address][state]", cust.State)
			form.Set("shipping[address][postal_code]", cust.ZipCode)
			form.Set("shipping[address][country]", cust.Country)
		}
	}

	var intent Intent
	err := c.retry.do(ctx, func() error {
		return c.doRequest(ctx, http.MethodPost, "/v1/payment_intents", form, &intent)
	})
	if err != nil {
		return nil, err
	}
	return &intent, nil
}

func (c *stripeClientImpl) RetrieveIntent(ctx context.Context, intentID string) (*Intent, error) {
	if intentID == "" {
		return nil, model.ErrIntentIDRequired
	}

	var intent Intent
	err := c.retry.do(ctx, func() error {
		return c.doRequest(ctx, http.MethodGet, "/v1/payment_intents/"+url.PathEscape(intentID), nil, &intent)
	})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, model.ErrIntentNotFound
		}
		return nil, err
	}
	return &intent, nil
}

// toMinorUnits converts a major-unit amount to integer cents. Rounding
// (half-up) happens here and nowhere else.
func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func (c *stripeClientImpl) doRequest(ctx context.Context, method, path string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseApiURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ConnectionError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody struct {
			Error APIError `json:"error"`
		}
		if err := json.Unmarshal(raw, &errBody); err == nil && errBody.Error.Type != "" {
			errBody.Error.StatusCode = resp.StatusCode
			if errBody.Error.Type == "api_connection_error" {
				return &ConnectionError{Err: &errBody.Error}
			}
			return &errBody.Error
		}
		return fmt.Errorf("stripe error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode stripe response: %w", err)
	}
	return nil
}
