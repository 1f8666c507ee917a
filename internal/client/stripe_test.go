package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"food-delivery-api/internal/config"
	"food-delivery-api/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStripeClient(baseURL string) *stripeClientImpl {
	return &stripeClientImpl{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseApiURL: baseURL,
		secretKey:  "sk_test_123",
		retry: retryPolicy{
			maxAttempts: 3,
			delay:       time.Millisecond,
			retryable:   IsConnectionError,
		},
	}
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func intentJSON() string {
	return `{"id":"pi_1","client_secret":"pi_1_secret","status":"requires_payment_method","amount":5200,"metadata":{}}`
}

func TestCreateIntentSendsMinorUnits(t *testing.T) {
	var gotForm url.Values
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(intentJSON()))
	}))
	defer srv.Close()

	c := newTestStripeClient(srv.URL)
	intent, err := c.CreateIntent(context.Background(), &CreateIntentParams{
		Amount:         d("52"),
		Currency:       "usd",
		OriginalAmount: d("50"),
		Discount:       d("0"),
	})
	require.NoError(t, err)

	assert.Equal(t, "pi_1", intent.ID)
	assert.Equal(t, "Bearer sk_test_123", gotAuth)
	assert.Equal(t, "5200", gotForm.Get("amount"))
	assert.Equal(t, "usd", gotForm.Get("currency"))
	assert.Equal(t, "50", gotForm.Get("metadata[original_amount]"))
	assert.Equal(t, "0", gotForm.Get("metadata[discount]"))
}

func TestCreateIntentRoundsFractionalCents(t *testing.T) {
	var gotAmount string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotAmount = r.PostForm.Get("amount")
		w.Write([]byte(intentJSON()))
	}))
	defer srv.Close()

	c := newTestStripeClient(srv.URL)
	// 10% off 19.99 leaves 17.991; rounds half-up to 1799 cents
	_, err := c.CreateIntent(context.Background(), &CreateIntentParams{
		Amount: d("17.991"),
	})
	require.NoError(t, err)
	assert.Equal(t, "1799", gotAmount)
}

func TestCreateIntentCustomerMetadataAndShipping(t *testing.T) {
	var gotForm url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		w.Write([]byte(intentJSON()))
	}))
	defer srv.Close()

	c := newTestStripeClient(srv.URL)
	_, err := c.CreateIntent(context.Background(), &CreateIntentParams{
		Amount:    d("52"),
		PromoCode: "SAVE20",
		Customer: &Customer{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Phone:     "555-0100",
			Street:    "1 Main St",
			City:      "Springfield",
			State:     "IL",
			ZipCode:   "62701",
			Country:   "US",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "SAVE20", gotForm.Get("metadata[promo_code]"))
	assert.Equal(t, "Jane Doe", gotForm.Get("metadata[customer_name]"))
	assert.Equal(t, "jane@example.com", gotForm.Get("metadata[customer_email]"))
	assert.Equal(t, "jane@example.com", gotForm.Get("receipt_email"))
	assert.Equal(t, "Jane Doe", gotForm.Get("shipping[name]"))
	assert.Equal(t, "1 Main St", gotForm.Get("shipping[address][line1]"))
	assert.Equal(t, "62701", gotForm.Get("shipping[address][postal_code]"))
}

func TestCreateIntentOmitsShippingWithoutStreet(t *testing.T) {
	var gotForm url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm
		w.Write([]byte(intentJSON()))
	}))
	defer srv.Close()

	c := newTestStripeClient(srv.URL)
	_, err := c.CreateIntent(context.Background(), &CreateIntentParams{
		Amount:   d("52"),
		Customer: &Customer{FirstName: "Jane", Email: "jane@example.com"},
	})
	require.NoError(t, err)

	assert.Empty(t, gotForm.Get("shipping[name]"))
	assert.Equal(t, "jane@example.com", gotForm.Get("receipt_email"))
}

func TestCreateIntentRejectsNonPositiveAmountBeforeNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := newTestStripeClient(srv.URL)
	_, err := c.CreateIntent(context.Background(), &CreateIntentParams{Amount: d("0")})

	assert.ErrorIs(t, err, model.ErrInvalidAmount)
	assert.False(t, called)
}

func TestCreateIntentRetriesConnectionErrors(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"error":{"type":"api_connection_error","message":"upstream reset"}}`))
			return
		}
		w.Write([]byte(intentJSON()))
	}))
	defer srv.Close()

	c := newTestStripeClient(srv.URL)
	intent, err := c.CreateIntent(context.Background(), &CreateIntentParams{Amount: d("52")})

	require.NoError(t, err)
	assert.Equal(t, "pi_1", intent.ID)
	assert.Equal(t, 3, attempts)
}

func TestCreateIntentDoesNotRetryAPIErrors(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	c := newTestStripeClient(srv.URL)
	_, err := c.CreateIntent(context.Background(), &CreateIntentParams{Amount: d("52")})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "card_declined", apiErr.Code)
	assert.Equal(t, http.StatusPaymentRequired, apiErr.StatusCode)
	assert.Equal(t, 1, attempts)
}

func TestCreateIntentExhaustsRetries(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":{"type":"api_connection_error","message":"upstream reset"}}`))
	}))
	defer srv.Close()

	c := newTestStripeClient(srv.URL)
	_, err := c.CreateIntent(context.Background(), &CreateIntentParams{Amount: d("52")})

	assert.True(t, IsConnectionError(err))
	assert.Equal(t, 3, attempts)
}

func TestRetrieveIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents/pi_1", r.URL.Path)
		w.Write([]byte(`{"id":"pi_1","status":"succeeded","amount":5200,"metadata":{"customer_email":"jane@example.com"}}`))
	}))
	defer srv.Close()

	c := newTestStripeClient(srv.URL)
	intent, err := c.RetrieveIntent(context.Background(), "pi_1")

	require.NoError(t, err)
	assert.Equal(t, IntentStatusSucceeded, intent.Status)
	assert.Equal(t, int64(5200), intent.Amount)
	assert.Equal(t, "jane@example.com", intent.Metadata["customer_email"])
}

func TestRetrieveIntentNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"No such payment_intent"}}`))
	}))
	defer srv.Close()

	c := newTestStripeClient(srv.URL)
	_, err := c.RetrieveIntent(context.Background(), "pi_missing")

	assert.ErrorIs(t, err, model.ErrIntentNotFound)
}

func TestRetrieveIntentRequiresID(t *testing.T) {
	c := newTestStripeClient("http://unused")
	_, err := c.RetrieveIntent(context.Background(), "")
	assert.ErrorIs(t, err, model.ErrIntentIDRequired)
}

func TestDefaultRetryPolicy(t *testing.T) {
	c := NewStripeClient(&config.Stripe{
		BaseApiURL: "https://api.stripe.com",
		SecretKey:  "sk_test_123",
	}).(*stripeClientImpl)

	assert.Equal(t, 3, c.retry.maxAttempts)
	assert.Equal(t, time.Second, c.retry.delay)
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		amount string
		want   int64
	}{
		{"52", 5200},
		{"19.99", 1999},
		{"17.991", 1799},
		{"17.995", 1800},
		{"0.01", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toMinorUnits(d(tt.amount)), "amount %s", tt.amount)
	}
}
