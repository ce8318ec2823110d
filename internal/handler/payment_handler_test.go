package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altruist/ucp-payments/internal/dto"
	"github.com/altruist/ucp-payments/internal/gateway"
	"github.com/altruist/ucp-payments/internal/model"
	"github.com/altruist/ucp-payments/internal/service"
	"github.com/altruist/ucp-payments/internal/validation"
)

func f64(v float64) *float64 { return &v }

type memRuleFinder struct {
	rules map[string]*model.CountryPaymentRule
}

func (m *memRuleFinder) FindEnabledByCountry(ctx context.Context, countryCode string) (*model.CountryPaymentRule, error) {
	return m.rules[countryCode], nil
}

type memPaymentStore struct {
	payments []*model.Payment
	nextID   int64
	err      error
}

func (m *memPaymentStore) Insert(ctx context.Context, p *model.Payment) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	p.ID = m.nextID
	stored := *p
	m.payments = append(m.payments, &stored)
	return nil
}

func (m *memPaymentStore) UpdateOutcome(ctx context.Context, id int64, status string, charges, totalAmount float64) error {
	if m.err != nil {
		return m.err
	}
	for _, p := range m.payments {
		if p.ID == id {
			p.Status = &status
			p.Charges = &charges
			p.TotalAmount = &totalAmount
			return nil
		}
	}
	return errors.New("no such payment")
}

func (m *memPaymentStore) FindAll(ctx context.Context) ([]model.Payment, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]model.Payment, 0, len(m.payments))
	for _, p := range m.payments {
		out = append(out, *p)
	}
	return out, nil
}

func setupPaymentRouter(t *testing.T, store *memPaymentStore) *gin.Engine {
	t.Helper()

	registry, err := gateway.NewRegistry(
		gateway.NewUPIGateway(), gateway.NewCardGateway(), gateway.NewApplePayGateway())
	require.NoError(t, err)

	rules := &memRuleFinder{rules: map[string]*model.CountryPaymentRule{
		"IN": {ID: 1, CountryCode: "IN", MinAmount: f64(100), MaxAmount: f64(200000), Enabled: true},
	}}

	svc := service.NewPaymentService(registry, validation.NewValidator(rules), store, "IN")
	h := NewPaymentHandler(svc)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/hello", Hello)
	api := router.Group("/api")
	api.POST("/payments/process", h.Process)
	api.GET("/payments/gateways", h.Gateways)
	api.GET("/payments/history", h.History)

	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestHelloEndpoint(t *testing.T) {
	router := setupPaymentRouter(t, &memPaymentStore{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/hello", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello, World!", w.Body.String())
}

func TestPaymentHandler_Process(t *testing.T) {
	t.Run("happy: success is 200 with enriched response", func(t *testing.T) {
		store := &memPaymentStore{}
		router := setupPaymentRouter(t, store)

		w := postJSON(t, router, "/api/payments/process", dto.PaymentRequest{
			Name:               "John",
			ToAccount:          "987654321",
			FromAccount:        "123456789",
			DestinationCountry: "IN",
			PaymentMethod:      "UPI",
			Amount:             f64(1000),
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.PaymentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, model.StatusSuccess, resp.Status)
		assert.Equal(t, "UPI", resp.GatewayUsed)
		assert.InDelta(t, 10.0, resp.Charges, 1e-9)
		assert.InDelta(t, 1010.0, resp.TotalAmount, 1e-9)
		require.NotNil(t, resp.PaymentID)
		assert.Equal(t, int64(1), *resp.PaymentID)
	})

	t.Run("bad: policy rejection is 400 with the validator message", func(t *testing.T) {
		router := setupPaymentRouter(t, &memPaymentStore{})

		w := postJSON(t, router, "/api/payments/process", dto.PaymentRequest{
			DestinationCountry: "IN",
			PaymentMethod:      "UPI",
			Amount:             f64(50),
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.PaymentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, model.StatusFailed, resp.Status)
		assert.Contains(t, resp.Message, "below minimum")
	})

	t.Run("bad: unknown method is 400", func(t *testing.T) {
		router := setupPaymentRouter(t, &memPaymentStore{})

		w := postJSON(t, router, "/api/payments/process", dto.PaymentRequest{
			DestinationCountry: "IN",
			PaymentMethod:      "INVALID",
			Amount:             f64(500),
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.PaymentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Unsupported payment method: INVALID", resp.Message)
	})

	t.Run("bad: missing method and amount is 400", func(t *testing.T) {
		router := setupPaymentRouter(t, &memPaymentStore{})

		w := postJSON(t, router, "/api/payments/process", map[string]any{"name": "John"})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.PaymentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Payment method and amount are required", resp.Message)
	})

	t.Run("bad: malformed body is 400", func(t *testing.T) {
		router := setupPaymentRouter(t, &memPaymentStore{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/payments/process", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad: store failure is 500", func(t *testing.T) {
		router := setupPaymentRouter(t, &memPaymentStore{err: errors.New("connection refused")})

		w := postJSON(t, router, "/api/payments/process", dto.PaymentRequest{
			DestinationCountry: "IN",
			PaymentMethod:      "UPI",
			Amount:             f64(1000),
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestPaymentHandler_Gateways(t *testing.T) {
	router := setupPaymentRouter(t, &memPaymentStore{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/payments/gateways", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var methods []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &methods))
	assert.ElementsMatch(t, []string{"UPI", "CARD", "APPLE_PAY"}, methods)
}

func TestPaymentHandler_History(t *testing.T) {
	store := &memPaymentStore{}
	router := setupPaymentRouter(t, store)

	for i := 0; i < 2; i++ {
		w := postJSON(t, router, "/api/payments/process", dto.PaymentRequest{
			DestinationCountry: "IN",
			PaymentMethod:      "CARD",
			Amount:             f64(1000),
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/payments/history", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var payments []model.Payment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payments))
	require.Len(t, payments, 2)
	for _, p := range payments {
		require.NotNil(t, p.Status)
		assert.Equal(t, model.StatusSuccess, *p.Status)
		require.NotNil(t, p.Charges)
		require.NotNil(t, p.TotalAmount)
		assert.InDelta(t, p.Amount+*p.Charges, *p.TotalAmount, 1e-9)
		assert.WithinDuration(t, time.Now(), p.Timestamp, time.Minute)
	}
}
