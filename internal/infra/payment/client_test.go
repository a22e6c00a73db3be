//go:build unit

package payment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dormstay/internal/infra/payment"
	"dormstay/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chargeReq() commands.ChargeRequest {
	return commands.ChargeRequest{
		StudentID:   uuid.New(),
		AmountCents: 200000,
		Reference:   uuid.New().String(),
	}
}

func TestClientCharge(t *testing.T) {
	t.Run("approved charge returns the payment id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/charges", r.URL.Path)
			assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "USD", body["currency"])
			assert.Equal(t, float64(200000), body["amount_cents"])

			_ = json.NewEncoder(w).Encode(map[string]string{"id": "pay_123", "status": "approved"})
		}))
		defer srv.Close()

		client := payment.NewClient(srv.URL, "sk_test", 5*time.Second)
		result, err := client.Charge(context.Background(), chargeReq())
		require.NoError(t, err)
		assert.True(t, result.Approved)
		assert.Equal(t, "pay_123", result.PaymentID)
	})

	t.Run("402 is a decline, not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "declined", "decline_reason": "insufficient funds"})
		}))
		defer srv.Close()

		client := payment.NewClient(srv.URL, "sk_test", 5*time.Second)
		result, err := client.Charge(context.Background(), chargeReq())
		require.NoError(t, err)
		assert.False(t, result.Approved)
		assert.Equal(t, "insufficient funds", result.DeclineReason)
	})

	t.Run("non-approved status in a 200 body is a decline", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "requires_action"})
		}))
		defer srv.Close()

		client := payment.NewClient(srv.URL, "sk_test", 5*time.Second)
		result, err := client.Charge(context.Background(), chargeReq())
		require.NoError(t, err)
		assert.False(t, result.Approved)
	})

	t.Run("5xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := payment.NewClient(srv.URL, "sk_test", 5*time.Second)
		result, err := client.Charge(context.Background(), chargeReq())
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("unreachable provider is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		client := payment.NewClient(srv.URL, "sk_test", time.Second)
		_, err := client.Charge(context.Background(), chargeReq())
		assert.Error(t, err)
	})
}
