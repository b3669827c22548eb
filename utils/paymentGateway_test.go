package utils

import (
	"crm/config"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatewayConfig(url string) {
	config.AppConfig = &config.Config{
		GatewayURL:      url,
		GatewayLoginID:  "merchant-login",
		GatewayTransKey: "merchant-key",
	}
}

func TestChargeCardSuccess(t *testing.T) {
	var received chargeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(chargeResponse{ResultCode: "Ok", TransactionID: "txn-1001"})
	}))
	defer server.Close()
	gatewayConfig(server.URL)

	transactionID, err := ChargeCard(149.50, CardDetails{
		CardNumber:     "4111111111111111",
		ExpirationDate: "2030-12",
		CardCode:       "123",
	})

	require.NoError(t, err)
	assert.Equal(t, "txn-1001", transactionID)
	assert.Equal(t, "merchant-login", received.MerchantName)
	assert.Equal(t, "merchant-key", received.TransactionKey)
	assert.Equal(t, "authCaptureTransaction", received.Type)
	assert.Equal(t, 149.50, received.Amount)
	assert.NotEmpty(t, received.RefID)
}

func TestChargeCardDeclined(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chargeResponse{ResultCode: "Error", Message: "insufficient funds"})
	}))
	defer server.Close()
	gatewayConfig(server.URL)

	_, err := ChargeCard(10, CardDetails{CardNumber: "4111111111111111", ExpirationDate: "2030-12", CardCode: "123"})

	assert.ErrorIs(t, err, ErrChargeDeclined)
	assert.Contains(t, err.Error(), "insufficient funds")
}

func TestChargeCardDeclinedOnHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(chargeResponse{ResultCode: "Error"})
	}))
	defer server.Close()
	gatewayConfig(server.URL)

	_, err := ChargeCard(10, CardDetails{CardNumber: "4111111111111111", ExpirationDate: "2030-12", CardCode: "123"})

	assert.ErrorIs(t, err, ErrChargeDeclined)
}

func TestChargeCardTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		json.NewEncoder(w).Encode(chargeResponse{ResultCode: "Ok", TransactionID: "too-late"})
	}))
	defer server.Close()
	gatewayConfig(server.URL)

	original := gatewayTimeout
	gatewayTimeout = 50 * time.Millisecond
	defer func() { gatewayTimeout = original }()

	_, err := ChargeCard(10, CardDetails{CardNumber: "4111111111111111", ExpirationDate: "2030-12", CardCode: "123"})

	assert.ErrorIs(t, err, ErrGatewayTimeout)
}
