package utils

import (
	"context"
	"crm/config"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// The gateway round-trip is the only bounded external call in the system.
// A charge the gateway neither confirms nor declines within the budget is
// abandoned and reported as a timeout, never retried here. A variable so
// tests can shrink the budget.
var gatewayTimeout = 30 * time.Second

var (
	ErrGatewayTimeout = errors.New("payment processing timed out")
	ErrChargeDeclined = errors.New("charge declined by gateway")
)

// CardDetails is what the gateway needs to execute a charge.
type CardDetails struct {
	CardNumber     string `json:"cardNumber"`
	ExpirationDate string `json:"expirationDate"`
	CardCode       string `json:"cardCode"`
}

type chargeRequest struct {
	MerchantName   string      `json:"merchantName"`
	TransactionKey string      `json:"transactionKey"`
	RefID          string      `json:"refId"`
	Type           string      `json:"transactionType"`
	Amount         float64     `json:"amount"`
	Card           CardDetails `json:"payment"`
}

type chargeResponse struct {
	ResultCode    string `json:"resultCode"`
	TransactionID string `json:"transId"`
	Message       string `json:"message"`
}

// ChargeCard submits an auth-capture transaction to the configured gateway
// and returns the gateway transaction id. Declines and timeouts are
// distinguished so callers can map them to different outcomes.
func ChargeCard(amount float64, card CardDetails) (string, error) {
	client := resty.New().SetTimeout(gatewayTimeout)

	payload := chargeRequest{
		MerchantName:   config.AppConfig.GatewayLoginID,
		TransactionKey: config.AppConfig.GatewayTransKey,
		RefID:          uuid.NewString(),
		Type:           "authCaptureTransaction",
		Amount:         amount,
		Card:           card,
	}

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(config.AppConfig.GatewayURL)
	if err != nil {
		if isTimeout(err) {
			return "", ErrGatewayTimeout
		}
		return "", fmt.Errorf("gateway request failed: %w", err)
	}

	var result chargeResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("invalid gateway response: %w", err)
	}

	if resp.StatusCode() != 200 || result.ResultCode != "Ok" {
		if result.Message != "" {
			return "", fmt.Errorf("%w: %s", ErrChargeDeclined, result.Message)
		}
		return "", ErrChargeDeclined
	}

	return result.TransactionID, nil
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
