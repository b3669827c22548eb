package paymentValidator

import (
	"crm/middleware"
	"crm/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type RecordRequest struct {
	UserID                 uint     `json:"user_id"`
	Name                   string   `json:"name"`
	AmountPaid             *float64 `json:"amount_paid"`
	TransactionID          string   `json:"transaction_id"`
	Status                 string   `json:"status"`
	PaymentDate            string   `json:"payment_date"`
	Signature              string   `json:"signature"`
	TermsAccepted          bool     `json:"terms_accepted"`
	PaymentDetailsAccepted bool     `json:"payment_details_accepted"`
}

type ChargeRequest struct {
	Amount         float64 `json:"amount"`
	CardNumber     string  `json:"cardNumber"`
	ExpirationDate string  `json:"expirationDate"`
	CardCode       string  `json:"cardCode"`
	Email          string  `json:"email"`
	Name           string  `json:"name"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type DetailsAcceptedRequest struct {
	PaymentDetailsAccepted *bool `json:"payment_details_accepted"`
}

// Record validator middleware. Every mandatory field is checked before
// anything touches storage.
func Record() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RecordRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["user_id"] = "User ID is required!"
		}
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.AmountPaid == nil || *reqData.AmountPaid <= 0 {
			errors["amount_paid"] = "Amount paid is required and must be greater than 0!"
		}
		if strings.TrimSpace(reqData.TransactionID) == "" {
			errors["transaction_id"] = "Transaction ID is required!"
		}
		if reqData.Status == "" {
			errors["status"] = "Status is required!"
		} else if !models.ValidPaymentStatus(reqData.Status) {
			errors["status"] = "Invalid status! Allowed: Success, Pending, Failed"
		}
		if strings.TrimSpace(reqData.PaymentDate) == "" {
			errors["payment_date"] = "Payment date is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPaymentRecord", reqData)
		return c.Next()
	}
}

// Charge validator middleware
func Charge() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ChargeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}
		if reqData.CardNumber == "" {
			errors["cardNumber"] = "Card number is required!"
		}
		if reqData.ExpirationDate == "" {
			errors["expirationDate"] = "Expiration date is required!"
		}
		if reqData.CardCode == "" {
			errors["cardCode"] = "Card code is required!"
		}
		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCharge", reqData)
		return c.Next()
	}
}

// UpdateStatus validator middleware
func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateStatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !models.ValidPaymentStatus(reqData.Status) {
			errors["status"] = "Invalid status! Allowed: Success, Pending, Failed"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPaymentStatus", reqData)
		return c.Next()
	}
}

// DetailsAccepted validator middleware
func DetailsAccepted() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(DetailsAcceptedRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.PaymentDetailsAccepted == nil {
			errors["payment_details_accepted"] = "payment_details_accepted is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDetailsAccepted", reqData)
		return c.Next()
	}
}
