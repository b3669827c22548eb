package paymentController

import (
	"crm/database"
	"crm/middleware"
	"crm/models"
	"crm/utils"
	paymentValidator "crm/validators/payment"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Record persists an externally confirmed payment outcome. The charge
// itself happened elsewhere; this layer only stores the result.
func Record(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPaymentRecord").(*paymentValidator.RecordRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	payment := models.Payment{
		UserID:                 reqData.UserID,
		Name:                   reqData.Name,
		AmountPaid:             *reqData.AmountPaid,
		TransactionID:          reqData.TransactionID,
		Status:                 reqData.Status,
		PaymentDate:            reqData.PaymentDate,
		Signature:              reqData.Signature,
		TermsAccepted:          reqData.TermsAccepted,
		PaymentDetailsAccepted: reqData.PaymentDetailsAccepted,
	}

	if err := database.Database.Db.Create(&payment).Error; err != nil {
		log.Printf("Error saving payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error saving payment.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment recorded successfully.", fiber.Map{
		"paymentId": payment.ID,
	})
}

// Charge submits a card charge to the gateway and records the outcome on
// success. A gateway decline and a gateway timeout are different failures:
// the former is definitive, the latter leaves the charge state unknown and
// must not be blindly retried.
func Charge(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCharge").(*paymentValidator.ChargeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	transactionID, err := utils.ChargeCard(reqData.Amount, utils.CardDetails{
		CardNumber:     reqData.CardNumber,
		ExpirationDate: reqData.ExpirationDate,
		CardCode:       reqData.CardCode,
	})
	if err != nil {
		if errors.Is(err, utils.ErrGatewayTimeout) {
			return middleware.JsonResponse(c, fiber.StatusGatewayTimeout, false, "Payment processing timed out.", nil)
		}
		if errors.Is(err, utils.ErrChargeDeclined) {
			return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false, "Payment failed: "+err.Error(), nil)
		}
		log.Printf("Error during payment processing: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment processing failed.", nil)
	}

	payment := models.Payment{
		UserID:        userId,
		Name:          reqData.Name,
		AmountPaid:    reqData.Amount,
		TransactionID: transactionID,
		Status:        models.PaymentStatusSuccess,
		PaymentDate:   time.Now().Format("2006-01-02"),
	}

	if err := database.Database.Db.Create(&payment).Error; err != nil {
		log.Printf("Error saving payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error saving payment.", nil)
	}

	if err := utils.SendPaymentConfirmationEmail(reqData.Email, reqData.Amount, transactionID); err != nil {
		log.Printf("Error sending payment confirmation: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment successful, but failed to send email.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment processed successfully.", fiber.Map{
		"transactionId": transactionID,
	})
}

// UserPaymentList returns the authenticated user's payments. An empty list
// is a valid outcome, not an error.
func UserPaymentList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var payments []models.Payment
	if err := database.Database.Db.Where("user_id = ?", userId).Find(&payments).Error; err != nil {
		log.Printf("Error fetching payments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching payments.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully.", payments)
}

// PaymentList returns every payment (admin view).
func PaymentList(c *fiber.Ctx) error {
	var payments []models.Payment
	if err := database.Database.Db.Find(&payments).Error; err != nil {
		log.Printf("Error fetching all payments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching payments.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully.", payments)
}

// PaymentDetails returns a single payment by gateway transaction id.
func PaymentDetails(c *fiber.Ctx) error {
	transactionID := c.Params("transactionId")

	var payment models.Payment
	if err := database.Database.Db.Where("transaction_id = ?", transactionID).First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment details fetched successfully.", payment)
}

// UpdateStatus sets a payment's status to one of the enumerated values.
func UpdateStatus(c *fiber.Ctx) error {
	paymentID, err := c.ParamsInt("id")
	if err != nil || paymentID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payment ID.", nil)
	}

	reqData, ok := c.Locals("validatedPaymentStatus").(*paymentValidator.UpdateStatusRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result := database.Database.Db.Model(&models.Payment{}).
		Where("id = ?", paymentID).
		Update("status", reqData.Status)
	if result.Error != nil {
		log.Printf("Error updating payment status: %v", result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating payment status.", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment status updated successfully.", nil)
}

// UpdateDetailsAccepted flips the acceptance flag on a payment.
func UpdateDetailsAccepted(c *fiber.Ctx) error {
	paymentID, err := c.ParamsInt("id")
	if err != nil || paymentID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payment ID.", nil)
	}

	reqData, ok := c.Locals("validatedDetailsAccepted").(*paymentValidator.DetailsAcceptedRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result := database.Database.Db.Model(&models.Payment{}).
		Where("id = ?", paymentID).
		Update("payment_details_accepted", *reqData.PaymentDetailsAccepted)
	if result.Error != nil {
		log.Printf("Error updating payment: %v", result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating payment.", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment updated successfully.", nil)
}
