package paymentRoutes

import (
	"crm/blacklist"
	paymentControllers "crm/controllers/payment"
	"crm/middleware"
	paymentValidators "crm/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App, store blacklist.Store) {
	paymentGroup := app.Group("/payments", middleware.JWT(store))

	paymentGroup.Post("/", paymentValidators.Record(), paymentControllers.Record)
	paymentGroup.Post("/charge", paymentValidators.Charge(), paymentControllers.Charge)
	paymentGroup.Get("/", paymentControllers.PaymentList)
	paymentGroup.Get("/user", paymentControllers.UserPaymentList)
	paymentGroup.Put("/update-payment-status/:id", paymentValidators.UpdateStatus(), paymentControllers.UpdateStatus)
	paymentGroup.Put("/details-accepted/:id", paymentValidators.DetailsAccepted(), paymentControllers.UpdateDetailsAccepted)
	paymentGroup.Get("/:transactionId", paymentControllers.PaymentDetails)
}
