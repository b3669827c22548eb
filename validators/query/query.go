package queryValidator

import (
	"crm/middleware"
	"crm/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type CreateRequest struct {
	Title       string `json:"title"`
	QueryType   string `json:"query_type"`
	Description string `json:"description"`
}

type UpdateStatusRequest struct {
	QueryID     uint     `json:"queryId"`
	Status      string   `json:"status"`
	Amount      *float64 `json:"amount"`
	PaymentLink *string  `json:"payment_link"`
}

// Create validator middleware. A query_type outside the enum is rejected
// here and never persisted.
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}

		if reqData.QueryType == "" {
			errors["query_type"] = "Query type is required!"
		} else if !models.ValidQueryType(reqData.QueryType) {
			errors["query_type"] = "Invalid query type! Allowed: technical, service, other"
		}

		reqData.Description = strings.TrimSpace(reqData.Description)
		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQueryCreate", reqData)
		return c.Next()
	}
}

// UpdateStatus validator middleware. Transition-specific field rules live
// in the controller; this only rejects statuses outside the enum.
func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateStatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.QueryID == 0 {
			errors["queryId"] = "Query ID is required!"
		}
		if !models.ValidQueryStatus(reqData.Status) {
			errors["status"] = "Invalid status. Valid statuses are: new, in_progress, resolved."
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQueryUpdate", reqData)
		return c.Next()
	}
}
