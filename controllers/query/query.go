package queryController

import (
	"crm/database"
	"crm/middleware"
	"crm/models"
	queryValidator "crm/validators/query"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// AdminQueryRow is the admin listing shape: query fields joined with the
// owner's name and email. Amount and PaymentLink stay pointers so absent
// values serialize as explicit nulls.
type AdminQueryRow struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Title       string    `json:"title"`
	QueryType   string    `json:"query_type"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Amount      *float64  `json:"amount"`
	PaymentLink *string   `json:"payment_link"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
}

// Create opens a new ticket for the authenticated user. Status always
// starts at new; amount and payment_link are not settable at creation.
func Create(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedQueryCreate").(*queryValidator.CreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	query := models.Query{
		UserID:      userId,
		Title:       reqData.Title,
		QueryType:   reqData.QueryType,
		Description: reqData.Description,
		Status:      models.QueryStatusNew,
	}

	if err := database.Database.Db.Create(&query).Error; err != nil {
		log.Printf("Error creating query: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error creating query.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Query created successfully.", fiber.Map{
		"queryId": query.ID,
	})
}

// UserQueryList returns the authenticated user's own tickets, optionally
// filtered by a single status from the enum.
func UserQueryList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db.Where("user_id = ?", userId)

	if status := c.Params("status"); status != "" {
		if !models.ValidQueryStatus(status) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query status.", nil)
		}
		db = db.Where("status = ?", status)
	}

	var queries []models.Query
	if err := db.Order("created_at DESC").Find(&queries).Error; err != nil {
		log.Printf("Error fetching user queries: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching queries.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Queries fetched successfully.", queries)
}

// AdminQueryList returns every ticket joined with owner name/email,
// optionally filtered by status.
func AdminQueryList(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Query{}).
		Select("queries.id, queries.user_id, queries.title, queries.query_type, queries.description, queries.status, queries.amount, queries.payment_link, queries.created_at, users.name, users.email").
		Joins("JOIN users ON users.id = queries.user_id")

	if status := c.Params("status"); status != "" {
		if !models.ValidQueryStatus(status) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query status.", nil)
		}
		db = db.Where("queries.status = ?", status)
	}

	var rows []AdminQueryRow
	if err := db.Order("queries.created_at DESC").Scan(&rows).Error; err != nil {
		log.Printf("Error fetching all queries: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching queries.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Queries fetched successfully.", rows)
}

// UpdateStatus moves a ticket through the workflow. Moving to in_progress
// requires amount and payment_link together; moving to resolved takes no
// extra fields and leaves both untouched. Any other target is refused.
func UpdateStatus(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQueryUpdate").(*queryValidator.UpdateStatusRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	switch reqData.Status {
	case models.QueryStatusInProgress:
		if reqData.Amount == nil || *reqData.Amount <= 0 || reqData.PaymentLink == nil || *reqData.PaymentLink == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false,
				"Amount and payment link are required and must be valid when changing status to in_progress.", nil)
		}

		result := db.Model(&models.Query{}).Where("id = ?", reqData.QueryID).
			Updates(map[string]interface{}{
				"status":       models.QueryStatusInProgress,
				"amount":       *reqData.Amount,
				"payment_link": *reqData.PaymentLink,
			})
		if result.Error != nil {
			log.Printf("Error updating query status: %v", result.Error)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating query status.", nil)
		}
		if result.RowsAffected == 0 {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Query not found.", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true,
			"Query status, amount, and payment link updated successfully.", fiber.Map{
				"payment_link": *reqData.PaymentLink,
			})

	case models.QueryStatusResolved:
		result := db.Model(&models.Query{}).Where("id = ?", reqData.QueryID).
			Update("status", models.QueryStatusResolved)
		if result.Error != nil {
			log.Printf("Error updating query status: %v", result.Error)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating query status.", nil)
		}
		if result.RowsAffected == 0 {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Query not found.", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Query status updated to resolved successfully.", nil)

	default:
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false,
			"No additional action required for the selected status.", nil)
	}
}
