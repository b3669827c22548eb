package queryController_test

import (
	"bytes"
	"crm/blacklist"
	"crm/config"
	"crm/database"
	"crm/middleware"
	"crm/models"
	"crm/routers/queryRoutes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testEnv struct {
	app        *fiber.App
	user       models.User
	userToken  string
	adminToken string
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	user := models.User{Name: "Query User", Email: "query-user@example.com"}
	require.NoError(t, db.Create(&user).Error)

	userToken, err := middleware.GenerateJWT(user.ID, user.Email, middleware.RoleUser)
	require.NoError(t, err)
	adminToken, err := middleware.GenerateJWT(1, "admin@example.com", middleware.RoleAdmin)
	require.NoError(t, err)

	app := fiber.New()
	queryRoutes.SetupQueryRoutes(app, blacklist.NewMemoryStore())

	return &testEnv{app: app, user: user, userToken: userToken, adminToken: adminToken}
}

func request(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (*http.Response, apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func seedQuery(t *testing.T, userID uint, status string) models.Query {
	t.Helper()

	query := models.Query{
		UserID:      userID,
		Title:       "Seeded query",
		QueryType:   models.QueryTypeTechnical,
		Description: "Something is broken.",
		Status:      status,
	}
	require.NoError(t, database.Database.Db.Create(&query).Error)
	return query
}

func TestCreateQuery(t *testing.T) {
	env := setupEnv(t)

	resp, body := request(t, env.app, "POST", "/queries/create", fiber.Map{
		"title":       "Billing question",
		"query_type":  "service",
		"description": "Where is my invoice?",
	}, env.userToken)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var data struct {
		QueryID uint `json:"queryId"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))

	var stored models.Query
	require.NoError(t, database.Database.Db.First(&stored, data.QueryID).Error)
	assert.Equal(t, models.QueryStatusNew, stored.Status)
	assert.Equal(t, env.user.ID, stored.UserID)
	assert.Nil(t, stored.Amount)
	assert.Nil(t, stored.PaymentLink)
}

func TestCreateQueryRejectsUnknownType(t *testing.T) {
	env := setupEnv(t)

	resp, _ := request(t, env.app, "POST", "/queries/create", fiber.Map{
		"title":       "Bad type",
		"query_type":  "billing",
		"description": "Should never be stored.",
	}, env.userToken)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Query{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestUserQueryListFiltersByStatus(t *testing.T) {
	env := setupEnv(t)

	seedQuery(t, env.user.ID, models.QueryStatusNew)
	seedQuery(t, env.user.ID, models.QueryStatusResolved)

	resp, body := request(t, env.app, "GET", "/queries/user/new", nil, env.userToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var queries []models.Query
	require.NoError(t, json.Unmarshal(body.Data, &queries))
	require.Len(t, queries, 1)
	assert.Equal(t, models.QueryStatusNew, queries[0].Status)

	resp, body = request(t, env.app, "GET", "/queries/user", nil, env.userToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body.Data, &queries))
	assert.Len(t, queries, 2)
}

func TestUserQueryListRejectsUnknownStatus(t *testing.T) {
	env := setupEnv(t)

	resp, body := request(t, env.app, "GET", "/queries/user/archived", nil, env.userToken)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid query status.", body.Message)
}

func TestAdminQueryListJoinsOwner(t *testing.T) {
	env := setupEnv(t)

	seedQuery(t, env.user.ID, models.QueryStatusNew)

	resp, body := request(t, env.app, "GET", "/queries/admin/", nil, env.adminToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var rows []struct {
		ID     uint   `json:"id"`
		UserID uint   `json:"user_id"`
		Name   string `json:"name"`
		Email  string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, env.user.Name, rows[0].Name)
	assert.Equal(t, env.user.Email, rows[0].Email)
}

func TestAdminQueryListForbiddenForUsers(t *testing.T) {
	env := setupEnv(t)

	resp, _ := request(t, env.app, "GET", "/queries/admin/", nil, env.userToken)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestUpdateStatusInProgress(t *testing.T) {
	env := setupEnv(t)
	query := seedQuery(t, env.user.ID, models.QueryStatusNew)

	resp, _ := request(t, env.app, "PUT", "/queries/admin/update-status", fiber.Map{
		"queryId":      query.ID,
		"status":       "in_progress",
		"amount":       250.0,
		"payment_link": "https://pay.example.com/abc",
	}, env.adminToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stored models.Query
	require.NoError(t, database.Database.Db.First(&stored, query.ID).Error)
	assert.Equal(t, models.QueryStatusInProgress, stored.Status)
	require.NotNil(t, stored.Amount)
	assert.Equal(t, 250.0, *stored.Amount)
	require.NotNil(t, stored.PaymentLink)
	assert.Equal(t, "https://pay.example.com/abc", *stored.PaymentLink)
}

func TestUpdateStatusInProgressRequiresAmountAndLink(t *testing.T) {
	env := setupEnv(t)
	query := seedQuery(t, env.user.ID, models.QueryStatusNew)

	cases := []fiber.Map{
		{"queryId": query.ID, "status": "in_progress"},
		{"queryId": query.ID, "status": "in_progress", "amount": 100.0},
		{"queryId": query.ID, "status": "in_progress", "payment_link": "https://pay.example.com/x"},
		{"queryId": query.ID, "status": "in_progress", "amount": 0.0, "payment_link": "https://pay.example.com/x"},
		{"queryId": query.ID, "status": "in_progress", "amount": 100.0, "payment_link": ""},
	}

	for _, payload := range cases {
		resp, _ := request(t, env.app, "PUT", "/queries/admin/update-status", payload, env.adminToken)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	}

	// None of the rejected requests touched the row.
	var stored models.Query
	require.NoError(t, database.Database.Db.First(&stored, query.ID).Error)
	assert.Equal(t, models.QueryStatusNew, stored.Status)
	assert.Nil(t, stored.Amount)
	assert.Nil(t, stored.PaymentLink)
}

func TestUpdateStatusResolvedRetainsPaymentFields(t *testing.T) {
	env := setupEnv(t)

	amount := 99.0
	link := "https://pay.example.com/keep"
	query := models.Query{
		UserID:      env.user.ID,
		Title:       "In flight",
		QueryType:   models.QueryTypeOther,
		Description: "Already being worked.",
		Status:      models.QueryStatusInProgress,
		Amount:      &amount,
		PaymentLink: &link,
	}
	require.NoError(t, database.Database.Db.Create(&query).Error)

	resp, _ := request(t, env.app, "PUT", "/queries/admin/update-status", fiber.Map{
		"queryId": query.ID,
		"status":  "resolved",
	}, env.adminToken)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stored models.Query
	require.NoError(t, database.Database.Db.First(&stored, query.ID).Error)
	assert.Equal(t, models.QueryStatusResolved, stored.Status)
	require.NotNil(t, stored.Amount)
	assert.Equal(t, amount, *stored.Amount)
	require.NotNil(t, stored.PaymentLink)
	assert.Equal(t, link, *stored.PaymentLink)
}

func TestUpdateStatusBackToNewRefused(t *testing.T) {
	env := setupEnv(t)
	query := seedQuery(t, env.user.ID, models.QueryStatusResolved)

	resp, body := request(t, env.app, "PUT", "/queries/admin/update-status", fiber.Map{
		"queryId": query.ID,
		"status":  "new",
	}, env.adminToken)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No additional action required for the selected status.", body.Message)
}

func TestUpdateStatusUnknownQuery(t *testing.T) {
	env := setupEnv(t)

	resp, _ := request(t, env.app, "PUT", "/queries/admin/update-status", fiber.Map{
		"queryId":      99999,
		"status":       "in_progress",
		"amount":       10.0,
		"payment_link": "https://pay.example.com/none",
	}, env.adminToken)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = request(t, env.app, "PUT", "/queries/admin/update-status", fiber.Map{
		"queryId": 99999,
		"status":  "resolved",
	}, env.adminToken)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateStatusUnknownStatusValue(t *testing.T) {
	env := setupEnv(t)
	query := seedQuery(t, env.user.ID, models.QueryStatusNew)

	resp, _ := request(t, env.app, "PUT", "/queries/admin/update-status", fiber.Map{
		"queryId": query.ID,
		"status":  "closed",
	}, env.adminToken)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
