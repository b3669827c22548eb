package adminController

import (
	"crm/config"
	"crm/database"
	"crm/middleware"
	"crm/models"
	"crm/utils"
	adminValidator "crm/validators/admin"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Register creates an admin account with a hashed password and mails the
// registration OTP. The OTP lives on the admin row and is overwritten by
// every later issuance.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAdminRegister").(*adminValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.AdminUser{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Admin already exists.", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error registering admin.", nil)
	}

	otp := utils.GenerateOTP()

	admin := models.AdminUser{
		Email:    reqData.Email,
		Password: string(hashedPassword),
		Otp:      otp,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error inserting admin: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error registering admin.", nil)
	}

	if err := utils.SendOTPEmail(otp, reqData.Email, "Admin Registration"); err != nil {
		log.Printf("Error sending OTP: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error sending OTP.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin registered and OTP sent.", nil)
}

// SendOtp reissues the admin login OTP after checking the password.
func SendOtp(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAdminSendOtp").(*adminValidator.SendOtpRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var admin models.AdminUser
	if err := db.Where("email = ?", reqData.Email).First(&admin).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Admin not found.", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid password.", nil)
	}

	otp := utils.GenerateOTP()

	if err := db.Model(&admin).Update("otp", otp).Error; err != nil {
		log.Printf("Error updating OTP: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error sending OTP.", nil)
	}

	if err := utils.SendOTPEmail(otp, reqData.Email, "Admin Login"); err != nil {
		log.Printf("Error sending OTP: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error sending OTP.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP sent successfully.", nil)
}

// Login checks password then OTP and mints a 3-hour ADMIN token. The three
// failure kinds map to distinct statuses: unknown admin 404, bad password
// 401, bad OTP 400.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAdminLogin").(*adminValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var admin models.AdminUser
	if err := db.Where("email = ?", reqData.Email).First(&admin).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Admin not found.", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid password.", nil)
	}

	if admin.Otp == "" || admin.Otp != reqData.Otp {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid OTP.", nil)
	}

	token, err := middleware.GenerateJWT(admin.ID, admin.Email, middleware.RoleAdmin)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin verified successfully.", fiber.Map{
		"token": token,
	})
}
