package authController

import (
	"crm/blacklist"
	"crm/database"
	"crm/middleware"
	"crm/models"
	"crm/utils"
	authValidator "crm/validators/auth"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Register creates an end-user account and mails a registration OTP.
// The OTP row is persisted before the send; a failed send leaves the code
// redeemable, which is surfaced to the caller as a failure anyway.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already registered.", nil)
	}

	newUser := models.User{
		Name:          reqData.Name,
		Email:         reqData.Email,
		Location:      reqData.Location,
		Address:       reqData.Address,
		ContactNumber: reqData.ContactNumber,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error registering user.", nil)
	}

	otp := utils.GenerateOTP()

	otpRecord := models.OTP{
		UserID: newUser.ID,
		Code:   otp,
	}

	if err := db.Create(&otpRecord).Error; err != nil {
		log.Printf("Error inserting OTP: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error generating OTP.", nil)
	}

	if err := utils.SendOTPEmail(otp, reqData.Email, "Registration"); err != nil {
		log.Printf("Error sending OTP: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error sending OTP.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP sent successfully to your email.", fiber.Map{
		"user_id": newUser.ID,
	})
}

// GenerateLoginOtp issues a fresh login OTP for an existing user. Codes
// issued earlier stay valid; verification matches the exact pair.
func GenerateLoginOtp(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGenerateOtp").(*authValidator.GenerateLoginOtpRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found.", nil)
	}

	otp := utils.GenerateOTP()

	otpRecord := models.OTP{
		UserID: user.ID,
		Code:   otp,
	}

	if err := db.Create(&otpRecord).Error; err != nil {
		log.Printf("Error inserting OTP: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error generating OTP.", nil)
	}

	if err := utils.SendOTPEmail(otp, reqData.Email, "Login"); err != nil {
		log.Printf("Error sending OTP: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error sending OTP.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP sent successfully to your email.", nil)
}

// Login verifies an issued OTP and mints a USER session token. All of the
// user's outstanding OTPs are consumed on success.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid OTP.", nil)
	}

	var otpRecord models.OTP
	if err := db.Where("user_id = ? AND code = ?", user.ID, reqData.Otp).First(&otpRecord).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid OTP.", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Email, middleware.RoleUser)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	// Consume every outstanding code for this user. Failure here does not
	// fail the login; the pruning job will catch leftovers.
	if err := db.Unscoped().Where("user_id = ?", user.ID).Delete(&models.OTP{}).Error; err != nil {
		log.Printf("Error deleting OTP: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token":   token,
		"user_id": user.ID,
	})
}

// Logout revokes the presented token. Revoking twice is a no-op.
func Logout(store blacklist.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := middleware.BearerToken(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "No token provided.", nil)
		}

		if err := store.Add(c.UserContext(), tokenString); err != nil {
			log.Printf("Error blacklisting token: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Logout successful.", nil)
	}
}
