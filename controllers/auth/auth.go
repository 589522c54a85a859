package authController

import (
	"errors"
	"log"
	"time"

	"jumly/config"
	"jumly/middleware"
	"jumly/models"
	authValidator "jumly/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthController owns the email+password identity flow. Everything outside
// this package only reads the user table.
type AuthController struct {
	Db *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{Db: db}
}

// Signup registers a new user with a credential account
func (ctrl *AuthController) Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	// Check if email already exists
	if err := ctrl.Db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process signup")
	}

	newUser := models.User{
		ID:    uuid.NewString(),
		Name:  reqData.Name,
		Email: reqData.Email,
	}
	account := models.Account{
		ID:         uuid.NewString(),
		AccountID:  newUser.ID,
		ProviderID: "credential",
		UserID:     newUser.ID,
		Password:   string(hashedPassword),
	}

	// Create user and credential account together
	err = ctrl.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}
		return tx.Create(&account).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Email is already registered")
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(newUser)
}

// Login verifies credentials and opens a session
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var user models.User
	if err := ctrl.Db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	var account models.Account
	if err := ctrl.Db.Where("user_id = ? AND provider_id = ?", user.ID, "credential").First(&account).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	session := models.Session{
		ID:        uuid.NewString(),
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
		IPAddress: c.IP(),
		UserAgent: c.Get("User-Agent"),
		UserID:    user.ID,
	}
	if err := ctrl.Db.Create(&session).Error; err != nil {
		log.Printf("Error creating session: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Me returns the authenticated user's profile
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user models.User
	if err := ctrl.Db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(user)
}
