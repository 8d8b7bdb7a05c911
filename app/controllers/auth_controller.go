package controllers

import (
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/danuarts/stylora-backend/app/models"
	"github.com/danuarts/stylora-backend/app/queries"
	"github.com/danuarts/stylora-backend/pkg/database"
	"github.com/danuarts/stylora-backend/pkg/utils"
)

var validate = validator.New()

const (
	RoleCustomer = "customer"
	RoleStylist  = "stylist"
)

// CustomerSignUp registers a customer account. Stylists are onboarded
// through the admin flow, not here.
func CustomerSignUp(c *fiber.Ctx) error {
	signUp := &models.SignUp{}
	if err := c.BodyParser(signUp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.Struct(signUp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	customerQueries := queries.CustomerQueries{DB: database.DB}
	if _, err := customerQueries.GetCustomerByEmail(signUp.Email); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already registered"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(signUp.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	customer := &models.Customer{
		ID:           uuid.New(),
		Email:        signUp.Email,
		Username:     signUp.Username,
		PhoneNumber:  signUp.Phone,
		Gender:       signUp.Gender,
		Preference:   []string{},
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := customerQueries.CreateCustomer(customer); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Account created", "id": customer.ID})
}

// SignIn authenticates a customer or a stylist by email and issues a JWT
// carrying user_id and user_role.
func SignIn(c *fiber.Ctx) error {
	signIn := &models.SignIn{}
	if err := c.BodyParser(signIn); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.Struct(signIn); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var (
		userID       uuid.UUID
		role         string
		passwordHash string
	)

	customerQueries := queries.CustomerQueries{DB: database.DB}
	customer, err := customerQueries.GetCustomerByEmail(signIn.Email)
	if err == nil {
		userID = customer.ID
		role = RoleCustomer
		passwordHash = customer.PasswordHash
	} else {
		stylistQueries := queries.StylistQueries{DB: database.DB}
		stylist, err := stylistQueries.GetStylistByEmail(signIn.Email)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
		}
		if stylist.RegistrationStatus != models.RegistrationAccepted {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Registration not accepted yet"})
		}
		userID = stylist.ID
		role = RoleStylist
		passwordHash = stylist.PasswordHash
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(signIn.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "JWT secret not set"})
	}

	claims := jwt.MapClaims{
		"user_id":   userID.String(),
		"user_role": role,
	}
	if minutesEnv := os.Getenv("ACCESS_TOKEN_MINUTES"); minutesEnv != "" {
		if minutes, err := strconv.Atoi(minutesEnv); err == nil && minutes > 0 {
			claims["exp"] = time.Now().Add(time.Duration(minutes) * time.Minute).Unix()
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"access_token": tokenString,
		"user_id":      userID,
		"user_role":    role,
	})
}

// currentUserID resolves the authenticated user from the request, shared by
// the protected handlers.
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	return utils.ExtractUserIDFromHeader(c.Get("Authorization"))
}
