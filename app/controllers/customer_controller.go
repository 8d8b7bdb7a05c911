package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/danuarts/stylora-backend/app/models"
	"github.com/danuarts/stylora-backend/app/queries"
	"github.com/danuarts/stylora-backend/pkg/database"
	"github.com/danuarts/stylora-backend/pkg/utils"
)

// SetPreference replaces the customer's saved gender-affinity list, used as
// the implicit preference filter during discovery.
func SetPreference(c *fiber.Ctx) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	payload := &models.PreferenceRequest{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	customerQueries := queries.CustomerQueries{DB: database.DB}
	if err := customerQueries.UpdatePreference(customerID, payload.Preference); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Customer not found", "data": fiber.Map{}})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Preference updated", "preference": payload.Preference})
}

// AddAddress saves a new address for the customer. Flagging it active makes
// it the location every discovery request resolves against.
func AddAddress(c *fiber.Ctx) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	payload := &models.AddAddressRequest{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	address := &models.Address{
		ID:         uuid.New(),
		CustomerID: customerID,
		Address:    payload.Address,
		City:       payload.City,
		ZipCode:    payload.ZipCode,
		Lat:        payload.Lat,
		Lng:        payload.Lng,
		Active:     payload.Active,
		CreatedAt:  time.Now(),
	}

	customerQueries := queries.CustomerQueries{DB: database.DB}
	if err := customerQueries.AddAddress(address); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Address saved", "data": address})
}

// ActivateAddress switches the customer's active address to the given one.
func ActivateAddress(c *fiber.Ctx) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	addressID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid address id"})
	}

	customerQueries := queries.CustomerQueries{DB: database.DB}
	if err := customerQueries.ActivateAddress(customerID, addressID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Address not found", "data": fiber.Map{}})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Address activated"})
}

// ListFavourites returns the customer's favourited stylists.
func ListFavourites(c *fiber.Ctx) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	favouriteQueries := queries.FavouriteQueries{DB: database.DB}
	favourites, err := favouriteQueries.ListFavourites(customerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Favourites found", "data": favourites})
}
