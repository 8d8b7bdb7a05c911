package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/danuarts/stylora-backend/app/models"
	"github.com/danuarts/stylora-backend/app/queries"
	"github.com/danuarts/stylora-backend/pkg/database"
	"github.com/danuarts/stylora-backend/pkg/utils"
)

// Availability gate reasons returned by StylistDetail. These are expected
// business states, not faults, so the endpoint still answers 200.
const (
	ReasonBlockedByStylist  = "blocked_by_stylist"
	ReasonBlockedByCustomer = "blocked_by_customer"
	ReasonStylistBusy       = "stylist_busy"
)

// StylistDetail returns one stylist's profile, reputation aggregates and the
// availability gate resolved for the requesting customer.
func StylistDetail(c *fiber.Ctx) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	stylistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid stylist id"})
	}

	stylistQueries := queries.StylistQueries{DB: database.DB}
	detail, err := stylistQueries.GetStylistDetail(stylistID, customerID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Stylist not found", "data": fiber.Map{}})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	orderQueries := queries.OrderQueries{DB: database.DB}
	completed, err := orderQueries.CountCompletedOrders(stylistID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	detail.CompletedOrderCount = completed

	available, reason, err := resolveAvailability(customerID, stylistID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	detail.Available = available
	detail.Reason = reason

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Stylist found successfully.", "data": detail})
}

// resolveAvailability applies the single-stylist eligibility guards: either
// block direction or an active order hides the book action without failing
// the request.
func resolveAvailability(customerID, stylistID uuid.UUID) (bool, string, error) {
	stylistQueries := queries.StylistQueries{DB: database.DB}
	customerQueries := queries.CustomerQueries{DB: database.DB}
	orderQueries := queries.OrderQueries{DB: database.DB}

	blockedByStylist, err := stylistQueries.HasBlockedCustomer(stylistID, customerID)
	if err != nil {
		return false, "", err
	}
	if blockedByStylist {
		return false, ReasonBlockedByStylist, nil
	}

	blockedByCustomer, err := customerQueries.HasActiveBlock(customerID, stylistID)
	if err != nil {
		return false, "", err
	}
	if blockedByCustomer {
		return false, ReasonBlockedByCustomer, nil
	}

	busy, err := orderQueries.HasActiveOrder(stylistID)
	if err != nil {
		return false, "", err
	}
	if busy {
		return false, ReasonStylistBusy, nil
	}

	return true, "", nil
}

func FavouriteStylist(c *fiber.Ctx) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	stylistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid stylist id"})
	}

	favouriteQueries := queries.FavouriteQueries{DB: database.DB}
	if err := favouriteQueries.AddFavourite(customerID, stylistID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Stylist added to favourites"})
}

func UnfavouriteStylist(c *fiber.Ctx) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	stylistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid stylist id"})
	}

	favouriteQueries := queries.FavouriteQueries{DB: database.DB}
	if err := favouriteQueries.RemoveFavourite(customerID, stylistID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Stylist removed from favourites"})
}

func BlockStylist(c *fiber.Ctx) error {
	return setBlockStatus(c, models.BlockStatusActive, "Stylist blocked")
}

func UnblockStylist(c *fiber.Ctx) error {
	return setBlockStatus(c, models.BlockStatusInactive, "Stylist unblocked")
}

func setBlockStatus(c *fiber.Ctx, status, message string) error {
	customerID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	stylistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid stylist id"})
	}

	customerQueries := queries.CustomerQueries{DB: database.DB}
	if err := customerQueries.SetStylistBlock(customerID, stylistID, status); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": message})
}
