package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// statusFor maps an error to its HTTP status code.
func statusFor(err error) int {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, errors.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, errors.ErrGameOver):
		return fiber.StatusConflict
	case errors.Is(err, errors.ErrCorruptRecord):
		return fiber.StatusInternalServerError
	case errors.Is(err, errors.ErrWrongTurn),
		errors.Is(err, errors.ErrEmptySquare),
		errors.Is(err, errors.ErrIllegalMove):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, errors.ErrInvalidNotation),
		errors.Is(err, errors.ErrInvalidPosition),
		errors.Is(err, errors.ErrInvalidFEN):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// errorHandler renders every handler error as {"error": message}.
func errorHandler(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
