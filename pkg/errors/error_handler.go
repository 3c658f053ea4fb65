package errors

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// HandleError maps the tagged error union to distinct status codes.
// Only Code + Message reach the client; the wrapped cause is logged.
func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	if ae, ok := err.(*AppError); ok {
		if ae.Err != nil {
			logrus.WithField("code", ae.Code).WithError(ae.Err).Error("request failed")
		}

		var status int
		switch ae.Code {
		case CodeUnauthorized:
			status = fiber.StatusUnauthorized
		case CodeBadRequest:
			status = fiber.StatusBadRequest
		case CodeNotFound:
			status = fiber.StatusNotFound
		case CodeUpstream:
			status = fiber.StatusBadGateway
		default:
			status = fiber.StatusInternalServerError
		}

		return c.Status(status).JSON(fiber.Map{
			"error":   ae.Code,
			"message": ae.Message,
		})
	}

	logrus.WithError(err).Error("unexpected error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   CodeInternal,
		"message": "internal server error",
	})
}
