package utils

import "github.com/gofiber/fiber/v2"

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

func ResponseSuccess(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(fiber.Map{"data": data})
}

// ResponseReject reports a business-rule rejection (ineligible, full,
// duplicate). The request itself succeeded, so the status is 200 and the
// message rides in the error field, flash-message style.
func ResponseReject(ctx *fiber.Ctx, msg string) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"error": msg})
}
