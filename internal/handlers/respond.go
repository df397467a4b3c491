package handlers

import "github.com/gofiber/fiber/v2"

// Every endpoint answers with the same body shape and HTTP 200; success or
// failure is conveyed only in the body.

func fail(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"success": false, "message": message})
}

func ok(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true})
}

func okMsg(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"success": true, "message": message})
}
