package handlers

import (
	"github.com/dedewo882/volunteer-platform-final/internal/api/rest/middleware"
	"github.com/dedewo882/volunteer-platform-final/internal/dto"
	"github.com/dedewo882/volunteer-platform-final/internal/helper"
	"github.com/dedewo882/volunteer-platform-final/internal/helper/utils"
	"github.com/dedewo882/volunteer-platform-final/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type MessageHandler struct {
	svc      services.MessageService
	auth     helper.Auth
	validate *validator.Validate
}

func NewMessageHandler(svc services.MessageService, auth helper.Auth, validate *validator.Validate) *MessageHandler {
	return &MessageHandler{svc: svc, auth: auth, validate: validate}
}

func (h *MessageHandler) SetupRoutes(app *fiber.App) {
	messages := app.Group("/api/messages", middleware.AuthMiddleware(h.auth))
	messages.Get("/", h.ListWall)
	messages.Post("/", h.Post)
}

func (h *MessageHandler) ListWall(ctx *fiber.Ctx) error {
	msgs, err := h.svc.ListWall()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "failed to load message wall")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, msgs)
}

func (h *MessageHandler) Post(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals("userID").(uint)
	if !ok || userID == 0 {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var requestBody dto.PostMessageRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	msg, err := h.svc.Post(userID, requestBody)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, msg)
}
