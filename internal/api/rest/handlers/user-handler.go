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

type UserHandler struct {
	svc      services.UserService
	auth     helper.Auth
	validate *validator.Validate
}

func NewUserHandler(svc services.UserService, auth helper.Auth, validate *validator.Validate) *UserHandler {
	return &UserHandler{svc: svc, auth: auth, validate: validate}
}

func (h *UserHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", h.Login)
	auth.Post("/refresh", h.Refresh)

	profile := api.Group("/profile", middleware.AuthMiddleware(h.auth))
	profile.Get("/", h.MyProfile)
	profile.Put("/", h.UpdateProfile)
	profile.Get("/registrations", h.MyRegistrations)
}

func (h *UserHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.LoginRequest

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "student id and password are required")
	}
	if err := h.validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "student id and password are required")
	}

	tokens, err := h.svc.Login(ctx.UserContext(), requestBody, ctx.IP())
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, tokens)
}

func (h *UserHandler) Refresh(ctx *fiber.Ctx) error {
	var requestBody dto.RefreshRequest

	if err := ctx.BodyParser(&requestBody); err != nil || requestBody.RefreshToken == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "refresh token is required")
	}

	tokens, err := h.svc.Refresh(requestBody.RefreshToken)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, tokens)
}

func (h *UserHandler) MyProfile(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals("userID").(uint)
	if !ok || userID == 0 {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, err := h.svc.GetProfile(userID)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, profile)
}

func (h *UserHandler) UpdateProfile(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals("userID").(uint)
	if !ok || userID == 0 {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var requestBody dto.UpdateProfileRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	if err := h.svc.UpdateProfile(userID, requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "profile updated")
}

func (h *UserHandler) MyRegistrations(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals("userID").(uint)
	if !ok || userID == 0 {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	regs, err := h.svc.MyRegistrations(userID)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, regs)
}
