package handlers

import (
	"errors"

	"github.com/dedewo882/volunteer-platform-final/internal/api/rest/middleware"
	"github.com/dedewo882/volunteer-platform-final/internal/domain"
	"github.com/dedewo882/volunteer-platform-final/internal/dto"
	"github.com/dedewo882/volunteer-platform-final/internal/helper"
	"github.com/dedewo882/volunteer-platform-final/internal/helper/utils"
	"github.com/dedewo882/volunteer-platform-final/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type ActivityHandler struct {
	catalogSvc      services.CatalogService
	registrationSvc services.RegistrationService
	auth            helper.Auth
	validate        *validator.Validate
}

func NewActivityHandler(
	catalogSvc services.CatalogService,
	registrationSvc services.RegistrationService,
	auth helper.Auth,
	validate *validator.Validate,
) *ActivityHandler {
	return &ActivityHandler{
		catalogSvc:      catalogSvc,
		registrationSvc: registrationSvc,
		auth:            auth,
		validate:        validate,
	}
}

func (h *ActivityHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// The open-activity list is public, matching the read-only API the
	// frontend consumes before login.
	api.Get("/activities", h.ListActivities)

	authed := api.Group("/activities", middleware.AuthMiddleware(h.auth))
	authed.Get("/:activityID", h.GetActivity)
	authed.Post("/:activityID/register", h.Register)
}

func (h *ActivityHandler) ListActivities(ctx *fiber.Ctx) error {
	resp, err := h.catalogSvc.ListOpen(ctx.Query("q"))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "failed to list activities")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *ActivityHandler) GetActivity(ctx *fiber.Ctx) error {
	activityID, err := ctx.ParamsInt("activityID")
	if err != nil || activityID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "activity not found")
	}

	userID, _ := ctx.Locals("userID").(uint)

	resp, err := h.catalogSvc.GetActivity(uint(activityID), userID)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "activity not found")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *ActivityHandler) Register(ctx *fiber.Ctx) error {
	activityID, err := ctx.ParamsInt("activityID")
	if err != nil || activityID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "activity not found")
	}

	userID, ok := ctx.Locals("userID").(uint)
	if !ok || userID == 0 {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var requestBody dto.RegisterRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	reg, err := h.registrationSvc.Submit(userID, uint(activityID), requestBody)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyRegistered),
			errors.Is(err, domain.ErrActivityFull),
			errors.Is(err, domain.ErrNotEligible),
			errors.Is(err, domain.ErrSessionFull):
			return utils.ResponseReject(ctx, err.Error())
		default:
			return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
		}
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, reg)
}
