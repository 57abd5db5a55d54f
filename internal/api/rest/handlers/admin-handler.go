package handlers

import (
	"bytes"
	"fmt"

	"github.com/dedewo882/volunteer-platform-final/internal/api/rest/middleware"
	"github.com/dedewo882/volunteer-platform-final/internal/dto"
	"github.com/dedewo882/volunteer-platform-final/internal/helper"
	"github.com/dedewo882/volunteer-platform-final/internal/helper/utils"
	"github.com/dedewo882/volunteer-platform-final/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Spreadsheet uploads are capped well above any realistic roster size.
const maxUploadBytes = 10 << 20

type AdminHandler struct {
	catalogSvc      services.CatalogService
	registrationSvc services.RegistrationService
	importerSvc     services.ImporterService
	userSvc         services.UserService
	auth            helper.Auth
	validate        *validator.Validate
}

func NewAdminHandler(
	catalogSvc services.CatalogService,
	registrationSvc services.RegistrationService,
	importerSvc services.ImporterService,
	userSvc services.UserService,
	auth helper.Auth,
	validate *validator.Validate,
) *AdminHandler {
	return &AdminHandler{
		catalogSvc:      catalogSvc,
		registrationSvc: registrationSvc,
		importerSvc:     importerSvc,
		userSvc:         userSvc,
		auth:            auth,
		validate:        validate,
	}
}

func (h *AdminHandler) SetupRoutes(app *fiber.App) {
	admin := app.Group("/api/admin",
		middleware.AuthMiddleware(h.auth),
		middleware.AdminOnly(h.userSvc),
	)

	admin.Post("/activities", h.CreateActivity)
	admin.Put("/activities/:activityID", h.UpdateActivity)
	admin.Post("/activities/:activityID/sessions", h.AddSession)

	admin.Get("/tags", h.ListTags)
	admin.Post("/tags", h.CreateTag)
	admin.Post("/announcements", h.CreateAnnouncement)

	admin.Post("/registrations/status", h.BatchStatus)
	admin.Post("/registrations/hours", h.BatchHours)
	admin.Get("/activities/:activityID/registrations/export", h.ExportRegistrations)

	admin.Post("/imports/roster", h.ImportRoster)
	admin.Post("/activities/:activityID/imports/hours", h.ImportHours)
	admin.Post("/profiles/recompute-xp", h.RecomputeXP)
}

func (h *AdminHandler) CreateActivity(ctx *fiber.Ctx) error {
	var requestBody dto.CreateActivityRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	activity, err := h.catalogSvc.CreateActivity(requestBody)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, activity)
}

func (h *AdminHandler) UpdateActivity(ctx *fiber.Ctx) error {
	activityID, err := ctx.ParamsInt("activityID")
	if err != nil || activityID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "activity not found")
	}

	var requestBody dto.CreateActivityRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	if err := h.catalogSvc.UpdateActivity(uint(activityID), requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "activity updated")
}

func (h *AdminHandler) AddSession(ctx *fiber.Ctx) error {
	activityID, err := ctx.ParamsInt("activityID")
	if err != nil || activityID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "activity not found")
	}

	var requestBody dto.CreateSessionRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	session, err := h.catalogSvc.AddSession(uint(activityID), requestBody)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, session)
}

func (h *AdminHandler) ListTags(ctx *fiber.Ctx) error {
	tags, err := h.catalogSvc.ListTags()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "failed to list tags")
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, tags)
}

func (h *AdminHandler) CreateTag(ctx *fiber.Ctx) error {
	var requestBody dto.CreateTagRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	if err := h.catalogSvc.CreateTag(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, "tag created")
}

func (h *AdminHandler) CreateAnnouncement(ctx *fiber.Ctx) error {
	var requestBody dto.CreateAnnouncementRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	if err := h.catalogSvc.CreateAnnouncement(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, "announcement created")
}

func (h *AdminHandler) BatchStatus(ctx *fiber.Ctx) error {
	var requestBody dto.BatchStatusRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	updated, err := h.registrationSvc.SetStatus(requestBody)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"updated": updated})
}

func (h *AdminHandler) BatchHours(ctx *fiber.Ctx) error {
	var requestBody dto.BatchHoursRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	updated, err := h.registrationSvc.SetHours(requestBody)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"updated": updated})
}

func (h *AdminHandler) ExportRegistrations(ctx *fiber.Ctx) error {
	activityID, err := ctx.ParamsInt("activityID")
	if err != nil || activityID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "activity not found")
	}

	content, filename, err := h.registrationSvc.ExportByActivity(uint(activityID))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Send(content)
}

func (h *AdminHandler) ImportRoster(ctx *fiber.Ctx) error {
	content, err := h.uploadedFile(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	report, err := h.importerSvc.ImportRoster(bytes.NewReader(content))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, report)
}

func (h *AdminHandler) ImportHours(ctx *fiber.Ctx) error {
	activityID, err := ctx.ParamsInt("activityID")
	if err != nil || activityID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "activity not found")
	}

	content, err := h.uploadedFile(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	report, err := h.importerSvc.AwardHours(uint(activityID), bytes.NewReader(content))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, report)
}

func (h *AdminHandler) RecomputeXP(ctx *fiber.Ctx) error {
	var requestBody dto.RecomputeXPRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	updated, err := h.importerSvc.RecomputeXP(requestBody.ProfileIDs)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"updated": updated})
}

func (h *AdminHandler) uploadedFile(ctx *fiber.Ctx) ([]byte, error) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("spreadsheet file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file")
	}
	defer file.Close()

	return utils.ReadAllLimit(file, maxUploadBytes)
}
