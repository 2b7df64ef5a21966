package integrity

import (
	"player-enricher/core/logger"
	"player-enricher/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/uploads", h.HandleUploadsCheck)
	group.Get("/registry", h.HandleRegistryCheck)
	group.Get("/sink", h.HandleSinkCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Structure, Uploads, Registry, Sink).
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]any)

	if missing, err := h.service.CheckStructure(ctx); err != nil {
		report["structure"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["structure"] = map[string]any{"status": "ok", "missing": missing}
	}

	report["uploads"] = h.service.CheckUploads(ctx)
	report["registry"] = h.service.CheckRegistry(ctx)

	if sinkReport, err := h.service.CheckSink(); err != nil {
		report["sink"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["sink"] = sinkReport
	}

	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes structure.
// @Summary Check Structure
// @Description Checks if the upload and registry folders exist in the storage bucket. Optionally fixes missing folders.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := utils.ToBool(c.Query("fix"))

	missing, err := h.service.CheckStructure(c.Context())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix missing folders")
			if err := h.service.FixStructure(c.Context(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleUploadsCheck reports the latest ranking uploads.
// @Summary Check Ranking Uploads
// @Description Lists the upload each ranking format would be read from on the next run.
// @Tags integrity
// @Produce json
// @Success 200 {array} checks.UploadStatus "Upload Report"
// @Router /integrity/uploads [get]
func (h *Handler) HandleUploadsCheck(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckUploads(c.Context()))
}

// HandleRegistryCheck reports on the registry document.
// @Summary Check Registry
// @Description Verify that the registry document exists in the bucket and decodes.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.RegistryReport "Registry Report"
// @Router /integrity/registry [get]
func (h *Handler) HandleRegistryCheck(c *fiber.Ctx) error {
	report := h.service.CheckRegistry(c.Context())
	if report.Status != "ok" {
		logger.WithRayID(h.service.logger, c).Warn("Registry check failed",
			zap.String("status", report.Status), zap.String("error", report.Error))
	}
	return c.JSON(report)
}

// HandleSinkCheck checks the sink schema.
// @Summary Check Sink Schema
// @Description Checks if the player_values table matches the expected model.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.SchemaReport "Sink Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/sink [get]
func (h *Handler) HandleSinkCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting sink schema check")

	report, err := h.service.CheckSink()
	if err != nil {
		l.Error("Sink schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
