package players

import (
	"errors"
	"strconv"

	"player-enricher/core/logger"
	"player-enricher/core/reconcile"
	"player-enricher/core/sheet"
	"player-enricher/core/utils"
	"player-enricher/feature/players/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// Handler handles HTTP requests for players and pipeline runs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the players, pipeline and upload routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/players")
	group.Get("/", h.HandleListPlayers)
	group.Post("/batch", h.HandleGetPlayers)
	group.Get("/:id", h.HandleGetPlayer)

	app.Post("/pipeline/run", h.HandleRunPipeline)
	app.Post("/uploads/:format", h.HandleUpload)
}

// HandleListPlayers returns a page of master records.
// @Summary List Players
// @Description Page through stored master records ordered by Sleeper id.
// @Tags players
// @Produce json
// @Param limit query int false "Page size (max 500)" default(50)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {object} models.PlayerPage "Player page"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]string "Database unavailable"
// @Router /players [get]
func (h *Handler) HandleListPlayers(c *fiber.Ctx) error {
	limit, err := queryInt(c, "limit", defaultPageSize)
	if err != nil || limit < 1 || limit > maxPageSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must be between 1 and 500"})
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil || offset < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "offset must be a non-negative integer"})
	}

	page, err := h.service.ListPlayers(c.Context(), limit, offset)
	if err != nil {
		return h.fail(c, "List players failed", err)
	}
	return c.JSON(page)
}

// HandleGetPlayer returns one master record.
// @Summary Get Player
// @Description Get the stored master record of a player.
// @Tags players
// @Produce json
// @Param id path string true "Sleeper player id (e.g. '4046')"
// @Success 200 {object} models.Player "Player"
// @Failure 404 {object} map[string]string "Player not found"
// @Failure 503 {object} map[string]string "Database unavailable"
// @Router /players/{id} [get]
func (h *Handler) HandleGetPlayer(c *fiber.Ctx) error {
	player, err := h.service.GetPlayer(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Get player failed", err)
	}
	return c.JSON(player)
}

// HandleGetPlayers returns the master records of several players.
// @Summary Get Players
// @Description Get stored master records for a list of Sleeper ids. Unknown ids are left out.
// @Tags players
// @Accept json
// @Produce json
// @Param request body models.BatchRequest true "Ids to look up"
// @Success 200 {array} models.Player "Players"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]string "Database unavailable"
// @Router /players/batch [post]
func (h *Handler) HandleGetPlayers(c *fiber.Ctx) error {
	var req models.BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.SleeperIDs == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "sleeper_ids is required"})
	}
	if len(req.SleeperIDs) == 0 {
		return c.JSON([]models.Player{})
	}

	players, err := h.service.GetPlayers(c.Context(), req.SleeperIDs)
	if err != nil {
		return h.fail(c, "Get players failed", err)
	}
	return c.JSON(players)
}

// HandleRunPipeline runs the pipeline.
// @Summary Run Pipeline
// @Description Fetch valuations, merge the latest ranking uploads into the registry and upsert the result. Concurrent requests with the same mode and dry_run share one run.
// @Tags pipeline
// @Produce json
// @Param mode query string false "Join mode (inner, left)"
// @Param dry_run query bool false "Build the plan without writing"
// @Success 200 {object} RunResult "Run result"
// @Success 207 {object} RunResult "Some sink chunks failed"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /pipeline/run [post]
func (h *Handler) HandleRunPipeline(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	opts := RunOptions{
		Mode:   c.Query("mode"),
		DryRun: utils.ToBool(c.Query("dry_run")),
	}

	result, shared, err := h.service.RunShared(c.Context(), opts)
	if shared {
		l.Info("Joined pipeline run in flight", zap.String("mode", opts.Mode), zap.Bool("dry_run", opts.DryRun))
	}

	switch {
	case err == nil:
		return c.JSON(result)
	case errors.Is(err, ErrPartialWrite) && result != nil:
		return c.Status(fiber.StatusMultiStatus).JSON(result)
	case errors.Is(err, reconcile.ErrInvalidJoinMode), errors.Is(err, ErrUnknownFormat):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	l.Error("Pipeline run failed", zap.String("stage", FailedStage(err)), zap.Error(err))
	status := fiber.StatusInternalServerError
	switch FailedStage(err) {
	case StageValuation, StageRegistry:
		status = fiber.StatusBadGateway
	}
	if errors.Is(err, ErrNoDatabase) {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
		"stage": FailedStage(err),
	})
}

// HandleUpload stores a ranking spreadsheet.
// @Summary Upload Rankings
// @Description Store a ranking spreadsheet (.xlsx or .csv) as the newest upload of a format.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param format path string true "Ranking format (superflex, one_qb_dynasty, redraft)"
// @Param file formData file true "Spreadsheet"
// @Success 201 {object} UploadResult "Stored upload"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 415 {object} map[string]string "Unsupported file type"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /uploads/{format} [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing file"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unreadable file"})
	}
	defer f.Close()

	result, err := h.service.Upload(c.Context(), c.Params("format"), fh.Filename, f, fh.Size)
	if err != nil {
		return h.fail(c, "Upload failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Player not found"})
	case errors.Is(err, ErrNoDatabase):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrUnknownFormat):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, sheet.ErrUnsupportedFormat):
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{"error": err.Error()})
	}

	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
