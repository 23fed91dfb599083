package inject

import (
	"errors"

	"whitecore/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const defaultRunsLimit = 20

// Handler handles HTTP requests for injection runs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inject routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inject")
	group.Get("/report", h.HandleGetReport)
	group.Post("/run", h.HandleRun)
	group.Get("/verify", h.HandleVerify)
	group.Get("/items/:id", h.HandleGetItem)
	group.Get("/runs", h.HandleGetRuns)
	group.Get("/runs/:id/outcomes", h.HandleGetRunOutcomes)
}

// HandleGetReport returns the report of the latest pass.
// @Summary Get Last Report
// @Description Get the report of the latest injection pass.
// @Tags inject
// @Produce json
// @Success 200 {object} inject.Report "Report"
// @Failure 404 {object} map[string]string "No run yet"
// @Router /inject/report [get]
func (h *Handler) HandleGetReport(c *fiber.Ctx) error {
	report, err := h.service.LastReport()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleRun reloads both databases and runs a new pass.
// @Summary Run Injection
// @Description Reload the host and mod databases and apply the mod.
// @Tags inject
// @Produce json
// @Success 200 {object} inject.Report "Report"
// @Failure 500 {object} inject.Report "Aborted run"
// @Router /inject/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Injection run requested")

	report, _ := h.service.PostDBLoad(c.Context())
	if report.Status != RunOK {
		return c.Status(fiber.StatusInternalServerError).JSON(report)
	}
	return c.JSON(report)
}

// HandleVerify checks every mod item against the latest pass.
// @Summary Verify Items
// @Description Check that every enabled mod item is registered with handbook and locale entries.
// @Tags inject
// @Produce json
// @Success 200 {object} inject.Verification "Verification"
// @Failure 404 {object} map[string]string "No run yet"
// @Router /inject/verify [get]
func (h *Handler) HandleVerify(c *fiber.Ctx) error {
	v, err := h.service.Verify()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(v)
}

// HandleGetItem returns the verification of a single mod item.
// @Summary Get Item Check
// @Description Check a single mod item against the latest pass.
// @Tags inject
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} inject.ItemCheck "Item Check"
// @Failure 404 {object} map[string]string "Unknown item or no run yet"
// @Router /inject/items/{id} [get]
func (h *Handler) HandleGetItem(c *fiber.Ctx) error {
	id := c.Params("id")
	check, err := h.service.VerifyItem(id)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, ErrNoRun) || errors.Is(err, ErrUnknownItem) {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(check)
}

// HandleGetRuns returns the latest runs from the ledger.
// @Summary List Runs
// @Description List the latest recorded injection runs.
// @Tags inject
// @Produce json
// @Param limit query int false "Maximum number of runs"
// @Success 200 {array} inject.InjectionRun "Runs"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inject/runs [get]
func (h *Handler) HandleGetRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	limit := c.QueryInt("limit", defaultRunsLimit)
	if limit <= 0 {
		limit = defaultRunsLimit
	}

	runs, err := h.service.Runs(c.Context(), limit)
	if err != nil {
		l.Error("Failed to list runs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(runs)
}

// HandleGetRunOutcomes returns the recorded outcomes of one run.
// @Summary List Run Outcomes
// @Description List the item and trader outcomes recorded for a run.
// @Tags inject
// @Produce json
// @Param id path string true "Run id"
// @Success 200 {array} inject.InjectionOutcome "Outcomes"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inject/runs/{id}/outcomes [get]
func (h *Handler) HandleGetRunOutcomes(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	runID := c.Params("id")
	outcomes, err := h.service.RunOutcomes(c.Context(), runID)
	if err != nil {
		l.Error("Failed to list run outcomes", zap.String("run_id", runID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(outcomes)
}
