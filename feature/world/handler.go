package world

import (
	"errors"

	"rwk-afmg/core/logger"
	"rwk-afmg/feature/world/classify"
	"rwk-afmg/feature/world/importer"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ImportRequest selects an export and the run options.
// Exactly one of Text or Object must be set.
type ImportRequest struct {
	Text     string `json:"text,omitempty"`
	Object   string `json:"object,omitempty"`
	DryRun   bool   `json:"dry_run"`
	Recreate bool   `json:"recreate"`
	Confirm  bool   `json:"confirm"`
}

// Handler handles HTTP requests for map ingestion.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = importer.Report{}
	return &Handler{service: service}
}

// RegisterRoutes registers the world routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/world")
	group.Post("/import", h.HandleImport)
	group.Post("/classify", h.HandleClassify)
	group.Post("/inspect", h.HandleInspect)
	group.Post("/burgs/:id/url", h.HandleBurgURL)
	group.Get("/collections/:name", h.HandleCollection)
}

// HandleImport runs one ingestion.
// @Summary Import Map Export
// @Description Classifies, resolves and reconciles a map export into the document store. Integrity warnings are reported per collection and leave that collection untouched.
// @Tags world
// @Accept json
// @Produce json
// @Param request body ImportRequest true "Export and run options"
// @Success 200 {object} importer.Report "Run Report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /world/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if (req.Text == "") == (req.Object == "") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Exactly one of text or object is required"})
	}

	opts := importer.Options{DryRun: req.DryRun, Recreate: req.Recreate, Confirmed: req.Confirm}
	l.Info("Triggering import", zap.String("object", req.Object), zap.Bool("dry_run", req.DryRun))

	var (
		report *importer.Report
		err    error
	)
	if req.Object != "" {
		report, err = h.service.ImportObject(c.Context(), req.Object, opts)
	} else {
		report, err = h.service.Import(c.Context(), req.Text, opts)
	}
	if err != nil {
		l.Error("Import failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleClassify reports how each line of an export was classified.
// @Summary Classify Map Export
// @Description Parses the header and classifies every line of a raw export without resolving or storing anything.
// @Tags world
// @Accept plain
// @Produce json
// @Param export body string true "Raw export text"
// @Success 200 {object} classify.Report "Classification Report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /world/classify [post]
func (h *Handler) HandleClassify(c *fiber.Ctx) error {
	report, err := h.service.Classify(string(c.Body()))
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleInspect returns the resolved view of an export.
// @Summary Inspect Map Export
// @Description Classifies and resolves a raw export and returns every resolved entity. Nothing is written.
// @Tags world
// @Accept plain
// @Produce json
// @Param export body string true "Raw export text"
// @Success 200 {object} Inspection "Resolved View"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /world/inspect [post]
func (h *Handler) HandleInspect(c *fiber.Ctx) error {
	inspection, err := h.service.Inspect(string(c.Body()))
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(inspection)
}

// HandleBurgURL derives the city generator URL of one burg.
// @Summary Burg City URL
// @Description Builds the procedural city generator URL for the burg with the given id in a raw export.
// @Tags world
// @Accept plain
// @Produce json
// @Param id path int true "Burg ID"
// @Param export body string true "Raw export text"
// @Success 200 {object} map[string]string "URL"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /world/burgs/{id}/url [post]
func (h *Handler) HandleBurgURL(c *fiber.Ctx) error {
	id, err := ParseBurgID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	url, err := h.service.BurgURL(string(c.Body()), id)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"url": url})
}

// HandleCollection lists the materialized documents of a collection.
// @Summary List Collection
// @Description Returns every materialized document of a collection in position order.
// @Tags world
// @Produce json
// @Param name path string true "Collection (Cultures, Provinces, Countries, Burgs)"
// @Success 200 {array} reconcile.Stored "Documents"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /world/collections/{name} [get]
func (h *Handler) HandleCollection(c *fiber.Ctx) error {
	docs, err := h.service.Documents(c.Context(), c.Params("name"))
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(docs)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, classify.ErrEmptySource):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrNoBucket):
		return fiber.StatusServiceUnavailable
	default:
		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			return ferr.Code
		}
		return fiber.StatusInternalServerError
	}
}
