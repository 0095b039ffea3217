package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"face-gallery/internal/catalog"
	"face-gallery/internal/drive"
	"face-gallery/internal/gallery"
	"face-gallery/internal/logger"
	"face-gallery/internal/metrics"
	"face-gallery/pkg/models"

	"github.com/labstack/echo/v4"
)

const lookupImageRoute = "/lookup-image"

// Options configures a Handler
type Options struct {
	URLs        drive.URLs
	LookupImage string // local path of the face reference image, empty to disable
	Metrics     *metrics.Metrics
}

// Handler serves the gallery page and its JSON API
type Handler struct {
	catalog     *catalog.Catalog
	loadErr     error
	urls        drive.URLs
	lookupImage string
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// NewHandler creates a handler over a loaded catalog. When loading failed, cat is nil and
// loadErr explains why; gallery routes then answer 503.
func NewHandler(cat *catalog.Catalog, loadErr error, opts Options) *Handler {
	if cat == nil && loadErr == nil {
		loadErr = ErrCatalogUnavailable
	}
	log := logger.WithComponent("gallery-handler")

	lookupImage := opts.LookupImage
	if lookupImage != "" {
		if err := CheckLookupImage(lookupImage); err != nil {
			log.Warn("face reference disabled", "path", lookupImage, "error", err)
			lookupImage = ""
		}
	}

	return &Handler{
		catalog:     cat,
		loadErr:     loadErr,
		urls:        opts.URLs,
		lookupImage: lookupImage,
		metrics:     opts.Metrics,
		logger:      log,
	}
}

// CheckLookupImage reports whether path names a face reference image that can be served
func CheckLookupImage(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}

// RegisterRoutes registers gallery routes with the Echo router
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Index)
	e.GET("/api/people", h.People)
	e.GET("/api/gallery", h.Gallery)
	e.GET(lookupImageRoute, h.LookupImage)
	e.GET("/health/live", h.Live)
	e.GET("/health/ready", h.Ready)
	e.StaticFS("/static", echo.MustSubFS(assets, "assets/static"))
}

// Index handles GET /
// Query parameters: q (name filter), shown (cards to show, a multiple of the batch
// size), lookup=1 (face reference initially open).
func (h *Handler) Index(c echo.Context) error {
	if h.loadErr != nil {
		return h.errorPage(c, h.loadErr)
	}

	state := gallery.ParseState(c.QueryParam("q"), c.QueryParam("shown"))
	page := h.render(state)

	view := NewPageView(page, h.catalog.Directory.Names(), h.catalog.Summary(), c.QueryParam("lookup") == "1", h.lookupURL())

	if err := c.Render(http.StatusOK, PageTemplate, view); err != nil {
		h.logger.Error("failed to render gallery page", "error", err)
		return h.errorPage(c, err)
	}
	return nil
}

// People handles GET /api/people
func (h *Handler) People(c echo.Context) error {
	if h.loadErr != nil {
		return handleServiceError(c, h.loadErr)
	}

	return c.JSON(http.StatusOK, models.PeopleResponse{
		People:        h.catalog.Counts(),
		DefaultPerson: h.catalog.Summary().DefaultPerson,
	})
}

// Gallery handles GET /api/gallery
// It returns the card descriptors for one filter/threshold state
func (h *Handler) Gallery(c echo.Context) error {
	if h.loadErr != nil {
		return handleServiceError(c, h.loadErr)
	}

	state := gallery.ParseState(c.QueryParam("q"), c.QueryParam("shown"))
	return c.JSON(http.StatusOK, h.render(state))
}

// LookupImage handles GET /lookup-image
func (h *Handler) LookupImage(c echo.Context) error {
	if h.lookupImage == "" {
		return handleServiceError(c, ErrLookupImageUnavailable)
	}
	data, err := os.ReadFile(h.lookupImage)
	if err != nil {
		h.logger.Warn("face reference image missing", "path", h.lookupImage, "error", err)
		return handleServiceError(c, ErrLookupImageUnavailable)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600") // Cache for 1 hour
	return c.Blob(http.StatusOK, http.DetectContentType(data), data)
}

// Live handles GET /health/live
func (h *Handler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "alive",
	})
}

// Ready handles GET /health/ready; the server is ready once the catalog is loaded
func (h *Handler) Ready(c echo.Context) error {
	if h.loadErr != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "down",
			"error":  GetErrorResponse(h.loadErr).Message,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "up",
		"catalog": h.catalog.Summary(),
	})
}

func (h *Handler) render(state gallery.State) models.Page {
	page := gallery.Render(h.catalog, h.urls, state)
	if h.metrics != nil {
		h.metrics.ObserveRender(page)
	}
	h.logger.Debug("gallery rendered",
		"filter", state.Filter,
		"threshold", state.Threshold,
		"rendered", page.Rendered(),
		"show_more", page.ShowMore,
	)
	return page
}

func (h *Handler) lookupURL() string {
	if h.lookupImage == "" {
		return ""
	}
	return lookupImageRoute
}

// errorPage renders the visible error state of the gallery page
func (h *Handler) errorPage(c echo.Context, err error) error {
	resp := GetErrorResponse(err)

	if renderErr := c.Render(resp.StatusCode, PageTemplate, PageView{Error: resp.Message}); renderErr != nil {
		return c.String(resp.StatusCode, resp.Message)
	}
	return nil
}

// handleServiceError maps errors to JSON error responses
func handleServiceError(c echo.Context, err error) error {
	resp := GetErrorResponse(err)
	return c.JSON(resp.StatusCode, map[string]string{
		"error": resp.Message,
	})
}
