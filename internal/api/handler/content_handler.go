package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ddcrdc/content-api/internal/api/metrics"
	"github.com/ddcrdc/content-api/internal/core/domain"
	"github.com/ddcrdc/content-api/internal/core/ports"
)

// ContentHandler handles HTTP requests for the three content tables. The
// :table path parameter is parsed into the closed table enumeration before
// anything else happens.
type ContentHandler struct {
	service ports.ContentService
}

func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// List handles GET /api/:table — the public, unauthenticated listing.
//
// @Summary      List public records of a content table
// @Tags         content
// @Produce      json
// @Param        table  path      string  true  "news | events | publications"
// @Success      200    {array}   map[string]any
// @Failure      400    {object}  map[string]string
// @Router       /api/{table} [get]
func (h *ContentHandler) List(c echo.Context) error {
	table, err := domain.ParseTable(c.Param("table"))
	if err != nil {
		return err
	}

	records, err := h.service.ListPublic(c.Request().Context(), table)
	if err != nil {
		return err
	}

	metrics.ContentOperationsTotal.WithLabelValues(table.String(), "list").Inc()
	return c.JSON(http.StatusOK, records)
}

// Get handles GET /api/:table/:id — the full record, auth required.
func (h *ContentHandler) Get(c echo.Context) error {
	table, err := domain.ParseTable(c.Param("table"))
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	record, err := h.service.Get(c.Request().Context(), table, id)
	if err != nil {
		return err
	}

	metrics.ContentOperationsTotal.WithLabelValues(table.String(), "get").Inc()
	return c.JSON(http.StatusOK, record)
}

// Create handles POST /api/:table. Fields outside the table's whitelist are
// silently dropped; the response is the generated id merged with the
// filtered input.
//
// @Summary      Create a content record
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        table  path      string          true  "news | events | publications"
// @Param        body   body      map[string]any  true  "Record fields"
// @Success      201    {object}  map[string]any
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /api/{table} [post]
func (h *ContentHandler) Create(c echo.Context) error {
	table, err := domain.ParseTable(c.Param("table"))
	if err != nil {
		return err
	}

	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Requête invalide")
	}

	record, err := h.service.Create(c.Request().Context(), table, body)
	if err != nil {
		return err
	}

	metrics.ContentOperationsTotal.WithLabelValues(table.String(), "create").Inc()
	return c.JSON(http.StatusCreated, record)
}

// Update handles PUT /api/:table/:id — a partial field replacement. The
// response does not distinguish a missing id from an applied update.
func (h *ContentHandler) Update(c echo.Context) error {
	table, err := domain.ParseTable(c.Param("table"))
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Requête invalide")
	}

	if err := h.service.Update(c.Request().Context(), table, id, body); err != nil {
		return err
	}

	metrics.ContentOperationsTotal.WithLabelValues(table.String(), "update").Inc()
	return c.JSON(http.StatusOK, echo.Map{"id": id, "updated": true})
}

// Delete handles DELETE /api/:table/:id — a hard delete, unconditionally
// reported as done.
func (h *ContentHandler) Delete(c echo.Context) error {
	table, err := domain.ParseTable(c.Param("table"))
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), table, id); err != nil {
		return err
	}

	metrics.ContentOperationsTotal.WithLabelValues(table.String(), "delete").Inc()
	return c.JSON(http.StatusOK, echo.Map{"id": id, "deleted": true})
}

// pathID parses the :id segment. Anything non-numeric is treated as an
// unknown route, not as a bad identifier.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.ErrNotFound
	}
	return id, nil
}
