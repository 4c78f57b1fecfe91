package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sikeu/finance-api/internal/api/metrics"
	"github.com/sikeu/finance-api/internal/core/domain"
	"github.com/sikeu/finance-api/internal/core/ports"
)

// RecordHandler serves the CRUD routes of one finance entity.
// All four entities share it; only the type parameter changes.
type RecordHandler[T any, P domain.RecordPtr[T]] struct {
	service ports.RecordService[T]
	entity  string
}

func NewRecordHandler[T any, P domain.RecordPtr[T]](service ports.RecordService[T]) *RecordHandler[T, P] {
	return &RecordHandler[T, P]{
		service: service,
		entity:  P(new(T)).EntityName(),
	}
}

// Register mounts the collection routes on g under path.
func (h *RecordHandler[T, P]) Register(g *echo.Group, path string) {
	g.GET(path, h.List)
	g.POST(path, h.Create)
	g.PUT(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}

// List returns every record of the entity, or [] when there are none.
func (h *RecordHandler[T, P]) List(c echo.Context) error {
	records, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Create stores a new record. Client-supplied ids are ignored.
func (h *RecordHandler[T, P]) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	record, err := h.bind(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), actor, record)
	if err != nil {
		return err
	}
	metrics.RecordsMutationsTotal.WithLabelValues(h.entity, string(domain.AuditCreated)).Inc()
	return c.JSON(http.StatusCreated, created)
}

// Update replaces every mutable field of the record identified by :id.
func (h *RecordHandler[T, P]) Update(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	record, err := h.bind(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	updated, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), record)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return err
	}
	metrics.RecordsMutationsTotal.WithLabelValues(h.entity, string(domain.AuditUpdated)).Inc()
	return c.JSON(http.StatusOK, updated)
}

// Delete removes the record identified by :id.
func (h *RecordHandler[T, P]) Delete(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return err
	}
	metrics.RecordsMutationsTotal.WithLabelValues(h.entity, string(domain.AuditDeleted)).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: h.entity + " successfully deleted"})
}

func (h *RecordHandler[T, P]) bind(c echo.Context) (*T, error) {
	record := new(T)
	if err := c.Bind(record); err != nil {
		return nil, errors.New("invalid payload")
	}
	if err := c.Validate(record); err != nil {
		return nil, err
	}
	return record, nil
}
