package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/animalia/listing-system/internal/core/ports"
)

// MetadataHandler serves the opaque metadata payload to authenticated clients.
type MetadataHandler struct {
	service ports.MetadataService
}

func NewMetadataHandler(service ports.MetadataService) *MetadataHandler {
	return &MetadataHandler{service: service}
}

// Get handles GET /v0/metadata.
//
// @Summary      Fetch listing metadata
// @Tags         metadata
// @Produce      json
// @Param        token  header  string  true  "Session token"
// @Success      200
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v0/metadata [get]
func (h *MetadataHandler) Get(c echo.Context) error {
	payload, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, payload)
}
