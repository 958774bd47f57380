package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unifiedui/docdb-gateway/internal/api/dto"
	"github.com/unifiedui/docdb-gateway/internal/api/middleware"
	"github.com/unifiedui/docdb-gateway/internal/domain/errors"
	"github.com/unifiedui/docdb-gateway/internal/services/catalog"
)

// CollectionsHandler handles collection listing.
type CollectionsHandler struct {
	catalog catalog.Service
}

// NewCollectionsHandler creates a new CollectionsHandler.
func NewCollectionsHandler(catalogService catalog.Service) *CollectionsHandler {
	return &CollectionsHandler{catalog: catalogService}
}

// ListCollections handles GET /collections
// @Summary List collections
// @Description Lists the collection names of a database, sorted
// @Tags Collections
// @Produce json
// @Param database query string true "Database name"
// @Success 200 {object} dto.CollectionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/docdb/collections [get]
func (h *CollectionsHandler) ListCollections(c *gin.Context) {
	var query dto.CollectionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleError(c, errors.NewInvalidRequestError(err))
		return
	}

	names, err := h.catalog.ListCollections(c.Request.Context(), query.Database)
	if err != nil {
		middleware.HandleError(c, translateDriverError("list-collections", dto.Namespace{Database: query.Database}, err))
		return
	}

	c.JSON(http.StatusOK, dto.CollectionsResponse{Collections: names})
}
