// Package handlers provides HTTP handlers for the API.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unifiedui/docdb-gateway/internal/api/dto"
	"github.com/unifiedui/docdb-gateway/internal/api/middleware"
	"github.com/unifiedui/docdb-gateway/internal/core/docdb"
	"github.com/unifiedui/docdb-gateway/internal/domain/errors"
	"github.com/unifiedui/docdb-gateway/internal/services/catalog"
)

// DocumentsHandler handles document CRUD endpoints.
type DocumentsHandler struct {
	docDBClient docdb.Client
	catalog     catalog.Service
}

// NewDocumentsHandler creates a new DocumentsHandler.
func NewDocumentsHandler(docDBClient docdb.Client, catalogService catalog.Service) *DocumentsHandler {
	return &DocumentsHandler{
		docDBClient: docDBClient,
		catalog:     catalogService,
	}
}

// collection resolves the target collection with any collection-scoped
// options (write concern, read concern, read preference) applied.
func (h *DocumentsHandler) collection(c *gin.Context, ns dto.Namespace, scoped collectionScoped) (docdb.Collection, bool) {
	opts, err := scoped.CollectionOptions()
	if err != nil {
		middleware.HandleError(c, errors.NewInvalidRequestError(err))
		return nil, false
	}
	return h.docDBClient.Database(ns.Database).Collection(ns.Collection, opts), true
}

// collectionsChanged drops the cached listing of a database after a write
// that may have created a collection.
func (h *DocumentsHandler) collectionsChanged(c *gin.Context, database string) {
	if err := h.catalog.Invalidate(c.Request.Context(), database); err != nil {
		logger := middleware.GetRequestLogger(c)
		logger.Warn().Err(err).Str("database", database).Msg("failed to invalidate collection cache")
	}
}

// InsertOne handles POST /documents/insert-one
// @Summary Insert one document
// @Description Inserts a single document and returns its identifier
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body dto.InsertOneRequest true "Insert request"
// @Success 201 {object} dto.InsertOneResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/docdb/documents/insert-one [post]
func (h *DocumentsHandler) InsertOne(c *gin.Context) {
	var req dto.InsertOneRequest
	if !bindJSON(c, &req) {
		return
	}
	coll, ok := h.collection(c, req.Namespace, req.Options)
	if !ok {
		return
	}

	id, err := coll.InsertOne(c.Request.Context(), req.Document.D(), req.Options.Driver())
	if err != nil {
		middleware.HandleError(c, translateDriverError("insert-one", req.Namespace, err))
		return
	}
	h.collectionsChanged(c, req.Database)

	c.JSON(http.StatusCreated, dto.InsertOneResponse{InsertedID: dto.NewValue(id)})
}

// InsertMany handles POST /documents/insert-many
// @Summary Insert documents
// @Description Inserts documents; inserted_ids[i] identifies the i-th submitted document
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body dto.InsertManyRequest true "Insert request"
// @Success 201 {object} dto.InsertManyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/docdb/documents/insert-many [post]
func (h *DocumentsHandler) InsertMany(c *gin.Context) {
	var req dto.InsertManyRequest
	if !bindJSON(c, &req) {
		return
	}
	coll, ok := h.collection(c, req.Namespace, req.Options)
	if !ok {
		return
	}

	result, err := coll.InsertMany(c.Request.Context(), dto.Documents(req.Documents), req.Options.Driver())
	if err != nil {
		if result != nil && len(result.InsertedIDs) > 0 {
			h.collectionsChanged(c, req.Database)
		}
		middleware.HandleError(c, translateDriverError("insert-many", req.Namespace, err))
		return
	}
	if len(req.Documents) > 0 {
		h.collectionsChanged(c, req.Database)
	}

	c.JSON(http.StatusCreated, dto.NewInsertManyResponse(result))
}

// FindOne handles POST /documents/find-one
// @Summary Find one document
// @Description Returns the first document matching the filter; an omitted filter matches everything
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body dto.FindOneRequest true "Find request"
// @Success 200 {object} dto.FindOneResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/docdb/documents/find-one [post]
func (h *DocumentsHandler) FindOne(c *gin.Context) {
	var req dto.FindOneRequest
	if !bindJSON(c, &req) {
		return
	}
	coll, ok := h.collection(c, req.Namespace, req.Options)
	if !ok {
		return
	}

	doc, err := coll.FindOne(c.Request.Context(), req.Filter.D(), req.Options.Driver())
	if err != nil {
		middleware.HandleError(c, translateDriverError("find-one", req.Namespace, err))
		return
	}

	c.JSON(http.StatusOK, dto.FindOneResponse{Document: dto.Document(doc)})
}

// FindMany handles POST /documents/find-many
// @Summary Find documents
// @Description Returns all documents matching the filter; an omitted filter matches everything
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body dto.FindManyRequest true "Find request"
// @Success 200 {object} dto.FindManyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/docdb/documents/find-many [post]
func (h *DocumentsHandler) FindMany(c *gin.Context) {
	var req dto.FindManyRequest
	if !bindJSON(c, &req) {
		return
	}
	coll, ok := h.collection(c, req.Namespace, req.Options)
	if !ok {
		return
	}

	docs, err := coll.Find(c.Request.Context(), req.Filter.D(), req.Options.Driver())
	if err != nil {
		middleware.HandleError(c, translateDriverError("find-many", req.Namespace, err))
		return
	}

	c.JSON(http.StatusOK, dto.NewFindManyResponse(docs))
}

// UpdateOne handles POST /documents/update-one
// @Summary Update one document
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body dto.UpdateRequest true "Update request"
// @Success 200 {object} dto.UpdateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/docdb/documents/update-one [post]
func (h *DocumentsHandler) UpdateOne(c *gin.Context) {
	h.update(c, "update-one", docdb.Collection.UpdateOne)
}

// UpdateMany handles POST /documents/update-many
// @Summary Update documents
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body dto.UpdateRequest true "Update request"
// @Success 200 {object} dto.UpdateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/docdb/documents/update-many [post]
func (h *DocumentsHandler) UpdateMany(c *gin.Context) {
	h.update(c, "update-many", docdb.Collection.UpdateMany)
}

type updateFunc func(docdb.Collection, context.Context, bson.D, bson.D, *options.UpdateOptions) (*docdb.UpdateResult, error)

func (h *DocumentsHandler) update(c *gin.Context, operation string, apply updateFunc) {
	var req dto.UpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	coll, ok := h.collection(c, req.Namespace, req.Options)
	if !ok {
		return
	}

	result, err := apply(coll, c.Request.Context(), req.Filter.D(), req.Update.D(), req.Options.Driver())
	if err != nil {
		middleware.HandleError(c, translateDriverError(operation, req.Namespace, err))
		return
	}
	if mayHaveUpserted(result, req.Options) {
		h.collectionsChanged(c, req.Database)
	}

	c.JSON(http.StatusOK, dto.NewUpdateResponse(result))
}

// ReplaceOne handles POST /documents/replace-one
// @Summary Replace one document
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body dto.ReplaceOneRequest true "Replace request"
// @Success 200 {object} dto.UpdateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/docdb/documents/replace-one [post]
func (h *DocumentsHandler) ReplaceOne(c *gin.Context) {
	var req dto.ReplaceOneRequest
	if !bindJSON(c, &req) {
		return
	}
	coll, ok := h.collection(c, req.Namespace, req.Options)
	if !ok {
		return
	}

	result, err := coll.ReplaceOne(c.Request.Context(), req.Filter.D(), req.Replacement.D(), req.Options.Driver())
	if err != nil {
		middleware.HandleError(c, translateDriverError("replace-one", req.Namespace, err))
		return
	}
	if mayHaveUpserted(result, req.Options) {
		h.collectionsChanged(c, req.Database)
	}

	c.JSON(http.StatusOK, dto.NewUpdateResponse(result))
}

// mayHaveUpserted reports whether an update or replace could have created
// its collection. An unacknowledged write reports no upserted id, so the
// requested upsert flag decides.
func mayHaveUpserted(result *docdb.UpdateResult, opts interface{ Upserts() bool }) bool {
	if result.UpsertedID != nil {
		return true
	}
	return result.Unacknowledged && opts.Upserts()
}

// DeleteOne handles POST /documents/delete-one
// @Summary Delete one document
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body dto.DeleteRequest true "Delete request"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/docdb/documents/delete-one [post]
func (h *DocumentsHandler) DeleteOne(c *gin.Context) {
	h.remove(c, "delete-one", docdb.Collection.DeleteOne)
}

// DeleteMany handles POST /documents/delete-many
// @Summary Delete documents
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body dto.DeleteRequest true "Delete request"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/docdb/documents/delete-many [post]
func (h *DocumentsHandler) DeleteMany(c *gin.Context) {
	h.remove(c, "delete-many", docdb.Collection.DeleteMany)
}

type deleteFunc func(docdb.Collection, context.Context, bson.D, *options.DeleteOptions) (*docdb.DeleteResult, error)

func (h *DocumentsHandler) remove(c *gin.Context, operation string, apply deleteFunc) {
	var req dto.DeleteRequest
	if !bindJSON(c, &req) {
		return
	}
	coll, ok := h.collection(c, req.Namespace, req.Options)
	if !ok {
		return
	}

	result, err := apply(coll, c.Request.Context(), req.Filter.D(), req.Options.Driver())
	if err != nil {
		middleware.HandleError(c, translateDriverError(operation, req.Namespace, err))
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{DeletedCount: result.DeletedCount})
}
