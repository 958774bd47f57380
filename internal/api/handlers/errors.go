package handlers

import (
	"context"
	stderrors "errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"

	"github.com/unifiedui/docdb-gateway/internal/api/dto"
	"github.com/unifiedui/docdb-gateway/internal/api/middleware"
	"github.com/unifiedui/docdb-gateway/internal/core/docdb"
	"github.com/unifiedui/docdb-gateway/internal/domain/errors"
)

// translateDriverError maps a driver error onto the domain error returned to
// the client.
func translateDriverError(operation string, ns dto.Namespace, err error) error {
	switch {
	case stderrors.Is(err, docdb.ErrNotFound):
		return errors.NewNotFoundError("document", ns.Database+"."+ns.Collection)
	case mongo.IsDuplicateKeyError(err):
		return errors.NewConflictError("duplicate key", err)
	case unreachable(err):
		return errors.NewServiceUnavailableError("document database", err)
	case mongo.IsTimeout(err), stderrors.Is(err, context.DeadlineExceeded):
		return errors.NewTimeoutError(operation, err)
	default:
		return errors.NewInternalError(operation+" failed", err)
	}
}

// unreachable reports whether no server could be selected or the
// connection dropped before the operation ran.
func unreachable(err error) bool {
	var selectionErr topology.ServerSelectionError
	return stderrors.As(err, &selectionErr) || mongo.IsNetworkError(err)
}

// bindJSON decodes and validates the request body into req, then fills in
// omitted fields. It writes the error response and returns false on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.HandleError(c, errors.NewInvalidRequestError(err))
		return false
	}
	dto.ApplyDefaults(req)
	return true
}

type collectionScoped interface {
	CollectionOptions() (*options.CollectionOptions, error)
}
