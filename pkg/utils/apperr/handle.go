package apperr

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/mailops-lab/mailquota/pkg/domain/model"
)

// Handle reports a top-level error through the context logger. Group
// lookup misses are a designed outcome and logged without an error dump.
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)
	if errors.Is(err, model.ErrGroupNotFound) {
		logger.Error("credential group not found", "error", err.Error())
		return
	}
	logger.Error("application error", "error", err)
}
