package shared

import (
	"plateshare-server/internal/infra"
	"plateshare-server/internal/pkg/errs"
)

// TranslateRepoErr marks a repository error with the sentinel the handler
// layer understands. notFound is used for NOT_FOUND kinds.
func TranslateRepoErr(err error, notFound error) error {
	if err == nil {
		return nil
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindInvalidID):
		return errs.Mark(err, errs.ErrInvalidID)
	case infra.IsKind(err, infra.KindDBFailure):
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	default:
		return err
	}
}
