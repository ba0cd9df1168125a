//go:build unit

package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"plateshare-server/internal/handler/httperr"
	"plateshare-server/internal/infra"
	"plateshare-server/internal/pkg/errs"
	"plateshare-server/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAbortWithUsecaseError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid id", errs.ErrInvalidID, http.StatusBadRequest, httperr.CodeInvalidArgument},
		{"invalid payload", errs.ErrInvalidPayload, http.StatusBadRequest, httperr.CodeInvalidArgument},
		{"caller email required", errs.ErrCallerEmailRequired, http.StatusForbidden, httperr.CodeForbidden},
		{"not owner", errs.ErrNotListingOwner, http.StatusForbidden, httperr.CodeForbidden},
		{"listing not found", errs.ErrListingNotFound, http.StatusNotFound, httperr.CodeNotFound},
		{"request not found", errs.ErrFoodRequestNotFound, http.StatusNotFound, httperr.CodeNotFound},
		{"not pending", errs.ErrRequestNotPending, http.StatusConflict, httperr.CodeConflict},
		{"listing mismatch", errs.ErrListingMismatch, http.StatusConflict, httperr.CodeConflict},
		{"db failure", errs.ErrDatabaseOperationFailed, http.StatusInternalServerError, httperr.CodeInternal},
		{"unknown", errors.New("???"), http.StatusInternalServerError, httperr.CodeInternal},
		{
			"translated repository miss",
			shared.TranslateRepoErr(infra.WrapRepoErr("listing not found", nil, infra.KindNotFound), errs.ErrListingNotFound),
			http.StatusNotFound, httperr.CodeNotFound,
		},
		{
			"wrapped sentinel",
			errs.Wrap(errs.Mark(errors.New("locked"), errs.ErrRequestNotPending), "accept"),
			http.StatusConflict, httperr.CodeConflict,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			abortWithUsecaseError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			assert.True(t, c.IsAborted())
			assert.Contains(t, w.Body.String(), `"code":"`+tc.code+`"`)
		})
	}
}
