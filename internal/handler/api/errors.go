package api

import (
	"net/http"

	"plateshare-server/internal/handler/httperr"
	"plateshare-server/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// Checked in order; the first sentinel the error carries wins.
var errorMappings = []errorMapping{
	{errs.ErrInvalidID, http.StatusBadRequest, httperr.CodeInvalidArgument, "Invalid id"},
	{errs.ErrInvalidPayload, http.StatusBadRequest, httperr.CodeInvalidArgument, "Invalid request body"},
	{errs.ErrCallerEmailRequired, http.StatusForbidden, httperr.CodeForbidden, "Caller email required"},
	{errs.ErrNotListingOwner, http.StatusForbidden, httperr.CodeForbidden, "Forbidden"},
	{errs.ErrListingNotFound, http.StatusNotFound, httperr.CodeNotFound, "Listing not found"},
	{errs.ErrFoodRequestNotFound, http.StatusNotFound, httperr.CodeNotFound, "Food request not found"},
	{errs.ErrRequestNotPending, http.StatusConflict, httperr.CodeConflict, "Food request is no longer pending"},
	{errs.ErrListingMismatch, http.StatusConflict, httperr.CodeConflict, "Food request does not belong to this listing"},
}

func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, m.code, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternal, err, "Internal server error", nil)
}

func abortInvalidBody(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeInvalidArgument, err, "Invalid request body", nil)
}
