package api

import (
	"io"
	"net/http"

	"plateshare-server/internal/domain/document"
	reqdto "plateshare-server/internal/handler/dto/request"
	resdto "plateshare-server/internal/handler/dto/response"
	"plateshare-server/internal/handler/middleware"
	"plateshare-server/internal/pkg/errs"
	"plateshare-server/internal/usecase/commands"
	"plateshare-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FoodRequestHandler struct {
	cmds commands.FoodRequestCommands
	q    queries.FoodRequestQueries
}

func NewFoodRequestHandler(cmds commands.FoodRequestCommands, q queries.FoodRequestQueries) *FoodRequestHandler {
	return &FoodRequestHandler{cmds: cmds, q: q}
}

// @Summary List requests for a listing
// @Description Only the listing's donor may see its requests. The caller is the bearer token's email when tokens are enabled, otherwise the email query parameter.
// @Tags food-requests
// @Produce json
// @Security BearerAuth
// @Param foodId path string true "Listing ID"
// @Param email query string false "caller email"
// @Success 200 {array} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /food-requests/{foodId} [get]
func (h *FoodRequestHandler) ListForListing(c *gin.Context) {
	email, _ := middleware.GetCallerEmail(c)
	views, err := h.q.ListForOwner(c.Request.Context(), c.Param("foodId"), email)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFoodRequestViews(views))
}

// @Summary Create food request
// @Description Stores the body verbatim. foodId is required; status defaults to pending.
// @Tags food-requests
// @Accept json
// @Produce json
// @Param request body map[string]any true "Request document"
// @Success 201 {object} resdto.InsertResult
// @Failure 400 {object} httperr.Response
// @Router /foodRequests [post]
func (h *FoodRequestHandler) Create(c *gin.Context) {
	var doc document.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		abortInvalidBody(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), doc)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.NewInsertResult(id))
}

// @Summary Accept food request
// @Description Marks the request accepted and its listing Donated in one transaction.
// @Tags food-requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body reqdto.AcceptFoodRequestRequest false "Listing the request belongs to"
// @Success 200 {object} resdto.UpdateResult
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /food-requests/accept/{id} [patch]
func (h *FoodRequestHandler) Accept(c *gin.Context) {
	// an empty body, sized or chunked, means "the listing the request references"
	var req reqdto.AcceptFoodRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errs.Is(err, io.EOF) {
		abortInvalidBody(c, err)
		return
	}
	if err := h.cmds.Accept(c.Request.Context(), c.Param("id"), req.FoodID); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewUpdateResult(1, 1))
}

// @Summary Reject food request
// @Tags food-requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.UpdateResult
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /food-requests/reject/{id} [patch]
func (h *FoodRequestHandler) Reject(c *gin.Context) {
	if err := h.cmds.Reject(c.Request.Context(), c.Param("id")); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewUpdateResult(1, 1))
}
