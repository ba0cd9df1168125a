package api

import (
	"net/http"

	"plateshare-server/internal/domain/document"
	reqdto "plateshare-server/internal/handler/dto/request"
	resdto "plateshare-server/internal/handler/dto/response"
	"plateshare-server/internal/usecase/commands"
	"plateshare-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	cmds commands.ListingCommands
	q    queries.ListingQueries
}

func NewListingHandler(cmds commands.ListingCommands, q queries.ListingQueries) *ListingHandler {
	return &ListingHandler{cmds: cmds, q: q}
}

// @Summary List food listings
// @Description List listings, optionally filtered by status and donor email. Insertion order, no pagination.
// @Tags foods
// @Produce json
// @Param status query string false "food_status to match (alias: food_status)"
// @Param email query string false "donor email to match (alias: donorEmail)"
// @Success 200 {array} map[string]any
// @Failure 500 {object} httperr.Response
// @Router /foods [get]
func (h *ListingHandler) List(c *gin.Context) {
	var query reqdto.ListingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortInvalidBody(c, err)
		return
	}
	views, err := h.q.List(c.Request.Context(), queries.ListingFilter{
		Status:     query.StatusFilter(),
		DonorEmail: query.EmailFilter(),
	})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingViews(views))
}

// @Summary List a donor's listings
// @Tags foods
// @Produce json
// @Param email query string true "donor email"
// @Success 200 {array} map[string]any
// @Router /foods-manage [get]
func (h *ListingHandler) ListByDonor(c *gin.Context) {
	views, err := h.q.ListByDonor(c.Request.Context(), c.Query("email"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingViews(views))
}

// @Summary Get food listing
// @Tags foods
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /food/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	view, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingView(view))
}

// @Summary Featured listings
// @Description Up to six listings with the largest foodQuantity.
// @Tags foods
// @Produce json
// @Success 200 {array} map[string]any
// @Router /featured-foods [get]
func (h *ListingHandler) Featured(c *gin.Context) {
	views, err := h.q.Featured(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingViews(views))
}

// @Summary Create food listing
// @Description Stores the body verbatim.
// @Tags foods
// @Accept json
// @Produce json
// @Param request body map[string]any true "Listing document"
// @Success 201 {object} resdto.InsertResult
// @Failure 400 {object} httperr.Response
// @Router /add-food [post]
func (h *ListingHandler) Create(c *gin.Context) {
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

// @Summary Update food listing
// @Description Overwrites foodName, foodQuantity, pickupLocation, expireDate and notes. food_status is never changed here.
// @Tags foods
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body reqdto.UpdateListingRequest true "Editable fields"
// @Success 200 {object} resdto.UpdateResult
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /foods/{id} [patch]
func (h *ListingHandler) Update(c *gin.Context) {
	var req reqdto.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidBody(c, err)
		return
	}
	details, err := req.ToDomain()
	if err != nil {
		abortInvalidBody(c, err)
		return
	}
	res, err := h.cmds.Update(c.Request.Context(), c.Param("id"), details)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewUpdateResult(res.MatchedCount, res.ModifiedCount))
}

// @Summary Delete food listing
// @Description Deletes the listing and every request made against it.
// @Tags foods
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.DeleteResult
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /foods/{id} [delete]
func (h *ListingHandler) Delete(c *gin.Context) {
	res, err := h.cmds.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewDeleteResult(res.DeletedCount))
}
