package api

import (
	"net/http"

	reqdto "hotel-block-service/internal/handler/dto/request"
	resdto "hotel-block-service/internal/handler/dto/response"
	"hotel-block-service/internal/handler/httperr"
	"hotel-block-service/internal/pkg/errs"
	"hotel-block-service/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoOpenReservations = errs.New("no hotel reservation without a code on this order")

type OrderHandler struct {
	codes commands.CodeAssignmentCommands
	lines commands.LineItemCommands
}

func NewOrderHandler(codes commands.CodeAssignmentCommands, lines commands.LineItemCommands) *OrderHandler {
	return &OrderHandler{codes: codes, lines: lines}
}

// @Summary Assign hotel reservation code
// @Description Stamp a confirmation code on every reservation of the order that has none yet
// @Tags orders
// @Accept json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.AssignCodeRequest true "Code request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id}/hotel-reservation-code [put]
func (h *OrderHandler) AssignCode(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.AssignCodeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	n, err := h.codes.AssignCode(c.Request.Context(), id, req.HotelReservationCode)
	if err != nil {
		abortWithUseCaseError(c, err, "Invalid request")
		return
	}
	if n == 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoOpenReservations, "No hotel reservation to update", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Adjust line items
// @Description Reduce line item quantities of the order's hotel reservations inside the quick cancellation window
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.AdjustLineItemsRequest true "Desired quantities per hotel reservation"
// @Success 200 {object} resdto.AdjustmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id}/line-items/adjust [post]
func (h *OrderHandler) AdjustLineItems(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.AdjustLineItemsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	result, err := h.lines.AdjustLineItems(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		abortWithUseCaseError(c, err, "Invalid request")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdjustmentResult(result))
}
