package api

import (
	"net/http"

	reqdto "hotel-block-service/internal/handler/dto/request"
	resdto "hotel-block-service/internal/handler/dto/response"
	"hotel-block-service/internal/handler/httperr"
	"hotel-block-service/internal/pkg/clock"
	"hotel-block-service/internal/usecase/commands"
	"hotel-block-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HotelReservationHandler struct {
	cmds    commands.HotelReservationCommands
	q       queries.HotelReservationQueries
	history queries.HistoryQueries
	clock   clock.Clock
}

func NewHotelReservationHandler(
	cmds commands.HotelReservationCommands,
	q queries.HotelReservationQueries,
	history queries.HistoryQueries,
	clk clock.Clock,
) *HotelReservationHandler {
	return &HotelReservationHandler{cmds: cmds, q: q, history: history, clock: clk}
}

// @Summary Create hotel reservations
// @Description Create a block of identical hotel reservations, one per room
// @Tags hotel-reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHotelReservationRequest true "Create request"
// @Success 201 {object} resdto.CreatedHotelReservationsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotel-reservations [post]
func (h *HotelReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateHotelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	fields, rooms, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	created, err := h.cmds.CreateBlock(c.Request.Context(), fields, rooms)
	if err != nil {
		abortWithUseCaseError(c, err, "Create hotel reservation failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreatedReservations(created))
}

// @Summary List hotel reservations
// @Description List hotel reservations matching every given filter
// @Tags hotel-reservations
// @Produce json
// @Security BearerAuth
// @Param hotel_id query string false "Hotel ID"
// @Param event_id query string false "Event ID"
// @Param status query string false "complete or incomplete"
// @Param night query string false "Night (YYYY-MM-DD)"
// @Param limit query int false "Page size"
// @Param after query string false "Cursor"
// @Success 200 {object} resdto.HotelReservationListResponse
// @Failure 400 {object} httperr.Response
// @Router /hotel-reservations [get]
func (h *HotelReservationHandler) List(c *gin.Context) {
	var query reqdto.ListHotelReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	params, err := query.ToParams(h.clock.Now())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		return
	}
	items, next, err := h.q.List(c.Request.Context(), params)
	if err != nil {
		abortWithUseCaseError(c, err, "Invalid query")
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelReservationList(items, next))
}

// @Summary Check for hotel reservations
// @Description Report whether an event or event venue holds any reservation at a hotel
// @Tags hotel-reservations
// @Produce json
// @Security BearerAuth
// @Param hotel_id query string true "Hotel ID"
// @Param event_id query string false "Event ID"
// @Param event_venue_id query string false "Event venue ID"
// @Success 200 {object} resdto.ExistsResponse
// @Failure 400 {object} httperr.Response
// @Router /hotel-reservations/exists [get]
func (h *HotelReservationHandler) Exists(c *gin.Context) {
	var query reqdto.ExistsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	lookup, err := query.ToLookup()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		return
	}
	var exists bool
	if lookup.VenueID != nil {
		exists, err = h.q.ExistsForEventVenue(c.Request.Context(), *lookup.VenueID, lookup.HotelID)
	} else {
		exists, err = h.q.ExistsForEvent(c.Request.Context(), lookup.EventID, lookup.HotelID)
	}
	if err != nil {
		abortWithUseCaseError(c, err, "Lookup failed")
		return
	}
	c.JSON(http.StatusOK, resdto.ExistsResponse{Exists: exists})
}

// @Summary Get hotel reservation
// @Description Get a hotel reservation with its derived lifecycle fields
// @Tags hotel-reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel reservation ID"
// @Success 200 {object} queries.HotelReservationView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotel-reservations/{id} [get]
func (h *HotelReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Not found")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update hotel reservation
// @Description Change holder, order or people count. Block expiry and confirmation code are never touched.
// @Tags hotel-reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel reservation ID"
// @Param request body reqdto.UpdateHotelReservationRequest true "Update request"
// @Success 200 {object} queries.HotelReservationView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotel-reservations/{id} [patch]
func (h *HotelReservationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateHotelReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if _, err = h.cmds.Update(c.Request.Context(), id, req.ToDomain()); err != nil {
		abortWithUseCaseError(c, err, "Update failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load hotel reservation", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete hotel reservation
// @Description Delete a hotel reservation that has no confirmation code
// @Tags hotel-reservations
// @Security BearerAuth
// @Param id path string true "Hotel reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /hotel-reservations/{id} [delete]
func (h *HotelReservationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err = h.cmds.Destroy(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, "Hotel reservation is confirmed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Hotel reservation history
// @Description List recorded snapshots of a hotel reservation
// @Tags hotel-reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel reservation ID"
// @Param action query string false "save or destroy"
// @Success 200 {array} queries.HistoryEntryView
// @Failure 400 {object} httperr.Response
// @Router /hotel-reservations/{id}/history [get]
func (h *HotelReservationHandler) History(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var query reqdto.HistoryQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid query", nil)
		return
	}
	action, err := query.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	entries, err := h.history.ListHistory(c.Request.Context(), id, action)
	if err != nil {
		abortWithUseCaseError(c, err, "Invalid query")
		return
	}
	if entries == nil {
		entries = []*queries.HistoryEntryView{}
	}
	c.JSON(http.StatusOK, entries)
}
