package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SchmidtMatheus/gym-simulator-web/internal/api"
	"github.com/SchmidtMatheus/gym-simulator-web/internal/apperr"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func respondError(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Message: apperr.MessageOf(err)})
}

// CreateBooking godoc
// @Summary      Create booking
// @Description  Runs the admission check. Business rejections (full class,
// @Description  plan quota, duplicate, cancelled class, unknown student) come
// @Description  back as 200 with success=false and a displayable message.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        booking  body      CreateBookingRequest  true  "Booking"
// @Success      201      {object}  BookingResult
// @Success      200      {object}  BookingResult
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /api/bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: api.BindMessage(err)})
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if result.Success {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}

// CancelBooking godoc
// @Summary      Cancel booking
// @Description  Scheduled bookings only; releases the class seat.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        bookingID  path  string                true   "Booking ID"
// @Param        body       body  CancelBookingRequest  false  "Cancellation reason"
// @Success      204
// @Failure      404  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /api/bookings/{bookingID}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	var req CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: api.BindMessage(err)})
			return
		}
	}

	if err := h.service.CancelBooking(c.Request.Context(), c.Param("bookingID"), req.Reason); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// MarkAttended godoc
// @Summary      Mark booking attended
// @Tags         bookings
// @Produce      json
// @Param        bookingID  path  string  true  "Booking ID"
// @Success      204
// @Failure      404  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /api/bookings/{bookingID}/attend [post]
func (h *Handler) MarkAttended(c *gin.Context) {
	if err := h.service.MarkAttended(c.Request.Context(), c.Param("bookingID")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// MarkMissed godoc
// @Summary      Mark booking missed
// @Tags         bookings
// @Produce      json
// @Param        bookingID  path  string  true  "Booking ID"
// @Success      204
// @Failure      404  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /api/bookings/{bookingID}/miss [post]
func (h *Handler) MarkMissed(c *gin.Context) {
	if err := h.service.MarkMissed(c.Request.Context(), c.Param("bookingID")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListBookings godoc
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Param        page      query     int  false  "Page number"     default(1)
// @Param        pageSize  query     int  false  "Items per page"  default(10)
// @Success      200       {object}  BookingListResponse
// @Failure      400       {object}  api.ErrorResponse
// @Router       /api/bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	var page api.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: api.BindMessage(err)})
		return
	}

	resp, err := h.service.ListBookings(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
