package booking

import (
	"net/http"
	"time"

	"fitbook/internal/api"
	"fitbook/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service    Service
	defaultLoc *time.Location
}

func NewHandler(service Service, defaultLoc *time.Location) *Handler {
	return &Handler{
		service:    service,
		defaultLoc: defaultLoc,
	}
}

// CreateBooking godoc
// @Summary      Reserve a class slot
// @Description  Creates a booking for a fitness class, decrementing its available slots atomically.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        X-Timezone  header  string  false  "IANA timezone name"
// @Param        request body booking.CreateBookingRequest true "Booking payload"
// @Success      201  {object}  booking.Response
// @Failure      400  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /book [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RecordReservation(string(api.KindValidation))
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error(), Kind: string(api.KindValidation)})
		return
	}

	classID, err := uuid.Parse(req.FitnessClass)
	if err != nil {
		metrics.RecordReservation(string(api.KindNotFound))
		api.RespondError(c, ErrClassNotFound)
		return
	}

	booked, err := h.service.Reserve(c.Request.Context(), classID, req.ClientName, req.ClientEmail, time.Now())
	if err != nil {
		metrics.RecordReservation(string(api.KindOf(err)))
		api.RespondError(c, err)
		return
	}

	metrics.RecordReservation("success")

	loc := api.ClientLocation(c, h.defaultLoc)
	c.JSON(http.StatusCreated, booked.Render(loc))
}

// ListBookings godoc
// @Summary      List bookings by client email
// @Description  Returns the client's bookings, newest first, with nested class detail.
// @Tags         bookings
// @Produce      json
// @Param        email       query   string  true   "Client email"
// @Param        X-Timezone  header  string  false  "IANA timezone name"
// @Success      200  {object}  booking.ListResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error: "email parameter is required",
			Kind:  string(api.KindValidation),
			Field: "email",
		})
		return
	}

	bookings, err := h.service.ListByEmail(c.Request.Context(), email)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	loc := api.ClientLocation(c, h.defaultLoc)
	out := make([]Response, 0, len(bookings))
	for i := range bookings {
		out = append(out, bookings[i].Render(loc))
	}

	c.JSON(http.StatusOK, ListResponse{
		Email:    email,
		Count:    len(out),
		Bookings: out,
	})
}
