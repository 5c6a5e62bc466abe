package class

import (
	"net/http"
	"time"

	"fitbook/internal/api"
	"fitbook/internal/metrics"

	"github.com/gin-gonic/gin"
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

// ListClasses godoc
// @Summary      List upcoming classes
// @Description  Returns upcoming fitness classes ordered by start time. Timestamps are localized to the X-Timezone header when provided.
// @Tags         classes
// @Produce      json
// @Param        X-Timezone  header    string  false  "IANA timezone name"
// @Success      200  {array}   class.Response
// @Failure      500  {object}  api.ErrorResponse
// @Router       /classes [get]
func (h *Handler) ListClasses(c *gin.Context) {
	classes, err := h.service.ListUpcoming(c.Request.Context())
	if err != nil {
		api.RespondError(c, err)
		return
	}

	loc := api.ClientLocation(c, h.defaultLoc)
	out := make([]Response, 0, len(classes))
	for i := range classes {
		out = append(out, classes[i].Render(loc))
	}

	c.JSON(http.StatusOK, out)
}

// CreateClass godoc
// @Summary      Create a fitness class
// @Description  Administrative: creates a class with a fixed slot capacity.
// @Tags         admin,classes
// @Accept       json
// @Produce      json
// @Param        request body class.CreateClassRequest true "Class payload"
// @Success      201  {object}  class.Response
// @Failure      400  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /admin/classes [post]
func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error(), Kind: string(api.KindValidation)})
		return
	}

	fc, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		api.RespondError(c, err)
		return
	}

	metrics.RecordClassCreated(string(fc.ClassType))

	loc := api.ClientLocation(c, h.defaultLoc)
	c.JSON(http.StatusCreated, fc.Render(loc))
}
