package api

import (
	"net/http"
	"time"

	"dormstay/internal/domain/reservation"
	resdto "dormstay/internal/handler/dto/response"
	"dormstay/internal/handler/httperr"
	"dormstay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

const dateLayout = "2006-01-02"

func (h *AvailabilityHandler) ListVacantRooms(c *gin.Context) {
	residenceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid residence ID format", nil)
		return
	}

	from, err := time.Parse(dateLayout, c.Query("from"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing 'from' date (expected YYYY-MM-DD)", nil)
		return
	}
	to, err := time.Parse(dateLayout, c.Query("to"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing 'to' date (expected YYYY-MM-DD)", nil)
		return
	}

	stay, err := reservation.NewStayPeriod(from, to)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid stay period", nil)
		return
	}

	rooms, err := h.availability.ListVacantRooms(c.Request.Context(), residenceID, stay)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load vacancies", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rooms": resdto.FromRoomAvailabilities(rooms)})
}
