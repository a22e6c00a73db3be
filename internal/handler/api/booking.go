package api

import (
	"errors"
	"net/http"

	reqdto "dormstay/internal/handler/dto/request"
	resdto "dormstay/internal/handler/dto/response"
	"dormstay/internal/handler/middleware"
	"dormstay/internal/pkg/errs"
	"dormstay/internal/usecase/commands"
	"dormstay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookings   commands.BookingCommands
	lifecycle  commands.LifecycleCommands
	resQueries queries.ReservationQueries
}

func NewBookingHandler(
	bookings commands.BookingCommands,
	lifecycle commands.LifecycleCommands,
	resQueries queries.ReservationQueries,
) *BookingHandler {
	return &BookingHandler{
		bookings:   bookings,
		lifecycle:  lifecycle,
		resQueries: resQueries,
	}
}

func (h *BookingHandler) CreateReservation(c *gin.Context) {
	studentID, ok := middleware.GetStudentID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.ReserveRoomParams{
		StudentID:   studentID,
		RoomID:      req.RoomID,
		ResidenceID: req.ResidenceID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		AmountCents: req.AmountCents,
	}

	view, err := h.bookings.ReserveRoom(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid stay period",
			})
		case errors.Is(err, errs.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, errs.ErrResidenceMismatch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Room does not belong to the given residence",
			})
		case errors.Is(err, errs.ErrRoomInactive):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Room is not accepting reservations",
			})
		case errors.Is(err, errs.ErrRoomUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No beds available for the requested room",
			})
		case errors.Is(err, errs.ErrDuplicateActiveBooking):
			c.JSON(http.StatusConflict, gin.H{
				"error": "An overlapping booking already exists for this residence",
			})
		case errors.Is(err, errs.ErrPaymentFailed):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Payment was declined",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

func (h *BookingHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.resQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, errs.ErrReservationNotOwned):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Reservation belongs to another student",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *BookingHandler) ListMyReservations(c *gin.Context) {
	studentID, ok := middleware.GetStudentID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.resQueries.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reservations": resdto.FromReservationViews(views)})
}

func (h *BookingHandler) CancelReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if err := h.lifecycle.Cancel(c.Request.Context(), actor, id); err != nil {
		h.writeLifecycleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) ApproveReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	if err := h.lifecycle.Approve(c.Request.Context(), id); err != nil {
		h.writeLifecycleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) CompleteReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	if err := h.lifecycle.Complete(c.Request.Context(), id); err != nil {
		h.writeLifecycleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) writeLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, errs.ErrReservationNotOwned):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Reservation belongs to another student",
		})
	case errors.Is(err, errs.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Reservation is not in a state that allows this operation",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
