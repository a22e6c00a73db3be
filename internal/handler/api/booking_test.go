//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"dormstay/internal/domain/student"
	"dormstay/internal/handler/api"
	"dormstay/internal/handler/dto/response"
	"dormstay/internal/pkg/errs"
	"dormstay/internal/usecase/queries"
	"dormstay/internal/usecase/shared"
	"dormstay/tests/common/builder"
	apptest "dormstay/tests/common/httptest"
	commandsmock "dormstay/tests/mock/commands"
	queriesmock "dormstay/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockBookings  *commandsmock.MockBookingCommands
	mockLifecycle *commandsmock.MockLifecycleCommands
	mockQueries   *queriesmock.MockReservationQueries
	router        *gin.Engine

	actorID   uuid.UUID
	actorRole student.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockLifecycle = commandsmock.NewMockLifecycleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)

	s.actorID = uuid.New()
	s.actorRole = student.RoleStudent

	handler := api.NewBookingHandler(s.mockBookings, s.mockLifecycle, s.mockQueries)

	s.router = gin.New()
	s.router.Use(func(c *gin.Context) {
		c.Set("student_id", s.actorID)
		c.Set("student_role", s.actorRole)
		c.Next()
	})
	s.router.POST("/api/reservations", handler.CreateReservation)
	s.router.GET("/api/reservations", handler.ListMyReservations)
	s.router.GET("/api/reservations/:id", handler.GetReservation)
	s.router.POST("/api/reservations/:id/cancel", handler.CancelReservation)
	s.router.POST("/api/reservations/:id/approve", handler.ApproveReservation)
	s.router.POST("/api/reservations/:id/complete", handler.CompleteReservation)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateReservation() {
	rb := builder.NewReservationBuilder()
	req := rb.BuildCreateRequestDTO()

	s.Run("returns 201 with the created reservation", func() {
		view := rb.BuildView()
		s.mockBookings.EXPECT().ReserveRoom(gomock.Any(), gomock.Any()).Return(view, nil)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations", req, "")

		s.Equal(http.StatusCreated, w.Code)

		var actual response.ReservationResponse
		_ = apptest.DecodeResponseBody(s.T(), w.Body, &actual)

		expected := &response.ReservationResponse{
			ID:          view.ID,
			StudentID:   view.StudentID,
			RoomID:      view.RoomID,
			RoomNumber:  view.RoomNumber,
			ResidenceID: view.ResidenceID,
			Status:      view.Status,
			AmountCents: view.AmountCents,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReservationResponse{}, "StartDate", "EndDate", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			s.T().Errorf("Reservation response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("malformed body returns 400", func() {
		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations",
			map[string]any{"room_id": "not-a-uuid"}, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})

	errorCases := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid stay period", errs.ErrInvalidDateRange, http.StatusBadRequest},
		{"room not found", errs.ErrRoomNotFound, http.StatusNotFound},
		{"residence mismatch", errs.ErrResidenceMismatch, http.StatusUnprocessableEntity},
		{"inactive room", errs.ErrRoomInactive, http.StatusUnprocessableEntity},
		{"no beds left", errs.ErrRoomUnavailable, http.StatusConflict},
		{"overlapping booking", errs.ErrDuplicateActiveBooking, http.StatusConflict},
		{"payment declined", errs.ErrPaymentFailed, http.StatusPaymentRequired},
		{"store failure", errs.ErrDatabaseOperationFailed, http.StatusInternalServerError},
	}
	for _, tc := range errorCases {
		s.Run(tc.name, func() {
			// Usecases surface sentinels as marks on lower-level causes, so the
			// handler must map them without seeing the bare sentinel.
			s.mockBookings.EXPECT().ReserveRoom(gomock.Any(), gomock.Any()).
				Return(nil, errs.Mark(errs.New("underlying failure"), tc.err))

			w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations", req, "")

			s.Equal(tc.status, w.Code)
		})
	}
}

func (s *BookingHandlerTestSuite) TestGetReservation() {
	s.Run("returns the reservation", func() {
		view := builder.NewReservationBuilder().BuildView()
		actor := shared.Actor{ID: s.actorID, Role: s.actorRole}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), actor, view.ID).Return(view, nil)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/"+view.ID.String(), nil, "")

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("invalid id returns 400", func() {
		w := apptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/not-a-uuid", nil, "")

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("not found returns 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), id).Return(nil, errs.ErrReservationNotFound)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/"+id.String(), nil, "")

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("another student's reservation returns 403", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), id).Return(nil, errs.ErrReservationNotOwned)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/"+id.String(), nil, "")

		s.Equal(http.StatusForbidden, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestListMyReservations() {
	s.mockQueries.EXPECT().ListByStudent(gomock.Any(), s.actorID).
		Return([]*queries.ReservationView{builder.NewReservationBuilder().BuildView()}, nil)

	w := apptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations", nil, "")

	s.Equal(http.StatusOK, w.Code)

	var body map[string]any
	_ = apptest.DecodeResponseBody(s.T(), w.Body, &body)
	s.Len(body["reservations"], 1)
}

func (s *BookingHandlerTestSuite) TestCancelReservation() {
	id := uuid.New()

	s.Run("returns 204", func() {
		actor := shared.Actor{ID: s.actorID, Role: s.actorRole}
		s.mockLifecycle.EXPECT().Cancel(gomock.Any(), actor, id).Return(nil)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations/"+id.String()+"/cancel", nil, "")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("not owned returns 403", func() {
		s.mockLifecycle.EXPECT().Cancel(gomock.Any(), gomock.Any(), id).Return(errs.ErrReservationNotOwned)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations/"+id.String()+"/cancel", nil, "")

		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("terminal state returns 409", func() {
		s.mockLifecycle.EXPECT().Cancel(gomock.Any(), gomock.Any(), id).Return(errs.ErrInvalidTransition)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations/"+id.String()+"/cancel", nil, "")

		s.Equal(http.StatusConflict, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestApproveReservation() {
	id := uuid.New()

	s.Run("returns 204", func() {
		s.mockLifecycle.EXPECT().Approve(gomock.Any(), id).Return(nil)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations/"+id.String()+"/approve", nil, "")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("not found returns 404", func() {
		s.mockLifecycle.EXPECT().Approve(gomock.Any(), id).Return(errs.ErrReservationNotFound)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations/"+id.String()+"/approve", nil, "")

		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestCompleteReservation() {
	id := uuid.New()

	s.Run("returns 204", func() {
		s.mockLifecycle.EXPECT().Complete(gomock.Any(), id).Return(nil)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations/"+id.String()+"/complete", nil, "")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("not active returns 409", func() {
		s.mockLifecycle.EXPECT().Complete(gomock.Any(), id).Return(errs.ErrInvalidTransition)

		w := apptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations/"+id.String()+"/complete", nil, "")

		s.Equal(http.StatusConflict, w.Code)
	})
}
