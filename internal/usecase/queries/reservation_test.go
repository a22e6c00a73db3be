//go:build unit

package queries_test

import (
	"context"
	"testing"

	"dormstay/internal/domain/student"
	"dormstay/internal/infra"
	"dormstay/internal/pkg/errs"
	"dormstay/internal/usecase/queries"
	"dormstay/internal/usecase/shared"
	"dormstay/tests/common/builder"
	queriesmock "dormstay/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationQueriesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockReads *queriesmock.MockReservationReadStore
	queries   queries.ReservationQueries
}

func (s *ReservationQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReads = queriesmock.NewMockReservationReadStore(s.mockCtrl)
	s.queries = queries.NewReservationQueries(s.mockReads)
}

func (s *ReservationQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReservationQueriesTestSuite))
}

func (s *ReservationQueriesTestSuite) TestGetByID() {
	ctx := context.Background()

	s.Run("owner reads own reservation", func() {
		view := builder.NewReservationBuilder().BuildView()
		actor := shared.Actor{ID: view.StudentID, Role: student.RoleStudent}

		s.mockReads.EXPECT().FindViewByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := s.queries.GetByID(ctx, actor, view.ID)
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("staff reads any reservation", func() {
		view := builder.NewReservationBuilder().BuildView()
		actor := shared.Actor{ID: uuid.New(), Role: student.RoleStaff}

		s.mockReads.EXPECT().FindViewByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := s.queries.GetByID(ctx, actor, view.ID)
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("another student is refused", func() {
		view := builder.NewReservationBuilder().BuildView()
		actor := shared.Actor{ID: uuid.New(), Role: student.RoleStudent}

		s.mockReads.EXPECT().FindViewByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := s.queries.GetByID(ctx, actor, view.ID)
		s.ErrorIs(err, errs.ErrReservationNotOwned)
	})

	s.Run("not found", func() {
		id := uuid.New()
		actor := shared.Actor{ID: uuid.New(), Role: student.RoleStudent}

		s.mockReads.EXPECT().FindViewByID(gomock.Any(), id).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "no reservation"))

		_, err := s.queries.GetByID(ctx, actor, id)
		s.ErrorIs(err, errs.ErrReservationNotFound)
	})

	s.Run("store failure", func() {
		id := uuid.New()
		actor := shared.Actor{ID: uuid.New(), Role: student.RoleStudent}

		s.mockReads.EXPECT().FindViewByID(gomock.Any(), id).
			Return(nil, infra.NewRepoErr(infra.KindDBFailure, "connection lost"))

		_, err := s.queries.GetByID(ctx, actor, id)
		s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
	})
}

func (s *ReservationQueriesTestSuite) TestListByStudent() {
	ctx := context.Background()
	studentID := uuid.New()

	s.Run("returns student's reservations", func() {
		views := []*queries.ReservationView{
			builder.NewReservationBuilder().BuildView(),
			builder.NewReservationBuilder().BuildView(),
		}

		s.mockReads.EXPECT().FindViewsByStudent(gomock.Any(), studentID).Return(views, nil)

		got, err := s.queries.ListByStudent(ctx, studentID)
		s.Require().NoError(err)
		s.Len(got, 2)
	})

	s.Run("empty history", func() {
		s.mockReads.EXPECT().FindViewsByStudent(gomock.Any(), studentID).Return(nil, nil)

		got, err := s.queries.ListByStudent(ctx, studentID)
		s.Require().NoError(err)
		s.Empty(got)
	})
}
