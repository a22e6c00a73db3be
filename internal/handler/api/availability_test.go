//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"dormstay/internal/handler/api"
	"dormstay/internal/usecase/queries"
	apptest "dormstay/tests/common/httptest"
	queriesmock "dormstay/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAvailabilityRouter(t *testing.T) (*gin.Engine, *queriesmock.MockAvailabilityQueries) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockQueries := queriesmock.NewMockAvailabilityQueries(ctrl)

	router := gin.New()
	router.GET("/api/residences/:id/rooms/vacant", api.NewAvailabilityHandler(mockQueries).ListVacantRooms)
	return router, mockQueries
}

func TestListVacantRoomsHandler(t *testing.T) {
	residenceID := uuid.New()

	t.Run("returns the vacancy list", func(t *testing.T) {
		router, mockQueries := newAvailabilityRouter(t)
		mockQueries.EXPECT().ListVacantRooms(gomock.Any(), residenceID, gomock.Any()).
			Return([]*queries.RoomAvailability{
				{RoomID: uuid.New(), ResidenceID: residenceID, RoomNumber: "101", TotalBeds: 4, FreeBeds: 2},
			}, nil)

		w := apptest.PerformRequest(t, router, http.MethodGet,
			"/api/residences/"+residenceID.String()+"/rooms/vacant?from=2026-10-01&to=2026-12-20", nil, "")

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		_ = apptest.DecodeResponseBody(t, w.Body, &body)
		assert.Len(t, body["rooms"], 1)
	})

	t.Run("invalid residence id returns 400", func(t *testing.T) {
		router, _ := newAvailabilityRouter(t)

		w := apptest.PerformRequest(t, router, http.MethodGet,
			"/api/residences/not-a-uuid/rooms/vacant?from=2026-10-01&to=2026-12-20", nil, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing dates return 400", func(t *testing.T) {
		router, _ := newAvailabilityRouter(t)

		w := apptest.PerformRequest(t, router, http.MethodGet,
			"/api/residences/"+residenceID.String()+"/rooms/vacant", nil, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reversed dates return 400", func(t *testing.T) {
		router, _ := newAvailabilityRouter(t)

		w := apptest.PerformRequest(t, router, http.MethodGet,
			"/api/residences/"+residenceID.String()+"/rooms/vacant?from=2026-12-20&to=2026-10-01", nil, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
