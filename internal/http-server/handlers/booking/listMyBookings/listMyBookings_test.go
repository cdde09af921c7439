package listMyBookings

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitbooker/internal/http-server/handlers/booking/listMyBookings/mocks"
	"fitbooker/internal/http-server/middleware/auth"
	"fitbooker/internal/lib/logger/handlers/slogdiscard"
	"fitbooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMyBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testUser := &models.User{ID: 7, Name: "Priya", Email: "priya@example.com"}

	newer := models.Booking{
		ID: 2, UserID: 7, ClassID: 5,
		ClientName: "Priya", ClientEmail: "priya@example.com",
		CreatedAt: time.Date(2026, 1, 16, 9, 0, 0, 0, time.UTC),
	}
	older := models.Booking{
		ID: 1, UserID: 7, ClassID: 3,
		ClientName: "Priya", ClientEmail: "priya@example.com",
		CreatedAt: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name           string
		user           *models.User
		mockSetup      func(mock *mocks.BookingsProvider)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success most recent first",
			user: testUser,
			mockSetup: func(m *mocks.BookingsProvider) {
				m.On("ListBookingsForUser", int64(7)).Return([]models.Booking{newer, older}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp BookingsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "OK", resp.Status)
				require.Len(t, resp.Bookings, 2)
				assert.Equal(t, int64(2), resp.Bookings[0].ID)
				assert.Equal(t, int64(1), resp.Bookings[1].ID)
			},
		},
		{
			name: "No bookings",
			user: testUser,
			mockSetup: func(m *mocks.BookingsProvider) {
				m.On("ListBookingsForUser", int64(7)).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"bookings":[]`)
			},
		},
		{
			name:           "Not authenticated",
			user:           nil,
			mockSetup:      func(m *mocks.BookingsProvider) {},
			expectedStatus: http.StatusUnauthorized,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"not authenticated"}`, body)
			},
		},
		{
			name: "Internal server error",
			user: testUser,
			mockSetup: func(m *mocks.BookingsProvider) {
				m.On("ListBookingsForUser", int64(7)).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to get bookings"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewBookingsProvider(t)
			tc.mockSetup(mockProvider)

			handler := New(logger, mockProvider)

			req := httptest.NewRequest("GET", "/bookings", nil)
			if tc.user != nil {
				req = req.WithContext(auth.ContextWithUser(req.Context(), tc.user))
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())
		})
	}
}
