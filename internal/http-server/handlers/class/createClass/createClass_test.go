package createClass

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitbooker/internal/http-server/handlers/class/createClass/mocks"
	"fitbooker/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateClassHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	// 2030-01-01T10:00:00Z == 2030-01-01T15:30:00+05:30
	wantInstant := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	sameInstant := func(got time.Time) bool { return got.Equal(wantInstant) }

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.ClassCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			requestBody: `{
				"name": "Morning Yoga",
				"dateTime": "2030-01-01T10:00:00Z",
				"instructor": "Asha",
				"availableSlots": 20
			}`,
			mockSetup: func(m *mocks.ClassCreator) {
				m.On("CreateClass", "Morning Yoga", mock.MatchedBy(sameInstant), "Asha", 20).
					Return(int64(5), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","class_id":5}`,
		},
		{
			name: "Naive dateTime taken as IST",
			requestBody: `{
				"name": "Morning Yoga",
				"dateTime": "2030-01-01T15:30:00",
				"instructor": "Asha",
				"availableSlots": 20
			}`,
			mockSetup: func(m *mocks.ClassCreator) {
				// Offsetless input equals the same instant as 10:00 UTC only
				// because it is interpreted as IST rather than shifted.
				m.On("CreateClass", "Morning Yoga", mock.MatchedBy(sameInstant), "Asha", 20).
					Return(int64(6), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","class_id":6}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.ClassCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name: "Missing name",
			requestBody: `{
				"dateTime": "2030-01-01T10:00:00Z",
				"instructor": "Asha",
				"availableSlots": 20
			}`,
			mockSetup:      func(m *mocks.ClassCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Name")
			},
		},
		{
			name: "Unparseable dateTime",
			requestBody: `{
				"name": "Morning Yoga",
				"dateTime": "01.06.2030 18:00",
				"instructor": "Asha",
				"availableSlots": 20
			}`,
			mockSetup:      func(m *mocks.ClassCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid dateTime format"}`,
		},
		{
			name: "Past dateTime",
			requestBody: `{
				"name": "Morning Yoga",
				"dateTime": "2020-01-01T10:00:00Z",
				"instructor": "Asha",
				"availableSlots": 20
			}`,
			mockSetup:      func(m *mocks.ClassCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"class time cannot be in the past"}`,
		},
		{
			name: "Zero slots",
			requestBody: `{
				"name": "Morning Yoga",
				"dateTime": "2030-01-01T10:00:00Z",
				"instructor": "Asha",
				"availableSlots": 0
			}`,
			mockSetup:      func(m *mocks.ClassCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "AvailableSlots")
			},
		},
		{
			name: "Too many slots",
			requestBody: `{
				"name": "Morning Yoga",
				"dateTime": "2030-01-01T10:00:00Z",
				"instructor": "Asha",
				"availableSlots": 101
			}`,
			mockSetup:      func(m *mocks.ClassCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "AvailableSlots")
			},
		},
		{
			name: "Internal server error",
			requestBody: `{
				"name": "Morning Yoga",
				"dateTime": "2030-01-01T10:00:00Z",
				"instructor": "Asha",
				"availableSlots": 20
			}`,
			mockSetup: func(m *mocks.ClassCreator) {
				m.On("CreateClass", "Morning Yoga", mock.MatchedBy(sameInstant), "Asha", 20).
					Return(int64(0), errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create class"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewClassCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/classes", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
