package integration_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BookingFlowTestSuite struct {
	BaseSuite
}

func TestBookingFlowSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(BookingFlowTestSuite))
}

func (s *BookingFlowTestSuite) SetupTest() {
	executeSQLFile(s.T(), s.app.DB, "testdata/bookings_down.sql")
	executeSQLFile(s.T(), s.app.DB, "testdata/hotels_down.sql")
	executeSQLFile(s.T(), s.app.DB, "testdata/hotels_up.sql")
}

func (s *BookingFlowTestSuite) TestCreateBookingHandler() {
	cookies := s.app.authenticatedUserCookies(s.T())

	scenarios := []Scenario{
		{
			Name:             "returns 401 if an attempt is made without authentication",
			Method:           "POST",
			URL:              "/bookings",
			Body:             bytes.NewBufferString(`{"hotelId": "1f0a7f38-3a55-4d26-9f6b-2b9e5f1a9c01", "checkIn": "2025-07-01", "checkOut": "2025-07-03", "roomNumber": 12}`),
			ExpectedStatus:   http.StatusUnauthorized,
			ExpectedResponse: `{"message": "You must be authenticated to access this resource"}`,
		},
		{
			Name:             "returns 404 when the hotel does not exist",
			Method:           "POST",
			URL:              "/bookings",
			Body:             bytes.NewBufferString(`{"hotelId": "9e107d9d-3721-4c62-8a7e-000000000000", "checkIn": "2025-07-01", "checkOut": "2025-07-03", "roomNumber": 12}`),
			Cookies:          cookies,
			ExpectedStatus:   http.StatusNotFound,
			ExpectedResponse: `{"message": "hotel not found"}`,
		},
		{
			Name:           "returns 422 when check-out is not after check-in",
			Method:         "POST",
			URL:            "/bookings",
			Body:           bytes.NewBufferString(fmt.Sprintf(`{"hotelId": %q, "checkIn": "2025-07-03", "checkOut": "2025-07-01", "roomNumber": 12}`, TestHotelId)),
			Cookies:        cookies,
			ExpectedStatus: http.StatusUnprocessableEntity,
		},
		{
			Name:           "successfully creates a booking in pending state",
			Method:         "POST",
			URL:            "/bookings",
			Body:           bytes.NewBufferString(fmt.Sprintf(`{"hotelId": %q, "checkIn": "2025-07-01", "checkOut": "2025-07-03", "roomNumber": 12}`, TestHotelId)),
			Cookies:        cookies,
			ExpectedStatus: http.StatusCreated,
			AfterTestFunc: func(t testing.TB, app *TestApp, res *http.Response) {
				var status string
				err := app.DB.QueryRow(
					context.Background(),
					`SELECT payment_status FROM bookings ORDER BY created_at DESC LIMIT 1`,
				).Scan(&status)
				require.NoError(t, err)
				require.Equal(t, "PENDING", status)
			},
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *BookingFlowTestSuite) TestGetHotels() {
	req := httptest.NewRequest(http.MethodGet, "/hotels", nil)
	rec := httptest.NewRecorder()

	s.app.App.Routes().ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), TestHotelName)
	s.NotContains(rec.Body.String(), TestStripePriceId, "price mapping must not be exposed")
}
