package integration_test

const (
	dbName         = "hotel_booking"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"

	// User related constants
	TestUserName     = "John Doe"
	TestUserEmail    = "test@example.com"
	TestUserPassword = "Test123!@#"

	// Hotel related constants, matching testdata/hotels_up.sql
	TestHotelId        = "1f0a7f38-3a55-4d26-9f6b-2b9e5f1a9c01"
	TestHotelName      = "Grand Meridian"
	TestStripePriceId  = "price_1TestABC"
	TestNoPriceHotelId = "2a1b8c49-4b66-5e37-a07c-3cafe602ad12"

	// Webhook signing secret shared with the mock payment provider
	TestWebhookSecret = "whsec_test_secret"
)
