package integration_test

import (
	"log/slog"
	"os"

	"github.com/horizone-travel/hotel-booking-api/internal/app"
	"github.com/horizone-travel/hotel-booking-api/internal/mailer"
	"github.com/horizone-travel/hotel-booking-api/internal/payment"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App             *app.Application
	DB              *pgxpool.Pool
	RedisClient     *redis.Client
	Mailer          *mailer.MockMailer
	PaymentProvider *payment.MockPaymentProvider
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	paymentProvider := payment.NewMockPaymentProvider(TestWebhookSecret)
	mockMailer := mailer.NewMockMailer()

	application := app.New(cfg, logger, db, redisClient, paymentProvider, mockMailer)

	return &TestApp{
		App:             application,
		DB:              db,
		RedisClient:     redisClient,
		Mailer:          mockMailer,
		PaymentProvider: paymentProvider,
	}, nil
}
