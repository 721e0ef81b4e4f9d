package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/horizone-travel/hotel-booking-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresHotelRepository struct {
	db *pgxpool.Pool
}

func NewPostgresHotelRepository(db *pgxpool.Pool) *PostgresHotelRepository {
	return &PostgresHotelRepository{
		db: db,
	}
}

func (p *PostgresHotelRepository) Create(ctx context.Context, hotel *domain.Hotel) error {
	query := `
		INSERT INTO hotels (name, location, description, image, price, stripe_price_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	return p.db.QueryRow(
		ctx,
		query,
		hotel.Name,
		hotel.Location,
		hotel.Description,
		hotel.Image,
		hotel.Price,
		hotel.StripePriceID,
	).Scan(&hotel.ID, &hotel.CreatedAt)
}

func (p *PostgresHotelRepository) GetById(ctx context.Context, id uuid.UUID) (*domain.Hotel, error) {
	query := `
		SELECT id, name, location, description, image, rating, reviews, price, stripe_price_id, created_at
		FROM hotels
		WHERE id = $1
	`

	var hotel domain.Hotel

	err := p.db.QueryRow(ctx, query, id).Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.Location,
		&hotel.Description,
		&hotel.Image,
		&hotel.Rating,
		&hotel.Reviews,
		&hotel.Price,
		&hotel.StripePriceID,
		&hotel.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &hotel, nil
}

func (p *PostgresHotelRepository) GetAll(ctx context.Context) ([]domain.Hotel, error) {
	query := `
		SELECT id, name, location, description, image, rating, reviews, price, stripe_price_id, created_at
		FROM hotels
		ORDER BY created_at DESC
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hotels := make([]domain.Hotel, 0)

	for rows.Next() {
		var hotel domain.Hotel

		err := rows.Scan(
			&hotel.ID,
			&hotel.Name,
			&hotel.Location,
			&hotel.Description,
			&hotel.Image,
			&hotel.Rating,
			&hotel.Reviews,
			&hotel.Price,
			&hotel.StripePriceID,
			&hotel.CreatedAt,
		)

		if err != nil {
			return nil, err
		}

		hotels = append(hotels, hotel)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return hotels, nil
}
