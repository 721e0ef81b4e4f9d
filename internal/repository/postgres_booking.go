package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/horizone-travel/hotel-booking-api/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (hotel_id, user_id, check_in, check_out, room_number)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, payment_status, payment_method, created_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		booking.HotelID,
		booking.UserID,
		booking.CheckIn,
		booking.CheckOut,
		booking.RoomNumber,
	).Scan(&booking.ID, &booking.PaymentStatus, &booking.PaymentMethod, &booking.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrHotelNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresBookingRepository) GetById(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	query := `
		SELECT id, hotel_id, user_id, check_in, check_out, room_number, payment_status, payment_method, created_at
		FROM bookings
		WHERE id = $1
	`

	var booking domain.Booking

	err := p.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.HotelID,
		&booking.UserID,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.RoomNumber,
		&booking.PaymentStatus,
		&booking.PaymentMethod,
		&booking.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &booking, nil
}

func (p *PostgresBookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	query := `
		SELECT id, hotel_id, user_id, check_in, check_out, room_number, payment_status, payment_method, created_at
		FROM bookings
		ORDER BY created_at DESC
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (p *PostgresBookingRepository) GetByHotelId(ctx context.Context, hotelId uuid.UUID) ([]domain.Booking, error) {
	query := `
		SELECT id, hotel_id, user_id, check_in, check_out, room_number, payment_status, payment_method, created_at
		FROM bookings
		WHERE hotel_id = $1
		ORDER BY created_at DESC
	`

	rows, err := p.db.Query(ctx, query, hotelId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBookings(rows)
}

// MarkPaid applies the PENDING to PAID transition as one conditional
// statement. Concurrent calls for the same booking are safe: exactly one
// matches the WHERE clause, the rest observe an already paid booking and
// return applied=false with no error.
func (p *PostgresBookingRepository) MarkPaid(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE bookings
		SET payment_status = $1
		WHERE id = $2 AND payment_status = $3
	`

	tag, err := p.db.Exec(ctx, query, domain.PaymentStatusPaid, id, domain.PaymentStatusPending)
	if err != nil {
		return false, err
	}

	if tag.RowsAffected() == 1 {
		return true, nil
	}

	// Nothing matched: either the booking is gone or another delivery got
	// there first. The follow-up read is only for classification, the
	// transition itself already happened (or not) atomically above.
	var status domain.PaymentStatus

	err = p.db.QueryRow(ctx, `SELECT payment_status FROM bookings WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, domain.ErrRecordNotFound
		}

		return false, err
	}

	if status != domain.PaymentStatusPaid {
		return false, fmt.Errorf("booking %s in unexpected payment status %q", id, status)
	}

	return false, nil
}

func scanBookings(rows pgx.Rows) ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking

		err := rows.Scan(
			&booking.ID,
			&booking.HotelID,
			&booking.UserID,
			&booking.CheckIn,
			&booking.CheckOut,
			&booking.RoomNumber,
			&booking.PaymentStatus,
			&booking.PaymentMethod,
			&booking.CreatedAt,
		)

		if err != nil {
			return nil, err
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
