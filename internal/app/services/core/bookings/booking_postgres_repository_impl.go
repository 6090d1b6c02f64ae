package bookings

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/contracts"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/models"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/exceptions"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/queries"
	"github.com/lib/pq"
)

// Postgres error classes raised by the partial exclusion constraint on
// bookings. The constraint only spans pending and confirmed rows, so a
// violation always means a live double-booking attempt.
const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

type bookingPostgresRepository struct {
	DB *sql.DB
}

func NewBookingPostgresRepository(db *sql.DB) contracts.BookingRepository {
	return &bookingPostgresRepository{
		DB: db,
	}
}

func (repo *bookingPostgresRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	query := queries.GetBookingByID
	var booking models.Booking
	err := repo.DB.QueryRowContext(ctx, query, bookingID).Scan(
		&booking.ID,
		&booking.StudioID,
		&booking.ArtistID,
		&booking.StartDatetime,
		&booking.EndDatetime,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&booking.StudioName,
		&booking.ArtistName,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &booking, nil
}

func (repo *bookingPostgresRepository) FindActiveByStudioAndInterval(ctx context.Context, studioID string, start, end time.Time) ([]models.Booking, error) {
	return repo.queryBookings(ctx, queries.GetActiveBookingsByStudioAndInterval, studioID, start, end)
}

func (repo *bookingPostgresRepository) FindActiveByStudioAndRange(ctx context.Context, studioID string, from, to time.Time) ([]models.Booking, error) {
	return repo.queryBookings(ctx, queries.GetActiveBookingsByStudioAndRange, studioID, from, to)
}

func (repo *bookingPostgresRepository) FindActiveByArtistAndRange(ctx context.Context, artistID string, from, to time.Time) ([]models.Booking, error) {
	return repo.queryBookings(ctx, queries.GetActiveBookingsByArtistAndRange, artistID, from, to)
}

func (repo *bookingPostgresRepository) FindByStudioAndRange(ctx context.Context, studioID string, from, to time.Time) ([]models.Booking, error) {
	return repo.queryBookings(ctx, queries.GetBookingsByStudioAndRange, studioID, from, to)
}

func (repo *bookingPostgresRepository) FindByArtistAndRange(ctx context.Context, artistID string, from, to time.Time) ([]models.Booking, error) {
	return repo.queryBookings(ctx, queries.GetBookingsByArtistAndRange, artistID, from, to)
}

func (repo *bookingPostgresRepository) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	query := queries.InsertBooking
	var insertedBooking models.Booking
	err := repo.DB.QueryRowContext(ctx, query,
		booking.ID,
		booking.StudioID,
		booking.ArtistID,
		booking.StartDatetime,
		booking.EndDatetime,
		booking.Status,
	).Scan(
		&insertedBooking.ID,
		&insertedBooking.StudioID,
		&insertedBooking.ArtistID,
		&insertedBooking.StartDatetime,
		&insertedBooking.EndDatetime,
		&insertedBooking.Status,
		&insertedBooking.CreatedAt,
		&insertedBooking.UpdatedAt,
		&insertedBooking.StudioName,
		&insertedBooking.ArtistName,
	)
	if err != nil {
		if isOverlapViolation(err) {
			return nil, exceptions.ErrBookingConflict(err)
		}
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return &insertedBooking, nil
}

func (repo *bookingPostgresRepository) UpdateStatus(ctx context.Context, bookingID, status string) (*models.Booking, error) {
	query := queries.UpdateBookingStatus
	var updatedBooking models.Booking
	err := repo.DB.QueryRowContext(ctx, query, bookingID, status).Scan(
		&updatedBooking.ID,
		&updatedBooking.StudioID,
		&updatedBooking.ArtistID,
		&updatedBooking.StartDatetime,
		&updatedBooking.EndDatetime,
		&updatedBooking.Status,
		&updatedBooking.CreatedAt,
		&updatedBooking.UpdatedAt,
		&updatedBooking.StudioName,
		&updatedBooking.ArtistName,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	return &updatedBooking, nil
}

func (repo *bookingPostgresRepository) FindElapsedConfirmed(ctx context.Context, asOf time.Time, limit int) ([]models.Booking, error) {
	query := queries.GetElapsedConfirmedBookings
	rows, err := repo.DB.QueryContext(ctx, query, asOf, limit)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (repo *bookingPostgresRepository) queryBookings(ctx context.Context, query, participantID string, from, to time.Time) ([]models.Booking, error) {
	rows, err := repo.DB.QueryContext(ctx, query, participantID, from, to)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()
	return scanBookings(rows)
}

func scanBookings(rows *sql.Rows) ([]models.Booking, error) {
	var bookings []models.Booking
	for rows.Next() {
		var model models.Booking
		if err := rows.Scan(
			&model.ID,
			&model.StudioID,
			&model.ArtistID,
			&model.StartDatetime,
			&model.EndDatetime,
			&model.Status,
			&model.CreatedAt,
			&model.UpdatedAt,
			&model.StudioName,
			&model.ArtistName,
		); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		bookings = append(bookings, model)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return bookings, nil
}

func isOverlapViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == pgExclusionViolation || string(pqErr.Code) == pgUniqueViolation
}
