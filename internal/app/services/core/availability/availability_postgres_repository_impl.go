package availability

import (
	"context"
	"database/sql"
	"errors"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/contracts"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/models"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/exceptions"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/queries"
	"github.com/lib/pq"
)

// Postgres error classes raised by the exclusion and uniqueness constraints
// on availability_windows. Both mean another window already occupies part of
// the requested interval.
const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

type availabilityPostgresRepository struct {
	DB *sql.DB
}

func NewAvailabilityPostgresRepository(db *sql.DB) contracts.AvailabilityRepository {
	return &availabilityPostgresRepository{
		DB: db,
	}
}

func (repo *availabilityPostgresRepository) FindByStudioAndDateRange(ctx context.Context, studioID, fromDate, toDate string) ([]models.AvailabilityWindow, error) {
	query := queries.GetWindowsByStudioAndDateRange
	rows, err := repo.DB.QueryContext(ctx, query, studioID, fromDate, toDate)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()
	return scanWindows(rows)
}

func (repo *availabilityPostgresRepository) FindByStudioAndDate(ctx context.Context, studioID, date string) ([]models.AvailabilityWindow, error) {
	query := queries.GetWindowsByStudioAndDate
	rows, err := repo.DB.QueryContext(ctx, query, studioID, date)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()
	return scanWindows(rows)
}

func (repo *availabilityPostgresRepository) FindByID(ctx context.Context, windowID string) (*models.AvailabilityWindow, error) {
	query := queries.GetWindowByID
	var window models.AvailabilityWindow
	err := repo.DB.QueryRowContext(ctx, query, windowID).Scan(
		&window.ID,
		&window.StudioID,
		&window.Date,
		&window.StartTime,
		&window.EndTime,
		&window.PriceOverride,
		&window.IsAvailable,
		&window.CreatedAt,
		&window.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &window, nil
}

func (repo *availabilityPostgresRepository) CountOverlapping(ctx context.Context, studioID, date, startTime, endTime string) (int, error) {
	query := queries.CountOverlappingWindows
	var count int
	err := repo.DB.QueryRowContext(ctx, query, studioID, date, startTime, endTime).Scan(&count)
	if err != nil {
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return count, nil
}

func (repo *availabilityPostgresRepository) CreateWindow(ctx context.Context, window *models.AvailabilityWindow) (*models.AvailabilityWindow, error) {
	query := queries.InsertWindow
	var insertedWindow models.AvailabilityWindow
	err := repo.DB.QueryRowContext(ctx, query,
		window.ID,
		window.StudioID,
		window.Date,
		window.StartTime,
		window.EndTime,
		window.PriceOverride,
		window.IsAvailable,
	).Scan(
		&insertedWindow.ID,
		&insertedWindow.StudioID,
		&insertedWindow.Date,
		&insertedWindow.StartTime,
		&insertedWindow.EndTime,
		&insertedWindow.PriceOverride,
		&insertedWindow.IsAvailable,
		&insertedWindow.CreatedAt,
		&insertedWindow.UpdatedAt,
	)
	if err != nil {
		if isOverlapViolation(err) {
			return nil, exceptions.ErrAvailabilityConflict(err)
		}
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return &insertedWindow, nil
}

func (repo *availabilityPostgresRepository) DeleteWindow(ctx context.Context, windowID string) error {
	query := queries.DeleteWindow
	result, err := repo.DB.ExecContext(ctx, query, windowID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if affected == 0 {
		return exceptions.ErrWindowNotFound(sql.ErrNoRows)
	}
	return nil
}

func (repo *availabilityPostgresRepository) FindAvailableDates(ctx context.Context, studioID, fromDate, toDate string) ([]string, error) {
	query := queries.GetAvailableDatesByStudioAndDateRange
	rows, err := repo.DB.QueryContext(ctx, query, studioID, fromDate, toDate)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		dates = append(dates, date)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return dates, nil
}

func scanWindows(rows *sql.Rows) ([]models.AvailabilityWindow, error) {
	var windows []models.AvailabilityWindow
	for rows.Next() {
		var model models.AvailabilityWindow
		if err := rows.Scan(
			&model.ID,
			&model.StudioID,
			&model.Date,
			&model.StartTime,
			&model.EndTime,
			&model.PriceOverride,
			&model.IsAvailable,
			&model.CreatedAt,
			&model.UpdatedAt,
		); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		windows = append(windows, model)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return windows, nil
}

func isOverlapViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == pgExclusionViolation || string(pqErr.Code) == pgUniqueViolation
}
