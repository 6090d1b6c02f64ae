package queries

const (
	GetWindowsByStudioAndDateRange = `
		SELECT
			id,
			studio_id,
			to_char(date, 'YYYY-MM-DD'),
			to_char(start_time, 'HH24:MI'),
			to_char(end_time, 'HH24:MI'),
			price_override,
			is_available,
			created_at,
			updated_at
		FROM availability_windows
		WHERE studio_id = $1
			AND date BETWEEN $2::date AND $3::date
		ORDER BY date ASC, start_time ASC
	`

	GetWindowsByStudioAndDate = `
		SELECT
			id,
			studio_id,
			to_char(date, 'YYYY-MM-DD'),
			to_char(start_time, 'HH24:MI'),
			to_char(end_time, 'HH24:MI'),
			price_override,
			is_available,
			created_at,
			updated_at
		FROM availability_windows
		WHERE studio_id = $1
			AND date = $2::date
		ORDER BY start_time ASC
	`

	GetWindowByID = `
		SELECT
			id,
			studio_id,
			to_char(date, 'YYYY-MM-DD'),
			to_char(start_time, 'HH24:MI'),
			to_char(end_time, 'HH24:MI'),
			price_override,
			is_available,
			created_at,
			updated_at
		FROM availability_windows
		WHERE id = $1
	`

	CountOverlappingWindows = `
		SELECT COUNT(1)
		FROM availability_windows
		WHERE studio_id = $1
			AND date = $2::date
			AND start_time < $4::time
			AND $3::time < end_time
	`

	InsertWindow = `
		INSERT INTO availability_windows (
			id,
			studio_id,
			date,
			start_time,
			end_time,
			price_override,
			is_available,
			created_at,
			updated_at
		) VALUES ($1, $2, $3::date, $4::time, $5::time, $6, $7, NOW(), NOW())
		RETURNING
			id,
			studio_id,
			to_char(date, 'YYYY-MM-DD'),
			to_char(start_time, 'HH24:MI'),
			to_char(end_time, 'HH24:MI'),
			price_override,
			is_available,
			created_at,
			updated_at
	`

	DeleteWindow = `
		DELETE FROM availability_windows
		WHERE id = $1
	`

	GetAvailableDatesByStudioAndDateRange = `
		SELECT DISTINCT to_char(date, 'YYYY-MM-DD')
		FROM availability_windows
		WHERE studio_id = $1
			AND date BETWEEN $2::date AND $3::date
			AND is_available = TRUE
	`
)
