package queries

const (
	bookingColumns = `
			b.id,
			b.studio_id,
			b.artist_id,
			b.start_datetime,
			b.end_datetime,
			b.status,
			b.created_at,
			b.updated_at,
			s.name,
			a.name `

	bookingJoins = `
		FROM bookings b
		JOIN studios s ON s.id = b.studio_id
		JOIN artists a ON a.id = b.artist_id `

	GetBookingByID = `
		SELECT ` + bookingColumns + bookingJoins + `
		WHERE b.id = $1
	`

	GetActiveBookingsByStudioAndInterval = `
		SELECT ` + bookingColumns + bookingJoins + `
		WHERE b.studio_id = $1
			AND b.status IN ('pending', 'confirmed')
			AND b.start_datetime < $3
			AND $2 < b.end_datetime
		ORDER BY b.start_datetime ASC
	`

	GetActiveBookingsByStudioAndRange = `
		SELECT ` + bookingColumns + bookingJoins + `
		WHERE b.studio_id = $1
			AND b.status IN ('pending', 'confirmed')
			AND b.start_datetime >= $2
			AND b.start_datetime < $3
		ORDER BY b.start_datetime ASC
	`

	GetActiveBookingsByArtistAndRange = `
		SELECT ` + bookingColumns + bookingJoins + `
		WHERE b.artist_id = $1
			AND b.status IN ('pending', 'confirmed')
			AND b.start_datetime >= $2
			AND b.start_datetime < $3
		ORDER BY b.start_datetime ASC
	`

	GetBookingsByStudioAndRange = `
		SELECT ` + bookingColumns + bookingJoins + `
		WHERE b.studio_id = $1
			AND b.start_datetime >= $2
			AND b.start_datetime < $3
		ORDER BY b.start_datetime ASC
	`

	GetBookingsByArtistAndRange = `
		SELECT ` + bookingColumns + bookingJoins + `
		WHERE b.artist_id = $1
			AND b.start_datetime >= $2
			AND b.start_datetime < $3
		ORDER BY b.start_datetime ASC
	`

	InsertBooking = `
		WITH inserted AS (
			INSERT INTO bookings (
				id,
				studio_id,
				artist_id,
				start_datetime,
				end_datetime,
				status,
				created_at,
				updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			RETURNING *
		)
		SELECT
			b.id,
			b.studio_id,
			b.artist_id,
			b.start_datetime,
			b.end_datetime,
			b.status,
			b.created_at,
			b.updated_at,
			s.name,
			a.name
		FROM inserted b
		JOIN studios s ON s.id = b.studio_id
		JOIN artists a ON a.id = b.artist_id
	`

	UpdateBookingStatus = `
		WITH updated AS (
			UPDATE bookings
			SET status = $2, updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT
			b.id,
			b.studio_id,
			b.artist_id,
			b.start_datetime,
			b.end_datetime,
			b.status,
			b.created_at,
			b.updated_at,
			s.name,
			a.name
		FROM updated b
		JOIN studios s ON s.id = b.studio_id
		JOIN artists a ON a.id = b.artist_id
	`

	GetElapsedConfirmedBookings = `
		SELECT ` + bookingColumns + bookingJoins + `
		WHERE b.status = 'confirmed'
			AND b.end_datetime <= $1
		ORDER BY b.end_datetime ASC
		LIMIT $2
	`
)
