package queries

const (
	GetArtistByID = `
		SELECT
			id,
			user_id,
			name,
			created_at,
			updated_at
		FROM artists
		WHERE id = $1
	`

	GetArtistByUserID = `
		SELECT
			id,
			user_id,
			name,
			created_at,
			updated_at
		FROM artists
		WHERE user_id = $1
	`
)
