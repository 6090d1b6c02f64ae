package queries

const (
	GetStudioByID = `
		SELECT
			id,
			owner_user_id,
			name,
			hourly_rate,
			created_at,
			updated_at
		FROM studios
		WHERE id = $1
	`

	GetStudioByOwnerUserID = `
		SELECT
			id,
			owner_user_id,
			name,
			hourly_rate,
			created_at,
			updated_at
		FROM studios
		WHERE owner_user_id = $1
	`
)
