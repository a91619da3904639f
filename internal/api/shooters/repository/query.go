package shootersRepository

const (
	queryCreateShooter = `
		INSERT INTO shooters (
			id,
			name,
			team,
			position,
			image_url,
			benchmarks,
			created_at,
			updated_at
		) VALUES (
			:id,
			:name,
			:team,
			:position,
			:image_url,
			:benchmarks,
			:created_at,
			:updated_at
		)
	`

	queryGetShooterByID = `
		SELECT
			id,
			name,
			team,
			position,
			image_url,
			benchmarks,
			created_at,
			updated_at
		FROM shooters
		WHERE id = :id
	`

	queryGetAllShooters = `
		SELECT
			id,
			name,
			team,
			position,
			image_url,
			benchmarks,
			created_at,
			updated_at
		FROM shooters
		ORDER BY name ASC
	`

	queryUpdateShooter = `
		UPDATE shooters SET
			name = :name,
			team = :team,
			position = :position,
			image_url = :image_url,
			benchmarks = :benchmarks,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteShooter = `
		DELETE FROM shooters WHERE id = :id
	`
)
