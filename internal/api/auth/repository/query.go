package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			username,
			email,
			password,
			created_at,
			updated_at
		) VALUES (
			:id,
			:username,
			:email,
			:password,
			:created_at,
			:updated_at
		)
	`

	queryGetUserByEmail = `
		SELECT
			id,
			username,
			email,
			password,
			created_at,
			updated_at
		FROM users
		WHERE email = :email
	`

	queryGetUserByID = `
		SELECT
			id,
			username,
			email,
			password,
			created_at,
			updated_at
		FROM users
		WHERE id = :id
	`
)
