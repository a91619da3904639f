package analysisRepository

const (
	queryCreateAnalysis = `
		INSERT INTO analyses (
			id,
			user_id,
			media_url,
			shot_type,
			result,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:media_url,
			:shot_type,
			:result,
			:created_at,
			:updated_at
		)
	`

	queryGetAnalysisByID = `
		SELECT
			id,
			user_id,
			media_url,
			shot_type,
			result,
			created_at,
			updated_at
		FROM analyses
		WHERE id = :id
	`

	queryGetAnalysesByUserID = `
		SELECT
			id,
			user_id,
			media_url,
			shot_type,
			result,
			created_at,
			updated_at
		FROM analyses
		WHERE user_id = :user_id
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountAnalysesByUserID = `
		SELECT COUNT(1) FROM analyses WHERE user_id = :user_id
	`

	queryDeleteAnalysis = `
		DELETE FROM analyses WHERE id = :id
	`
)
