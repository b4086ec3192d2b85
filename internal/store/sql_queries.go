package store

const (
	listAddons = `
		SELECT
			url,
			name,
			description
		FROM addons
		ORDER BY position;`

	deleteAllAddons = `
		DELETE FROM addons;`

	insertAddon = `
		INSERT INTO addons (
			position,
			url,
			name,
			description
		) VALUES ($1, $2, $3, $4);`
)
