package db

import "log"

// createTables creates the texture and contribution tables.
func createTables() {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS textures (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS uses (
			id TEXT PRIMARY KEY,
			texture_id TEXT NOT NULL,
			editions TEXT NOT NULL DEFAULT '',
			FOREIGN KEY (texture_id) REFERENCES textures(id)
		)`,
		`CREATE TABLE IF NOT EXISTS paths (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			use_id TEXT NOT NULL,
			path TEXT NOT NULL,
			versions TEXT NOT NULL DEFAULT '',
			FOREIGN KEY (use_id) REFERENCES uses(id)
		)`,
		`CREATE TABLE IF NOT EXISTS contributions (
			id TEXT PRIMARY KEY,
			date INTEGER NOT NULL,
			resolution INTEGER NOT NULL,
			pack TEXT NOT NULL,
			texture_id TEXT NOT NULL,
			authors TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_uses_texture ON uses(texture_id)`,
		`CREATE INDEX IF NOT EXISTS idx_paths_use ON paths(use_id)`,
		`CREATE INDEX IF NOT EXISTS idx_contributions_texture ON contributions(texture_id)`,
	}

	for _, stmt := range statements {
		if _, err := DB.Exec(stmt); err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
	}
}
