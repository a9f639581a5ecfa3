package db

import (
	"database/sql"
	"strings"

	"github.com/Faithful-Resource-Pack/Submission-Bot/model"
)

// rowScanner is an interface that can be satisfied by *sql.Row or *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// GetTexture retrieves a texture with all of its uses and paths.
// Returns nil, nil if the texture does not exist.
func GetTexture(textureID string) (*model.Texture, error) {
	var texture model.Texture
	row := DB.QueryRow(`SELECT id, name FROM textures WHERE id = ?`, textureID)
	if err := row.Scan(&texture.ID, &texture.Name); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	uses, err := getUses(textureID)
	if err != nil {
		return nil, err
	}
	texture.Uses = uses

	return &texture, nil
}

func getUses(textureID string) ([]model.Use, error) {
	rows, err := DB.Query(`SELECT id, editions FROM uses WHERE texture_id = ? ORDER BY id`, textureID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var uses []model.Use
	for rows.Next() {
		var use model.Use
		var editions string
		if err := rows.Scan(&use.ID, &editions); err != nil {
			return nil, err
		}
		use.Editions = splitList(editions)
		uses = append(uses, use)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range uses {
		paths, err := getPaths(uses[i].ID)
		if err != nil {
			return nil, err
		}
		uses[i].Paths = paths
	}

	return uses, nil
}

func getPaths(useID string) ([]model.TexturePath, error) {
	rows, err := DB.Query(`SELECT path, versions FROM paths WHERE use_id = ? ORDER BY id`, useID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []model.TexturePath
	for rows.Next() {
		var p model.TexturePath
		var versions string
		if err := rows.Scan(&p.Path, &versions); err != nil {
			return nil, err
		}
		p.Versions = splitList(versions)
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// AddTexture inserts a texture with its uses and paths in one transaction.
// Used by the import tooling and tests.
func AddTexture(texture model.Texture) error {
	tx, err := DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO textures(id, name) VALUES(?, ?)`, texture.ID, texture.Name); err != nil {
		return err
	}
	for _, use := range texture.Uses {
		if _, err := tx.Exec(`INSERT INTO uses(id, texture_id, editions) VALUES(?, ?, ?)`,
			use.ID, texture.ID, joinList(use.Editions)); err != nil {
			return err
		}
		for _, p := range use.Paths {
			if _, err := tx.Exec(`INSERT INTO paths(use_id, path, versions) VALUES(?, ?, ?)`,
				use.ID, p.Path, joinList(p.Versions)); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func splitList(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}

func joinList(items []string) string {
	return strings.Join(items, ",")
}
