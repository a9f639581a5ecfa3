package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/Faithful-Resource-Pack/Submission-Bot/model"
)

// AddContributions appends contribution records in a single transaction and
// returns the IDs of the inserted rows in input order.
func AddContributions(records []model.Contribution) ([]string, error) {
	if len(records) == 0 {
		return nil, nil
	}

	tx, err := DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO contributions(id, date, resolution, pack, texture_id, authors)
		VALUES(?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	ids := make([]string, 0, len(records))
	for _, record := range records {
		id := record.ID
		if id == "" {
			id = uuid.New().String()
		}
		_, err := stmt.Exec(id, record.Date.UnixMilli(), record.Resolution, record.Pack,
			record.TextureID, joinList(record.Authors))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, tx.Commit()
}

// GetContributionsByTexture returns all recorded contributions for a texture,
// oldest first.
func GetContributionsByTexture(textureID string) ([]model.Contribution, error) {
	rows, err := DB.Query(`SELECT id, date, resolution, pack, texture_id, authors
		FROM contributions WHERE texture_id = ? ORDER BY date`, textureID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.Contribution
	for rows.Next() {
		record, err := scanContribution(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

// scanContribution scans a row into a Contribution struct.
func scanContribution(scanner rowScanner) (*model.Contribution, error) {
	var record model.Contribution
	var date int64
	var authors string
	err := scanner.Scan(&record.ID, &date, &record.Resolution, &record.Pack, &record.TextureID, &authors)
	if err != nil {
		return nil, err
	}
	record.Date = time.UnixMilli(date).UTC()
	record.Authors = splitList(authors)
	return &record, nil
}
