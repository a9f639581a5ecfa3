package model

import "time"

// Contribution is one append-only record of an accepted texture.
type Contribution struct {
	ID         string
	Date       time.Time
	Resolution int
	Pack       string
	TextureID  string
	Authors    []string
}
