package model

// Texture is one logical texture and everywhere it is used.
type Texture struct {
	ID   string
	Name string
	Uses []Use
}

// Use is a declared placement of a texture. Editions rarely holds more than
// one entry; the first one decides which repository the use belongs to.
type Use struct {
	ID       string
	Editions []string
	Paths    []TexturePath
}

// Edition returns the primary edition of the use, or "" when undeclared.
func (u Use) Edition() string {
	if len(u.Editions) == 0 {
		return ""
	}
	return u.Editions[0]
}

// TexturePath is one relative file path and the game versions it applies to.
type TexturePath struct {
	Path     string
	Versions []string
}
