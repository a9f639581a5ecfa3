package textures

import (
	"path/filepath"
	"strings"

	"github.com/Faithful-Resource-Pack/Submission-Bot/model"
)

// ResolvePaths expands a texture into every file path it must be written to:
// for each use, the repository configured for its edition, crossed with every
// declared path and every version under that path. The result is
// deterministic for unchanged metadata; uses with no configured repository
// resolve to nothing.
func ResolvePaths(texture *model.Texture, pack model.Pack, pushRoot string) []string {
	var all []string
	for _, use := range texture.Uses {
		repoName, ok := pack.RepoName[strings.ToLower(use.Edition())]
		if !ok || repoName == "" {
			continue
		}
		root := filepath.Join(pushRoot, repoName)

		for _, path := range use.Paths {
			for _, version := range path.Versions {
				all = append(all, filepath.Join(root, version, path.Path))
			}
		}
	}
	return all
}
