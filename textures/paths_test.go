package textures

import (
	"testing"

	"github.com/Faithful-Resource-Pack/Submission-Bot/model"
)

func TestResolvePathsCrossProduct(t *testing.T) {
	texture := &model.Texture{
		ID: "1534",
		Uses: []model.Use{
			{
				ID:       "1534a",
				Editions: []string{"java"},
				Paths: []model.TexturePath{
					{Path: "assets/minecraft/textures/block/stone.png", Versions: []string{"1.19", "1.20"}},
					{Path: "assets/minecraft/textures/block/stone_alt.png", Versions: []string{"1.19", "1.20"}},
				},
			},
			{
				ID:       "1534b",
				Editions: []string{"bedrock"},
				Paths: []model.TexturePath{
					{Path: "textures/blocks/stone.png", Versions: []string{"preview", "stable"}},
					{Path: "textures/blocks/stone_alt.png", Versions: []string{"preview", "stable"}},
				},
			},
		},
	}
	pack := model.Pack{
		RepoName: map[string]string{"java": "faithful-java", "bedrock": "faithful-bedrock"},
	}

	paths := ResolvePaths(texture, pack, "./texturesPush")

	if len(paths) != 8 {
		t.Fatalf("expected 8 paths (2 uses x 2 paths x 2 versions), got %d: %v", len(paths), paths)
	}

	distinct := make(map[string]bool, len(paths))
	for _, p := range paths {
		if distinct[p] {
			t.Errorf("duplicate path %q", p)
		}
		distinct[p] = true
	}

	want := "texturesPush/faithful-java/1.19/assets/minecraft/textures/block/stone.png"
	if !distinct[want] {
		t.Errorf("expected resolved path %q, got %v", want, paths)
	}
}

func TestResolvePathsDeterministic(t *testing.T) {
	texture := &model.Texture{
		Uses: []model.Use{{
			Editions: []string{"Java"},
			Paths:    []model.TexturePath{{Path: "a.png", Versions: []string{"1.20"}}},
		}},
	}
	pack := model.Pack{RepoName: map[string]string{"java": "repo"}}

	first := ResolvePaths(texture, pack, "root")
	second := ResolvePaths(texture, pack, "root")
	if len(first) != 1 || len(second) != 1 || first[0] != second[0] {
		t.Fatalf("resolution must be deterministic, got %v and %v", first, second)
	}
}

func TestResolvePathsSkipsUnmappedEditions(t *testing.T) {
	texture := &model.Texture{
		Uses: []model.Use{
			{Editions: []string{"dungeons"}, Paths: []model.TexturePath{{Path: "a.png", Versions: []string{"1"}}}},
			{Editions: nil, Paths: []model.TexturePath{{Path: "b.png", Versions: []string{"1"}}}},
		},
	}
	pack := model.Pack{RepoName: map[string]string{"java": "repo"}}

	if paths := ResolvePaths(texture, pack, "root"); len(paths) != 0 {
		t.Fatalf("expected no paths for unmapped editions, got %v", paths)
	}
}
