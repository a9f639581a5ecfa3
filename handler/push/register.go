package push

import (
	"sort"

	"github.com/Faithful-Resource-Pack/Submission-Bot/config"
	"github.com/Faithful-Resource-Pack/Submission-Bot/handler"
	"github.com/Faithful-Resource-Pack/Submission-Bot/model"
)

// RegisterHandlers registers the push command handlers.
func RegisterHandlers() {
	handler.AddCommandHandler("autopush", AutopushCommandHandler)
	handler.AddCommandHandler("channelpush", ChannelpushCommandHandler)
}

// selectPacks resolves a pack choice ("all" or a pack key) to the packs it
// names, in stable order.
func selectPacks(choice string) map[string]model.Pack {
	if choice == "all" {
		return config.Cfg.Packs
	}
	if pack, ok := config.Pack(choice); ok {
		return map[string]model.Pack{choice: pack}
	}
	return nil
}

// sortedKeys keeps multi-pack runs deterministic.
func sortedKeys(packs map[string]model.Pack) []string {
	keys := make([]string, 0, len(packs))
	for key := range packs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
