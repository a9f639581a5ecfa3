package command

import (
	"sort"

	"github.com/bwmarrin/discordgo"

	"github.com/Faithful-Resource-Pack/Submission-Bot/command/def"
	"github.com/Faithful-Resource-Pack/Submission-Bot/config"
)

// AllCommands builds the full slash command table from the loaded config.
func AllCommands() []*discordgo.ApplicationCommand {
	keys := make([]string, 0, len(config.Cfg.Packs))
	for key := range config.Cfg.Packs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return []*discordgo.ApplicationCommand{
		def.AutopushCommand(keys),
		def.ChannelpushCommand(keys),
	}
}
