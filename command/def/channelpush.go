package def

import (
	"github.com/bwmarrin/discordgo"
)

// ChannelpushCommand builds the /channelpush definition with one choice per
// configured pack.
func ChannelpushCommand(packKeys []string) *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "channelpush",
		Description: "Run the vote retrieval pipeline for a pack's channels.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "pack",
				Description: "Which pack to process.",
				Required:    true,
				Choices:     packChoices(packKeys),
			},
		},
	}
}
