package def

import (
	"github.com/bwmarrin/discordgo"
)

// AutopushCommand builds the /autopush definition with one choice per
// configured pack. Built at registration time, after the config is loaded.
func AutopushCommand(packKeys []string) *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "autopush",
		Description: "Download today's results and record contributions.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "pack",
				Description: "Which pack to push.",
				Required:    true,
				Choices:     packChoices(packKeys),
			},
		},
	}
}

func packChoices(packKeys []string) []*discordgo.ApplicationCommandOptionChoice {
	choices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "All", Value: "all"},
	}
	for _, key := range packKeys {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: key, Value: key})
	}
	return choices
}
