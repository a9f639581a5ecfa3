package push

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/Faithful-Resource-Pack/Submission-Bot/textures"
	"github.com/Faithful-Resource-Pack/Submission-Bot/utils"
)

// AutopushCommandHandler handles the /autopush command: it materializes the
// results channel of the chosen packs, downloading accepted textures and
// recording contributions.
func AutopushCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error sending deferred response: %v", err)
		return
	}

	go func() {
		if !utils.CheckAuth(i.Member.User.ID, i.Member.Roles) {
			s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
				Content: utils.StringPtr("You do not have permission to run this."),
			})
			return
		}

		choice := i.ApplicationCommandData().Options[0].StringValue()
		packs := selectPacks(choice)
		if packs == nil {
			s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
				Content: utils.StringPtr(fmt.Sprintf("Unknown pack %q.", choice)),
			})
			return
		}

		var failed int
		for _, key := range sortedKeys(packs) {
			if err := textures.Materialize(s, packs[key].Channels.Results); err != nil {
				log.Printf("Autopush failed for pack %s: %v", key, err)
				failed++
			}
		}

		content := fmt.Sprintf("Downloaded results for %d pack(s).", len(packs)-failed)
		if failed > 0 {
			content += fmt.Sprintf(" %d pack(s) failed, see logs.", failed)
		}
		s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Content: utils.StringPtr(content),
		})
	}()
}
