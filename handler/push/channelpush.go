package push

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/Faithful-Resource-Pack/Submission-Bot/model"
	"github.com/Faithful-Resource-Pack/Submission-Bot/submission"
	"github.com/Faithful-Resource-Pack/Submission-Bot/utils"
)

// ChannelpushCommandHandler handles the /channelpush command: it runs the
// vote retrieval pipeline for the chosen packs, moving community-approved
// submissions to council and council output to results.
func ChannelpushCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
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
			if err := RetrievePack(s, packs[key]); err != nil {
				log.Printf("Channelpush failed for pack %s: %v", key, err)
				failed++
			}
		}

		content := fmt.Sprintf("Processed %d pack(s).", len(packs)-failed)
		if failed > 0 {
			content += fmt.Sprintf(" %d pack(s) failed, see logs.", failed)
		}
		s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Content: utils.StringPtr(content),
		})
	}()
}

// RetrievePack runs both retrieval stages of one pack. Packs without council
// review move straight from the submit channel to results.
func RetrievePack(s *discordgo.Session, pack model.Pack) error {
	channels := pack.Channels

	if !pack.CouncilEnabled {
		return submission.Retrieve(s, channels.Submit, channels.Results,
			submission.ToResults, pack.TimeToResults, false)
	}

	err := submission.Retrieve(s, channels.Submit, channels.Council,
		submission.ToCouncil, pack.TimeToCouncil, true)
	if err != nil {
		return err
	}
	return submission.Retrieve(s, channels.Council, channels.Results,
		submission.ToResults, pack.TimeToResults, true)
}
