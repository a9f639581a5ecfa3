package submission

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/Faithful-Resource-Pack/Submission-Bot/config"
	"github.com/Faithful-Resource-Pack/Submission-Bot/model"
	"github.com/Faithful-Resource-Pack/Submission-Bot/utils"
)

// SendToCouncil reposts accepted submissions into the council channel and
// marks their originals, then marks rejected ones in place. The status edit
// happens only after the council copy exists, never before.
func SendToCouncil(s *discordgo.Session, accepted, rejected []*model.Submission, channelOut string) error {
	emojis := config.Cfg.Emojis
	voteEmojis := []string{emojis.Upvote, emojis.Downvote, emojis.SeeMore}

	for _, sub := range accepted {
		embed := utils.CloneEmbed(sub.Embed)
		embed.Color = config.Cfg.Colors.Council
		embed.Description = backLink(sub) + embed.Description

		sent, err := s.ChannelMessageSendComplex(channelOut, &discordgo.MessageSend{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: sub.Components,
		})
		if err != nil {
			log.Printf("Failed to repost submission %s to council: %v", sub.MessageID, err)
			continue
		}

		for _, emoji := range voteEmojis {
			if err := s.MessageReactionAdd(channelOut, sent.ID, emoji); err != nil {
				log.Printf("Failed to react on council message %s: %v", sent.ID, err)
			}
		}

		err = ChangeStatus(s, sub, StatusLine(emojis.Upvote, model.SentToCouncilPhrase), config.Cfg.Colors.Green)
		if err != nil {
			log.Printf("Failed to update status of submission %s: %v", sub.MessageID, err)
		}
	}

	for _, sub := range rejected {
		err := ChangeStatus(s, sub, StatusLine(emojis.Downvote, model.NotEnoughUpvotesPhrase), config.Cfg.Colors.Red)
		if err != nil {
			log.Printf("Failed to update status of submission %s: %v", sub.MessageID, err)
		}
	}

	return nil
}

// backLink renders the Original Post link line prepended to reposts. The
// repost is built from a snapshot, so the original message never carries a
// link to itself.
func backLink(sub *model.Submission) string {
	return "[Original Post](" + sub.URL() + ")\n"
}
