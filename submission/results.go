package submission

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/Faithful-Resource-Pack/Submission-Bot/config"
	"github.com/Faithful-Resource-Pack/Submission-Bot/model"
	"github.com/Faithful-Resource-Pack/Submission-Bot/utils"
)

// SendToResults reposts accepted submissions into the results channel and
// finalizes rejected ones. Council rejections get a repost carrying the
// downvoter list; with council disabled the rejection is a status edit only.
func SendToResults(s *discordgo.Session, accepted, rejected []*model.Submission, channelOut string, councilEnabled bool) error {
	emojis := config.Cfg.Emojis
	colors := config.Cfg.Colors

	for _, sub := range accepted {
		embed := utils.CloneEmbed(sub.Embed)
		embed.Color = colors.Green
		embed.Fields[1].Value = StatusLine(emojis.Upvote, model.WillBeAddedPhrase) +
			percentageSuffix(sub.Upvotes, sub.Downvotes)

		_, err := s.ChannelMessageSendComplex(channelOut, &discordgo.MessageSend{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: sub.Components,
		})
		if err != nil {
			log.Printf("Failed to repost submission %s to results: %v", sub.MessageID, err)
			continue
		}

		err = ChangeStatus(s, sub, StatusLine(emojis.Upvote, model.SentToResultsPhrase), colors.Green)
		if err != nil {
			log.Printf("Failed to update status of submission %s: %v", sub.MessageID, err)
		}
	}

	for _, sub := range rejected {
		if !councilEnabled {
			err := ChangeStatus(s, sub, StatusLine(emojis.Downvote, model.NotEnoughUpvotesPhrase), colors.Red)
			if err != nil {
				log.Printf("Failed to update status of submission %s: %v", sub.MessageID, err)
			}
			continue
		}

		embed := utils.CloneEmbed(sub.Embed)
		embed.Color = colors.Red
		embed.Fields[1].Value = StatusLine(emojis.Downvote, model.CouncilRejectedPhrase) +
			percentageSuffix(sub.Upvotes, sub.Downvotes)

		if field := councilDownvotesField(s, sub); field != nil {
			embed.Fields = append(embed.Fields, field)
		}

		_, err := s.ChannelMessageSendComplex(channelOut, &discordgo.MessageSend{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: sub.Components,
		})
		if err != nil {
			log.Printf("Failed to repost rejected submission %s to results: %v", sub.MessageID, err)
			continue
		}

		err = ChangeStatus(s, sub, StatusLine(emojis.Downvote, model.SentToResultsPhrase), colors.Red)
		if err != nil {
			log.Printf("Failed to update status of submission %s: %v", sub.MessageID, err)
		}
	}

	return nil
}

// councilDownvotesField lists every user who downvoted during council review,
// excluding the bot's own baseline reaction. Nil when the list cannot be
// fetched or nobody downvoted.
func councilDownvotesField(s *discordgo.Session, sub *model.Submission) *discordgo.MessageEmbedField {
	users, err := s.MessageReactions(sub.ChannelID, sub.MessageID, config.Cfg.Emojis.Downvote, 100, "", "")
	if err != nil {
		log.Printf("Failed to fetch downvoters of message %s: %v", sub.MessageID, err)
		return nil
	}

	var mentions []string
	for _, user := range users {
		if s.State.User != nil && user.ID == s.State.User.ID {
			continue
		}
		mentions = append(mentions, "<@!"+user.ID+">")
	}
	if len(mentions) == 0 {
		return nil
	}

	return &discordgo.MessageEmbedField{
		Name:   "Council Downvotes",
		Value:  strings.Join(mentions, "\n"),
		Inline: true,
	}
}
