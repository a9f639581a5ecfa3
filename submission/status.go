package submission

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/Faithful-Resource-Pack/Submission-Bot/model"
	"github.com/Faithful-Resource-Pack/Submission-Bot/utils"
)

// ChangeStatus rewrites the status field of a submission's message and
// updates its accent color. The message edit is the only side effect; the
// snapshot passed in is not mutated.
func ChangeStatus(s *discordgo.Session, sub *model.Submission, statusValue string, color int) error {
	embed := utils.CloneEmbed(sub.Embed)
	if embed == nil || len(embed.Fields) < 2 {
		return utils.ErrMalformedSubmission
	}
	embed.Fields[1].Value = statusValue
	if color != 0 {
		embed.Color = color
	}

	embeds := []*discordgo.MessageEmbed{embed}
	_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel: sub.ChannelID,
		ID:      sub.MessageID,
		Embeds:  &embeds,
	})
	if err != nil {
		return fmt.Errorf("edit status of message %s: %w", sub.MessageID, err)
	}
	return nil
}

// StatusLine renders a status phrase with its leading emoji.
func StatusLine(emoji, phrase string) string {
	return model.EmojiMention(emoji) + " " + phrase
}
