package utils

import (
	"errors"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/Faithful-Resource-Pack/Submission-Bot/model"
)

// ErrMalformedSubmission marks a message whose embed lacks the fields a
// submission must carry. Callers skip these per item.
var ErrMalformedSubmission = errors.New("message is not a valid submission")

var userMentionRegexp = regexp.MustCompile(`\d+`)

// ParseSubmissionMessage rebuilds a Submission snapshot from a posted message.
// Field layout follows the submission embed convention: field 0 holds one
// author mention per line (submitter first), field 1 holds the status.
func ParseSubmissionMessage(message *discordgo.Message, emojis model.Emojis) (*model.Submission, error) {
	if len(message.Embeds) == 0 {
		return nil, ErrMalformedSubmission
	}
	embed := message.Embeds[0]
	if len(embed.Fields) < 2 || embed.Fields[0] == nil || embed.Fields[1] == nil {
		return nil, ErrMalformedSubmission
	}

	sub := &model.Submission{
		MessageID:  message.ID,
		ChannelID:  message.ChannelID,
		GuildID:    message.GuildID,
		TextureID:  ExtractTextureID(embed.Title),
		Title:      embed.Title,
		Authors:    ExtractUserIDs(embed.Fields[0].Value),
		CreatedAt:  message.Timestamp,
		Status:     model.ParseStatus(embed.Fields[1].Value, emojis),
		Upvotes:    reactionCount(message, emojis.Upvote),
		Downvotes:  reactionCount(message, emojis.Downvote),
		Embed:      CloneEmbed(embed),
		Components: append([]discordgo.MessageComponent(nil), message.Components...),
	}
	if embed.Image != nil {
		sub.ImageURL = embed.Image.URL
	}

	return sub, nil
}

// ExtractTextureID pulls the id out of a bracketed [#id] tag in an embed
// title. Returns "" when no tag is present.
func ExtractTextureID(title string) string {
	for _, token := range strings.Fields(title) {
		if strings.HasPrefix(token, "[#") && strings.HasSuffix(token, "]") {
			return token[2 : len(token)-1]
		}
	}
	return ""
}

// ExtractUserIDs returns the user IDs mentioned in a field value, one mention
// per line, in order.
func ExtractUserIDs(fieldValue string) []string {
	var ids []string
	for _, line := range strings.Split(fieldValue, "\n") {
		if id := userMentionRegexp.FindString(line); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// reactionCount reads the raw count of a reaction on a message. A missing
// reaction reads as 1, the bot's own baseline, so real-vote arithmetic stays
// uniform.
func reactionCount(message *discordgo.Message, emoji string) int {
	id := model.EmojiID(emoji)
	for _, reaction := range message.Reactions {
		if reaction.Emoji != nil && reaction.Emoji.ID == id {
			if reaction.Count < 1 {
				return 1
			}
			return reaction.Count
		}
	}
	return 1
}

// CloneEmbed returns a copy of an embed whose fields can be edited without
// touching the source. Nested pointers that stages never mutate are shared.
func CloneEmbed(embed *discordgo.MessageEmbed) *discordgo.MessageEmbed {
	if embed == nil {
		return nil
	}
	clone := *embed
	clone.Fields = make([]*discordgo.MessageEmbedField, len(embed.Fields))
	for i, field := range embed.Fields {
		if field == nil {
			continue
		}
		fieldCopy := *field
		clone.Fields[i] = &fieldCopy
	}
	return &clone
}
