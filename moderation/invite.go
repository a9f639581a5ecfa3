package moderation

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/Faithful-Resource-Pack/Submission-Bot/config"
	"github.com/Faithful-Resource-Pack/Submission-Bot/model"
)

// Verdict is the outcome of classifying a message's content.
type Verdict int

const (
	VerdictClean Verdict = iota
	VerdictAdvertising
	VerdictScam
)

// Classify checks message content against the configured scam and
// advertising lists. Whitelisted links win over both.
func Classify(content string, lists model.Moderation) Verdict {
	for _, allowed := range lists.Whitelist {
		if strings.Contains(content, allowed) {
			return VerdictClean
		}
	}
	for _, scam := range lists.Scams {
		if strings.Contains(content, scam) {
			return VerdictScam
		}
	}
	for _, ad := range lists.Advertising {
		if strings.Contains(content, ad) {
			return VerdictAdvertising
		}
	}
	return VerdictClean
}

// HandleMessageCreate watches for invite links and known scam URLs. Scam
// messages are deleted; both kinds are reported to the link detection channel.
// Users who can manage messages are trusted and never flagged.
func HandleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.Content == "" {
		return
	}
	if config.Cfg.Channels.LinkDetection == "" {
		return
	}

	perms, err := s.State.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err == nil && perms&discordgo.PermissionManageMessages != 0 {
		return
	}

	verdict := Classify(m.Content, config.Cfg.Moderation)
	if verdict == VerdictClean {
		return
	}

	var headline string
	switch verdict {
	case VerdictScam:
		headline = fmt.Sprintf("@%s may be trying to scam users", m.Author.Username)
		if err := s.ChannelMessageDelete(m.ChannelID, m.ID); err != nil {
			log.Printf("Failed to delete scam message %s: %v", m.ID, err)
		}
	case VerdictAdvertising:
		headline = fmt.Sprintf("@%s may have advertised a discord server", m.Author.Username)
	}

	embed := &discordgo.MessageEmbed{
		Author: &discordgo.MessageEmbedAuthor{
			Name:    headline,
			IconURL: m.Author.AvatarURL(""),
		},
		Description: fmt.Sprintf(
			"[Jump to message](https://discord.com/channels/%s/%s/%s)\n\n**Channel**: <#%s>\n**User ID**: `%s`\n\n```%s```",
			m.GuildID, m.ChannelID, m.ID, m.ChannelID, m.Author.ID, m.Content,
		),
		Color:     config.Cfg.Colors.Red,
		Timestamp: m.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
	}

	_, err = s.ChannelMessageSendEmbed(config.Cfg.Channels.LinkDetection, embed)
	if err != nil {
		log.Printf("Failed to report flagged message %s: %v", m.ID, err)
	}
}
