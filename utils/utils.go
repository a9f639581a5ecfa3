package utils

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/Faithful-Resource-Pack/Submission-Bot/config"
)

// StringPtr returns a pointer to the given string.
func StringPtr(s string) *string {
	return &s
}

// WarnUser posts a red warning embed into a channel. Used for user-visible
// failures that should not kill the calling flow.
func WarnUser(s *discordgo.Session, channelID, content string) {
	_, err := s.ChannelMessageSendEmbed(channelID, &discordgo.MessageEmbed{
		Title:       "Action failed",
		Description: content,
		Color:       config.Cfg.Colors.Red,
	})
	if err != nil {
		log.Printf("Failed to send warning to channel %s: %v", channelID, err)
	}
}
