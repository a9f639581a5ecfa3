package utils

import (
	"github.com/bwmarrin/discordgo"
)

const historyPageSize = 100

// FetchAllMessages retrieves the full history of a channel, newest first.
// An optional predicate keeps only matching messages; pagination still walks
// the whole channel either way.
func FetchAllMessages(s *discordgo.Session, channelID string, keep func(*discordgo.Message) bool) ([]*discordgo.Message, error) {
	var result []*discordgo.Message
	beforeID := ""

	for {
		page, err := s.ChannelMessages(channelID, historyPageSize, beforeID, "", "")
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}

		for _, message := range page {
			if keep == nil || keep(message) {
				result = append(result, message)
			}
		}

		beforeID = page[len(page)-1].ID
		if len(page) < historyPageSize {
			break
		}
	}

	return result, nil
}
