package submission

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// awaitReaction blocks until the given user adds one of the given reactions
// to the message, or the timeout expires. Returns nil on timeout. The
// subscription is removed either way, so no listener state outlives the wait.
func awaitReaction(s *discordgo.Session, messageID, userID string, emojis []string, timeout time.Duration) *discordgo.MessageReactionAdd {
	collected := make(chan *discordgo.MessageReactionAdd, 1)

	remove := s.AddHandler(func(_ *discordgo.Session, r *discordgo.MessageReactionAdd) {
		if r.MessageID != messageID || r.UserID != userID {
			return
		}
		if !containsEmoji(emojis, r.Emoji.APIName()) {
			return
		}
		select {
		case collected <- r:
		default:
		}
	})
	defer remove()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case r := <-collected:
		return r
	case <-timer.C:
		return nil
	}
}

func containsEmoji(emojis []string, apiName string) bool {
	for _, emoji := range emojis {
		if emoji == apiName {
			return true
		}
	}
	return false
}
