package submission

import (
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Faithful-Resource-Pack/Submission-Bot/config"
	"github.com/Faithful-Resource-Pack/Submission-Bot/model"
	"github.com/Faithful-Resource-Pack/Submission-Bot/utils"
)

// Direction selects which stage transition a retrieval feeds.
type Direction int

const (
	// ToCouncil moves community-approved submissions into council review.
	ToCouncil Direction = iota
	// ToResults moves council output (or community output when council is
	// disabled) into the results channel.
	ToResults
)

// ErrChannelResolve marks a destination channel that cannot be fetched.
// Retrieval for the whole pack aborts on it.
var ErrChannelResolve = errors.New("destination channel could not be resolved")

// Retrieve scans channelFrom for pending submissions created exactly
// delayDays ago, tallies their votes and dispatches both partitions to the
// transition selected by direction. Malformed messages are skipped per item;
// an unresolvable destination channel fails the whole call.
func Retrieve(s *discordgo.Session, channelFrom, channelOut string, direction Direction, delayDays int, councilEnabled bool) error {
	if _, err := s.Channel(channelOut); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrChannelResolve, channelOut, err)
	}

	targetDay := time.Now().In(config.Location()).AddDate(0, 0, -delayDays)

	messages, err := utils.FetchAllMessages(s, channelFrom, func(message *discordgo.Message) bool {
		return utils.SameCalendarDay(message.Timestamp, targetDay, config.Location())
	})
	if err != nil {
		return fmt.Errorf("fetch history of channel %s: %w", channelFrom, err)
	}

	var pending []*model.Submission
	for _, message := range messages {
		sub, err := utils.ParseSubmissionMessage(message, config.Cfg.Emojis)
		if err != nil {
			// Not a submission embed; unrelated chatter is expected here.
			continue
		}
		if !sub.Status.IsPending() {
			continue
		}
		pending = append(pending, sub)
	}

	accepted, rejected := Tally(pending)

	if direction == ToCouncil {
		return SendToCouncil(s, accepted, rejected, channelOut)
	}
	return SendToResults(s, accepted, rejected, channelOut, councilEnabled)
}
