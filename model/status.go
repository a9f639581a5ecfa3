package model

import (
	"fmt"
	"strings"
)

// Status is a submission's position in the review lifecycle. The enum is the
// ground truth for all branching; the rendered embed field is a projection of
// it and is only parsed back when rebuilding a snapshot from a message.
type Status int

const (
	StatusUnknown Status = iota
	StatusPending
	StatusSentToCouncil
	StatusRejectedAtCommunity
	StatusSentToResults
	StatusRejectedAtCouncil
	StatusInstapassed
	StatusInvalidated
)

// Status phrases rendered into the second embed field. Parsing matches on
// these, so they must stay stable across releases.
const (
	PendingPhrase          = "Waiting for votes..."
	SentToCouncilPhrase    = "Sent to council!"
	NotEnoughUpvotesPhrase = "Not enough upvotes!"
	WillBeAddedPhrase      = "Will be added in a future version!"
	RejectionPhrase        = "will not be added"
	CouncilRejectedPhrase  = "This texture did not pass council voting and therefore will not be added."
	SentToResultsPhrase    = "Sent to results!"
	InstapassedPhrase      = "Instapassed by"
	InvalidatedPhrase      = "Invalidated by"
)

// String implements fmt.Stringer for logging.
func (st Status) String() string {
	switch st {
	case StatusPending:
		return "pending"
	case StatusSentToCouncil:
		return "sent_to_council"
	case StatusRejectedAtCommunity:
		return "rejected_at_community"
	case StatusSentToResults:
		return "sent_to_results"
	case StatusRejectedAtCouncil:
		return "rejected_at_council"
	case StatusInstapassed:
		return "instapassed"
	case StatusInvalidated:
		return "invalidated"
	default:
		return "unknown"
	}
}

// IsPending reports whether the submission is still waiting for votes and
// therefore eligible for retrieval and tray actions.
func (st Status) IsPending() bool {
	return st == StatusPending
}

// Terminal reports whether the status can no longer change.
func (st Status) Terminal() bool {
	switch st {
	case StatusSentToResults, StatusRejectedAtCouncil, StatusInstapassed, StatusInvalidated:
		return true
	}
	return false
}

// Configured emojis use the API "name:id" form. EmojiID returns the
// snowflake part, for reaction endpoints that take a bare ID.
func EmojiID(apiName string) string {
	if i := strings.LastIndex(apiName, ":"); i >= 0 {
		return apiName[i+1:]
	}
	return apiName
}

// EmojiMention formats a name:id emoji for use inside message content.
func EmojiMention(apiName string) string {
	return fmt.Sprintf("<:%s>", apiName)
}

// ParseStatus recovers a Status from a rendered status field value.
// Unrecognized text maps to StatusUnknown, which is never pending.
func ParseStatus(value string, e Emojis) Status {
	switch {
	case strings.Contains(value, e.Pending) || strings.Contains(value, PendingPhrase):
		return StatusPending
	case strings.Contains(value, SentToCouncilPhrase):
		return StatusSentToCouncil
	case strings.Contains(value, NotEnoughUpvotesPhrase):
		return StatusRejectedAtCommunity
	case strings.Contains(value, InstapassedPhrase):
		return StatusInstapassed
	case strings.Contains(value, InvalidatedPhrase):
		return StatusInvalidated
	case strings.Contains(value, RejectionPhrase):
		return StatusRejectedAtCouncil
	case strings.Contains(value, WillBeAddedPhrase), strings.Contains(value, SentToResultsPhrase):
		return StatusSentToResults
	default:
		return StatusUnknown
	}
}
