package model

import "testing"

var emojis = Emojis{Pending: "pending:102"}

func TestParseStatus(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  Status
	}{
		{"pending emoji", "<:pending:102> Waiting for votes...", StatusPending},
		{"pending phrase", "Waiting for votes...", StatusPending},
		{"sent to council", "<:upvote:100> Sent to council!", StatusSentToCouncil},
		{"not enough upvotes", "<:downvote:101> Not enough upvotes!", StatusRejectedAtCommunity},
		{"will be added", "<:upvote:100> Will be added in a future version! (66.67% upvoted)", StatusSentToResults},
		{"sent to results", "<:upvote:100> Sent to results!", StatusSentToResults},
		{"council rejected", "<:downvote:101> This texture did not pass council voting and therefore will not be added.", StatusRejectedAtCouncil},
		{"instapassed", "<:instapass:103> Instapassed by <@42>", StatusInstapassed},
		{"invalidated", "<:invalid:104> Invalidated by <@42>", StatusInvalidated},
		{"garbage", "something else entirely", StatusUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseStatus(tc.value, emojis); got != tc.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestStatusPredicates(t *testing.T) {
	if !StatusPending.IsPending() {
		t.Error("pending must be pending")
	}
	if StatusSentToCouncil.IsPending() || StatusUnknown.IsPending() {
		t.Error("only StatusPending is pending")
	}

	terminal := []Status{StatusSentToResults, StatusRejectedAtCouncil, StatusInstapassed, StatusInvalidated}
	for _, st := range terminal {
		if !st.Terminal() {
			t.Errorf("%v must be terminal", st)
		}
	}
	if StatusPending.Terminal() || StatusSentToCouncil.Terminal() {
		t.Error("intermediate statuses must not be terminal")
	}
}

func TestEmojiHelpers(t *testing.T) {
	if got := EmojiID("upvote:100"); got != "100" {
		t.Errorf("EmojiID = %q, want 100", got)
	}
	if got := EmojiMention("upvote:100"); got != "<:upvote:100>" {
		t.Errorf("EmojiMention = %q", got)
	}
}
