package submission

import (
	"testing"

	"github.com/Faithful-Resource-Pack/Submission-Bot/model"
)

func TestAccepted(t *testing.T) {
	cases := []struct {
		name      string
		upvotes   int
		downvotes int
		want      bool
	}{
		{"more upvotes", 5, 2, true},
		{"more downvotes", 2, 5, false},
		{"nobody voted", 1, 1, true},
		{"tie above baseline", 3, 3, false},
		{"single real upvote", 2, 1, true},
		{"single real downvote", 1, 2, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Accepted(tc.upvotes, tc.downvotes); got != tc.want {
				t.Errorf("Accepted(%d, %d) = %v, want %v", tc.upvotes, tc.downvotes, got, tc.want)
			}
		})
	}
}

func TestTallyPartitionsCoverInput(t *testing.T) {
	subs := []*model.Submission{
		{MessageID: "a", Upvotes: 4, Downvotes: 1},
		{MessageID: "b", Upvotes: 1, Downvotes: 3},
		{MessageID: "c", Upvotes: 1, Downvotes: 1},
		{MessageID: "d", Upvotes: 2, Downvotes: 2},
	}

	accepted, rejected := Tally(subs)

	if len(accepted)+len(rejected) != len(subs) {
		t.Fatalf("partition lost items: %d accepted + %d rejected != %d", len(accepted), len(rejected), len(subs))
	}
	wantAccepted := map[string]bool{"a": true, "c": true}
	for _, sub := range accepted {
		if !wantAccepted[sub.MessageID] {
			t.Errorf("submission %s unexpectedly accepted", sub.MessageID)
		}
	}
	for _, sub := range rejected {
		if wantAccepted[sub.MessageID] {
			t.Errorf("submission %s unexpectedly rejected", sub.MessageID)
		}
	}
}
