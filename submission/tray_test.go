package submission

import (
	"testing"

	"github.com/Faithful-Resource-Pack/Submission-Bot/model"
)

var trayEmojis = model.Emojis{
	SeeLess:   "see_less:1",
	Delete:    "delete:2",
	Instapass: "instapass:3",
	Invalid:   "invalid:4",
}

func TestTrayReactions(t *testing.T) {
	cases := []struct {
		name      string
		inCouncil bool
		capable   bool
		want      []string
	}{
		{"capable in submit", false, true, []string{"see_less:1", "delete:2", "instapass:3", "invalid:4"}},
		{"capable in council", true, true, []string{"see_less:1", "instapass:3", "invalid:4"}},
		{"author in submit", false, false, []string{"see_less:1", "delete:2"}},
		{"author in council", true, false, []string{"see_less:1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TrayReactions(trayEmojis, tc.inCouncil, tc.capable)
			if len(got) != len(tc.want) {
				t.Fatalf("TrayReactions = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("TrayReactions = %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestCanOpenTray(t *testing.T) {
	pending := &model.Submission{Status: model.StatusPending, Authors: []string{"111"}}
	resolved := &model.Submission{Status: model.StatusSentToCouncil, Authors: []string{"111"}}

	cases := []struct {
		name    string
		sub     *model.Submission
		userID  string
		capable bool
		want    bool
	}{
		{"author on pending", pending, "111", false, true},
		{"council on pending", pending, "999", true, true},
		{"stranger on pending", pending, "999", false, false},
		{"author on resolved", resolved, "111", false, false},
		{"council on resolved", resolved, "999", true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanOpenTray(tc.sub, tc.userID, tc.capable); got != tc.want {
				t.Errorf("CanOpenTray = %v, want %v", got, tc.want)
			}
		})
	}
}
