package moderation

import (
	"testing"

	"github.com/Faithful-Resource-Pack/Submission-Bot/model"
)

var lists = model.Moderation{
	Advertising: []string{"discord.gg"},
	Scams:       []string{"discocrd-gift.com"},
	Whitelist:   []string{"discord.gg/minecraft"},
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    Verdict
	}{
		{"plain message", "check out my texture", VerdictClean},
		{"advertising", "join discord.gg/somewhere", VerdictAdvertising},
		{"scam", "free nitro at discocrd-gift.com now", VerdictScam},
		{"whitelisted invite", "official server discord.gg/minecraft", VerdictClean},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.content, lists); got != tc.want {
				t.Errorf("Classify(%q) = %v, want %v", tc.content, got, tc.want)
			}
		})
	}
}
