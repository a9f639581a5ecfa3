package utils

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Faithful-Resource-Pack/Submission-Bot/model"
)

var testEmojis = model.Emojis{
	Upvote:   "upvote:100",
	Downvote: "downvote:101",
	Pending:  "pending:102",
}

func submissionMessage() *discordgo.Message {
	return &discordgo.Message{
		ID:        "900",
		ChannelID: "800",
		GuildID:   "700",
		Timestamp: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		Embeds: []*discordgo.MessageEmbed{
			{
				Title: "Diamond Ore [#1534]",
				Image: &discordgo.MessageEmbedImage{URL: "https://cdn.example/1534.png"},
				Fields: []*discordgo.MessageEmbedField{
					{Name: "Author", Value: "<@!111>\n<@!222>"},
					{Name: "Status", Value: "<:pending:102> Waiting for votes..."},
				},
			},
		},
		Reactions: []*discordgo.MessageReactions{
			{Count: 4, Emoji: &discordgo.Emoji{Name: "upvote", ID: "100"}},
			{Count: 2, Emoji: &discordgo.Emoji{Name: "downvote", ID: "101"}},
		},
	}
}

func TestParseSubmissionMessage(t *testing.T) {
	sub, err := ParseSubmissionMessage(submissionMessage(), testEmojis)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sub.TextureID != "1534" {
		t.Errorf("expected texture ID 1534, got %q", sub.TextureID)
	}
	if sub.ImageURL != "https://cdn.example/1534.png" {
		t.Errorf("unexpected image URL %q", sub.ImageURL)
	}
	if len(sub.Authors) != 2 || sub.Authors[0] != "111" || sub.Authors[1] != "222" {
		t.Errorf("unexpected authors %v", sub.Authors)
	}
	if sub.Submitter() != "111" {
		t.Errorf("expected submitter 111, got %q", sub.Submitter())
	}
	if sub.Status != model.StatusPending {
		t.Errorf("expected pending status, got %v", sub.Status)
	}
	if sub.Upvotes != 4 || sub.Downvotes != 2 {
		t.Errorf("unexpected vote counts %d/%d", sub.Upvotes, sub.Downvotes)
	}
	if sub.RealUpvotes() != 3 || sub.RealDownvotes() != 1 {
		t.Errorf("unexpected real vote counts %d/%d", sub.RealUpvotes(), sub.RealDownvotes())
	}
	if sub.URL() != "https://discord.com/channels/700/800/900" {
		t.Errorf("unexpected URL %q", sub.URL())
	}
}

func TestParseSubmissionMessageMissingReactionsReadAsBaseline(t *testing.T) {
	message := submissionMessage()
	message.Reactions = nil

	sub, err := ParseSubmissionMessage(message, testEmojis)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Upvotes != 1 || sub.Downvotes != 1 {
		t.Errorf("missing reactions must read as baseline 1, got %d/%d", sub.Upvotes, sub.Downvotes)
	}
}

func TestParseSubmissionMessageMalformed(t *testing.T) {
	cases := []struct {
		name    string
		message *discordgo.Message
	}{
		{"no embeds", &discordgo.Message{}},
		{"no fields", &discordgo.Message{Embeds: []*discordgo.MessageEmbed{{Title: "x"}}}},
		{"one field", &discordgo.Message{Embeds: []*discordgo.MessageEmbed{{
			Fields: []*discordgo.MessageEmbedField{{Name: "Author", Value: "<@!1>"}},
		}}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseSubmissionMessage(tc.message, testEmojis); err == nil {
				t.Error("expected error for malformed message")
			}
		})
	}
}

func TestExtractTextureID(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Diamond Ore [#1534]", "1534"},
		{"[#22] Stone", "22"},
		{"No tag here", ""},
		{"Broken [#tag", ""},
	}

	for _, tc := range cases {
		if got := ExtractTextureID(tc.title); got != tc.want {
			t.Errorf("ExtractTextureID(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestCloneEmbedIsIndependent(t *testing.T) {
	original := submissionMessage().Embeds[0]
	clone := CloneEmbed(original)

	clone.Fields[1].Value = "changed"
	clone.Color = 42

	if original.Fields[1].Value == "changed" {
		t.Error("editing the clone's field leaked into the original")
	}
	if original.Color == 42 {
		t.Error("editing the clone's color leaked into the original")
	}
}
