package model

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// Submission is an immutable snapshot of a texture proposal message. Pipeline
// stages build new values from it instead of mutating a shared embed, so a
// council repost and the original post never alias each other.
type Submission struct {
	MessageID string
	ChannelID string
	GuildID   string

	// TextureID is the bracketed [#id] tag extracted from the embed title.
	TextureID string
	Title     string
	ImageURL  string

	// Authors are user IDs, submitter first.
	Authors []string

	CreatedAt time.Time
	Status    Status

	// Upvotes and Downvotes are raw reaction counts including the bot's own
	// baseline reaction, so both are at least 1 on a healthy message.
	Upvotes   int
	Downvotes int

	// Embed and Components are carried forward unchanged across stage
	// transitions. Embed is a deep enough copy to edit safely.
	Embed      *discordgo.MessageEmbed
	Components []discordgo.MessageComponent
}

// URL returns the jump link of the underlying message.
func (sub *Submission) URL() string {
	return "https://discord.com/channels/" + sub.GuildID + "/" + sub.ChannelID + "/" + sub.MessageID
}

// RealUpvotes returns the number of human upvotes.
func (sub *Submission) RealUpvotes() int {
	if sub.Upvotes <= 1 {
		return 0
	}
	return sub.Upvotes - 1
}

// RealDownvotes returns the number of human downvotes.
func (sub *Submission) RealDownvotes() int {
	if sub.Downvotes <= 1 {
		return 0
	}
	return sub.Downvotes - 1
}

// Submitter returns the first author, the user who posted the texture.
func (sub *Submission) Submitter() string {
	if len(sub.Authors) == 0 {
		return ""
	}
	return sub.Authors[0]
}
