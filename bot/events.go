package bot

import (
	"github.com/bwmarrin/discordgo"

	"github.com/Faithful-Resource-Pack/Submission-Bot/handler"
	"github.com/Faithful-Resource-Pack/Submission-Bot/moderation"
	"github.com/Faithful-Resource-Pack/Submission-Bot/submission"
)

func registerEventHandlers(s *discordgo.Session) {
	s.AddHandler(handler.OnInteractionCreate)
	s.AddHandler(func(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
		go submission.HandleReactionAdd(s, r)
	})
	s.AddHandler(moderation.HandleMessageCreate)

	s.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentMessageContent
}
