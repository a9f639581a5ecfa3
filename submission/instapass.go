package submission

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/Faithful-Resource-Pack/Submission-Bot/config"
	"github.com/Faithful-Resource-Pack/Submission-Bot/model"
	"github.com/Faithful-Resource-Pack/Submission-Bot/textures"
	"github.com/Faithful-Resource-Pack/Submission-Bot/utils"
)

// Instapass short-circuits a submission from any review stage straight into
// its pack's results channel, then materializes that channel so the texture
// lands on disk immediately. Failures to resolve the results channel are
// reported where the submission lives.
func Instapass(s *discordgo.Session, sub *model.Submission) error {
	ps, ok := config.PackForChannel(sub.ChannelID)
	if !ok {
		utils.WarnUser(s, sub.ChannelID, "No pack owns this channel, result channel could not be resolved!")
		return fmt.Errorf("no pack owns channel %s", sub.ChannelID)
	}
	pack, _ := config.Pack(ps.PackKey)
	resultsID := pack.Channels.Results

	if _, err := s.Channel(resultsID); err != nil {
		utils.WarnUser(s, sub.ChannelID, "Result channel was not able to be fetched!")
		return fmt.Errorf("%w: %s: %v", ErrChannelResolve, resultsID, err)
	}

	embed := utils.CloneEmbed(sub.Embed)
	embed.Color = config.Cfg.Colors.Yellow
	embed.Description = backLink(sub) + embed.Description

	_, err := s.ChannelMessageSendComplex(resultsID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: sub.Components,
	})
	if err != nil {
		return fmt.Errorf("repost instapassed submission %s: %w", sub.MessageID, err)
	}

	return textures.Materialize(s, resultsID)
}
