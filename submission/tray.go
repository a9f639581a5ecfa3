package submission

import (
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Faithful-Resource-Pack/Submission-Bot/config"
	"github.com/Faithful-Resource-Pack/Submission-Bot/model"
	"github.com/Faithful-Resource-Pack/Submission-Bot/utils"
)

// trayTimeout bounds how long an opened tray waits for its action.
const trayTimeout = 30 * time.Second

// TrayReactions returns the action reactions offered by an expanded tray.
// Delete is withheld inside council channels to guard against misclicks on
// someone else's work; instapass and invalidate are council/admin actions,
// so a plain author re-opening their own tray only sees collapse and delete.
func TrayReactions(emojis model.Emojis, inCouncil, capable bool) []string {
	reactions := []string{emojis.SeeLess}
	if !inCouncil {
		reactions = append(reactions, emojis.Delete)
	}
	if capable {
		reactions = append(reactions, emojis.Instapass, emojis.Invalid)
	}
	return reactions
}

// CanOpenTray gates tray expansion: the reactor must be the submitter or
// hold review capability, and the submission must still be pending.
func CanOpenTray(sub *model.Submission, userID string, capable bool) bool {
	if !sub.Status.IsPending() {
		return false
	}
	return capable || sub.Submitter() == userID
}

// HandleReactionAdd drives the reaction tray. It reacts to the see_more /
// see_less toggles on submission messages, offers the action set allowed for
// the reacting member, waits up to 30 seconds for that same member to pick
// one, and resets the tray when nothing qualifying arrives.
func HandleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if s.State.User != nil && r.UserID == s.State.User.ID {
		return
	}

	ps, ok := config.PackForChannel(r.ChannelID)
	if !ok || ps.Stage == model.StageResults {
		return
	}

	emojis := config.Cfg.Emojis
	reacted := r.Emoji.APIName()

	// Check close first so a tray left expanded across a restart can still
	// be collapsed.
	if reacted == emojis.SeeLess {
		collapseTray(s, r.ChannelID, r.MessageID)
		return
	}
	if reacted != emojis.SeeMore {
		return
	}

	message, err := s.ChannelMessage(r.ChannelID, r.MessageID)
	if err != nil {
		log.Printf("Failed to fetch message %s for tray: %v", r.MessageID, err)
		return
	}
	message.GuildID = r.GuildID

	sub, err := utils.ParseSubmissionMessage(message, emojis)
	if err != nil {
		return
	}

	member, err := s.GuildMember(r.GuildID, r.UserID)
	if err != nil || member.User == nil || member.User.Bot {
		return
	}

	capable := utils.HasReviewCapability(s, r.GuildID, member)
	if !CanOpenTray(sub, r.UserID, capable) {
		// Strip the trigger so the message stays clean; not an error.
		if err := s.MessageReactionRemove(r.ChannelID, r.MessageID, reacted, r.UserID); err != nil {
			log.Printf("Failed to strip tray trigger on message %s: %v", r.MessageID, err)
		}
		return
	}

	if err := s.MessageReactionsRemoveEmoji(r.ChannelID, r.MessageID, emojis.SeeMore); err != nil {
		log.Printf("Failed to remove tray trigger on message %s: %v", r.MessageID, err)
	}

	tray := TrayReactions(emojis, ps.Stage == model.StageCouncil, capable)
	for _, emoji := range tray {
		if err := s.MessageReactionAdd(r.ChannelID, r.MessageID, emoji); err != nil {
			log.Printf("Failed to add tray reaction on message %s: %v", r.MessageID, err)
		}
	}

	// Only the opener may resolve the tray; reactions from anyone else are
	// ignored rather than queued.
	action := awaitReaction(s, r.MessageID, r.UserID, tray, trayTimeout)
	if action == nil {
		collapseTray(s, r.ChannelID, r.MessageID)
		return
	}

	switch action.Emoji.APIName() {
	case emojis.Delete:
		if r.UserID == sub.Submitter() || utils.CheckAuth(r.UserID, member.Roles) {
			if err := s.ChannelMessageDelete(r.ChannelID, r.MessageID); err != nil {
				log.Printf("Failed to delete submission message %s: %v", r.MessageID, err)
			}
			return
		}

	case emojis.Instapass:
		if capable {
			clearVotes(s, r.ChannelID, r.MessageID, tray)
			status := StatusLine(emojis.Instapass, model.InstapassedPhrase+" <@"+r.UserID+">")
			if err := ChangeStatus(s, sub, status, config.Cfg.Colors.Yellow); err != nil {
				log.Printf("Failed to mark submission %s instapassed: %v", sub.MessageID, err)
				return
			}
			if err := Instapass(s, withStatus(sub, status, config.Cfg.Colors.Yellow)); err != nil {
				log.Printf("Failed to instapass submission %s: %v", sub.MessageID, err)
			}
			return
		}

	case emojis.Invalid:
		if capable {
			clearVotes(s, r.ChannelID, r.MessageID, tray)
			status := StatusLine(emojis.Invalid, model.InvalidatedPhrase+" <@"+r.UserID+">")
			if err := ChangeStatus(s, sub, status, config.Cfg.Colors.Red); err != nil {
				log.Printf("Failed to invalidate submission %s: %v", sub.MessageID, err)
			}
			return
		}
	}

	// Nothing actionable happened; reset the tray.
	collapseTray(s, r.ChannelID, r.MessageID)
}

// collapseTray strips every tray reaction and re-arms the expand trigger.
func collapseTray(s *discordgo.Session, channelID, messageID string) {
	emojis := config.Cfg.Emojis
	removeReactions(s, channelID, messageID, []string{
		emojis.SeeLess, emojis.Delete, emojis.Instapass, emojis.Invalid,
	})
	if err := s.MessageReactionAdd(channelID, messageID, emojis.SeeMore); err != nil {
		log.Printf("Failed to re-arm tray on message %s: %v", messageID, err)
	}
}

// clearVotes flushes the vote counters along with the open tray. Used when a
// submission leaves the voting flow through instapass or invalidation.
func clearVotes(s *discordgo.Session, channelID, messageID string, tray []string) {
	emojis := config.Cfg.Emojis
	removeReactions(s, channelID, messageID, append([]string{emojis.Upvote, emojis.Downvote}, tray...))
}

func removeReactions(s *discordgo.Session, channelID, messageID string, emojis []string) {
	for _, emoji := range emojis {
		if err := s.MessageReactionsRemoveEmoji(channelID, messageID, emoji); err != nil {
			log.Printf("Failed to remove reaction %s from message %s: %v", emoji, messageID, err)
		}
	}
}

// withStatus returns a copy of the submission whose embed already shows the
// given status, so downstream reposts reflect it.
func withStatus(sub *model.Submission, statusValue string, color int) *model.Submission {
	updated := *sub
	updated.Embed = utils.CloneEmbed(sub.Embed)
	if len(updated.Embed.Fields) > 1 {
		updated.Embed.Fields[1].Value = statusValue
	}
	updated.Embed.Color = color
	return &updated
}
