package textures

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Faithful-Resource-Pack/Submission-Bot/config"
	"github.com/Faithful-Resource-Pack/Submission-Bot/db"
	"github.com/Faithful-Resource-Pack/Submission-Bot/model"
	"github.com/Faithful-Resource-Pack/Submission-Bot/utils"
)

// ErrNoPackForChannel marks a results channel no pack claims; the whole run
// aborts on it.
var ErrNoPackForChannel = errors.New("no pack owns this results channel")

// materializeMu serializes runs so concurrent pack pushes never interleave
// writes under the push root.
var materializeMu sync.Mutex

// Materialize downloads every texture accepted into a results channel today
// and fans it out to all of its repository paths, then records one
// contribution per texture in a single bulk append. Per-texture and per-path
// failures are logged and skipped; only an unresolvable channel fails the
// whole run.
func Materialize(s *discordgo.Session, resultsChannelID string) error {
	materializeMu.Lock()
	defer materializeMu.Unlock()

	ps, ok := config.PackForChannel(resultsChannelID)
	if !ok || ps.Stage != model.StageResults {
		return fmt.Errorf("%w: %s", ErrNoPackForChannel, resultsChannelID)
	}
	pack, _ := config.Pack(ps.PackKey)

	today := time.Now().In(config.Location())
	messages, err := utils.FetchAllMessages(s, resultsChannelID, func(message *discordgo.Message) bool {
		return utils.SameCalendarDay(message.Timestamp, today, config.Location())
	})
	if err != nil {
		return fmt.Errorf("fetch history of results channel %s: %w", resultsChannelID, err)
	}

	// History comes newest first; flip it so contribution records preserve
	// submission order.
	accepted := make([]*discordgo.Message, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		if isAcceptedResult(messages[i]) {
			accepted = append(accepted, messages[i])
		}
	}

	var contributions []model.Contribution
	for _, message := range accepted {
		record, err := materializeOne(message, pack, ps.PackKey)
		if err != nil {
			log.Printf("Skipping texture on message %s: %v", message.ID, err)
			continue
		}
		contributions = append(contributions, *record)
	}

	ids, err := db.AddContributions(contributions)
	if err != nil {
		return fmt.Errorf("record contributions: %w", err)
	}
	if len(ids) > 0 {
		log.Printf("Added %d contributions: %s", len(ids), strings.Join(ids, " "))
	}
	return nil
}

// materializeOne resolves, downloads and writes a single texture, returning
// its contribution record.
func materializeOne(message *discordgo.Message, pack model.Pack, packKey string) (*model.Contribution, error) {
	sub, err := utils.ParseSubmissionMessage(message, config.Cfg.Emojis)
	if err != nil {
		return nil, err
	}
	if sub.TextureID == "" || sub.ImageURL == "" {
		return nil, utils.ErrMalformedSubmission
	}

	texture, err := db.GetTexture(sub.TextureID)
	if err != nil {
		return nil, fmt.Errorf("look up texture %s: %w", sub.TextureID, err)
	}
	if texture == nil {
		return nil, fmt.Errorf("texture %s not found", sub.TextureID)
	}

	paths := ResolvePaths(texture, pack, config.Cfg.PushRoot)

	// One fetch per texture, however many paths it lands on.
	data, err := downloadImage(sub.ImageURL)
	if err != nil {
		return nil, err
	}

	for _, path := range paths {
		if err := writeTexture(path, data); err != nil {
			log.Printf("Failed to write texture %s to %s: %v", sub.TextureID, path, err)
		}
	}

	return &model.Contribution{
		Date:       sub.CreatedAt,
		Resolution: pack.Resolution,
		Pack:       packKey,
		TextureID:  sub.TextureID,
		Authors:    sub.Authors,
	}, nil
}

func writeTexture(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// isAcceptedResult keeps only genuinely accepted textures: a populated embed
// whose status field does not carry the rejection phrase.
func isAcceptedResult(message *discordgo.Message) bool {
	if len(message.Embeds) == 0 {
		return false
	}
	embed := message.Embeds[0]
	if len(embed.Fields) < 2 || embed.Fields[1] == nil {
		return false
	}
	return !strings.Contains(embed.Fields[1].Value, model.RejectionPhrase)
}
