package bot

import (
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"

	"github.com/Faithful-Resource-Pack/Submission-Bot/config"
	"github.com/Faithful-Resource-Pack/Submission-Bot/handler/push"
	"github.com/Faithful-Resource-Pack/Submission-Bot/textures"
)

// startSchedule arms the daily push job. Returns nil when no schedule is
// configured, in which case pushes only happen via the admin commands.
func startSchedule(s *discordgo.Session) *cron.Cron {
	if config.Cfg.Schedule == "" {
		return nil
	}

	scheduler := cron.New(cron.WithLocation(config.Location()))
	_, err := scheduler.AddFunc(config.Cfg.Schedule, func() { runDailyPush(s) })
	if err != nil {
		log.Fatalf("Invalid schedule %q: %v", config.Cfg.Schedule, err)
	}
	scheduler.Start()

	log.Printf("Daily push scheduled: %s", config.Cfg.Schedule)
	return scheduler
}

// runDailyPush runs both retrieval stages and the result download for every
// pack. A failing pack is logged and does not block the others.
func runDailyPush(s *discordgo.Session) {
	for key, pack := range config.Cfg.Packs {
		if err := push.RetrievePack(s, pack); err != nil {
			log.Printf("Scheduled retrieval failed for pack %s: %v", key, err)
			continue
		}
		if err := textures.Materialize(s, pack.Channels.Results); err != nil {
			log.Printf("Scheduled download failed for pack %s: %v", key, err)
		}
	}
}
