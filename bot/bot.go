package bot

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/Faithful-Resource-Pack/Submission-Bot/command"
	"github.com/Faithful-Resource-Pack/Submission-Bot/config"
	"github.com/Faithful-Resource-Pack/Submission-Bot/db"
	"github.com/Faithful-Resource-Pack/Submission-Bot/handler/push"
)

var dg *discordgo.Session

// Start boots the bot: config, database, Discord session, slash commands and
// the daily push schedule, then blocks until the process is signalled.
func Start() {
	err := config.LoadConfig()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return
	}

	db.InitDB(config.Cfg.Database)

	push.RegisterHandlers()

	if config.Cfg.Token == "" {
		log.Println("Warning: Token is empty!")
	}

	dg, err = discordgo.New("Bot " + config.Cfg.Token)
	if err != nil {
		log.Printf("Error creating Discord session: %v", err)
		return
	}

	registerEventHandlers(dg)

	err = dg.Open()
	if err != nil {
		log.Printf("Error opening connection: %v", err)
		return
	}

	for _, guildID := range config.Cfg.Guilds {
		for _, cmd := range command.AllCommands() {
			_, err := dg.ApplicationCommandCreate(dg.State.User.ID, guildID, cmd)
			if err != nil {
				log.Fatalf("Cannot create '%v' command: %v", cmd.Name, err)
			}
		}
	}

	scheduler := startSchedule(dg)

	log.Printf("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if scheduler != nil {
		scheduler.Stop()
	}
	dg.Close()
}

// GetSession returns the current Discord session.
func GetSession() *discordgo.Session {
	return dg
}
