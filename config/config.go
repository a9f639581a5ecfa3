package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/Faithful-Resource-Pack/Submission-Bot/model"
)

// Cfg is the loaded configuration, valid after LoadConfig returns nil.
var Cfg model.Config

// channelIndex maps every configured pack channel to its pack and stage.
// Built once at load time so pack lookup never scans the pack table.
var channelIndex map[string]model.PackStage

// location is the reference timezone for calendar-day comparisons.
var location = time.UTC

func LoadConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return err
	}
	if err := viper.Unmarshal(&Cfg); err != nil {
		return err
	}

	if Cfg.Timezone != "" {
		loc, err := time.LoadLocation(Cfg.Timezone)
		if err != nil {
			return fmt.Errorf("invalid timezone %q: %w", Cfg.Timezone, err)
		}
		location = loc
	}

	if Cfg.PushRoot == "" {
		Cfg.PushRoot = "./texturesPush"
	}
	if Cfg.Database == "" {
		Cfg.Database = "./data/texturebot.db"
	}

	buildChannelIndex()
	return nil
}

func buildChannelIndex() {
	channelIndex = make(map[string]model.PackStage)
	for key, pack := range Cfg.Packs {
		channelIndex[pack.Channels.Submit] = model.PackStage{PackKey: key, Stage: model.StageSubmit}
		if pack.Channels.Council != "" {
			channelIndex[pack.Channels.Council] = model.PackStage{PackKey: key, Stage: model.StageCouncil}
		}
		channelIndex[pack.Channels.Results] = model.PackStage{PackKey: key, Stage: model.StageResults}
	}
}

// PackForChannel resolves which pack and stage a channel belongs to.
func PackForChannel(channelID string) (model.PackStage, bool) {
	ps, ok := channelIndex[channelID]
	return ps, ok
}

// Pack returns the pack configuration for a key.
func Pack(key string) (model.Pack, bool) {
	pack, ok := Cfg.Packs[key]
	return pack, ok
}

// Location returns the reference timezone used for date-window checks.
func Location() *time.Location {
	return location
}

// SetForTesting replaces the loaded configuration and rebuilds the channel
// index. Only tests call this.
func SetForTesting(cfg model.Config) {
	Cfg = cfg
	buildChannelIndex()
}
