package main

import (
	"github.com/Faithful-Resource-Pack/Submission-Bot/bot"
)

func main() {
	bot.Start()
}
