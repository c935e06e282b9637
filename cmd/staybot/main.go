package main

import (
	"log"

	"github.com/m3rciful/staybot/bot"
	corecmd "github.com/m3rciful/staybot/core/cmd"
)

func main() {
	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			return bot.LoadConfig(path)
		},
		Bootstrap: func(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
			return bot.New(carrier.CoreConfig())
		},
	})
	if err != nil {
		log.Fatalf("staybot: %v", err)
	}
}
