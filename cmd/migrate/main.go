package main

import (
	"os"
	"spa/config"
	"spa/helper"
	"spa/shared/logger"

	"github.com/rs/zerolog/log"
)

const usage = "usage: migrate up|down|step-up|drop|version"

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	if len(os.Args) < 2 { //nolint:mnd
		log.Fatal().Msg(usage)
	}

	if err := helper.Runner(cfg, os.Args[1]); err != nil {
		log.Fatal().Err(err).Msg(usage)
	}
}
