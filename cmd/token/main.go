package main

import (
	"flag"
	"fmt"
	"spa/config"
	"spa/infras/jwt"
	"spa/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	operator := flag.String("operator", "", "name recorded on the assignments changed with this token")
	flag.Parse()

	cfg := config.Get()

	logger.InitLogger(cfg)

	token, err := jwt.New(cfg).Issue(*operator)
	if err != nil {
		log.Fatal().Err(err).Msg("usage: token -operator <name>")
	}

	log.Info().Str("operator", *operator).Int("expireMin", cfg.JWT.ExpireMin).Msg("Issued operator token")

	fmt.Println(token)
}
