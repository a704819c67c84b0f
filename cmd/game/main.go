package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Last-Bell/internal/audio"
	"github.com/Garsondee/Last-Bell/internal/config"
	"github.com/Garsondee/Last-Bell/internal/game"
	"github.com/Garsondee/Last-Bell/internal/logging"
)

func main() {
	boot := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := run(); err != nil {
		boot.Fatal().Err(err).Msg("last bell")
	}
}

// run owns every resource so deferred cleanup happens before main exits.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	player := audio.NewPlayer(audio.NewBank(), cfg.MasterVolume, cfg.Mute, log)
	defer player.Close()

	g, err := game.New(cfg, log, player)
	if err != nil {
		return fmt.Errorf("init game: %w", err)
	}

	ebiten.SetWindowTitle(game.Title)
	ebiten.SetWindowSize(800, 800)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
