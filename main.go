package main

import (
	"os"
	"path/filepath"

	"github.com/Kostjusz97/Task3/config"
	"github.com/Kostjusz97/Task3/console"
	"github.com/Kostjusz97/Task3/engine"
	"github.com/Kostjusz97/Task3/game"
)

func main() {
	cfg, err := config.ParseEnv()
	if err != nil {
		config.Exitf("load config: %v", err)
	}
	if err := config.SetupLogging(cfg); err != nil {
		config.Exitf("setup logging: %v", err)
	}

	moves, err := game.NewMoveSet(os.Args[1:])
	if err != nil {
		config.Exitf("%v\nusage: %s move1 move2 move3 ... (an odd number of unique moves, at least 3, e.g. rock paper scissors)",
			err, filepath.Base(os.Args[0]))
	}

	relation := game.BuildRelation(moves)
	selector := console.NewSelector(moves, relation, os.Stdin, os.Stdout)
	presenter := console.NewPresenter(os.Stdout)

	round := engine.NewRound(moves, relation, selector, presenter)
	if err := round.Play(); err != nil {
		config.Exitf("play round: %v", err)
	}
}
