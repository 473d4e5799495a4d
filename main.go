package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"goban/engine"
	"goban/game"
	"goban/searcher"
)

type agentConfig struct {
	name        string
	depth       int // minimax lookahead; zero means use MCTS
	simulations int
	cutoff      int
	seed        uint64
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	runMatchup()
}

func runMatchup() {
	const numGames = 3
	const boardSize = 9

	blackCfg := agentConfig{name: "minimax", depth: 2}
	whiteCfg := agentConfig{name: "mcts", simulations: 200, cutoff: 50, seed: 1}

	log.Info().
		Str("black", blackCfg.name).
		Str("white", whiteCfg.name).
		Int("games", numGames).
		Int("size", boardSize).
		Msg("running matchup")

	for i := 0; i < numGames; i++ {
		blackScore, whiteScore := runGame(boardSize, blackCfg, whiteCfg, uint64(i))
		log.Info().
			Int("game", i+1).
			Int("black", blackScore).
			Int("white", whiteScore).
			Msg("result")
	}
}

func runGame(size int, blackCfg, whiteCfg agentConfig, seed uint64) (int, int) {
	black, white := game.NewPlayers("Black", "White")
	board := game.NewBoard(size, black, white)

	e := engine.Local(board, createAgent(blackCfg, seed), createAgent(whiteCfg, seed+1))
	blackScore, whiteScore, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	return blackScore, whiteScore
}

func createAgent(cfg agentConfig, seed uint64) engine.Agent {
	if cfg.depth > 0 {
		return searcher.NewMinimax(searcher.WithDepth(cfg.depth))
	}

	options := []searcher.Option{searcher.WithSeed(cfg.seed + seed)}
	if cfg.simulations > 0 {
		options = append(options, searcher.WithSimulations(cfg.simulations))
	}
	if cfg.cutoff > 0 {
		options = append(options, searcher.WithCutoff(cfg.cutoff))
	}
	return searcher.NewMCTS(options...)
}
