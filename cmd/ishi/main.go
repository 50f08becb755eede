// Command ishi is a tiny smoke demo: it builds an empty board, and for
// each of four plies runs a fixed-iteration search and plays the chosen
// move, logging what happened. It is not a GTP or UCI front end.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/traveller42/ishi/board"
	"github.com/traveller42/ishi/mcts"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	const size = 9
	const komi = 6.5
	const iterations = 2000

	b := board.New(size, komi)
	logger.Info().Int("size", size).Float64("komi", komi).Msg("board created")

	engine := mcts.New(time.Now().UnixNano(), mcts.WithRAVE(), mcts.WithLogger(logger))

	for ply := 0; ply < 4; ply++ {
		mover := b.ToPlay()
		move := engine.Search(b, iterations)
		ok := b.Move(move)
		logger.Info().
			Str("mover", mover.String()).
			Bool("pass", move.IsPass()).
			Int("vertex", move.V).
			Bool("accepted", ok).
			Uint64("hash", b.Hash()).
			Msg("move played")
	}

	logger.Info().Str("board", b.Dump(true)).Msg("final position")
	logger.Info().
		Float64("black_score", b.Evaluate(board.Black)).
		Float64("white_score", b.Evaluate(board.White)).
		Msg("area score")
}
