package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/iamasit07/4-in-a-row/engine/internal/config"
	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/bot"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()
	cfg := config.LoadConfig()

	depth := flag.Int("depth", cfg.DepthMedium, "engine search depth in plies")
	engineFirst := flag.Bool("engine-first", false, "let the engine open the game")
	flag.Parse()

	if *depth < 0 || *depth > cfg.MaxSearchDepth {
		log.Fatalf("depth must be between 0 and %d", cfg.MaxSearchDepth)
	}

	if err := play(os.Stdin, os.Stdout, *depth, *engineFirst); err != nil {
		log.Fatal(err)
	}
}

// play runs one game on the terminal: the human is X and types columns
// 1-7, the engine is O. It returns when the game ends or input runs out.
func play(in io.Reader, out io.Writer, depth int, engineFirst bool) error {
	first := domain.PlayerPiece
	if engineFirst {
		first = domain.EnginePiece
	}
	g := domain.NewGame(first)
	scanner := bufio.NewScanner(in)

	fmt.Fprint(out, g.Board.String())
	for !g.IsFinished() {
		if g.CurrentPlayer == domain.EnginePiece {
			column, err := bot.ChooseMove(g.Board, depth)
			if err != nil {
				return fmt.Errorf("engine move: %w", err)
			}
			if _, err := g.MakeMove(domain.EnginePiece, column); err != nil {
				return fmt.Errorf("engine move %d: %w", column+1, err)
			}
			fmt.Fprintf(out, "Engine plays %d\n", column+1)
			fmt.Fprint(out, g.Board.String())
			continue
		}

		fmt.Fprint(out, "Your move (1-7): ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			fmt.Fprintln(out, "\nGame abandoned")
			return nil
		}

		column, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(out, "Please enter a number from 1 to 7")
			continue
		}
		if _, err := g.MakeMove(domain.PlayerPiece, column-1); err != nil {
			if errors.Is(err, domain.ErrInvalidMove) {
				fmt.Fprintln(out, "That column is not playable")
				continue
			}
			return err
		}
		fmt.Fprint(out, g.Board.String())
	}

	switch g.Winner {
	case domain.PlayerPiece:
		fmt.Fprintln(out, "You win!")
	case domain.EnginePiece:
		fmt.Fprintln(out, "Engine wins!")
	default:
		fmt.Fprintln(out, "It's a draw!")
	}
	return nil
}
