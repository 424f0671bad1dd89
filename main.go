// Rookmate - a king+rook vs king endgame trainer played in the terminal.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/hailam/rookmate/internal/board"
	"github.com/hailam/rookmate/internal/engine"
	"github.com/hailam/rookmate/internal/storage"
)

var (
	engineSide = flag.String("engine-side", "attacker", "side the engine plays: attacker (king+rook) or defender (bare king)")
	attacker   = flag.String("attacker", "white", "color that has the rook: white or black")
	difficulty = flag.String("difficulty", "medium", "engine difficulty: easy, medium, or hard")
	startFEN   = flag.String("fen", "", "start from a custom FEN instead of the training position")
	kingSq     = flag.String("king", "", "attacker king square for a custom setup (e.g. e1)")
	rookSq     = flag.String("rook", "", "attacker rook square for a custom setup")
	defenderSq = flag.String("defender-king", "", "defender king square for a custom setup")
)

func main() {
	flag.Parse()

	flagsSet := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { flagsSet[f.Name] = true })

	store, err := storage.NewStorage()
	if err != nil {
		log.Printf("stats disabled: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	var prefs *storage.UserPreferences
	if store != nil {
		if p, err := store.LoadPreferences(); err == nil {
			prefs = p
		} else {
			log.Printf("could not load preferences: %v", err)
		}
	}

	side, diff := chosenSettings(*engineSide, *difficulty, flagsSet, prefs)

	attackerColor := board.White
	if *attacker == "black" {
		attackerColor = board.Black
	}

	profile := engine.AttackerWithRook(attackerColor)
	if attackerColor == board.Black {
		profile = engine.DefenderWithRook(attackerColor)
	}
	eng := engine.NewEngine(profile)
	eng.SetDifficulty(engineDifficulty(diff))

	pos, err := startPosition(attackerColor)
	if err != nil {
		log.Fatal(err)
	}

	engineColor := attackerColor
	if side == "defender" {
		engineColor = attackerColor.Other()
	}

	play(pos, eng, engineColor, store, storageDifficulty(diff))

	if store != nil {
		if err := store.SavePreferences(sessionPreferences(prefs, side, diff, engineColor)); err != nil {
			log.Printf("failed to save preferences: %v", err)
		}
	}
}

// chosenSettings merges command-line flags with the stored preferences: a
// flag the user typed wins, otherwise the last session's choice stands.
func chosenSettings(flagSide, flagDiff string, flagsSet map[string]bool, prefs *storage.UserPreferences) (side, diff string) {
	side, diff = flagSide, flagDiff
	if prefs == nil {
		return side, diff
	}
	if !flagsSet["engine-side"] {
		side = "attacker"
		if prefs.EngineRole == storage.RoleDefender {
			side = "defender"
		}
	}
	if !flagsSet["difficulty"] {
		switch prefs.Difficulty {
		case storage.DifficultyEasy:
			diff = "easy"
		case storage.DifficultyHard:
			diff = "hard"
		default:
			diff = "medium"
		}
	}
	return side, diff
}

// sessionPreferences captures this session's choices for the next launch.
func sessionPreferences(prev *storage.UserPreferences, side, diff string, engineColor board.Color) *storage.UserPreferences {
	prefs := storage.DefaultPreferences()
	if prev != nil {
		prefs.Username = prev.Username
	}
	prefs.Difficulty = storageDifficulty(diff)
	prefs.EngineRole = storage.RoleAttacker
	if side == "defender" {
		prefs.EngineRole = storage.RoleDefender
	}
	prefs.EngineColor = storage.ColorWhite
	if engineColor == board.Black {
		prefs.EngineColor = storage.ColorBlack
	}
	return prefs
}

func engineDifficulty(name string) engine.Difficulty {
	switch name {
	case "easy":
		return engine.Easy
	case "hard":
		return engine.Hard
	}
	return engine.Medium
}

func storageDifficulty(name string) storage.Difficulty {
	switch name {
	case "easy":
		return storage.DifficultyEasy
	case "hard":
		return storage.DifficultyHard
	}
	return storage.DifficultyMedium
}

func startPosition(attackerColor board.Color) (*board.Position, error) {
	if *startFEN != "" {
		return board.ParseFEN(*startFEN)
	}
	if *kingSq != "" || *rookSq != "" || *defenderSq != "" {
		return customPosition(attackerColor, *kingSq, *rookSq, *defenderSq)
	}
	return defaultPosition(attackerColor)
}

// defaultPosition is the classic training setup: attacker king e1, rook a1,
// defender king e8, attacker to move, mirrored when the attacker is black.
func defaultPosition(attacker board.Color) (*board.Position, error) {
	king, rook, defender := board.E1, board.A1, board.E8
	if attacker == board.Black {
		king, rook, defender = king.Mirror(), rook.Mirror(), defender.Mirror()
	}
	return board.NewEndgame(attacker, king, rook, defender, attacker)
}

// customPosition builds an endgame from user-supplied squares.
func customPosition(attacker board.Color, kingStr, rookStr, defenderStr string) (*board.Position, error) {
	king, err := board.ParseSquare(kingStr)
	if err != nil {
		return nil, fmt.Errorf("-king: %v", err)
	}
	rook, err := board.ParseSquare(rookStr)
	if err != nil {
		return nil, fmt.Errorf("-rook: %v", err)
	}
	defender, err := board.ParseSquare(defenderStr)
	if err != nil {
		return nil, fmt.Errorf("-defender-king: %v", err)
	}
	return board.NewEndgame(attacker, king, rook, defender, attacker)
}

func play(pos *board.Position, eng *engine.Engine, engineColor board.Color, store *storage.Storage, diff storage.Difficulty) {
	reader := bufio.NewReader(os.Stdin)
	start := time.Now()

	for {
		fmt.Println(pos.String())

		if over, result := verdict(pos, eng.Profile().Attacker); over {
			fmt.Println(result.message)
			if store != nil {
				result.record.Difficulty = diff
				result.record.Duration = time.Since(start)
				if err := store.RecordGame(result.record); err != nil {
					log.Printf("failed to record game: %v", err)
				} else if stats, err := store.LoadStats(); err == nil {
					fmt.Printf("Games: %d  Mates: %d  Draws: %d  Mate rate: %.0f%%\n",
						stats.GamesPlayed, stats.Mates, stats.Draws, stats.GetMateRate())
				}
			}
			return
		}

		if pos.SideToMove() == engineColor {
			move := eng.Search(pos)
			if move == board.NoMove {
				return
			}
			fmt.Printf("Engine plays %s\n", board.MoveString(move))
			pos.MakeMove(move)
			continue
		}

		move, quit := readMove(reader, pos)
		if quit {
			return
		}
		pos.MakeMove(move)
	}
}

type outcome struct {
	message string
	record  storage.GameResult
}

// verdict decides whether the game is over and how to score it for the
// attacker's statistics.
func verdict(pos *board.Position, attackerColor board.Color) (bool, outcome) {
	switch {
	case pos.IsCheckmate():
		winner := pos.SideToMove().Other()
		return true, outcome{
			message: fmt.Sprintf("Checkmate! %s wins.", winner),
			record:  storage.GameResult{Mated: winner == attackerColor},
		}
	case pos.IsStalemate():
		return true, outcome{
			message: "Stalemate. Draw.",
			record:  storage.GameResult{Draw: true},
		}
	case pos.IsInsufficientMaterial():
		return true, outcome{
			message: "Insufficient material. Draw.",
			record:  storage.GameResult{Draw: true},
		}
	case pos.CanClaimDraw():
		return true, outcome{
			message: "Draw by fifty-move rule or repetition.",
			record:  storage.GameResult{Draw: true},
		}
	}
	return false, outcome{}
}

// readMove prompts until the user enters a legal move or quits.
func readMove(reader *bufio.Reader, pos *board.Position) (board.Move, bool) {
	for {
		fmt.Printf("Your move (%s), e.g. e1e2, or quit: ", pos.SideToMove())
		line, err := reader.ReadString('\n')
		if err != nil {
			return board.NoMove, true
		}
		line = strings.TrimSpace(line)
		if line == "quit" || line == "exit" {
			return board.NoMove, true
		}

		move, err := board.ParseMove(line)
		if err != nil {
			fmt.Println("Could not parse that move.")
			continue
		}

		legal := false
		for _, m := range pos.LegalMoves() {
			if m == move {
				legal = true
				break
			}
		}
		if !legal {
			fmt.Println("Illegal move here.")
			continue
		}
		return move, false
	}
}
