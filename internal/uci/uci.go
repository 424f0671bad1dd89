// Package uci exposes the engine over the Universal Chess Interface.
package uci

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hailam/rookmate/internal/board"
	"github.com/hailam/rookmate/internal/engine"
)

// UCI implements the Universal Chess Interface protocol. The engine searches
// synchronously: "go" replies with bestmove once the depth/time limits are
// spent, and "stop" between depths is a no-op.
type UCI struct {
	engine   *engine.Engine
	position *board.Position

	depth    int
	moveTime time.Duration
}

// New creates a new UCI protocol handler.
func New(eng *engine.Engine) *UCI {
	return &UCI{
		engine:   eng,
		position: board.NewPosition(),
		depth:    engine.DifficultySettings[engine.Medium].Depth,
		moveTime: engine.DifficultySettings[engine.Medium].MoveTime,
	}
}

// Run starts the UCI main loop and returns when the driver quits.
func (u *UCI) Run() {
	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			u.position = board.NewPosition()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(args)
		case "stop":
			// Search is synchronous; nothing is running between commands.
		case "quit":
			return
		// Debug commands
		case "d":
			fmt.Println(u.position.String())
		case "eval":
			prof := u.engine.Profile()
			fmt.Printf("static eval: %d (attacker: %s)\n",
				u.engine.Evaluate(u.position), prof.Attacker)
		}
	}
}

// handleUCI responds to the "uci" command.
func (u *UCI) handleUCI() {
	fmt.Println("id name Rookmate")
	fmt.Println("id author Rookmate Team")
	fmt.Println()
	fmt.Println("option name Depth type spin default 4 min 1 max 64")
	fmt.Println("option name MoveTime type spin default 2000 min 10 max 600000")
	fmt.Println("uciok")
}

// handlePosition parses and sets up a position.
// Formats:
//   - position startpos [moves ...]
//   - position fen <fen> [moves ...]
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	moveStart := len(args)
	for i, arg := range args {
		if arg == "moves" {
			moveStart = i + 1
			break
		}
	}

	if args[0] == "startpos" {
		u.position = board.NewPosition()
	} else if args[0] == "fen" {
		end := moveStart - 1
		if moveStart == len(args) {
			end = len(args)
		}
		pos, err := board.ParseFEN(strings.Join(args[1:end], " "))
		if err != nil {
			fmt.Printf("info string %v\n", err)
			return
		}
		u.position = pos
	} else {
		return
	}

	for _, ms := range args[moveStart:] {
		m, err := board.ParseMove(ms)
		if err != nil {
			fmt.Printf("info string bad move %s: %v\n", ms, err)
			return
		}
		u.position.MakeMove(m) // game history; never unwound
	}
}

// handleGo runs the search and prints bestmove.
func (u *UCI) handleGo(args []string) {
	depth, moveTime := u.parseGo(args)

	u.engine.OnInfo = func(info engine.SearchInfo) {
		fmt.Printf("info depth %d score %s nodes %d time %d pv %s\n",
			info.Depth, scoreString(info), info.Nodes,
			info.Time.Milliseconds(), board.MoveString(info.Move))
	}

	move := u.engine.ChooseMove(u.position, depth, moveTime)
	fmt.Printf("bestmove %s\n", board.MoveString(move))
}

// parseGo reads the depth and movetime arguments of a "go" command, falling
// back to the handler's configured limits.
func (u *UCI) parseGo(args []string) (int, time.Duration) {
	depth := u.depth
	moveTime := u.moveTime

	for i := 0; i+1 < len(args); i++ {
		switch args[i] {
		case "depth":
			if d, err := strconv.Atoi(args[i+1]); err == nil {
				depth = d
			}
		case "movetime":
			if ms, err := strconv.Atoi(args[i+1]); err == nil {
				moveTime = time.Duration(ms) * time.Millisecond
			}
		}
	}
	return depth, moveTime
}

// scoreString formats a score for an info line. Forced mates report as
// "mate N"; the flat mate sentinel carries no exact distance, so the
// completed depth serves as the mate horizon in moves.
func scoreString(info engine.SearchInfo) string {
	moves := (info.Depth + 1) / 2
	switch info.Score {
	case engine.MateScore:
		return fmt.Sprintf("mate %d", moves)
	case -engine.MateScore:
		return fmt.Sprintf("mate -%d", moves)
	}
	return fmt.Sprintf("cp %d", info.Score)
}
