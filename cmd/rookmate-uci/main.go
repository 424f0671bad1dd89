package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/hailam/rookmate/internal/board"
	"github.com/hailam/rookmate/internal/engine"
	"github.com/hailam/rookmate/internal/uci"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	attacker   = flag.String("attacker", "white", "color the engine treats as the rook side: white or black")
)

func main() {
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	attackerColor := board.White
	profile := engine.AttackerWithRook(attackerColor)
	if *attacker == "black" {
		attackerColor = board.Black
		profile = engine.DefenderWithRook(attackerColor)
	}

	eng := engine.NewEngine(profile)

	protocol := uci.New(eng)
	protocol.Run()
}
