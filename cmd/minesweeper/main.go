package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/blondsend/minesweeper-solver/internal/mines"
	"github.com/blondsend/minesweeper-solver/internal/solver"
)

var (
	log = logrus.New()

	width     int
	height    int
	mineCount int
	enumCap   int
	seed      uint64
	logPath   string
	verbose   bool
)

func init() {
	flag.IntVar(&width, "width", 9, "board width")
	flag.IntVar(&height, "height", 9, "board height")
	flag.IntVar(&mineCount, "mines", 10, "mine count")
	flag.IntVar(&enumCap, "cap", solver.DefaultCap,
		"max component size for exhaustive enumeration")
	flag.Uint64Var(&seed, "seed", 0, "board generation seed (0 = time-based)")
	flag.StringVar(&logPath, "log", "", "rotating log file path")
	flag.BoolVar(&verbose, "v", false, "debug logging")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if logPath != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logPath,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logrus.DebugLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatal("unable to set up log file: ", err)
		}
		log.AddHook(hook)
	}

	mines.Log = log
	solver.Log = log
}

const usage = `commands:
  o <x> <y>   open a cell (the first open is always safe)
  f <x> <y>   toggle a flag
  c <x> <y>   chord a satisfied number
  s           solve one step and apply the suggested moves
  a           autoplay until the game ends
  p           print the probability table
  b           print the board
  q           quit`

func main() {
	flag.Parse()
	setupLogging()

	params := &mines.GameParams{
		Width: width, Height: height, MineCount: mineCount,
	}
	if err := params.Validate(); err != nil {
		log.Fatal(err)
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	s := &session{
		params: params,
		solver: &solver.Solver{Cap: enumCap},
		rng:    rand.New(rand.NewPCG(seed, 0)),
		out:    os.Stdout,
	}

	log.WithFields(logrus.Fields{
		"board": params.Seed(),
		"rng":   seed,
		"cap":   enumCap,
	}).Info("starting game")

	fmt.Println(usage)
	fmt.Print("> ")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			quit, err := executeCommand(s, line)
			if err != nil {
				var contradiction solver.ContradictionError
				if errors.As(err, &contradiction) {
					log.Error("unrecoverable: ", err)
					os.Exit(1)
				}
				fmt.Println(err)
			}
			if quit || s.finished() {
				return
			}
		}
		fmt.Print("> ")
	}
}
