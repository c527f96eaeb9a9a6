package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"o": 2,
	"f": 2,
	"c": 2,
	"s": 0,
	"a": 0,
	"p": 0,
	"b": 0,
	"q": 0,
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

func executeCommand(s *session, line string) (quit bool, err error) {
	parts := strings.Split(line, " ")
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return false, errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return false, errors.New("invalid number of arguments")
	}
	if parts[0] != "o" && parts[0] != "q" && !s.started() {
		return false, errors.New("open a cell first")
	}

	switch parts[0] {
	case "q":
		return true, nil
	case "o":
		if x, y, err := parseXY(parts[1:]); err != nil {
			return false, err
		} else if !s.params.PointInBounds(x, y) {
			return false, errors.New("invalid cell coordinates")
		} else {
			return false, s.open(x, y)
		}
	case "f":
		if x, y, err := parseXY(parts[1:]); err != nil {
			return false, err
		} else if !s.game.ValidatePoint(x, y) {
			return false, errors.New("invalid cell coordinates")
		} else {
			s.game.FlagCell(x, y)
			s.printBoard()
		}
		return false, nil
	case "c":
		if x, y, err := parseXY(parts[1:]); err != nil {
			return false, err
		} else if !s.game.ValidatePoint(x, y) {
			return false, errors.New("invalid cell coordinates")
		} else {
			s.game.ChordCell(x, y)
			s.printBoard()
		}
		return false, nil
	case "s":
		_, err := s.solveStep()
		return false, err
	case "a":
		return false, s.autoplay()
	case "p":
		res, err := s.solver.Solve(s.snapshot())
		if err != nil {
			return false, err
		}
		fmt.Fprint(s.out, renderProbabilities(res, s.game.Width))
		return false, nil
	case "b":
		s.printBoard()
		return false, nil
	}
	return false, errors.New("invalid command")
}
