package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/zucenko/ladders/model"
)

var ErrInvalidLayout = errors.New("invalid layout")

// LoadLayout reads a fixed board from a layout file.
func LoadLayout(path string, size int) (*model.Board, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout: %w", err)
	}
	defer file.Close()
	return ReadLayout(file, size)
}

// ReadLayout parses one transition per line:
//
//	# comment
//	ladder 4 24
//	snake 97 77
func ReadLayout(reader io.Reader, size int) (*model.Board, error) {
	board := model.NewEmptyBoard(size)
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	line := 0

	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		fields := strings.Fields(s)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: want \"<ladder|snake> <from> <to>\"", ErrInvalidLayout, line)
		}
		from, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: from: %v", ErrInvalidLayout, line, err)
		}
		to, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: to: %v", ErrInvalidLayout, line, err)
		}
		start, end := model.Cell(from), model.Cell(to)
		if _, dup := board.Ladders[start]; dup {
			return nil, fmt.Errorf("%w: line %d: cell %d already has a ladder", ErrInvalidLayout, line, start)
		}
		if _, dup := board.Snakes[start]; dup {
			return nil, fmt.Errorf("%w: line %d: cell %d already has a snake", ErrInvalidLayout, line, start)
		}
		switch strings.ToLower(fields[0]) {
		case "ladder", "l":
			board.Ladders[start] = end
		case "snake", "s":
			board.Snakes[start] = end
		default:
			return nil, fmt.Errorf("%w: line %d: unknown kind %q", ErrInvalidLayout, line, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	if err := ValidateBoard(board); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	return board, nil
}
