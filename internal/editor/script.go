package editor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/appengine-ltd/pretender/internal/command"
	"github.com/appengine-ltd/pretender/internal/sketch"
	"github.com/appengine-ltd/pretender/internal/slot"
)

// ParseScript reads one input action per line:
//
//	type <text>        one key event per character
//	enter | confirm    confirm
//	esc | cancel       cancel
//	click <x> <y>      pointer click
//	pick <index> <gen> entity pick
//	close              window close
//
// Blank lines and lines starting with # are skipped.
func ParseScript(r io.Reader) ([]command.Event, error) {
	var events []command.Event
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		verb, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)
		switch strings.ToLower(verb) {
		case "type":
			if rest == "" {
				return nil, fmt.Errorf("line %d: type needs text", lineNo)
			}
			for _, ch := range rest {
				events = append(events, command.CharEvent(ch))
			}
		case "enter", "confirm":
			events = append(events, command.ConfirmEvent())
		case "esc", "cancel":
			events = append(events, command.CancelEvent())
		case "close":
			events = append(events, command.CloseEvent())
		case "click":
			x, y, err := parsePair(rest, strconv.ParseFloat)
			if err != nil {
				return nil, fmt.Errorf("line %d: click: %w", lineNo, err)
			}
			events = append(events, command.ClickEvent(x, y))
		case "pick":
			idx, gen, err := parsePair(rest, func(s string, _ int) (uint64, error) {
				return strconv.ParseUint(s, 10, 32)
			})
			if err != nil {
				return nil, fmt.Errorf("line %d: pick: %w", lineNo, err)
			}
			events = append(events, command.PickEvent(slot.NewHandle[sketch.Entity](int(idx), uint32(gen))))
		default:
			return nil, fmt.Errorf("line %d: unknown action %q", lineNo, verb)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func parsePair[N any](s string, parse func(string, int) (N, error)) (N, N, error) {
	var zero N
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return zero, zero, fmt.Errorf("want 2 values, got %d", len(fields))
	}
	a, err := parse(fields[0], 64)
	if err != nil {
		return zero, zero, err
	}
	b, err := parse(fields[1], 64)
	if err != nil {
		return zero, zero, err
	}
	return a, b, nil
}
