// Package feed parses the three plain-text input feeds the simulator
// consumes: the initial topology, the message list, and the ordered
// topology changes. Each feed is one entry per line, whitespace separated.
// A line that does not parse is a hard failure; the core never sees
// malformed data.
package feed

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/encodeous/routesim/state"
)

// ParseTopology reads (nodeA, nodeB, cost) triples. Cost validity is
// enforced by the graph on insert, not here.
func ParseTopology(r io.Reader) ([]state.Link, error) {
	links := make([]state.Link, 0)
	err := eachLine(r, func(lineNo int, line string) error {
		a, b, cost, err := parseTriple(line)
		if err != nil {
			return fmt.Errorf("topology line %d: %w", lineNo, err)
		}
		links = append(links, state.Link{A: a, B: b, Cost: cost})
		return nil
	})
	return links, err
}

// ParseChanges reads (nodeA, nodeB, cost) triples where cost may be the
// removal sentinel.
func ParseChanges(r io.Reader) ([]state.Change, error) {
	changes := make([]state.Change, 0)
	err := eachLine(r, func(lineNo int, line string) error {
		a, b, cost, err := parseTriple(line)
		if err != nil {
			return fmt.Errorf("change line %d: %w", lineNo, err)
		}
		changes = append(changes, state.Change{A: a, B: b, Cost: cost})
		return nil
	})
	return changes, err
}

// ParseMessages reads (source, destination, payload) triples. The payload
// is everything after the second field, kept verbatim; it may itself
// contain whitespace.
func ParseMessages(r io.Reader) ([]state.Message, error) {
	msgs := make([]state.Message, 0)
	err := eachLine(r, func(lineNo int, line string) error {
		srcField, rest := cutField(line)
		dstField, payload := cutField(rest)
		if srcField == "" || dstField == "" || payload == "" {
			return fmt.Errorf("message line %d: expected <source> <destination> <payload>", lineNo)
		}
		src, err := strconv.Atoi(srcField)
		if err != nil {
			return fmt.Errorf("message line %d: bad source: %w", lineNo, err)
		}
		dst, err := strconv.Atoi(dstField)
		if err != nil {
			return fmt.Errorf("message line %d: bad destination: %w", lineNo, err)
		}
		msgs = append(msgs, state.Message{
			Src:     state.NodeId(src),
			Dst:     state.NodeId(dst),
			Payload: payload,
		})
		return nil
	})
	return msgs, err
}

func eachLine(r io.Reader, fn func(lineNo int, line string) error) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseTriple(line string) (state.NodeId, state.NodeId, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}
	vals := make([]int, 3)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("field %q is not an integer", f)
		}
		vals[i] = v
	}
	return state.NodeId(vals[0]), state.NodeId(vals[1]), vals[2], nil
}

// cutField splits off the first whitespace-delimited field, returning the
// field and the trimmed remainder.
func cutField(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, func(r rune) bool { return r == ' ' || r == '\t' })
	if i == -1 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}
