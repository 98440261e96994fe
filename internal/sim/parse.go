package sim

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Field names used in ParseError.
const (
	FieldID        = "id"
	FieldItems     = "starting items"
	FieldOperation = "operation"
	FieldTest      = "test"
	FieldIfTrue    = "if true"
	FieldIfFalse   = "if false"
)

var fieldOrder = [...]string{FieldID, FieldItems, FieldOperation, FieldTest, FieldIfTrue, FieldIfFalse}

// Parser holds the compiled line patterns of the notes format.
// Build it once with NewParser and reuse it; it has no mutable state.
type Parser struct {
	patterns [len(fieldOrder)]*regexp.Regexp
	expr     *regexp.Regexp
}

func NewParser() *Parser {
	return &Parser{
		patterns: [len(fieldOrder)]*regexp.Regexp{
			regexp.MustCompile(`^Monkey\s+(-?\d+)\s*:$`),
			regexp.MustCompile(`^Starting items:(.*)$`),
			regexp.MustCompile(`^Operation:\s*(.+)$`),
			regexp.MustCompile(`^Test: divisible by\s+(\S+)$`),
			regexp.MustCompile(`^If true: throw to monkey\s+(\S+)$`),
			regexp.MustCompile(`^If false: throw to monkey\s+(\S+)$`),
		},
		expr: regexp.MustCompile(`^(?:new\s*=\s*)?old\s*([+*])\s*(\S+)$`),
	}
}

// Parse parses notes text with a freshly built Parser.
func Parse(text string) ([]Actor, error) {
	return NewParser().Parse(text)
}

type line struct {
	no   int
	text string
}

// Parse turns blank-line separated actor records into validated actors.
// Syntax problems yield *ParseError; inconsistent routing or divisors, and
// items or operands beyond MaxMagnitude, yield *ConfigValidationError.
// Lines longer than 1 MiB are rejected.
func (p *Parser) Parse(text string) ([]Actor, error) {
	blocks, err := splitBlocks(text)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, &ParseError{Record: -1, Err: ErrNoActors}
	}
	actors := make([]Actor, 0, len(blocks))
	for i, b := range blocks {
		a, err := p.parseBlock(i, b)
		if err != nil {
			return nil, err
		}
		actors = append(actors, a)
	}
	if err := Validate(actors); err != nil {
		return nil, err
	}
	return actors, nil
}

func splitBlocks(text string) ([][]line, error) {
	var (
		blocks [][]line
		cur    []line
	)
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	no := 0
	for sc.Scan() {
		no++
		t := strings.TrimSpace(sc.Text())
		if t == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line{no: no, text: t})
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Record: len(blocks), Line: no + 1, Field: "record",
			Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks, nil
}

func (p *Parser) parseBlock(idx int, b []line) (Actor, error) {
	var caps [len(fieldOrder)]string
	for f, name := range fieldOrder {
		if f >= len(b) {
			last := b[len(b)-1].no
			return Actor{}, &ParseError{Record: idx, Line: last, Field: name, Err: ErrMissingField}
		}
		m := p.patterns[f].FindStringSubmatch(b[f].text)
		if m == nil {
			return Actor{}, &ParseError{Record: idx, Line: b[f].no, Field: name,
				Err: fmt.Errorf("%w: got %q", ErrMalformed, b[f].text)}
		}
		caps[f] = m[1]
	}
	if len(b) > len(fieldOrder) {
		extra := b[len(fieldOrder)]
		return Actor{}, &ParseError{Record: idx, Line: extra.no, Field: "record",
			Err: fmt.Errorf("unexpected line %q", extra.text)}
	}

	perr := func(f int, err error) error {
		return &ParseError{Record: idx, Line: b[f].no, Field: fieldOrder[f], Err: err}
	}

	id, err := strconv.Atoi(caps[0])
	if err != nil {
		return Actor{}, perr(0, err)
	}
	if id != idx {
		return Actor{}, perr(0, fmt.Errorf("%w: declared %d at position %d", ErrIDMismatch, id, idx))
	}
	items, err := parseItems(caps[1])
	if err != nil {
		return Actor{}, perr(1, err)
	}
	op, err := p.ParseOperation(caps[2])
	if err != nil {
		return Actor{}, perr(2, err)
	}
	div, err := strconv.ParseInt(caps[3], 10, 64)
	if err != nil {
		return Actor{}, perr(3, err)
	}
	ifTrue, err := strconv.Atoi(caps[4])
	if err != nil {
		return Actor{}, perr(4, err)
	}
	ifFalse, err := strconv.Atoi(caps[5])
	if err != nil {
		return Actor{}, perr(5, err)
	}
	return Actor{
		ID:      idx,
		Op:      op,
		Divisor: div,
		IfTrue:  ifTrue,
		IfFalse: ifFalse,
		Items:   items,
	}, nil
}

func parseItems(s string) ([]Worry, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []Worry{}, nil
	}
	parts := strings.Split(s, ",")
	items := make([]Worry, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

// ParseOperation parses "old <op> <operand>", optionally prefixed by "new = ".
// "old + old" has no defined meaning and is rejected.
func (p *Parser) ParseOperation(expr string) (Operation, error) {
	m := p.expr.FindStringSubmatch(strings.TrimSpace(expr))
	if m == nil {
		return Operation{}, fmt.Errorf("%w: %q", ErrBadOperation, expr)
	}
	sym, operand := m[1], m[2]
	if operand == "old" {
		if sym == "*" {
			return Square(), nil
		}
		return Operation{}, fmt.Errorf("%w: %q", ErrBadOperation, expr)
	}
	k, err := strconv.ParseInt(operand, 10, 64)
	if err != nil {
		return Operation{}, fmt.Errorf("%w: operand %q: %v", ErrBadOperation, operand, err)
	}
	if sym == "*" {
		return Multiply(k), nil
	}
	return Add(k), nil
}
