package layout

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// maxParseDepth bounds tuple nesting in parsed text, so untrusted
// input cannot drive the recursive descent arbitrarily deep.
const maxParseDepth = 64

// Parse builds a Layout from its Shape:Stride text form, e.g.
// "(12,(4,8)):(59,(13,1))". Whitespace is insignificant. Integers may
// be negative. Shape and stride must have identical tuple structure;
// a mismatch is reported as a *StructureError naming the offending
// position, every other defect as a *ParseError.
func Parse(s string) (Layout, error) {
	if strings.TrimSpace(s) == "" {
		return Layout{}, &ParseError{Input: s, Pos: -1, Msg: "input string is empty"}
	}
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	switch n := strings.Count(cleaned, ":"); {
	case n == 0:
		return Layout{}, &ParseError{Input: cleaned, Pos: -1,
			Msg: `missing colon separator, expected "Shape:Stride"`}
	case n > 1:
		return Layout{}, &ParseError{Input: cleaned, Pos: -1,
			Msg: fmt.Sprintf("expected exactly one colon separator, found %d", n)}
	}
	sep := strings.IndexByte(cleaned, ':')
	shapeText, strideText := cleaned[:sep], cleaned[sep+1:]
	if shapeText == "" || strideText == "" {
		return Layout{}, &ParseError{Input: cleaned, Pos: -1,
			Msg: "both shape and stride must be specified"}
	}

	shape, err := parseTree(shapeText, 0, cleaned)
	if err != nil {
		return Layout{}, err
	}
	stride, err := parseTree(strideText, sep+1, cleaned)
	if err != nil {
		return Layout{}, err
	}
	// The grammar cannot express the isomorphism invariant, so it is
	// cross-checked on the built trees.
	if err := Validate(shape, stride); err != nil {
		return Layout{}, err
	}
	return Layout{shape: shape, stride: stride}, nil
}

// parseTree parses one side of the colon. offset locates src within
// the cleaned input for error positions.
func parseTree(src string, offset int, input string) (Tree, error) {
	p := &parser{src: src, offset: offset, input: input}
	t, err := p.value(0)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		if p.src[p.pos] == ')' {
			return nil, p.errorf("unbalanced parentheses")
		}
		return nil, p.errorf("unexpected character %q", p.src[p.pos])
	}
	return t, nil
}

type parser struct {
	src    string
	pos    int
	offset int
	input  string
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Input: p.input, Pos: p.offset + p.pos, Msg: fmt.Sprintf(format, args...)}
}

// value parses an integer or a parenthesized, comma-separated tuple of
// values.
func (p *parser) value(depth int) (Tree, error) {
	if depth > maxParseDepth {
		return nil, p.errorf("tuple nesting deeper than %d levels", maxParseDepth)
	}
	if p.pos >= len(p.src) {
		return nil, p.errorf("unexpected end of input")
	}
	if p.src[p.pos] != '(' {
		return p.integer()
	}

	p.pos++ // consume '('
	if p.pos < len(p.src) && p.src[p.pos] == ')' {
		return nil, p.errorf(`empty parentheses "()" are not allowed`)
	}
	var elems Tuple
	for {
		elem, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		if p.pos >= len(p.src) {
			return nil, p.errorf("unbalanced parentheses")
		}
		switch p.src[p.pos] {
		case ')':
			p.pos++
			return elems, nil
		case ',':
			p.pos++
			if p.pos >= len(p.src) {
				return nil, p.errorf("unbalanced parentheses")
			}
			switch p.src[p.pos] {
			case ')':
				return nil, p.errorf("trailing comma in tuple")
			case ',':
				return nil, p.errorf("empty element in tuple")
			}
		default:
			return nil, p.errorf("expected ',' or ')', got %q", p.src[p.pos])
		}
	}
}

// integer parses an optionally signed decimal integer leaf.
func (p *parser) integer() (Tree, error) {
	start := p.pos
	if p.src[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	text := p.src[start:p.pos]
	if text == "" || text == "-" {
		p.pos = start
		return nil, p.errorf("unexpected character %q, expected an integer or '('", p.src[start])
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		p.pos = start
		return nil, p.errorf("cannot parse %q as integer", text)
	}
	return Int(n), nil
}
