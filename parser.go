package push

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	intPattern   = regexp.MustCompile(`^[+-]?[0-9]+$`)
	floatPattern = regexp.MustCompile(`^[+-]?([0-9]+\.[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$|^[+-]?[0-9]+[eE][+-]?[0-9]+$`)
)

// Parse lexes and parses a Push program, returning a single List item
// containing the top-level parsed items. The caller pushes the
// result onto the EXEC stack to begin execution; Parse itself never
// touches a State.
//
// reg is consulted to recognize instruction names; it may be nil, in
// which case no atom is ever classified as an instruction reference
// (every non-literal atom becomes a Name).
func Parse(src string, reg *Registry) (Item, error) {
	p := &parser{lex: newLexer(src), reg: reg}
	p.tok = p.lex.next()
	items, err := p.parseList(false)
	if err != nil {
		return Item{}, err
	}
	if p.tok.typ != tokEOF {
		return Item{}, newParseError(p.tok.offset, "unbalanced parentheses: unexpected %q", p.tok.text)
	}
	return ListItem(items), nil
}

type parser struct {
	lex *lexer
	reg *Registry
	tok token
}

func (p *parser) advance() { p.tok = p.lex.next() }

// parseList consumes items until a matching ')' (if nested) or EOF
// (if top-level).
func (p *parser) parseList(nested bool) ([]Item, error) {
	var items []Item
	for {
		switch p.tok.typ {
		case tokEOF:
			if nested {
				return nil, newParseError(p.tok.offset, "unbalanced parentheses: missing )")
			}
			return items, nil
		case tokRParen:
			if !nested {
				return nil, newParseError(p.tok.offset, "unbalanced parentheses: unexpected )")
			}
			p.advance()
			return items, nil
		case tokLParen:
			p.advance()
			sub, err := p.parseList(true)
			if err != nil {
				return nil, err
			}
			items = append(items, ListItem(sub))
		case tokAtom:
			it, err := p.parseAtom(p.tok)
			if err != nil {
				return nil, err
			}
			p.advance()
			items = append(items, it)
		}
	}
}

func (p *parser) parseAtom(t token) (Item, error) {
	text := t.text
	upper := strings.ToUpper(text)

	switch upper {
	case "TRUE":
		return BoolItem(true), nil
	case "FALSE":
		return BoolItem(false), nil
	}

	if intPattern.MatchString(text) {
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Item{}, newParseError(t.offset, "integer literal out of range: %s", text)
		}
		return IntItem(i), nil
	}

	if floatPattern.MatchString(text) {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Item{}, newParseError(t.offset, "float literal out of range: %s", text)
		}
		return FloatItem(f), nil
	}

	if it, ok, err := p.parseVector(t); ok {
		return it, err
	}

	if p.reg != nil && p.reg.Has(upper) {
		return InstructionItem(upper), nil
	}

	return NameItem(text), nil
}

func (p *parser) parseVector(t token) (Item, bool, error) {
	text := t.text
	var kindPrefix string
	for _, k := range []string{"BOOL", "INT", "FLOAT"} {
		if len(text) > len(k) && strings.EqualFold(text[:len(k)], k) && text[len(k)] == '[' {
			kindPrefix = k
			break
		}
	}
	if kindPrefix == "" {
		return Item{}, false, nil
	}
	if !strings.HasSuffix(text, "]") {
		return Item{}, true, newParseError(t.offset, "malformed vector literal: %s", text)
	}
	body := text[len(kindPrefix)+1 : len(text)-1]
	var fields []string
	if body != "" {
		fields = strings.Split(body, ",")
	}
	switch kindPrefix {
	case "BOOL":
		xs := make([]bool, len(fields))
		for i, f := range fields {
			switch strings.ToUpper(strings.TrimSpace(f)) {
			case "TRUE", "1":
				xs[i] = true
			case "FALSE", "0":
				xs[i] = false
			default:
				return Item{}, true, newParseError(t.offset, "malformed vector literal: %s", text)
			}
		}
		return BoolVecItem(xs), true, nil
	case "INT":
		xs := make([]int64, len(fields))
		for i, f := range fields {
			f = strings.TrimSpace(f)
			if !intPattern.MatchString(f) {
				return Item{}, true, newParseError(t.offset, "malformed vector literal: %s", text)
			}
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return Item{}, true, newParseError(t.offset, "integer literal out of range in vector: %s", text)
			}
			xs[i] = v
		}
		return IntVecItem(xs), true, nil
	case "FLOAT":
		xs := make([]float64, len(fields))
		for i, f := range fields {
			f = strings.TrimSpace(f)
			if !floatPattern.MatchString(f) && !intPattern.MatchString(f) {
				return Item{}, true, newParseError(t.offset, "malformed vector literal: %s", text)
			}
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return Item{}, true, newParseError(t.offset, "float literal out of range in vector: %s", text)
			}
			xs[i] = v
		}
		return FloatVecItem(xs), true, nil
	}
	return Item{}, false, nil
}
