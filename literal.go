// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envconv

import (
	"errors"
	"strings"
)

// collectionBrackets is the fixed character class trimmed from both ends
// of a raw collection string. Trimming is not pair matched, mismatched
// and repeated bracket characters are all removed.
const collectionBrackets = "{}()[]"

// splitTokens trims the raw string of surrounding whitespace, strips the
// bracket character class from both ends and splits the remainder on
// whitespace. Commas are not split points and stay embedded in tokens.
func splitTokens(raw string) []string {
	return strings.Fields(strings.Trim(strings.TrimSpace(raw), collectionBrackets))
}

// quoteToken normalizes a single token into a double quoted string
// literal safe for the bounded tuple grammar.
func quoteToken(tok string) string {
	v := strings.TrimSpace(tok)
	v = strings.ReplaceAll(v, "'", `\'`)
	v = strings.ReplaceAll(v, `"`, `\"`)

	v = strings.TrimSuffix(v, ",")

	// A token which was originally a single literal quote character
	// escapes to exactly two characters. Anything longer that both
	// starts and ends with the same escaped quote marker was already
	// quoted, so unwrap it instead of quoting the quotes.
	if len(v) != 2 &&
		((strings.HasPrefix(v, `\"`) && strings.HasSuffix(v, `\"`)) ||
			(strings.HasPrefix(v, `\'`) && strings.HasSuffix(v, `\'`))) {
		v = v[2 : len(v)-2]
	}

	return `"` + v + `"`
}

// assembleTuple joins normalized tokens into a single tuple shaped
// literal. The forced trailing comma guarantees a valid single or multi
// element shape.
func assembleTuple(tokens []string) string {
	return "(" + strings.Join(tokens, ", ") + ",)"
}

// parseItems runs the full tokenize, normalize, assemble, parse pipeline
// over a raw collection string and returns the flat ordered sequence of
// item strings.
func parseItems(raw string) ([]string, error) {
	tokens := splitTokens(raw)

	quoted := make([]string, len(tokens))
	for i, tok := range tokens {
		quoted[i] = quoteToken(tok)
	}

	items, err := parseStringTuple(assembleTuple(quoted))
	if err != nil {
		return nil, ConversionError{Raw: raw, Cause: err}
	}
	return items, nil
}

// parseStringTuple parses a parenthesized sequence of comma separated,
// double quoted string literals. The grammar is intentionally bounded to
// exactly that shape so no other expression can sneak in through a
// crafted environment value.
func parseStringTuple(s string) ([]string, error) {
	p := tupleParser{src: s}
	return p.parse()
}

type tupleParser struct {
	src string
	pos int
}

var (
	errExpectedOpenParen  = errors.New("expected opening parenthesis")
	errExpectedItem       = errors.New("expected double quoted string")
	errExpectedSeparator  = errors.New("expected comma or closing parenthesis")
	errUnterminatedString = errors.New("unterminated string literal")
	errTrailingCharacters = errors.New("unexpected characters after closing parenthesis")
)

func (p *tupleParser) parse() ([]string, error) {
	p.skipSpace()
	if !p.eat('(') {
		return nil, errExpectedOpenParen
	}

	var items []string
	for {
		p.skipSpace()
		if p.eat(')') {
			break
		}

		item, err := p.parseString()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		p.skipSpace()
		if p.eat(',') {
			continue
		}
		if p.eat(')') {
			break
		}
		return nil, errExpectedSeparator
	}

	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, errTrailingCharacters
	}
	return items, nil
}

func (p *tupleParser) parseString() (string, error) {
	if !p.eat('"') {
		return "", errExpectedItem
	}

	var sb strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		p.pos++

		switch c {
		case '"':
			return sb.String(), nil
		case '\\':
			if p.pos == len(p.src) {
				return "", errUnterminatedString
			}
			sb.WriteByte(p.src[p.pos])
			p.pos++
		default:
			sb.WriteByte(c)
		}
	}
	return "", errUnterminatedString
}

func (p *tupleParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *tupleParser) eat(c byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}
