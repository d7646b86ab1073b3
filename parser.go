/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package kanjidic

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// kokujiMarker is the meaning group that flags a character invented in Japan.
const kokujiMarker = "(kokuji)"

// Parser parses KANJIDIC-format dictionary lines. The zero value is a valid
// lenient parser; parsing holds no state across calls, so one Parser may be
// reused and shared freely.
type Parser struct {
	strictTokens bool
	warnFunc     WarnFunc
}

// NewParser creates new Parser.
// Available options:
// - WithStrictTokens(b bool) - fail on unrecognized tokens instead of skipping them.
// - WithWarnFunc(f WarnFunc) - observe skipped tokens and unset fields.
func NewParser(opts ...ParserOption) *Parser {
	pOpts := makeParserOptions(opts...)
	return &Parser{
		strictTokens: pOpts.strictTokens,
		warnFunc:     pOpts.warnFunc,
	}
}

// Parse parses decoded dictionary lines into a Dictionary.
// For more details see Parse in Parser.
func Parse(lines []string, opts ...ParserOption) (Dictionary, error) {
	return NewParser(opts...).Parse(lines)
}

// ParseEntry parses a single decoded dictionary line into an Entry.
// For more details see ParseEntry in Parser.
func ParseEntry(line string, opts ...ParserOption) (*Entry, error) {
	return NewParser(opts...).ParseEntry(line)
}

// Parse parses decoded dictionary lines into a Dictionary keyed by kanji.
// Lines that are not data lines (the version banner, comments) are skipped.
// Any other per-line failure aborts the parse with a *ParseError carrying the
// 1-based line number, since a malformed data line indicates a corrupt or
// unsupported input file.
func (p *Parser) Parse(lines []string) (Dictionary, error) {
	d := make(Dictionary, len(lines))
	for i, line := range lines {
		e, err := p.parseEntryLine(i+1, line)
		if err != nil {
			if errors.Is(err, ErrNotDataLine) {
				continue
			}
			return nil, &ParseError{Line: i + 1, Err: err}
		}
		// The format guarantees unique kanji; if a duplicate occurs
		// anyway, the last line wins.
		d[e.Kanji] = e
	}
	return d, nil
}

// ParseEntry parses a single decoded dictionary line into an Entry.
// It reports ErrNotDataLine when the line does not start with a single kanji
// followed by its JIS code. Unrecognized tokens are skipped unless
// WithStrictTokens is set; a malformed Morohashi reference leaves that one
// field unset. Both conditions are observable via WithWarnFunc.
func (p *Parser) ParseEntry(line string) (*Entry, error) {
	return p.parseEntryLine(0, line)
}

type readingMode uint8

const (
	readingDefault readingMode = iota
	readingNanori
	readingRadicalName
)

func (p *Parser) parseEntryLine(n int, line string) (*Entry, error) {
	tokens := splitTokens(line)
	if len(tokens) < 2 {
		return nil, ErrNotDataLine
	}
	r, size := utf8.DecodeRuneInString(tokens[0])
	if size != len(tokens[0]) || !unicode.Is(unicode.Han, r) {
		return nil, ErrNotDataLine
	}

	e := &Entry{Kanji: tokens[0], JIS: tokens[1]}

	mode := readingDefault
	for _, tok := range tokens[2:] {
		switch {
		case tok[0] == '{':
			meaning := strings.TrimSuffix(strings.TrimPrefix(tok, "{"), "}")
			if meaning == kokujiMarker {
				e.Kokuji = true
				continue
			}
			e.English = append(e.English, meaning)

		case tok == "T1":
			mode = readingNanori

		case tok == "T2":
			mode = readingRadicalName

		default:
			if script := readingScriptOf(tok); script != scriptNone {
				appendReading(e, mode, script, tok)
				continue
			}
			if err := classifyToken(e, tok); err != nil {
				var unknownErr *UnknownTokenError
				if p.strictTokens && errors.As(err, &unknownErr) {
					return nil, err
				}
				p.warn(n, e.Kanji, err)
			}
		}
	}

	finalizeEntry(e)
	return e, nil
}

func (p *Parser) warn(line int, kanji string, err error) {
	if p.warnFunc != nil {
		p.warnFunc(line, kanji, err)
	}
}

func appendReading(e *Entry, mode readingMode, script readingScript, tok string) {
	switch mode {
	case readingNanori:
		e.Nanori = append(e.Nanori, tok)
	case readingRadicalName:
		e.RadicalNames = append(e.RadicalNames, tok)
	default:
		if script == scriptKatakana {
			e.Onyomi = append(e.Onyomi, tok)
		} else {
			e.Kunyomi = append(e.Kunyomi, tok)
		}
	}
}

// finalizeEntry resolves the fields derived from the accumulated ones: the
// effective radical (classic radical overrides bushu) and the completeness
// of the Morohashi reference.
func finalizeEntry(e *Entry) {
	if e.ClassicRadical != 0 {
		e.Radical = e.ClassicRadical
	} else {
		e.Radical = e.Bushu
	}
	if m := e.Morohashi; m != nil && (m.Index == "" || m.Volume == 0) {
		e.Morohashi = nil
	}
}

// splitTokens splits a line into whitespace-separated tokens, keeping each
// braced meaning group (which may contain spaces) as a single token.
func splitTokens(line string) []string {
	var tokens []string
	for i := 0; i < len(line); {
		switch line[i] {
		case ' ', '\t':
			i++
		case '{':
			end := strings.IndexByte(line[i:], '}')
			if end < 0 {
				tokens = append(tokens, line[i:])
				i = len(line)
				continue
			}
			tokens = append(tokens, line[i:i+end+1])
			i += end + 1
		default:
			end := strings.IndexAny(line[i:], " \t")
			if end < 0 {
				tokens = append(tokens, line[i:])
				i = len(line)
				continue
			}
			tokens = append(tokens, line[i:i+end])
			i += end
		}
	}
	return tokens
}

type readingScript uint8

const (
	scriptNone readingScript = iota
	scriptHiragana
	scriptKatakana
)

// readingScriptOf classifies a token as a kana reading. A reading consists of
// kana of a single script plus the okurigana dot, the affix dash and the
// prolonged sound mark. Anything else is not a reading.
func readingScriptOf(tok string) readingScript {
	script := scriptNone
	for _, r := range tok {
		switch {
		case r == '.' || r == '-' || r == 'ー':
			// Neutral marks, valid in both scripts.
		case unicode.In(r, unicode.Hiragana):
			if script == scriptKatakana {
				return scriptNone
			}
			script = scriptHiragana
		case unicode.In(r, unicode.Katakana):
			if script == scriptHiragana {
				return scriptNone
			}
			script = scriptKatakana
		default:
			return scriptNone
		}
	}
	return script
}
