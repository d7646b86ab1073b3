/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package kanjidic

import (
	"fmt"
	"strconv"
	"strings"
)

// assignFunc applies the value of one tagged token to the entry.
// tag is the matched tag, value the token body after the tag.
type assignFunc func(e *Entry, tag, value string) error

func strField(set func(*Entry, string)) assignFunc {
	return func(e *Entry, _, v string) error {
		set(e, v)
		return nil
	}
}

func intField(set func(*Entry, int)) assignFunc {
	return func(e *Entry, tag, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &UnknownTokenError{Token: tag + v}
		}
		set(e, n)
		return nil
	}
}

func strListField(seq func(*Entry) *[]string) assignFunc {
	return func(e *Entry, _, v string) error {
		s := seq(e)
		*s = append(*s, v)
		return nil
	}
}

func intListField(seq func(*Entry) *[]int) assignFunc {
	return func(e *Entry, tag, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &UnknownTokenError{Token: tag + v}
		}
		s := seq(e)
		*s = append(*s, n)
		return nil
	}
}

// oneLetterFields is the fixed tag table for one-letter field tags.
// Whether a tag overwrites a scalar or appends to a sequence is a fixed
// property of the tag, baked into its assign function.
var oneLetterFields = map[string]assignFunc{
	// Single-valued.
	"U": strField(func(e *Entry, v string) { e.Unicode = v }),
	"B": intField(func(e *Entry, n int) { e.Bushu = n }),
	"C": intField(func(e *Entry, n int) { e.ClassicRadical = n }),
	"G": intField(func(e *Entry, n int) { e.Grade = n }),
	"F": intField(func(e *Entry, n int) { e.Frequency = n }),
	"J": intField(func(e *Entry, n int) { e.JLPT = n }),
	"H": strField(func(e *Entry, v string) { e.Halpern = v }),
	"N": strField(func(e *Entry, v string) { e.Nelson = v }),
	"V": strField(func(e *Entry, v string) { e.NewNelson = v }),
	"E": strField(func(e *Entry, v string) { e.Henshall = v }),
	"K": strField(func(e *Entry, v string) { e.Gakken = v }),
	"L": strField(func(e *Entry, v string) { e.Heisig = v }),
	"I": strField(func(e *Entry, v string) { e.SpahnHadamitzky = v }),
	"P": strField(func(e *Entry, v string) { e.Skip = v }),

	// Multi-valued, file order preserved.
	"S": intListField(func(e *Entry) *[]int { return &e.Strokes }),
	"O": strListField(func(e *Entry) *[]string { return &e.ONeill }),
	"Q": strListField(func(e *Entry) *[]string { return &e.FourCorner }),
	"W": strListField(func(e *Entry) *[]string { return &e.Korean }),
	"Y": strListField(func(e *Entry) *[]string { return &e.Pinyin }),
	"X": strListField(func(e *Entry) *[]string { return &e.CrossReferences }),
	"Z": strListField(func(e *Entry) *[]string { return &e.Misclassifications }),
}

// twoLetterFields is the fixed tag table for two-letter field tags. It is
// consulted before oneLetterFields so that "IN" is never read as an "I"
// field, "MN" as an "M" field and so on.
var twoLetterFields = map[string]assignFunc{
	"IN": strField(func(e *Entry, v string) { e.SpahnHadamitzkyKana = v }),
	"MN": assignMorohashiIndex,
	"MP": assignMorohashiVolumePage,
}

// dictionaryCodes are the per-book index codes stored in Entry.Dictionaries.
var dictionaryCodes = []string{
	"DB", "DC", "DF", "DG", "DH", "DJ", "DK", "DL",
	"DM", "DN", "DO", "DP", "DR", "DS", "DT",
}

func init() {
	for _, code := range dictionaryCodes {
		twoLetterFields[code] = assignDictionaryCode
	}
}

func assignDictionaryCode(e *Entry, tag, v string) error {
	if e.Dictionaries == nil {
		e.Dictionaries = make(map[string]string)
	}
	e.Dictionaries[tag] = v
	return nil
}

func assignMorohashiIndex(e *Entry, _, v string) error {
	if e.Morohashi == nil {
		e.Morohashi = &Morohashi{}
	}
	e.Morohashi.Index = v
	return nil
}

// assignMorohashiVolumePage decomposes the "volume.page" composite value.
// Wrong arity or non-numeric parts leave the field unset and report
// ErrMalformedMorohashi; the rest of the line still parses.
func assignMorohashiVolumePage(e *Entry, tag, v string) error {
	parts := strings.Split(v, ".")
	if len(parts) != 2 {
		return fmt.Errorf("%w: %q", ErrMalformedMorohashi, tag+v)
	}
	volume, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("%w: %q", ErrMalformedMorohashi, tag+v)
	}
	page, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("%w: %q", ErrMalformedMorohashi, tag+v)
	}
	if e.Morohashi == nil {
		e.Morohashi = &Morohashi{}
	}
	e.Morohashi.Volume = volume
	e.Morohashi.Page = page
	return nil
}

// classifyToken matches a tagged token against the field tables and applies
// its value to the entry. Longer tags are matched first to avoid ambiguity.
func classifyToken(e *Entry, tok string) error {
	if len(tok) > 2 {
		if assign, ok := twoLetterFields[tok[:2]]; ok {
			return assign(e, tok[:2], tok[2:])
		}
	}
	if len(tok) > 1 {
		if assign, ok := oneLetterFields[tok[:1]]; ok {
			return assign(e, tok[:1], tok[1:])
		}
	}
	return &UnknownTokenError{Token: tok}
}
