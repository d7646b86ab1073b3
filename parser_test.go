/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package kanjidic

import (
	"errors"
	"testing"
)

const (
	nekoLine = "猫 4740 U732b B94 G8 S11 F1702 J2 N2893 V3589 H489 DK360 L244 E1565 IN1470 DF657 DJ962 " +
		"P1-3-8 I3g8.5 Q4526.0 DR2940 ZPP1-4-7 Ymao1 Wmyo ビョウ ねこ {cat}"
	komuLine = "込 3A9E U8fbc B162 G8 S5 F675 J2 P3-3-2 I2q2.3 ZRP3-4-2 -こ.む こ.める {crowded} {mixture} {included} {(kokuji)}"
	uoLine   = "魚 357B U9b5a B195 G2 S11 F1005 J3 ギョ うお さかな T1 お と な T2 うおへん {fish}"
)

func Test_ParseEntry_NotDataLine(t *testing.T) {
	tests := map[string]string{
		"empty line":            "",
		"whitespace only":       "   \t ",
		"version banner":        "# KANJIDIC Version 2006-02-15 Copyright J.W. Breen",
		"comment":               "#? this is not a record",
		"single token":          "猫",
		"latin first token":     "A 3021 B7 S7",
		"katakana first token":  "ネ 3721 B94 S11",
		"multi-rune first word": "猫猫 4740 B94",
	}

	for name, line := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseEntry(line)
			assertErrorIs(t, err, ErrNotDataLine)
		})
	}
}

func Test_ParseEntry(t *testing.T) {
	got, err := ParseEntry(nekoLine)
	assertNoError(t, err)

	want := &Entry{
		Kanji:               "猫",
		JIS:                 "4740",
		Unicode:             "732b",
		Bushu:               94,
		Radical:             94,
		Grade:               8,
		Frequency:           1702,
		JLPT:                2,
		Strokes:             []int{11},
		Halpern:             "489",
		Nelson:              "2893",
		NewNelson:           "3589",
		Henshall:            "1565",
		Heisig:              "244",
		SpahnHadamitzky:     "3g8.5",
		SpahnHadamitzkyKana: "1470",
		Dictionaries:        map[string]string{"DK": "360", "DF": "657", "DJ": "962", "DR": "2940"},
		Skip:                "1-3-8",
		FourCorner:          []string{"4526.0"},
		Korean:              []string{"myo"},
		Pinyin:              []string{"mao1"},
		Misclassifications:  []string{"PP1-4-7"},
		Onyomi:              []string{"ビョウ"},
		Kunyomi:             []string{"ねこ"},
		English:             []string{"cat"},
	}
	assertEqual(t, want, got)
}

func Test_ParseEntry_Idempotent(t *testing.T) {
	first, err := ParseEntry(nekoLine)
	assertNoError(t, err)
	second, err := ParseEntry(nekoLine)
	assertNoError(t, err)
	assertEqual(t, first, second)
}

func Test_ParseEntry_Kokuji(t *testing.T) {
	got, err := ParseEntry(komuLine)
	assertNoError(t, err)

	assertEqual(t, true, got.Kokuji)
	assertEqual(t, []string{"crowded", "mixture", "included"}, got.English)
	assertEqual(t, []string{"-こ.む", "こ.める"}, got.Kunyomi)
}

func Test_ParseEntry_ReadingModes(t *testing.T) {
	got, err := ParseEntry(uoLine)
	assertNoError(t, err)

	assertEqual(t, []string{"ギョ"}, got.Onyomi)
	assertEqual(t, []string{"うお", "さかな"}, got.Kunyomi)
	assertEqual(t, []string{"お", "と", "な"}, got.Nanori)
	assertEqual(t, []string{"うおへん"}, got.RadicalNames)
	assertEqual(t, []string{"fish"}, got.English)
}

func Test_ParseEntry_MeaningWithSpaces(t *testing.T) {
	got, err := ParseEntry("亜 3021 U4e9c B7 C1 G8 S7 {Asia} {rank next} {come after}")
	assertNoError(t, err)
	assertEqual(t, []string{"Asia", "rank next", "come after"}, got.English)
}

func Test_ParseEntry_RadicalOverride(t *testing.T) {
	tests := map[string]struct {
		input       string
		wantRadical int
	}{
		"classic radical overrides bushu": {
			input:       "亜 3021 B7 C1 S7",
			wantRadical: 1,
		},
		"bushu only": {
			input:       "猫 4740 B94 S11",
			wantRadical: 94,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseEntry(tt.input)
			assertNoError(t, err)
			assertEqual(t, tt.wantRadical, got.Radical)
		})
	}
}

func Test_ParseEntry_MultiValuedOrder(t *testing.T) {
	got, err := ParseEntry("噂 3133 B30 S15 Q6604.3 Q6604.2 Q6704.3  うわさ")
	assertNoError(t, err)
	assertEqual(t, []string{"6604.3", "6604.2", "6704.3"}, got.FourCorner)

	got, err = ParseEntry("込 3A9E B162 S5 S4 S6")
	assertNoError(t, err)
	assertEqual(t, []int{5, 4, 6}, got.Strokes)
	assertEqual(t, 5, got.Stroke())
}

func Test_ParseEntry_Morohashi(t *testing.T) {
	tests := map[string]struct {
		input    string
		want     *Morohashi
		wantWarn error
	}{
		"complete reference": {
			input: "亜 3021 B7 S7 MN272 MP1.0525",
			want:  &Morohashi{Volume: 1, Page: 525, Index: "272"},
		},
		"index with prime marker": {
			input: "猫 4740 B94 S11 MN20535P MP7.0700",
			want:  &Morohashi{Volume: 7, Page: 700, Index: "20535P"},
		},
		"volume/page without index": {
			input: "亜 3021 B7 S7 MP1.0525",
			want:  nil,
		},
		"index without volume/page": {
			input: "亜 3021 B7 S7 MN272",
			want:  nil,
		},
		"wrong arity": {
			input:    "亜 3021 B7 S7 MN272 MP1.0525.3",
			want:     nil,
			wantWarn: ErrMalformedMorohashi,
		},
		"non-numeric volume": {
			input:    "亜 3021 B7 S7 MN272 MPx.0525",
			want:     nil,
			wantWarn: ErrMalformedMorohashi,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var warned error
			got, err := ParseEntry(tt.input, WithWarnFunc(func(_ int, _ string, warnErr error) {
				warned = warnErr
			}))
			assertNoError(t, err)
			assertEqual(t, tt.want, got.Morohashi)
			if tt.wantWarn != nil {
				assertErrorIs(t, warned, tt.wantWarn)
			} else {
				assertNoError(t, warned)
			}
		})
	}
}

func Test_ParseEntry_UnknownToken(t *testing.T) {
	const line = "猫 4740 B94 S11 @@bogus ねこ"

	t.Run("lenient skips and reports", func(t *testing.T) {
		var warned error
		got, err := ParseEntry(line, WithWarnFunc(func(_ int, kanji string, warnErr error) {
			assertEqual(t, "猫", kanji)
			warned = warnErr
		}))
		assertNoError(t, err)
		assertEqual(t, []string{"ねこ"}, got.Kunyomi)

		var unknownErr *UnknownTokenError
		if !errors.As(warned, &unknownErr) {
			t.Fatalf("Expected UnknownTokenError, got: %v", warned)
		}
		assertEqual(t, "@@bogus", unknownErr.Token)
	})

	t.Run("strict fails", func(t *testing.T) {
		_, err := ParseEntry(line, WithStrictTokens(true))
		assertErrorContains(t, err, `unrecognized token "@@bogus"`)
	})
}

func Test_ParseEntry_TwoLetterTagPrecedence(t *testing.T) {
	got, err := ParseEntry("猫 4740 B94 S11 IN1470 I3g8.5 DO666 O217")
	assertNoError(t, err)

	assertEqual(t, "1470", got.SpahnHadamitzkyKana)
	assertEqual(t, "3g8.5", got.SpahnHadamitzky)
	assertEqual(t, "666", got.Dictionaries["DO"])
	assertEqual(t, []string{"217"}, got.ONeill)
}

func Test_Parse(t *testing.T) {
	lines := []string{
		"# KANJIDIC Version 2006-02-15",
		nekoLine,
		uoLine,
		"",
	}

	d, err := Parse(lines)
	assertNoError(t, err)
	assertEqual(t, 2, len(d))
	for kanji, e := range d {
		assertEqual(t, kanji, e.Kanji)
	}
	assertEqual(t, "4740", d["猫"].JIS)
	assertEqual(t, 2, d["魚"].Grade)
}

func Test_Parse_DuplicateKanjiLastWins(t *testing.T) {
	d, err := Parse([]string{
		"猫 4740 B94 S11 {cat}",
		"猫 4740 B94 S11 {cat, revised}",
	})
	assertNoError(t, err)
	assertEqual(t, 1, len(d))
	assertEqual(t, []string{"cat, revised"}, d["猫"].English)
}

func Test_Parse_StrictParseError(t *testing.T) {
	lines := []string{
		"# banner",
		nekoLine,
		"魚 357B B195 S11 @@bogus",
	}

	_, err := Parse(lines, WithStrictTokens(true))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected ParseError, got: %v", err)
	}
	assertEqual(t, 3, parseErr.Line)
	var unknownErr *UnknownTokenError
	if !errors.As(parseErr, &unknownErr) {
		t.Fatalf("Expected wrapped UnknownTokenError, got: %v", err)
	}
	assertErrorContains(t, err, "line 3")
}

func Test_Parse_WarnLineNumbers(t *testing.T) {
	var lineNums []int
	_, err := Parse([]string{
		"# banner",
		"猫 4740 B94 S11 @@bogus",
		"魚 357B B195 S11 @@bogus",
	}, WithWarnFunc(func(line int, _ string, _ error) {
		lineNums = append(lineNums, line)
	}))
	assertNoError(t, err)
	assertEqual(t, []int{2, 3}, lineNums)
}
