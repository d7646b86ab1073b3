/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package kanjidic

import (
	"strconv"
	"strings"
)

// Grade boundaries of the Japanese governmental kanji classifications.
// Grades 1-8 cover the standard Joyo curriculum (1-6 are the kyoiku school
// years, 8 is the remainder of the Joyo set), 9-10 cover the supplementary
// Jinmeiyo name-use characters.
const (
	GradeJoyoMin = 1
	GradeJoyoMax = 8

	GradeJinmeiyoMin = 9
	GradeJinmeiyoMax = 10
)

// Morohashi is a volume/page/index locator into the Daikanwajiten.
type Morohashi struct {
	Volume int    `json:"volume"`
	Page   int    `json:"page"`
	Index  string `json:"index"`
}

// Entry is the full record of a single kanji.
//
// Multi-valued fields keep the order in which their values appeared on the
// source line. A nil slice means the field was absent; the format never
// produces a present-but-empty field.
type Entry struct {
	// Kanji is the character itself, also the Dictionary key.
	Kanji string `json:"kanji"`

	// JIS is the JIS X 0208/0212 code of the character, four hex digits.
	JIS string `json:"jis"`

	// Unicode is the Unicode code point, hex.
	Unicode string `json:"unicode,omitempty"`

	// Bushu is the classification radical, ClassicRadical the classic
	// (Nelson) radical recorded only when it differs from Bushu.
	// Radical is the effective radical: ClassicRadical when present,
	// Bushu otherwise.
	Bushu          int `json:"bushu,omitempty"`
	ClassicRadical int `json:"classic_radical,omitempty"`
	Radical        int `json:"radical,omitempty"`

	Grade     int `json:"grade,omitempty"`
	Frequency int `json:"frequency,omitempty"`
	JLPT      int `json:"jlpt,omitempty"`

	// Strokes holds the stroke count followed by commonly miscounted
	// values, if any. The first value is the authoritative count.
	Strokes []int `json:"strokes,omitempty"`

	// Indices into specific print dictionaries.
	Halpern             string   `json:"halpern,omitempty"`
	Nelson              string   `json:"nelson,omitempty"`
	NewNelson           string   `json:"new_nelson,omitempty"`
	Henshall            string   `json:"henshall,omitempty"`
	Gakken              string   `json:"gakken,omitempty"`
	Heisig              string   `json:"heisig,omitempty"`
	ONeill              []string `json:"oneill,omitempty"`
	SpahnHadamitzky     string   `json:"spahn_hadamitzky,omitempty"`
	SpahnHadamitzkyKana string   `json:"spahn_hadamitzky_kana,omitempty"`

	// Dictionaries holds the two-letter "D" book codes keyed by code,
	// e.g. "DK" -> "2204".
	Dictionaries map[string]string `json:"dictionaries,omitempty"`

	// Skip is the SKIP code, FourCorner the four corner code(s).
	Skip       string   `json:"skip,omitempty"`
	FourCorner []string `json:"four_corner,omitempty"`

	// Morohashi is set only when the Daikanwajiten reference parsed
	// completely.
	Morohashi *Morohashi `json:"morohashi,omitempty"`

	// Romanized readings in other languages.
	Korean []string `json:"korean,omitempty"`
	Pinyin []string `json:"pinyin,omitempty"`

	// CrossReferences lists variant cross-references ("X" codes),
	// Misclassifications the known SKIP misclassification codes ("Z" codes).
	CrossReferences    []string `json:"cross_references,omitempty"`
	Misclassifications []string `json:"misclassifications,omitempty"`

	// Readings keep the source notation verbatim, including okurigana
	// dots and affix dashes.
	Onyomi       []string `json:"onyomi,omitempty"`
	Kunyomi      []string `json:"kunyomi,omitempty"`
	Nanori       []string `json:"nanori,omitempty"`
	RadicalNames []string `json:"radical_names,omitempty"`

	English []string `json:"english,omitempty"`

	// Kokuji reports whether the character is a kanji invented in Japan.
	Kokuji bool `json:"kokuji,omitempty"`

	// KanjiID is the 0-based position of the entry in the display order.
	// It is assigned by Ordering, not by parsing.
	KanjiID int `json:"kanji_id"`
}

// Stroke returns the authoritative stroke count, 0 if none was recorded.
func (e *Entry) Stroke() int {
	if len(e.Strokes) == 0 {
		return 0
	}
	return e.Strokes[0]
}

// IsJoyo reports whether the entry belongs to the Joyo set.
func (e *Entry) IsJoyo() bool {
	return e.Grade >= GradeJoyoMin && e.Grade <= GradeJoyoMax
}

// IsJinmeiyo reports whether the entry belongs to the Jinmeiyo-only set.
func (e *Entry) IsJinmeiyo() bool {
	return e.Grade >= GradeJinmeiyoMin && e.Grade <= GradeJinmeiyoMax
}

// jisValue returns the JIS code as its numeric value for tie-breaking.
// Codes that fail to parse sort first.
func (e *Entry) jisValue() uint64 {
	v, err := strconv.ParseUint(e.JIS, 16, 32)
	if err != nil {
		return 0
	}
	return v
}

// String returns a one-line display form of the entry.
func (e *Entry) String() string {
	var b strings.Builder
	b.WriteString(e.Kanji)
	b.WriteByte(' ')
	b.WriteString(e.JIS)
	if n := e.Stroke(); n != 0 {
		b.WriteString(" S")
		b.WriteString(strconv.Itoa(n))
	}
	if e.Radical != 0 {
		b.WriteString(" B")
		b.WriteString(strconv.Itoa(e.Radical))
	}
	for _, r := range e.Onyomi {
		b.WriteByte(' ')
		b.WriteString(r)
	}
	for _, r := range e.Kunyomi {
		b.WriteByte(' ')
		b.WriteString(r)
	}
	for _, m := range e.English {
		b.WriteString(" {")
		b.WriteString(m)
		b.WriteByte('}')
	}
	return b.String()
}

// Dictionary maps a kanji literal to its entry. It is built once per parse;
// the package never mutates it afterwards except for KanjiID assignment in
// Ordering.
type Dictionary map[string]*Entry
