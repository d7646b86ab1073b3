/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package kanjidic

import (
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Compare orders two kanji of the dictionary by stroke count, then radical,
// then JIS value, replicating print-dictionary index order. It returns a
// negative number if a sorts before b, 0 if they tie on all three keys and a
// positive number otherwise. Sorting any subset of kanji with Compare yields
// the corresponding subsequence of Ordering's result.
func Compare(d Dictionary, a, b string) int {
	ea, eb := d[a], d[b]
	if c := compareInt(entryStroke(ea), entryStroke(eb)); c != 0 {
		return c
	}
	if c := compareInt(entryRadical(ea), entryRadical(eb)); c != 0 {
		return c
	}
	return compareUint(entryJIS(ea), entryJIS(eb))
}

// Ordering returns all kanji of the dictionary in stroke/radical/JIS order
// and assigns each entry its 0-based position in that order as KanjiID.
func Ordering(d Dictionary) []string {
	kanji := sortedKanji(d)
	for i, k := range kanji {
		d[k].KanjiID = i
	}
	return kanji
}

// ByGrade returns the kanji of the given grade in stroke/radical/JIS order.
// Grades 1-8 select Joyo curriculum years, 9-10 the Jinmeiyo supplement.
func ByGrade(d Dictionary, grade int) []string {
	var kanji []string
	for _, k := range sortedKanji(d) {
		if d[k].Grade == grade {
			kanji = append(kanji, k)
		}
	}
	return kanji
}

// GradeIndex groups all graded kanji by grade, grades in ascending order and
// each group in stroke/radical/JIS order. Grades with no kanji are absent.
func GradeIndex(d Dictionary) *orderedmap.OrderedMap[int, []string] {
	idx := orderedmap.New[int, []string]()
	kanji := sortedKanji(d)
	for grade := GradeJoyoMin; grade <= GradeJinmeiyoMax; grade++ {
		var group []string
		for _, k := range kanji {
			if d[k].Grade == grade {
				group = append(group, k)
			}
		}
		if group != nil {
			idx.Set(grade, group)
		}
	}
	return idx
}

func sortedKanji(d Dictionary) []string {
	kanji := make([]string, 0, len(d))
	for k := range d {
		kanji = append(kanji, k)
	}
	sort.Slice(kanji, func(i, j int) bool {
		return Compare(d, kanji[i], kanji[j]) < 0
	})
	return kanji
}

func entryStroke(e *Entry) int {
	if e == nil {
		return 0
	}
	return e.Stroke()
}

func entryRadical(e *Entry) int {
	if e == nil {
		return 0
	}
	return e.Radical
}

func entryJIS(e *Entry) uint64 {
	if e == nil {
		return 0
	}
	return e.jisValue()
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
