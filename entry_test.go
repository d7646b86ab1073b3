/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package kanjidic

import "testing"

func Test_Entry_Stroke(t *testing.T) {
	assertEqual(t, 0, (&Entry{}).Stroke())
	assertEqual(t, 11, (&Entry{Strokes: []int{11, 10}}).Stroke())
}

func Test_Entry_GradeClassification(t *testing.T) {
	tests := map[string]struct {
		grade        int
		joyo, jinmei bool
	}{
		"ungraded":          {0, false, false},
		"first school year": {1, true, false},
		"joyo supplement":   {8, true, false},
		"jinmeiyo":          {9, false, true},
		"jinmeiyo variant":  {10, false, true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := &Entry{Grade: tt.grade}
			assertEqual(t, tt.joyo, e.IsJoyo())
			assertEqual(t, tt.jinmei, e.IsJinmeiyo())
		})
	}
}

func Test_Entry_String(t *testing.T) {
	e, err := ParseEntry("猫 4740 B94 S11 ビョウ ねこ {cat}")
	assertNoError(t, err)
	assertEqual(t, "猫 4740 S11 B94 ビョウ ねこ {cat}", e.String())
}
