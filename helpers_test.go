/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/
package kanjidic

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func assertEqual(t *testing.T, expected, actual interface{}) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("Values are not equal: expected=%v actual=%v", expected, actual)
	}
}

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func assertErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Errorf("Expected error containing %q, but got nil", substr)
		return
	}
	if !strings.Contains(fmt.Sprint(err), substr) {
		t.Errorf("Expected error containing %q, got: %q", substr, err.Error())
	}
}

func assertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if err == nil {
		t.Errorf("Expected error %q, but got nil", target)
		return
	}
	if !errors.Is(err, target) {
		t.Errorf("Expected error %q, got: %q", target, err.Error())
	}
}
