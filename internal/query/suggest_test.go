package query

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSuggest(t *testing.T) {
	presets := defaultPresets(t)

	t.Run("empty text lists leading tags", func(t *testing.T) {
		got := Suggest(presets, "", 2)
		if diff := cmp.Diff([]string{"3k", "xml"}, got); diff != "" {
			t.Errorf("Suggest() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("typo finds tag", func(t *testing.T) {
		got := Suggest(presets, "shk", 5)
		if !slices.Contains(got, "shake") {
			t.Errorf("Suggest(shk) = %v, want containing shake", got)
		}
	})

	t.Run("limit respected", func(t *testing.T) {
		got := Suggest(presets, "e", 3)
		if len(got) > 3 {
			t.Errorf("Suggest() returned %d terms, want at most 3", len(got))
		}
	})

	t.Run("nothing resembles", func(t *testing.T) {
		got := Suggest(presets, "zzzznomatch", 3)
		if len(got) != 0 {
			t.Errorf("Suggest() = %v, want none", got)
		}
	})

	t.Run("zero limit", func(t *testing.T) {
		if got := Suggest(presets, "shake", 0); got != nil {
			t.Errorf("Suggest(n=0) = %v, want nil", got)
		}
	})
}
