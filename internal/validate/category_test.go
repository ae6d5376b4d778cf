package validate

import (
	"testing"

	"github.com/tmiller/ttscheck/internal/errors"
)

func TestCategoriesOrder(t *testing.T) {
	want := []Category{
		CategoryRuntime, CategoryDependencies, CategoryResources,
		CategoryAccelerator, CategoryStructure, CategoryConfig,
		CategoryDeployment, CategoryNetwork, CategoryApplication,
		CategoryAudio,
	}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("Categories() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseCategoryRoundTrip(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		if err != nil {
			t.Errorf("ParseCategory(%q): %v", c.String(), err)
			continue
		}
		if got != c {
			t.Errorf("ParseCategory(%q) = %v, want %v", c.String(), got, c)
		}
	}
}

func TestParseCategoryUnknown(t *testing.T) {
	for _, name := range []string{"", "bogus", "Python", "NETWORK"} {
		_, err := ParseCategory(name)
		if err == nil {
			t.Errorf("ParseCategory(%q): expected error", name)
			continue
		}
		if !errors.Is(err, errors.ErrUnknownCategory) {
			t.Errorf("ParseCategory(%q): error %v is not ErrUnknownCategory", name, err)
		}
	}
}

func TestCategoryDisplayNames(t *testing.T) {
	for _, c := range Categories() {
		if c.Title() == "Unknown" {
			t.Errorf("%v has no title", c)
		}
		if c.Section() == "UNKNOWN" {
			t.Errorf("%v has no section banner", c)
		}
	}
	if Category(99).Title() != "Unknown" {
		t.Error("out-of-range category should report Unknown")
	}
}
