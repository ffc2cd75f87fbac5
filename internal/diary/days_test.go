package diary

import (
	"reflect"
	"testing"
)

func mustExtractor(t *testing.T) *DayExtractor {
	t.Helper()
	e, err := NewDayExtractor(DefaultDatePattern)
	if err != nil {
		t.Fatalf("NewDayExtractor: %v", err)
	}
	return e
}

func TestDayExtractorDatesInOrder(t *testing.T) {
	e := mustExtractor(t)
	text := "20240102\napple\n20240101\ntoast\n20240102\nsoup\n"

	got := e.Dates(text)
	want := []DateToken{"20240102", "20240101", "20240102"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Dates() = %#v, want %#v", got, want)
	}
}

func TestDayExtractorIgnoresEmbeddedDigits(t *testing.T) {
	e := mustExtractor(t)
	text := "20240101\n200 g rice 20240102\n123456789\n2024010\n"

	got := e.Dates(text)
	if !reflect.DeepEqual(got, []DateToken{"20240101"}) {
		t.Fatalf("Dates() = %#v, want only the date line", got)
	}
}

func TestDayExtractorBlocksMatchDates(t *testing.T) {
	e := mustExtractor(t)
	text := "my log\n20240101\napple\n.\ntoast\n20240102\n20240103\nsoup"

	blocks := e.Blocks(text)
	want := []string{"\napple\n.\ntoast\n", "\n", "\nsoup"}
	if !reflect.DeepEqual(blocks, want) {
		t.Fatalf("Blocks() = %#v, want %#v", blocks, want)
	}
	if len(blocks) != len(e.Dates(text)) {
		t.Fatalf("Blocks() length %d differs from Dates() length %d", len(blocks), len(e.Dates(text)))
	}
}

func TestDayExtractorWithoutDates(t *testing.T) {
	e := mustExtractor(t)
	if got := e.Dates("apple\ntoast"); len(got) != 0 {
		t.Fatalf("Dates() = %#v, want empty", got)
	}
	if got := e.Blocks("apple\ntoast"); got != nil {
		t.Fatalf("Blocks() = %#v, want nil", got)
	}
}
