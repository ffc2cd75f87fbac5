package diary

import (
	"errors"
	"reflect"
	"testing"
)

func mustStructurer(t *testing.T, cfg Config) *Structurer {
	t.Helper()
	s, err := NewStructurer(cfg, mustNormalizer(t, cfg.Rules))
	if err != nil {
		t.Fatalf("NewStructurer: %v", err)
	}
	return s
}

func TestPairTruncatesToShorter(t *testing.T) {
	dates := []DateToken{"20240101", "20240102", "20240103"}
	blocks := []string{"a", "b"}

	pairs, err := Pair(dates, blocks, AlignTruncate)
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}
	want := []DayPair{{Date: "20240101", Block: "a"}, {Date: "20240102", Block: "b"}}
	if !reflect.DeepEqual(pairs, want) {
		t.Fatalf("Pair() = %#v, want %#v", pairs, want)
	}
}

func TestPairStrictRejectsMismatch(t *testing.T) {
	_, err := Pair([]DateToken{"20240101"}, []string{"a", "b"}, AlignStrict)
	if !errors.Is(err, ErrAlignmentMismatch) {
		t.Fatalf("Pair error = %v, want ErrAlignmentMismatch", err)
	}

	pairs, err := Pair([]DateToken{"20240101"}, []string{"a"}, AlignStrict)
	if err != nil || len(pairs) != 1 {
		t.Fatalf("Pair() = %#v, %v; want one pair", pairs, err)
	}
}

func TestStructureThreeDatesTwoBlocks(t *testing.T) {
	s := mustStructurer(t, DefaultConfig())

	rec, err := s.Structure(
		[]DateToken{"20240101", "20240102", "20240103"},
		[]string{"\napple\n", "\ntoast\n"},
	)
	if err != nil {
		t.Fatalf("Structure: %v", err)
	}
	if got := rec.dates(); !reflect.DeepEqual(got, []DateToken{"20240101", "20240102"}) {
		t.Fatalf("dates() = %#v, want two populated dates", got)
	}
}

func TestStructureStrictAlignment(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Alignment = AlignStrict
	s := mustStructurer(t, cfg)

	if _, err := s.Structure([]DateToken{"20240101", "20240102"}, []string{"a"}); !errors.Is(err, ErrAlignmentMismatch) {
		t.Fatalf("Structure error = %v, want ErrAlignmentMismatch", err)
	}
}

func TestStructureAssignsMealIndicesPerDay(t *testing.T) {
	s := mustStructurer(t, DefaultConfig())

	rec, err := s.Structure(
		[]DateToken{"20240101", "20240102"},
		[]string{"\noatmeal\n.\nl coffee\n.\nsoup\n", "\ntoast\n.\nmed apple\n"},
	)
	if err != nil {
		t.Fatalf("Structure: %v", err)
	}

	first, ok := rec.lookup("20240101")
	if !ok {
		t.Fatal("20240101 missing from record")
	}
	wantFirst := []Meal{
		{Index: 1, Items: []string{"oatmeal"}},
		{Index: 2, Items: []string{"large coffee"}},
		{Index: 3, Items: []string{"soup"}},
	}
	if !reflect.DeepEqual(first.Meals, wantFirst) {
		t.Fatalf("first day meals = %#v, want %#v", first.Meals, wantFirst)
	}

	second, _ := rec.lookup("20240102")
	wantSecond := []Meal{
		{Index: 1, Items: []string{"toast"}},
		{Index: 2, Items: []string{"medium apple"}},
	}
	if !reflect.DeepEqual(second.Meals, wantSecond) {
		t.Fatalf("second day meals = %#v, want %#v", second.Meals, wantSecond)
	}
}

func TestStructureEmptyDayBlock(t *testing.T) {
	s := mustStructurer(t, DefaultConfig())

	rec, err := s.Structure([]DateToken{"20240101", "20240102"}, []string{"\n", "\napple"})
	if err != nil {
		t.Fatalf("Structure: %v", err)
	}
	day, ok := rec.lookup("20240101")
	if !ok {
		t.Fatal("empty day should still be recorded")
	}
	if len(day.Meals) != 0 {
		t.Fatalf("empty day meals = %#v, want none", day.Meals)
	}
	if rec.ItemCount() != 1 {
		t.Fatalf("ItemCount() = %d, want 1", rec.ItemCount())
	}
}

func TestStructureBlankSectionKeepsMealNumber(t *testing.T) {
	s := mustStructurer(t, DefaultConfig())

	rec, err := s.Structure([]DateToken{"20240101"}, []string{"\na\n.\n  \n.\nb\n"})
	if err != nil {
		t.Fatalf("Structure: %v", err)
	}
	want := []Meal{
		{Index: 1, Items: []string{"a"}},
		{Index: 2, Items: []string{}},
		{Index: 3, Items: []string{"b"}},
	}
	if !reflect.DeepEqual(rec.Days[0].Meals, want) {
		t.Fatalf("meals = %#v, want %#v", rec.Days[0].Meals, want)
	}
}

func TestStructureDuplicateDateOverwrites(t *testing.T) {
	s := mustStructurer(t, DefaultConfig())

	rec, err := s.Structure(
		[]DateToken{"20240101", "20240102", "20240101"},
		[]string{"\napple\n.\npear", "\ntoast", "\nsoup"},
	)
	if err != nil {
		t.Fatalf("Structure: %v", err)
	}
	if got := rec.dates(); !reflect.DeepEqual(got, []DateToken{"20240101", "20240102"}) {
		t.Fatalf("dates() = %#v, want first-seen order", got)
	}
	day, _ := rec.lookup("20240101")
	want := []Meal{{Index: 1, Items: []string{"soup"}}}
	if !reflect.DeepEqual(day.Meals, want) {
		t.Fatalf("duplicate day meals = %#v, want %#v", day.Meals, want)
	}
	if rec.Duplicates != 1 {
		t.Fatalf("Duplicates = %d, want 1", rec.Duplicates)
	}
}

func TestStructureSubstitutesOncePerItem(t *testing.T) {
	s := mustStructurer(t, DefaultConfig())

	rec, err := s.Structure([]DateToken{"20240101"}, []string{"\n1 g banana\n.\n1 g banana\n"})
	if err != nil {
		t.Fatalf("Structure: %v", err)
	}
	for _, meal := range rec.Days[0].Meals {
		if meal.Items[0] != "1 g banana peeled" {
			t.Fatalf("meal %d item = %q, want %q", meal.Index, meal.Items[0], "1 g banana peeled")
		}
	}
}
