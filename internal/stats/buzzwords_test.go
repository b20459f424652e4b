package stats

import (
	"reflect"
	"testing"

	"github.com/verte-zerg/moodlog/internal/lexicon"
	"github.com/verte-zerg/moodlog/internal/model"
)

func TestExtractBuzzWordsRanksByCount(t *testing.T) {
	texts := []string{
		"Work deadline again, the project deadline moved.",
		"Project review with the team; deadline looming.",
	}
	got := ExtractBuzzWords(texts, 3, lexicon.Default())
	want := []model.BuzzWord{
		{Word: "deadline", Count: 3},
		{Word: "project", Count: 2},
		{Word: "work", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected buzzwords: %+v", got)
	}
}

func TestExtractBuzzWordsTiesKeepFirstSeen(t *testing.T) {
	got := ExtractBuzzWords([]string{"garden coffee garden coffee music"}, 0, nil)
	want := []model.BuzzWord{
		{Word: "garden", Count: 2},
		{Word: "coffee", Count: 2},
		{Word: "music", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected buzzwords: %+v", got)
	}
}

func TestExtractBuzzWordsFiltersNoise(t *testing.T) {
	got := ExtractBuzzWords([]string{"I am at the gym, 2024 and my mom's mom is ok"}, 10, lexicon.Default())
	for _, bw := range got {
		switch bw.Word {
		case "the", "and", "am", "at", "ok", "2024", "mom's":
			t.Fatalf("unexpected word %q in %+v", bw.Word, got)
		}
	}
	if len(got) != 2 || got[0].Word != "mom" || got[0].Count != 2 || got[1].Word != "gym" {
		t.Fatalf("unexpected buzzwords: %+v", got)
	}
}

func TestExtractBuzzWordsEmpty(t *testing.T) {
	got := ExtractBuzzWords(nil, 5, lexicon.Default())
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestExtractBuzzWordsOrderOfTextsOnlyAffectsTies(t *testing.T) {
	a := ExtractBuzzWords([]string{"rain rain rain", "walk walk"}, 2, nil)
	b := ExtractBuzzWords([]string{"walk walk", "rain rain rain"}, 2, nil)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("counts should not depend on text order: %+v vs %+v", a, b)
	}
}
