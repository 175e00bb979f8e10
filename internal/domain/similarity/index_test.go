package similarity

import (
	"errors"
	"math"
	"testing"

	"github.com/kailas-cloud/cardex/internal/domain"
	"github.com/kailas-cloud/cardex/internal/domain/card"
)

func recordWith(id string, titles ...string) *card.Record {
	r := &card.Record{ID: id}
	for i, title := range titles {
		r.Benefits[i].Title = title
	}
	return r
}

func mustBuild(t *testing.T, corpus []string) *Index {
	t.Helper()
	idx, err := Build(corpus)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return idx
}

func TestBuild_EmptyCorpus(t *testing.T) {
	for _, corpus := range [][]string{nil, {}, {""}} {
		_, err := Build(corpus)
		if !errors.Is(err, domain.ErrEmptyCorpus) {
			t.Errorf("Build(%q) err = %v, want ErrEmptyCorpus", corpus, err)
		}
	}
}

func TestBuild_NoTerms(t *testing.T) {
	// single-rune tokens are dropped, leaving no vocabulary
	_, err := Build([]string{"a b", "% !"})
	if !errors.Is(err, domain.ErrEmptyCorpus) {
		t.Errorf("err = %v, want ErrEmptyCorpus", err)
	}
}

func TestBuild_DeduplicatesPhrases(t *testing.T) {
	idx := mustBuild(t, []string{"스타벅스 할인", "스타벅스 할인", "주유 할인"})
	if idx.Size() != 2 {
		t.Errorf("Size() = %d, want 2", idx.Size())
	}
	if idx.Terms() != 3 {
		t.Errorf("Terms() = %d, want 3", idx.Terms())
	}
}

func TestScore_SharedTerm(t *testing.T) {
	idx := mustBuild(t, []string{"스타벅스 할인", "주유 리터당 60원 할인"})

	coffee := recordWith("a", "스타벅스 할인")
	if s := idx.Score(coffee, "스타벅스"); s <= 0 {
		t.Errorf("Score() = %f, want > 0", s)
	}
}

func TestScore_DisjointVocabulary(t *testing.T) {
	idx := mustBuild(t, []string{"스타벅스 할인", "주유 리터당 60원 할인"})

	fuel := recordWith("b", "주유 리터당 60원 할인")
	if s := idx.Score(fuel, "스타벅스"); s != 0 {
		t.Errorf("Score() = %f, want 0", s)
	}
}

func TestScore_IdenticalTextIsOne(t *testing.T) {
	idx := mustBuild(t, []string{"영화 예매 할인", "편의점 적립"})

	rec := recordWith("a", "영화 예매 할인")
	s := idx.Score(rec, "영화 예매 할인")
	if math.Abs(s-1) > 1e-9 {
		t.Errorf("Score() = %f, want 1", s)
	}
}

func TestScore_MaxOverPhrases(t *testing.T) {
	idx := mustBuild(t, []string{"해외 결제 수수료", "스타벅스", "스타벅스 사이렌오더 할인"})

	rec := recordWith("a", "해외 결제 수수료", "스타벅스 사이렌오더 할인", "스타벅스")
	if s := idx.Score(rec, "스타벅스"); math.Abs(s-1) > 1e-9 {
		t.Errorf("Score() = %f, want best phrase score 1", s)
	}
}

func TestScore_IgnoresTextOutsideCorpus(t *testing.T) {
	idx := mustBuild(t, []string{"스타벅스 할인", "주유 할인"})

	// shares every term with the corpus but is not itself a corpus phrase
	outside := recordWith("a", "할인 스타벅스 주유")
	if s := idx.Score(outside, "스타벅스"); s != 0 {
		t.Errorf("Score() = %f, want 0 for text outside the corpus", s)
	}

	mixed := recordWith("b", "할인 스타벅스 주유", "주유 할인")
	if s := idx.Score(mixed, "주유 할인"); math.Abs(s-1) > 1e-9 {
		t.Errorf("Score() = %f, want 1 from the corpus phrase", s)
	}
	if got := idx.Rank([]*card.Record{outside, mixed}, "스타벅스"); len(got) != 0 {
		t.Errorf("Rank() = %d results, want none", len(got))
	}
}

func TestScore_EmptyQuery(t *testing.T) {
	idx := mustBuild(t, []string{"스타벅스 할인"})
	if s := idx.Score(recordWith("a", "스타벅스 할인"), ""); s != 0 {
		t.Errorf("Score() = %f, want 0", s)
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	idx := mustBuild(t, []string{"KTX 10% 할인"})
	if s := idx.Score(recordWith("a", "KTX 10% 할인"), "ktx"); s <= 0 {
		t.Errorf("Score() = %f, want > 0", s)
	}
}

func TestScore_RareTermOutweighsCommon(t *testing.T) {
	idx := mustBuild(t, []string{"커피 할인", "주유 할인", "통신 할인", "커피 적립"})

	rare := idx.Score(recordWith("a", "커피 적립"), "적립")
	common := idx.Score(recordWith("b", "통신 할인"), "할인")
	if rare <= common {
		t.Errorf("rare-term score %f should exceed common-term score %f", rare, common)
	}
}

func TestRank_OrdersAndExcludesZero(t *testing.T) {
	idx := mustBuild(t, []string{
		"스타벅스 할인",
		"스타벅스",
		"주유 리터당 60원 할인",
	})

	partial := recordWith("partial", "스타벅스 할인")
	exact := recordWith("exact", "스타벅스")
	fuel := recordWith("fuel", "주유 리터당 60원 할인")
	empty := recordWith("empty")

	got := idx.Rank([]*card.Record{partial, fuel, exact, empty}, "스타벅스")
	if len(got) != 2 {
		t.Fatalf("Rank() returned %d results, want 2", len(got))
	}
	if got[0].Record().ID != "exact" || got[1].Record().ID != "partial" {
		t.Errorf("order = [%s %s], want [exact partial]", got[0].Record().ID, got[1].Record().ID)
	}
	if !got[0].Scored() || got[0].Score() < got[1].Score() {
		t.Errorf("scores not descending: %f, %f", got[0].Score(), got[1].Score())
	}
}

func TestRank_StableTies(t *testing.T) {
	idx := mustBuild(t, []string{"스타벅스 할인", "주유 할인"})

	a := recordWith("a", "스타벅스 할인")
	b := recordWith("b", "스타벅스 할인")
	c := recordWith("c", "스타벅스 할인")

	got := idx.Rank([]*card.Record{b, a, c}, "스타벅스")
	if len(got) != 3 {
		t.Fatalf("Rank() returned %d results", len(got))
	}
	for i, want := range []string{"b", "a", "c"} {
		if got[i].Record().ID != want {
			t.Errorf("position %d = %s, want %s", i, got[i].Record().ID, want)
		}
	}
}

func TestRank_EmptyQuery(t *testing.T) {
	idx := mustBuild(t, []string{"스타벅스 할인"})
	if got := idx.Rank([]*card.Record{recordWith("a", "스타벅스 할인")}, ""); got != nil {
		t.Errorf("Rank() = %v, want nil", got)
	}
}

func TestRank_UnknownTerms(t *testing.T) {
	idx := mustBuild(t, []string{"스타벅스 할인"})
	if got := idx.Rank([]*card.Record{recordWith("a", "스타벅스 할인")}, "골프"); len(got) != 0 {
		t.Errorf("Rank() = %v, want empty", got)
	}
}

func TestRank_Idempotent(t *testing.T) {
	idx := mustBuild(t, []string{"스타벅스 할인", "스타벅스 적립", "커피 할인"})
	records := []*card.Record{
		recordWith("a", "커피 할인"),
		recordWith("b", "스타벅스 적립"),
		recordWith("c", "스타벅스 할인"),
	}

	first := idx.Rank(records, "스타벅스 할인")
	second := idx.Rank(records, "스타벅스 할인")
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Record() != second[i].Record() || first[i].Score() != second[i].Score() {
			t.Errorf("position %d differs", i)
		}
	}
}
