package display

import (
	"reflect"
	"testing"

	"github.com/kailas-cloud/cardex/internal/domain/card"
	"github.com/kailas-cloud/cardex/internal/domain/search/result"
)

func amount(n int) *int { return &n }

func TestWon(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0 원"},
		{700, "700 원"},
		{15000, "15,000 원"},
		{1000000, "1,000,000 원"},
	}
	for _, tt := range tests {
		if got := Won(tt.in); got != tt.want {
			t.Errorf("Won(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFromResult(t *testing.T) {
	rec := &card.Record{
		Company: "롯데카드",
		Title:   "LOCA 365",
		Fees: [card.FeeTiers]card.FeeTier{
			{Brand: "국내전용", Amount: amount(15000)},
			{Brand: "VISA"},
			{Amount: amount(17000)},
		},
		Benefits: [card.BenefitSlots]card.BenefitSlot{
			{Title: "커피 할인", Detail1: "스타벅스 50%"},
			{Detail1: "제목 없는 혜택"},
			{Title: "교통", Detail2: "월 1만원"},
		},
	}

	got := FromResult(ptr(result.NewScored(rec, 0.5)))
	if !reflect.DeepEqual(got.Fees, []string{"국내전용 : 15,000 원"}) {
		t.Errorf("fees = %v", got.Fees)
	}
	wantBenefits := []Benefit{
		{Title: "커피 할인", Details: []string{"스타벅스 50%"}},
		{Title: "교통", Details: []string{"월 1만원"}},
	}
	if !reflect.DeepEqual(got.Benefits, wantBenefits) {
		t.Errorf("benefits = %+v", got.Benefits)
	}
	if got.Score == nil || *got.Score != 0.5 {
		t.Errorf("score = %v", got.Score)
	}

	plain := FromResult(ptr(result.New(rec)))
	if plain.Score != nil {
		t.Error("unscored result must not carry a score")
	}
}

func ptr(r result.Result) *result.Result { return &r }
