package main

import (
	"testing"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cardex/internal/domain/card"
	"github.com/kailas-cloud/cardex/internal/domain/synonym"
	cataloguc "github.com/kailas-cloud/cardex/internal/usecase/catalog"
)

func init() {
	color.NoColor = true
}

func amount(n int) *int { return &n }

func testCatalog(t *testing.T) *cataloguc.Service {
	t.Helper()
	mk := func(company, title string, fee int, benefits ...string) card.Record {
		r := card.Record{
			ID:      card.NewID(company, "test", 0, title),
			Company: company,
			Title:   title,
			Date:    "2023.05.01",
			URL:     "https://cards.example.com/" + title,
		}
		r.Fees[0] = card.FeeTier{Brand: "국내전용", Amount: amount(fee)}
		for i, b := range benefits {
			r.Benefits[i] = card.BenefitSlot{Title: b, Detail1: b + " 상세"}
		}
		return r
	}
	records := []card.Record{
		mk("롯데카드", "LOCA", 15000, "스타벅스 할인", "버스 할인"),
		mk("롯데카드", "LIKIT", 10000, "주유 할인"),
		mk("신한카드", "Deep", 0, "지하철 할인"),
		mk("신한카드", "Mr", 30000, "편의점 할인"),
	}
	catalog, err := cataloguc.Build(records, synonym.DefaultTable(), "롯데카드", zap.NewNop())
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return catalog
}

func defaultOptions() *searchOptions {
	return &searchOptions{minFee: 0, maxFee: 100000, mode: "expand", page: 1, pageSize: 5, maxPageSize: 50}
}
