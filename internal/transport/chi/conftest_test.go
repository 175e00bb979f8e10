package chi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cardex/internal/domain/card"
	"github.com/kailas-cloud/cardex/internal/domain/search/mode"
	"github.com/kailas-cloud/cardex/internal/domain/synonym"
	"github.com/kailas-cloud/cardex/internal/imagesize"
	"github.com/kailas-cloud/cardex/internal/transport/api"
	cataloguc "github.com/kailas-cloud/cardex/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/cardex/internal/usecase/health"
)

type mockProber struct {
	sizes map[string]imagesize.Size
	calls int
}

func (m *mockProber) Probe(_ context.Context, url string) (imagesize.Size, error) {
	m.calls++
	if s, ok := m.sizes[url]; ok {
		return s, nil
	}
	return imagesize.Size{}, errors.New("not found")
}

func amount(n int) *int { return &n }

func testRecords() []card.Record {
	mk := func(company, title string, fee int, img string, benefits ...string) card.Record {
		r := card.Record{
			ID:       card.NewID(company, "test", 0, title),
			Company:  company,
			Title:    title,
			Date:     "2023.05.01",
			URL:      "https://cards.example.com/" + title,
			ImageURL: img,
		}
		r.Fees[0] = card.FeeTier{Brand: "국내전용", Amount: amount(fee)}
		for i, b := range benefits {
			r.Benefits[i] = card.BenefitSlot{Title: b, Detail1: b + " 상세"}
		}
		return r
	}
	return []card.Record{
		mk("롯데카드", "LOCA", 15000, "https://img.example.com/loca.png", "스타벅스 할인", "버스 할인"),
		mk("롯데카드", "LIKIT", 10000, "", "주유 할인"),
		mk("신한카드", "Deep", 0, "https://img.example.com/deep.png", "지하철 할인"),
		mk("신한카드", "Mr", 30000, "", "편의점 할인"),
	}
}

var testDefaults = Defaults{PageSize: 5, MaxPageSize: 50, Mode: mode.Expand, MinFee: 0, MaxFee: 100000}

func newTestServer(t *testing.T, images ImageProber) http.Handler {
	t.Helper()
	catalog, err := cataloguc.Build(testRecords(), synonym.DefaultTable(), "롯데카드", zap.NewNop())
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	server := NewServer(catalog, healthuc.New(catalog, nil), images, testDefaults, zap.NewNop())
	return api.HandlerWithOptions(server, api.ChiServerOptions{ErrorHandlerFunc: BindErrorHandler})
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, http.NoBody))
	return rr
}
