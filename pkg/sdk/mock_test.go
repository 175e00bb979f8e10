package cardex

import (
	"context"

	"github.com/kailas-cloud/cardex/internal/domain/search/request"
	cataloguc "github.com/kailas-cloud/cardex/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/cardex/internal/usecase/health"
)

// --- catalogUseCase mock ---

type mockCatalog struct {
	browseFn    func(ctx context.Context, req *request.Request) (cataloguc.Output, error)
	expandFn    func(term string) []string
	companiesFn func() []cataloguc.CompanyCount
}

func (m *mockCatalog) Browse(ctx context.Context, req *request.Request) (cataloguc.Output, error) {
	return m.browseFn(ctx, req)
}

func (m *mockCatalog) Expand(term string) []string {
	return m.expandFn(term)
}

func (m *mockCatalog) Companies() []cataloguc.CompanyCount {
	if m.companiesFn == nil {
		return []cataloguc.CompanyCount{{Company: "롯데카드", Records: 2}, {Company: "신한카드", Records: 1}}
	}
	return m.companiesFn()
}

// --- healthUseCase mock ---

type mockHealth struct {
	report healthuc.Report
}

func (m *mockHealth) Check(context.Context) healthuc.Report { return m.report }
