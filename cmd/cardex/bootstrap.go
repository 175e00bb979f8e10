package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cardex/internal/config"
	"github.com/kailas-cloud/cardex/internal/dataset"
	"github.com/kailas-cloud/cardex/internal/domain/card/fee"
	"github.com/kailas-cloud/cardex/internal/domain/synonym"
	"github.com/kailas-cloud/cardex/internal/metrics"
	cataloguc "github.com/kailas-cloud/cardex/internal/usecase/catalog"
)

// loadCatalog reads every configured dataset and builds the catalog service.
func loadCatalog(cfg config.Config, logger *zap.Logger) (*cataloguc.Service, error) {
	sources := make([]dataset.Source, len(cfg.Datasets))
	for i, d := range cfg.Datasets {
		format, err := fee.ParseFormat(d.FeeFormat)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", d.Company, err)
		}
		sources[i] = dataset.Source{Company: d.Company, Path: d.Path, FeeFormat: format}
	}

	records, err := dataset.NewLoader(logger, metrics.FeeParseErrorsTotal).Load(sources)
	if err != nil {
		return nil, fmt.Errorf("load datasets: %w", err)
	}

	svc, err := cataloguc.Build(records, synonym.DefaultTable(), cfg.Search.CorpusCompany, logger)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return svc, nil
}
