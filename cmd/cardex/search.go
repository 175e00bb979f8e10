package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/cardex/internal/config"
	"github.com/kailas-cloud/cardex/internal/domain/search/feerange"
	"github.com/kailas-cloud/cardex/internal/domain/search/mode"
	"github.com/kailas-cloud/cardex/internal/domain/search/request"
	logpkg "github.com/kailas-cloud/cardex/internal/logger"
	cataloguc "github.com/kailas-cloud/cardex/internal/usecase/catalog"
)

// searchOptions are the browse flags of the search command.
// A nil companies slice selects every loaded issuer.
// maxPageSize comes from configuration; zero disables the ceiling.
type searchOptions struct {
	companies   []string
	minFee      int
	maxFee      int
	mode        string
	page        int
	pageSize    int
	maxPageSize int
}

func newSearchCmd(g *globalFlags) *cobra.Command {
	opts := &searchOptions{}
	cmd := &cobra.Command{
		Use:   "search [QUERY...]",
		Short: "Filter and rank card listings from the terminal",
		Example: `  cardex search 커피
  cardex search --company 롯데카드 --max-fee 20000 --mode tfidf 주유 할인`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			applySearchDefaults(cmd, opts, cfg.Search)
			if !cmd.Flags().Changed("company") {
				opts.companies = nil
			}

			logger, err := logpkg.NewLogger("cli")
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			catalog, err := loadCatalog(cfg, logger)
			if err != nil {
				return err
			}
			return runSearch(cmd.Context(), cmd.OutOrStdout(), catalog, opts, strings.Join(args, " "))
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&opts.companies, "company", "c", nil, "issuer to include (repeatable, default all)")
	f.IntVar(&opts.minFee, "min-fee", 0, "minimum annual fee in won (default from config)")
	f.IntVar(&opts.maxFee, "max-fee", 0, "maximum annual fee in won (default from config)")
	f.StringVarP(&opts.mode, "mode", "m", "", "query mode: expand or tfidf (default from config)")
	f.IntVarP(&opts.page, "page", "p", 1, "page number")
	f.IntVar(&opts.pageSize, "page-size", 0, "cards per page (default from config)")
	return cmd
}

// applySearchDefaults fills flags the user did not set from configuration.
func applySearchDefaults(cmd *cobra.Command, opts *searchOptions, sc config.SearchConfig) {
	flags := cmd.Flags()
	if !flags.Changed("min-fee") {
		opts.minFee = sc.DefaultMinFee
	}
	if !flags.Changed("max-fee") {
		opts.maxFee = sc.DefaultMaxFee
	}
	if !flags.Changed("mode") {
		opts.mode = sc.DefaultMode
	}
	if !flags.Changed("page-size") {
		opts.pageSize = sc.DefaultPageSize
	}
	opts.maxPageSize = sc.MaxPageSize
}

func runSearch(ctx context.Context, w io.Writer, catalog *cataloguc.Service, opts *searchOptions, query string) error {
	req, err := buildSearchRequest(catalog, opts, query)
	if err != nil {
		return err
	}
	out, err := catalog.Browse(ctx, &req)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	printCards(w, out)
	return nil
}

func buildSearchRequest(catalog *cataloguc.Service, opts *searchOptions, query string) (request.Request, error) {
	companies := opts.companies
	if companies == nil {
		for _, c := range catalog.Companies() {
			companies = append(companies, c.Company)
		}
	}
	if opts.maxPageSize > 0 && opts.pageSize > opts.maxPageSize {
		return request.Request{}, fmt.Errorf("page-size too large (max %d)", opts.maxPageSize)
	}
	fees, err := feerange.New(opts.minFee, opts.maxFee)
	if err != nil {
		return request.Request{}, fmt.Errorf("fee range: %w", err)
	}
	req, err := request.New(companies, fees, query, mode.Mode(opts.mode), opts.pageSize, opts.page)
	if err != nil {
		return request.Request{}, fmt.Errorf("search request: %w", err)
	}
	return req, nil
}
