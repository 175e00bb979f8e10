package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cardex/internal/domain"
	"github.com/kailas-cloud/cardex/internal/domain/search/feerange"
	"github.com/kailas-cloud/cardex/internal/domain/search/mode"
	"github.com/kailas-cloud/cardex/internal/domain/search/request"
	"github.com/kailas-cloud/cardex/internal/domain/search/result"
	"github.com/kailas-cloud/cardex/internal/logger"
	"github.com/kailas-cloud/cardex/internal/transport/api"
	cataloguc "github.com/kailas-cloud/cardex/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/cardex/internal/usecase/health"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Defaults are the browse parameters used when a request omits them.
type Defaults struct {
	PageSize    int
	MaxPageSize int
	Mode        mode.Mode
	MinFee      int
	MaxFee      int
}

// Server implements api.ServerInterface.
type Server struct {
	catalog       *cataloguc.Service
	health        *healthuc.Service
	images        ImageProber
	defaults      Defaults
	view          *template.Template
	logger        *zap.Logger
	errorHandlers []errorHandler
}

var _ api.ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server. images can be nil.
func NewServer(
	catalog *cataloguc.Service,
	health *healthuc.Service,
	images ImageProber,
	defaults Defaults,
	logger *zap.Logger,
) *Server {
	s := &Server{
		catalog:  catalog,
		health:   health,
		images:   images,
		defaults: defaults,
		view:     cardsTemplate,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		validationHandler,
	}
	return s
}

// ListCards handles GET /cards.
func (s *Server) ListCards(w http.ResponseWriter, r *http.Request, params api.ListCardsParams) {
	req, err := s.browseRequest(params)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	out, err := s.catalog.Browse(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	logger.FromContext(r.Context()).Debug("Cards browsed",
		zap.String("mode", string(out.Mode)),
		zap.Int("total", out.Page.Total()),
		zap.Bool("fallback", out.Fallback),
	)

	items := make([]api.Card, len(out.Items))
	for i := range out.Items {
		items[i] = cardToAPI(&out.Items[i])
	}

	writeJSON(w, http.StatusOK, api.CardListResponse{
		Items: items,
		Page: api.PageInfo{
			PageNum:      out.Page.Num(),
			NumPages:     out.Page.Count(),
			CardsPerPage: out.Page.PerPage(),
			Total:        out.Page.Total(),
		},
		Mode:     string(out.Mode),
		Terms:    out.Terms,
		Fallback: out.Fallback,
	})
}

// ExpandSynonyms handles GET /synonyms.
func (s *Server) ExpandSynonyms(w http.ResponseWriter, _ *http.Request, params api.ExpandSynonymsParams) {
	writeJSON(w, http.StatusOK, api.SynonymResponse{
		Term:  params.Term,
		Terms: s.catalog.Expand(params.Term),
	})
}

// ListCompanies handles GET /companies.
func (s *Server) ListCompanies(w http.ResponseWriter, _ *http.Request) {
	companies := s.catalog.Companies()
	items := make([]api.Company, len(companies))
	for i, c := range companies {
		items[i] = api.Company{Name: c.Company, Records: c.Records}
	}
	writeJSON(w, http.StatusOK, api.CompanyListResponse{Items: items})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	// degraded still serves traffic: the index falls back, the cache is optional
	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, api.HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// BindErrorHandler reports parameter binding failures as JSON 400s.
func BindErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusBadRequest, api.ErrorResponseCodeBadRequest, err.Error())
}

// browseRequest applies defaults to params and validates them.
// An absent company parameter selects every loaded issuer.
func (s *Server) browseRequest(params api.ListCardsParams) (request.Request, error) {
	var companies []string
	if params.Company != nil {
		companies = *params.Company
	} else {
		for _, c := range s.catalog.Companies() {
			companies = append(companies, c.Company)
		}
	}

	minFee, maxFee := s.defaults.MinFee, s.defaults.MaxFee
	if params.MinFee != nil {
		minFee = *params.MinFee
	}
	if params.MaxFee != nil {
		maxFee = *params.MaxFee
	}
	fees, err := feerange.New(minFee, maxFee)
	if err != nil {
		return request.Request{}, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}

	m := s.defaults.Mode
	if params.Mode != nil && *params.Mode != "" {
		m = mode.Mode(*params.Mode)
	}

	pageSize := s.defaults.PageSize
	if params.PageSize != nil {
		pageSize = *params.PageSize
	}
	if s.defaults.MaxPageSize > 0 && pageSize > s.defaults.MaxPageSize {
		return request.Request{}, fmt.Errorf("%w: page_size too large (max %d)",
			domain.ErrInvalidRequest, s.defaults.MaxPageSize)
	}

	pageNum := 1
	if params.Page != nil {
		pageNum = *params.Page
	}

	var query string
	if params.Q != nil {
		query = *params.Q
	}

	req, err := request.New(companies, fees, query, m, pageSize, pageNum)
	if err != nil {
		return request.Request{}, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}
	return req, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code api.ErrorResponseCode, message string) {
	writeJSON(w, status, api.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// validationHandler reports invalid browse parameters with their detail.
func validationHandler(w http.ResponseWriter, err error, _ string) bool {
	if !errors.Is(err, domain.ErrInvalidRequest) {
		return false
	}
	writeError(w, http.StatusBadRequest, api.ErrorResponseCodeValidationFailed, err.Error())
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err, err.Error()) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, api.ErrorResponseCodeInternalError, "internal error")
}

func cardToAPI(r *result.Result) api.Card {
	rec := r.Record()

	fees := make([]api.Fee, 0, len(rec.Fees))
	for _, f := range rec.Fees {
		if f.Brand == "" && f.Amount == nil {
			continue
		}
		fees = append(fees, api.Fee{Brand: f.Brand, Amount: f.Amount})
	}

	benefits := make([]api.Benefit, 0, len(rec.Benefits))
	for _, b := range rec.Benefits {
		texts := b.Texts()
		if len(texts) == 0 {
			continue
		}
		ab := api.Benefit{Title: b.Title}
		for _, d := range [...]string{b.Detail1, b.Detail2} {
			if d != "" {
				ab.Details = append(ab.Details, d)
			}
		}
		benefits = append(benefits, ab)
	}

	c := api.Card{
		ID:       rec.ID,
		Company:  rec.Company,
		Title:    rec.Title,
		Date:     rec.Date,
		URL:      rec.URL,
		ImageURL: rec.ImageURL,
		Fees:     fees,
		Benefits: benefits,
	}
	if r.Scored() {
		score := r.Score()
		c.SimilarityScore = &score
	}
	return c
}
