package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /cards)
	ListCards(w http.ResponseWriter, r *http.Request, params ListCardsParams)
	// (GET /cards/view)
	ViewCards(w http.ResponseWriter, r *http.Request, params ListCardsParams)
	// (GET /synonyms)
	ExpandSynonyms(w http.ResponseWriter, r *http.Request, params ExpandSynonymsParams)
	// (GET /companies)
	ListCompanies(w http.ResponseWriter, r *http.Request)
	// (GET /health)
	HealthCheck(w http.ResponseWriter, r *http.Request)
	// (GET /metrics)
	Metrics(w http.ResponseWriter, r *http.Request)
}

// InvalidParamFormatError reports a query parameter that failed to bind.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error { return e.Err }

// RequiredParamError reports a missing required query parameter.
type RequiredParamError struct {
	ParamName string
}

func (e *RequiredParamError) Error() string {
	return fmt.Sprintf("Query argument %s is required, but not found", e.ParamName)
}

// ChiServerOptions configures the router binding.
type ChiServerOptions struct {
	BaseRouter       chi.Router
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// ServerInterfaceWrapper binds request parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler          ServerInterface
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

func (siw *ServerInterfaceWrapper) bindCardsParams(r *http.Request) (ListCardsParams, error) {
	var params ListCardsParams
	q := r.URL.Query()

	bind := []struct {
		name string
		dest any
	}{
		{"company", &params.Company},
		{"min_fee", &params.MinFee},
		{"max_fee", &params.MaxFee},
		{"q", &params.Q},
		{"mode", &params.Mode},
		{"page", &params.Page},
		{"page_size", &params.PageSize},
	}
	for _, b := range bind {
		if err := runtime.BindQueryParameter("form", true, false, b.name, q, b.dest); err != nil {
			return params, &InvalidParamFormatError{ParamName: b.name, Err: err}
		}
	}
	return params, nil
}

// ListCards operation middleware.
func (siw *ServerInterfaceWrapper) ListCards(w http.ResponseWriter, r *http.Request) {
	params, err := siw.bindCardsParams(r)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}
	siw.Handler.ListCards(w, r, params)
}

// ViewCards operation middleware.
func (siw *ServerInterfaceWrapper) ViewCards(w http.ResponseWriter, r *http.Request) {
	params, err := siw.bindCardsParams(r)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}
	siw.Handler.ViewCards(w, r, params)
}

// ExpandSynonyms operation middleware.
func (siw *ServerInterfaceWrapper) ExpandSynonyms(w http.ResponseWriter, r *http.Request) {
	var params ExpandSynonymsParams

	if paramValue := r.URL.Query().Get("term"); paramValue == "" {
		siw.ErrorHandlerFunc(w, r, &RequiredParamError{ParamName: "term"})
		return
	}
	if err := runtime.BindQueryParameter("form", true, true, "term", r.URL.Query(), &params.Term); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "term", Err: err})
		return
	}
	siw.Handler.ExpandSynonyms(w, r, params)
}

// ListCompanies operation middleware.
func (siw *ServerInterfaceWrapper) ListCompanies(w http.ResponseWriter, r *http.Request) {
	siw.Handler.ListCompanies(w, r)
}

// HealthCheck operation middleware.
func (siw *ServerInterfaceWrapper) HealthCheck(w http.ResponseWriter, r *http.Request) {
	siw.Handler.HealthCheck(w, r)
}

// Metrics operation middleware.
func (siw *ServerInterfaceWrapper) Metrics(w http.ResponseWriter, r *http.Request) {
	siw.Handler.Metrics(w, r)
}

// Handler creates an http.Handler with routing matching the API.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

// HandlerWithOptions creates an http.Handler with additional options.
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter
	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, _ *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}
	wrapper := ServerInterfaceWrapper{
		Handler:          si,
		ErrorHandlerFunc: options.ErrorHandlerFunc,
	}

	r.Get("/cards", wrapper.ListCards)
	r.Get("/cards/view", wrapper.ViewCards)
	r.Get("/synonyms", wrapper.ExpandSynonyms)
	r.Get("/companies", wrapper.ListCompanies)
	r.Get("/health", wrapper.HealthCheck)
	r.Get("/metrics", wrapper.Metrics)

	return r
}
