package chi

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cardex/internal/display"
	"github.com/kailas-cloud/cardex/internal/imagesize"
	"github.com/kailas-cloud/cardex/internal/logger"
	"github.com/kailas-cloud/cardex/internal/transport/api"
	cataloguc "github.com/kailas-cloud/cardex/internal/usecase/catalog"
)

//go:embed templates/*.html
var templateFS embed.FS

var cardsTemplate = template.Must(template.New("cards.html").Funcs(template.FuncMap{
	"score": func(s *float64) string { return strconv.FormatFloat(*s, 'f', 3, 64) },
}).ParseFS(templateFS, "templates/cards.html"))

// ImageProber resolves the pixel size of a card image.
type ImageProber interface {
	Probe(ctx context.Context, url string) (imagesize.Size, error)
}

type viewData struct {
	Cards    []display.Card
	Query    string
	Mode     string
	Terms    []string
	Fallback bool
	PageNum  int
	NumPages int
	Total    int
	PrevURL  string
	NextURL  string
}

// ViewCards handles GET /cards/view with a server-rendered card list.
func (s *Server) ViewCards(w http.ResponseWriter, r *http.Request, params api.ListCardsParams) {
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

	data := viewData{
		Cards:    s.viewCards(r.Context(), out),
		Query:    req.Query(),
		Mode:     string(out.Mode),
		Terms:    out.Terms,
		Fallback: out.Fallback,
		PageNum:  out.Page.Num(),
		NumPages: out.Page.Count(),
		Total:    out.Page.Total(),
	}
	if out.Page.HasPrev() {
		data.PrevURL = pageURL(r.URL, out.Page.Num()-1)
	}
	if out.Page.HasNext() {
		data.NextURL = pageURL(r.URL, out.Page.Num()+1)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.view.Execute(w, data); err != nil {
		s.logger.Error("Failed to render cards", zap.Error(err))
	}
}

func (s *Server) viewCards(ctx context.Context, out cataloguc.Output) []display.Card {
	log := logger.FromContext(ctx)
	cards := make([]display.Card, len(out.Items))
	for i := range out.Items {
		c := display.FromResult(&out.Items[i])
		if s.images != nil && c.ImageURL != "" {
			size, err := s.images.Probe(ctx, c.ImageURL)
			if err != nil {
				log.Debug("Image size unknown", zap.String("url", c.ImageURL), zap.Error(err))
			}
			c.ImageWidth = size.DisplayWidth()
		}
		cards[i] = c
	}
	return cards
}

func pageURL(u *url.URL, page int) string {
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	next := *u
	next.RawQuery = q.Encode()
	return next.RequestURI()
}
