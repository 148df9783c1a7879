package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Simplici0/printquote/internal/quote"
)

type quoteViewData struct {
	baseViewData
	Quote    quote.Quote
	Sections []quote.Section
}

// buildQuote prices the current session form. It writes the error response itself and
// reports false when no quote could be built.
func (s *server) buildQuote(w http.ResponseWriter, r *http.Request) (quote.Quote, bool) {
	ctx := r.Context()

	form, err := s.store.GetForm(ctx)
	if err != nil {
		s.serverError(w, r, err)
		return quote.Quote{}, false
	}
	if err := quote.Validate(form); err != nil {
		s.failedValidation(w, r, err)
		return quote.Quote{}, false
	}

	cat, err := s.store.Catalog(ctx)
	if err != nil {
		s.serverError(w, r, err)
		return quote.Quote{}, false
	}
	prices, err := s.store.GetBlueprintPrices(ctx)
	if err != nil {
		s.serverError(w, r, err)
		return quote.Quote{}, false
	}

	q, err := quote.Build(form, cat, prices, s.newQuoteNumber(), s.now())
	if err != nil {
		if errors.Is(err, quote.ErrIncompleteJob) {
			s.failedValidation(w, r, err)
			return quote.Quote{}, false
		}
		s.serverError(w, r, err)
		return quote.Quote{}, false
	}
	return q, true
}

func (s *server) newQuoteNumber() string {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return quote.NewNumber(s.now(), s.rng)
}

func (s *server) handleQuoteView(w http.ResponseWriter, r *http.Request) {
	q, ok := s.buildQuote(w, r)
	if !ok {
		return
	}
	s.renderTemplate(w, r, http.StatusOK, "quote.html", quoteViewData{Quote: q, Sections: quote.Sections(q)})
}

func (s *server) handleQuoteText(w http.ResponseWriter, r *http.Request) {
	q, ok := s.buildQuote(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(quote.Text(q)))
}

func (s *server) handleQuotePDF(w http.ResponseWriter, r *http.Request) {
	q, ok := s.buildQuote(w, r)
	if !ok {
		return
	}
	body, err := quote.PDF(q)
	if err != nil {
		s.serverError(w, r, fmt.Errorf("generate pdf: %w", err))
		return
	}
	writeAttachment(w, "application/pdf", q.Number+".pdf", body)
}

func (s *server) handleQuoteExcel(w http.ResponseWriter, r *http.Request) {
	q, ok := s.buildQuote(w, r)
	if !ok {
		return
	}
	body, err := quote.Excel(q)
	if err != nil {
		s.serverError(w, r, fmt.Errorf("generate excel: %w", err))
		return
	}
	writeAttachment(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", q.Number+".xlsx", body)
}

func writeAttachment(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="quote-%s"`, filename))
	_, _ = w.Write(body)
}
