package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Simplici0/printquote/internal/catalog"
	"github.com/Simplici0/printquote/internal/pricing"
	"github.com/Simplici0/printquote/internal/session"
)

type estimateRequest struct {
	Mode       string `json:"mode"`
	Dimensions struct {
		Width  flexFloat `json:"width"`
		Height flexFloat `json:"height"`
	} `json:"dimensions"`
	MaterialID string     `json:"materialId"`
	Rate       *flexFloat `json:"rate"`
	Options    struct {
		Rush            bool    `json:"rush"`
		Grommets        bool    `json:"grommets"`
		GrommetQuantity flexInt `json:"grommetQuantity"`
		Mounting        bool    `json:"mounting"`
	} `json:"options"`
	Blueprint struct {
		PagesPerSet    flexInt    `json:"pagesPerSet"`
		NumberOfSets   flexInt    `json:"numberOfSets"`
		BindingsPerSet flexInt    `json:"bindingsPerSet"`
		PagePrice      *flexFloat `json:"pagePrice"`
		BindingPrice   *flexFloat `json:"bindingPrice"`
	} `json:"blueprint"`
}

// job resolves the request into a pricing job. An explicit rate wins over materialId;
// blueprint unit prices default to the session's.
func (req estimateRequest) job(cat catalog.Catalog, prices session.Prices) pricing.Job {
	if pricing.Mode(strings.ToLower(req.Mode)) == pricing.ModeBlueprint {
		opts := pricing.BlueprintOptions{
			PagesPerSet:    int(req.Blueprint.PagesPerSet),
			NumberOfSets:   int(req.Blueprint.NumberOfSets),
			BindingsPerSet: int(req.Blueprint.BindingsPerSet),
			PagePrice:      prices.PagePrice,
			BindingPrice:   prices.BindingPrice,
		}
		if req.Blueprint.PagePrice != nil {
			opts.PagePrice = float64(*req.Blueprint.PagePrice)
		}
		if req.Blueprint.BindingPrice != nil {
			opts.BindingPrice = float64(*req.Blueprint.BindingPrice)
		}
		return pricing.Blueprint{Options: opts}
	}

	rate := cat.Rate(req.MaterialID)
	if req.Rate != nil {
		rate = float64(*req.Rate)
	}
	return pricing.Linear{
		Dimensions: pricing.Dimensions{
			Width:  float64(req.Dimensions.Width),
			Height: float64(req.Dimensions.Height),
		},
		Rate: rate,
		Options: pricing.PrintOptions{
			Rush:            req.Options.Rush,
			Grommets:        req.Options.Grommets,
			GrommetQuantity: int(req.Options.GrommetQuantity),
			Mounting:        req.Options.Mounting,
		},
	}
}

func (s *server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if err := readJSON(w, r, &req); err != nil {
		s.badRequest(w, r, err)
		return
	}

	ctx := r.Context()
	cat, err := s.store.Catalog(ctx)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	prices, err := s.store.GetBlueprintPrices(ctx)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	result := pricing.Estimate(req.job(cat, prices))
	if err := writeJSON(w, http.StatusOK, envelope{"estimate": result}); err != nil {
		s.serverError(w, r, err)
	}
}

type materialRequest struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Price flexFloat `json:"price"`
}

func (s *server) handleListMaterials(w http.ResponseWriter, r *http.Request) {
	materials, err := s.store.ListMaterials(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, envelope{"materials": materials}); err != nil {
		s.serverError(w, r, err)
	}
}

func (s *server) handleCreateMaterial(w http.ResponseWriter, r *http.Request) {
	var req materialRequest
	if err := readJSON(w, r, &req); err != nil {
		s.badRequest(w, r, err)
		return
	}

	ctx := r.Context()
	m := catalog.Material{
		ID:    strings.TrimSpace(req.ID),
		Name:  strings.TrimSpace(req.Name),
		Price: float64(req.Price),
	}
	if m.ID == "" {
		m.ID = catalog.NewID(m.Name)
	}

	cat, err := s.store.Catalog(ctx)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if _, exists := cat.Find(m.ID); exists {
		s.errorResponse(w, r, http.StatusConflict, fmt.Sprintf("material %q already exists", m.ID))
		return
	}

	if err := s.store.SaveMaterial(ctx, m); err != nil {
		if errors.Is(err, catalog.ErrInvalidMaterial) {
			s.failedValidation(w, r, err)
			return
		}
		s.serverError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/materials/"+m.ID)
	if err := writeJSON(w, http.StatusCreated, envelope{"material": m}); err != nil {
		s.serverError(w, r, err)
	}
}

func (s *server) handleUpdateMaterial(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req materialRequest
	if err := readJSON(w, r, &req); err != nil {
		s.badRequest(w, r, err)
		return
	}

	ctx := r.Context()
	cat, err := s.store.Catalog(ctx)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if _, exists := cat.Find(id); !exists {
		s.notFound(w, r)
		return
	}

	m := catalog.Material{ID: id, Name: strings.TrimSpace(req.Name), Price: float64(req.Price)}
	if err := s.store.SaveMaterial(ctx, m); err != nil {
		if errors.Is(err, catalog.ErrInvalidMaterial) {
			s.failedValidation(w, r, err)
			return
		}
		s.serverError(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"material": m}); err != nil {
		s.serverError(w, r, err)
	}
}

// handleReplaceMaterials swaps the whole catalog for the request's list. Invalid and
// duplicate entries are dropped and counted in "skipped".
func (s *server) handleReplaceMaterials(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Materials []materialRequest `json:"materials"`
	}
	if err := readJSON(w, r, &req); err != nil {
		s.badRequest(w, r, err)
		return
	}

	materials := make([]catalog.Material, 0, len(req.Materials))
	for _, m := range req.Materials {
		name := strings.TrimSpace(m.Name)
		id := strings.TrimSpace(m.ID)
		if id == "" {
			id = catalog.NewID(name)
		}
		materials = append(materials, catalog.Material{ID: id, Name: name, Price: float64(m.Price)})
	}

	ctx := r.Context()
	kept, err := s.store.ReplaceMaterials(ctx, materials)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if err := s.syncMaterialSelection(ctx); err != nil {
		s.serverError(w, r, err)
		return
	}

	stored, err := s.store.ListMaterials(ctx)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, envelope{"materials": stored, "skipped": len(materials) - kept}); err != nil {
		s.serverError(w, r, err)
	}
}

func (s *server) handleDeleteMaterial(w http.ResponseWriter, r *http.Request) {
	if err := s.deleteMaterial(r, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleGetBlueprintPrices(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.GetBlueprintPrices(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, envelope{"blueprintPrices": p}); err != nil {
		s.serverError(w, r, err)
	}
}

func (s *server) handleSetBlueprintPrices(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PagePrice    flexFloat `json:"pagePrice"`
		BindingPrice flexFloat `json:"bindingPrice"`
	}
	if err := readJSON(w, r, &req); err != nil {
		s.badRequest(w, r, err)
		return
	}

	ctx := r.Context()
	p := session.Prices{PagePrice: float64(req.PagePrice), BindingPrice: float64(req.BindingPrice)}
	if err := s.store.SetBlueprintPrices(ctx, p); err != nil {
		s.serverError(w, r, err)
		return
	}

	stored, err := s.store.GetBlueprintPrices(ctx)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, envelope{"blueprintPrices": stored}); err != nil {
		s.serverError(w, r, err)
	}
}
