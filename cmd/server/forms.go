package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Simplici0/printquote/internal/catalog"
	"github.com/Simplici0/printquote/internal/pricing"
	"github.com/Simplici0/printquote/internal/quote"
	"github.com/Simplici0/printquote/internal/session"
)

type homeViewData struct {
	baseViewData
	Form         session.Form
	Prices       session.Prices
	Materials    []catalog.Material
	Result       pricing.Result
	QuoteError   string
	MountingRate float64
	GrommetPrice float64
}

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	form, err := s.store.GetForm(ctx)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	prices, err := s.store.GetBlueprintPrices(ctx)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	cat, err := s.store.Catalog(ctx)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	data := homeViewData{
		baseViewData: baseViewData{
			ErrorMessage:   r.URL.Query().Get("error"),
			SuccessMessage: r.URL.Query().Get("success"),
		},
		Form:         form,
		Prices:       prices,
		Materials:    cat.Materials(),
		Result:       pricing.Estimate(form.Job(cat, prices)),
		MountingRate: pricing.MountingPricePerSqFt,
		GrommetPrice: pricing.GrommetPrice,
	}
	if err := quote.Validate(form); err != nil {
		data.QuoteError = err.Error()
	}

	s.renderTemplate(w, r, http.StatusOK, "home.html", data)
}

// parseSessionForm reads the estimate form. Malformed numbers become 0.
func parseSessionForm(values url.Values) (session.Form, session.Prices) {
	f := session.Form{
		Contact: session.Contact{
			Name:  strings.TrimSpace(values.Get("contact_name")),
			Phone: strings.TrimSpace(values.Get("contact_phone")),
			Email: strings.TrimSpace(values.Get("contact_email")),
		},
		Dimensions: pricing.Dimensions{
			Width:  parseFloatOrZero(values.Get("width")),
			Height: parseFloatOrZero(values.Get("height")),
		},
		MaterialID: strings.TrimSpace(values.Get("material_id")),
		Options: pricing.PrintOptions{
			Rush:            isChecked(values, "rush"),
			Grommets:        isChecked(values, "grommets"),
			GrommetQuantity: parseIntOrZero(values.Get("grommet_quantity")),
			Mounting:        isChecked(values, "mounting"),
		},
		BlueprintEnabled: isChecked(values, "blueprint_enabled"),
		PagesPerSet:      parseIntOrZero(values.Get("pages_per_set")),
		NumberOfSets:     parseIntOrZero(values.Get("number_of_sets")),
		BindingsPerSet:   parseIntOrZero(values.Get("bindings_per_set")),
	}
	p := session.Prices{
		PagePrice:    parseFloatOrZero(values.Get("page_price")),
		BindingPrice: parseFloatOrZero(values.Get("binding_price")),
	}
	return f.Normalized(), p.Normalized()
}

func (s *server) handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.badRequest(w, r, errors.New("invalid form"))
		return
	}
	ctx := r.Context()

	current, err := s.store.GetForm(ctx)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	f, p := parseSessionForm(r.PostForm)

	// The page only posts the fields of the mode it was rendered in; the other mode
	// keeps its stored values.
	if current.BlueprintEnabled {
		f.Dimensions, f.MaterialID, f.Options = current.Dimensions, current.MaterialID, current.Options
	} else {
		f.PagesPerSet, f.NumberOfSets, f.BindingsPerSet = current.PagesPerSet, current.NumberOfSets, current.BindingsPerSet
	}

	if err := s.store.SaveForm(ctx, f); err != nil {
		s.serverError(w, r, err)
		return
	}
	if r.PostForm.Has("page_price") || r.PostForm.Has("binding_price") {
		if err := s.store.SetBlueprintPrices(ctx, p); err != nil {
			s.serverError(w, r, err)
			return
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *server) handleFormReset(w http.ResponseWriter, r *http.Request) {
	if _, err := s.store.ResetForm(r.Context()); err != nil {
		s.serverError(w, r, err)
		return
	}
	redirectWithMessage(w, r, "/", "success", "Form cleared")
}

// handleFormConvert sets width and height from feet. Both values must be valid numbers.
func (s *server) handleFormConvert(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.badRequest(w, r, errors.New("invalid form"))
		return
	}

	width, okW := parseFeet(r.PostForm.Get("width_feet"))
	height, okH := parseFeet(r.PostForm.Get("height_feet"))
	if !okW || !okH {
		redirectWithMessage(w, r, "/", "error", "Enter both width and height in feet")
		return
	}

	ctx := r.Context()
	f, err := s.store.GetForm(ctx)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	f.Dimensions = pricing.Dimensions{Width: width, Height: height}
	if err := s.store.SaveForm(ctx, f); err != nil {
		s.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func parseFeet(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return pricing.FeetToInches(v)
}

// handleMaterialSubmit creates or updates a material from the HTML editor.
func (s *server) handleMaterialSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.badRequest(w, r, errors.New("invalid form"))
		return
	}

	name := strings.TrimSpace(r.PostForm.Get("name"))
	id := strings.TrimSpace(r.PostForm.Get("id"))
	if id == "" {
		id = catalog.NewID(name)
	}
	m := catalog.Material{ID: id, Name: name, Price: parseFloatOrZero(r.PostForm.Get("price"))}

	if err := s.store.SaveMaterial(r.Context(), m); err != nil {
		if errors.Is(err, catalog.ErrInvalidMaterial) {
			redirectWithMessage(w, r, "/", "error", "Material needs a name and a price greater than 0")
			return
		}
		s.serverError(w, r, err)
		return
	}
	redirectWithMessage(w, r, "/", "success", "Material saved")
}

func (s *server) handleMaterialDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.deleteMaterial(r, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			redirectWithMessage(w, r, "/", "error", "Material not found")
			return
		}
		s.serverError(w, r, err)
		return
	}
	redirectWithMessage(w, r, "/", "success", "Material deleted")
}

// handleMaterialsSaveAll applies every row of the bulk editor to the current catalog and
// stores the result in one step. Rows that fail validation leave the stored material as
// it was; a blank trailing row is ignored.
func (s *server) handleMaterialsSaveAll(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.badRequest(w, r, errors.New("invalid form"))
		return
	}
	ids, names, prices := r.PostForm["id"], r.PostForm["name"], r.PostForm["price"]
	if len(names) != len(ids) || len(prices) != len(ids) {
		s.badRequest(w, r, errors.New("every material row needs an id, name and price field"))
		return
	}

	rows := make([]catalog.Material, 0, len(ids))
	for i := range ids {
		name := strings.TrimSpace(names[i])
		if strings.TrimSpace(ids[i]) == "" && name == "" && strings.TrimSpace(prices[i]) == "" {
			continue
		}
		id := strings.TrimSpace(ids[i])
		if id == "" {
			id = catalog.NewID(name)
		}
		rows = append(rows, catalog.Material{ID: id, Name: name, Price: parseFloatOrZero(prices[i])})
	}

	ctx := r.Context()
	current, err := s.store.Catalog(ctx)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	edited, rejected := applyMaterialEdits(current, rows, r.PostForm["remove"])

	if _, err := s.store.ReplaceMaterials(ctx, edited.Materials()); err != nil {
		s.serverError(w, r, err)
		return
	}
	if err := s.syncMaterialSelection(ctx); err != nil {
		s.serverError(w, r, err)
		return
	}

	if rejected > 0 {
		redirectWithMessage(w, r, "/", "error", fmt.Sprintf("Saved materials; %d row(s) need a name and a price greater than 0", rejected))
		return
	}
	redirectWithMessage(w, r, "/", "success", "Materials saved")
}

// applyMaterialEdits upserts rows into cat and then drops the ids in remove. It returns
// the edited catalog and the number of rows rejected by validation.
func applyMaterialEdits(cat catalog.Catalog, rows []catalog.Material, remove []string) (catalog.Catalog, int) {
	rejected := 0
	for _, m := range rows {
		next, err := cat.Upsert(m)
		if err != nil {
			rejected++
			continue
		}
		cat = next
	}
	for _, id := range remove {
		if next, err := cat.Remove(strings.TrimSpace(id)); err == nil {
			cat = next
		}
	}
	return cat, rejected
}

// deleteMaterial removes id and moves the form's selection to the first remaining
// material when id was selected.
func (s *server) deleteMaterial(r *http.Request, id string) error {
	ctx := r.Context()
	if err := s.store.DeleteMaterial(ctx, id); err != nil {
		return err
	}
	return s.syncMaterialSelection(ctx)
}

// syncMaterialSelection points the form at the first material when its selection is no
// longer in the catalog.
func (s *server) syncMaterialSelection(ctx context.Context) error {
	f, err := s.store.GetForm(ctx)
	if err != nil {
		return err
	}
	cat, err := s.store.Catalog(ctx)
	if err != nil {
		return err
	}
	if _, ok := cat.Find(f.MaterialID); ok {
		return nil
	}
	first, _ := cat.First()
	if f.MaterialID == first.ID {
		return nil
	}
	f.MaterialID = first.ID
	return s.store.SaveForm(ctx, f)
}
