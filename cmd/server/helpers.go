package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Simplici0/printquote/internal/pricing"
)

// envelope wraps every JSON response body in a named key, e.g. {"materials": [...]}.
type envelope map[string]any

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, data envelope) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

// readJSON decodes a single JSON value from the request body into dst.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case errors.As(err, &syntaxErr):
			return fmt.Errorf("body contains malformed JSON (at character %d)", syntaxErr.Offset)
		case errors.As(err, &maxErr):
			return fmt.Errorf("body must not be larger than %d bytes", maxErr.Limit)
		default:
			return fmt.Errorf("invalid JSON body: %w", err)
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}
	return nil
}

// flexFloat accepts a JSON number or numeric string. Anything else decodes as 0 so a
// malformed amount prices at zero instead of failing the request.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	*f = flexFloat(parseFloatOrZero(strings.Trim(string(data), `"`)))
	return nil
}

// flexInt is the count counterpart of flexFloat. Fractions are truncated.
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	*n = flexInt(parseIntOrZero(strings.Trim(string(data), `"`)))
	return nil
}

// parseFloatOrZero parses raw as a float, treating blank or malformed input as 0.
func parseFloatOrZero(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseIntOrZero parses a count, truncating fractions and clamping the result to
// [0, pricing.MaxCount]. Blank or malformed input is 0.
func parseIntOrZero(raw string) int {
	raw = strings.TrimSpace(raw)
	if v, err := strconv.Atoi(raw); err == nil {
		return pricing.NormalizeCount(v)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || v < 0 {
		return 0
	}
	return int(math.Min(v, pricing.MaxCount))
}

// isChecked reports whether a checkbox field was submitted.
func isChecked(form url.Values, key string) bool {
	switch strings.ToLower(strings.TrimSpace(form.Get(key))) {
	case "1", "on", "true", "yes":
		return true
	}
	return false
}

// redirectWithMessage redirects to path carrying a flash message in the query string.
func redirectWithMessage(w http.ResponseWriter, r *http.Request, path, key, message string) {
	target := path
	if message != "" {
		target += "?" + url.Values{key: {message}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
