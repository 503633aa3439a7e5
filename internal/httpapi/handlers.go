package httpapi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/slugkit/pkg/slug"
)

type generateRequest struct {
	Text      string `json:"text"`
	Separator string `json:"separator"`
	Fallback  string `json:"fallback"`
}

type batchRequest struct {
	Separator string   `json:"separator"`
	Texts     []string `json:"texts"`
}

type uniqueRequest struct {
	ExcludeKey any    `json:"exclude_key"`
	Key        any    `json:"key"`
	Table      string `json:"table"`
	Column     string `json:"column"`
	Text       string `json:"text"`
	Separator  string `json:"separator"`
	Claim      bool   `json:"claim"`
}

type reserveRequest struct {
	Scope string `json:"scope"`
	Text  string `json:"text"`
	Key   string `json:"key"`
}

type slugResponse struct {
	Slug string `json:"slug"`
}

type batchResponse struct {
	Slugs []string `json:"slugs"`
}

// generate normalizes one text. It never fails on content: blank input
// yields a fallback slug.
func (a *API) generate(w http.ResponseWriter, r *http.Request) error {
	var req generateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, slugResponse{
		Slug: a.normalizer.GenerateWithFallback(req.Text, req.Separator, req.Fallback),
	})
	return nil
}

// batch normalizes up to maxBatchSize texts, preserving order.
func (a *API) batch(w http.ResponseWriter, r *http.Request) error {
	var req batchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return err
	}
	if len(req.Texts) == 0 {
		return errBadRequest("texts must not be empty")
	}
	if len(req.Texts) > maxBatchSize {
		return errBadRequest(fmt.Sprintf("at most %d texts per batch", maxBatchSize))
	}

	ctx := r.Context()
	slugs := make([]string, len(req.Texts))

	var g errgroup.Group
	g.SetLimit(a.batchWorkers)
	for i, text := range req.Texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			slugs[i] = a.normalizer.Generate(text, req.Separator)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, batchResponse{Slugs: slugs})
	return nil
}

// unique resolves a free slug in an allowed table and optionally claims it.
func (a *API) unique(w http.ResponseWriter, r *http.Request) error {
	if a.resolver == nil {
		return newHTTPError(http.StatusNotImplemented, CodeNotConfigured, "no slug store configured", nil)
	}

	var req uniqueRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return err
	}
	if req.Table == "" {
		return errBadRequest("table is required")
	}
	if _, ok := a.allowedTables[req.Table]; !ok {
		return newHTTPError(http.StatusForbidden, CodeTableNotAllowed,
			fmt.Sprintf("table %q is not allowed", req.Table), nil)
	}
	if req.Column == "" {
		req.Column = a.defaultColumn
	}

	exclude, err := normalizeKey(req.ExcludeKey)
	if err != nil {
		return err
	}

	target := slug.Target{Table: req.Table, Column: req.Column, Separator: req.Separator}

	if !req.Claim {
		value, err := a.resolver.GenerateUnique(r.Context(), req.Text, target, exclude)
		if err != nil {
			return err
		}
		writeJSON(w, http.StatusOK, slugResponse{Slug: value})
		return nil
	}

	if a.registry == nil {
		return newHTTPError(http.StatusNotImplemented, CodeNotConfigured, "slug store does not support claims", nil)
	}
	key, err := normalizeKey(req.Key)
	if err != nil {
		return err
	}
	if key == nil {
		key = exclude
	}
	if key == nil {
		return errBadRequest("key is required to claim a slug")
	}

	value, err := a.claim(r, target, req.Text, key, exclude)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, slugResponse{Slug: value})
	return nil
}

// claim resolves and stores the slug for key, resolving again when another
// writer claimed the candidate in between.
func (a *API) claim(r *http.Request, target slug.Target, text string, key, exclude any) (string, error) {
	ctx := r.Context()
	for attempt := range claimRetries {
		value, err := a.resolver.GenerateUnique(ctx, text, target, exclude)
		if err != nil {
			return "", err
		}

		ok, err := a.registry.Claim(ctx, target.Table, target.Column, value, key)
		if err != nil {
			return "", err
		}
		if ok {
			return value, nil
		}

		a.logger.InfoContext(ctx, "slug claim lost a race, resolving again",
			slog.String("table", target.Table),
			slog.String("slug", value),
			slog.Int("attempt", attempt+1),
		)
	}
	return "", newHTTPError(http.StatusConflict, CodeConflict, "slug claimed concurrently, retry", nil)
}

func (a *API) reserve(w http.ResponseWriter, r *http.Request) error {
	if a.reservations == nil {
		return newHTTPError(http.StatusNotImplemented, CodeNotConfigured, "reservations require the postgres store", nil)
	}

	var req reserveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return err
	}

	res, err := a.reservations.Reserve(r.Context(), req.Scope, req.Text, req.Key)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, res)
	return nil
}

func (a *API) getReservation(w http.ResponseWriter, r *http.Request) error {
	if a.reservations == nil {
		return newHTTPError(http.StatusNotImplemented, CodeNotConfigured, "reservations require the postgres store", nil)
	}

	res, err := a.reservations.Get(r.Context(), chi.URLParam(r, "scope"), chi.URLParam(r, "slug"))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, res)
	return nil
}

func (a *API) releaseReservation(w http.ResponseWriter, r *http.Request) error {
	if a.reservations == nil {
		return newHTTPError(http.StatusNotImplemented, CodeNotConfigured, "reservations require the postgres store", nil)
	}

	if err := a.reservations.Release(r.Context(), chi.URLParam(r, "scope"), chi.URLParam(r, "slug")); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// normalizeKey turns a decoded JSON key into a string or int64.
func normalizeKey(v any) (any, error) {
	switch k := v.(type) {
	case nil:
		return nil, nil
	case string:
		if k == "" {
			return nil, nil
		}
		return k, nil
	case json.Number:
		if n, err := strconv.ParseInt(k.String(), 10, 64); err == nil {
			return n, nil
		}
		return k.String(), nil
	default:
		return nil, errBadRequest("keys must be strings or integers")
	}
}
