package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/structkit/pkg/bst"
	"github.com/matzehuels/structkit/pkg/cache"
	"github.com/matzehuels/structkit/pkg/errors"
	"github.com/matzehuels/structkit/pkg/render"
)

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type flightsResponse struct {
	Query   string   `json:"query"`
	Flights []string `json:"flights"`
}

func (s *Server) searchFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	found, err := s.flights.Search(r.Context(), q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, flightsResponse{Query: q, Flights: found})
}

type registerRequest struct {
	Number string `json:"number"`
}

type registerResponse struct {
	Number string `json:"number"`
	Added  bool   `json:"added"`
}

func (s *Server) registerFlight(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<10))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}

	added, err := s.flights.Register(r.Context(), req.Number)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	writeJSON(w, status, registerResponse{Number: req.Number, Added: added})
}

func (s *Server) listFuncs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"functions": s.funcs.Names()})
}

type applyResponse struct {
	Function string `json:"function"`
	X        int    `json:"x"`
	Result   int    `json:"result"`
}

func (s *Server) applyFunc(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	x, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "x must be an integer"))
		return
	}
	result, err := s.funcs.Apply(name, x)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, applyResponse{Function: name, X: x, Result: result})
}

func (s *Server) renderBST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	format := render.FormatSVG
	if f := query.Get("format"); f != "" {
		var err error
		if format, err = render.ParseFormat(f); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	values, err := parseValues(query.Get("values"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	key := cache.Key("render", "bst", string(format), values)
	if data, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		writeArtifact(w, format, data)
		return
	}

	dot := render.TreeDOT[int](bst.Of(values...), render.Options{})
	data, err := render.Render(ctx, "bst", dot, format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.logger.Warn("cache write failed", "id", requestIDFrom(ctx), "err", err)
	}
	writeArtifact(w, format, data)
}

func writeArtifact(w http.ResponseWriter, format render.Format, data []byte) {
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// parseValues reads a comma-separated list of integers. Empty input is an
// empty tree.
func parseValues(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) > maxRenderValues {
		return nil, errors.New(errors.ErrCodeInvalidInput, "at most %d values", maxRenderValues)
	}
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "value %q is not an integer", p)
		}
		out[i] = v
	}
	return out, nil
}
