// Package api serves structkit over HTTP.
//
// Routes:
//
//	GET  /healthz                         liveness probe
//	GET  /flights?q=lh                    case-insensitive flight search
//	POST /flights {"number":"LH400"}      register a flight number
//	GET  /funcs                           list integer functions
//	GET  /funcs/{name}?x=-3               apply an integer function
//	GET  /render/bst?values=5,3,8&format=svg
//
// Errors are returned as {"error": CODE, "message": text} with a status
// derived from the error code.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/structkit/pkg/buildinfo"
	"github.com/matzehuels/structkit/pkg/cache"
	"github.com/matzehuels/structkit/pkg/errors"
	"github.com/matzehuels/structkit/pkg/flights"
	"github.com/matzehuels/structkit/pkg/funcs"
	"github.com/matzehuels/structkit/pkg/observability"
)

// maxRenderValues bounds the size of a tree rendered per request.
const maxRenderValues = 512

// Options configures a Server. Flights is required; the rest default.
type Options struct {
	Flights  *flights.Service
	Cache    cache.Cache
	CacheTTL time.Duration
	Logger   *log.Logger
}

// Server holds the dependencies shared by the handlers.
type Server struct {
	flights  *flights.Service
	funcs    *funcs.FunctionMap[int, int]
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *log.Logger
}

// New returns a Server.
func New(opts Options) *Server {
	s := &Server{
		flights:  opts.Flights,
		funcs:    funcs.IntFunctionMap(),
		cache:    opts.Cache,
		cacheTTL: opts.CacheTTL,
		logger:   opts.Logger,
	}
	if s.cache == nil {
		s.cache = cache.NewNullCache()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Server", buildinfo.UserAgent()))

	r.Get("/healthz", s.healthz)
	r.Route("/flights", func(r chi.Router) {
		r.Get("/", s.searchFlights)
		r.Post("/", s.registerFlight)
	})
	r.Route("/funcs", func(r chi.Router) {
		r.Get("/", s.listFuncs)
		r.Get("/{name}", s.applyFunc)
	})
	r.Get("/render/bst", s.renderBST)
	return r
}

type ctxKey int

const requestIDKey ctxKey = 0

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// requestID keeps a caller supplied ID or assigns a new one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, status, elapsed)
		s.logger.Debug("request", "id", requestIDFrom(r.Context()), "method", r.Method,
			"path", r.URL.Path, "status", status, "bytes", ww.BytesWritten(), "took", elapsed.Round(time.Microsecond))
	})
}

type errorBody struct {
	Error   errors.Code `json:"error"`
	Message string      `json:"message"`
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidArgument, errors.ErrCodeInvalidInput, errors.ErrCodeUnsupported:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "id", requestIDFrom(r.Context()), "err", err)
		msg = "internal error"
	}
	writeJSON(w, status, errorBody{Error: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
