package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"randist/adapters/generators"
	"randist/internal/catalog"
	"randist/internal/errors"
	"randist/internal/report"
)

// query keys that are not distribution parameters
var reserved = map[string]bool{"n": true, "seed": true, "engine": true, "format": true}

// request is a parsed sample or profile query
type request struct {
	distribution string
	engine       string
	seed         uint32
	n            int
	params       map[string]string
}

func (s *Server) parseRequest(r *http.Request) (*request, error) {
	q := r.URL.Query()
	req := &request{
		distribution: chi.URLParam(r, "distribution"),
		engine:       s.config.Engine,
		n:            s.config.DefaultSamples,
		params:       make(map[string]string),
	}

	if v := q.Get("engine"); v != "" {
		req.engine = v
	}
	if v := q.Get("n"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, errors.InvalidArgument("n must be a positive integer", "n")
		}
		req.n = n
	}
	if req.n > s.config.MaxSamples {
		return nil, errors.InvalidArgument("n exceeds the limit of "+strconv.Itoa(s.config.MaxSamples), "n")
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, errors.InvalidArgument("seed must be an unsigned 32-bit integer", "seed")
		}
		req.seed = uint32(seed)
	} else {
		req.seed = generators.TimeSeed()
	}

	for key, values := range q {
		if reserved[strings.ToLower(key)] || len(values) == 0 {
			continue
		}
		req.params[key] = values[len(values)-1]
	}
	return req, nil
}

func (req *request) sampler() (catalog.Sampler, error) {
	gen, err := generators.ByName(req.engine, req.seed)
	if err != nil {
		return nil, err
	}
	return catalog.New(req.distribution, gen, req.params)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	names := catalog.Names()
	entries := make([]catalog.Entry, 0, len(names))
	for _, name := range names {
		e, err := catalog.Lookup(name)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		entries = append(entries, e)
	}
	s.writeJSON(w, http.StatusOK, CatalogResponse{Engines: generators.Names(), Distributions: entries})
}

func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	smp, err := req.sampler()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	samples := make([]float64, req.n)
	for i := range samples {
		samples[i] = smp.Sample()
	}
	s.writeJSON(w, http.StatusOK, SampleResponse{
		Distribution: req.distribution,
		Engine:       req.engine,
		Seed:         req.seed,
		Params:       req.params,
		Count:        req.n,
		Samples:      samples,
	})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	smp, err := req.sampler()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	samples := make([]float64, req.n)
	for i := range samples {
		samples[i] = smp.Sample()
	}

	ref, _ := catalog.ReferenceFor(smp)
	profile, err := s.analyzer.Profile(req.distribution, samples, catalog.Unwrap(smp), ref)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if strings.EqualFold(r.URL.Query().Get("format"), "html") {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(report.HTML(report.Header{Engine: req.engine, Seed: req.seed, Params: req.params}, profile))
		return
	}
	s.writeJSON(w, http.StatusOK, ProfileResponse{
		Engine:  req.engine,
		Seed:    req.seed,
		Params:  req.params,
		Profile: profile,
	})
}

// statusOf maps error codes to HTTP statuses
func statusOf(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeInvalidArgument, errors.CodeNullReference:
		return http.StatusBadRequest
	case errors.CodeNotSupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", "path", r.URL.Path, "err", err)
	}
	code := errors.GetCode(err)
	if code == "UNKNOWN" {
		code = errors.CodeInternalError
	}
	s.writeJSON(w, status, ErrorResponse{
		Error:  err.Error(),
		Code:   code,
		Params: errors.GetParams(err),
	})
}

// writeJSON encodes before writing so an unencodable value, such as an
// infinite sample, still produces a clean error response
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		s.log.Error("encoding response", "err", err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorResponse{
			Error: "response contains values JSON cannot represent",
			Code:  errors.CodeInternalError,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}
