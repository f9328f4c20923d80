package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/pathviz/pkg/buildinfo"
	"github.com/matzehuels/pathviz/pkg/errors"
	"github.com/matzehuels/pathviz/pkg/layout"
	"github.com/matzehuels/pathviz/pkg/pipeline"
	"github.com/matzehuels/pathviz/pkg/session"
	"github.com/matzehuels/pathviz/pkg/shortest"
)

// =============================================================================
// Request and Response Bodies
// =============================================================================

// queryRequest is the query part of a request body. The matrix part is
// decoded separately so cells keep their number-or-string leniency.
type queryRequest struct {
	Start *int `json:"start"`
	End   *int `json:"end"`
}

type canvasRequest struct {
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

type pathRequest struct {
	queryRequest
	canvasRequest
	Formats []string `json:"formats,omitempty"`
	Arrows  bool     `json:"arrows,omitempty"`
}

// resultBody is a shortest-path result with derived fields spelled out.
type resultBody struct {
	shortest.Result
	Labels    []string `json:"labels"`
	Hops      int      `json:"hops"`
	Reachable bool     `json:"reachable"`
}

func newResultBody(res shortest.Result) *resultBody {
	return &resultBody{
		Result:    res,
		Labels:    res.Labels(),
		Hops:      res.Hops(),
		Reachable: res.Reachable(),
	}
}

type pathResponse struct {
	Result    *resultBody       `json:"result"`
	Layout    layout.Layout     `json:"layout"`
	Artifacts map[string][]byte `json:"artifacts,omitempty"`
}

type sessionResponse struct {
	ID        string         `json:"id"`
	Size      int            `json:"size"`
	Weights   [][]int        `json:"weights"`
	Layout    layout.Layout  `json:"layout"`
	Query     *session.Query `json:"query,omitempty"`
	Result    *resultBody    `json:"result,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func newSessionResponse(s *session.Session) sessionResponse {
	snap := s.Snapshot()
	resp := sessionResponse{
		ID:        snap.ID,
		Size:      snap.Size,
		Weights:   snap.Weights,
		Layout:    s.Layout(),
		Query:     snap.Query,
		CreatedAt: snap.CreatedAt,
		UpdatedAt: snap.UpdatedAt,
	}
	if res := s.Result(); res != nil {
		resp.Result = newResultBody(*res)
	}
	return resp
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
	})
}

// handlePath answers one query for a posted matrix without creating a
// session.
func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(w, r)
	if err != nil {
		respondError(w, r, s.logger, err)
		return
	}
	var req pathRequest
	if err := decodeJSON(data, &req); err != nil {
		respondError(w, r, s.logger, err)
		return
	}
	if err := requireQuery(req.Start, req.End); err != nil {
		respondError(w, r, s.logger, err)
		return
	}
	m, err := decodeMatrix(data)
	if err != nil {
		respondError(w, r, s.logger, err)
		return
	}
	g, err := m.Build()
	if err != nil {
		respondError(w, r, s.logger, err)
		return
	}

	opts := pipeline.Options{
		Start:   req.Start,
		End:     req.End,
		Width:   req.Width,
		Height:  req.Height,
		Formats: req.Formats,
		Arrows:  req.Arrows,
	}
	if len(opts.Formats) == 0 {
		opts.Formats = []string{pipeline.FormatJSON}
	}
	result, err := s.runner.Execute(r.Context(), g, opts)
	if err != nil {
		respondError(w, r, s.logger, err)
		return
	}

	resp := pathResponse{
		Result: newResultBody(*result.Path),
		Layout: result.Layout,
	}
	if len(req.Formats) > 0 {
		resp.Artifacts = result.Artifacts
	}
	w.Header().Set("X-Cache", cacheStatus(result.CacheInfo.SolveHit))
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(w, r)
	if err != nil {
		respondError(w, r, s.logger, err)
		return
	}
	var canvas canvasRequest
	if err := decodeJSON(data, &canvas); err != nil {
		respondError(w, r, s.logger, err)
		return
	}
	m, err := decodeMatrix(data)
	if err != nil {
		respondError(w, r, s.logger, err)
		return
	}
	g, err := m.Build()
	if err != nil {
		respondError(w, r, s.logger, err)
		return
	}

	width, height := s.width, s.height
	if canvas.Width != 0 {
		width = canvas.Width
	}
	if canvas.Height != 0 {
		height = canvas.Height
	}
	sess, err := session.New(g, width, height)
	if err != nil {
		respondError(w, r, s.logger, err)
		return
	}
	if err := s.store.Set(r.Context(), sess); err != nil {
		respondError(w, r, s.logger, err)
		return
	}

	s.logger.Debug("session created", "id", sess.ID(), "nodes", g.Size())
	w.Header().Set("Location", "/api/v1/sessions/"+sess.ID())
	respondJSON(w, http.StatusCreated, newSessionResponse(sess))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, newSessionResponse(sess))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, s.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleLoadMatrix replaces the session's model. A rejected matrix leaves
// the session unchanged.
func (s *Server) handleLoadMatrix(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	data, err := readBody(w, r)
	if err != nil {
		respondError(w, r, s.logger, err)
		return
	}
	m, err := decodeMatrix(data)
	if err != nil {
		respondError(w, r, s.logger, err)
		return
	}
	if err := sess.LoadCells(m.Size, m.Cells); err != nil {
		respondError(w, r, s.logger, err)
		return
	}
	s.saveAndRespond(w, r, sess, newSessionResponse(sess))
}

func (s *Server) handleResize(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	data, err := readBody(w, r)
	if err != nil {
		respondError(w, r, s.logger, err)
		return
	}
	var req canvasRequest
	if err := decodeJSON(data, &req); err != nil {
		respondError(w, r, s.logger, err)
		return
	}
	if err := sess.Resize(req.Width, req.Height); err != nil {
		respondError(w, r, s.logger, err)
		return
	}
	s.saveAndRespond(w, r, sess, newSessionResponse(sess))
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	data, err := readBody(w, r)
	if err != nil {
		respondError(w, r, s.logger, err)
		return
	}
	var req queryRequest
	if err := decodeJSON(data, &req); err != nil {
		respondError(w, r, s.logger, err)
		return
	}
	if err := requireQuery(req.Start, req.End); err != nil {
		respondError(w, r, s.logger, err)
		return
	}
	res, err := sess.Query(*req.Start, *req.End)
	if err != nil {
		respondError(w, r, s.logger, err)
		return
	}
	s.saveAndRespond(w, r, sess, newResultBody(res))
}

// handleRender draws the session's current state in one format. Artifacts
// go through the runner's cache, keyed by model, canvas and query.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		respondError(w, r, s.logger, err)
		return
	}

	view := sess.View()
	opts := pipeline.Options{
		Width:   view.Layout.Width,
		Height:  view.Layout.Height,
		Formats: []string{format},
		Engine:  q.Get("engine"),
		Arrows:  q.Get("arrows") == "true",
		Refresh: q.Get("refresh") == "true",
	}
	if view.Query != nil {
		opts.Start, opts.End = &view.Query.Start, &view.Query.End
	}
	if raw := q.Get("scale"); raw != "" {
		scale, err := strconv.ParseFloat(raw, 64)
		if err != nil || scale <= 0 {
			respondError(w, r, s.logger, errors.New(errors.ErrCodeInvalidInput, "invalid scale %q", raw))
			return
		}
		opts.Scale = scale
	}
	if opts.Engine != "" {
		if err := pipeline.ValidateEngine(opts.Engine); err != nil {
			respondError(w, r, s.logger, err)
			return
		}
	}

	artifacts, hit, err := s.runner.RenderWithCacheInfo(r.Context(), view.Plan, view.Hash, opts)
	if err != nil {
		respondError(w, r, s.logger, err)
		return
	}

	w.Header().Set("Content-Type", contentType(format))
	w.Header().Set("X-Cache", cacheStatus(hit))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

// =============================================================================
// Helpers
// =============================================================================

// loadSession fetches the session named in the URL, writing the error
// response itself when it fails.
func (s *Server) loadSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, s.logger, err)
		return nil, false
	}
	return sess, true
}

// saveAndRespond stores a mutated session and writes body.
func (s *Server) saveAndRespond(w http.ResponseWriter, r *http.Request, sess *session.Session, body any) {
	if err := s.store.Set(r.Context(), sess); err != nil {
		respondError(w, r, s.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, body)
}
