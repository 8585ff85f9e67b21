package api

import (
	"net/http"
	"time"

	"github.com/cipherstack/cipherstack/pkg/buildinfo"
	"github.com/cipherstack/cipherstack/pkg/cache"
	"github.com/cipherstack/cipherstack/pkg/cipher"
	"github.com/cipherstack/cipherstack/pkg/cipher/registry"
	"github.com/cipherstack/cipherstack/pkg/httputil"
	"github.com/cipherstack/cipherstack/pkg/pipeline"
	"github.com/cipherstack/cipherstack/pkg/render/diagram"
)

// diagramTTL bounds how long a rendered diagram is reused.
const diagramTTL = time.Hour

// TransformRequest is the body of /v1/encrypt and /v1/decrypt.
type TransformRequest struct {
	Text   string               `json:"text"`
	Layers []pipeline.LayerSpec `json:"layers"`
}

// TransformResponse is the successful reply of /v1/encrypt and /v1/decrypt.
type TransformResponse struct {
	Text  string   `json:"text"`
	Trace []string `json:"trace"`
}

// DiagramRequest is the body of /v1/diagram.
type DiagramRequest struct {
	Layers    []pipeline.LayerSpec `json:"layers"`
	Direction string               `json:"direction,omitempty"`
	Format    string               `json:"format,omitempty"`
}

// AlgorithmInfo describes one registry entry.
type AlgorithmInfo struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
	KeyHint string   `json:"key_hint"`
	Lossy   bool     `json:"lossy"`
	Traces  bool     `json:"traces"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	build := buildinfo.Current()
	httputil.JSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": build.Version,
		"commit":  build.Commit,
	})
}

func (s *Server) listAlgorithms(w http.ResponseWriter, r *http.Request) {
	infos := make([]AlgorithmInfo, 0, len(registry.All))
	for _, alg := range registry.All {
		aliases := alg.Aliases
		if aliases == nil {
			aliases = []string{}
		}
		infos = append(infos, AlgorithmInfo{
			ID:      string(alg.ID),
			Name:    alg.Name,
			Aliases: aliases,
			KeyHint: alg.KeyHint,
			Lossy:   alg.Lossy,
			Traces:  alg.Traces(),
		})
	}
	httputil.JSON(w, http.StatusOK, map[string]any{"algorithms": infos})
}

func (s *Server) encrypt(w http.ResponseWriter, r *http.Request) {
	s.transform(w, r, cipher.Encrypt)
}

func (s *Server) decrypt(w http.ResponseWriter, r *http.Request) {
	s.transform(w, r, cipher.Decrypt)
}

func (s *Server) transform(w http.ResponseWriter, r *http.Request, dir cipher.Direction) {
	var req TransformRequest
	if err := httputil.DecodeJSON(w, r, s.maxBody, &req); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), pipeline.Request{
		Text:      req.Text,
		Layers:    req.Layers,
		Direction: dir,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.JSON(w, http.StatusOK, TransformResponse{Text: res.Text, Trace: res.Trace})
}

func (s *Server) diagram(w http.ResponseWriter, r *http.Request) {
	var req DiagramRequest
	if err := httputil.DecodeJSON(w, r, s.maxBody, &req); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	format, err := diagram.ParseFormat(req.Format)
	if err != nil {
		s.writeDecodeError(w, err)
		return
	}
	dir := cipher.Encrypt
	if req.Direction != "" {
		if dir, err = cipher.ParseDirection(req.Direction); err != nil {
			s.writeDecodeError(w, err)
			return
		}
	}

	// Keys are not drawn, so they are not part of the cache key either.
	canon, err := pipeline.Canonicalize(req.Layers)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	shape := make([]string, len(canon))
	for i, l := range canon {
		shape[i] = l.Algorithm
	}
	key := cache.DiagramKey(string(format), struct {
		Direction string   `json:"direction"`
		Layers    []string `json:"layers"`
	}{dir.String(), shape})

	ctx := r.Context()
	data, hit, err := s.diagrams.Get(ctx, key)
	if err != nil || !hit {
		data, err = diagram.Render(ctx, canon, format, diagram.Options{Direction: dir})
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		if err := s.diagrams.Set(ctx, key, data, diagramTTL); err != nil {
			s.logger.Warn("diagram cache write failed", "err", err)
		}
	}

	contentType := "image/svg+xml"
	if format == diagram.FormatDOT {
		contentType = "text/vnd.graphviz; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
