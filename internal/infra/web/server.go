// Package web is the HTTP front end of the translator. It keeps a single
// session and exposes each pipeline stage as its own endpoint.
package web

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"llm-translator/internal/application"
	"llm-translator/internal/domain"
)

type Server struct {
	addr        string
	pipeline    *application.Pipeline
	outputDir   string
	maxUpload   int64
	logger      *slog.Logger
	mux         *http.ServeMux
	rateLimiter *RateLimiter

	sessionMu sync.Mutex
	session   application.Session

	mu      sync.Mutex
	server  *http.Server
	running bool
}

type Options struct {
	Addr        string
	OutputDir   string
	RateLimit   int
	MaxUploadMB int
}

func NewServer(pipeline *application.Pipeline, opts Options, logger *slog.Logger) *Server {
	if opts.MaxUploadMB <= 0 {
		opts.MaxUploadMB = 20
	}
	s := &Server{
		addr:        opts.Addr,
		pipeline:    pipeline,
		outputDir:   opts.OutputDir,
		maxUpload:   int64(opts.MaxUploadMB) << 20,
		logger:      logger,
		mux:         http.NewServeMux(),
		rateLimiter: NewRateLimiter(opts.RateLimit, time.Minute),
		session:     application.NewSession(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	limit := s.rateLimiter.Middleware

	s.mux.HandleFunc("POST /session/language", limit(s.handleLanguage))
	s.mux.HandleFunc("POST /session/mode", limit(s.handleMode))
	s.mux.HandleFunc("POST /session/text", limit(s.handleText))
	s.mux.HandleFunc("POST /session/upload", limit(s.handleUpload))
	s.mux.HandleFunc("POST /session/translate", limit(s.handleTranslate))
	s.mux.HandleFunc("POST /session/speech", limit(s.handleSpeech))

	s.mux.HandleFunc("GET /session", s.handleSession)
	s.mux.HandleFunc("GET /languages", s.handleLanguages)
	s.mux.HandleFunc("GET /audio/{name}", s.handleAudio)
	s.mux.HandleFunc("GET /health", s.handleHealth)
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	s.server = &http.Server{
		Addr:              s.addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 15 * time.Second,
		// translation and synthesis block the request until the upstream returns
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		s.logger.Info("HTTP server starting", "addr", s.addr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP server error", "error", err)
		}
	}()

	s.running = true
	return nil
}

func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Warn("graceful shutdown failed, forcing close", "error", err)
		if err := s.server.Close(); err != nil {
			return fmt.Errorf("closing server: %w", err)
		}
	}

	s.running = false
	return nil
}

// apply runs one pipeline action against the held session and writes the result.
func (s *Server) apply(w http.ResponseWriter, withAudio bool, action func(application.Session) application.Session) {
	s.sessionMu.Lock()
	s.session = action(s.session)
	view := s.viewLocked(withAudio)
	failed := s.session.HasErrors()
	s.sessionMu.Unlock()

	status := http.StatusOK
	if failed {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, view)
}

func (s *Server) handleLanguage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Language string `json:"language"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	s.apply(w, false, func(sess application.Session) application.Session {
		return s.pipeline.SetLanguage(r.Context(), sess, body.Language)
	})
}

func (s *Server) handleMode(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Mode string `json:"mode"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	s.apply(w, false, func(sess application.Session) application.Session {
		return s.pipeline.SetMode(r.Context(), sess, domain.InputMode(body.Mode))
	})
}

func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	s.apply(w, false, func(sess application.Session) application.Session {
		return s.pipeline.EnterText(r.Context(), sess, body.Text)
	})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	file, header, err := r.FormFile("file")
	if err != nil {
		s.logger.Warn("reading upload", "error", err)
		http.Error(w, "missing or oversized file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	s.logger.Info("received upload", "name", header.Filename, "bytes", header.Size)

	s.apply(w, false, func(sess application.Session) application.Session {
		return s.pipeline.Upload(r.Context(), sess, header.Filename, file)
	})
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	s.apply(w, false, func(sess application.Session) application.Session {
		return s.pipeline.Translate(r.Context(), sess)
	})
}

func (s *Server) handleSpeech(w http.ResponseWriter, r *http.Request) {
	s.apply(w, true, func(sess application.Session) application.Session {
		return s.pipeline.Speak(r.Context(), sess)
	})
}

func (s *Server) handleSession(w http.ResponseWriter, _ *http.Request) {
	s.sessionMu.Lock()
	view := s.viewLocked(false)
	s.sessionMu.Unlock()
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleLanguages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"languages":  domain.Languages,
		"modes":      []domain.InputMode{domain.ModeDirectText, domain.ModeUploadFile},
		"extensions": domain.UploadExtensions,
	})
}

func (s *Server) handleAudio(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name != filepath.Base(name) || !strings.EqualFold(filepath.Ext(name), ".mp3") {
		http.Error(w, "invalid file name", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeFile(w, r, filepath.Join(s.outputDir, name))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.sessionMu.Lock()
	stage := s.session.Stage
	s.sessionMu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "stage": stage})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(v); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type artifactView struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Engine      string `json:"engine"`
	Bytes       int    `json:"bytes"`
	AudioBase64 string `json:"audio_base64,omitempty"`
}

type sessionView struct {
	Stage      application.Stage `json:"stage"`
	Language   string            `json:"language"`
	Mode       domain.InputMode  `json:"mode"`
	SourceText string            `json:"source_text"`
	SourceFile string            `json:"source_file,omitempty"`
	Translated string            `json:"translated_text"`
	Artifact   *artifactView     `json:"artifact,omitempty"`
	Notices    []domain.Notice   `json:"notices"`
}

func (s *Server) viewLocked(withAudio bool) sessionView {
	sess := s.session
	view := sessionView{
		Stage:      sess.Stage,
		Language:   sess.Language,
		Mode:       sess.Mode,
		SourceText: sess.SourceText,
		SourceFile: sess.SourceFile,
		Translated: sess.Translated,
		Notices:    sess.Notices,
	}
	if view.Notices == nil {
		view.Notices = []domain.Notice{}
	}
	if a := sess.Artifact; a != nil {
		view.Artifact = &artifactView{
			Name:   a.Name,
			URL:    "/audio/" + a.Name,
			Engine: string(a.Engine),
			Bytes:  len(a.Audio),
		}
		if withAudio {
			view.Artifact.AudioBase64 = base64.StdEncoding.EncodeToString(a.Audio)
		}
	}
	return view
}
