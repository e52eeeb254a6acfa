// Package httpserver は稼働確認用の HTTP エンドポイントを提供します。
package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
	pingTimeout       = 2 * time.Second
)

// Pinger は依存先への疎通確認を行います。
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server は /healthz と /readyz を公開する HTTP サーバーです。
type Server struct {
	srv *http.Server
	log *slog.Logger
}

// New は addr で待ち受ける Server を生成します。readiness には store の疎通結果を用います。
func New(addr string, store Pinger, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(store),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		log: log,
	}
}

// NewRouter はプローブ用のルーターを生成します。
func NewRouter(store Pinger) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeStatus(w, http.StatusOK, "ok", "")
	}).Methods(http.MethodGet)
	router.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			writeStatus(w, http.StatusServiceUnavailable, "unavailable", err.Error())
			return
		}
		writeStatus(w, http.StatusOK, "ready", "")
	}).Methods(http.MethodGet)
	return router
}

// Run はサーバーを起動し、コンテキストがキャンセルされると Shutdown します。
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP probe server listening", "address", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("serve HTTP: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown HTTP: %w", err)
	}
	return <-errCh
}

func writeStatus(w http.ResponseWriter, code int, state, reason string) {
	body := map[string]string{"status": state}
	if reason != "" {
		body["error"] = reason
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
