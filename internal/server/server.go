// internal/server/server.go
// Package server runs the development server: it serves the built site,
// watches the sources, rebuilds on change, and tells connected browsers to
// reload over a websocket.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"gazette/internal/builder"
	"gazette/internal/config"
	"gazette/internal/log"
)

const (
	wsPath   = "/_gazette/ws"
	debounce = 500 * time.Millisecond
)

// Server watches and serves one site.
type Server struct {
	root string
	port int

	// loadConfig is called before every rebuild, so edits to site.yaml
	// take effect without restarting the server.
	loadConfig func() (config.Config, error)
	opts       builder.Options

	hub *hub
	log zerolog.Logger

	buildMu sync.Mutex
}

// New prepares a development server for the site rooted at root.
func New(root string, port int, loadConfig func() (config.Config, error), opts builder.Options) *Server {
	logger := log.WithComponent("server")
	return &Server{
		root:       root,
		port:       port,
		loadConfig: loadConfig,
		opts:       opts,
		hub:        newHub(logger),
		log:        logger,
	}
}

// Run builds the site, then serves and watches it until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	// Event paths from the watcher are compared against the output and
	// cache directories, so everything has to be absolute.
	root, err := filepath.Abs(s.root)
	if err != nil {
		return err
	}
	s.root = root

	cfg, err := s.loadConfig()
	if err != nil {
		return err
	}

	initial := s.opts
	initial.Clean = true
	if _, err := builder.New(s.root, cfg, initial).Build(ctx); err != nil {
		return fmt.Errorf("initial build: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()
	if err := s.addWatches(watcher, cfg); err != nil {
		return err
	}

	// The served directory is pinned at startup; changing `output` in
	// site.yaml needs a server restart.
	outDir := cfg.OutputDir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(s.root, outDir)
	}

	go s.watch(ctx, watcher, outDir)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.handler(outDir),
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Int("port", s.port).Msgf("serving site on http://localhost:%d", s.port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		s.hub.closeAll()
		return err
	case err := <-errCh:
		return err
	}
}

func (s *Server) handler(outDir string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(wsPath, s.hub.serveWS)
	mux.Handle("/", injectReload(http.FileServer(http.Dir(outDir))))
	return mux
}

// addWatches registers the content tree, the theme, and the site root
// (for site.yaml) with the watcher. Directories are added recursively;
// fsnotify does not descend on its own.
func (s *Server) addWatches(watcher *fsnotify.Watcher, cfg config.Config) error {
	watched := make(map[string]bool)
	add := func(dir string) {
		dir = filepath.Clean(dir)
		if watched[dir] {
			return
		}
		if err := watcher.Add(dir); err != nil {
			s.log.Warn().Err(err).Str("dir", dir).Msg("cannot watch directory")
			return
		}
		watched[dir] = true
		s.log.Debug().Str("dir", dir).Msg("watching")
	}

	add(s.root)

	roots := []string{
		filepath.Join(s.root, cfg.ContentDir),
		filepath.Join(s.root, "themes", cfg.Theme),
	}
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if strings.HasPrefix(d.Name(), ".") && path != root {
					return filepath.SkipDir
				}
				add(path)
			}
			return nil
		})
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("watch %s: %w", root, err)
		}
	}
	return nil
}

// watch coalesces change bursts with a trailing debounce, so one save (or
// an editor's write-rename dance) triggers one rebuild.
func (s *Server) watch(ctx context.Context, watcher *fsnotify.Watcher, outDir string) {
	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	schedule := func(name string) {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounce, func() {
			s.rebuild(ctx, name)
		})
	}

	cacheDir := filepath.Join(s.root, builder.CacheDirName)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if s.ignored(event.Name, outDir, cacheDir) {
				continue
			}
			// New directories need their own watch to be seen later.
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						s.log.Warn().Err(err).Str("dir", event.Name).Msg("cannot watch new directory")
					}
				}
			}
			schedule(event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.log.Warn().Err(err).Msg("watcher error")
		}
	}
}

// ignored filters out the build's own writes and editor droppings.
func (s *Server) ignored(path, outDir, cacheDir string) bool {
	if within(path, outDir) || within(path, cacheDir) {
		return true
	}
	return strings.HasPrefix(filepath.Base(path), ".")
}

func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// rebuild runs one build and notifies the browsers. A failed build keeps
// the previous output tree in place, so the site stays browsable while the
// mistake is fixed.
func (s *Server) rebuild(ctx context.Context, trigger string) {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()
	if ctx.Err() != nil {
		return
	}

	s.log.Info().Str("trigger", trigger).Msg("change detected, rebuilding")

	cfg, err := s.loadConfig()
	if err != nil {
		s.log.Error().Err(err).Msg("configuration is broken, keeping the old site")
		return
	}
	if _, err := builder.New(s.root, cfg, s.opts).Build(ctx); err != nil {
		s.log.Error().Err(err).Msg("rebuild failed, keeping the old site")
		return
	}
	s.hub.broadcast([]byte("reload"))
}
