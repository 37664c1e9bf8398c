package corpus

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/YanguiHadil/unihelp/internal/log"
)

// DefaultRefreshTTL is how long a loaded corpus is served before the
// next read triggers a reload from disk.
const DefaultRefreshTTL = 5 * time.Minute

// Provider serves the current corpus and keeps it fresh, by lazy
// TTL-based reloads and, in serve mode, by watching the source file.
//
// Provider is safe for concurrent use.
type Provider struct {
	path   string
	ttl    time.Duration
	logger log.Logger
	now    func() time.Time

	mu       sync.RWMutex
	corpus   *Corpus
	loadedAt time.Time
}

// NewProvider loads the corpus from path and returns a Provider. A
// missing file is not an error; the provider serves an empty corpus
// until the file appears.
func NewProvider(path string, ttl time.Duration, logger log.Logger) (*Provider, error) {
	if ttl <= 0 {
		ttl = DefaultRefreshTTL
	}
	p := &Provider{
		path:   path,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// Corpus returns the current corpus, reloading from disk first when
// the TTL has elapsed. A failed reload keeps serving the previous
// corpus and logs a warning; stale grounding beats no grounding.
func (p *Provider) Corpus() *Corpus {
	p.mu.RLock()
	fresh := p.now().Sub(p.loadedAt) < p.ttl
	c := p.corpus
	p.mu.RUnlock()

	if fresh {
		return c
	}
	if err := p.Reload(); err != nil {
		p.logger.Warn("corpus reload failed, serving stale copy", "path", p.path, "error", err)
		return c
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.corpus
}

// Reload re-reads the corpus from disk.
func (p *Provider) Reload() error {
	c, err := Load(p.path)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}

	p.mu.Lock()
	p.corpus = c
	p.loadedAt = p.now()
	p.mu.Unlock()

	p.logger.Debug("corpus loaded", "path", p.path, "sections", len(c.Sections))
	return nil
}

// Watch reloads the corpus whenever its source file changes. It blocks
// until ctx is cancelled. The parent directory is watched rather than
// the file itself, so editors that replace the file atomically
// (write to temp, rename) still trigger a reload.
func (p *Provider) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(p.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	target := filepath.Clean(p.path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := p.Reload(); err != nil {
				p.logger.Warn("corpus reload after change failed", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			p.logger.Warn("corpus watcher error", "error", err)
		}
	}
}
