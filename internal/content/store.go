package content

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Store holds the current Site snapshot and swaps in a new one when the
// content directory changes on disk.
type Store struct {
	dir string

	mu   sync.RWMutex
	site *Site
}

// Open loads the content directory and returns a store over it. The initial
// load must succeed; later reloads may fail and keep the last good snapshot.
func Open(dir string) (*Store, error) {
	site, err := Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading content from %s: %w", dir, err)
	}
	return &Store{dir: dir, site: site}, nil
}

// Site returns the current snapshot. Callers must not mutate it.
func (s *Store) Site() *Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.site
}

// Reload re-reads the content directory. On error the previous snapshot
// stays active.
func (s *Store) Reload() error {
	site, err := Load(s.dir)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.site = site
	s.mu.Unlock()
	return nil
}

// Watch reloads the store whenever a file in the content directory is
// written or created, until ctx is cancelled. A failed reload is logged and
// the last good snapshot keeps serving.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting content watcher: %w", err)
	}
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", s.dir, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := s.Reload(); err != nil {
					log.Printf("Content reload failed, keeping previous snapshot: %v", err)
				} else {
					log.Printf("Content reloaded after change to %s", event.Name)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Content watcher error: %v", err)
			}
		}
	}()
	return nil
}

// Project looks up a project by slug.
func (s *Store) Project(slug string) (Project, bool) {
	for _, p := range s.Site().Projects {
		if p.Slug == slug {
			return p, true
		}
	}
	return Project{}, false
}

// SearchProjects returns the projects matching q, preserving document
// order. The match is a case-insensitive substring check over title,
// summary, and tags. An empty query returns everything.
func (s *Store) SearchProjects(q string) []Project {
	projects := s.Site().Projects
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return projects
	}

	var out []Project
	for _, p := range projects {
		if matchesProject(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matchesProject(p Project, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Summary), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
