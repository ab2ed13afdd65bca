// Package backup mirrors users and wedding cards into flat JSON files.
// The mirror is advisory: it is written best-effort after every primary
// write and read only when the primary store cannot serve a lookup.
package backup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/weddingcard/weddingcard-back/internal/config"
)

const (
	usersFile    = "users.json"
	weddingsFile = "weddings.json"
)

type Store struct {
	mu           sync.RWMutex
	usersPath    string
	weddingsPath string
	users        map[string]map[string]interface{}
	weddings     map[string]map[string]interface{}
}

func NewStore(cfg *config.Config) (*Store, error) {
	s := &Store{
		usersPath:    filepath.Join(cfg.BackupDir, usersFile),
		weddingsPath: filepath.Join(cfg.BackupDir, weddingsFile),
		users:        map[string]map[string]interface{}{},
		weddings:     map[string]map[string]interface{}{},
	}

	if err := loadFile(s.usersPath, &s.users); err != nil {
		return nil, errors.Wrap(err, "load users backup")
	}
	if err := loadFile(s.weddingsPath, &s.weddings); err != nil {
		return nil, errors.Wrap(err, "load weddings backup")
	}

	return s, nil
}

func (s *Store) PutUser(id string, doc map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[id] = doc
	return saveFile(s.usersPath, s.users)
}

func (s *Store) PutWedding(id string, doc map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.weddings[id] = doc
	return saveFile(s.weddingsPath, s.weddings)
}

func (s *Store) FindWeddingByID(id string) (map[string]interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.weddings[id]
	return doc, ok
}

// FindWeddingByShareable scans every record's shareable_id field; the
// backup file carries no index.
func (s *Store) FindWeddingByShareable(token string) (map[string]interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.weddings {
		if doc["shareable_id"] == token {
			return doc, true
		}
	}
	return nil, false
}

func loadFile(path string, out *map[string]map[string]interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, out)
}

func saveFile(path string, data map[string]map[string]interface{}) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
