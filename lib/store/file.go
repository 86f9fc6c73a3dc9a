package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/graytonio/slack-intro-bot/lib/intro"
)

const storeFileName = "data_store.json"

// fileStore keeps the whole map in memory and rewrites one pretty-printed
// JSON object on every Save. All operations share one mutex so a concurrent
// pair of submissions cannot lose an update between Put and Save.
type fileStore struct {
	mu   sync.Mutex
	path string
	data map[string]intro.IntroductionRecord
}

func newFileStore(dir string) *fileStore {
	return &fileStore{
		path: filepath.Join(dir, storeFileName),
		data: make(map[string]intro.IntroductionRecord),
	}
}

func (s *fileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.WithField("path", s.path).Debug("no store file, starting empty")
			return nil
		}
		return err
	}

	data := make(map[string]intro.IntroductionRecord)
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}
	s.data = data
	logrus.WithFields(logrus.Fields{"path": s.path, "records": len(data)}).Debug("loaded store")
	return nil
}

func (s *fileStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	// Write-then-rename so a crash mid-save cannot truncate the store.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *fileStore) Get(userID string) (intro.IntroductionRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.data[userID]
	return rec, ok
}

func (s *fileStore) Put(userID string, rec intro.IntroductionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = rec
	return nil
}

func (s *fileStore) Close() error {
	return nil
}
