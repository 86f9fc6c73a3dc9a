package store

import (
	"encoding/json"
	"errors"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/graytonio/slack-intro-bot/lib/intro"
)

const levelDirName = "data_store.ldb"

// levelStore persists each record as its own key, durable at Put time, so
// Load and Save have nothing left to do.
type levelStore struct {
	db *leveldb.DB
}

func openLevelStore(dir string) (*levelStore, error) {
	db, err := leveldb.OpenFile(filepath.Join(dir, levelDirName), nil)
	if err != nil {
		return nil, err
	}
	return &levelStore{db: db}, nil
}

func (s *levelStore) Load() error {
	return nil
}

func (s *levelStore) Save() error {
	return nil
}

func (s *levelStore) Get(userID string) (intro.IntroductionRecord, bool) {
	var rec intro.IntroductionRecord
	raw, err := s.db.Get([]byte(userID), nil)
	if err != nil {
		if !errors.Is(err, leveldb.ErrNotFound) {
			logrus.WithError(err).WithField("user", userID).Error("leveldb get failed")
		}
		return rec, false
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		logrus.WithError(err).WithField("user", userID).Error("corrupt record in leveldb")
		return rec, false
	}
	return rec, true
}

func (s *levelStore) Put(userID string, rec intro.IntroductionRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Put([]byte(userID), raw, nil)
}

func (s *levelStore) Close() error {
	return s.db.Close()
}
