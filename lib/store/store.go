package store

import (
	"errors"
	"fmt"

	"github.com/graytonio/slack-intro-bot/lib/intro"
)

var (
	ErrUnknownDriver = errors.New("unknown store driver")
)

// Store is durable key-value persistence for introduction records: a
// process-lifetime map flushed whole to disk on every Save. Load runs once
// at startup; an absent backing file means an empty store.
type Store interface {
	Load() error
	Save() error
	Get(userID string) (intro.IntroductionRecord, bool)
	Put(userID string, rec intro.IntroductionRecord) error
	Close() error
}

type Config struct {
	Driver string
	Dir    string
}

// Open selects a backend by driver name. "json" is the flat pretty-printed
// file the bot has always used; "leveldb" swaps in an embedded database
// behind the same interface.
func Open(cfg Config) (Store, error) {
	switch cfg.Driver {
	case "", "json":
		return newFileStore(cfg.Dir), nil
	case "leveldb":
		return openLevelStore(cfg.Dir)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, cfg.Driver)
	}
}
