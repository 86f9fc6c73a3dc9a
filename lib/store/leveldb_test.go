package store

import (
	"testing"

	"github.com/graytonio/slack-intro-bot/lib/intro"
)

func TestLevelStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(Config{Driver: "leveldb", Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	want := intro.IntroductionRecord{UserID: "U1", UserName: "Alice", Text: "Hi, I'm U1", ChannelID: "C1", Timestamp: "100.1"}
	if err := s.Put("U1", want); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	// Simulated restart.
	s2, err := Open(Config{Driver: "leveldb", Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	got, ok := s2.Get("U1")
	if !ok {
		t.Fatal("record lost across restart")
	}
	if got != want {
		t.Errorf("record = %+v, want %+v", got, want)
	}
	if _, ok := s2.Get("U2"); ok {
		t.Error("unexpected record for unregistered user")
	}
}

func TestLevelStorePutReplaces(t *testing.T) {
	s, err := Open(Config{Driver: "leveldb", Dir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	s.Put("U1", intro.IntroductionRecord{UserID: "U1", Text: "old", ChannelID: "C0"})
	s.Put("U1", intro.IntroductionRecord{UserID: "U1", Text: "new", ChannelID: "C1"})

	rec, ok := s.Get("U1")
	if !ok {
		t.Fatal("record missing")
	}
	if rec.Text != "new" || rec.ChannelID != "C1" {
		t.Errorf("record not fully replaced: %+v", rec)
	}
}
