package intro

import (
	"testing"

	"github.com/slack-go/slack"
)

func sectionText(t *testing.T, b slack.Block) string {
	t.Helper()
	section, ok := b.(*slack.SectionBlock)
	if !ok {
		t.Fatalf("expected section block, got %T", b)
	}
	return section.Text.Text
}

func headerText(t *testing.T, b slack.Block) string {
	t.Helper()
	header, ok := b.(*slack.HeaderBlock)
	if !ok {
		t.Fatalf("expected header block, got %T", b)
	}
	return header.Text.Text
}

func TestInfoViewNoRecord(t *testing.T) {
	view := InfoView(IntroductionRecord{}, false)

	if view.Title.Text != "自己紹介" {
		t.Errorf("title = %q, want 自己紹介", view.Title.Text)
	}
	if view.Submit != nil {
		t.Error("info view must not have a submit button")
	}
	if len(view.Blocks.BlockSet) != 1 {
		t.Fatalf("expected 1 block, got %d", len(view.Blocks.BlockSet))
	}
	if got := sectionText(t, view.Blocks.BlockSet[0]); got != "自己紹介メッセージが登録されていません" {
		t.Errorf("body = %q", got)
	}
}

func TestInfoViewWithRecord(t *testing.T) {
	rec := IntroductionRecord{
		UserID:   "U1",
		UserName: "Alice",
		Text:     "Hi, I'm Alice",
	}
	view := InfoView(rec, true)

	if view.Title.Text != "Alice" {
		t.Errorf("title = %q, want Alice", view.Title.Text)
	}
	if got := sectionText(t, view.Blocks.BlockSet[0]); got != "Hi, I'm Alice" {
		t.Errorf("body = %q, want text verbatim", got)
	}
	if view.Submit != nil {
		t.Error("info view must not have a submit button")
	}
}

func TestInfoViewFallbackTitle(t *testing.T) {
	view := InfoView(IntroductionRecord{UserID: "U1", Text: "hello"}, true)
	if view.Title.Text != "自己紹介" {
		t.Errorf("title = %q, want generic fallback", view.Title.Text)
	}
}

func TestRegisterView(t *testing.T) {
	meta := Metadata{
		UserID:      "U1",
		ChannelID:   "C1",
		Timestamp:   "100.1",
		Text:        "Hi, I'm U1",
		ResponseURL: "https://hooks.slack.test/r1",
	}
	view, err := RegisterView("old intro", meta)
	if err != nil {
		t.Fatal(err)
	}

	if view.CallbackID != RegisterCallbackID {
		t.Errorf("callback id = %q", view.CallbackID)
	}
	if view.Submit == nil || view.Submit.Text != "登録" {
		t.Error("register view must have a 登録 submit button")
	}

	blocks := view.Blocks.BlockSet
	if len(blocks) != 5 {
		t.Fatalf("expected 5 blocks, got %d", len(blocks))
	}
	if got := headerText(t, blocks[0]); got != "変更前" {
		t.Errorf("first header = %q", got)
	}
	if got := sectionText(t, blocks[1]); got != "old intro" {
		t.Errorf("before body = %q", got)
	}
	if got := headerText(t, blocks[3]); got != "変更後" {
		t.Errorf("second header = %q", got)
	}
	if got := sectionText(t, blocks[4]); got != "Hi, I'm U1" {
		t.Errorf("after body = %q", got)
	}

	decoded, err := DecodeMetadata(view.PrivateMetadata)
	if err != nil {
		t.Fatal(err)
	}
	if decoded != meta {
		t.Errorf("metadata round trip = %+v, want %+v", decoded, meta)
	}
}

func TestRegisterViewNoDataFallbacks(t *testing.T) {
	view, err := RegisterView("", Metadata{UserID: "U1"})
	if err != nil {
		t.Fatal(err)
	}
	blocks := view.Blocks.BlockSet
	if got := sectionText(t, blocks[1]); got != "*NO_DATA*" {
		t.Errorf("before body = %q, want *NO_DATA*", got)
	}
	if got := sectionText(t, blocks[4]); got != "*NO_DATA*" {
		t.Errorf("after body = %q, want *NO_DATA*", got)
	}
}
