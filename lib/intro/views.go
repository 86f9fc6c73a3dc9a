package intro

import "github.com/slack-go/slack"

const (
	// Shortcut callback ids, fixed by the Slack app manifest.
	SetIntroShortcut  = "set-intro"
	ShowIntroShortcut = "show-intro"

	// Callback id of the register modal's view_submission.
	RegisterCallbackID = "register-intro"
)

const (
	defaultTitle  = "自己紹介"
	noRecordText  = "自己紹介メッセージが登録されていません"
	noDataText    = "*NO_DATA*"
	registerTitle = "自己紹介を設定する"
	beforeHeader  = "変更前"
	afterHeader   = "変更後"
)

// InfoView renders the read-only introduction modal. With no record it is a
// single panel saying nothing is registered; otherwise the modal is titled
// with the owner's display name and shows the stored text verbatim. Either
// way it is dismiss-only.
func InfoView(rec IntroductionRecord, found bool) slack.ModalViewRequest {
	view := slack.ModalViewRequest{
		Type:  slack.VTModal,
		Title: slack.NewTextBlockObject(slack.PlainTextType, defaultTitle, true, false),
		Close: slack.NewTextBlockObject(slack.PlainTextType, "閉じる", true, false),
	}

	if !found {
		view.Blocks = slack.Blocks{BlockSet: []slack.Block{
			slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, noRecordText, false, false), nil, nil),
		}}
		return view
	}

	if rec.UserName != "" {
		view.Title = slack.NewTextBlockObject(slack.PlainTextType, rec.UserName, true, false)
	}
	view.Blocks = slack.Blocks{BlockSet: []slack.Block{
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, rec.Text, false, false), nil, nil),
	}}
	return view
}

// RegisterView renders the edit modal: the currently stored text under a
// 変更前 header, the triggering message's text under 変更後, and the
// correlation metadata tucked into private_metadata for the submission
// handler.
func RegisterView(currentText string, meta Metadata) (slack.ModalViewRequest, error) {
	encoded, err := meta.Encode()
	if err != nil {
		return slack.ModalViewRequest{}, err
	}

	before := currentText
	if before == "" {
		before = noDataText
	}
	after := meta.Text
	if after == "" {
		after = noDataText
	}

	return slack.ModalViewRequest{
		Type:            slack.VTModal,
		CallbackID:      RegisterCallbackID,
		PrivateMetadata: encoded,
		Title:           slack.NewTextBlockObject(slack.PlainTextType, registerTitle, true, false),
		Submit:          slack.NewTextBlockObject(slack.PlainTextType, "登録", true, false),
		Close:           slack.NewTextBlockObject(slack.PlainTextType, "キャンセル", true, false),
		Blocks: slack.Blocks{BlockSet: []slack.Block{
			slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, beforeHeader, true, false)),
			slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, before, false, false), nil, nil),
			slack.NewDividerBlock(),
			slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, afterHeader, true, false)),
			slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, after, false, false), nil, nil),
		}},
	}, nil
}
