package slackutils

import (
	"github.com/slack-go/slack"
)

// SlackAPI is the slice of the Slack Web API the bot calls. *slack.Client
// satisfies it; tests inject fakes.
type SlackAPI interface {
	OpenView(triggerID string, view slack.ModalViewRequest) (*slack.ViewResponse, error)
	GetUserInfo(user string) (*slack.User, error)
}

// WebhookPoster sends a message to an interaction's response_url.
// slack.PostWebhook satisfies it.
type WebhookPoster func(url string, msg *slack.WebhookMessage) error

// DisplayName picks a human-readable name for a user. Slack leaves any of
// these blank depending on workspace settings, so fall through until
// something is set.
func DisplayName(u *slack.User) string {
	if u == nil {
		return ""
	}
	if u.RealName != "" {
		return u.RealName
	}
	if u.Profile.DisplayName != "" {
		return u.Profile.DisplayName
	}
	if u.Name != "" {
		return u.Name
	}
	return u.ID
}
