package intro

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"

	"github.com/graytonio/slack-intro-bot/lib/slackutils"
)

// AllowDelegatedEdit: any actor may invoke set-intro on any message and
// overwrite that author's introduction on their behalf.
// Flip to false to restrict editing to the message author.
const AllowDelegatedEdit = true

// Store is the slice of the persistence layer the handlers touch. A write
// is Put followed by Save; Save flushes the whole map.
type Store interface {
	Get(userID string) (IntroductionRecord, bool)
	Put(userID string, rec IntroductionRecord) error
	Save() error
}

// Handler routes Slack interaction callbacks to the intro flows. It is
// invoked after the receiver has already acknowledged the interaction, so
// failures here are reported through the interaction's response_url.
type Handler struct {
	api   slackutils.SlackAPI
	store Store
	post  slackutils.WebhookPoster
}

func NewHandler(api slackutils.SlackAPI, store Store) *Handler {
	return &Handler{
		api:   api,
		store: store,
		post:  slack.PostWebhook,
	}
}

// NewHandlerWithPoster is NewHandler with the response_url sender swapped
// out, for tests.
func NewHandlerWithPoster(api slackutils.SlackAPI, store Store, post slackutils.WebhookPoster) *Handler {
	h := NewHandler(api, store)
	h.post = post
	return h
}

func (h *Handler) HandleInteraction(cb slack.InteractionCallback) {
	switch cb.Type {
	case slack.InteractionTypeMessageAction, slack.InteractionTypeShortcut:
		h.handleShortcut(cb)
	case slack.InteractionTypeViewSubmission:
		if cb.View.CallbackID == RegisterCallbackID {
			h.handleSubmission(cb)
			return
		}
		logrus.WithField("callback_id", cb.View.CallbackID).Debug("ignoring unknown view submission")
	default:
		logrus.WithField("type", cb.Type).Debug("ignoring unhandled interaction type")
	}
}

func (h *Handler) handleShortcut(cb slack.InteractionCallback) {
	switch cb.CallbackID {
	case SetIntroShortcut:
		// No authorization check here, see AllowDelegatedEdit.
		h.openRegisterModal(cb)
	case ShowIntroShortcut:
		// Viewing your own message drops you into the edit flow instead.
		if cb.User.ID == cb.Message.User {
			h.openRegisterModal(cb)
			return
		}
		h.openInfoModal(cb)
	default:
		logrus.WithField("callback_id", cb.CallbackID).Debug("ignoring unknown shortcut")
	}
}

func (h *Handler) openInfoModal(cb slack.InteractionCallback) {
	rec, found := h.store.Get(cb.Message.User)
	logrus.WithFields(logrus.Fields{
		"actor":  cb.User.ID,
		"target": cb.Message.User,
		"found":  found,
	}).Debug("opening info modal")

	if _, err := h.api.OpenView(cb.TriggerID, InfoView(rec, found)); err != nil {
		h.reportOpenError(cb, err)
	}
}

func (h *Handler) openRegisterModal(cb slack.InteractionCallback) {
	target := cb.Message.User
	current, _ := h.store.Get(target)
	meta := Metadata{
		UserID:      target,
		ChannelID:   cb.Channel.ID,
		Timestamp:   cb.Message.Timestamp,
		Text:        cb.Message.Text,
		ResponseURL: cb.ResponseURL,
	}
	logrus.WithFields(logrus.Fields{
		"actor":  cb.User.ID,
		"target": target,
	}).Debug("opening register modal")

	view, err := RegisterView(current.Text, meta)
	if err != nil {
		h.reportOpenError(cb, err)
		return
	}

	if _, err := h.api.OpenView(cb.TriggerID, view); err != nil {
		h.reportOpenError(cb, err)
	}
}

// handleSubmission builds and persists the replacement record. The modal
// was already closed by the receiver's empty ack; only then do the slow
// calls (users.info, store save) run. On any failure the store is left
// untouched and the submitter gets the error over response_url.
func (h *Handler) handleSubmission(cb slack.InteractionCallback) {
	meta, err := DecodeMetadata(cb.View.PrivateMetadata)
	if err != nil {
		logrus.WithError(err).Error("could not decode private metadata")
		h.reportSubmitError(Metadata{ResponseURL: cb.ResponseURL}, err)
		return
	}

	user, err := h.api.GetUserInfo(meta.UserID)
	if err != nil {
		logrus.WithError(err).WithField("user", meta.UserID).Error("users.info failed")
		h.reportSubmitError(meta, err)
		return
	}

	rec := BuildRecord(meta, slackutils.DisplayName(user))
	if err := h.store.Put(rec.UserID, rec); err != nil {
		logrus.WithError(err).WithField("user", rec.UserID).Error("store put failed")
		h.reportSubmitError(meta, err)
		return
	}
	if err := h.store.Save(); err != nil {
		logrus.WithError(err).Error("store save failed")
		h.reportSubmitError(meta, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"user":    rec.UserID,
		"channel": rec.ChannelID,
		"ts":      rec.Timestamp,
	}).Info("registered introduction")
}

func (h *Handler) reportOpenError(cb slack.InteractionCallback, err error) {
	logrus.WithError(err).WithFields(logrus.Fields{
		"callback_id": cb.CallbackID,
		"trigger_id":  cb.TriggerID,
	}).Error("views.open failed")

	if cb.ResponseURL == "" {
		return
	}
	msg := fmt.Sprintf(":x: Failed to open a modal due to *%s* ...", err)
	if postErr := h.post(cb.ResponseURL, &slack.WebhookMessage{Text: msg}); postErr != nil {
		logrus.WithError(postErr).Debug("could not deliver error message")
	}
}

func (h *Handler) reportSubmitError(meta Metadata, err error) {
	if meta.ResponseURL == "" {
		return
	}
	msg := "メッセージの登録に失敗しました\n" + err.Error()
	if postErr := h.post(meta.ResponseURL, &slack.WebhookMessage{Text: msg}); postErr != nil {
		logrus.WithError(postErr).Debug("could not deliver error message")
	}
}
