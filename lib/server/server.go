package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

const maxBodyBytes = 1 << 20

// InteractionHandler consumes a verified, already-acknowledged interaction.
type InteractionHandler interface {
	HandleInteraction(cb slack.InteractionCallback)
}

type Config struct {
	SigningSecret     string
	RequestLogEnabled bool
}

// Server is the HTTP receiver: Slack interactivity on /slack/events plus an
// unauthenticated liveness route on /.
type Server struct {
	cfg     Config
	handler InteractionHandler
	mux     *http.ServeMux
}

func New(cfg Config, handler InteractionHandler) *Server {
	s := &Server{cfg: cfg, handler: handler, mux: http.NewServeMux()}
	s.mux.HandleFunc("/slack/events", s.handleEvents)
	s.mux.HandleFunc("/", s.handleRoot)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	io.WriteString(w, "⚡️ intro-bot is running!")
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		logrus.WithError(err).Error("could not read request body")
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if s.cfg.RequestLogEnabled {
		dumpRequest(r, body)
	}

	if err := s.verifySignature(r.Header, body); err != nil {
		logrus.WithError(err).Warn("rejecting request with bad signature")
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	// Event-subscription URL verification arrives as JSON, everything the
	// bot actually handles arrives as a form-encoded interaction payload.
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		s.handleURLVerification(w, body)
		return
	}

	form, err := url.ParseQuery(string(body))
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	var cb slack.InteractionCallback
	if err := json.Unmarshal([]byte(form.Get("payload")), &cb); err != nil {
		logrus.WithError(err).Error("could not parse interaction payload")
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	// Acknowledge before any slow downstream work so Slack's interaction
	// deadline is never at the mercy of users.info or disk writes.
	w.WriteHeader(http.StatusOK)
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}

	s.handler.HandleInteraction(cb)
}

func (s *Server) verifySignature(header http.Header, body []byte) error {
	sv, err := slack.NewSecretsVerifier(header, s.cfg.SigningSecret)
	if err != nil {
		return err
	}
	if _, err := sv.Write(body); err != nil {
		return err
	}
	return sv.Ensure()
}

func (s *Server) handleURLVerification(w http.ResponseWriter, body []byte) {
	var ev struct {
		Type      string `json:"type"`
		Challenge string `json:"challenge"`
	}
	if err := json.Unmarshal(body, &ev); err != nil || ev.Type != "url_verification" {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	logrus.Debug("replied to Slack URL verification")
	w.Header().Set("Content-Type", "text/plain")
	io.WriteString(w, ev.Challenge)
}

var tokenRe = regexp.MustCompile(`xox[bpa]-[\w-]+`)

// dumpRequest logs the raw inbound request for debugging, with any Slack
// tokens in the body masked.
func dumpRequest(r *http.Request, body []byte) {
	logrus.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"body":   tokenRe.ReplaceAllString(string(body), "xox*-***"),
	}).Debug("dumping request data for debugging")
}
