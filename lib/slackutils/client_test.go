package slackutils

import (
	"testing"

	"github.com/slack-go/slack"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		user *slack.User
		want string
	}{
		{"nil user", nil, ""},
		{"real name wins", &slack.User{ID: "U1", Name: "alice", RealName: "Alice Example"}, "Alice Example"},
		{
			"profile display name next",
			&slack.User{ID: "U1", Name: "alice", Profile: slack.UserProfile{DisplayName: "ally"}},
			"ally",
		},
		{"handle next", &slack.User{ID: "U1", Name: "alice"}, "alice"},
		{"id as last resort", &slack.User{ID: "U1"}, "U1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.user); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
