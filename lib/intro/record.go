package intro

import "encoding/json"

// IntroductionRecord is one user's registered self-introduction. The JSON
// field names are the on-disk layout of the store file and must not change.
type IntroductionRecord struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Text      string `json:"text"`
	ChannelID string `json:"channel_id"`
	Timestamp string `json:"ts"`
}

// Metadata is the correlation state round-tripped through the register
// modal's private_metadata. It carries just enough of the originating
// shortcut to build the replacement record on submission: the message
// author, the message itself, and where to report errors.
type Metadata struct {
	UserID      string `json:"user_id"`
	ChannelID   string `json:"channel_id"`
	Timestamp   string `json:"ts"`
	Text        string `json:"text"`
	ResponseURL string `json:"response_url"`
}

func (m Metadata) Encode() (string, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func DecodeMetadata(raw string) (Metadata, error) {
	var m Metadata
	err := json.Unmarshal([]byte(raw), &m)
	return m, err
}

// BuildRecord assembles the record that fully replaces any prior entry for
// the target user. Every field comes from the current submission; nothing
// is merged from an existing record.
func BuildRecord(meta Metadata, displayName string) IntroductionRecord {
	return IntroductionRecord{
		UserID:    meta.UserID,
		UserName:  displayName,
		Text:      meta.Text,
		ChannelID: meta.ChannelID,
		Timestamp: meta.Timestamp,
	}
}
