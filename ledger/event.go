package ledger

import "strings"

// SlackFile is one attachment on an inbound Slack message.
type SlackFile struct {
	Mimetype   string `json:"mimetype"`
	URLPrivate string `json:"url_private"`
}

// SlackEvent is the inner message event of an event_callback envelope.
type SlackEvent struct {
	Type        string      `json:"type"`
	Channel     string      `json:"channel"`
	User        string      `json:"user"`
	Ts          string      `json:"ts"`
	ClientMsgID string      `json:"client_msg_id"`
	Files       []SlackFile `json:"files"`
}

// SlackCallback is the outer envelope Slack posts to the events URL.
type SlackCallback struct {
	Type      string     `json:"type"`
	Challenge string     `json:"challenge"`
	Event     SlackEvent `json:"event"`
}

// MessageRef returns the stable external reference for the message, falling
// back to the channel timestamp when no client_msg_id is present.
func (e SlackEvent) MessageRef() string {
	if e.ClientMsgID != "" {
		return e.ClientMsgID
	}
	return e.Ts
}

// Rejection reasons for ineligible events. These are expected,
// high-frequency, non-exceptional outcomes, not errors.
const (
	ReasonNotMessage    = "not a message event"
	ReasonWrongChannel  = "wrong channel"
	ReasonNoImage       = "no image attachment"
	ReasonUnknownSender = "unknown sender"
)

// eligibility applies the pure pre-checks of the ingestion contract: the
// event must be a message in the configured check-in channel carrying at
// least one image attachment. It returns the image to credit and an empty
// reason on success.
func eligibility(ev SlackEvent, channelID string) (SlackFile, string) {
	if ev.Type != "message" {
		return SlackFile{}, ReasonNotMessage
	}
	if ev.Channel != channelID {
		return SlackFile{}, ReasonWrongChannel
	}
	for _, f := range ev.Files {
		if strings.HasPrefix(f.Mimetype, "image/") {
			return f, ""
		}
	}
	return SlackFile{}, ReasonNoImage
}
