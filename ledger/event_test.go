package ledger

import "testing"

func TestEligibility(t *testing.T) {
	const channel = "C0GYM"

	cases := []struct {
		name       string
		event      SlackEvent
		wantReason string
		wantURL    string
	}{
		{
			name: "accepted with image",
			event: SlackEvent{
				Type:    "message",
				Channel: channel,
				User:    "U1",
				Files:   []SlackFile{{Mimetype: "image/jpeg", URLPrivate: "https://files/a.jpg"}},
			},
			wantURL: "https://files/a.jpg",
		},
		{
			name: "first image wins over later ones",
			event: SlackEvent{
				Type:    "message",
				Channel: channel,
				Files: []SlackFile{
					{Mimetype: "application/pdf", URLPrivate: "https://files/doc.pdf"},
					{Mimetype: "image/png", URLPrivate: "https://files/first.png"},
					{Mimetype: "image/jpeg", URLPrivate: "https://files/second.jpg"},
				},
			},
			wantURL: "https://files/first.png",
		},
		{
			name:       "wrong channel",
			event:      SlackEvent{Type: "message", Channel: "C0OTHER", Files: []SlackFile{{Mimetype: "image/png"}}},
			wantReason: ReasonWrongChannel,
		},
		{
			name:       "no attachments",
			event:      SlackEvent{Type: "message", Channel: channel},
			wantReason: ReasonNoImage,
		},
		{
			name:       "non-image attachments only",
			event:      SlackEvent{Type: "message", Channel: channel, Files: []SlackFile{{Mimetype: "video/mp4"}}},
			wantReason: ReasonNoImage,
		},
		{
			name:       "not a message event",
			event:      SlackEvent{Type: "reaction_added", Channel: channel},
			wantReason: ReasonNotMessage,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			file, reason := eligibility(tc.event, channel)
			if reason != tc.wantReason {
				t.Errorf("reason = %q, want %q", reason, tc.wantReason)
			}
			if tc.wantReason == "" && file.URLPrivate != tc.wantURL {
				t.Errorf("image url = %q, want %q", file.URLPrivate, tc.wantURL)
			}
		})
	}
}

func TestMessageRef(t *testing.T) {
	withID := SlackEvent{ClientMsgID: "abc-123", Ts: "1700000000.000100"}
	if got := withID.MessageRef(); got != "abc-123" {
		t.Errorf("MessageRef = %q, want client_msg_id", got)
	}

	withoutID := SlackEvent{Ts: "1700000000.000100"}
	if got := withoutID.MessageRef(); got != "1700000000.000100" {
		t.Errorf("MessageRef = %q, want ts fallback", got)
	}
}
