package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"testing"
	"time"
)

func signBody(secret, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("v0:" + timestamp + ":"))
	mac.Write(body)
	return "v0=" + hex.EncodeToString(mac.Sum(nil))
}

func TestValidSlackSignature(t *testing.T) {
	const secret = "8f742231b10e8888abcd99yyyzzz85a5"
	now := time.Unix(1700000000, 0)
	ts := strconv.FormatInt(now.Unix(), 10)
	body := []byte(`{"type":"event_callback","event":{"type":"message"}}`)

	if !ValidSlackSignature(secret, ts, body, signBody(secret, ts, body), now) {
		t.Error("valid signature rejected")
	}

	if ValidSlackSignature(secret, ts, body, signBody("wrong-secret", ts, body), now) {
		t.Error("signature from wrong secret accepted")
	}

	if ValidSlackSignature(secret, ts, []byte(`{"tampered":true}`), signBody(secret, ts, body), now) {
		t.Error("signature over different body accepted")
	}

	if ValidSlackSignature(secret, "not-a-number", body, signBody(secret, "not-a-number", body), now) {
		t.Error("unparseable timestamp accepted")
	}
}

func TestValidSlackSignatureRejectsReplay(t *testing.T) {
	const secret = "secret"
	now := time.Unix(1700000000, 0)
	body := []byte(`{}`)

	stale := strconv.FormatInt(now.Add(-6*time.Minute).Unix(), 10)
	if ValidSlackSignature(secret, stale, body, signBody(secret, stale, body), now) {
		t.Error("six minute old delivery accepted")
	}

	fresh := strconv.FormatInt(now.Add(-4*time.Minute).Unix(), 10)
	if !ValidSlackSignature(secret, fresh, body, signBody(secret, fresh, body), now) {
		t.Error("four minute old delivery rejected")
	}

	future := strconv.FormatInt(now.Add(6*time.Minute).Unix(), 10)
	if ValidSlackSignature(secret, future, body, signBody(secret, future, body), now) {
		t.Error("far-future timestamp accepted")
	}
}
