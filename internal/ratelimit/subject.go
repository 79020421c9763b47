package ratelimit

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"smartdomain/pkg/controller"
	"smartdomain/pkg/domain"
)

const (
	SessionCookie = controller.SessionCookie
	SessionHeader = controller.SessionHeader
)

// SubjectFromRequest extracts the client address and session of r. Without a
// session cookie or header the session falls back to a fingerprint of the user
// agent.
func SubjectFromRequest(r *http.Request, userID domain.UserID) Subject {
	ua := r.UserAgent()

	session := controller.GetSessionID(r)
	if session == "" {
		sum := sha256.Sum256([]byte(ua))
		session = "ip:" + hex.EncodeToString(sum[:])[:16]
	}

	return Subject{
		IP:        controller.GetClientIP(r),
		SessionID: session,
		UserAgent: ua,
		UserID:    userID,
	}
}
