package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must prefix keys by purpose so unrelated values cannot collide.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// RenderFingerprint identifies one render of rootID in format for a given
// payload digest. Equal inputs always yield the same id, which lets logs
// and callers correlate repeated renders.
func RenderFingerprint(pageID, rootID, format, digest string) uuid.UUID {
	return UUID("go-pagetree:render:" + strings.ToLower(strings.TrimSpace(pageID)) + ":" +
		strings.ToLower(strings.TrimSpace(rootID)) + ":" +
		strings.ToLower(strings.TrimSpace(format)) + ":" + strings.TrimSpace(digest))
}
