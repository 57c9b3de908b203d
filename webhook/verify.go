package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SignatureHeader is the HTTP header Meta signs webhook deliveries with.
const SignatureHeader = "X-Hub-Signature-256"

const signaturePrefix = "sha256="

// VerifySignature checks the X-Hub-Signature-256 header against an
// HMAC-SHA256 of the raw request body keyed with the app secret.
//
// It must be fed the exact bytes received on the wire: re-serializing a parsed
// payload is not guaranteed to be byte-identical, so verification always runs
// before any JSON decoding. The comparison is constant-time and the function
// only ever returns a boolean, missing or malformed headers are simply false.
func VerifySignature(appSecret, rawBody []byte, signatureHeader string) bool {
	if signatureHeader == "" || !strings.HasPrefix(signatureHeader, signaturePrefix) {
		return false
	}

	received, err := hex.DecodeString(strings.TrimPrefix(signatureHeader, signaturePrefix))
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, appSecret)
	mac.Write(rawBody)

	return hmac.Equal(mac.Sum(nil), received)
}
