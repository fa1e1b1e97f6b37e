package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	HeaderSignature   = "Walletpay-Signature"
	HeaderTimestamp   = "WalletPay-Timestamp"
	HeaderOriginalURI = "X-Original-URI"
)

// SignedRequest is the part of a request covered by the WalletPay signature.
type SignedRequest struct {
	Method    string
	Path      string
	Timestamp string
	Body      []byte
	Signature string
}

// NewSignedRequest extracts the signed fields from an incoming request. The
// path set by an upstream proxy in X-Original-URI wins over the local path.
func NewSignedRequest(req IncomingRequest) SignedRequest {
	path := req.Headers.Get(HeaderOriginalURI)
	if path == "" {
		path = req.Path
	}
	return SignedRequest{
		Method:    req.Method,
		Path:      path,
		Timestamp: req.Headers.Get(HeaderTimestamp),
		Body:      req.Body,
		Signature: req.Headers.Get(HeaderSignature),
	}
}

// SignatureVerifier checks the HMAC-SHA256 signature WalletPay attaches to
// every webhook, keyed with the store API key.
type SignatureVerifier struct {
	secret []byte
}

func NewSignatureVerifier(secret string) *SignatureVerifier {
	return &SignatureVerifier{secret: []byte(secret)}
}

// CanonicalMessage builds METHOD.PATH.TIMESTAMP.BASE64(BODY). The body must be
// the exact bytes received.
func CanonicalMessage(method, path, timestamp string, body []byte) string {
	var b strings.Builder
	encodedLen := base64.StdEncoding.EncodedLen(len(body))
	b.Grow(len(method) + len(path) + len(timestamp) + encodedLen + 3)
	b.WriteString(method)
	b.WriteByte('.')
	b.WriteString(path)
	b.WriteByte('.')
	b.WriteString(timestamp)
	b.WriteByte('.')
	b.WriteString(base64.StdEncoding.EncodeToString(body))
	return b.String()
}

// Sign returns the base64 encoded HMAC-SHA256 of the canonical message.
func (v *SignatureVerifier) Sign(method, path, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(CanonicalMessage(method, path, timestamp, body)))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify returns nil only when the provided signature matches exactly.
// Missing headers are a verification failure.
func (v *SignatureVerifier) Verify(req SignedRequest) error {
	if req.Signature == "" {
		return fmt.Errorf("%w: missing %s header", ErrInvalidSignature, HeaderSignature)
	}
	if req.Timestamp == "" {
		return fmt.Errorf("%w: missing %s header", ErrInvalidSignature, HeaderTimestamp)
	}

	expected := v.Sign(req.Method, req.Path, req.Timestamp, req.Body)
	if !hmac.Equal([]byte(expected), []byte(req.Signature)) {
		return fmt.Errorf("%w: digest mismatch", ErrInvalidSignature)
	}
	return nil
}
