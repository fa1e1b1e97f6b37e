package utils

import "strings"

// MaskSecret keeps the first and last few characters of a secret for logs.
// Example: "AbCdEfGhIjKlMnOp" -> "AbCd***MnOp"
func MaskSecret(secret string) string {
	secret = strings.TrimSpace(secret)
	if len(secret) <= 8 {
		return "***"
	}
	return secret[:4] + "***" + secret[len(secret)-4:]
}

// MaskSignature shortens a signature to a prefix that is enough to correlate logs.
func MaskSignature(signature string) string {
	if len(signature) <= 6 {
		return "***"
	}
	return signature[:6] + "***"
}
