package webhook

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"walletpay/internal/shared/logger"
)

const HeaderForwardedFor = "X-Forwarded-For"

// AddressResolver decides which client IP to trust for a request.
type AddressResolver struct {
	allowed *AllowedIPSet
	logger  logger.Interface
}

func NewAddressResolver(allowed *AllowedIPSet, logger logger.Interface) *AddressResolver {
	return &AddressResolver{
		allowed: allowed,
		logger:  logger,
	}
}

// Resolve returns the first X-Forwarded-For entry that is in the allowed set.
// When no entry matches, or the header is absent or empty, the direct peer
// address must itself be allowed; otherwise ErrForbiddenOrigin is returned.
func (r *AddressResolver) Resolve(headers http.Header, remoteAddr string) (string, error) {
	if ip, ok := r.fromForwardedFor(headers); ok {
		r.logger.Infow("client ip resolved from forwarded header", "client_ip", ip)
		return ip, nil
	}

	peer := peerIP(remoteAddr)
	if !r.allowed.Contains(peer) {
		r.logger.Warnw("client ip not allowed", "client_ip", peer)
		return "", fmt.Errorf("%w: %s", ErrForbiddenOrigin, peer)
	}

	r.logger.Infow("client ip resolved from peer address", "client_ip", peer)
	return peer, nil
}

// forwardedSeparator splits X-Forwarded-For entries. Entries joined without
// the space stay one candidate, which never parses as an address.
const forwardedSeparator = ", "

func (r *AddressResolver) fromForwardedFor(headers http.Header) (string, bool) {
	for _, value := range headers.Values(HeaderForwardedFor) {
		for _, candidate := range strings.Split(value, forwardedSeparator) {
			if candidate == "" {
				continue
			}
			if r.allowed.Contains(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}

// peerIP strips the port from a net/http RemoteAddr.
func peerIP(remoteAddr string) string {
	remoteAddr = strings.TrimSpace(remoteAddr)
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return strings.Trim(remoteAddr, "[]")
}
