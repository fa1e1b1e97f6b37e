package webhook

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletpay/internal/shared/logger"
)

func TestNewAllowedIPSet(t *testing.T) {
	set, err := NewAllowedIPSet([]string{"127.0.0.1", " 172.255.248.29 ", "::1"})
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains("172.255.248.29"))
	assert.True(t, set.Contains("::ffff:127.0.0.1"))
	assert.False(t, set.Contains("127.0.0.2"))
	assert.False(t, set.Contains("localhost"))
	assert.False(t, set.Contains(""))
	assert.Equal(t, []string{"127.0.0.1", "172.255.248.29", "::1"}, set.List())

	_, err = NewAllowedIPSet([]string{"300.1.1.1"})
	assert.Error(t, err)

	_, err = NewAllowedIPSet(nil)
	assert.Error(t, err)
}

func TestAddressResolver_Resolve(t *testing.T) {
	resolver := NewAddressResolver(MustAllowedIPSet(DefaultAllowedIPs...), logger.NewNop())

	tests := []struct {
		name       string
		forwarded  []string
		remoteAddr string
		want       string
		wantErr    bool
	}{
		{name: "allowed peer without header", remoteAddr: "127.0.0.1:40000", want: "127.0.0.1"},
		{name: "allowed peer without port", remoteAddr: "172.255.248.12", want: "172.255.248.12"},
		{name: "denied peer without header", remoteAddr: "10.0.0.5:40000", wantErr: true},
		{
			name:       "first allowed forwarded entry wins over peer",
			forwarded:  []string{"203.0.113.9, 172.255.248.12, 172.255.248.29"},
			remoteAddr: "10.0.0.5:40000",
			want:       "172.255.248.12",
		},
		{
			name:       "forwarded without allowed entry falls back to allowed peer",
			forwarded:  []string{"203.0.113.9, 198.51.100.1"},
			remoteAddr: "127.0.0.1:40000",
			want:       "127.0.0.1",
		},
		{
			name:       "forwarded without allowed entry and denied peer",
			forwarded:  []string{"203.0.113.9"},
			remoteAddr: "10.0.0.5:40000",
			wantErr:    true,
		},
		{name: "empty header is absent", forwarded: []string{""}, remoteAddr: "127.0.0.1:1", want: "127.0.0.1"},
		{name: "empty header does not pass denied peer", forwarded: []string{""}, remoteAddr: "10.0.0.5:1", wantErr: true},
		{
			name:       "malformed header falls through",
			forwarded:  []string{"not-an-ip,,, ;"},
			remoteAddr: "10.0.0.5:1",
			wantErr:    true,
		},
		{
			name:       "entries without space after comma are one candidate",
			forwarded:  []string{"10.9.9.9,127.0.0.1"},
			remoteAddr: "10.0.0.5:1",
			wantErr:    true,
		},
		{
			name:       "entries without space fall back to allowed peer",
			forwarded:  []string{"10.9.9.9,172.255.248.12"},
			remoteAddr: "127.0.0.1:1",
			want:       "127.0.0.1",
		},
		{
			name:       "padded entry is not trimmed",
			forwarded:  []string{"10.9.9.9,  127.0.0.1"},
			remoteAddr: "10.0.0.5:1",
			wantErr:    true,
		},
		{
			name:       "later header line is considered",
			forwarded:  []string{"203.0.113.9", "172.255.248.29"},
			remoteAddr: "10.0.0.5:1",
			want:       "172.255.248.29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := http.Header{}
			for _, v := range tt.forwarded {
				headers.Add(HeaderForwardedFor, v)
			}

			got, err := resolver.Resolve(headers, tt.remoteAddr)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrForbiddenOrigin)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeerIP(t *testing.T) {
	assert.Equal(t, "127.0.0.1", peerIP("127.0.0.1:9123"))
	assert.Equal(t, "::1", peerIP("[::1]:9123"))
	assert.Equal(t, "::1", peerIP("[::1]"))
	assert.Equal(t, "10.0.0.5", peerIP("10.0.0.5"))
}
