package webhook

import "net/http"

// IncomingRequest is the transport-independent view of a webhook delivery.
// Body holds the bytes exactly as read from the wire.
type IncomingRequest struct {
	Method     string
	Path       string
	Body       []byte
	Headers    http.Header
	RemoteAddr string
}

// Stage is the furthest point a request reached in the pipeline.
type Stage string

const (
	StageReceived         Stage = "received"
	StageIPChecked        Stage = "ip_checked"
	StageSignatureChecked Stage = "signature_checked"
	StageClassified       Stage = "classified"
	StageDispatched       Stage = "dispatched"
)

// Outcome describes an acknowledged webhook.
type Outcome struct {
	Stage        Stage
	ClientIP     string
	Category     Category
	EventType    string
	CallbacksRun int
	Message      string
}
