package webhook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"walletpay/internal/domain/webhook"
	apperrors "walletpay/internal/shared/errors"
	"walletpay/internal/shared/goroutine"
	"walletpay/internal/shared/logger"
	"walletpay/internal/shared/utils"
)

// Dispatcher runs one webhook delivery through the pipeline:
// address admission, signature check, classification and callback fan-out.
// Gate failures come back as *apperrors.AppError wrapping the matching
// sentinel; callbacks never see a rejected request.
type Dispatcher struct {
	resolver        *AddressResolver
	verifier        *SignatureVerifier
	registry        *CallbackRegistry
	client          APIClient
	callbackTimeout time.Duration
	metrics         *Metrics // Optional
	logger          logger.Interface
}

func NewDispatcher(
	resolver *AddressResolver,
	verifier *SignatureVerifier,
	registry *CallbackRegistry,
	client APIClient,
	logger logger.Interface,
) *Dispatcher {
	return &Dispatcher{
		resolver: resolver,
		verifier: verifier,
		registry: registry,
		client:   client,
		logger:   logger,
	}
}

// SetCallbackTimeout bounds every callback invocation. Zero disables the bound.
func (d *Dispatcher) SetCallbackTimeout(timeout time.Duration) {
	d.callbackTimeout = timeout
}

// SetMetrics sets the metrics recorder (optional dependency injection)
func (d *Dispatcher) SetMetrics(metrics *Metrics) {
	d.metrics = metrics
}

func (d *Dispatcher) Dispatch(ctx context.Context, req IncomingRequest) (*Outcome, error) {
	outcome := &Outcome{Stage: StageReceived}

	clientIP, err := d.resolver.Resolve(req.Headers, req.RemoteAddr)
	if err != nil {
		d.metrics.observeRequest(OutcomeForbidden)
		return nil, apperrors.NewForbiddenError(DetailIPNotAllowed).WithCause(err)
	}
	outcome.ClientIP = clientIP
	outcome.Stage = StageIPChecked

	log := d.logger.With("client_ip", clientIP)
	log.Infow("incoming webhook", "method", req.Method, "path", req.Path, "body_size", len(req.Body))

	signed := NewSignedRequest(req)
	if err := d.verifier.Verify(signed); err != nil {
		log.Warnw("webhook signature rejected",
			"error", err,
			"signed_path", signed.Path,
			"timestamp", signed.Timestamp,
			"signature", utils.MaskSignature(signed.Signature),
		)
		d.metrics.observeRequest(OutcomeInvalidSignature)
		return nil, apperrors.NewBadRequestError(DetailInvalidSignature).WithCause(err)
	}
	outcome.Stage = StageSignatureChecked

	classification, err := Classify(req.Body)
	if err != nil {
		log.Warnw("webhook payload rejected", "error", err)
		d.metrics.observeRequest(OutcomeMalformedPayload)
		return nil, apperrors.NewBadRequestError(DetailMalformedPayload).WithCause(err)
	}
	outcome.Stage = StageClassified
	outcome.Category = classification.Category
	outcome.EventType = classification.Type.String()

	if classification.Category == CategoryUnrecognized {
		log.Infow("webhook acknowledged with unrecognized event type", "event_type", outcome.EventType)
		d.metrics.observeRequest(OutcomeUnrecognized)
		outcome.Message = MessageUnrecognized
		return outcome, nil
	}

	event := classification.Event
	log = log.With("event_id", event.EventID, "event_type", outcome.EventType, "order_id", event.Payload.OrderID)

	handlers := d.registry.Handlers(classification.Category)
	for i, handler := range handlers {
		started := time.Now()
		err := d.invoke(ctx, handler, event)
		d.metrics.observeCallback(classification.Category, time.Since(started), err)
		if err != nil {
			cbErr := &CallbackError{Category: classification.Category, Index: i, Err: err}
			log.Errorw("webhook callback failed, skipping remaining callbacks",
				"error", err,
				"callback_index", i,
				"callbacks_total", len(handlers),
			)
			d.metrics.observeRequest(OutcomeCallbackError)
			return nil, apperrors.NewInternalError(DetailCallbackFailed).WithCause(cbErr)
		}
		outcome.CallbacksRun++
	}
	outcome.Stage = StageDispatched

	if classification.Category == CategorySuccess {
		outcome.Message = MessageOrderPaid
		d.metrics.observeRequest(OutcomeSuccess)
	} else {
		outcome.Message = MessageOrderFailed
		d.metrics.observeRequest(OutcomeFailure)
	}

	log.Infow("webhook dispatched", "callbacks_run", outcome.CallbacksRun)
	return outcome, nil
}

// invoke runs one callback, converting panics into errors and enforcing the
// callback timeout when one is configured.
func (d *Dispatcher) invoke(ctx context.Context, handler Handler, event *webhook.Event) error {
	if d.callbackTimeout <= 0 {
		return goroutine.Call(func() error {
			return handler(ctx, event, d.client)
		})
	}

	cbCtx, cancel := context.WithTimeout(ctx, d.callbackTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- goroutine.Call(func() error {
			return handler(cbCtx, event, d.client)
		})
	}()

	select {
	case err := <-done:
		if err != nil && errors.Is(cbCtx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w after %s: %v", ErrCallbackTimeout, d.callbackTimeout, err)
		}
		return err
	case <-cbCtx.Done():
		if errors.Is(cbCtx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w after %s", ErrCallbackTimeout, d.callbackTimeout)
		}
		return cbCtx.Err()
	}
}
