// Package v1handler implements the v1 HTTP API: bracket lookups, simulations
// and the bracket distribution.
package v1handler

import (
	"context"
	"errors"
	"flooow/internal/simulator"
	"flooow/pkg/logger"
	"flooow/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the services the handlers call.
type Deps struct {
	Simulator simulator.Simulator
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ErrorBody is the JSON payload of every error response.
type ErrorBody struct {
	Code    string
	Message string
}

// ErrorResponse pairs an ErrorBody with its HTTP status code.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

var kindStatus = map[serrors.Kind]int{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     http.StatusNotFound,
	serrors.ErrBadRequest:   http.StatusBadRequest,
	serrors.ErrUnauthorized: http.StatusUnauthorized,
	serrors.ErrForbidden:    http.StatusForbidden,
	serrors.ErrConflict:     http.StatusConflict,
	serrors.ErrTimeout:      http.StatusGatewayTimeout,
	serrors.ErrUnavailable:  http.StatusServiceUnavailable,
	serrors.ErrRateLimited:  http.StatusTooManyRequests,

	serrors.ErrMethodNotAllowed: http.StatusMethodNotAllowed,
}

var kindMessage = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrUnauthorized: "unauthorized",
	serrors.ErrForbidden:    "forbidden",
	serrors.ErrConflict:     "conflict",
	serrors.ErrTimeout:      "request timed out",
	serrors.ErrUnavailable:  "service unavailable",
	serrors.ErrRateLimited:  "too many requests",

	serrors.ErrMethodNotAllowed: "method not allowed",
}

// NewError converts err into an ErrorResponse. Semantic errors keep their
// kind and message; anything else is logged and reported as an internal error
// without leaking details.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) *ErrorResponse {
	if errors.Is(err, context.DeadlineExceeded) && serrors.KindOf(err) == nil {
		err = serrors.Wrap(serrors.ErrTimeout, err, "")
	}

	kind := serrors.KindOf(err)
	status, ok := kindStatus[kind]
	if !ok {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorBody{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	msg := serrors.MessageOf(err)
	if msg == "" {
		msg = kindMessage[kind]
	}
	if status >= http.StatusInternalServerError {
		logger.Warn(ctx, "request failed", zap.Error(err))
	}

	return &ErrorResponse{
		StatusCode: status,
		Response: ErrorBody{
			Code:    kind.Error(),
			Message: msg,
		},
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := newError(r.Context(), err)

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(res.Response.Code) })
		e.Field("message", func(e *jx.Encoder) { e.Str(res.Response.Message) })
	})
	writeBytes(r.Context(), w, res.StatusCode, e.Bytes())
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, encode func(e *jx.Encoder)) {
	var e jx.Encoder
	encode(&e)
	writeBytes(r.Context(), w, status, e.Bytes())
}

func writeBytes(ctx context.Context, w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.Debug(ctx, "could not write response", zap.Error(err))
	}
}
