package domain

import (
	"errors"
	"fmt"
)

// ErrorKind enumerates the three failure classes the presentation layer
// branches on. The set is closed: anything else normalizes to a network
// failure before it reaches the caller.
type ErrorKind int

const (
	KindNetworkFailure ErrorKind = iota
	KindClientRequest
	KindInternalServer
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetworkFailure:
		return "network_failure"
	case KindClientRequest:
		return "client_request"
	case KindInternalServer:
		return "internal_server"
	default:
		return "unknown"
	}
}

const (
	msgClientRequest  = "Client Request Exception: Client request may contain bad data."
	msgNetworkFailure = "Network Failure Exception: Client unable to connect to server."
	msgInternalServer = "Internal Server Exception: An issue occurred while processing this request."

	// StatusMalformedEnvelope is attached to locally detected envelope
	// violations, as opposed to statuses echoed from the upstream.
	StatusMalformedEnvelope = 406
)

// RequestError is the single error type of the taxonomy. Status is only
// meaningful for the client-request kind.
type RequestError struct {
	Kind   ErrorKind
	Status int
	msg    string
}

func (e *RequestError) Error() string {
	if e.Kind == KindClientRequest && e.Status != 0 {
		return fmt.Sprintf("%s (status %d)", e.msg, e.Status)
	}
	return e.msg
}

func NewNetworkFailure() *RequestError {
	return &RequestError{Kind: KindNetworkFailure, msg: msgNetworkFailure}
}

func NewClientRequestError(status int) *RequestError {
	return &RequestError{Kind: KindClientRequest, Status: status, msg: msgClientRequest}
}

func NewInternalServerError() *RequestError {
	return &RequestError{Kind: KindInternalServer, msg: msgInternalServer}
}

// ClassifyStatus maps a non-success HTTP status from the upstream export to
// a RequestError: 4xx keeps the offending status, 5xx is a server fault and
// everything else counts as a connectivity problem.
func ClassifyStatus(status int) *RequestError {
	switch {
	case status >= 400 && status < 500:
		return NewClientRequestError(status)
	case status >= 500:
		return NewInternalServerError()
	default:
		return NewNetworkFailure()
	}
}

// AsRequestError reports whether err belongs to the taxonomy.
func AsRequestError(err error) (*RequestError, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// NormalizeRequestError passes taxonomy errors through unchanged and folds
// any other error into a network failure.
func NormalizeRequestError(err error) *RequestError {
	if re, ok := AsRequestError(err); ok {
		return re
	}
	return NewNetworkFailure()
}
