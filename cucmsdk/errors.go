/* SPDX-License-Identifier: MPL-2.0
 * Copyright 2026 CUCM Community
 *
 * See CONTRIBUTORS.md for full contributor list.
 */

package cucmsdk

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is returned when CUCM replies with a non-2xx status that does
// not carry a SOAP fault envelope (unauthorized, service not activated,
// Tomcat-level failures). Remote faults are returned as *Fault instead.
type HTTPError struct {
	// StatusCode is the HTTP status code from the response.
	StatusCode int

	// Status is the HTTP status line (e.g., "401 Unauthorized").
	Status string

	// RawBody is the raw response body bytes, preserved for debugging.
	RawBody []byte
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: %s", e.Status)
}

// NewHTTPError creates an HTTPError from an HTTP response and its body.
func NewHTTPError(resp *http.Response, body []byte) error {
	return &HTTPError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		RawBody:    body,
	}
}

// IsFault reports whether err is a remote SOAP fault.
func IsFault(err error) bool {
	var f *Fault
	return errors.As(err, &f)
}

// FaultFrom returns the SOAP fault carried by err, or nil.
func FaultFrom(err error) *Fault {
	var f *Fault
	if errors.As(err, &f) {
		return f
	}
	return nil
}

// IsAuthError reports whether err is an authentication failure (HTTP 401).
// CUCM also answers 403 when the user lacks the serviceability roles.
func IsAuthError(err error) bool {
	var e *HTTPError
	if !errors.As(err, &e) {
		return false
	}
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsServerError reports whether err is an HTTP 5xx without a SOAP fault.
func IsServerError(err error) bool {
	var e *HTTPError
	if !errors.As(err, &e) {
		return false
	}
	return e.StatusCode >= 500
}
