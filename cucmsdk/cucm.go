/* SPDX-License-Identifier: MPL-2.0
 * Copyright 2026 CUCM Community
 *
 * See CONTRIBUTORS.md for full contributor list.
 */

// Package cucmsdk holds the core session shared by every CUCM service
// facade: connection configuration, HTTP Basic authentication, the SOAP
// envelope codec, and structured error types.
package cucmsdk

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NamespaceAstSOAP is the namespace shared by the CUCM serviceability
// SOAP APIs (Control Center, Log Collection, PerfMon, RIS, CDRonDemand).
const NamespaceAstSOAP = "http://schemas.cisco.com/ast/soap"

// Logger is the interface for SDK logging. Any logger that implements Printf
// (such as the standard library's *log.Logger) can be used.
type Logger interface {
	Printf(format string, v ...any)
}

// Plugin represents a CUCM service facade registered with the client.
type Plugin interface {
	// Name returns the name of the plugin
	Name() string
}

// Client is the authenticated session against one CUCM node. All service
// facades share a single Client; each call is a synchronous SOAP request
// with no state carried between calls.
type Client struct {
	// HTTP client used to communicate with CUCM
	httpClient *http.Client

	// Base URL for SOAP requests (https://<host>:<port>)
	BaseURL *url.URL

	// HTTP Basic credentials (an application user with the
	// "Standard AXL API Access" or serviceability roles)
	username string
	password string

	// Plugins registered with the client
	plugins map[string]Plugin

	// Configuration for the client
	Config *Config

	// Logger for SDK operations
	logger Logger
}

// GetHTTPClient returns the HTTP client used for SOAP requests
func (c *Client) GetHTTPClient() *http.Client {
	return c.httpClient
}

// GetLogger returns the logger used by the SDK.
func (c *Client) GetLogger() Logger {
	return c.logger
}

// Username returns the username used for HTTP Basic authentication.
func (c *Client) Username() string {
	return c.username
}

// Config holds the configuration for the CUCM client
type Config struct {
	// BaseURL overrides the URL derived from Host and Port. Mainly
	// useful for tests and for nodes behind a reverse proxy.
	BaseURL string

	// Port is the Tomcat HTTPS port the serviceability APIs listen on.
	Port int

	// Timeout for SOAP requests
	Timeout time.Duration

	// InsecureSkipVerify disables TLS certificate verification. CUCM
	// nodes commonly run self-signed Tomcat certificates; prefer
	// installing the Tomcat certificate and leaving this false.
	InsecureSkipVerify bool

	// Default headers to include in SOAP requests
	DefaultHeaders map[string]string

	// Custom HTTP client to use instead of the default one
	// If nil, a default client will be created with the specified Timeout
	HttpClient *http.Client

	// Logger is the logger for SDK operations. If nil, the standard
	// library's default logger (log.Default()) is used.
	Logger Logger
}

// DefaultConfig returns a default configuration for the CUCM client
func DefaultConfig() *Config {
	return &Config{
		Port:           8443,
		Timeout:        10 * time.Second,
		DefaultHeaders: make(map[string]string),
		HttpClient:     nil,
	}
}

// NewClient creates a new CUCM client for the given node and credentials
// with optional configuration.
func NewClient(host, username, password string, config *Config) (*Client, error) {
	if host == "" {
		return nil, fmt.Errorf("host cannot be empty")
	}
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password cannot be empty")
	}

	if config == nil {
		config = DefaultConfig()
	}
	if config.Port == 0 {
		config.Port = 8443
	}

	rawURL := config.BaseURL
	if rawURL == "" {
		rawURL = fmt.Sprintf("https://%s:%d", host, config.Port)
	}
	baseURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	// Create HTTP client - either use the provided custom client or create a default one
	httpClient := config.HttpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: config.Timeout,
		}
		if config.InsecureSkipVerify {
			httpClient.Transport = &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			}
		}
	}

	// Set up logger - use provided logger or default
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}

	client := &Client{
		httpClient: httpClient,
		BaseURL:    baseURL,
		username:   username,
		password:   password,
		plugins:    make(map[string]Plugin),
		logger:     logger,
		Config:     config,
	}

	return client, nil
}

// RegisterPlugin registers a plugin with the client
func (c *Client) RegisterPlugin(plugin Plugin) {
	c.plugins[plugin.Name()] = plugin
}

// GetPlugin returns a plugin by name
func (c *Client) GetPlugin(name string) (Plugin, bool) {
	plugin, ok := c.plugins[name]
	return plugin, ok
}

// Call performs a SOAP request against the service at servicePath and
// decodes the response body into response. A SOAP fault in the reply is
// returned as the error value; there are no retries.
func (c *Client) Call(servicePath, soapAction string, request, response interface{}) error {
	return c.CallWithContext(context.Background(), servicePath, soapAction, request, response)
}

// CallWithContext performs a SOAP request with the given context. The
// context can be used for per-request timeouts and cancellation.
func (c *Client) CallWithContext(ctx context.Context, servicePath, soapAction string, request, response interface{}) error {
	body, resp, err := c.post(ctx, servicePath, soapAction, request)
	if err != nil {
		return err
	}

	// Faults arrive with a 500 status; anything else non-2xx without a
	// parsable envelope is a transport-level failure.
	if resp.StatusCode >= 400 {
		if fault := extractFault(body); fault != nil {
			return fault
		}
		return NewHTTPError(resp, body)
	}

	if len(body) == 0 {
		return nil
	}

	respEnvelope := new(Envelope)
	respEnvelope.Body = Body{Content: response}
	if err := xml.Unmarshal(body, respEnvelope); err != nil {
		return fmt.Errorf("decoding SOAP response: %w", err)
	}
	if respEnvelope.Body.Fault != nil {
		return respEnvelope.Body.Fault
	}

	return nil
}

// CallRaw performs a SOAP request and returns the raw response body
// without envelope decoding. The DIME file retrieval service replies with
// a non-XML body, which regular Call cannot decode. A SOAP fault or error
// status is still surfaced as an error.
func (c *Client) CallRaw(ctx context.Context, servicePath, soapAction string, request interface{}) ([]byte, *http.Response, error) {
	body, resp, err := c.post(ctx, servicePath, soapAction, request)
	if err != nil {
		return nil, nil, err
	}

	if resp.StatusCode >= 400 {
		if fault := extractFault(body); fault != nil {
			return nil, resp, fault
		}
		return nil, resp, NewHTTPError(resp, body)
	}

	// A fault can still come back 200 with an XML envelope.
	if strings.Contains(resp.Header.Get("Content-Type"), "xml") {
		if fault := extractFault(body); fault != nil {
			return nil, resp, fault
		}
	}

	return body, resp, nil
}

// post marshals request into a SOAP envelope and performs a single POST.
// The caller owns interpretation of the returned body.
func (c *Client) post(ctx context.Context, servicePath, soapAction string, request interface{}) ([]byte, *http.Response, error) {
	u, err := url.Parse(c.BaseURL.String() + "/" + strings.TrimPrefix(servicePath, "/"))
	if err != nil {
		return nil, nil, err
	}

	envelope := Envelope{
		Body: Body{Content: request},
	}

	buffer := new(bytes.Buffer)
	buffer.WriteString(xml.Header)
	encoder := xml.NewEncoder(buffer)
	if err := encoder.Encode(envelope); err != nil {
		return nil, nil, fmt.Errorf("encoding SOAP request: %w", err)
	}
	if err := encoder.Flush(); err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), buffer)
	if err != nil {
		return nil, nil, err
	}

	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Content-Type", `text/xml; charset="utf-8"`)
	if soapAction != "" {
		req.Header.Set("SOAPAction", soapAction)
	}

	// Add default headers
	for k, v := range c.Config.DefaultHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp, err
	}

	return body, resp, nil
}

// extractFault attempts to decode body as a SOAP envelope carrying a
// fault. It returns nil when body is not such an envelope.
func extractFault(body []byte) *Fault {
	if len(body) == 0 {
		return nil
	}
	envelope := new(Envelope)
	if err := xml.Unmarshal(body, envelope); err != nil {
		return nil
	}
	return envelope.Body.Fault
}

// IsUUID reports whether s is a well-formed UUID. CUCM identifies most
// configuration objects by pkid, a UUID the AXL responses return either
// bare or wrapped in braces.
func IsUUID(s string) bool {
	s = strings.TrimPrefix(strings.TrimSuffix(s, "}"), "{")
	_, err := uuid.Parse(s)
	return err == nil
}
