/* SPDX-License-Identifier: MPL-2.0
 * Copyright 2026 CUCM Community
 *
 * See CONTRIBUTORS.md for full contributor list.
 */

// Package perfmon wraps the CUCM Performance Monitoring SOAP API. Counter
// data is collected either in a single transaction (CollectCounterData)
// or session-based: OpenSession, AddCounter, CollectSessionData repeated
// as needed, CloseSession.
package perfmon

import (
	"encoding/xml"
	"fmt"

	"github.com/cucmcommunity/cucm-go-sdk/cucmsdk"
)

// Config holds the configuration for the Perfmon plugin
type Config struct {
	// ServicePath is the PerfmonService endpoint path.
	ServicePath string
}

// DefaultConfig returns the default configuration for the Perfmon plugin
func DefaultConfig() *Config {
	return &Config{
		ServicePath: "perfmonservice2/services/PerfmonService",
	}
}

// Client is the PerfMon API client
type Client struct {
	cucmClient *cucmsdk.Client
	config     *Config
}

// New creates a new Perfmon plugin
func New(cucmClient *cucmsdk.Client, config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	return &Client{
		cucmClient: cucmClient,
		config:     config,
	}
}

// Name returns the name of the plugin
func (c *Client) Name() string {
	return "perfmon"
}

// SessionHandle identifies one session-based collection on the server.
type SessionHandle string

// CounterPath builds the counter name format the service expects:
// \\host\object\counter, or \\host\object(instance)\counter for
// multi-instance objects.
func CounterPath(host, object, instance, counter string) string {
	if instance != "" {
		return fmt.Sprintf(`\\%s\%s(%s)\%s`, host, object, instance, counter)
	}
	return fmt.Sprintf(`\\%s\%s\%s`, host, object, counter)
}

// CounterValue is one collected counter sample.
type CounterValue struct {
	Name    string `xml:"Name"`
	Value   int64  `xml:"Value"`
	CStatus int    `xml:"CStatus"`
}

// ObjectInfo describes one PerfMon object and its counters.
type ObjectInfo struct {
	Name          string   `xml:"Name"`
	MultiInstance bool     `xml:"MultiInstance"`
	Counters      []string `xml:"ArrayOfCounter>item>Name"`
}

// InstanceInfo names one live instance of a PerfMon object.
type InstanceInfo struct {
	Name string `xml:"Name"`
}

// arrayOfCounter nests counter names the way the schema wants them.
type arrayOfCounter struct {
	Counter []counterName `xml:"Counter"`
}

type counterName struct {
	Name string `xml:"Name"`
}

func makeCounters(counters []string) arrayOfCounter {
	arr := arrayOfCounter{Counter: make([]counterName, 0, len(counters))}
	for _, name := range counters {
		arr.Counter = append(arr.Counter, counterName{Name: name})
	}
	return arr
}

type openSessionRequest struct {
	XMLName xml.Name `xml:"http://schemas.cisco.com/ast/soap perfmonOpenSession"`
}

type openSessionResponse struct {
	XMLName xml.Name `xml:"http://schemas.cisco.com/ast/soap perfmonOpenSessionResponse"`
	Handle  string   `xml:"perfmonOpenSessionReturn"`
}

// OpenSession obtains a session handle for session-based counter
// collection. Close it with CloseSession when done.
func (c *Client) OpenSession() (SessionHandle, error) {
	var response openSessionResponse
	err := c.cucmClient.Call(c.config.ServicePath, "perfmonOpenSession",
		&openSessionRequest{}, &response)
	if err != nil {
		return "", err
	}
	return SessionHandle(response.Handle), nil
}

type addCounterRequest struct {
	XMLName        xml.Name       `xml:"http://schemas.cisco.com/ast/soap perfmonAddCounter"`
	SessionHandle  string         `xml:"SessionHandle"`
	ArrayOfCounter arrayOfCounter `xml:"ArrayOfCounter"`
}

type addCounterResponse struct {
	XMLName xml.Name `xml:"http://schemas.cisco.com/ast/soap perfmonAddCounterResponse"`
}

// AddCounter adds counters to an existing session handle. Counter names
// come from ListCounter and ListInstance; build them with CounterPath.
func (c *Client) AddCounter(handle SessionHandle, counters []string) error {
	if len(counters) == 0 {
		return fmt.Errorf("counter list cannot be empty")
	}

	request := &addCounterRequest{
		SessionHandle:  string(handle),
		ArrayOfCounter: makeCounters(counters),
	}
	var response addCounterResponse
	return c.cucmClient.Call(c.config.ServicePath, "perfmonAddCounter", request, &response)
}

type removeCounterRequest struct {
	XMLName        xml.Name       `xml:"http://schemas.cisco.com/ast/soap perfmonRemoveCounter"`
	SessionHandle  string         `xml:"SessionHandle"`
	ArrayOfCounter arrayOfCounter `xml:"ArrayOfCounter"`
}

type removeCounterResponse struct {
	XMLName xml.Name `xml:"http://schemas.cisco.com/ast/soap perfmonRemoveCounterResponse"`
}

// RemoveCounter removes counters from an existing session handle.
func (c *Client) RemoveCounter(handle SessionHandle, counters []string) error {
	if len(counters) == 0 {
		return fmt.Errorf("counter list cannot be empty")
	}

	request := &removeCounterRequest{
		SessionHandle:  string(handle),
		ArrayOfCounter: makeCounters(counters),
	}
	var response removeCounterResponse
	return c.cucmClient.Call(c.config.ServicePath, "perfmonRemoveCounter", request, &response)
}

type collectSessionDataRequest struct {
	XMLName       xml.Name `xml:"http://schemas.cisco.com/ast/soap perfmonCollectSessionData"`
	SessionHandle string   `xml:"SessionHandle"`
}

type collectSessionDataResponse struct {
	XMLName  xml.Name       `xml:"http://schemas.cisco.com/ast/soap perfmonCollectSessionDataResponse"`
	Counters []CounterValue `xml:"perfmonCollectSessionDataReturn"`
}

// CollectSessionData collects the current values of every counter added
// to the session handle.
func (c *Client) CollectSessionData(handle SessionHandle) ([]CounterValue, error) {
	var response collectSessionDataResponse
	err := c.cucmClient.Call(c.config.ServicePath, "perfmonCollectSessionData",
		&collectSessionDataRequest{SessionHandle: string(handle)}, &response)
	if err != nil {
		return nil, err
	}
	return response.Counters, nil
}

type closeSessionRequest struct {
	XMLName       xml.Name `xml:"http://schemas.cisco.com/ast/soap perfmonCloseSession"`
	SessionHandle string   `xml:"SessionHandle"`
}

type closeSessionResponse struct {
	XMLName xml.Name `xml:"http://schemas.cisco.com/ast/soap perfmonCloseSessionResponse"`
}

// CloseSession closes a session handle opened with OpenSession.
func (c *Client) CloseSession(handle SessionHandle) error {
	var response closeSessionResponse
	return c.cucmClient.Call(c.config.ServicePath, "perfmonCloseSession",
		&closeSessionRequest{SessionHandle: string(handle)}, &response)
}

type collectCounterDataRequest struct {
	XMLName xml.Name `xml:"http://schemas.cisco.com/ast/soap perfmonCollectCounterData"`
	Host    string   `xml:"Host"`
	Object  string   `xml:"Object"`
}

type collectCounterDataResponse struct {
	XMLName  xml.Name       `xml:"http://schemas.cisco.com/ast/soap perfmonCollectCounterDataResponse"`
	Counters []CounterValue `xml:"perfmonCollectCounterDataReturn"`
}

// CollectCounterData returns the values of every counter of one object
// on host in a single transaction. For multi-instance objects, data for
// all instances is returned.
func (c *Client) CollectCounterData(host, object string) ([]CounterValue, error) {
	if host == "" || object == "" {
		return nil, fmt.Errorf("host and object are required")
	}

	var response collectCounterDataResponse
	err := c.cucmClient.Call(c.config.ServicePath, "perfmonCollectCounterData",
		&collectCounterDataRequest{Host: host, Object: object}, &response)
	if err != nil {
		return nil, err
	}
	return response.Counters, nil
}

type listCounterRequest struct {
	XMLName xml.Name `xml:"http://schemas.cisco.com/ast/soap perfmonListCounter"`
	Host    string   `xml:"Host"`
}

type listCounterResponse struct {
	XMLName xml.Name     `xml:"http://schemas.cisco.com/ast/soap perfmonListCounterResponse"`
	Objects []ObjectInfo `xml:"perfmonListCounterReturn"`
}

// ListCounter returns the PerfMon objects and counters available on host.
func (c *Client) ListCounter(host string) ([]ObjectInfo, error) {
	if host == "" {
		return nil, fmt.Errorf("host is required")
	}

	var response listCounterResponse
	err := c.cucmClient.Call(c.config.ServicePath, "perfmonListCounter",
		&listCounterRequest{Host: host}, &response)
	if err != nil {
		return nil, err
	}
	return response.Objects, nil
}

type listInstanceRequest struct {
	XMLName xml.Name `xml:"http://schemas.cisco.com/ast/soap perfmonListInstance"`
	Host    string   `xml:"Host"`
	Object  string   `xml:"Object"`
}

type listInstanceResponse struct {
	XMLName   xml.Name       `xml:"http://schemas.cisco.com/ast/soap perfmonListInstanceResponse"`
	Instances []InstanceInfo `xml:"perfmonListInstanceReturn"`
}

// ListInstance returns the current instances of one PerfMon object on
// host. Instances change dynamically; this is the most recent list.
func (c *Client) ListInstance(host, object string) ([]InstanceInfo, error) {
	if host == "" || object == "" {
		return nil, fmt.Errorf("host and object are required")
	}

	var response listInstanceResponse
	err := c.cucmClient.Call(c.config.ServicePath, "perfmonListInstance",
		&listInstanceRequest{Host: host, Object: object}, &response)
	if err != nil {
		return nil, err
	}
	return response.Instances, nil
}

type queryCounterDescriptionRequest struct {
	XMLName xml.Name `xml:"http://schemas.cisco.com/ast/soap perfmonQueryCounterDescription"`
	Counter string   `xml:"Counter"`
}

type queryCounterDescriptionResponse struct {
	XMLName     xml.Name `xml:"http://schemas.cisco.com/ast/soap perfmonQueryCounterDescriptionResponse"`
	Description string   `xml:"perfmonQueryCounterDescriptionReturn"`
}

// QueryCounterDescription returns the human-readable description of one
// counter. Build the name with CounterPath.
func (c *Client) QueryCounterDescription(counter string) (string, error) {
	if counter == "" {
		return "", fmt.Errorf("counter name is required")
	}

	var response queryCounterDescriptionResponse
	err := c.cucmClient.Call(c.config.ServicePath, "perfmonQueryCounterDescription",
		&queryCounterDescriptionRequest{Counter: counter}, &response)
	if err != nil {
		return "", err
	}
	return response.Description, nil
}

// Session bundles a session handle with the client that opened it, so
// the open, add, collect, close sequence reads as one object.
type Session struct {
	client *Client
	handle SessionHandle
}

// NewSession opens a collection session.
func (c *Client) NewSession() (*Session, error) {
	handle, err := c.OpenSession()
	if err != nil {
		return nil, err
	}
	return &Session{client: c, handle: handle}, nil
}

// Handle returns the server-side session handle.
func (s *Session) Handle() SessionHandle {
	return s.handle
}

// AddCounter adds counters to the session.
func (s *Session) AddCounter(counters ...string) error {
	return s.client.AddCounter(s.handle, counters)
}

// RemoveCounter removes counters from the session.
func (s *Session) RemoveCounter(counters ...string) error {
	return s.client.RemoveCounter(s.handle, counters)
}

// Collect returns the current values of the session's counters.
func (s *Session) Collect() ([]CounterValue, error) {
	return s.client.CollectSessionData(s.handle)
}

// Close closes the session handle on the server.
func (s *Session) Close() error {
	return s.client.CloseSession(s.handle)
}
