/* SPDX-License-Identifier: MPL-2.0
 * Copyright 2026 CUCM Community
 *
 * See CONTRIBUTORS.md for full contributor list.
 */

// Package cdr wraps the CDRonDemand SOAP API. Call detail record files
// are retrieved in two steps: list files for a time interval, then have
// the CDR Repository Node push one file to an (S)FTP server. Bulk
// collection should use the CDR Repository Manager instead.
package cdr

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/cucmcommunity/cucm-go-sdk/cucmsdk"
)

// timeFormat is the interval timestamp layout the service expects, in UTC.
const timeFormat = "200601021504"

// maxInterval is the widest file-list query window the service accepts.
const maxInterval = time.Hour

// Config holds the configuration for the CDR plugin
type Config struct {
	// ServicePath is the CDRonDemand endpoint path.
	ServicePath string
}

// DefaultConfig returns the default configuration for the CDR plugin
func DefaultConfig() *Config {
	return &Config{
		ServicePath: "CDRonDemandService2/services/CDRonDemandService",
	}
}

// Client is the CDRonDemand API client
type Client struct {
	cucmClient *cucmsdk.Client
	config     *Config
}

// New creates a new CDR plugin
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
	return "cdr"
}

// The CDRonDemand schema is RPC-style; its parts are positional in0..in5.
type getFileListRequest struct {
	XMLName xml.Name `xml:"http://schemas.cisco.com/ast/soap get_file_list"`
	In0     string   `xml:"in0"`
	In1     string   `xml:"in1"`
	In2     string   `xml:"in2"`
}

type getFileListResponse struct {
	XMLName   xml.Name `xml:"http://schemas.cisco.com/ast/soap get_file_listResponse"`
	FileNames []string `xml:"get_file_listReturn>item"`
}

// GetFileList returns the names of the CDR files the repository node
// holds for the interval [start, end]. The service limits one query to a
// one-hour window; wider intervals are rejected locally. When
// includeSent is true the listing also covers files already delivered to
// a billing server, otherwise only files whose delivery failed.
func (c *Client) GetFileList(start, end time.Time, includeSent bool) ([]string, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("end time precedes start time")
	}
	if end.Sub(start) > maxInterval {
		return nil, fmt.Errorf("interval exceeds one hour; issue multiple requests instead")
	}

	request := &getFileListRequest{
		In0: start.UTC().Format(timeFormat),
		In1: end.UTC().Format(timeFormat),
		In2: strconv.FormatBool(includeSent),
	}

	var response getFileListResponse
	err := c.cucmClient.Call(c.config.ServicePath, "get_file_list", request, &response)
	if err != nil {
		return nil, err
	}
	return response.FileNames, nil
}

// FileRequest names one CDR file and the (S)FTP drop it should be
// delivered to.
type FileRequest struct {
	// Hostname of the receiving (S)FTP server.
	Hostname string

	// Username and Password for the (S)FTP server.
	Username string
	Password string

	// Directory is the target directory on the (S)FTP server.
	Directory string

	// Filename of the CDR file to deliver, as returned by GetFileList.
	Filename string

	// UseFTP selects plain FTP instead of SFTP. Leave false; SFTP is
	// the only transfer worth using.
	UseFTP bool
}

type getFileRequest struct {
	XMLName xml.Name `xml:"http://schemas.cisco.com/ast/soap get_file"`
	In0     string   `xml:"in0"`
	In1     string   `xml:"in1"`
	In2     string   `xml:"in2"`
	In3     string   `xml:"in3"`
	In4     string   `xml:"in4"`
	In5     string   `xml:"in5"`
}

type getFileResponse struct {
	XMLName xml.Name `xml:"http://schemas.cisco.com/ast/soap get_fileResponse"`
}

// GetFile asks the repository node to deliver one CDR file to the given
// (S)FTP drop. The service processes a single file per request; a nil
// error means the transfer was accepted.
func (c *Client) GetFile(req FileRequest) error {
	if req.Hostname == "" || req.Filename == "" {
		return fmt.Errorf("hostname and filename are required")
	}

	request := &getFileRequest{
		In0: req.Hostname,
		In1: req.Username,
		In2: req.Password,
		In3: req.Directory,
		In4: req.Filename,
		In5: strconv.FormatBool(!req.UseFTP),
	}

	var response getFileResponse
	return c.cucmClient.Call(c.config.ServicePath, "get_file", request, &response)
}
