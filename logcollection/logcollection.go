/* SPDX-License-Identifier: MPL-2.0
 * Copyright 2026 CUCM Community
 *
 * See CONTRIBUTORS.md for full contributor list.
 */

// Package logcollection wraps the CUCM Log Collection and DimeGetFile
// SOAP APIs: discovering which service and system logs exist, selecting
// log files, and retrieving a single file on demand.
package logcollection

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/cucmcommunity/cucm-go-sdk/cucmsdk"
)

// Job types accepted by SelectLogFiles.
const (
	JobTypeDownload = "DownloadtoClient"
	JobTypePushSFTP = "PushtoSFTPServer"
)

// Config holds the configuration for the LogCollection plugin
type Config struct {
	// ServicePath is the Log Collection endpoint path.
	ServicePath string

	// DimeServicePath is the DimeGetFile endpoint path used by GetOneFile.
	DimeServicePath string
}

// DefaultConfig returns the default configuration for the LogCollection plugin
func DefaultConfig() *Config {
	return &Config{
		ServicePath:     "logcollectionservice2/services/LogCollectionPortTypeService",
		DimeServicePath: "logcollectionservice/services/DimeGetFileService",
	}
}

// Client is the Log Collection API client
type Client struct {
	cucmClient *cucmsdk.Client
	config     *Config
}

// New creates a new LogCollection plugin
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
	return "logcollection"
}

// NodeServiceLogs lists the service log names available on one node.
type NodeServiceLogs struct {
	Name        string   `xml:"name"`
	ServiceLogs []string `xml:"ServiceLog"`
}

type listNodeServiceLogsRequest struct {
	XMLName     xml.Name `xml:"http://schemas.cisco.com/ast/soap listNodeServiceLogs"`
	ListRequest struct{} `xml:"ListRequest"`
}

type listNodeServiceLogsResponse struct {
	XMLName xml.Name          `xml:"http://schemas.cisco.com/ast/soap listNodeServiceLogsResponse"`
	Nodes   []NodeServiceLogs `xml:"listNodeServiceLogsReturn>item"`
}

// ListNodeServiceLogs returns the node names in the cluster and the
// service log names associated with each.
func (c *Client) ListNodeServiceLogs() ([]NodeServiceLogs, error) {
	var response listNodeServiceLogsResponse
	err := c.cucmClient.Call(c.config.ServicePath, "listNodeServiceLogs",
		&listNodeServiceLogsRequest{}, &response)
	if err != nil {
		return nil, err
	}
	return response.Nodes, nil
}

// FileSelectionCriteria is the full selection body of selectLogFiles.
// Fixed time range filtering is unreliable on the service side and
// relative ranges (RelText/RelTime) are ignored outright; expect the
// selection to cover all available files.
type FileSelectionCriteria struct {
	ServiceLogs  []string `xml:"ServiceLogs>item,omitempty"`
	SystemLogs   []string `xml:"SystemLogs>item,omitempty"`
	SearchStr    string   `xml:"SearchStr"`
	Frequency    string   `xml:"Frequency"`
	JobType      string   `xml:"JobType"`
	ToDate       string   `xml:"ToDate"`
	FromDate     string   `xml:"FromDate"`
	TimeZone     string   `xml:"TimeZone"`
	RelText      string   `xml:"RelText"`
	RelTime      int      `xml:"RelTime"`
	Port         string   `xml:"Port"`
	IPAddress    string   `xml:"IPAddress"`
	UserName     string   `xml:"UserName"`
	Password     string   `xml:"Password"`
	ZipInfo      bool     `xml:"ZipInfo"`
	RemoteFolder string   `xml:"RemoteFolder"`
}

// DefaultCriteria returns the criteria shape the service tolerates best:
// on-demand frequency, list-only job type, relative range fields filled
// with their documented placeholders.
func DefaultCriteria() FileSelectionCriteria {
	return FileSelectionCriteria{
		Frequency: "OnDemand",
		JobType:   JobTypeDownload,
		RelText:   "Minutes",
		RelTime:   60,
	}
}

// FileInfo describes one selectable log file.
type FileInfo struct {
	Name         string `xml:"name"`
	FilePath     string `xml:"absolutepath"`
	FileSize     string `xml:"filesize"`
	ModifiedDate string `xml:"modifiedDate"`
}

// ServiceLogFiles groups the files of one service log.
type ServiceLogFiles struct {
	Name  string     `xml:"name"`
	Files []FileInfo `xml:"SetOfFiles>item"`
}

type selectLogFilesRequest struct {
	XMLName  xml.Name              `xml:"http://schemas.cisco.com/ast/soap selectLogFiles"`
	Criteria FileSelectionCriteria `xml:"FileSelectionCriteria"`
}

type selectLogFilesResponse struct {
	XMLName xml.Name `xml:"http://schemas.cisco.com/ast/soap selectLogFilesResponse"`
	Node    struct {
		Name        string            `xml:"name"`
		ServiceList []ServiceLogFiles `xml:"ServiceList>item"`
	} `xml:"FileSelectionResult>Node"`
}

// SelectLogFiles lists available log files or, with JobTypePushSFTP,
// has the node deliver them to an SFTP server. Log names come from
// ListNodeServiceLogs. With JobTypeDownload no files are actually
// transferred; the result is the matching file list.
func (c *Client) SelectLogFiles(criteria FileSelectionCriteria) ([]ServiceLogFiles, error) {
	if criteria.JobType == "" {
		return nil, fmt.Errorf("job type is required")
	}
	if criteria.JobType == JobTypePushSFTP && criteria.IPAddress == "" {
		return nil, fmt.Errorf("push delivery requires an SFTP address")
	}

	var response selectLogFilesResponse
	err := c.cucmClient.Call(c.config.ServicePath, "selectLogFiles",
		&selectLogFilesRequest{Criteria: criteria}, &response)
	if err != nil {
		return nil, err
	}
	return response.Node.ServiceList, nil
}

// ListLogFiles lists the files of the named service and system logs
// without transferring anything.
func (c *Client) ListLogFiles(serviceLogs, systemLogs []string) ([]ServiceLogFiles, error) {
	criteria := DefaultCriteria()
	criteria.ServiceLogs = serviceLogs
	criteria.SystemLogs = systemLogs
	return c.SelectLogFiles(criteria)
}

type getOneFileRequest struct {
	XMLName  xml.Name `xml:"http://schemas.cisco.com/ast/soap GetOneFile"`
	FileName string   `xml:"FileName"`
}

// GetOneFile retrieves one log file through the DimeGetFileService and
// returns its bytes. path is the absolute file name SelectLogFiles
// reported, e.g. var/log/active/tomcat/logs/ccmservice/ccmservice00010.log.
// The DIME payload is returned exactly as delivered.
func (c *Client) GetOneFile(path string) ([]byte, error) {
	return c.GetOneFileWithContext(context.Background(), path)
}

// GetOneFileWithContext is GetOneFile with a caller-supplied context.
func (c *Client) GetOneFileWithContext(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("file name is required")
	}

	body, _, err := c.cucmClient.CallRaw(ctx, c.config.DimeServicePath, "GetOneFile",
		&getOneFileRequest{FileName: path})
	if err != nil {
		return nil, err
	}
	return body, nil
}
