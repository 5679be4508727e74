/* SPDX-License-Identifier: MPL-2.0
 * Copyright 2026 CUCM Community
 *
 * See CONTRIBUTORS.md for full contributor list.
 */

// Package risport wraps the CUCM Real-time Information Server (RisPort70)
// SOAP API, which reports live device and CTI application registration
// status. SelectCmDevice and SelectCtiItem map the raw operations;
// QueryDeviceRegistrations and QueryCtiItems layer chunking, node
// iteration and result flattening on top.
package risport

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/cucmcommunity/cucm-go-sdk/cucmsdk"
)

// MaxDevicesPerRequest is the RIS hard limit on devices per query.
const MaxDevicesPerRequest = 1000

// Device class values accepted by CmSelectionCriteria.
const (
	DeviceClassAny            = "Any"
	DeviceClassPhone          = "Phone"
	DeviceClassGateway        = "Gateway"
	DeviceClassH323           = "H323"
	DeviceClassCti            = "Cti"
	DeviceClassVoiceMail      = "VoiceMail"
	DeviceClassMediaResources = "MediaResources"
	DeviceClassHuntList       = "HuntList"
	DeviceClassSIPTrunk       = "SIPTrunk"
	DeviceClassUnknown        = "Unknown"
)

// Registration status values accepted by CmSelectionCriteria.
const (
	StatusAny                 = "Any"
	StatusRegistered          = "Registered"
	StatusUnRegistered        = "UnRegistered"
	StatusRejected            = "Rejected"
	StatusPartiallyRegistered = "PartiallyRegistered"
	StatusUnknown             = "Unknown"
)

// CTI manager class values accepted by CtiSelectionCriteria.
const (
	CtiMgrClassProvider = "Provider"
	CtiMgrClassDevice   = "Device"
	CtiMgrClassLine     = "Line"
)

// CTI status values accepted by CtiSelectionCriteria.
const (
	CtiStatusAny        = "Any"
	CtiStatusOpen       = "Open"
	CtiStatusClosed     = "Closed"
	CtiStatusOpenFailed = "OpenFailed"
	CtiStatusUnknown    = "Unknown"
)

var deviceClasses = map[string]bool{
	DeviceClassAny: true, DeviceClassPhone: true, DeviceClassGateway: true,
	DeviceClassH323: true, DeviceClassCti: true, DeviceClassVoiceMail: true,
	DeviceClassMediaResources: true, DeviceClassHuntList: true,
	DeviceClassSIPTrunk: true, DeviceClassUnknown: true,
}

var deviceStatuses = map[string]bool{
	StatusAny: true, StatusRegistered: true, StatusUnRegistered: true,
	StatusRejected: true, StatusPartiallyRegistered: true, StatusUnknown: true,
}

var ctiMgrClasses = map[string]bool{
	CtiMgrClassProvider: true, CtiMgrClassDevice: true, CtiMgrClassLine: true,
}

var ctiStatuses = map[string]bool{
	CtiStatusAny: true, CtiStatusOpen: true, CtiStatusClosed: true,
	CtiStatusOpenFailed: true, CtiStatusUnknown: true,
}

// Config holds the configuration for the RisPort plugin
type Config struct {
	// ServicePath is the RISService70 endpoint path.
	ServicePath string
}

// DefaultConfig returns the default configuration for the RisPort plugin
func DefaultConfig() *Config {
	return &Config{
		ServicePath: "realtimeservice2/services/RISService70",
	}
}

// Client is the RisPort70 API client
type Client struct {
	cucmClient *cucmsdk.Client
	config     *Config
}

// New creates a new RisPort plugin
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
	return "risport"
}

// StateInfo is the opaque delta marker RIS returns with every response.
// Pass it back on the next call to receive only changes since then.
type StateInfo string

// SelectItems carries the device names to query. Several names may be
// comma-joined into one Item.
type SelectItems struct {
	Item []SelectItem `xml:"item"`
}

// SelectItem is one entry of SelectItems.
type SelectItem struct {
	Item string `xml:"Item"`
}

// CmSelectionCriteria filters a SelectCmDevice query.
type CmSelectionCriteria struct {
	MaxReturnedDevices int         `xml:"MaxReturnedDevices"`
	DeviceClass        string      `xml:"DeviceClass"`
	Model              int         `xml:"Model"`
	Status             string      `xml:"Status"`
	NodeName           string      `xml:"NodeName"`
	SelectBy           string      `xml:"SelectBy"`
	SelectItems        SelectItems `xml:"SelectItems"`
	Protocol           string      `xml:"Protocol"`
	DownloadStatus     string      `xml:"DownloadStatus"`
}

// DefaultCmSelectionCriteria returns criteria matching every device:
// any class, any status, model 255 (all models), selection by name.
func DefaultCmSelectionCriteria() *CmSelectionCriteria {
	return &CmSelectionCriteria{
		MaxReturnedDevices: MaxDevicesPerRequest,
		DeviceClass:        DeviceClassAny,
		Model:              255,
		Status:             StatusAny,
		SelectBy:           "Name",
		Protocol:           "Any",
		DownloadStatus:     "Any",
	}
}

// IPAddress is one address of a registered device.
type IPAddress struct {
	IP         string `xml:"IP"`
	IPAddrType string `xml:"IPAddrType"`
}

// CmDevice is the real-time record of one device on one node.
type CmDevice struct {
	Name                  string      `xml:"Name"`
	DirNumber             string      `xml:"DirNumber"`
	DeviceClass           string      `xml:"DeviceClass"`
	Model                 int         `xml:"Model"`
	Product               int         `xml:"Product"`
	Description           string      `xml:"Description"`
	Status                string      `xml:"Status"`
	StatusReason          int         `xml:"StatusReason"`
	Protocol              string      `xml:"Protocol"`
	NumOfLines            int         `xml:"NumOfLines"`
	ActiveLoadID          string      `xml:"ActiveLoadID"`
	InactiveLoadID        string      `xml:"InactiveLoadID"`
	DownloadStatus        string      `xml:"DownloadStatus"`
	DownloadFailureReason string      `xml:"DownloadFailureReason"`
	TimeStamp             int64       `xml:"TimeStamp"`
	IPAddresses           []IPAddress `xml:"IPAddress>item"`
}

// CmNode groups the devices found on one cluster node.
type CmNode struct {
	Name       string     `xml:"Name"`
	NoChange   bool       `xml:"NoChange"`
	ReturnCode string     `xml:"ReturnCode"`
	CmDevices  []CmDevice `xml:"CmDevices>item"`
}

// SelectCmDeviceResult is the raw result of a SelectCmDevice query.
type SelectCmDeviceResult struct {
	TotalDevicesFound int      `xml:"TotalDevicesFound"`
	CmNodes           []CmNode `xml:"CmNodes>item"`
}

type selectCmDeviceRequest struct {
	XMLName   xml.Name             `xml:"http://schemas.cisco.com/ast/soap selectCmDevice"`
	StateInfo string               `xml:"StateInfo"`
	Criteria  *CmSelectionCriteria `xml:"CmSelectionCriteria"`
}

type selectCmDeviceReturn struct {
	Result    SelectCmDeviceResult `xml:"SelectCmDeviceResult"`
	StateInfo string               `xml:"StateInfo"`
}

type selectCmDeviceResponse struct {
	XMLName xml.Name             `xml:"http://schemas.cisco.com/ast/soap selectCmDeviceResponse"`
	Return  selectCmDeviceReturn `xml:"selectCmDeviceReturn"`
}

// SelectCmDevice queries real-time device status across the cluster.
// Pass an empty stateInfo for a full snapshot, or the StateInfo from a
// previous call to receive deltas only.
func (c *Client) SelectCmDevice(stateInfo string, criteria *CmSelectionCriteria) (*SelectCmDeviceResult, StateInfo, error) {
	return c.selectCmDevice("selectCmDevice", stateInfo, criteria)
}

// SelectCmDeviceExt is the extended variant of SelectCmDevice. Same
// request shape; the result additionally reports per-node change flags.
func (c *Client) SelectCmDeviceExt(stateInfo string, criteria *CmSelectionCriteria) (*SelectCmDeviceResult, StateInfo, error) {
	return c.selectCmDevice("selectCmDeviceExt", stateInfo, criteria)
}

func (c *Client) selectCmDevice(operation, stateInfo string, criteria *CmSelectionCriteria) (*SelectCmDeviceResult, StateInfo, error) {
	if criteria == nil {
		criteria = DefaultCmSelectionCriteria()
	}
	if !deviceClasses[criteria.DeviceClass] {
		return nil, "", fmt.Errorf("invalid device class %q", criteria.DeviceClass)
	}
	if !deviceStatuses[criteria.Status] {
		return nil, "", fmt.Errorf("invalid device status %q", criteria.Status)
	}

	// The two operations share one return shape; only the request and
	// response element names differ.
	var ret selectCmDeviceReturn
	var err error
	if operation == "selectCmDeviceExt" {
		request := &selectCmDeviceExtRequest{StateInfo: stateInfo, Criteria: criteria}
		var response selectCmDeviceExtResponse
		err = c.cucmClient.Call(c.config.ServicePath, operation, request, &response)
		ret = response.Return
	} else {
		request := &selectCmDeviceRequest{StateInfo: stateInfo, Criteria: criteria}
		var response selectCmDeviceResponse
		err = c.cucmClient.Call(c.config.ServicePath, operation, request, &response)
		ret = response.Return
	}
	if err != nil {
		return nil, "", err
	}
	return &ret.Result, StateInfo(ret.StateInfo), nil
}

type selectCmDeviceExtRequest struct {
	XMLName   xml.Name             `xml:"http://schemas.cisco.com/ast/soap selectCmDeviceExt"`
	StateInfo string               `xml:"StateInfo"`
	Criteria  *CmSelectionCriteria `xml:"CmSelectionCriteria"`
}

type selectCmDeviceExtResponse struct {
	XMLName xml.Name             `xml:"http://schemas.cisco.com/ast/soap selectCmDeviceExtResponse"`
	Return  selectCmDeviceReturn `xml:"selectCmDeviceReturn"`
}

// QueryOptions narrows a QueryDeviceRegistrations call.
type QueryOptions struct {
	// DeviceClass defaults to Phone.
	DeviceClass string
	// Status defaults to Any.
	Status string
}

// QueryDeviceRegistrations returns the real-time registration records
// for the named devices. Device lists larger than 1000 are split into
// chunks; nodes lists the cluster nodes to query, nil meaning all
// nodes. Results from all chunks and nodes are flattened into one list.
func (c *Client) QueryDeviceRegistrations(devices, nodes []string, opts *QueryOptions) ([]CmDevice, error) {
	if len(devices) == 0 {
		return nil, fmt.Errorf("device list cannot be empty")
	}
	deviceClass := DeviceClassPhone
	status := StatusAny
	if opts != nil {
		if opts.DeviceClass != "" {
			deviceClass = opts.DeviceClass
		}
		if opts.Status != "" {
			status = opts.Status
		}
	}
	if !deviceClasses[deviceClass] {
		return nil, fmt.Errorf("invalid device class %q", deviceClass)
	}
	if !deviceStatuses[status] {
		return nil, fmt.Errorf("invalid device status %q", status)
	}

	if len(nodes) == 0 {
		nodes = []string{""}
	}

	var found []CmDevice
	for _, group := range chunk(devices, MaxDevicesPerRequest) {
		for _, node := range nodes {
			criteria := DefaultCmSelectionCriteria()
			criteria.DeviceClass = deviceClass
			criteria.Status = status
			criteria.NodeName = node
			criteria.SelectItems = SelectItems{
				Item: []SelectItem{{Item: strings.Join(group, ",")}},
			}

			result, _, err := c.SelectCmDeviceExt("", criteria)
			if err != nil {
				return nil, err
			}
			if result.TotalDevicesFound < 1 {
				continue
			}
			for _, n := range result.CmNodes {
				found = append(found, n.CmDevices...)
			}
		}
	}
	return found, nil
}

// AppItems, DevNames and DirNumbers carry the CTI selection lists; like
// SelectItems, several values may be comma-joined into one entry.
type AppItems struct {
	Item []AppItem `xml:"item"`
}

type AppItem struct {
	AppItem string `xml:"AppItem"`
}

type DevNames struct {
	Item []DevName `xml:"item"`
}

type DevName struct {
	DevName string `xml:"DevName"`
}

type DirNumbers struct {
	Item []DirNumber `xml:"item"`
}

type DirNumber struct {
	DirNumber string `xml:"DirNumber"`
}

// CtiSelectionCriteria filters a SelectCtiItem query.
type CtiSelectionCriteria struct {
	MaxReturnedItems int        `xml:"MaxReturnedDevices"`
	CtiMgrClass      string     `xml:"CtiMgrClass"`
	Status           string     `xml:"Status"`
	NodeName         string     `xml:"NodeName"`
	SelectAppBy      string     `xml:"SelectAppBy"`
	AppItems         AppItems   `xml:"AppItems"`
	DevNames         DevNames   `xml:"DevNames"`
	DirNumbers       DirNumbers `xml:"DirNumbers"`
}

// DefaultCtiSelectionCriteria returns criteria matching every CTI
// device connection, selected by application id.
func DefaultCtiSelectionCriteria() *CtiSelectionCriteria {
	return &CtiSelectionCriteria{
		MaxReturnedItems: MaxDevicesPerRequest,
		CtiMgrClass:      CtiMgrClassDevice,
		Status:           CtiStatusAny,
		SelectAppBy:      "AppId",
	}
}

// CtiItem is the real-time record of one CTI application connection.
type CtiItem struct {
	AppID       string `xml:"AppId"`
	UserID      string `xml:"UserId"`
	AppIPAddr   string `xml:"AppIpAddr"`
	DeviceName  string `xml:"DeviceName"`
	DirNumber   string `xml:"DirNumber"`
	AppStatus   string `xml:"AppStatus"`
	StatusTime  int64  `xml:"TimeStamp"`
	CtiMgrClass string `xml:"CtiMgrClass"`
}

// CtiNode groups the CTI items found on one cluster node.
type CtiNode struct {
	Name       string    `xml:"Name"`
	NoChange   bool      `xml:"NoChange"`
	ReturnCode string    `xml:"ReturnCode"`
	CtiItems   []CtiItem `xml:"CtiItems>item"`
}

// SelectCtiItemResult is the raw result of a SelectCtiItem query.
type SelectCtiItemResult struct {
	TotalItemsFound int       `xml:"TotalItemsFound"`
	CtiNodes        []CtiNode `xml:"CtiNodes>item"`
}

type selectCtiItemRequest struct {
	XMLName   xml.Name              `xml:"http://schemas.cisco.com/ast/soap selectCtiItem"`
	StateInfo string                `xml:"StateInfo"`
	Criteria  *CtiSelectionCriteria `xml:"CtiSelectionCriteria"`
}

type selectCtiItemResponse struct {
	XMLName xml.Name `xml:"http://schemas.cisco.com/ast/soap selectCtiItemResponse"`
	Return  struct {
		Result    SelectCtiItemResult `xml:"SelectCtiItemResult"`
		StateInfo string              `xml:"StateInfo"`
	} `xml:"selectCtiItemReturn"`
}

// SelectCtiItem queries real-time CTI application status. Pass an empty
// stateInfo for a full snapshot.
func (c *Client) SelectCtiItem(stateInfo string, criteria *CtiSelectionCriteria) (*SelectCtiItemResult, StateInfo, error) {
	if criteria == nil {
		criteria = DefaultCtiSelectionCriteria()
	}
	if !ctiMgrClasses[criteria.CtiMgrClass] {
		return nil, "", fmt.Errorf("invalid CTI manager class %q", criteria.CtiMgrClass)
	}
	if !ctiStatuses[criteria.Status] {
		return nil, "", fmt.Errorf("invalid CTI status %q", criteria.Status)
	}

	request := &selectCtiItemRequest{StateInfo: stateInfo, Criteria: criteria}
	var response selectCtiItemResponse
	if err := c.cucmClient.Call(c.config.ServicePath, "selectCtiItem", request, &response); err != nil {
		return nil, "", err
	}
	return &response.Return.Result, StateInfo(response.Return.StateInfo), nil
}

// CtiQueryOptions narrows a QueryCtiItems call.
type CtiQueryOptions struct {
	// CtiMgrClass defaults to Line.
	CtiMgrClass string
	// Status defaults to Any.
	Status string
}

// QueryCtiItems returns the CTI connection records for the named
// devices across the given nodes (nil meaning all nodes), flattened
// into one list.
func (c *Client) QueryCtiItems(devices, nodes []string, opts *CtiQueryOptions) ([]CtiItem, error) {
	if len(devices) == 0 {
		return nil, fmt.Errorf("device list cannot be empty")
	}
	mgrClass := CtiMgrClassLine
	status := CtiStatusAny
	if opts != nil {
		if opts.CtiMgrClass != "" {
			mgrClass = opts.CtiMgrClass
		}
		if opts.Status != "" {
			status = opts.Status
		}
	}
	if !ctiMgrClasses[mgrClass] {
		return nil, fmt.Errorf("invalid CTI manager class %q", mgrClass)
	}
	if !ctiStatuses[status] {
		return nil, fmt.Errorf("invalid CTI status %q", status)
	}

	if len(nodes) == 0 {
		nodes = []string{""}
	}

	var found []CtiItem
	for _, node := range nodes {
		criteria := DefaultCtiSelectionCriteria()
		criteria.CtiMgrClass = mgrClass
		criteria.Status = status
		criteria.NodeName = node
		criteria.DevNames = DevNames{
			Item: []DevName{{DevName: strings.Join(devices, ",")}},
		}

		result, _, err := c.SelectCtiItem("", criteria)
		if err != nil {
			return nil, err
		}
		if result.TotalItemsFound < 1 {
			continue
		}
		for _, n := range result.CtiNodes {
			found = append(found, n.CtiItems...)
		}
	}
	return found, nil
}

func chunk(items []string, n int) [][]string {
	var groups [][]string
	for len(items) > n {
		groups = append(groups, items[:n])
		items = items[n:]
	}
	return append(groups, items)
}
