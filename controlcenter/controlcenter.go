/* SPDX-License-Identifier: MPL-2.0
 * Copyright 2026 CUCM Community
 *
 * See CONTRIBUTORS.md for full contributor list.
 */

// Package controlcenter wraps the CUCM Control Center Services and
// Control Center Services Extended SOAP APIs: service activation and
// deactivation, start/stop/restart, and service status queries.
package controlcenter

import (
	"encoding/xml"
	"fmt"

	"github.com/cucmcommunity/cucm-go-sdk/cucmsdk"
)

// Control actions accepted by ControlServices and ControlServicesEx.
const (
	ActionStart   = "Start"
	ActionStop    = "Stop"
	ActionRestart = "Restart"
)

// Deployment actions accepted by DoServiceDeployment.
const (
	ActionDeploy   = "Deploy"
	ActionUnDeploy = "UnDeploy"
)

// Dependency handling for ControlServicesEx.
const (
	DependencyEnforce = "Enforce"
	DependencyNone    = "None"
)

// Config holds the configuration for the ControlCenter plugin
type Config struct {
	// ServicePath is the Control Center Services endpoint path.
	ServicePath string

	// ExtendedServicePath is the Control Center Services Extended
	// endpoint path.
	ExtendedServicePath string
}

// DefaultConfig returns the default configuration for the ControlCenter plugin
func DefaultConfig() *Config {
	return &Config{
		ServicePath:         "controlcenterservice2/services/ControlCenterServices",
		ExtendedServicePath: "controlcenterservice2/services/ControlCenterServicesEx",
	}
}

// Client is the Control Center Services API client
type Client struct {
	cucmClient *cucmsdk.Client
	config     *Config
}

// New creates a new ControlCenter plugin
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
	return "controlcenter"
}

// ServiceList carries service names in the shape the remote schema
// expects (repeated item elements).
type ServiceList struct {
	Item []string `xml:"item"`
}

// ServiceInfo describes one service's runtime state.
type ServiceInfo struct {
	ServiceName      string `xml:"ServiceName"`
	ServiceStatus    string `xml:"ServiceStatus"`
	ReasonCode       int    `xml:"ReasonCode"`
	ReasonCodeString string `xml:"ReasonCodeString"`
	StartTime        string `xml:"StartTime"`
	UpTime           int64  `xml:"UpTime"`
}

// ProductInfo describes a product and its services as reported by
// getProductInformationList.
type ProductInfo struct {
	ProductID         string   `xml:"ProductID"`
	ProductName       string   `xml:"ProductName"`
	ProductVersion    string   `xml:"ProductVersion"`
	ServiceName       string   `xml:"ServiceName"`
	DependentServices []string `xml:"DependentServices>item"`
}

// StaticServiceInfo describes one service's static specification.
type StaticServiceInfo struct {
	ServiceName   string `xml:"ServiceName"`
	ServiceType   string `xml:"ServiceType"`
	Deployable    bool   `xml:"Deployable"`
	GroupName     string `xml:"GroupName"`
	DependentOnly bool   `xml:"DependentOnly"`
}

// ExtendedServiceInfo is the extended static specification, adding the
// owning product and restriction information.
type ExtendedServiceInfo struct {
	StaticServiceInfo
	ProductID   string `xml:"ProductID"`
	Restriction string `xml:"Restriction"`
}

// ControlResult is the outcome of a control or deployment request.
type ControlResult struct {
	ReturnCode   int           `xml:"ReturnCode"`
	ReasonCode   int           `xml:"ReasonCode"`
	ReasonString string        `xml:"ReasonString"`
	ServiceInfo  []ServiceInfo `xml:"ServiceInfoList>item"`
}

type getProductInformationListRequest struct {
	XMLName     xml.Name `xml:"http://schemas.cisco.com/ast/soap getProductInformationList"`
	ServiceInfo string   `xml:"ServiceInfo"`
}

type getProductInformationListResponse struct {
	XMLName  xml.Name      `xml:"http://schemas.cisco.com/ast/soap getProductInformationListResponse"`
	Products []ProductInfo `xml:"getProductInformationListReturn>Products>item"`
}

// GetProductInformationList lists product and service information for the
// queried node. Query each node of a cluster individually.
func (c *Client) GetProductInformationList() ([]ProductInfo, error) {
	var response getProductInformationListResponse
	err := c.cucmClient.Call(c.config.ServicePath, "getProductInformationList",
		&getProductInformationListRequest{}, &response)
	if err != nil {
		return nil, err
	}
	return response.Products, nil
}

type getServiceStatusRequest struct {
	XMLName       xml.Name `xml:"http://schemas.cisco.com/ast/soap soapGetServiceStatus"`
	ServiceStatus []string `xml:"ServiceStatus,omitempty"`
}

type getServiceStatusResponse struct {
	XMLName  xml.Name      `xml:"http://schemas.cisco.com/ast/soap soapGetServiceStatusResponse"`
	Services []ServiceInfo `xml:"soapGetServiceStatusReturn>ServiceInfoList>item"`
}

// GetServiceStatus reports whether each named service is started or
// stopped, activated or deactivated, and when it last started. With no
// names it reports every service.
func (c *Client) GetServiceStatus(services ...string) ([]ServiceInfo, error) {
	var response getServiceStatusResponse
	err := c.cucmClient.Call(c.config.ServicePath, "soapGetServiceStatus",
		&getServiceStatusRequest{ServiceStatus: services}, &response)
	if err != nil {
		return nil, err
	}
	return response.Services, nil
}

type getStaticServiceListRequest struct {
	XMLName                    xml.Name `xml:"http://schemas.cisco.com/ast/soap soapGetStaticServiceList"`
	ServiceInformationResponse string   `xml:"ServiceInformationResponse"`
}

type getStaticServiceListResponse struct {
	XMLName  xml.Name            `xml:"http://schemas.cisco.com/ast/soap soapGetStaticServiceListResponse"`
	Services []StaticServiceInfo `xml:"soapGetStaticServiceListReturn>item"`
}

// GetStaticServiceList returns the static specification of every service
// known to the node.
func (c *Client) GetStaticServiceList() ([]StaticServiceInfo, error) {
	var response getStaticServiceListResponse
	err := c.cucmClient.Call(c.config.ServicePath, "soapGetStaticServiceList",
		&getStaticServiceListRequest{}, &response)
	if err != nil {
		return nil, err
	}
	return response.Services, nil
}

type controlServicesRequest struct {
	XMLName xml.Name              `xml:"http://schemas.cisco.com/ast/soap soapDoControlServices"`
	Request controlServiceRequest `xml:"ControlServiceRequest"`
}

type controlServiceRequest struct {
	NodeName    string      `xml:"NodeName"`
	ControlType string      `xml:"ControlType"`
	ServiceList ServiceList `xml:"ServiceList"`
}

type controlServicesResponse struct {
	XMLName xml.Name      `xml:"http://schemas.cisco.com/ast/soap soapDoControlServicesResponse"`
	Result  ControlResult `xml:"soapDoControlServicesReturn"`
}

// ControlServices starts, stops, or restarts the named services on node.
// CUCM refuses to stop non-stop services such as Cisco DB and Cisco
// Tomcat, and rejects empty service lists; the empty list is rejected
// locally before any request is made.
func (c *Client) ControlServices(node, action string, services []string) (*ControlResult, error) {
	if len(services) == 0 {
		return nil, fmt.Errorf("service list cannot be empty")
	}

	request := &controlServicesRequest{
		Request: controlServiceRequest{
			NodeName:    node,
			ControlType: action,
			ServiceList: ServiceList{Item: services},
		},
	}

	var response controlServicesResponse
	err := c.cucmClient.Call(c.config.ServicePath, "soapDoControlServices", request, &response)
	if err != nil {
		return nil, err
	}
	return &response.Result, nil
}

type serviceDeploymentRequest struct {
	XMLName xml.Name                 `xml:"http://schemas.cisco.com/ast/soap soapDoServiceDeployment"`
	Request deploymentServiceRequest `xml:"DeploymentServiceRequest"`
}

type deploymentServiceRequest struct {
	NodeName    string      `xml:"NodeName"`
	DeployType  string      `xml:"DeployType"`
	ServiceList ServiceList `xml:"ServiceList"`
}

type serviceDeploymentResponse struct {
	XMLName xml.Name      `xml:"http://schemas.cisco.com/ast/soap soapDoServiceDeploymentResponse"`
	Result  ControlResult `xml:"soapDoServiceDeploymentReturn"`
}

// DoServiceDeployment activates (Deploy) or deactivates (UnDeploy) the
// named deployable services on node. A service is deployable when its
// status entry reports Deployable true.
func (c *Client) DoServiceDeployment(node, action string, services []string) (*ControlResult, error) {
	if len(services) == 0 {
		return nil, fmt.Errorf("service list cannot be empty")
	}

	request := &serviceDeploymentRequest{
		Request: deploymentServiceRequest{
			NodeName:    node,
			DeployType:  action,
			ServiceList: ServiceList{Item: services},
		},
	}

	var response serviceDeploymentResponse
	err := c.cucmClient.Call(c.config.ServicePath, "soapDoServiceDeployment", request, &response)
	if err != nil {
		return nil, err
	}
	return &response.Result, nil
}

type getFileDirectoryListRequest struct {
	XMLName       xml.Name `xml:"http://schemas.cisco.com/ast/soap getFileDirectoryList"`
	DirectoryPath string   `xml:"DirectoryPath"`
}

type getFileDirectoryListResponse struct {
	XMLName xml.Name `xml:"http://schemas.cisco.com/ast/soap getFileDirectoryListResponse"`
	Files   []string `xml:"getFileDirectoryListReturn>item"`
}

// GetFileDirectoryList lists the file names in the given directory on the
// node without downloading them. Use it before retrieving files through
// the DIME file service.
func (c *Client) GetFileDirectoryList(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("directory path is required")
	}

	var response getFileDirectoryListResponse
	err := c.cucmClient.Call(c.config.ExtendedServicePath, "getFileDirectoryList",
		&getFileDirectoryListRequest{DirectoryPath: path}, &response)
	if err != nil {
		return nil, err
	}
	return response.Files, nil
}

type getStaticServiceListExtendedRequest struct {
	XMLName                    xml.Name `xml:"http://schemas.cisco.com/ast/soap getStaticServiceListExtended"`
	ServiceInformationResponse string   `xml:"ServiceInformationResponse"`
}

type getStaticServiceListExtendedResponse struct {
	XMLName  xml.Name              `xml:"http://schemas.cisco.com/ast/soap getStaticServiceListExtendedResponse"`
	Services []ExtendedServiceInfo `xml:"getStaticServiceListExtendedReturn>Services>item"`
}

// GetStaticServiceListExtended is GetStaticServiceList with ProductID and
// Restriction information added (CUCM 10.0 and later).
func (c *Client) GetStaticServiceListExtended() ([]ExtendedServiceInfo, error) {
	var response getStaticServiceListExtendedResponse
	err := c.cucmClient.Call(c.config.ExtendedServicePath, "getStaticServiceListExtended",
		&getStaticServiceListExtendedRequest{}, &response)
	if err != nil {
		return nil, err
	}
	return response.Services, nil
}

type controlServicesExRequest struct {
	XMLName xml.Name                `xml:"http://schemas.cisco.com/ast/soap soapDoControlServicesEx"`
	Request controlServiceRequestEx `xml:"ControlServiceRequestEx"`
}

type controlServiceRequestEx struct {
	ProductID      string      `xml:"ProductId"`
	DependencyType string      `xml:"DependencyType"`
	ControlType    string      `xml:"ControlType"`
	ServiceList    ServiceList `xml:"ServiceList"`
}

type controlServicesExResponse struct {
	XMLName xml.Name      `xml:"http://schemas.cisco.com/ast/soap soapDoControlServicesExResponse"`
	Result  ControlResult `xml:"soapDoControlServicesExReturn"`
}

// ControlServicesEx starts, stops, or restarts services by owning product
// (CallManager, Elm, or Common). dependencyType is DependencyEnforce to
// also control dependent services, DependencyNone otherwise.
func (c *Client) ControlServicesEx(productID, dependencyType, action string, services []string) (*ControlResult, error) {
	if len(services) == 0 {
		return nil, fmt.Errorf("service list cannot be empty")
	}

	request := &controlServicesExRequest{
		Request: controlServiceRequestEx{
			ProductID:      productID,
			DependencyType: dependencyType,
			ControlType:    action,
			ServiceList:    ServiceList{Item: services},
		},
	}

	var response controlServicesExResponse
	err := c.cucmClient.Call(c.config.ExtendedServicePath, "soapDoControlServicesEx", request, &response)
	if err != nil {
		return nil, err
	}
	return &response.Result, nil
}
