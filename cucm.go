/* SPDX-License-Identifier: MPL-2.0
 * Copyright 2026 CUCM Community
 *
 * See CONTRIBUTORS.md for full contributor list.
 */

// Package cucm is the top-level entry point of the CUCM serviceability
// SDK. It bundles the per-service clients behind one authenticated
// session: service control, CDR retrieval, log collection, performance
// counters and real-time device status.
package cucm

import (
	"github.com/cucmcommunity/cucm-go-sdk/cdr"
	"github.com/cucmcommunity/cucm-go-sdk/controlcenter"
	"github.com/cucmcommunity/cucm-go-sdk/cucmsdk"
	"github.com/cucmcommunity/cucm-go-sdk/logcollection"
	"github.com/cucmcommunity/cucm-go-sdk/perfmon"
	"github.com/cucmcommunity/cucm-go-sdk/risport"
)

// CUCMClient is the top-level client for the CUCM serviceability APIs
type CUCMClient struct {
	// Core client carrying the session and SOAP transport
	core *cucmsdk.Client

	// Plugins
	controlCenterClient *controlcenter.Client
	cdrClient           *cdr.Client
	logCollectionClient *logcollection.Client
	perfmonClient       *perfmon.Client
	risportClient       *risport.Client
}

// NewClient creates a new CUCM client for the given publisher host and
// credentials, with optional configuration
func NewClient(host, username, password string, config *cucmsdk.Config) (*CUCMClient, error) {
	core, err := cucmsdk.NewClient(host, username, password, config)
	if err != nil {
		return nil, err
	}

	client := &CUCMClient{
		core: core,
	}

	return client, nil
}

// Core returns the underlying SOAP client, for callers that need to
// invoke endpoints the plugins do not cover
func (c *CUCMClient) Core() *cucmsdk.Client {
	return c.core
}

// ControlCenter returns the Control Center plugin
func (c *CUCMClient) ControlCenter() *controlcenter.Client {
	if c.controlCenterClient == nil {
		c.controlCenterClient = controlcenter.New(c.core, nil)
	}
	return c.controlCenterClient
}

// CDR returns the CDR on Demand plugin
func (c *CUCMClient) CDR() *cdr.Client {
	if c.cdrClient == nil {
		c.cdrClient = cdr.New(c.core, nil)
	}
	return c.cdrClient
}

// LogCollection returns the Log Collection plugin
func (c *CUCMClient) LogCollection() *logcollection.Client {
	if c.logCollectionClient == nil {
		c.logCollectionClient = logcollection.New(c.core, nil)
	}
	return c.logCollectionClient
}

// Perfmon returns the Performance Monitoring plugin
func (c *CUCMClient) Perfmon() *perfmon.Client {
	if c.perfmonClient == nil {
		c.perfmonClient = perfmon.New(c.core, nil)
	}
	return c.perfmonClient
}

// RisPort returns the RisPort70 real-time status plugin
func (c *CUCMClient) RisPort() *risport.Client {
	if c.risportClient == nil {
		c.risportClient = risport.New(c.core, nil)
	}
	return c.risportClient
}
