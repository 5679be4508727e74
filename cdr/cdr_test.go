/* SPDX-License-Identifier: MPL-2.0
 * Copyright 2026 CUCM Community
 *
 * See CONTRIBUTORS.md for full contributor list.
 */

package cdr

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cucmcommunity/cucm-go-sdk/cucmsdk"
)

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := cucmsdk.NewClient("cucm.example.com", "admin", "secret", &cucmsdk.Config{
		BaseURL:    server.URL,
		HttpClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return New(client, nil)
}

func TestGetFileList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/CDRonDemandService2/services/CDRonDemandService" {
			t.Errorf("Unexpected path '%s'", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		s := string(body)
		for _, want := range []string{
			"<in0>202608260900</in0>",
			"<in1>202608260930</in1>",
			"<in2>true</in2>",
		} {
			if !strings.Contains(s, want) {
				t.Errorf("Expected %q in request, got %s", want, s)
			}
		}

		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">
  <soapenv:Body>
    <ns1:get_file_listResponse xmlns:ns1="http://schemas.cisco.com/ast/soap">
      <get_file_listReturn>
        <item>cdr_StandAloneCluster_01_202608260905_12345</item>
        <item>cdr_StandAloneCluster_01_202608260910_12346</item>
      </get_file_listReturn>
    </ns1:get_file_listResponse>
  </soapenv:Body>
</soapenv:Envelope>`))
	}))
	defer server.Close()

	c := newTestClient(t, server)
	start := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	files, err := c.GetFileList(start, start.Add(30*time.Minute), true)
	if err != nil {
		t.Fatalf("GetFileList failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(files))
	}
	if files[0] != "cdr_StandAloneCluster_01_202608260905_12345" {
		t.Errorf("Unexpected file name '%s'", files[0])
	}
}

func TestGetFileListIntervalValidation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("No request expected for an invalid interval")
	}))
	defer server.Close()

	c := newTestClient(t, server)
	start := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)

	if _, err := c.GetFileList(start, start.Add(2*time.Hour), true); err == nil {
		t.Error("Expected error for interval over one hour")
	}
	if _, err := c.GetFileList(start, start.Add(-time.Minute), true); err == nil {
		t.Error("Expected error for end before start")
	}
}

func TestGetFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s := string(body)
		for _, want := range []string{
			"<in0>sftp.example.com</in0>",
			"<in1>billing</in1>",
			"<in2>drop-secret</in2>",
			"<in3>/incoming/cdr</in3>",
			"<in4>cdr_StandAloneCluster_01_202608260905_12345</in4>",
			"<in5>true</in5>",
		} {
			if !strings.Contains(s, want) {
				t.Errorf("Expected %q in request, got %s", want, s)
			}
		}

		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">
  <soapenv:Body>
    <ns1:get_fileResponse xmlns:ns1="http://schemas.cisco.com/ast/soap"/>
  </soapenv:Body>
</soapenv:Envelope>`))
	}))
	defer server.Close()

	c := newTestClient(t, server)
	err := c.GetFile(FileRequest{
		Hostname:  "sftp.example.com",
		Username:  "billing",
		Password:  "drop-secret",
		Directory: "/incoming/cdr",
		Filename:  "cdr_StandAloneCluster_01_202608260905_12345",
	})
	if err != nil {
		t.Fatalf("GetFile failed: %v", err)
	}

	if err := c.GetFile(FileRequest{}); err == nil {
		t.Error("Expected error for missing hostname and filename")
	}
}
