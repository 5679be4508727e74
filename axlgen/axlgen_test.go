/* SPDX-License-Identifier: MPL-2.0
 * Copyright 2026 CUCM Community
 *
 * See CONTRIBUTORS.md for full contributor list.
 */

package axlgen

import (
	"go/format"
	"strings"
	"testing"

	"github.com/cucmcommunity/cucm-go-sdk/wsdl"
)

const sampleWSDL = `<?xml version="1.0" encoding="UTF-8"?>
<definitions name="AXLAPI"
    targetNamespace="http://www.cisco.com/AXLAPIService/"
    xmlns="http://schemas.xmlsoap.org/wsdl/"
    xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
    xmlns:xsd="http://www.w3.org/2001/XMLSchema"
    xmlns:axl="http://www.cisco.com/AXL/API/14.0"
    xmlns:tns="http://www.cisco.com/AXLAPIService/">
  <types>
    <xsd:schema targetNamespace="http://www.cisco.com/AXL/API/14.0" elementFormDefault="qualified">
      <xsd:simpleType name="XUUID">
        <xsd:restriction base="xsd:string"/>
      </xsd:simpleType>
      <xsd:complexType name="RPhone">
        <xsd:sequence>
          <xsd:element name="name" type="xsd:string"/>
          <xsd:element name="description" type="xsd:string" minOccurs="0"/>
        </xsd:sequence>
        <xsd:attribute name="uuid" type="axl:XUUID"/>
      </xsd:complexType>
      <xsd:complexType name="RPhoneRes">
        <xsd:sequence>
          <xsd:element name="phone" type="axl:RPhone" minOccurs="0" maxOccurs="unbounded"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="ListPhoneSearchCriteria">
        <xsd:sequence>
          <xsd:element name="name" type="xsd:string" minOccurs="0"/>
          <xsd:element name="description" type="xsd:string" minOccurs="0"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="XPhone">
        <xsd:sequence>
          <xsd:element name="name" type="xsd:string"/>
          <xsd:element name="product" type="xsd:string"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:element name="getPhone">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="name" type="xsd:string" minOccurs="0"/>
            <xsd:element name="uuid" type="axl:XUUID" minOccurs="0"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="getPhoneResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="return" type="axl:RPhoneRes"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="listPhone">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="searchCriteria" type="axl:ListPhoneSearchCriteria" minOccurs="0"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="listPhoneResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="return" type="axl:RPhoneRes" minOccurs="0"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="addPhone">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="phone" type="axl:XPhone"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="addPhoneResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="return" type="axl:XUUID"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="removePhone">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="name" type="xsd:string" minOccurs="0"/>
            <xsd:element name="uuid" type="axl:XUUID" minOccurs="0"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="removePhoneResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="return" type="axl:XUUID"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="listChange">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="startChangeId" type="xsd:string" minOccurs="0"/>
            <xsd:element name="objectList" type="xsd:string" minOccurs="0"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="listChangeResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="queueId" type="xsd:string" minOccurs="0"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="executeSQLQuery">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="sql" type="xsd:string"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
      <xsd:element name="executeSQLQueryResponse">
        <xsd:complexType>
          <xsd:sequence>
            <xsd:element name="return" type="xsd:string" minOccurs="0"/>
          </xsd:sequence>
        </xsd:complexType>
      </xsd:element>
    </xsd:schema>
  </types>
  <message name="getPhoneIn"><part name="parameters" element="axl:getPhone"/></message>
  <message name="getPhoneOut"><part name="parameters" element="axl:getPhoneResponse"/></message>
  <message name="listPhoneIn"><part name="parameters" element="axl:listPhone"/></message>
  <message name="listPhoneOut"><part name="parameters" element="axl:listPhoneResponse"/></message>
  <message name="addPhoneIn"><part name="parameters" element="axl:addPhone"/></message>
  <message name="addPhoneOut"><part name="parameters" element="axl:addPhoneResponse"/></message>
  <message name="removePhoneIn"><part name="parameters" element="axl:removePhone"/></message>
  <message name="removePhoneOut"><part name="parameters" element="axl:removePhoneResponse"/></message>
  <message name="listChangeIn"><part name="parameters" element="axl:listChange"/></message>
  <message name="listChangeOut"><part name="parameters" element="axl:listChangeResponse"/></message>
  <message name="executeSQLQueryIn"><part name="parameters" element="axl:executeSQLQuery"/></message>
  <message name="executeSQLQueryOut"><part name="parameters" element="axl:executeSQLQueryResponse"/></message>
  <portType name="AXLPort">
    <operation name="getPhone">
      <input message="tns:getPhoneIn"/><output message="tns:getPhoneOut"/>
    </operation>
    <operation name="listPhone">
      <input message="tns:listPhoneIn"/><output message="tns:listPhoneOut"/>
    </operation>
    <operation name="addPhone">
      <input message="tns:addPhoneIn"/><output message="tns:addPhoneOut"/>
    </operation>
    <operation name="removePhone">
      <input message="tns:removePhoneIn"/><output message="tns:removePhoneOut"/>
    </operation>
    <operation name="listChange">
      <input message="tns:listChangeIn"/><output message="tns:listChangeOut"/>
    </operation>
    <operation name="executeSQLQuery">
      <input message="tns:executeSQLQueryIn"/><output message="tns:executeSQLQueryOut"/>
    </operation>
    <operation name="doDanglingOp">
      <input message="tns:noSuchIn"/><output message="tns:noSuchOut"/>
    </operation>
  </portType>
  <binding name="AXLAPIBinding" type="tns:AXLPort">
    <soap:binding transport="http://schemas.xmlsoap.org/soap/http" style="document"/>
    <operation name="getPhone"><soap:operation soapAction="CUCM:DB ver=14.0 getPhone"/></operation>
    <operation name="listPhone"><soap:operation soapAction="CUCM:DB ver=14.0 listPhone"/></operation>
    <operation name="addPhone"><soap:operation soapAction="CUCM:DB ver=14.0 addPhone"/></operation>
    <operation name="removePhone"><soap:operation soapAction="CUCM:DB ver=14.0 removePhone"/></operation>
    <operation name="listChange"><soap:operation soapAction="CUCM:DB ver=14.0 listChange"/></operation>
    <operation name="executeSQLQuery"><soap:operation soapAction="CUCM:DB ver=14.0 executeSQLQuery"/></operation>
  </binding>
  <service name="AXLAPIService">
    <port name="AXLPort" binding="tns:AXLAPIBinding">
      <soap:address location="https://CCMSERVERNAME:8443/axl/"/>
    </port>
  </service>
</definitions>`

func generateSample(t *testing.T) (*Generator, map[string][]byte) {
	t.Helper()
	def, err := wsdl.Parse(strings.NewReader(sampleWSDL))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	g := New(def, "axl")
	files, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return g, files
}

func TestGenerateProducesValidGo(t *testing.T) {
	_, files := generateSample(t)
	for _, name := range []string{"types.go", "service.go"} {
		src, ok := files[name]
		if !ok {
			t.Fatalf("Missing generated file %s", name)
		}
		if _, err := format.Source(src); err != nil {
			t.Errorf("%s does not parse: %v\n%s", name, err, src)
		}
	}
}

func TestGeneratedTypes(t *testing.T) {
	_, files := generateSample(t)
	types := string(files["types.go"])

	for _, want := range []string{
		"type XUUID string",
		"type RPhone struct {",
		"type GetPhone struct {",
		"xml:\"http://www.cisco.com/AXL/API/14.0 getPhone\"",
		"Phone []RPhone",
		"Uuid XUUID `xml:\"uuid,attr,omitempty\"`",
		"Description string `xml:\"description,omitempty\"`",
	} {
		if !strings.Contains(types, want) {
			t.Errorf("Expected %q in types.go; got:\n%s", want, types)
		}
	}
}

func TestGeneratedOperations(t *testing.T) {
	_, files := generateSample(t)
	service := string(files["service.go"])

	for _, want := range []string{
		// get: optional request, unwrapped through return.phone
		"func (s *Service) GetPhone(request *GetPhone) ([]RPhone, error)",
		"if response.Return == nil {",
		`"CUCM:DB ver=14.0 getPhone"`,
		// list: searchCriteria wildcard defaults
		"func (s *Service) ListPhone(request *ListPhone) ([]RPhone, error)",
		`request.SearchCriteria = &ListPhoneSearchCriteria{Name: "%", Description: "%"}`,
		// add: returns the new pkid
		"func (s *Service) AddPhone(request *AddPhone) (XUUID, error)",
		"return response.Return, nil",
		// listChange takes only startChangeId
		"func (s *Service) ListChange(startChangeId string) (*ListChangeResponse, error)",
		// executeSQLQuery returns rows
		"func (s *Service) ExecuteSQLQuery(request *ExecuteSQLQuery) ([]SQLRow, error)",
		"return response.Return.Rows, nil",
	} {
		if !strings.Contains(service, want) {
			t.Errorf("Expected %q in service.go; got:\n%s", want, service)
		}
	}
}

func TestSQLResultOverride(t *testing.T) {
	_, files := generateSample(t)
	types := string(files["types.go"])

	for _, want := range []string{
		"type SQLResult struct {",
		"Rows []SQLRow `xml:\"row\"`",
		"Columns []SQLColumn `xml:\",any\"`",
		"Value string `xml:\",chardata\"`",
		"Return *SQLResult `xml:\"return,omitempty\"`",
	} {
		if !strings.Contains(types, want) {
			t.Errorf("Expected %q in types.go; got:\n%s", want, types)
		}
	}
}

func TestSkippedOperations(t *testing.T) {
	g, _ := generateSample(t)
	if len(g.Skipped) != 1 || !strings.HasPrefix(g.Skipped[0], "doDanglingOp:") {
		t.Errorf("Expected doDanglingOp to be skipped, got %v", g.Skipped)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		want opKind
	}{
		{"getPhone", kindGet},
		{"getNumDevices", kindNumDevices},
		{"getOSVersion", kindOSVersion},
		{"getCCMVersion", kindCCMVersion},
		{"listPhone", kindList},
		{"listChange", kindListChange},
		{"addRoutePattern", kindAdd},
		{"updateSipTrunk", kindUpdate},
		{"removePhone", kindPassthrough},
		{"doAuthenticateUser", kindPassthrough},
		{"applyPhone", kindPassthrough},
		{"resetGateway", kindPassthrough},
		{"restartPhone", kindPassthrough},
		{"wipePhone", kindPassthrough},
		{"lockPhone", kindPassthrough},
		{"assignPhonesToUser", kindPassthrough},
		{"unassignPhonesFromUser", kindPassthrough},
		{"executeSQLUpdate", kindPassthrough},
		{"executeSQLQuery", kindSQLQuery},
	}
	for _, tt := range tests {
		if got := kindOf(tt.name); got != tt.want {
			t.Errorf("kindOf(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestResultElement(t *testing.T) {
	tests := []struct{ in, want string }{
		{"getPhone", "phone"},
		{"listRoutePlan", "routePlan"},
		{"getCallManagerGroup", "callManagerGroup"},
		{"lowercaseonly", "lowercaseonly"},
	}
	for _, tt := range tests {
		if got := resultElement(tt.in); got != tt.want {
			t.Errorf("resultElement(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNameHelpers(t *testing.T) {
	if got := exported("return"); got != "Return" {
		t.Errorf("exported(return) = %q", got)
	}
	if got := exported("class"); got != "Class" {
		t.Errorf("exported(class) = %q", got)
	}
	if got := replaceReserved("class"); got != "class_" {
		t.Errorf("replaceReserved(class) = %q", got)
	}
	if got := primitiveGoType("xsd:boolean"); got != "bool" {
		t.Errorf("primitiveGoType(xsd:boolean) = %q", got)
	}
	if got := primitiveGoType("axl:XUUID"); got != "" {
		t.Errorf("primitiveGoType(axl:XUUID) = %q, want empty", got)
	}
	if got := zeroValue("*RPhone"); got != "nil" {
		t.Errorf("zeroValue(*RPhone) = %q", got)
	}
	if got := zeroValue("XUUID"); got != `XUUID("")` {
		t.Errorf("zeroValue(XUUID) = %q", got)
	}
}
