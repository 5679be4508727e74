/* SPDX-License-Identifier: MPL-2.0
 * Copyright 2026 CUCM Community
 *
 * See CONTRIBUTORS.md for full contributor list.
 */

package wsdl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
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
      <xsd:complexType name="RPhoneRes">
        <xsd:sequence>
          <xsd:element name="phone" type="axl:RPhone" minOccurs="0" maxOccurs="unbounded"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="RPhone">
        <xsd:sequence>
          <xsd:element name="name" type="xsd:string"/>
          <xsd:element name="description" type="xsd:string" minOccurs="0"/>
        </xsd:sequence>
        <xsd:attribute name="uuid" type="axl:XUUID"/>
      </xsd:complexType>
      <xsd:simpleType name="XUUID">
        <xsd:restriction base="xsd:string">
          <xsd:pattern value="\{........-....-....-....-............\}"/>
        </xsd:restriction>
      </xsd:simpleType>
    </xsd:schema>
  </types>
  <message name="getPhoneIn">
    <part name="parameters" element="axl:getPhone"/>
  </message>
  <message name="getPhoneOut">
    <part name="parameters" element="axl:getPhoneResponse"/>
  </message>
  <portType name="AXLPort">
    <operation name="getPhone">
      <input message="tns:getPhoneIn"/>
      <output message="tns:getPhoneOut"/>
    </operation>
  </portType>
  <binding name="AXLAPIBinding" type="tns:AXLPort">
    <soap:binding transport="http://schemas.xmlsoap.org/soap/http" style="document"/>
    <operation name="getPhone">
      <soap:operation soapAction="CUCM:DB ver=14.0 getPhone"/>
    </operation>
  </binding>
  <service name="AXLAPIService">
    <port name="AXLPort" binding="tns:AXLAPIBinding">
      <soap:address location="https://CCMSERVERNAME:8443/axl/"/>
    </port>
  </service>
</definitions>`

func parseSample(t *testing.T) *Definitions {
	t.Helper()
	def, err := Parse(strings.NewReader(sampleWSDL))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return def
}

func TestParse(t *testing.T) {
	def := parseSample(t)

	if def.Name != "AXLAPI" {
		t.Errorf("Unexpected document name %q", def.Name)
	}
	if def.TargetNamespace != "http://www.cisco.com/AXLAPIService/" {
		t.Errorf("Unexpected targetNamespace %q", def.TargetNamespace)
	}
	if len(def.Messages) != 2 || len(def.PortTypes) != 1 {
		t.Fatalf("Expected 2 messages and 1 portType, got %d and %d",
			len(def.Messages), len(def.PortTypes))
	}

	op := def.PortTypes[0].Operations[0]
	if op.Name != "getPhone" {
		t.Errorf("Unexpected operation name %q", op.Name)
	}
	if op.Input.Message != "tns:getPhoneIn" || op.Output.Message != "tns:getPhoneOut" {
		t.Errorf("Unexpected operation messages %+v", op)
	}
}

func TestSchemaModel(t *testing.T) {
	def := parseSample(t)

	if len(def.Types.Schemas) != 1 {
		t.Fatalf("Expected 1 schema, got %d", len(def.Types.Schemas))
	}
	schema := def.Types.Schemas[0]
	if schema.ElementFormDefault != "qualified" {
		t.Errorf("Unexpected elementFormDefault %q", schema.ElementFormDefault)
	}

	elem := def.ElementByName("axl:getPhone")
	if elem == nil {
		t.Fatal("getPhone element not found")
	}
	if elem.ComplexType == nil || len(elem.ComplexType.Elements()) != 2 {
		t.Fatalf("Unexpected inline type %+v", elem.ComplexType)
	}
	if elem.ComplexType.Elements()[0].Name != "name" {
		t.Errorf("Unexpected first child %+v", elem.ComplexType.Elements()[0])
	}
	if elem.ComplexType.Elements()[0].MinOccurs != "0" {
		t.Errorf("Expected minOccurs 0, got %q", elem.ComplexType.Elements()[0].MinOccurs)
	}

	phone := def.ComplexTypeByName("RPhone")
	if phone == nil {
		t.Fatal("RPhone complexType not found")
	}
	if len(phone.Attributes) != 1 || phone.Attributes[0].Name != "uuid" {
		t.Errorf("Unexpected attributes %+v", phone.Attributes)
	}

	uuid := def.SimpleTypeByName("XUUID")
	if uuid == nil {
		t.Fatal("XUUID simpleType not found")
	}
	if StripNS(uuid.Restriction.Base) != "string" {
		t.Errorf("Unexpected restriction base %q", uuid.Restriction.Base)
	}
	if uuid.Restriction.Pattern == nil {
		t.Error("Expected a pattern facet")
	}
}

func TestLookupHelpers(t *testing.T) {
	def := parseSample(t)

	if m := def.Message("tns:getPhoneIn"); m == nil || m.Parts[0].Element != "axl:getPhone" {
		t.Errorf("Unexpected message lookup result %+v", m)
	}
	if m := def.Message("noSuchMessage"); m != nil {
		t.Errorf("Expected nil for unknown message, got %+v", m)
	}

	if action := def.SOAPAction("getPhone"); action != "CUCM:DB ver=14.0 getPhone" {
		t.Errorf("Unexpected soapAction %q", action)
	}
	if action := def.SOAPAction("noSuchOperation"); action != "" {
		t.Errorf("Expected empty soapAction, got %q", action)
	}

	if addr := def.ServiceAddress(); addr != "https://CCMSERVERNAME:8443/axl/" {
		t.Errorf("Unexpected service address %q", addr)
	}
}

func TestStripNS(t *testing.T) {
	tests := []struct{ in, want string }{
		{"xsd:string", "string"},
		{"axl:RPhone", "RPhone"},
		{"unqualified", "unqualified"},
	}
	for _, tt := range tests {
		if got := StripNS(tt.in); got != tt.want {
			t.Errorf("StripNS(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseFileResolvesIncludes(t *testing.T) {
	dir := t.TempDir()

	schema := `<?xml version="1.0" encoding="UTF-8"?>
<xsd:schema xmlns:xsd="http://www.w3.org/2001/XMLSchema"
    targetNamespace="http://www.cisco.com/AXL/API/14.0">
  <xsd:complexType name="RLine">
    <xsd:sequence>
      <xsd:element name="pattern" type="xsd:string"/>
    </xsd:sequence>
  </xsd:complexType>
</xsd:schema>`
	if err := os.WriteFile(filepath.Join(dir, "AXLSoap.xsd"), []byte(schema), 0o644); err != nil {
		t.Fatal(err)
	}

	doc := strings.Replace(sampleWSDL,
		`<xsd:schema targetNamespace="http://www.cisco.com/AXL/API/14.0" elementFormDefault="qualified">`,
		`<xsd:schema targetNamespace="http://www.cisco.com/AXL/API/14.0" elementFormDefault="qualified">
      <xsd:include schemaLocation="AXLSoap.xsd"/>`, 1)
	path := filepath.Join(dir, "AXLAPI.wsdl")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	def, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if len(def.Types.Schemas) != 2 {
		t.Fatalf("Expected the included schema to be appended, got %d schemas", len(def.Types.Schemas))
	}
	if def.ComplexTypeByName("RLine") == nil {
		t.Error("RLine from the included schema not found")
	}
}

func TestParseFileMissingInclude(t *testing.T) {
	dir := t.TempDir()
	doc := strings.Replace(sampleWSDL,
		`<xsd:schema targetNamespace="http://www.cisco.com/AXL/API/14.0" elementFormDefault="qualified">`,
		`<xsd:schema targetNamespace="http://www.cisco.com/AXL/API/14.0" elementFormDefault="qualified">
      <xsd:include schemaLocation="missing.xsd"/>`, 1)
	path := filepath.Join(dir, "AXLAPI.wsdl")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ParseFile(path); err == nil {
		t.Error("Expected an error for a missing schema include")
	}
}
