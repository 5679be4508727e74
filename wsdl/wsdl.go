/* SPDX-License-Identifier: MPL-2.0
 * Copyright 2026 CUCM Community
 *
 * See CONTRIBUTORS.md for full contributor list.
 */

// Package wsdl models the subset of WSDL 1.1 and inline XML Schema used
// by the CUCM AXL and serviceability service descriptions, and parses
// documents into it. Schema includes are resolved relative to the WSDL
// file; nothing is fetched over the network.
package wsdl

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	nsWSDL     = "http://schemas.xmlsoap.org/wsdl/"
	nsWSDLSOAP = "http://schemas.xmlsoap.org/wsdl/soap/"
)

// maxIncludeDepth bounds nested xsd:include resolution.
const maxIncludeDepth = 4

// Definitions is the root of a parsed WSDL document.
type Definitions struct {
	XMLName         xml.Name   `xml:"http://schemas.xmlsoap.org/wsdl/ definitions"`
	Name            string      `xml:"name,attr"`
	TargetNamespace string      `xml:"targetNamespace,attr"`
	Types           Types       `xml:"types"`
	Messages        []*Message  `xml:"message"`
	PortTypes       []*PortType `xml:"portType"`
	Bindings        []*Binding  `xml:"binding"`
	Services        []*Service  `xml:"service"`
}

// Types wraps the inline schemas of the document.
type Types struct {
	Schemas []*Schema `xml:"schema"`
}

// Message names the payload element of one direction of an operation.
type Message struct {
	Name  string  `xml:"name,attr"`
	Parts []*Part `xml:"part"`
}

// Part binds a message to a schema element or simple type.
type Part struct {
	Name    string `xml:"name,attr"`
	Element string `xml:"element,attr"`
	Type    string `xml:"type,attr"`
}

// PortType lists the abstract operations of a service interface.
type PortType struct {
	Name       string       `xml:"name,attr"`
	Operations []*Operation `xml:"operation"`
}

// Operation is one abstract operation with its input/output messages.
type Operation struct {
	Name          string             `xml:"name,attr"`
	Documentation string             `xml:"documentation"`
	Input         OperationMessage   `xml:"input"`
	Output        OperationMessage   `xml:"output"`
	Faults        []OperationMessage `xml:"fault"`
}

// OperationMessage references a named message.
type OperationMessage struct {
	Name    string `xml:"name,attr"`
	Message string `xml:"message,attr"`
}

// Binding maps a portType onto the SOAP transport.
type Binding struct {
	Name        string              `xml:"name,attr"`
	Type        string              `xml:"type,attr"`
	SOAPBinding SOAPBinding         `xml:"http://schemas.xmlsoap.org/wsdl/soap/ binding"`
	Operations  []*BindingOperation `xml:"operation"`
}

// SOAPBinding carries the transport and style of a binding.
type SOAPBinding struct {
	Transport string `xml:"transport,attr"`
	Style     string `xml:"style,attr"`
}

// BindingOperation carries the SOAPAction of one bound operation.
type BindingOperation struct {
	Name          string        `xml:"name,attr"`
	SOAPOperation SOAPOperation `xml:"http://schemas.xmlsoap.org/wsdl/soap/ operation"`
}

// SOAPOperation holds the soapAction header value.
type SOAPOperation struct {
	SOAPAction string `xml:"soapAction,attr"`
	Style      string `xml:"style,attr"`
}

// Service groups the concrete ports of the document.
type Service struct {
	Name  string  `xml:"name,attr"`
	Ports []*Port `xml:"port"`
}

// Port binds a binding to a concrete address.
type Port struct {
	Name    string      `xml:"name,attr"`
	Binding string      `xml:"binding,attr"`
	Address SOAPAddress `xml:"http://schemas.xmlsoap.org/wsdl/soap/ address"`
}

// SOAPAddress is the endpoint URL of a port.
type SOAPAddress struct {
	Location string `xml:"location,attr"`
}

// Schema is the XML Schema subset the AXL WSDL uses.
type Schema struct {
	TargetNamespace    string         `xml:"targetNamespace,attr"`
	ElementFormDefault string         `xml:"elementFormDefault,attr"`
	Includes           []*Include     `xml:"include"`
	Imports            []*Include     `xml:"import"`
	Elements           []*Element     `xml:"element"`
	ComplexTypes       []*ComplexType `xml:"complexType"`
	SimpleTypes        []*SimpleType  `xml:"simpleType"`
}

// Include references an external schema document by location.
type Include struct {
	Namespace      string `xml:"namespace,attr"`
	SchemaLocation string `xml:"schemaLocation,attr"`
}

// Element is a named or inline schema element declaration.
type Element struct {
	Name          string       `xml:"name,attr"`
	Type          string       `xml:"type,attr"`
	Ref           string       `xml:"ref,attr"`
	MinOccurs     string       `xml:"minOccurs,attr"`
	MaxOccurs     string       `xml:"maxOccurs,attr"`
	Nillable      bool         `xml:"nillable,attr"`
	Documentation string       `xml:"annotation>documentation"`
	ComplexType   *ComplexType `xml:"complexType"`
	SimpleType    *SimpleType  `xml:"simpleType"`
}

// ComplexType is a schema structure with sequence, choice or all content.
type ComplexType struct {
	Name       string       `xml:"name,attr"`
	Sequence   []*Element   `xml:"sequence>element"`
	Choice     []*Element   `xml:"choice>element"`
	All        []*Element   `xml:"all>element"`
	Attributes []*Attribute `xml:"attribute"`
}

// Elements returns the child elements regardless of whether the type
// uses sequence, choice or all content.
func (t *ComplexType) Elements() []*Element {
	if len(t.Sequence) > 0 {
		return t.Sequence
	}
	if len(t.Choice) > 0 {
		return t.Choice
	}
	return t.All
}

// Attribute is a schema attribute declaration.
type Attribute struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
	Use  string `xml:"use,attr"`
}

// SimpleType is a schema type restricting a base primitive.
type SimpleType struct {
	Name        string      `xml:"name,attr"`
	Restriction Restriction `xml:"restriction"`
}

// Restriction constrains a simple type's base.
type Restriction struct {
	Base         string      `xml:"base,attr"`
	Enumerations []EnumValue `xml:"enumeration"`
	Pattern      *EnumValue  `xml:"pattern"`
	MinLength    *EnumValue  `xml:"minLength"`
	MaxLength    *EnumValue  `xml:"maxLength"`
}

// EnumValue carries a facet value attribute.
type EnumValue struct {
	Value string `xml:"value,attr"`
}

// Parse reads a WSDL document. Schema includes are not resolved; use
// ParseFile when the document references sibling schema files.
func Parse(r io.Reader) (*Definitions, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	def := new(Definitions)
	if err := xml.Unmarshal(data, def); err != nil {
		return nil, fmt.Errorf("parsing wsdl: %w", err)
	}
	return def, nil
}

// ParseFile reads a WSDL document from disk and resolves xsd:include
// references relative to the document's directory.
func ParseFile(path string) (*Definitions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	def, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	resolved := make(map[string]bool)
	dir := filepath.Dir(path)
	for _, schema := range def.Types.Schemas {
		if err := resolveIncludes(def, schema, dir, resolved, 0); err != nil {
			return nil, err
		}
	}
	return def, nil
}

func resolveIncludes(def *Definitions, schema *Schema, dir string, resolved map[string]bool, depth int) error {
	if depth > maxIncludeDepth {
		return fmt.Errorf("schema includes nested deeper than %d levels", maxIncludeDepth)
	}

	for _, incl := range append(schema.Includes, schema.Imports...) {
		if incl.SchemaLocation == "" {
			continue
		}
		name := filepath.Base(incl.SchemaLocation)
		if resolved[name] {
			continue
		}
		resolved[name] = true

		location := incl.SchemaLocation
		if !filepath.IsAbs(location) {
			location = filepath.Join(dir, location)
		}
		data, err := os.ReadFile(location)
		if err != nil {
			return fmt.Errorf("resolving schema include %s: %w", incl.SchemaLocation, err)
		}

		included := new(Schema)
		if err := xml.Unmarshal(data, included); err != nil {
			return fmt.Errorf("parsing schema include %s: %w", incl.SchemaLocation, err)
		}

		def.Types.Schemas = append(def.Types.Schemas, included)
		if err := resolveIncludes(def, included, filepath.Dir(location), resolved, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Message returns the named message, ignoring any namespace prefix on
// name.
func (d *Definitions) Message(name string) *Message {
	name = StripNS(name)
	for _, m := range d.Messages {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// SOAPAction returns the soapAction value bound to the named operation,
// or the empty string when the operation is not bound.
func (d *Definitions) SOAPAction(operation string) string {
	for _, b := range d.Bindings {
		for _, op := range b.Operations {
			if op.Name == operation {
				return op.SOAPOperation.SOAPAction
			}
		}
	}
	return ""
}

// ServiceAddress returns the endpoint location of the first service
// port, the usual case for single-port CUCM service documents.
func (d *Definitions) ServiceAddress() string {
	for _, s := range d.Services {
		for _, p := range s.Ports {
			if p.Address.Location != "" {
				return p.Address.Location
			}
		}
	}
	return ""
}

// ElementByName returns the named top-level schema element across all
// schemas of the document, ignoring any namespace prefix on name.
func (d *Definitions) ElementByName(name string) *Element {
	name = StripNS(name)
	for _, s := range d.Types.Schemas {
		for _, e := range s.Elements {
			if e.Name == name {
				return e
			}
		}
	}
	return nil
}

// ComplexTypeByName returns the named top-level complex type across all
// schemas of the document.
func (d *Definitions) ComplexTypeByName(name string) *ComplexType {
	name = StripNS(name)
	for _, s := range d.Types.Schemas {
		for _, t := range s.ComplexTypes {
			if t.Name == name {
				return t
			}
		}
	}
	return nil
}

// SimpleTypeByName returns the named top-level simple type across all
// schemas of the document.
func (d *Definitions) SimpleTypeByName(name string) *SimpleType {
	name = StripNS(name)
	for _, s := range d.Types.Schemas {
		for _, t := range s.SimpleTypes {
			if t.Name == name {
				return t
			}
		}
	}
	return nil
}

// StripNS removes a namespace prefix from a qualified name:
// "xsd:string" becomes "string".
func StripNS(name string) string {
	if i := strings.Index(name, ":"); i >= 0 {
		return name[i+1:]
	}
	return name
}
