/* SPDX-License-Identifier: MPL-2.0
 * Copyright 2026 CUCM Community
 *
 * See CONTRIBUTORS.md for full contributor list.
 */

package cucmsdk

import (
	"encoding/xml"
)

// SOAP 1.1 constants. Every CUCM serviceability API speaks SOAP 1.1.
const (
	NamespaceSoap11   = "http://schemas.xmlsoap.org/soap/envelope/"
	SoapContentType11 = "text/xml; charset=\"utf-8\""
)

// Envelope is a SOAP 1.1 envelope.
type Envelope struct {
	XMLName xml.Name `xml:"http://schemas.xmlsoap.org/soap/envelope/ Envelope"`
	Header  *Header
	Body    Body
}

// Header is the optional SOAP header. The CUCM serviceability APIs do not
// require one; it is kept for callers that need to inject WS-* headers.
type Header struct {
	XMLName xml.Name `xml:"http://schemas.xmlsoap.org/soap/envelope/ Header"`

	Content interface{} `xml:",omitempty"`
}

// Body is a SOAP body holding either the operation payload or a fault.
type Body struct {
	XMLName xml.Name `xml:"http://schemas.xmlsoap.org/soap/envelope/ Body"`

	Fault   *Fault      `xml:",omitempty"`
	Content interface{} `xml:",omitempty"`
}

// Fault is a SOAP 1.1 fault. It implements error so a remote fault can be
// handed back as an ordinary value.
type Fault struct {
	XMLName xml.Name `xml:"http://schemas.xmlsoap.org/soap/envelope/ Fault"`

	Code   string `xml:"faultcode,omitempty"`
	String string `xml:"faultstring,omitempty"`
	Actor  string `xml:"faultactor,omitempty"`
	Detail string `xml:"detail,omitempty"`
}

// Error implements the error interface.
func (f *Fault) Error() string {
	if f.Code != "" {
		return "soap fault: " + f.Code + ": " + f.String
	}
	return "soap fault: " + f.String
}

// UnmarshalXML routes a Fault child into Body.Fault and decodes any other
// single child element into Body.Content. Content may be nil, in which
// case a non-fault payload is skipped; this is how fault probing on raw
// responses works.
func (b *Body) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var consumed bool

Loop:
	for {
		token, err := d.Token()
		if err != nil {
			return err
		}
		if token == nil {
			break
		}

		switch se := token.(type) {
		case xml.StartElement:
			if consumed {
				return xml.UnmarshalError("found multiple elements inside SOAP body; not wrapped-document/literal WS-I compliant")
			}
			if se.Name.Space == NamespaceSoap11 && se.Name.Local == "Fault" {
				b.Fault = &Fault{}
				b.Content = nil
				if err := d.DecodeElement(b.Fault, &se); err != nil {
					return err
				}
				consumed = true
			} else if b.Content == nil {
				if err := d.Skip(); err != nil {
					return err
				}
				consumed = true
			} else {
				if err := d.DecodeElement(b.Content, &se); err != nil {
					return err
				}
				consumed = true
			}
		case xml.EndElement:
			break Loop
		}
	}

	return nil
}
