/* SPDX-License-Identifier: MPL-2.0
 * Copyright 2026 CUCM Community
 *
 * See CONTRIBUTORS.md for full contributor list.
 */

// Package axlgen reflects a parsed AXL WSDL into Go source: one struct
// per schema type and one typed wrapper method per portType operation.
// The operation name prefix (get, list, add, update, remove, do, ...)
// decides how arguments are shaped and which nested field the response
// is unwrapped through.
package axlgen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/cucmcommunity/cucm-go-sdk/wsdl"
)

// Generator turns one WSDL document into Go source files.
type Generator struct {
	def *wsdl.Definitions
	pkg string

	order    []string
	structs  map[string]*goStruct
	aliases  map[string]*goAlias
	elements map[string]string // schema element name -> Go type name

	// Skipped lists operations whose messages could not be resolved.
	Skipped []string
}

type goStruct struct {
	Name        string
	ElementName string // xml element for top-level request/response types
	Namespace   string
	Fields      []*goField
	Doc         string
}

type goField struct {
	Name    string
	Type    string
	Tag     string
	SrcName string
}

type goAlias struct {
	Name string
	Base string
	Doc  string
}

// method is the template model of one generated wrapper.
type method struct {
	Name         string
	OpName       string
	Action       string
	Doc          string
	RequestType  string
	ResponseType string
	NilRequest    bool   // allocate an empty request when nil is passed
	Wildcard      string // composite literal defaulting searchCriteria
	WildcardField string
	ChangeParam   string // listChange: single parameter name
	ChangeField   string // listChange: request field the parameter fills
	ChangeType    string
	ResultType    string
	Unwrap        string
	GuardReturn   bool
	Zero          string
}

// New prepares a generator for the given document, emitting source in
// the named package.
func New(def *wsdl.Definitions, pkg string) *Generator {
	return &Generator{
		def:      def,
		pkg:      pkg,
		structs:  make(map[string]*goStruct),
		aliases:  make(map[string]*goAlias),
		elements: make(map[string]string),
	}
}

// Generate flattens the document's schemas and emits the source files,
// keyed by file name. Output is template-rendered; run it through
// go/format before writing.
func (g *Generator) Generate() (map[string][]byte, error) {
	g.flattenTypes()

	methods, err := g.buildMethods()
	if err != nil {
		return nil, err
	}

	types, err := g.renderTypes()
	if err != nil {
		return nil, err
	}
	service, err := g.renderService(methods)
	if err != nil {
		return nil, err
	}

	return map[string][]byte{
		"types.go":   types,
		"service.go": service,
	}, nil
}

func (g *Generator) register(name string, st *goStruct) {
	if _, ok := g.structs[name]; ok {
		return
	}
	g.structs[name] = st
	g.order = append(g.order, name)
}

func (g *Generator) registerAlias(name string, a *goAlias) {
	if _, ok := g.aliases[name]; ok {
		return
	}
	g.aliases[name] = a
	g.order = append(g.order, name)
}

// flattenTypes walks every schema twice: the first pass registers all
// named types so references resolve regardless of declaration order,
// the second builds the fields.
func (g *Generator) flattenTypes() {
	type pending struct {
		st  *goStruct
		src *wsdl.ComplexType
		ns  string
	}
	var work []pending

	for _, schema := range g.def.Types.Schemas {
		for _, st := range schema.SimpleTypes {
			if st.Name == "" {
				continue
			}
			base := primitiveGoType(st.Restriction.Base)
			if base == "" {
				base = "string"
			}
			g.registerAlias(exported(st.Name), &goAlias{
				Name: exported(st.Name),
				Base: base,
			})
		}
		for _, ct := range schema.ComplexTypes {
			if ct.Name == "" {
				continue
			}
			st := &goStruct{Name: exported(ct.Name), Namespace: schema.TargetNamespace}
			g.register(st.Name, st)
			work = append(work, pending{st: st, src: ct, ns: schema.TargetNamespace})
		}
		for _, el := range schema.Elements {
			if el.Name == "" {
				continue
			}
			switch {
			case el.Type != "":
				g.elements[el.Name] = exported(wsdl.StripNS(el.Type))
			case el.ComplexType != nil:
				st := &goStruct{
					Name:        exported(el.Name),
					ElementName: el.Name,
					Namespace:   schema.TargetNamespace,
					Doc:         el.Documentation,
				}
				g.register(st.Name, st)
				g.elements[el.Name] = st.Name
				work = append(work, pending{st: st, src: el.ComplexType, ns: schema.TargetNamespace})
			case el.SimpleType != nil:
				base := primitiveGoType(el.SimpleType.Restriction.Base)
				if base == "" {
					base = "string"
				}
				g.registerAlias(exported(el.Name), &goAlias{Name: exported(el.Name), Base: base})
				g.elements[el.Name] = exported(el.Name)
			}
		}
	}

	for _, p := range work {
		g.buildFields(p.st, p.src, p.ns)
	}
}

func (g *Generator) buildFields(st *goStruct, src *wsdl.ComplexType, ns string) {
	for _, attr := range src.Attributes {
		if attr.Name == "" {
			continue
		}
		goType := primitiveGoType(attr.Type)
		if goType == "" {
			goType = g.namedType(attr.Type)
		}
		st.Fields = append(st.Fields, &goField{
			Name:    exported(attr.Name),
			Type:    goType,
			Tag:     fmt.Sprintf("`xml:\"%s,attr,omitempty\"`", attr.Name),
			SrcName: attr.Name,
		})
	}

	for _, child := range src.Elements() {
		name := child.Name
		if name == "" {
			name = wsdl.StripNS(child.Ref)
		}
		if name == "" {
			continue
		}

		goType := g.fieldType(st.Name, child, ns)
		tag := fmt.Sprintf("`xml:\"%s\"`", name)
		if child.MinOccurs == "0" {
			tag = fmt.Sprintf("`xml:\"%s,omitempty\"`", name)
		}
		st.Fields = append(st.Fields, &goField{
			Name:    exported(name),
			Type:    goType,
			Tag:     tag,
			SrcName: name,
		})
	}
}

func (g *Generator) fieldType(owner string, child *wsdl.Element, ns string) string {
	repeated := child.MaxOccurs == "unbounded"
	if !repeated && child.MaxOccurs != "" {
		if n, err := strconv.Atoi(child.MaxOccurs); err == nil && n > 1 {
			repeated = true
		}
	}

	var goType string
	switch {
	case child.Ref != "":
		goType = g.namedType(child.Ref)
	case child.Type != "":
		if p := primitiveGoType(child.Type); p != "" {
			goType = p
		} else {
			goType = g.namedType(child.Type)
		}
	case child.ComplexType != nil:
		// Inline type: synthesize a name scoped to the owner.
		nested := &goStruct{Name: owner + exported(child.Name), Namespace: ns}
		g.register(nested.Name, nested)
		g.buildFields(nested, child.ComplexType, ns)
		goType = "*" + nested.Name
	case child.SimpleType != nil:
		goType = primitiveGoType(child.SimpleType.Restriction.Base)
		if goType == "" {
			goType = "string"
		}
	default:
		goType = "string"
	}

	if repeated {
		return "[]" + strings.TrimPrefix(goType, "*")
	}
	return goType
}

// namedType resolves a schema type reference to a generated type name.
// Complex types are referenced by pointer; unresolvable names degrade
// to string, the dominant base of AXL's simple types.
func (g *Generator) namedType(ref string) string {
	name := exported(wsdl.StripNS(ref))
	if _, ok := g.aliases[name]; ok {
		return name
	}
	if _, ok := g.structs[name]; ok {
		return "*" + name
	}
	if el, ok := g.elements[wsdl.StripNS(ref)]; ok {
		if _, isStruct := g.structs[el]; isStruct {
			return "*" + el
		}
		return el
	}
	return "string"
}

func (g *Generator) buildMethods() ([]*method, error) {
	var methods []*method
	hasSQL := false

	for _, pt := range g.def.PortTypes {
		for _, op := range pt.Operations {
			m, err := g.buildMethod(op)
			if err != nil {
				g.Skipped = append(g.Skipped, fmt.Sprintf("%s: %v", op.Name, err))
				continue
			}
			if kindOf(op.Name) == kindSQLQuery {
				hasSQL = true
			}
			methods = append(methods, m)
		}
	}

	if hasSQL {
		g.overrideSQLResult()
	}
	return methods, nil
}

func (g *Generator) buildMethod(op *wsdl.Operation) (*method, error) {
	reqType, err := g.messageType(op.Input.Message)
	if err != nil {
		return nil, err
	}
	respType, err := g.messageType(op.Output.Message)
	if err != nil {
		return nil, err
	}

	m := &method{
		Name:         exported(op.Name),
		OpName:       op.Name,
		Action:       g.def.SOAPAction(op.Name),
		Doc:          firstLine(op.Documentation),
		RequestType:  reqType,
		ResponseType: respType,
		ResultType:   "*" + respType,
		Unwrap:       "response",
		Zero:         "nil",
	}

	kind := kindOf(op.Name)
	switch kind {
	case kindGet, kindList, kindOSVersion:
		m.NilRequest = true
		key := resultElement(op.Name)
		if kind == kindOSVersion {
			key = "os"
		}
		g.unwrapThrough(m, key)
		if kind == kindList {
			g.wildcardDefaults(m)
		}
	case kindAdd, kindUpdate, kindNumDevices, kindCCMVersion, kindPassthrough:
		g.unwrapReturn(m)
	case kindListChange:
		m.NilRequest = true
		if req := g.structs[reqType]; req != nil {
			for _, f := range req.Fields {
				if f.SrcName == "startChangeId" {
					m.ChangeParam = replaceReserved(f.SrcName)
					m.ChangeField = f.Name
					m.ChangeType = f.Type
					break
				}
			}
		}
	case kindSQLQuery:
		m.ResultType = "[]SQLRow"
		m.Unwrap = "response.Return.Rows"
		m.GuardReturn = true
		m.Zero = "nil"
	}
	return m, nil
}

// unwrapReturn points the method at the response's return field when
// one exists.
func (g *Generator) unwrapReturn(m *method) {
	resp := g.structs[m.ResponseType]
	if resp == nil {
		return
	}
	for _, f := range resp.Fields {
		if f.SrcName != "return" {
			continue
		}
		m.ResultType = f.Type
		m.Unwrap = "response." + f.Name
		m.Zero = zeroValue(f.Type)
		return
	}
}

// unwrapThrough points the method at return.<key> when the return type
// carries the named child, falling back to the plain return field.
func (g *Generator) unwrapThrough(m *method, key string) {
	resp := g.structs[m.ResponseType]
	if resp == nil {
		return
	}
	for _, f := range resp.Fields {
		if f.SrcName != "return" {
			continue
		}
		inner := g.structs[strings.TrimPrefix(f.Type, "*")]
		if inner == nil {
			break
		}
		for _, nested := range inner.Fields {
			if nested.SrcName != key {
				continue
			}
			m.ResultType = nested.Type
			m.Unwrap = fmt.Sprintf("response.%s.%s", f.Name, nested.Name)
			m.Zero = zeroValue(nested.Type)
			m.GuardReturn = strings.HasPrefix(f.Type, "*")
			return
		}
		break
	}
	g.unwrapReturn(m)
}

// wildcardDefaults builds the searchCriteria literal list operations
// fall back to: every string criterion set to the % wildcard, matching
// everything.
func (g *Generator) wildcardDefaults(m *method) {
	req := g.structs[m.RequestType]
	if req == nil {
		return
	}
	for _, f := range req.Fields {
		if f.SrcName != "searchCriteria" || !strings.HasPrefix(f.Type, "*") {
			continue
		}
		criteria := g.structs[strings.TrimPrefix(f.Type, "*")]
		if criteria == nil {
			return
		}
		var parts []string
		for _, cf := range criteria.Fields {
			if cf.Type == "string" {
				parts = append(parts, fmt.Sprintf(`%s: "%%"`, cf.Name))
			}
		}
		if len(parts) == 0 {
			return
		}
		m.WildcardField = f.Name
		m.Wildcard = fmt.Sprintf("&%s{%s}", criteria.Name, strings.Join(parts, ", "))
		return
	}
}

// overrideSQLResult replaces the flattened executeSQLQuery response
// with a fixed row/column shape; the row contents are dictated by the
// query, not the schema.
func (g *Generator) overrideSQLResult() {
	g.register("SQLResult", &goStruct{
		Name: "SQLResult",
		Fields: []*goField{
			{Name: "Rows", Type: "[]SQLRow", Tag: "`xml:\"row\"`", SrcName: "row"},
		},
	})
	g.register("SQLRow", &goStruct{
		Name: "SQLRow",
		Fields: []*goField{
			{Name: "Columns", Type: "[]SQLColumn", Tag: "`xml:\",any\"`"},
		},
	})
	g.register("SQLColumn", &goStruct{
		Name: "SQLColumn",
		Fields: []*goField{
			{Name: "XMLName", Type: "xml.Name", Tag: ""},
			{Name: "Value", Type: "string", Tag: "`xml:\",chardata\"`"},
		},
	})

	respName := g.elements["executeSQLQueryResponse"]
	if resp := g.structs[respName]; resp != nil {
		resp.Fields = []*goField{
			{Name: "Return", Type: "*SQLResult", Tag: "`xml:\"return,omitempty\"`", SrcName: "return"},
		}
	}
}

func (g *Generator) messageType(ref string) (string, error) {
	msg := g.def.Message(ref)
	if msg == nil {
		return "", fmt.Errorf("message %s not found", ref)
	}
	if len(msg.Parts) == 0 {
		return "", fmt.Errorf("message %s has no parts", msg.Name)
	}
	elem := wsdl.StripNS(msg.Parts[0].Element)
	if elem == "" {
		return "", fmt.Errorf("message %s part has no element", msg.Name)
	}
	goType, ok := g.elements[elem]
	if !ok {
		return "", fmt.Errorf("element %s not found in schemas", elem)
	}
	if _, isStruct := g.structs[goType]; !isStruct {
		return "", fmt.Errorf("element %s is not a structured type", elem)
	}
	return goType, nil
}

func (g *Generator) renderTypes() ([]byte, error) {
	needsXML := false
	for _, st := range g.structs {
		if st.ElementName != "" || st.Name == "SQLColumn" {
			needsXML = true
			break
		}
	}

	data := struct {
		Package  string
		NeedsXML bool
		Order    []string
		Structs  map[string]*goStruct
		Aliases  map[string]*goAlias
	}{g.pkg, needsXML, g.order, g.structs, g.aliases}

	var buf bytes.Buffer
	if err := typesTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) renderService(methods []*method) ([]byte, error) {
	data := struct {
		Package string
		Methods []*method
	}{g.pkg, methods}

	var buf bytes.Buffer
	if err := serviceTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

var typesTmpl = template.Must(template.New("types").Parse(typesTemplate))
var serviceTmpl = template.Must(template.New("service").Parse(serviceTemplate))
