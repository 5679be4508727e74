/* SPDX-License-Identifier: MPL-2.0
 * Copyright 2026 CUCM Community
 *
 * See CONTRIBUTORS.md for full contributor list.
 */

package axlgen

const typesTemplate = `// Code generated by axlgen. DO NOT EDIT.

package {{.Package}}
{{if .NeedsXML}}
import "encoding/xml"
{{end}}
{{- range $name := .Order}}
{{- with index $.Aliases $name}}
type {{.Name}} {{.Base}}
{{end}}
{{- with index $.Structs $name}}
{{- if .Doc}}
// {{.Doc}}
{{- end}}
type {{.Name}} struct {
{{- if .ElementName}}
	XMLName xml.Name ` + "`" + `xml:"{{.Namespace}} {{.ElementName}}"` + "`" + `
{{- end}}
{{- range .Fields}}
	{{.Name}} {{.Type}} {{.Tag}}
{{- end}}
}
{{end}}
{{- end}}`

const serviceTemplate = `// Code generated by axlgen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/cucmcommunity/cucm-go-sdk/cucmsdk"
)

// Service invokes AXL operations through an authenticated client.
type Service struct {
	client *cucmsdk.Client
	path   string
}

// NewService wraps client for AXL calls. An empty path selects the
// standard axl/ endpoint.
func NewService(client *cucmsdk.Client, path string) *Service {
	if path == "" {
		path = "axl/"
	}
	return &Service{client: client, path: path}
}
{{range .Methods}}
{{- if .ChangeParam}}
// {{.Name}} wraps the {{.OpName}} operation. Only {{.ChangeParam}} is
// accepted; pass the zero value on the first call.
func (s *Service) {{.Name}}({{.ChangeParam}} {{.ChangeType}}) ({{.ResultType}}, error) {
	request := &{{.RequestType}}{ {{.ChangeField}}: {{.ChangeParam}} }
	response := new({{.ResponseType}})
	if err := s.client.Call(s.path, "{{.Action}}", request, response); err != nil {
		return {{.Zero}}, err
	}
	return {{.Unwrap}}, nil
}
{{- else}}
// {{.Name}} wraps the {{.OpName}} operation.{{if .Doc}}
// {{.Doc}}{{end}}
func (s *Service) {{.Name}}(request *{{.RequestType}}) ({{.ResultType}}, error) {
{{- if .NilRequest}}
	if request == nil {
		request = new({{.RequestType}})
	}
{{- end}}
{{- if .Wildcard}}
	if request.{{.WildcardField}} == nil {
		request.{{.WildcardField}} = {{.Wildcard}}
	}
{{- end}}
	response := new({{.ResponseType}})
	if err := s.client.Call(s.path, "{{.Action}}", request, response); err != nil {
		return {{.Zero}}, err
	}
{{- if .GuardReturn}}
	if response.Return == nil {
		return {{.Zero}}, nil
	}
{{- end}}
	return {{.Unwrap}}, nil
}
{{- end}}
{{end}}`
