/* SPDX-License-Identifier: MPL-2.0
 * Copyright 2026 CUCM Community
 *
 * See CONTRIBUTORS.md for full contributor list.
 */

package axlgen

import (
	"strings"
	"unicode"
)

// Operation kinds, keyed on the operation name prefix. The kind decides
// how arguments are shaped and how the response is unwrapped.
type opKind int

const (
	kindPassthrough opKind = iota
	kindGet
	kindList
	kindAdd
	kindUpdate
	kindNumDevices
	kindOSVersion
	kindCCMVersion
	kindListChange
	kindSQLQuery
)

// Prefixes that map to plain pass-through wrappers.
var passthroughPrefixes = []string{
	"remove", "do", "apply", "reset", "restart",
	"wipe", "lock", "assign", "unassign", "execute",
}

// kindOf classifies an operation by name. Specials are matched before
// their generic prefix.
func kindOf(name string) opKind {
	switch {
	case strings.HasPrefix(name, "getNumDevices"):
		return kindNumDevices
	case strings.HasPrefix(name, "getOSVersion"):
		return kindOSVersion
	case strings.HasPrefix(name, "getCCMVersion"):
		return kindCCMVersion
	case strings.HasPrefix(name, "listChange"):
		return kindListChange
	case strings.HasPrefix(name, "executeSQLQuery"):
		return kindSQLQuery
	case strings.HasPrefix(name, "get"):
		return kindGet
	case strings.HasPrefix(name, "list"):
		return kindList
	case strings.HasPrefix(name, "add"):
		return kindAdd
	case strings.HasPrefix(name, "update"):
		return kindUpdate
	}
	for _, p := range passthroughPrefixes {
		if strings.HasPrefix(name, p) {
			return kindPassthrough
		}
	}
	return kindPassthrough
}

// resultElement derives the response unwrap key from the operation
// name: strip the leading verb up to the first capital letter and lower
// the first remaining letter, so getPhone unwraps through "phone" and
// listRoutePlan through "routePlan". getOSVersion is special-cased to
// "os" by its kind.
func resultElement(operation string) string {
	for i, r := range operation {
		if unicode.IsUpper(r) {
			rest := operation[i:]
			return strings.ToLower(rest[:1]) + rest[1:]
		}
	}
	return operation
}

var reservedWords = map[string]string{
	"break": "break_", "default": "default_", "func": "func_",
	"interface": "interface_", "select": "select_", "case": "case_",
	"defer": "defer_", "go": "go_", "map": "map_", "struct": "struct_",
	"chan": "chan_", "else": "else_", "goto": "goto_", "package": "package_",
	"switch": "switch_", "const": "const_", "fallthrough": "fallthrough_",
	"if": "if_", "range": "range_", "type": "type_", "continue": "continue_",
	"for": "for_", "import": "import_", "return": "return_", "var": "var_",
	"class": "class_",
}

// replaceReserved renames Go reserved words and strips characters that
// cannot appear in an identifier. Used for unexported identifiers such
// as generated parameter names; exported names escape reserved words by
// capitalization alone.
func replaceReserved(identifier string) string {
	if v := reservedWords[identifier]; v != "" {
		return v
	}
	return normalize(identifier)
}

func normalize(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, value)
}

// exported turns a schema name into an exported Go identifier.
func exported(name string) string {
	name = normalize(name)
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

var xsdGoTypes = map[string]string{
	"string": "string", "token": "string", "anyuri": "string",
	"float": "float32", "double": "float64", "decimal": "float64",
	"integer": "int", "int": "int", "short": "int16", "byte": "int8",
	"long": "int64", "boolean": "bool", "nonnegativeinteger": "uint",
	"unsignedint": "uint32", "unsignedshort": "uint16",
	"unsignedbyte": "byte", "unsignedlong": "uint64",
	"base64binary": "[]byte", "hexbinary": "[]byte",
	"anytype": "string", "anysimpletype": "string",
}

// primitiveGoType maps an xsd primitive (with or without namespace
// prefix) to its Go counterpart, or returns "" for schema-defined types.
func primitiveGoType(xsdType string) string {
	name := xsdType
	if i := strings.Index(name, ":"); i >= 0 {
		name = name[i+1:]
	}
	return xsdGoTypes[strings.ToLower(name)]
}

// zeroValue returns the literal zero of a generated Go type.
func zeroValue(goType string) string {
	switch {
	case goType == "", strings.HasPrefix(goType, "*"), strings.HasPrefix(goType, "[]"):
		return "nil"
	case goType == "bool":
		return "false"
	case goType == "string":
		return `""`
	case strings.HasPrefix(goType, "int"), strings.HasPrefix(goType, "uint"),
		strings.HasPrefix(goType, "float"), goType == "byte":
		return "0"
	default:
		// Named simple-type aliases are string-based.
		return goType + `("")`
	}
}
