// Package names defines the validated names and resolver-assigned
// identifiers that appear in declarations.
package names

import (
	"regexp"
	"strings"

	"github.com/io7m/jpra-sub001/errors"
)

const (
	typeNamePattern    = `^[A-Z][A-Za-z0-9_]{0,63}$`
	fieldNamePattern   = `^[a-z][A-Za-z0-9_]{0,63}$`
	packageNamePattern = `^[a-z][a-z0-9_]{0,63}(\.[a-z][a-z0-9_]{0,63})*$`
)

var (
	typeNameRe    = regexp.MustCompile(typeNamePattern)
	fieldNameRe   = regexp.MustCompile(fieldNamePattern)
	packageNameRe = regexp.MustCompile(packageNamePattern)
)

// TypeName is the name of a user-defined type, e.g. "Header".
type TypeName string

// FieldName is the name of a record, packed or boolean-set field, e.g. "length".
type FieldName string

// PackageName is a dotted package name, e.g. "com.example.net".
type PackageName string

// Identifier is the unique number the resolver assigns to each declared name.
type Identifier uint64

// NewTypeName validates s as a type name.
func NewTypeName(s string) (TypeName, error) {
	if !typeNameRe.MatchString(s) {
		return "", errors.InvalidName("type name", s, typeNamePattern)
	}
	return TypeName(s), nil
}

// NewFieldName validates s as a field name.
func NewFieldName(s string) (FieldName, error) {
	if !fieldNameRe.MatchString(s) {
		return "", errors.InvalidName("field name", s, fieldNamePattern)
	}
	return FieldName(s), nil
}

// NewPackageName validates s as a package name.
func NewPackageName(s string) (PackageName, error) {
	if !packageNameRe.MatchString(s) {
		return "", errors.InvalidName("package name", s, packageNamePattern)
	}
	return PackageName(s), nil
}

// Segments returns the dot-separated components of the package name.
func (p PackageName) Segments() []string {
	return strings.Split(string(p), ".")
}

// QualifiedTypeName is the resolved form of a type reference.
type QualifiedTypeName struct {
	Package PackageName
	Type    TypeName
}

// Qualify returns the qualified name of t in package p.
func Qualify(p PackageName, t TypeName) QualifiedTypeName {
	return QualifiedTypeName{Package: p, Type: t}
}

// String renders the name as "package.Type".
func (q QualifiedTypeName) String() string {
	if q.Package == "" {
		return string(q.Type)
	}
	return string(q.Package) + "." + string(q.Type)
}

// FieldPath is a dotted sequence of field names, e.g. "header.length".
type FieldPath []FieldName

// ParseFieldPath validates a dotted field path.
func ParseFieldPath(s string) (FieldPath, error) {
	parts := strings.Split(s, ".")
	path := make(FieldPath, 0, len(parts))
	for _, p := range parts {
		f, err := NewFieldName(p)
		if err != nil {
			return nil, err
		}
		path = append(path, f)
	}
	return path, nil
}

// Strings returns the path as plain strings, for diagnostics.
func (p FieldPath) Strings() []string {
	out := make([]string, len(p))
	for i, f := range p {
		out[i] = string(f)
	}
	return out
}

func (p FieldPath) String() string {
	return strings.Join(p.Strings(), ".")
}
