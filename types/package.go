package types

import (
	"github.com/io7m/jpra-sub001/errors"
	"github.com/io7m/jpra-sub001/names"
)

// Package is the scope of the types declared between a package-begin and
// its package-end.
type Package struct {
	types map[names.TypeName]UserDefined
	name  names.PackageName
	order []UserDefined
}

// NewPackage returns an empty package scope.
func NewPackage(name names.PackageName) *Package {
	return &Package{
		types: make(map[names.TypeName]UserDefined),
		name:  name,
	}
}

// Name returns the package name.
func (p *Package) Name() names.PackageName {
	return p.name
}

// Add registers t. Registering a name twice is a contract violation.
func (p *Package) Add(t UserDefined) {
	q := t.Name()
	errors.Require(q.Package == p.name, "type %s registered in package %s", q, p.name)
	_, exists := p.types[q.Type]
	errors.Require(!exists, "type %s already registered in package %s", q.Type, p.name)

	p.types[q.Type] = t
	p.order = append(p.order, t)
}

// Lookup returns the type called name.
func (p *Package) Lookup(name names.TypeName) (UserDefined, bool) {
	t, ok := p.types[name]
	return t, ok
}

// Types returns the registered types in declaration order.
func (p *Package) Types() []UserDefined {
	return append([]UserDefined(nil), p.order...)
}

// Len returns the number of registered types.
func (p *Package) Len() int {
	return len(p.order)
}

// Namespace is the global scope of every user-defined type checked in a
// session, across packages.
type Namespace struct {
	types    map[names.QualifiedTypeName]UserDefined
	packages map[names.PackageName]*Package
}

// NewNamespace returns an empty global namespace.
func NewNamespace() *Namespace {
	return &Namespace{
		types:    make(map[names.QualifiedTypeName]UserDefined),
		packages: make(map[names.PackageName]*Package),
	}
}

// Register adds t to the global namespace. Registering a name twice is a
// contract violation.
func (ns *Namespace) Register(t UserDefined) {
	_, exists := ns.types[t.Name()]
	errors.Require(!exists, "type %s already registered", t.Name())
	ns.types[t.Name()] = t
}

// Discard removes the types registered for p, a package that will not be
// completed. A completed package cannot be discarded.
func (ns *Namespace) Discard(p *Package) {
	_, completed := ns.packages[p.Name()]
	errors.Require(!completed, "package %s discarded after completion", p.Name())
	for _, t := range p.order {
		delete(ns.types, t.Name())
	}
}

// Lookup returns the type with the qualified name q.
func (ns *Namespace) Lookup(q names.QualifiedTypeName) (UserDefined, bool) {
	t, ok := ns.types[q]
	return t, ok
}

// AddPackage records a completed package scope.
func (ns *Namespace) AddPackage(p *Package) {
	_, exists := ns.packages[p.Name()]
	errors.Require(!exists, "package %s already completed", p.Name())
	ns.packages[p.Name()] = p
}

// Package returns the completed package scope called name.
func (ns *Namespace) Package(name names.PackageName) (*Package, bool) {
	p, ok := ns.packages[name]
	return p, ok
}

// Len returns the number of registered types.
func (ns *Namespace) Len() int {
	return len(ns.types)
}
