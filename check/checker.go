package check

import (
	"go.uber.org/zap"

	"github.com/io7m/jpra-sub001/capability"
	"github.com/io7m/jpra-sub001/errors"
	"github.com/io7m/jpra-sub001/types"
)

// Options configures checker behavior.
type Options struct {
	// Policy decides which sizes and encodings are legal. Nil means the
	// standard policy.
	Policy capability.Policy
	// Logger overrides the package logger.
	Logger *zap.Logger
}

// DefaultOptions returns the standard policy with the package logger.
func DefaultOptions() Options {
	return Options{
		Policy: capability.Standard(),
	}
}

// Context selects the integer size axis applied to integer type expressions.
type Context uint8

const (
	// ContextNone applies no integer size check. Only :type and :size
	// commands are checked in it.
	ContextNone Context = iota
	ContextRecord
	ContextPacked
)

var contextNames = [...]string{
	ContextNone:   "none",
	ContextRecord: "record",
	ContextPacked: "packed",
}

func (c Context) String() string {
	if int(c) < len(contextNames) {
		return contextNames[c]
	}
	return "unknown"
}

// Checker checks declarations against a capability policy.
type Checker struct {
	policy    capability.Policy
	logger    *zap.Logger
	namespace *types.Namespace
	pkg       *types.Package
	context   Context
}

// New creates a Checker with an empty namespace.
func New(opts Options) *Checker {
	policy := opts.Policy
	if policy == nil {
		policy = capability.Standard()
	}
	log := opts.Logger
	if log == nil {
		log = Logger()
	}

	return &Checker{
		policy:    policy,
		logger:    log.Named("check"),
		namespace: types.NewNamespace(),
	}
}

// NewWithDefaults creates a Checker with default options.
func NewWithDefaults() *Checker {
	return New(DefaultOptions())
}

// Policy returns the capability policy in use.
func (c *Checker) Policy() capability.Policy {
	return c.policy
}

// Namespace returns the global namespace of every type declared so far.
func (c *Checker) Namespace() *types.Namespace {
	return c.namespace
}

// CurrentPackage returns the package currently open, or nil.
func (c *Checker) CurrentPackage() *types.Package {
	return c.pkg
}

// Context returns the current checking context.
func (c *Checker) Context() Context {
	return c.context
}

// Abort drops the package left open by a failed declaration, along with the
// types it declared, so that the checker accepts a new package-begin.
func (c *Checker) Abort() {
	c.context = ContextNone
	if c.pkg == nil {
		return
	}
	c.namespace.Discard(c.pkg)
	c.logger.Debug("package aborted",
		zap.String("package", string(c.pkg.Name())),
		zap.Int("types", c.pkg.Len()))
	c.pkg = nil
}

// enter switches to ctx for the duration of one declaration. The returned
// function restores ContextNone and must be deferred.
func (c *Checker) enter(ctx Context) func() {
	errors.Require(c.context == ContextNone, "entering %s context while in %s context", ctx, c.context)
	c.context = ctx
	return func() { c.context = ContextNone }
}
