/*
File    : microscala/env/env.go
Derived from: github.com/akashmaji946/go-mix/scope/scope.go (doc-comment
              density, NewX constructor convention) reworked per spec.md §9's
              explicit redesign: a stack of scope frames rather than the
              source's flat map of context-name to map.

The source (_examples/original_source/MicroInterp.py) represents the
environment as env[contextName][identifier] = value, with two reserved
contexts (global, main) and a fresh disambiguated context per call. On
read/write, the global context is always consulted first; only then
does the current local context apply (spec.md §3 Environment
invariants). A stack of frames reproduces that exact externally
observable behavior — global-first, single active local frame — using
Go's own call-stack recursion to isolate each activation, eliminating
the need for name-suffix disambiguation entirely.
*/
package env

import "github.com/akashmaji946/microscala/value"

// Frame is one call activation's bindings: parameters and locals for a
// single function or main invocation.
type Frame struct {
	vars map[string]value.Value
}

// NewFrame creates an empty call frame.
func NewFrame() *Frame {
	return &Frame{vars: make(map[string]value.Value)}
}

// Environment holds the single global frame plus a stack of call
// frames. Only the top of the stack (the currently executing
// activation) is ever consulted — spec.md's original map-of-contexts
// never exposes an outer caller's locals to an inner callee, so a full
// lexical parent chain (as the teacher's scope.Scope implements) would
// be the wrong shape here.
type Environment struct {
	Global *Frame
	stack  []*Frame
}

// NewEnvironment creates an Environment with an empty global frame and
// no active call frames.
func NewEnvironment() *Environment {
	return &Environment{Global: NewFrame()}
}

// Push installs a fresh call frame, as spec.md §3 Lifecycle requires at
// `main` entry and at each function entry.
func (e *Environment) Push(f *Frame) {
	e.stack = append(e.stack, f)
}

// Pop destroys the current call frame, as required at matching exit.
func (e *Environment) Pop() {
	e.stack = e.stack[:len(e.stack)-1]
}

// current returns the innermost active call frame, or nil if none is
// active (true only before `main` is entered).
func (e *Environment) current() *Frame {
	if len(e.stack) == 0 {
		return nil
	}
	return e.stack[len(e.stack)-1]
}

// Lookup resolves name, checking the global frame first and falling
// back to the current local frame — the global-first shadowing rule of
// spec.md §3.
func (e *Environment) Lookup(name string) (value.Value, bool) {
	if v, ok := e.Global.vars[name]; ok {
		return v, true
	}
	if f := e.current(); f != nil {
		if v, ok := f.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign stores v under name, targeting the global frame if name
// already exists there, otherwise the current local frame (spec.md
// §4.3 Assignment semantics). A name that exists in neither is bound
// into the current local frame (or the global frame, before any call
// frame exists).
func (e *Environment) Assign(name string, v value.Value) {
	if _, ok := e.Global.vars[name]; ok {
		e.Global.vars[name] = v
		return
	}
	if f := e.current(); f != nil {
		f.vars[name] = v
		return
	}
	e.Global.vars[name] = v
}

// BindLocal binds name directly into the current call frame, used to
// install formal parameters and local `var` declarations without
// going through the global-first Assign rule (spec.md §4.3 steps 5-6).
func (e *Environment) BindLocal(name string, v value.Value) {
	f := e.current()
	if f == nil {
		e.Global.vars[name] = v
		return
	}
	f.vars[name] = v
}

// BindGlobal binds name directly into the global frame, used to
// install the object's top-level `var` declarations (spec.md §4.3).
func (e *Environment) BindGlobal(name string, v value.Value) {
	e.Global.vars[name] = v
}
