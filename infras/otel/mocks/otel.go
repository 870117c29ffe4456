package mocks

import (
	"context"
	"spa/infras/otel"
	"sync"
)

// Otel hands out scopes that record what was traced, for assertions in tests.
type Otel struct {
	mu     sync.Mutex
	scopes []*Scope
}

func NewOtel() *Otel {
	return &Otel{}
}

func (o *Otel) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	scope := NewScope()
	scope.Name = scopeName
	scope.Span = spanName

	o.mu.Lock()
	o.scopes = append(o.scopes, scope)
	o.mu.Unlock()

	return ctx, scope
}

// Scopes returns the opened scopes in creation order.
func (o *Otel) Scopes() []*Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]*Scope(nil), o.scopes...)
}

// Find returns the last scope opened for the span name.
func (o *Otel) Find(span string) *Scope {
	scopes := o.Scopes()
	for i := len(scopes) - 1; i >= 0; i-- {
		if scopes[i].Span == span {
			return scopes[i]
		}
	}

	return nil
}

type Scope struct {
	Name       string
	Span       string
	Ended      bool
	Errors     []error
	Events     []string
	Attributes map[string]any

	mu sync.Mutex
}

func NewScope() *Scope {
	return &Scope{Attributes: map[string]any{}}
}

func (s *Scope) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Ended = true
}

func (s *Scope) TraceError(err error) {
	if err == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.Errors = append(s.Errors, err)
}

func (s *Scope) TraceIfError(err error) {
	s.TraceError(err)
}

func (s *Scope) AddEvent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Events = append(s.Events, name)
}

func (s *Scope) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Attributes[key] = value
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}
