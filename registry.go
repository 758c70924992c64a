package eqkit

import (
	"context"
	"reflect"
	"sync"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/option"
)

const (
	ErrNotRegistered     errorkit.Error = "[eqkit] no canonical equality is registered for the type"
	ErrAlreadyRegistered errorkit.Error = "[eqkit] a canonical equality is already registered for the type"
)

var reg registry

type registry struct {
	mutex  sync.RWMutex
	_init  sync.Once
	byType map[reflect.Type]*regRecord
}

type regRecord struct {
	Type reflect.Type
	// Op is the type-erased comparison, used for payload comparison
	// of tagged unions where the static element type is not known.
	Op func(x, y any) bool
	// Eq holds the original Eq[T] value for typed lookup.
	Eq any
}

type RegisterConfig struct {
	AllowReplace bool
}

func (c RegisterConfig) Configure(t *RegisterConfig) { *t = c }

// Replace permits Register to overwrite an already registered canonical
// instance. Replacing is logged, since a type silently swapping equality
// semantics mid-process is almost always a mistake.
func Replace() option.Option[RegisterConfig] {
	return option.Func[RegisterConfig](func(c *RegisterConfig) { c.AllowReplace = true })
}

// Register publishes eq as the canonical equality capability of T.
//
// The registry is meant to be populated at package initialisation time and
// read afterwards; concurrent reads are safe. At most one canonical instance
// may exist per type: a second Register for the same type panics with
// ErrAlreadyRegistered unless the Replace option is supplied.
//
// The returned function unregisters the instance. It is primarily meant for
// tests:
//
//	defer eqkit.Register[MyID](eq)()
func Register[T any](eq Eq[T], opts ...option.Option[RegisterConfig]) func() {
	if eq.IsZero() {
		panic(ErrNilFunc)
	}
	conf := option.Use[RegisterConfig](opts)
	rec := &regRecord{
		Type: reflectkit.TypeOf[T](),
		Op:   func(x, y any) bool { return eq.Op(x.(T), y.(T)) },
		Eq:   eq,
	}
	reg.register(rec, conf)
	return func() { reg.unregister(rec) }
}

// Lookup returns the canonical equality capability of T, if one is registered.
func Lookup[T any]() (Eq[T], bool) {
	rec, ok := reg.lookupByType(reflectkit.TypeOf[T]())
	if !ok {
		return Eq[T]{}, false
	}
	return rec.Eq.(Eq[T]), true
}

// For returns the canonical equality capability of T,
// and panics with ErrNotRegistered when the type never joined the framework.
func For[T any]() Eq[T] {
	eq, ok := Lookup[T]()
	if !ok {
		panic(ErrNotRegistered.F("%T", *new(T)))
	}
	return eq
}

func (r *registry) init() {
	r._init.Do(func() { r.byType = make(map[reflect.Type]*regRecord) })
}

func (r *registry) register(rec *regRecord, conf RegisterConfig) {
	r.init()
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.byType[rec.Type]; ok {
		if !conf.AllowReplace {
			panic(ErrAlreadyRegistered.F("%s", rec.Type))
		}
		logger.Warn(context.Background(), "canonical equality capability got replaced",
			logger.Field("type", rec.Type.String()))
	}
	r.byType[rec.Type] = rec
}

func (r *registry) unregister(rec *regRecord) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if cur, ok := r.byType[rec.Type]; ok && cur == rec {
		delete(r.byType, rec.Type)
	}
}

func (r *registry) lookupByType(rt reflect.Type) (*regRecord, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	if r.byType == nil {
		return nil, false
	}
	rec, ok := r.byType[rt]
	return rec, ok
}

func (r *registry) lookupDynamic(rt reflect.Type) (func(x, y any) bool, bool) {
	rec, ok := r.lookupByType(rt)
	if !ok {
		return nil, false
	}
	return rec.Op, true
}
