// Package subkit provides refinement subtypes: a derived type that is, up to
// isomorphism, the set of base values satisfying a boolean predicate.
//
// A SubType[S, B] is the witness of that isomorphism for a derived type S
// over a base type B. It consists of the refinement predicate, an injection
// from S back to B (Val), and a constructor from B to S (Sub). In a
// proof-carrying language the constructor would demand a proof of the
// predicate; here the proof is erased, so Sub's precondition is enforced as a
// deterministic panic, and the safe entry point into S is InSub, which checks
// the predicate and reports failure through an optional result.
//
// The load-bearing guarantee of the package is that Val is injective: a
// refined value's only observable content is its embedded base value, so
// refined values embedding the same base value are the same value. With
// proofs erased this holds by construction for the Value carrier, and is a
// stated obligation for user supplied isomorphisms.
package subkit

import (
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/port/option"

	"go.llib.dev/eqkit"
	"go.llib.dev/eqkit/pkg/opt"
	"go.llib.dev/eqkit/pkg/pred"
)

const ErrPredicateViolated errorkit.Error = "[subkit] value does not satisfy the refinement predicate"

type Config struct {
	// Name identifies the refinement in diagnostics such as the Sub panic
	// message. Optional.
	Name string
}

func (c Config) Configure(t *Config) {
	if c.Name != "" {
		t.Name = c.Name
	}
}

// Name configures the diagnostic name of the refinement.
func Name(n string) option.Option[Config] {
	return option.Func[Config](func(c *Config) { c.Name = n })
}

// SubType is the isomorphism witness between a derived type S and the
// refinement of B by a predicate.
//
// The zero SubType is unusable; construct one with New, Wrapper or Of.
// SubType values are immutable and safe for concurrent use.
type SubType[S, B any] struct {
	pred pred.Pred[B]
	val  func(S) B
	sub  func(B) S
	name string
}

// New packages a user supplied isomorphism into a SubType.
//
// Obligations on the supplied functions, not checkable here:
//   - val(sub(x)) == x for every x satisfying p;
//   - every S value is produced by sub, so val is injective.
//
// sub is only ever invoked on predicate-satisfying values; the predicate
// check itself is owned by the returned SubType.
func New[S, B any](p pred.Pred[B], val func(S) B, sub func(B) S, opts ...option.Option[Config]) SubType[S, B] {
	if p == nil || val == nil || sub == nil {
		panic(eqkit.ErrNilFunc)
	}
	conf := option.Use[Config](opts)
	return SubType[S, B]{pred: p, val: val, sub: sub, name: conf.Name}
}

// Wrapper is the degenerate refinement with an always-true predicate:
// S is a pure newtype over B with no refinement content, and every operation
// is total.
func Wrapper[S, B any](val func(S) B, wrap func(B) S, opts ...option.Option[Config]) SubType[S, B] {
	return New(pred.Top[B](), val, wrap, opts...)
}

// Pred returns the refinement predicate.
func (st SubType[S, B]) Pred() pred.Pred[B] {
	return st.pred
}

// Name returns the diagnostic name of the refinement, if one was configured.
func (st SubType[S, B]) Name() string {
	return st.name
}

// Val projects a refined value back to its embedded base value.
// Val is total and injective.
func (st SubType[S, B]) Val(s S) B {
	return st.val(s)
}

// Sub constructs the refined value embedding x.
//
// Precondition: x satisfies the refinement predicate. A violation is a
// programmer error and panics with ErrPredicateViolated; silently accepting
// the value would break the injectivity of Val. Callers that cannot
// guarantee the precondition should use InSub instead.
func (st SubType[S, B]) Sub(x B) S {
	if !st.pred(x) {
		if st.name != "" {
			panic(ErrPredicateViolated.F("%s: %v", st.name, x))
		}
		panic(ErrPredicateViolated.F("%v", x))
	}
	return st.sub(x)
}

// InSub attempts to lift an unverified base value into the refined type.
//
// It returns the refined value embedding x when the predicate holds, and the
// empty option otherwise. This is the only partial operation of the package,
// and the expected way for a caller to enter the refined type; failure is a
// normal outcome to branch on, never an error to escalate.
func (st SubType[S, B]) InSub(x B) opt.Opt[S] {
	if !st.pred(x) {
		return opt.None[S]()
	}
	return opt.Some(st.sub(x))
}

// InSubEq is InSub.
//
// The original distinction — a variant that computes by definitional
// unfolding when the predicate is syntactically reducible — is meaningful
// only inside a proof kernel; outside of one the two coincide.
func (st SubType[S, B]) InSubEq(x B) opt.Opt[S] {
	return st.InSub(x)
}

// InSubD is the total variant of InSub, substituting def when the predicate
// does not hold.
func (st SubType[S, B]) InSubD(def S, x B) S {
	return st.InSub(x).OrElse(def)
}

// Eq derives the equality capability of the refined type from the base
// type's capability through the Val injection, so a refinement joins the
// equality framework without restating a decision procedure.
func (st SubType[S, B]) Eq(base eqkit.Eq[B]) eqkit.Eq[S] {
	return eqkit.ByInjection(st.val, base)
}

// Value is the default refined value carrier for refinements that do not
// warrant a named type of their own. Its only content is the embedded base
// value; the predicate proof is fully erased. When B is comparable, Value[B]
// is comparable as well, and == on it agrees with == on the embedded values.
type Value[B any] struct {
	val B
}

// Val returns the embedded base value.
func (v Value[B]) Val() B {
	return v.val
}

// Of declares a refinement of B with Value[B] as its derived type.
func Of[B any](p pred.Pred[B], opts ...option.Option[Config]) SubType[Value[B], B] {
	return New[Value[B], B](p, Value[B].Val, func(x B) Value[B] { return Value[B]{val: x} }, opts...)
}
