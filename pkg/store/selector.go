package store

import (
	"fmt"

	exprlang "github.com/expr-lang/expr"
)

// SubscribeExpr registers a computed (selector) subscription. src is an
// expr-lang expression evaluated with the state tree's top-level keys as its
// environment; onChange runs on any flush where the evaluated result differs
// from the previous one under Equal, with the same identity rules as path
// subscriptions.
//
// The expression is compiled once, at subscribe time; a compile error is
// returned and nothing is registered. An evaluation error during a flush is
// reported through the store's logger and skips that window's comparison, so
// the baseline is left untouched.
//
//	stop, err := s.SubscribeExpr(`summary.total * quantity`, func(old, next any) { ... })
func (s *Store) SubscribeExpr(src string, onChange func(old, next any)) (func(), error) {
	program, err := exprlang.Compile(src, exprlang.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compile selector %q: %w", src, err)
	}

	eval := func() (any, error) {
		env, _ := s.State().(map[string]any)
		if env == nil {
			env = map[string]any{}
		}
		return exprlang.Run(program, env)
	}

	prev, err := eval()
	if err != nil {
		s.logger.Warn("selector evaluation failed at subscribe",
			"selector", src,
			"error", err)
		prev = Absent
	}

	return s.registry.add(func() {
		next, err := eval()
		if err != nil {
			s.logger.Warn("selector evaluation failed during flush",
				"selector", src,
				"error", err)
			return
		}
		if Equal(prev, next) {
			prev = next
			return
		}
		old := prev
		prev = next
		onChange(old, next)
	}), nil
}
