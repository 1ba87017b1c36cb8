package calculator

import "fmt"

// engine implements an infix evaluator that reduces deferred operators by
// precedence as units arrive. pending holds only open brackets and binary
// operators; evaluated holds values not yet consumed by a pending operator.
// This is not thread-safe and should only be accessed by a single goroutine.
type engine struct {
	pending     []Unit
	evaluated   []float64
	lastUnit    Unit
	hasLastUnit bool
	accumulator float64
	angleMode   AngleMode
}

func (e *engine) push(u Unit) {
	if e.hasLastUnit {
		e.insertImplicit(u)
	}

	e.apply(u)
	e.lastUnit = u
	e.hasLastUnit = true
}

// insertImplicit synthesizes the unit implied between the previous unit and u.
// A close bracket or a unary operator counts as a completed value.
func (e *engine) insertImplicit(u Unit) {
	last := e.lastUnit
	valueDone := last.Kind == KindCloseBracket || last.isUnaryOperator()

	switch u.Kind {
	case KindOpenBracket:
		if last.Kind == KindOperand || valueDone {
			e.push(NewOperator(Multiply))
		}
	case KindOperand:
		switch {
		case last.Kind == KindOperand || last.isUnaryOperator():
			// only the latest value survives
			e.popEvaluated()
		case last.Kind == KindCloseBracket:
			e.push(NewOperator(Multiply))
		}
	case KindCloseBracket:
		if last.Kind == KindOpenBracket {
			e.push(NewOperand(0))
		}
	case KindOperator:
		if u.Op.IsUnary() {
			return
		}

		switch {
		case last.Kind == KindOpenBracket:
			e.push(NewOperand(0))
		case last.isBinaryOperator():
			e.popPending()
		}
	}
}

func (e *engine) apply(u Unit) {
	switch u.Kind {
	case KindOpenBracket:
		e.pending = append(e.pending, u)
	case KindCloseBracket:
		for len(e.pending) > 0 {
			top := e.popPending()
			if top.Kind == KindOpenBracket {
				break
			}
			e.reduce(top)
		}
	case KindOperand:
		e.evaluated = append(e.evaluated, u.Value)
	case KindOperator:
		tier := u.Op.Tier()
		for len(e.pending) > 0 {
			top := e.pending[len(e.pending)-1]
			if top.Kind != KindOperator || top.Op.Tier() < tier {
				break
			}
			e.popPending()
			e.reduce(top)
		}

		if u.Op.IsUnary() {
			e.reduce(u)
		} else {
			e.pending = append(e.pending, u)
		}
	}
}

// reduce applies an operator to values popped from evaluated. Open brackets
// are ignored, which is how unmatched ones are absorbed.
func (e *engine) reduce(u Unit) {
	if u.Kind != KindOperator {
		return
	}

	if u.Op.IsUnary() {
		v, ok := e.popEvaluated()
		if !ok {
			v = e.accumulator
		}
		e.evaluated = append(e.evaluated, u.Op.applyUnary(v, e.angleMode))
		return
	}

	right, ok := e.popEvaluated()
	if !ok {
		// nothing follows the operator
		return
	}

	left, ok := e.popEvaluated()
	if !ok {
		left = e.accumulator
	}

	e.evaluated = append(e.evaluated, u.Op.applyBinary(left, right))
}

func (e *engine) evaluate() {
	e.hasLastUnit = false
	e.lastUnit = Unit{}

	for len(e.pending) > 0 {
		e.reduce(e.popPending())
	}

	switch n := len(e.evaluated); n {
	case 0:
	case 1:
		e.accumulator = e.evaluated[0]
		e.evaluated = e.evaluated[:0]
	default:
		panic(fmt.Sprintf("incomplete expression: %d unused operands still in stack", n))
	}
}

func (e *engine) reset() {
	e.pending = nil
	e.evaluated = nil
	e.lastUnit = Unit{}
	e.hasLastUnit = false
	e.accumulator = 0
}

func (e *engine) popPending() Unit {
	n := len(e.pending)
	if n == 0 {
		return Unit{}
	}

	u := e.pending[n-1]
	e.pending = e.pending[:n-1]
	return u
}

func (e *engine) popEvaluated() (float64, bool) {
	n := len(e.evaluated)
	if n == 0 {
		return 0, false
	}

	v := e.evaluated[n-1]
	e.evaluated = e.evaluated[:n-1]
	return v, true
}

func (e *engine) insideBracket() bool {
	n := len(e.pending)
	return n > 0 && e.pending[n-1].Kind == KindOpenBracket
}

func (e *engine) openBrackets() int {
	count := 0
	for _, u := range e.pending {
		if u.Kind == KindOpenBracket {
			count++
		}
	}
	return count
}

// clone returns a deep copy that shares no memory with e.
func (e *engine) clone() engine {
	c := *e
	c.pending = append([]Unit(nil), e.pending...)
	c.evaluated = append([]float64(nil), e.evaluated...)
	return c
}
