// Package calculator implements an incremental infix calculator and the RPC
// service that exposes it.
package calculator

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// ResultKind classifies the value reported by Processor.Result.
type ResultKind int

const (
	// ResultFinal is a committed result.
	ResultFinal ResultKind = iota
	// ResultIntermediate is a value entered or computed but not yet committed.
	ResultIntermediate
	// ResultError means the committed result is NaN or infinite.
	ResultError
)

func (k ResultKind) String() string {
	switch k {
	case ResultFinal:
		return "final"
	case ResultIntermediate:
		return "intermediate"
	case ResultError:
		return "error"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

type Result struct {
	Kind  ResultKind
	Value float64
}

func (r Result) String() string {
	if r.Kind == ResultError {
		return "Error"
	}
	return strconv.FormatFloat(r.Value, 'g', -1, 64)
}

// Display holds what a calculator front-end needs to render its screen.
type Display struct {
	Result       Result
	LastOperator string
	OpenBrackets int
	AngleMode    AngleMode
}

// Snapshot is an independent copy of a processor's state.
type Snapshot struct {
	state engine
}

// Processor accepts calculator input one unit at a time and keeps a running result.
//
// Consecutive operands replace each other rather than being concatenated:
// callers that take digit-by-digit input must assemble the full number before
// pushing it.
//
// A Processor is not safe for concurrent use.
type Processor struct {
	engine engine
}

func NewProcessor() *Processor {
	return &Processor{}
}

// Push resolves token to a unit and pushes it. The token "=" evaluates.
func (p *Processor) Push(token string) error {
	if token == "=" {
		p.Evaluate()
		return nil
	}

	u, err := ParseUnit(token)
	if err != nil {
		return err
	}

	p.PushUnit(u)
	return nil
}

func (p *Processor) PushUnit(u Unit) {
	p.engine.push(u)
}

// ParseAndPush tokenizes expr and pushes each token in order, stopping at the
// first invalid one. Tokens before the invalid one stay pushed.
func (p *Processor) ParseAndPush(expr string) error {
	tokens, err := Tokenize(expr)
	if err != nil {
		return errors.Wrap(err, "failed to tokenize expression")
	}

	for _, tok := range tokens {
		if err := p.Push(tok); err != nil {
			return err
		}
	}

	return nil
}

// Evaluate reduces everything pending and commits the result.
func (p *Processor) Evaluate() {
	p.engine.evaluate()
}

// Eval evaluates and returns the classified result. ErrNumeric is returned
// alongside a ResultError result.
func (p *Processor) Eval() (Result, error) {
	p.Evaluate()
	r := p.Result()
	if r.Kind == ResultError {
		return r, ErrNumeric
	}
	return r, nil
}

// Result classifies the current state. While inside an unclosed bracket the
// value is reported as an intermediate 0; use Partial for the value in progress.
func (p *Processor) Result() Result {
	e := &p.engine
	switch {
	case math.IsNaN(e.accumulator) || math.IsInf(e.accumulator, 0):
		return Result{Kind: ResultError, Value: e.accumulator}
	case e.insideBracket():
		return Result{Kind: ResultIntermediate}
	case len(e.evaluated) > 0:
		return Result{Kind: ResultIntermediate, Value: e.evaluated[len(e.evaluated)-1]}
	default:
		return Result{Kind: ResultFinal, Value: e.accumulator}
	}
}

// Partial returns the most recent uncommitted value, if any.
func (p *Processor) Partial() (float64, bool) {
	n := len(p.engine.evaluated)
	if n == 0 {
		return 0, false
	}
	return p.engine.evaluated[n-1], true
}

// LastOperator returns the symbol of the last pushed unit if it was an operator.
func (p *Processor) LastOperator() (string, bool) {
	e := &p.engine
	if !e.hasLastUnit || e.lastUnit.Kind != KindOperator {
		return "", false
	}
	return e.lastUnit.Op.String(), true
}

// OpenBrackets counts the brackets opened and not yet closed.
func (p *Processor) OpenBrackets() int {
	return p.engine.openBrackets()
}

func (p *Processor) Display() Display {
	op, _ := p.LastOperator()
	return Display{
		Result:       p.Result(),
		LastOperator: op,
		OpenBrackets: p.OpenBrackets(),
		AngleMode:    p.engine.angleMode,
	}
}

func (p *Processor) UseAngleMode(mode AngleMode) {
	p.engine.angleMode = mode
}

func (p *Processor) AngleMode() AngleMode {
	return p.engine.angleMode
}

// Reset clears all input and the committed result. The angle mode is kept.
func (p *Processor) Reset() {
	p.engine.reset()
}

func (p *Processor) Backup() Snapshot {
	return Snapshot{state: p.engine.clone()}
}

// Restore replaces the processor state with s. The same snapshot may be restored any number of times.
func (p *Processor) Restore(s Snapshot) {
	p.engine = s.state.clone()
}
