package main

import "github.com/charithe/infixcalc/pkg/calculator"

// localSession runs a session against an in-process processor.
type localSession struct {
	proc    *calculator.Processor
	history *calculator.History
}

func newLocalSession(maxHistory int) *localSession {
	return &localSession{
		proc:    calculator.NewProcessor(),
		history: calculator.NewHistory(maxHistory),
	}
}

func (s *localSession) Push(input string) (calculator.Display, error) {
	snap := s.proc.Backup()
	if err := s.proc.ParseAndPush(input); err != nil {
		s.proc.Restore(snap)
		return s.proc.Display(), err
	}

	s.history.Push(snap)
	return s.proc.Display(), nil
}

func (s *localSession) Undo() (calculator.Display, error) {
	if snap, ok := s.history.Pop(); ok {
		s.proc.Restore(snap)
	}
	return s.proc.Display(), nil
}

func (s *localSession) Reset() (calculator.Display, error) {
	s.history.Push(s.proc.Backup())
	s.proc.Reset()
	return s.proc.Display(), nil
}

func (s *localSession) UseAngleMode(mode calculator.AngleMode) (calculator.Display, error) {
	s.proc.UseAngleMode(mode)
	return s.proc.Display(), nil
}

func (s *localSession) Close() error {
	return nil
}
