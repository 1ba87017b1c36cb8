package calculator

import (
	"context"
	"io"

	"github.com/charithe/infixcalc/pkg/v1pb"
	"github.com/pkg/errors"
	"go.opencensus.io/stats"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/status"
)

const defaultMaxHistory = 64

// Service implements the RPC interface of the calculator
type Service struct {
	*health.Server
	angleMode  AngleMode
	maxHistory int
}

type ServiceOption func(*Service)

// WithAngleMode sets the angle mode new sessions start in.
func WithAngleMode(mode AngleMode) ServiceOption {
	return func(s *Service) {
		s.angleMode = mode
	}
}

// WithMaxHistory bounds the number of undo snapshots kept per session.
func WithMaxHistory(n int) ServiceOption {
	return func(s *Service) {
		s.maxHistory = n
	}
}

func NewService(opts ...ServiceOption) *Service {
	s := &Service{
		Server:     health.NewServer(),
		angleMode:  Degree,
		maxHistory: defaultMaxHistory,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Evaluate(ctx context.Context, req *v1pb.EvaluateRequest) (*v1pb.EvaluateResponse, error) {
	// if the context has already expired, we can avoid unnecessary work
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	proc := NewProcessor()
	proc.UseAngleMode(angleModeFromPB(req.AngleMode))

	if err := pushInput(ctx, proc, req.Expression+" ="); err != nil {
		return nil, toStatus(err)
	}

	return &v1pb.EvaluateResponse{Result: displayToPB(proc.Display())}, nil
}

func (s *Service) Session(stream v1pb.Calculator_SessionServer) error {
	ctx := stream.Context()

	proc := NewProcessor()
	proc.UseAngleMode(s.angleMode)

	history := NewHistory(s.maxHistory)

	for {
		req, err := stream.Recv()
		if err != nil {
			if err == io.EOF {
				return nil
			}

			zap.S().Warnw("Failed to receive request from stream", "error", err)
			return err
		}

		zap.S().Debugw("Session request", "command", req.Command, "input", req.Input)
		resp := &v1pb.SessionResponse{}

		switch req.Command {
		case v1pb.PUSH:
			snap := proc.Backup()
			if err := pushInput(ctx, proc, req.Input); err != nil {
				invalid, ok := errors.Cause(err).(*InvalidUnitError)
				if !ok {
					return toStatus(err)
				}

				// a rejected line leaves the session as it was
				proc.Restore(snap)
				resp.InvalidToken = invalid.Token
			} else {
				history.Push(snap)
			}
		case v1pb.UNDO:
			if snap, ok := history.Pop(); ok {
				proc.Restore(snap)
				stats.Record(ctx, mUndos.M(1))
			}
		case v1pb.RESET:
			history.Push(proc.Backup())
			proc.Reset()
		case v1pb.SET_ANGLE_MODE:
			proc.UseAngleMode(angleModeFromPB(req.AngleMode))
		default:
			return status.Errorf(codes.InvalidArgument, "unknown command: %s", req.Command)
		}

		resp.Result = displayToPB(proc.Display())
		if err := stream.Send(resp); err != nil {
			zap.S().Errorw("Failed to send response", "error", err)
			return err
		}
	}
}

// pushInput pushes every token of input into proc. Accepted tokens are only
// counted once the whole input has been pushed.
func pushInput(ctx context.Context, proc *Processor, input string) error {
	tokens, err := Tokenize(input)
	if err != nil {
		return err
	}

	for _, tok := range tokens {
		if err := proc.Push(tok); err != nil {
			// the tokens before tok are rolled back by the caller, so none count as pushed
			stats.Record(ctx, mInvalidUnits.M(1))
			return err
		}

		if tok == "=" && proc.Result().Kind == ResultError {
			stats.Record(ctx, mNumericErrors.M(1))
		}
	}

	stats.Record(ctx, mUnitsPushed.M(int64(len(tokens))))
	return nil
}

func toStatus(err error) error {
	if IsInvalidUnit(err) {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	zap.S().Errorw("Failed to evaluate", "error", err)
	return status.Error(codes.Internal, err.Error())
}

func angleModeFromPB(mode v1pb.AngleMode) AngleMode {
	if mode == v1pb.RADIAN {
		return Radian
	}
	return Degree
}

func angleModeToPB(mode AngleMode) v1pb.AngleMode {
	if mode == Radian {
		return v1pb.RADIAN
	}
	return v1pb.DEGREE
}

func displayToPB(d Display) *v1pb.Result {
	r := &v1pb.Result{
		Value:        d.Result.Value,
		LastOperator: d.LastOperator,
		OpenBrackets: int32(d.OpenBrackets),
		AngleMode:    angleModeToPB(d.AngleMode),
	}

	switch d.Result.Kind {
	case ResultIntermediate:
		r.Kind = v1pb.INTERMEDIATE
	case ResultError:
		r.Kind = v1pb.ERROR
	default:
		r.Kind = v1pb.FINAL
	}

	return r
}

func displayFromPB(r *v1pb.Result) Display {
	if r == nil {
		return Display{}
	}

	d := Display{
		Result:       Result{Value: r.Value},
		LastOperator: r.LastOperator,
		OpenBrackets: int(r.OpenBrackets),
		AngleMode:    angleModeFromPB(r.AngleMode),
	}

	switch r.Kind {
	case v1pb.INTERMEDIATE:
		d.Result.Kind = ResultIntermediate
	case v1pb.ERROR:
		d.Result.Kind = ResultError
	default:
		d.Result.Kind = ResultFinal
	}

	return d
}
