package calculator

import (
	"context"
	"io"

	"github.com/charithe/infixcalc/pkg/v1pb"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
)

// Client implements the RPC client for the Calculator service
type Client struct {
	conn   *grpc.ClientConn
	client v1pb.CalculatorClient
}

func NewClient(conn *grpc.ClientConn) *Client {
	return &Client{
		conn:   conn,
		client: v1pb.NewCalculatorClient(conn),
	}
}

// Evaluate evaluates a complete expression on the server.
func (c *Client) Evaluate(ctx context.Context, expr string, mode AngleMode) (Display, error) {
	resp, err := c.client.Evaluate(ctx, &v1pb.EvaluateRequest{
		Expression: expr,
		AngleMode:  angleModeToPB(mode),
	})
	if err != nil {
		return Display{}, err
	}

	return displayFromPB(resp.GetResult()), nil
}

// EvaluateStream pushes every token received from tokens into a fresh session
// and returns the display after the last one. The first rejected token aborts
// the stream; the rest of tokens is still consumed until it is closed, so the
// producer must close the channel.
func (c *Client) EvaluateStream(tokens <-chan string) (Display, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sess, err := c.OpenSession(ctx)
	if err != nil {
		drain(tokens)
		return Display{}, err
	}

	var display Display
	for tok := range tokens {
		display, err = sess.Push(tok)
		if err != nil {
			drain(tokens)
			return Display{}, err
		}
	}

	if err := sess.Close(); err != nil {
		return Display{}, err
	}

	return display, nil
}

// OpenSession starts a stateful session on the server.
func (c *Client) OpenSession(ctx context.Context) (*Session, error) {
	stream, err := c.client.Session(ctx)
	if err != nil {
		return nil, err
	}

	return &Session{stream: stream}, nil
}

func drain(tokens <-chan string) {
	for range tokens {
	}
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// Session is a client handle to a server-side evaluator.
// It is not safe for concurrent use.
type Session struct {
	stream v1pb.Calculator_SessionClient
}

// Push sends a line of input. If the server rejects it the session is left
// unchanged and an *InvalidUnitError is returned with the current display.
func (s *Session) Push(input string) (Display, error) {
	return s.roundTrip(&v1pb.SessionRequest{Command: v1pb.PUSH, Input: input})
}

// Undo reverts the most recent push or reset.
func (s *Session) Undo() (Display, error) {
	return s.roundTrip(&v1pb.SessionRequest{Command: v1pb.UNDO})
}

func (s *Session) Reset() (Display, error) {
	return s.roundTrip(&v1pb.SessionRequest{Command: v1pb.RESET})
}

func (s *Session) UseAngleMode(mode AngleMode) (Display, error) {
	return s.roundTrip(&v1pb.SessionRequest{Command: v1pb.SET_ANGLE_MODE, AngleMode: angleModeToPB(mode)})
}

// Close ends the session.
func (s *Session) Close() error {
	if err := s.stream.CloseSend(); err != nil {
		return err
	}

	if _, err := s.stream.Recv(); err != io.EOF {
		if err == nil {
			return errors.New("unexpected response after close")
		}
		return err
	}

	return nil
}

func (s *Session) roundTrip(req *v1pb.SessionRequest) (Display, error) {
	if err := s.stream.Send(req); err != nil {
		return Display{}, errors.Wrap(err, "failed to send request")
	}

	resp, err := s.stream.Recv()
	if err != nil {
		return Display{}, errors.Wrap(err, "failed to receive response")
	}

	display := displayFromPB(resp.GetResult())
	if resp.InvalidToken != "" {
		return display, &InvalidUnitError{Token: resp.InvalidToken}
	}

	return display, nil
}
