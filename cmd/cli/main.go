package main

import (
	"bufio"
	"context"
	"crypto/tls"
	"fmt"
	"os"
	"strings"

	"github.com/charithe/infixcalc/pkg/calculator"
	"github.com/charithe/infixcalc/pkg/logging"
	isatty "github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"gopkg.in/alecthomas/kingpin.v2"
)

const localHistory = 64

var (
	app = kingpin.New("Calculator CLI", "Infix calculator CLI")

	addr      = app.Flag("addr", "Server address").Default("localhost:8080").Envar("CALC_ADDR").String()
	angleMode = app.Flag("angle_mode", "Angle mode").Default("deg").Envar("CALC_ANGLE_MODE").Enum("deg", "rad")
	insecure  = app.Flag("insecure", "Trust unknown CAs").Bool()
	local     = app.Flag("local", "Evaluate in-process instead of calling the server").Bool()
	logLevel  = app.Flag("log_level", "Log level").Default("warn").Envar("CALC_LOG_LEVEL").Enum(logging.Levels...)
	plaintext = app.Flag("plaintext", "Use unencrypted connection").Bool()

	evalCmd  = app.Command("eval", "Evaluate an expression")
	evalExpr = evalCmd.Arg("expr", "Expression").Required().Strings()

	sessionCmd = app.Command("session", "Interactive session. Each line is pushed as it is entered")
)

// session is the part of a calculator session the CLI drives. It is
// implemented by remote server sessions and by localSession.
type session interface {
	Push(input string) (calculator.Display, error)
	Undo() (calculator.Display, error)
	Reset() (calculator.Display, error)
	UseAngleMode(mode calculator.AngleMode) (calculator.Display, error)
	Close() error
}

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	app.FatalIfError(logging.Init("cli", *logLevel), "Failed to create logger")

	mode, err := calculator.ParseAngleMode(*angleMode)
	app.FatalIfError(err, "Invalid angle mode")

	switch cmd {
	case evalCmd.FullCommand():
		doEval(mode)
	case sessionCmd.FullCommand():
		doSession(mode)
	}
}

func doEval(mode calculator.AngleMode) {
	expr := strings.Join(*evalExpr, " ")

	var display calculator.Display
	if *local {
		proc := calculator.NewProcessor()
		proc.UseAngleMode(mode)
		if err := proc.ParseAndPush(expr); err != nil {
			zap.S().Errorw("Failed to parse expression", "error", err)
			os.Exit(1)
		}

		proc.Evaluate()
		display = proc.Display()
	} else {
		client, err := createClient()
		if err != nil {
			zap.S().Errorw("Failed to connect to server", "error", err)
			os.Exit(1)
		}
		defer client.Close()

		display, err = client.Evaluate(context.Background(), expr, mode)
		if err != nil {
			zap.S().Errorw("Evaluate call failed", "error", err)
			os.Exit(1)
		}
	}

	fmt.Println(formatValue(display.Result))
	if display.Result.Kind == calculator.ResultError {
		os.Exit(1)
	}
}

func doSession(mode calculator.AngleMode) {
	sess, cleanup, err := openSession()
	if err != nil {
		zap.S().Errorw("Failed to open session", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	display, err := sess.UseAngleMode(mode)
	if err != nil {
		zap.S().Errorw("Failed to set angle mode", "error", err)
		return
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd())
	if interactive {
		fmt.Println("Enter an expression per line; \"=\" evaluates. Commands: :undo :reset :deg :rad. Press Ctrl+D to end")
		fmt.Println(formatDisplay(display))
		fmt.Print("> ")
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			display, err = runLine(sess, line)
			if err != nil {
				if !calculator.IsInvalidUnit(err) {
					zap.S().Errorw("Session failed", "error", err)
					return
				}
				fmt.Fprintln(os.Stderr, err)
			}
			fmt.Println(formatDisplay(display))
		}

		if interactive {
			fmt.Print("> ")
		}
	}

	if err := scanner.Err(); err != nil {
		zap.S().Errorw("Failed to read input", "error", err)
	}

	if err := sess.Close(); err != nil {
		zap.S().Warnw("Failed to close session", "error", err)
	}
}

func runLine(sess session, line string) (calculator.Display, error) {
	switch line {
	case ":undo":
		return sess.Undo()
	case ":reset":
		return sess.Reset()
	case ":deg":
		return sess.UseAngleMode(calculator.Degree)
	case ":rad":
		return sess.UseAngleMode(calculator.Radian)
	default:
		return sess.Push(line)
	}
}

func openSession() (session, func(), error) {
	if *local {
		return newLocalSession(localHistory), func() {}, nil
	}

	client, err := createClient()
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	sess, err := client.OpenSession(ctx)
	if err != nil {
		cancel()
		client.Close()
		return nil, nil, err
	}

	return sess, func() {
		cancel()
		client.Close()
	}, nil
}

func createClient() (*calculator.Client, error) {
	var dialOpts []grpc.DialOption
	if *plaintext {
		dialOpts = append(dialOpts, grpc.WithInsecure())
	} else {
		tlsConf := &tls.Config{
			InsecureSkipVerify: *insecure,
		}
		dialOpts = append(dialOpts, grpc.WithTransportCredentials(credentials.NewTLS(tlsConf)))
	}

	conn, err := grpc.Dial(*addr, dialOpts...)
	if err != nil {
		return nil, err
	}

	return calculator.NewClient(conn), nil
}
