// Command brandnum inspects and exercises the registered refined numeric
// domains from the shell: membership tests, casts, clamps, saturating
// operators and bounded random draws.
package main

import (
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
)

type shell struct {
	Global
	List     cmdList     `cmd:"" help:"list registered domains"`
	Describe cmdDescribe `cmd:"" help:"print the descriptor of the selected domain"`
	Is       cmdIs       `cmd:"" help:"report whether a number is a member of the domain"`
	Cast     cmdCast     `cmd:"" help:"validate a number, failing with the domain message"`
	Clamp    cmdClamp    `cmd:"" help:"map any number into the domain"`
	Op       cmdOp       `cmd:"" help:"apply a saturating operator to domain members"`
	Random   cmdRandom   `cmd:"" help:"draw uniformly from the domain"`
}

func main() {
	log.SetFlags(log.Flags() | log.Lshortfile)

	cfg, err := ParseConfig()
	if err != nil {
		log.Fatalln(err)
	}

	if err = logCause(run(os.Args[1:], cfg, os.Stdout, os.Stderr)); err != nil {
		os.Exit(1)
	}
}

// run parses args and executes the selected command, writing results to out
// and usage text to errOut.
func run(args []string, cfg Config, out, errOut io.Writer) error {
	var (
		err    error
		cli    shell
		ctx    *kong.Context
		parser *kong.Kong
	)

	cli.Out = out
	parser, err = kong.New(
		&cli,
		kong.Name("brandnum"),
		kong.Description("refined numeric domains: cast, clamp, saturating arithmetic and bounded random draws"),
		cfg.vars(),
		kong.UsageOnError(),
		kong.Writers(out, errOut),
		kong.Bind(&cli.Global),
	)
	if err != nil {
		return errors.Wrap(err, "failed to build command line")
	}

	if ctx, err = parser.Parse(args); err != nil {
		return err
	}

	return ctx.Run()
}

// logCause logs the root cause of err and passes err through.
func logCause(err error) error {
	if err == nil {
		return nil
	}

	log.Println(errors.Cause(err))
	return err
}
