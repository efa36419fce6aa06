package main

import (
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/brandnum/numbers"
	"github.com/katalvlaran/brandnum/refined"
)

var (
	errArity         = errors.New("wrong number of operands")
	errZeroDivisor   = errors.New("divisor must be non-zero")
	errNotANumber    = errors.New("not a number")
	errNonZeroBounds = errors.New("--non-zero cannot be combined with --lo or --hi")
	errCount         = errors.New("--count must be positive")
)

// Global flags shared by every command.
type Global struct {
	Domain string    `help:"registered domain name, see list" short:"d" default:"${default_domain}"`
	Seed   int64     `help:"seed for random draws, 0 uses the crypto-seeded source" default:"${default_seed}"`
	Format string    `help:"output format" short:"o" enum:"text,json,yaml" default:"${default_format}"`
	Out    io.Writer `kong:"-"`
}

// kernel resolves the selected domain, bound to a seeded source when asked.
func (t *Global) kernel() (*refined.Kernel, error) {
	k, err := numbers.Get(t.Domain)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve domain")
	}
	if t.Seed != 0 {
		k = k.WithSource(rand.New(rand.NewSource(t.Seed)))
	}

	return k, nil
}

// result prints one number of the selected domain.
func (t *Global) result(v float64) error {
	return t.emit(refined.FormatNumber(v), resultView{Domain: t.Domain, Value: v})
}

// parseRaw reads any number, NaN and ±Infinity included, without domain checks.
func parseRaw(s string) (float64, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return x, nil
		}
		return 0, errors.Wrapf(errNotANumber, "%q", s)
	}

	return x, nil
}

type cmdList struct{}

func (t cmdList) Run(g *Global) error {
	names := numbers.Names()
	return g.emit(strings.Join(names, "\n"), names)
}

type cmdDescribe struct{}

func (t cmdDescribe) Run(g *Global) error {
	k, err := g.kernel()
	if err != nil {
		return err
	}

	d := k.Descriptor()
	view := descriptorView{
		Name:        canonicalName(g.Domain),
		Category:    d.Category.String(),
		Min:         d.Min,
		Max:         d.Max,
		MinValue:    k.MinValue(),
		MaxValue:    k.MaxValue(),
		ExcludeZero: d.ExcludeZero,
		TypeName:    d.TypeName,
	}

	return g.emit(view.String(), view)
}

// canonicalName returns the registered spelling of name.
func canonicalName(name string) string {
	name = strings.TrimSpace(name)
	for _, n := range numbers.Names() {
		if strings.EqualFold(n, name) {
			return n
		}
	}

	return name
}

type cmdIs struct {
	X string `arg:"" help:"number to test"`
}

func (t cmdIs) Run(g *Global) error {
	k, err := g.kernel()
	if err != nil {
		return err
	}

	_, err = k.Parse(t.X)
	member := err == nil

	return g.emit(strconv.FormatBool(member), membershipView{Domain: g.Domain, Input: t.X, Member: member})
}

type cmdCast struct {
	X string `arg:"" help:"number to validate"`
}

func (t cmdCast) Run(g *Global) error {
	k, err := g.kernel()
	if err != nil {
		return err
	}

	v, err := k.Parse(t.X)
	if err != nil {
		return errors.Wrap(err, "cast")
	}

	return g.result(v)
}

type cmdClamp struct {
	X string `arg:"" help:"number to clamp, NaN and Infinity accepted"`
}

func (t cmdClamp) Run(g *Global) error {
	k, err := g.kernel()
	if err != nil {
		return err
	}

	x, err := parseRaw(t.X)
	if err != nil {
		return err
	}

	return g.result(k.Clamp(x))
}

type cmdOp struct {
	Operator string   `arg:"" enum:"add,sub,mul,div,pow,min,max,abs" help:"operator: add, sub, mul, div, pow, min, max or abs"`
	Operands []string `arg:"" help:"domain members; put -- before negative operands"`
}

func (t cmdOp) Run(g *Global) error {
	k, err := g.kernel()
	if err != nil {
		return err
	}

	xs := make([]float64, 0, len(t.Operands))
	for _, raw := range t.Operands {
		x, err := k.Parse(raw)
		if err != nil {
			return errors.Wrapf(err, "operand %q", raw)
		}
		xs = append(xs, x)
	}

	v, err := t.apply(k, xs)
	if err != nil {
		return err
	}

	return g.result(v)
}

func (t cmdOp) apply(k *refined.Kernel, xs []float64) (float64, error) {
	switch t.Operator {
	case "min":
		return k.MinOf(xs...)
	case "max":
		return k.MaxOf(xs...)
	case "abs":
		if len(xs) != 1 {
			return 0, errors.Wrapf(errArity, "abs takes 1, got %d", len(xs))
		}
		return k.Abs(xs[0]), nil
	}

	if len(xs) != 2 {
		return 0, errors.Wrapf(errArity, "%s takes 2, got %d", t.Operator, len(xs))
	}
	a, b := xs[0], xs[1]

	switch t.Operator {
	case "add":
		return k.Add(a, b), nil
	case "sub":
		return k.Sub(a, b), nil
	case "mul":
		return k.Mul(a, b), nil
	case "div":
		if b == 0 {
			return 0, errors.WithStack(errZeroDivisor)
		}
		return k.Div(a, b), nil
	case "pow":
		return k.Pow(a, b), nil
	default:
		return 0, errors.Errorf("unknown operator %q", t.Operator)
	}
}

type cmdRandom struct {
	Lo      string `help:"lower bound, clamped into the domain"`
	Hi      string `help:"upper bound, clamped into the domain"`
	NonZero bool   `help:"never draw 0"`
	Count   int    `help:"number of draws" short:"n" default:"1"`
}

func (t cmdRandom) Run(g *Global) error {
	if t.Count < 1 {
		return errors.Wrapf(errCount, "got %d", t.Count)
	}

	k, err := g.kernel()
	if err != nil {
		return err
	}

	draw, err := t.drawer(k)
	if err != nil {
		return err
	}

	values := make([]float64, 0, t.Count)
	lines := make([]string, 0, t.Count)
	for i := 0; i < t.Count; i++ {
		v := draw()
		values = append(values, v)
		lines = append(lines, refined.FormatNumber(v))
	}

	return g.emit(strings.Join(lines, "\n"), values)
}

func (t cmdRandom) drawer(k *refined.Kernel) (func() float64, error) {
	if t.NonZero {
		if t.Lo != "" || t.Hi != "" {
			return nil, errors.WithStack(errNonZeroBounds)
		}
		return k.RandomNonZero, nil
	}
	if t.Lo == "" && t.Hi == "" {
		return k.Random, nil
	}

	lo, hi := k.MinValue(), k.MaxValue()
	var err error
	if t.Lo != "" {
		if lo, err = parseRaw(t.Lo); err != nil {
			return nil, errors.Wrap(err, "--lo")
		}
	}
	if t.Hi != "" {
		if hi, err = parseRaw(t.Hi); err != nil {
			return nil, errors.Wrap(err, "--hi")
		}
	}

	return func() float64 { return k.RandomBetween(lo, hi) }, nil
}
