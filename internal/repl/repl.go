// Package repl reads the line-oriented command stream and dispatches
// to the registry operations. Each line is one opcode character plus
// an argument string; every command fully completes before the next
// line is read.
package repl

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"vaxreg/internal/clock"
	"vaxreg/internal/i18n"
	"vaxreg/internal/log"
	"vaxreg/internal/presentation"
	"vaxreg/internal/registry"
)

// Matches the original command buffer size.
const maxLineLen = 65535

// REPL drives one registry instance from a command stream.
type REPL struct {
	in  io.Reader
	reg *registry.Registry
	clk *clock.Clock
	out *presentation.Formatter
}

// New creates a REPL for the given registry and clock, writing results
// to w in the selected language.
func New(in io.Reader, w io.Writer, reg *registry.Registry, clk *clock.Clock, lang i18n.Lang) *REPL {
	return &REPL{
		in:  in,
		reg: reg,
		clk: clk,
		out: presentation.NewFormatter(w, i18n.For(lang)),
	}
}

// Run processes commands until the quit opcode or end of input.
func (r *REPL) Run() error {
	sc := bufio.NewScanner(r.in)
	sc.Buffer(make([]byte, 0, 4096), maxLineLen)

	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		op := line[0]
		if op == 'q' {
			break
		}
		args := strings.TrimLeft(line[1:], " \t")
		r.dispatch(op, args)
	}
	return sc.Err()
}

func (r *REPL) dispatch(op byte, args string) {
	log.Debug(log.CatRepl, "command", "op", string(op))
	switch op {
	case 'c':
		r.register(args)
	case 'l':
		r.listBatches(args)
	case 't':
		r.advanceClock(args)
	case 'a':
		r.administer(args)
	case 'u':
		r.listInoculations(args)
	case 'r':
		r.retire(args)
	case 'd':
		r.revoke(args)
	default:
		// Unknown opcodes produce no output.
		log.Warn(log.CatRepl, "unknown command", "op", string(op))
	}
}

// register handles `c <id> <DD-MM-YYYY> <doses> <name>`.
func (r *REPL) register(args string) {
	sc := newScanner(args)
	id := sc.token()
	dateTok := sc.token()
	dosesTok := sc.token()
	name := strings.TrimSpace(sc.rest())

	if id == "" || dateTok == "" || dosesTok == "" || name == "" {
		r.out.Error(registry.ErrInvalidArguments)
		return
	}
	until, err := clock.Parse(dateTok)
	if err != nil {
		r.out.Error(registry.ErrInvalidArguments)
		return
	}
	// Non-numeric dose counts read as zero and fall through to the
	// quantity check.
	doses, _ := strconv.Atoi(dosesTok)

	batchID, err := r.reg.RegisterBatch(id, name, until, doses)
	if err != nil {
		r.out.Error(err)
		return
	}
	log.Info(log.CatStore, "batch registered", "id", batchID, "vaccine", name)
	r.out.Line(batchID)
}

// listBatches handles `l [name...]`.
func (r *REPL) listBatches(args string) {
	if strings.TrimSpace(args) == "" {
		for _, b := range r.reg.Batches() {
			r.out.Batch(b)
		}
		return
	}
	sc := newScanner(args)
	for name := sc.token(); name != ""; name = sc.token() {
		group, err := r.reg.BatchesByName(name)
		if err != nil {
			r.out.Error(err)
			continue
		}
		for _, b := range group {
			r.out.Batch(b)
		}
	}
}

// advanceClock handles `t [DD-MM-YYYY]`.
func (r *REPL) advanceClock(args string) {
	args = strings.TrimSpace(args)
	if args == "" {
		r.out.Date(r.clk.Today())
		return
	}
	d, err := clock.Parse(args)
	if err != nil {
		r.out.Error(err)
		return
	}
	if err := r.clk.Advance(d); err != nil {
		r.out.Error(err)
		return
	}
	log.Info(log.CatClock, "date advanced", "today", r.clk.Today())
	r.out.Date(r.clk.Today())
}

// administer handles `a <user> <vaccine>`.
func (r *REPL) administer(args string) {
	sc := newScanner(args)
	user, ok := sc.name()
	vaccine := strings.TrimSpace(sc.rest())
	if !ok || user == "" || vaccine == "" {
		r.out.Error(registry.ErrInvalidArguments)
		return
	}
	batchID, err := r.reg.Administer(user, vaccine)
	if err != nil {
		r.out.Error(err)
		return
	}
	log.Info(log.CatStore, "dose administered", "user", user, "batch", batchID)
	r.out.Line(batchID)
}

// listInoculations handles `u [user]`. An unquoted name spans the
// whole remainder; a malformed quoted name reads as no filter.
func (r *REPL) listInoculations(args string) {
	user, filtered := inoculationFilter(args)
	if !filtered {
		for _, rec := range r.reg.Inoculations() {
			r.out.Inoculation(rec)
		}
		return
	}
	recs, err := r.reg.InoculationsFor(user)
	if err != nil {
		r.out.Error(err)
		return
	}
	for _, rec := range recs {
		r.out.Inoculation(rec)
	}
}

func inoculationFilter(args string) (user string, filtered bool) {
	args = strings.TrimSpace(args)
	if args == "" {
		return "", false
	}
	if args[0] == '"' {
		end := strings.IndexByte(args[1:], '"')
		if end < 0 {
			return "", false
		}
		return args[1 : 1+end], true
	}
	return args, true
}

// retire handles `r <batchId>`.
func (r *REPL) retire(args string) {
	id := strings.TrimSpace(args)
	if id == "" {
		r.out.Error(registry.ErrMissingBatch)
		return
	}
	used, err := r.reg.RetireBatch(id)
	if err != nil {
		r.out.Error(err)
		return
	}
	log.Info(log.CatStore, "batch retired", "id", id, "used", used)
	r.out.Count(used)
}

// revoke handles `d <user> [DD-MM-YYYY] [batchId]`.
func (r *REPL) revoke(args string) {
	sc := newScanner(args)
	user, ok := sc.name()
	if !ok {
		// An unclosed quote produces no output, like the original.
		return
	}

	filter := registry.RevokeFilter{User: user}
	if dateTok := sc.token(); dateTok != "" {
		d, err := clock.Parse(dateTok)
		if err != nil {
			// A malformed token still reaches the registry as an
			// invalid date so the user and batch checks keep their
			// precedence.
			d = clock.Date{}
		}
		filter.Date = &d
	}
	filter.BatchID = strings.TrimSpace(sc.rest())

	removed, err := r.reg.Revoke(filter)
	if err != nil {
		r.out.Error(err)
		return
	}
	log.Info(log.CatStore, "inoculations revoked", "user", user, "count", removed)
	r.out.Count(removed)
}
