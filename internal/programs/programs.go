package programs

import (
	"errors"
	"fmt"
	"log/slog"

	"discdump/internal/execctx"
	"discdump/internal/execctx/aaru"
	"discdump/internal/execctx/dic"
	"discdump/internal/execctx/redumper"
	"discdump/internal/logging"
)

var (
	// ErrUnknownProgram is returned for program names no dialect implements.
	ErrUnknownProgram = errors.New("unknown program")
	// ErrInvalidParameters is returned when a parameter string does not
	// parse for the requested program.
	ErrInvalidParameters = errors.New("invalid parameters")
)

// New returns an empty context for p.
func New(p execctx.Program) (execctx.Context, error) {
	switch p {
	case execctx.ProgramRedumper:
		return redumper.New(), nil
	case execctx.ProgramDiscImageCreator:
		return dic.New(), nil
	case execctx.ProgramAaru:
		return aaru.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProgram, string(p))
	}
}

// Lookup resolves a user-supplied program name and returns an empty context
// for it.
func Lookup(name string) (execctx.Context, error) {
	p, ok := execctx.ParseProgram(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProgram, name)
	}
	return New(p)
}

// Registry builds contexts and logs what each entrypoint decided.
type Registry struct {
	logger *slog.Logger
}

// NewRegistry returns a registry that logs through logger. A nil logger
// discards output.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{logger: logging.NewComponentLogger(logger, "programs")}
}

// Parse reads params with p's grammar.
func (r *Registry) Parse(p execctx.Program, params string) (execctx.Context, error) {
	ctx, err := New(p)
	if err != nil {
		return nil, err
	}
	if !ctx.Parse(params) {
		r.logger.Debug("parameters rejected",
			logging.String(logging.FieldProgram, string(p)),
			logging.String("params", params),
		)
		return nil, fmt.Errorf("%w for %s", ErrInvalidParameters, p.DisplayName())
	}
	r.logger.Debug("parameters parsed",
		logging.String(logging.FieldProgram, string(p)),
		logging.String(logging.FieldCommand, ctx.BaseCommand()),
		logging.Int("flags", len(ctx.Values())),
	)
	return ctx, nil
}

// FromSettings runs p's defaulting pipeline. A context with no command and
// no flags means p cannot dump s.MediaType.
func (r *Registry) FromSettings(p execctx.Program, s execctx.Settings) (execctx.Context, error) {
	ctx, err := New(p)
	if err != nil {
		return nil, err
	}
	ctx.SetDefaults(s)
	if isEmpty(ctx) {
		r.logger.Info("media type not dumped by program",
			logging.String(logging.FieldProgram, string(p)),
			logging.String("media_type", string(s.MediaType)),
			logging.String("system", string(s.System)),
		)
		return ctx, nil
	}
	r.logger.Debug("defaults applied",
		logging.String(logging.FieldProgram, string(p)),
		logging.String(logging.FieldCommand, ctx.BaseCommand()),
		logging.String("media_type", string(s.MediaType)),
	)
	return ctx, nil
}

// Normalize parses params and renders them back in canonical order.
// Validation failures are returned alongside the rendered string.
func (r *Registry) Normalize(p execctx.Program, params string) (string, error) {
	ctx, err := r.Parse(p, params)
	if err != nil {
		return "", err
	}
	return ctx.Generate(), ctx.Validate()
}

// Detect tries every program in preference order and returns the first
// context whose grammar accepts params and recognises its leading token.
func (r *Registry) Detect(params string) (execctx.Context, bool) {
	for _, p := range execctx.Programs() {
		ctx, err := New(p)
		if err != nil {
			continue
		}
		if !ctx.Parse(params) || isEmpty(ctx) {
			continue
		}
		r.logger.Debug("program detected", logging.String(logging.FieldProgram, string(p)))
		return ctx, true
	}
	r.logger.Debug("no program recognised parameters", logging.String("params", params))
	return nil, false
}

func isEmpty(ctx execctx.Context) bool {
	return len(ctx.Modes()) == 0 && len(ctx.Values()) == 0
}
