// ============================================================================
// devkit - Developer Conversion Toolkit
// ============================================================================
//
// Package:     toolkit
// Description: Runner validating input and dispatching to the tool packages
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package toolkit

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	mdwerrors "github.com/msto63/devkit/foundation/core/errors"
	mdwlog "github.com/msto63/devkit/foundation/core/log"
	"github.com/msto63/devkit/foundation/utils/encodingx"
	"github.com/msto63/devkit/foundation/utils/hashx"
	"github.com/msto63/devkit/foundation/utils/loremx"
	"github.com/msto63/devkit/foundation/utils/mathx"
	"github.com/msto63/devkit/foundation/utils/randx"
	"github.com/msto63/devkit/foundation/utils/slicex"
	"github.com/msto63/devkit/foundation/utils/stringx"
	"github.com/msto63/devkit/foundation/utils/timex"
	"github.com/msto63/devkit/foundation/utils/uuidx"
	"github.com/msto63/devkit/foundation/utils/validationx"
)

// DefaultMaxInputLength is the largest accepted input in characters
const DefaultMaxInputLength = 1_000_000

// Runner validates input, calls the tool packages and records the result.
// A Runner is safe for concurrent use if its random source is.
type Runner struct {
	logger   *mdwlog.Logger
	clock    timex.Clock
	source   randx.Source
	hashes   *hashx.Dispatcher
	uuids    *uuidx.Generator
	lorem    *loremx.Generator
	maxInput int
	locale   string
	location *time.Location
}

// Option configures a Runner
type Option func(*Runner)

// WithLogger sets the logger; operations are logged at debug level
func WithLogger(logger *mdwlog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithClock sets the clock used for timestamps and relative times
func WithClock(clock timex.Clock) Option {
	return func(r *Runner) {
		r.clock = clock
	}
}

// WithSource sets the random source for UUID and Lorem generation
func WithSource(source randx.Source) Option {
	return func(r *Runner) {
		r.source = source
	}
}

// WithHashDispatcher replaces the hash backends
func WithHashDispatcher(d *hashx.Dispatcher) Option {
	return func(r *Runner) {
		r.hashes = d
	}
}

// WithMaxInputLength sets the input limit in characters
func WithMaxInputLength(n int) Option {
	return func(r *Runner) {
		r.maxInput = n
	}
}

// WithLocale sets the BCP 47 tag used for locale date output
func WithLocale(tag string) Option {
	return func(r *Runner) {
		r.locale = tag
	}
}

// WithLocation sets the timezone used for locale date output
func WithLocation(loc *time.Location) Option {
	return func(r *Runner) {
		r.location = loc
	}
}

// NewRunner creates a runner with a secure random source, the system clock
// and a discarding-level logger unless configured otherwise.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		clock:    timex.SystemClock{},
		maxInput: DefaultMaxInputLength,
		locale:   timex.DefaultLocale,
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = mdwlog.GetDefault()
	}
	r.logger = r.logger.WithName("toolkit")
	if r.source == nil {
		r.source = randx.NewSecureSource()
	}
	if r.hashes == nil {
		r.hashes = hashx.NewDispatcher()
	}
	r.uuids = uuidx.NewGenerator(uuidx.WithSource(r.source))
	r.lorem = loremx.NewGenerator(r.source)
	return r
}

// convertFunc turns validated input into output and operation metadata
type convertFunc func(validated string, meta map[string]interface{}) (string, error)

type step struct {
	tool   string
	opType OperationType
	kind   validationx.Kind
	cfg    validationx.Config
}

// run is the shared validate-then-convert pipeline
func (r *Runner) run(ctx context.Context, s step, input string, convert convertFunc) (*Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, mdwerrors.ConversionFailed(mdwerrors.ModuleToolkit, s.tool, err)
	}

	op := newOperation(s.tool, s.opType, input, r.clock.Now())
	logger := r.logger.WithFields(mdwlog.Fields{
		"tool":         s.tool,
		"operation_id": op.OperationID,
		"input_chars":  stringx.CharCount(input),
	})
	timer := logger.StartTimer(string(s.opType))

	if n := stringx.CharCount(input); n > r.maxInput {
		err := mdwerrors.OutOfRange(mdwerrors.ModuleToolkit, s.tool, n, 0, r.maxInput).
			WithDetail("field", "input")
		return r.failed(op, logger, timer, err)
	}

	result := validationx.Validate(input, s.kind, s.cfg)
	if !result.Valid {
		return r.failed(op, logger, timer, result.ToError())
	}

	output, err := convert(result.Value(), op.Metadata)
	if err != nil {
		return r.failed(op, logger, timer, err)
	}

	op.succeed(output)
	timer.Stop()
	return op, nil
}

func (r *Runner) failed(op *Operation, logger *mdwlog.Logger, timer *mdwlog.Timer, err error) (*Operation, error) {
	op.fail(err)
	timer.StopWithError(err)
	logger.LogError(err)
	return op, err
}

// ConvertCase converts text to the given case format
func (r *Runner) ConvertCase(ctx context.Context, text string, format stringx.CaseFormat) (*Operation, error) {
	return r.run(ctx, step{tool: ToolCase, opType: OperationConvert, kind: validationx.KindText}, text,
		func(v string, meta map[string]interface{}) (string, error) {
			meta["format"] = format.String()
			return stringx.ConvertCase(v, format), nil
		})
}

// EncodeBase64 encodes text as padded standard Base64
func (r *Runner) EncodeBase64(ctx context.Context, text string) (*Operation, error) {
	return r.run(ctx, step{tool: ToolBase64, opType: OperationEncode, kind: validationx.KindText}, text,
		func(v string, _ map[string]interface{}) (string, error) {
			return encodingx.EncodeBase64(v), nil
		})
}

// DecodeBase64 decodes Base64 to UTF-8 text
func (r *Runner) DecodeBase64(ctx context.Context, b64 string) (*Operation, error) {
	return r.run(ctx, step{tool: ToolBase64, opType: OperationDecode, kind: validationx.KindBase64}, b64,
		func(v string, _ map[string]interface{}) (string, error) {
			return encodingx.DecodeBase64(v)
		})
}

// EncodeURL percent-encodes text
func (r *Runner) EncodeURL(ctx context.Context, text string) (*Operation, error) {
	return r.run(ctx, step{tool: ToolURL, opType: OperationEncode, kind: validationx.KindText}, text,
		func(v string, _ map[string]interface{}) (string, error) {
			return encodingx.EncodeURL(v), nil
		})
}

// DecodeURL reverses percent-encoding
func (r *Runner) DecodeURL(ctx context.Context, text string) (*Operation, error) {
	return r.run(ctx, step{tool: ToolURL, opType: OperationDecode, kind: validationx.KindText}, text,
		func(v string, _ map[string]interface{}) (string, error) {
			return encodingx.DecodeURL(v)
		})
}

// Hash returns the hex digest of text
func (r *Runner) Hash(ctx context.Context, text string, alg hashx.Algorithm) (*Operation, error) {
	return r.run(ctx, step{tool: ToolHash, opType: OperationGenerate, kind: validationx.KindText}, text,
		func(v string, meta map[string]interface{}) (string, error) {
			meta["algorithm"] = alg.String()
			return r.hashes.Generate(v, alg)
		})
}

// HashAll digests text with every supported algorithm. The output has one
// "NAME  hex" line per algorithm; the digests are also in the metadata.
func (r *Runner) HashAll(ctx context.Context, text string) (*Operation, error) {
	return r.run(ctx, step{tool: ToolHash, opType: OperationGenerate, kind: validationx.KindText}, text,
		func(v string, meta map[string]interface{}) (string, error) {
			digests := r.hashes.GenerateAll(v)
			lines := slicex.Map(digests, func(d hashx.Digest) string {
				return fmt.Sprintf("%-12s%s", d.Name, d.Hex)
			})
			meta["digests"] = digests
			return strings.Join(lines, "\n"), nil
		})
}

// GenerateUUIDs returns count version 4 UUIDs, one per line
func (r *Runner) GenerateUUIDs(ctx context.Context, count int) (*Operation, error) {
	return r.run(ctx, step{tool: ToolUUID, opType: OperationGenerate, kind: validationx.KindUUIDCount}, strconv.Itoa(count),
		func(v string, meta map[string]interface{}) (string, error) {
			n, _ := strconv.Atoi(v)
			ids, err := r.uuids.GenerateMultiple(n)
			if err != nil {
				return "", err
			}
			meta["count"] = n
			meta["uuids"] = ids
			if r.uuids.Degraded() {
				meta["degraded"] = true
				r.logger.Warn("secure random source failed, UUIDs were generated with the time-seeded fallback")
			}
			return strings.Join(ids, "\n"), nil
		})
}

// GenerateLorem returns count units of placeholder text
func (r *Runner) GenerateLorem(ctx context.Context, count int, unit loremx.Unit) (*Operation, error) {
	s := step{
		tool:   ToolLorem,
		opType: OperationGenerate,
		kind:   validationx.KindLoremQuantity,
		cfg:    validationx.Config{Unit: unit},
	}
	return r.run(ctx, s, strconv.Itoa(count),
		func(v string, meta map[string]interface{}) (string, error) {
			n, _ := strconv.Atoi(v)
			meta["count"] = n
			meta["unit"] = unit.String()
			return r.lorem.Generate(n, unit)
		})
}

// ConvertBase renders value in every base. The output has one line per base;
// the full result is in the "bases" metadata entry.
func (r *Runner) ConvertBase(ctx context.Context, value string, from mathx.NumberBase) (*Operation, error) {
	s := step{
		tool:   ToolBase,
		opType: OperationConvert,
		kind:   validationx.KindNumberBase,
		cfg:    validationx.Config{FromBase: from},
	}
	return r.run(ctx, s, value,
		func(v string, meta map[string]interface{}) (string, error) {
			result, err := mathx.ConvertToAllBases(v, from)
			if err != nil {
				return "", err
			}
			lines := slicex.Map(mathx.NumberBases(), func(b mathx.NumberBase) string {
				return fmt.Sprintf("%-12s%s", b.Name(), result.Get(b))
			})
			meta["from"] = int(from)
			meta["bases"] = result
			return strings.Join(lines, "\n"), nil
		})
}

// ConvertBaseTo converts value to a single target base
func (r *Runner) ConvertBaseTo(ctx context.Context, value string, from, to mathx.NumberBase) (*Operation, error) {
	s := step{
		tool:   ToolBase,
		opType: OperationConvert,
		kind:   validationx.KindNumberBase,
		cfg:    validationx.Config{FromBase: from},
	}
	return r.run(ctx, s, value,
		func(v string, meta map[string]interface{}) (string, error) {
			meta["from"] = int(from)
			meta["to"] = int(to)
			return mathx.ConvertBase(v, from, to)
		})
}

// TimestampToDate converts epoch seconds or milliseconds to an ISO date.
// The metadata carries the UTC, locale and relative renderings.
func (r *Runner) TimestampToDate(ctx context.Context, ts string) (*Operation, error) {
	return r.run(ctx, step{tool: ToolTimestamp, opType: OperationConvert, kind: validationx.KindTimestamp}, ts,
		func(v string, meta map[string]interface{}) (string, error) {
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return "", mdwerrors.ParseError(mdwerrors.ModuleToolkit, "TimestampToDate", v, err)
			}
			t := timex.TimestampToDate(n)
			r.describeInstant(t, meta)
			if timex.IsMilliseconds(n) {
				meta["unit"] = "milliseconds"
			} else {
				meta["unit"] = "seconds"
			}
			return timex.FormatISO(t), nil
		})
}

// DateToTimestamp converts a date string to Unix seconds
func (r *Runner) DateToTimestamp(ctx context.Context, date string) (*Operation, error) {
	return r.run(ctx, step{tool: ToolTimestamp, opType: OperationConvert, kind: validationx.KindDateString}, date,
		func(v string, meta map[string]interface{}) (string, error) {
			t, err := timex.ParseDate(v)
			if err != nil {
				return "", err
			}
			r.describeInstant(t, meta)
			meta["milliseconds"] = timex.DateToTimestampMilli(t)
			return strconv.FormatInt(timex.DateToTimestamp(t), 10), nil
		})
}

// Now returns the clock's current Unix time in seconds
func (r *Runner) Now(ctx context.Context) (*Operation, error) {
	return r.run(ctx, step{tool: ToolTimestamp, opType: OperationGenerate, kind: validationx.KindText}, "",
		func(_ string, meta map[string]interface{}) (string, error) {
			now := r.clock.Now()
			r.describeInstant(now, meta)
			meta["milliseconds"] = timex.DateToTimestampMilli(now)
			return strconv.FormatInt(timex.CurrentTimestamp(r.clock), 10), nil
		})
}

func (r *Runner) describeInstant(t time.Time, meta map[string]interface{}) {
	meta["iso"] = timex.FormatISO(t)
	meta["utc"] = timex.FormatUTC(t)
	meta["locale"] = timex.FormatLocale(t, r.locale, r.location)
	meta["relative"] = timex.NewRelativeFormatter(r.clock).Format(t)
}
