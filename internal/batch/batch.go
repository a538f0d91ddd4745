// Package batch validates streams of RUNs, one per line, and aggregates the
// failures into a report.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/bomberos-cl/runkit/pkg/logger"
	"github.com/bomberos-cl/runkit/pkg/run"
	"github.com/bomberos-cl/runkit/pkg/sanitizer"
	"github.com/bomberos-cl/runkit/pkg/validator"
)

// maxLineBytes bounds a single input line. Anything longer is not a RUN.
const maxLineBytes = 64 * 1024

// ErrReadInput wraps failures of the underlying reader.
var ErrReadInput = errors.New("failed to read batch input")

type idKey struct{}

// WithID stores the report ID in ctx so loggers built with
// logger.WithContextValue(..., IDKey()) tag every record of the run.
func WithID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, idKey{}, id.String())
}

// IDKey is the context key WithID uses.
func IDKey() any { return idKey{} }

// Checker validates lines read from an io.Reader.
type Checker struct {
	// StrictLength applies the 7 to 8 digit body bound of the request
	// validation layer. When false any structurally valid RUN is accepted.
	StrictLength bool
	Logger       *slog.Logger
}

// Entry is the outcome for one non-blank, non-comment line. Input is the
// sanitized line, shortened for display; validation always sees all of it.
type Entry struct {
	Line       int    `json:"line"`
	Input      string `json:"input"`
	Normalized string `json:"normalized,omitempty"`
	Code       string `json:"code,omitempty"`
}

// Valid reports whether the line passed.
func (e Entry) Valid() bool { return e.Code == "" }

// Report summarises a run.
type Report struct {
	ID      uuid.UUID `json:"id"`
	Total   int       `json:"total"`
	Valid   int       `json:"valid"`
	Invalid int       `json:"invalid"`
	Entries []Entry   `json:"entries"`
}

// LineError is the failure of a single line. Err is a
// validator.ValidationErrors.
type LineError struct {
	Line  int
	Input string
	Err   error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Run checks every line of r. Blank lines and lines starting with '#' are
// skipped; trailing "# ..." comments are stripped.
//
// The report is always returned, even when err is non-nil. Validation
// failures are collected into a *multierror.Error of *LineError values; a
// read failure or context cancellation stops the run and is appended to it.
func (c *Checker) Run(ctx context.Context, r io.Reader) (*Report, error) {
	log := c.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	report := &Report{ID: uuid.New(), Entries: []Entry{}}
	ctx = WithID(ctx, report.ID)
	started := time.Now()

	var errs *multierror.Error

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	line := 0
	for sc.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			errs = multierror.Append(errs, err)
			break
		}

		input := sanitizer.InputLine(sc.Text())
		if input == "" {
			continue
		}

		entry, err := c.check(line, input)
		report.Entries = append(report.Entries, entry)
		report.Total++

		if entry.Valid() {
			report.Valid++
			continue
		}

		report.Invalid++
		errs = multierror.Append(errs, &LineError{Line: line, Input: input, Err: err})
		log.DebugContext(ctx, "invalid RUN",
			logger.Line(line),
			logger.RUN(input),
			logger.Code(entry.Code),
		)
	}
	if err := sc.Err(); err != nil {
		errs = multierror.Append(errs, errors.Join(ErrReadInput, err))
	}

	log.InfoContext(ctx, "batch checked",
		logger.Count("total", report.Total),
		logger.Count("valid", report.Valid),
		logger.Count("invalid", report.Invalid),
		logger.Duration(time.Since(started)),
	)

	return report, errs.ErrorOrNil()
}

func (c *Checker) check(line int, input string) (Entry, error) {
	entry := Entry{Line: line, Input: sanitizer.Echo(input)}

	err := c.validate(input)
	if verrs := validator.ExtractValidationErrors(err); len(verrs) > 0 {
		entry.Code = verrs[0].TranslationKey
		return entry, err
	}

	entry.Normalized = run.FormatForDisplay(input)
	return entry, nil
}

func (c *Checker) validate(input string) error {
	const field = "run"
	rules := []validator.Rule{validator.RequiredRUN(field, input)}
	if c.StrictLength {
		rules = append(rules, validator.ValidRUN(field, input)...)
	} else {
		rules = append(rules, validator.ValidRUNAnyLength(field, input)...)
	}
	return validator.Apply(rules...)
}
