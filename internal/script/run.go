package script

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/comalice/dataobj"
)

// Result records the outcome of one step.
type Result struct {
	Step  int    `json:"step" yaml:"step"`
	Op    Op     `json:"op" yaml:"op"`
	Key   string `json:"key" yaml:"key"`
	Item  any    `json:"item,omitempty" yaml:"item,omitempty"`
	Found bool   `json:"found,omitempty" yaml:"found,omitempty"`
	Index int    `json:"index" yaml:"index"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
	Err   error  `json:"-" yaml:"-"`
}

// Report collects the results of a run in step order.
type Report struct {
	Name    string   `json:"name" yaml:"name"`
	Results []Result `json:"results" yaml:"results"`
}

// Failed returns the results that ended in an error.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Option configures Run.
type Option func(*runner)

type runner struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for per-step diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *runner) {
		r.logger = l
	}
}

// Run validates s, seeds s.Initial on h in key order and executes the steps.
//
// Execution stops at the first failing step unless s.ContinueOnError is set,
// in which case every step runs and all failures are joined in the returned
// error. The report is returned in both cases.
func Run(h dataobj.Host, s *Script, opts ...Option) (*Report, error) {
	r := &runner{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validate script: %w", err)
	}

	for _, key := range slices.Sorted(maps.Keys(s.Initial)) {
		h.Set(key, s.Initial[key])
	}

	report := &Report{Name: s.Name}
	var errs []error
	for i := range s.Steps {
		res := r.step(h, i, &s.Steps[i])
		report.Results = append(report.Results, res)
		if res.Err == nil {
			continue
		}
		err := fmt.Errorf("step %d (%s %s): %w", i, res.Op, res.Key, res.Err)
		if !s.ContinueOnError {
			return report, err
		}
		errs = append(errs, err)
	}
	return report, errors.Join(errs...)
}

func (r *runner) step(h dataobj.Host, i int, st *Step) Result {
	res := Result{Step: i, Op: st.Op, Key: st.Key}

	switch st.Op {
	case OpPush:
		res.Err = dataobj.ArrayPush(h, st.Key, st.Value)
	case OpPushUnique:
		res.Err = dataobj.ArrayPushUnique(h, st.Key, st.Value, st.match)
	case OpInsertUnique:
		res.Index = *st.Index
		res.Err = dataobj.ArrayInsertUnique(h, st.Key, *st.Index, st.Value, st.match)
	case OpRemove:
		res.Err = dataobj.ArrayRemove(h, st.Key, st.Value, st.match)
	case OpPop:
		res.Item, res.Found, res.Err = dataobj.ArrayPop(h, st.Key)
	case OpSet:
		h.Set(st.Key, st.Value)
	case OpContains:
		res.Index, res.Err = dataobj.IndexOf(h, st.Key, st.Value, st.match)
		res.Found = res.Err == nil && res.Index != dataobj.NotFound
	default:
		res.Err = fmt.Errorf("unknown op %q", st.Op)
	}

	if res.Err != nil {
		res.Error = res.Err.Error()
		r.logger.Warn("script step failed", "step", i, "op", st.Op, "key", st.Key, "error", res.Err)
	} else {
		r.logger.Debug("script step", "step", i, "op", st.Op, "key", st.Key)
	}
	return res
}
