package ktcut

import (
	"time"

	"github.com/marvel2010/ktcut/persistence"
	"github.com/marvel2010/ktcut/search"
)

// Options configures Solve. The zero value is not meant to be built by
// hand; use Options{} only via the With* constructors below, following
// the functional-options convention of core.GraphOption.
type Options struct {
	persistenceMode persistence.Mode
	reporting       bool
	timeLimit       time.Duration
	selection       search.SelectionPolicy
}

// Option configures an Options value.
type Option func(*Options)

// WithPersistence enables LP persistence preprocessing at the given mode
// before the search tree runs. The default, if omitted, is
// persistence.ModeNone.
func WithPersistence(mode persistence.Mode) Option {
	return func(o *Options) { o.persistenceMode = mode }
}

// WithReporting causes Solve to record one diagnostic step per branched
// search-tree node in Result.Report.Steps.
func WithReporting() Option {
	return func(o *Options) { o.reporting = true }
}

// WithTimeLimit bounds the search's wall-clock budget. A zero or negative
// duration (the default) means unlimited.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.timeLimit = d }
}

// WithSelection overrides the unassigned-vertex selection policy. The
// default is search.HighestWeightedDegree{}.
func WithSelection(policy search.SelectionPolicy) Option {
	return func(o *Options) { o.selection = policy }
}

func resolveOptions(opts []Option) Options {
	o := Options{
		persistenceMode: persistence.ModeNone,
		selection:       search.HighestWeightedDegree{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
