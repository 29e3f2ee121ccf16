package pattern

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/seqpattern/core"
)

// Wildcard labels.
const (
	// WildcardPrefix marks synthetic nodes; tokens must not start with it.
	WildcardPrefix = "_*_"

	// UniversalWildcard absorbs every rare start node.
	UniversalWildcard = WildcardPrefix
)

// Sentinel errors for pattern graph operations.
var (
	// ErrInvalidState is returned when an operation is called out of lifecycle order.
	ErrInvalidState = errors.New("pattern: invalid state")

	// ErrReservedLabel is returned when a token starts with WildcardPrefix.
	ErrReservedLabel = errors.New("pattern: token uses reserved wildcard prefix")

	// ErrEmptyToken is returned when a sample contains an empty token.
	ErrEmptyToken = errors.New("pattern: empty token")

	// ErrBadThreshold is returned for a fraction outside [0,1] or an unparsable value.
	ErrBadThreshold = errors.New("pattern: invalid simplification threshold")

	// ErrBadPenalty is returned for a wildcard penalty outside (0,1].
	ErrBadPenalty = errors.New("pattern: invalid wildcard penalty")

	// ErrBadProbability is returned for a minimum path probability outside (0,1].
	ErrBadProbability = errors.New("pattern: invalid minimum probability")
)

// State is the lifecycle stage of a Graph.
type State int

const (
	// Building accepts samples.
	Building State = iota
	// Simplified has had its rare runs collapsed into wildcards.
	Simplified
	// Normalized holds probabilities and is read-only.
	Normalized
)

func (s State) String() string {
	switch s {
	case Building:
		return "building"
	case Simplified:
		return "simplified"
	case Normalized:
		return "normalized"
	default:
		return "unknown"
	}
}

// IsWildcard reports whether label names a synthetic wildcard node.
func IsWildcard(label string) bool { return strings.HasPrefix(label, WildcardPrefix) }

// Threshold selects the rarity cutoff used by Simplify.
// The zero value is FractionThreshold(0): no token is rare.
type Threshold struct {
	auto     bool
	fraction float64
}

// AutoThreshold resolves to maxFrequency/2.
func AutoThreshold() Threshold { return Threshold{auto: true} }

// FractionThreshold resolves to maxFrequency*f; f must lie in [0,1].
func FractionThreshold(f float64) Threshold { return Threshold{fraction: f} }

// ParseThreshold accepts "auto" or a decimal fraction in [0,1].
func ParseThreshold(s string) (Threshold, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "auto") {
		return AutoThreshold(), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Threshold{}, fmt.Errorf("%w: %q", ErrBadThreshold, s)
	}
	t := FractionThreshold(f)
	if err = t.validate(); err != nil {
		return Threshold{}, err
	}

	return t, nil
}

// Auto reports whether t is the "auto" sentinel.
func (t Threshold) Auto() bool { return t.auto }

// Fraction returns the configured fraction (meaningless when Auto).
func (t Threshold) Fraction() float64 { return t.fraction }

func (t Threshold) String() string {
	if t.auto {
		return "auto"
	}
	return strconv.FormatFloat(t.fraction, 'g', -1, 64)
}

func (t Threshold) validate() error {
	if t.auto {
		return nil
	}
	if math.IsNaN(t.fraction) || t.fraction < 0 || t.fraction > 1 {
		return fmt.Errorf("%w: fraction %g outside [0,1]", ErrBadThreshold, t.fraction)
	}
	return nil
}

// resolve turns t into an absolute frequency cutoff.
func (t Threshold) resolve(maxFrequency int) (float64, error) {
	if err := t.validate(); err != nil {
		return 0, err
	}
	if t.auto {
		return float64(maxFrequency) / 2, nil
	}
	return float64(maxFrequency) * t.fraction, nil
}

// Option configures a Graph.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes lifecycle and merge diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Graph is a per-category sequence pattern graph.
type Graph struct {
	store  *core.Store
	state  State
	logger *slog.Logger
}

// New returns an empty Graph in the Building state.
func New(opts ...Option) *Graph {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph{
		store:  core.NewStore(core.WithLogger(o.logger)),
		state:  Building,
		logger: o.logger,
	}
}

// State returns the lifecycle stage.
func (g *Graph) State() State { return g.state }
