package hashmultimap

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/rs/zerolog"
)

const (
	// DefaultCapacity is the number of slots allocated by Empty.
	DefaultCapacity = 89
	// DefaultLoadFactor is the load factor threshold used by Empty.
	DefaultLoadFactor = 0.5
)

// ErrInvalidConfiguration is returned when a map is constructed with
// a capacity or load factor that it cannot operate with.
var ErrInvalidConfiguration = errors.New("invalid multimap configuration")

// Option configures a map built by New or From.
type Option func(*config)

type config struct {
	capacity   int
	loadFactor float64
	seed       uintptr
	seeded     bool
	logger     zerolog.Logger
}

func defaultConfig() config {
	return config{
		capacity:   DefaultCapacity,
		loadFactor: DefaultLoadFactor,
		logger:     zerolog.Nop(),
	}
}

// WithCapacity sets the initial number of slots. It must be positive.
func WithCapacity(capacity int) Option {
	return func(c *config) {
		c.capacity = capacity
	}
}

// WithLoadFactor sets the load factor above which the table grows.
// It must be in the range (0, 1].
func WithLoadFactor(loadFactor float64) Option {
	return func(c *config) {
		c.loadFactor = loadFactor
	}
}

// WithHashSeed fixes the seed used to hash keys. Two maps with the same
// seed and capacity place equal keys in the same slots.
func WithHashSeed(seed uintptr) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithLogger sets the logger that table resizes are reported to.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func (c *config) validate() error {
	if c.capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d",
			ErrInvalidConfiguration, c.capacity)
	}
	if math.IsNaN(c.loadFactor) || c.loadFactor <= 0 || c.loadFactor > 1 {
		return fmt.Errorf("%w: load factor must be in (0, 1], got %v",
			ErrInvalidConfiguration, c.loadFactor)
	}
	return nil
}

func buildConfig(opts []Option) (config, error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.validate(); err != nil {
		return c, err
	}
	if !c.seeded {
		c.seed = uintptr(rand.Uint64())
	}
	return c, nil
}
