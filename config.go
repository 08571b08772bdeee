package depot

import "github.com/rs/zerolog"

// Config holds the defaults every new World starts from.
var Config config = config{logger: zerolog.Nop()}

type config struct {
	logger          zerolog.Logger
	defaultCapacity int
}

// SetLogger sets the logger new worlds write to.
func (c *config) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// SetDefaultCapacity sets the initial capacity of the entity table and of each
// component table in new worlds.
func (c *config) SetDefaultCapacity(n int) {
	c.defaultCapacity = max(n, 0)
}

type worldOptions struct {
	logger   zerolog.Logger
	capacity int
}

// WorldOption overrides a Config default for one World.
type WorldOption func(*worldOptions)

func WithLogger(logger zerolog.Logger) WorldOption {
	return func(o *worldOptions) {
		o.logger = logger
	}
}

// WithCapacity presizes the entity table and each component table.
func WithCapacity(n int) WorldOption {
	return func(o *worldOptions) {
		o.capacity = max(n, 0)
	}
}

func resolveOptions(opts []WorldOption) worldOptions {
	o := worldOptions{
		logger:   Config.logger,
		capacity: Config.defaultCapacity,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
