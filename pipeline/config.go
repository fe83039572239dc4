package pipeline

import (
	"math"

	"github.com/kbukum/matrixflow/errors"
	"github.com/kbukum/matrixflow/validation"
)

// Default configuration values, matching a 4096×4096 workload split across
// two consumers.
const (
	DefaultMatrixSize    = 4096
	DefaultIterations    = 3
	DefaultConsumerCount = 2
)

// Config describes one pipeline run. It is immutable once Run starts.
type Config struct {
	// MatrixSize is the side length; each matrix is MatrixSize² bytes.
	MatrixSize int `yaml:"matrix_size" mapstructure:"matrix_size" validate:"required,gt=0"`
	// Iterations is the number of matrices to produce. Zero is valid: the
	// pipeline starts, produces nothing, and completes with an empty result.
	Iterations int `yaml:"iterations" mapstructure:"iterations" validate:"gte=0"`
	// ConsumerCount is the number of consumer goroutines competing for
	// matrices.
	ConsumerCount int `yaml:"consumer_count" mapstructure:"consumer_count" validate:"required,gt=0"`
	// Seed makes the matrix sequence reproducible. Nil draws a seed from
	// the operating system.
	Seed *uint64 `yaml:"seed" mapstructure:"seed"`
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		MatrixSize:    DefaultMatrixSize,
		Iterations:    DefaultIterations,
		ConsumerCount: DefaultConsumerCount,
	}
}

// Seed wraps a literal seed value for Config.Seed.
func Seed(v uint64) *uint64 { return &v }

// ApplyDefaults fills zero fields with default values. Intended for configs
// arriving from files or the environment; programmatic callers that need a
// genuine zero-iteration run should skip it.
func (c *Config) ApplyDefaults() {
	if c.MatrixSize == 0 {
		c.MatrixSize = DefaultMatrixSize
	}
	if c.Iterations == 0 {
		c.Iterations = DefaultIterations
	}
	if c.ConsumerCount == 0 {
		c.ConsumerCount = DefaultConsumerCount
	}
}

// Validate checks the configuration before any goroutine starts.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if c.MatrixSize > math.MaxInt/c.MatrixSize {
		return errors.InvalidConfig("matrix_size", "matrix_size squared overflows int")
	}
	return nil
}

// MatrixLen returns the byte length of one matrix.
func (c *Config) MatrixLen() int {
	return c.MatrixSize * c.MatrixSize
}

// ChannelCapacity returns the bounded channel capacity for this config.
func (c *Config) ChannelCapacity() int {
	return c.ConsumerCount * 2
}
