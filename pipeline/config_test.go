package pipeline

import (
	"math"
	"strings"
	"testing"

	"github.com/kbukum/matrixflow/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MatrixSize != 4096 || cfg.Iterations != 3 || cfg.ConsumerCount != 2 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Seed != nil {
		t.Error("expected nil seed by default")
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.MatrixSize != DefaultMatrixSize {
		t.Errorf("expected default matrix size, got %d", cfg.MatrixSize)
	}
	if cfg.Iterations != DefaultIterations {
		t.Errorf("expected default iterations, got %d", cfg.Iterations)
	}
	if cfg.ConsumerCount != DefaultConsumerCount {
		t.Errorf("expected default consumers, got %d", cfg.ConsumerCount)
	}

	explicit := Config{MatrixSize: 8, Iterations: 5, ConsumerCount: 1}
	explicit.ApplyDefaults()
	if explicit.MatrixSize != 8 || explicit.Iterations != 5 || explicit.ConsumerCount != 1 {
		t.Errorf("explicit values should survive, got %+v", explicit)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{MatrixSize: 8, Iterations: 5, ConsumerCount: 2}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	zeroIter := Config{MatrixSize: 8, Iterations: 0, ConsumerCount: 2}
	if err := zeroIter.Validate(); err != nil {
		t.Errorf("zero iterations should be valid, got %v", err)
	}
}

func TestConfigValidate_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantText string
	}{
		{"zero matrix size", Config{Iterations: 1, ConsumerCount: 1}, "matrix_size"},
		{"negative iterations", Config{MatrixSize: 8, Iterations: -1, ConsumerCount: 1}, "iterations"},
		{"zero consumers", Config{MatrixSize: 8, Iterations: 1}, "consumer_count"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantText) {
				t.Errorf("expected %q in error, got %q", tc.wantText, err.Error())
			}
		})
	}
}

func TestConfigValidate_Overflow(t *testing.T) {
	cfg := Config{MatrixSize: math.MaxInt, Iterations: 1, ConsumerCount: 1}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.CodeOf(err) != errors.ErrCodeInvalidConfig {
		t.Errorf("expected INVALID_CONFIG, got %s", errors.CodeOf(err))
	}
}

func TestConfigDerivedValues(t *testing.T) {
	cfg := Config{MatrixSize: 8, Iterations: 5, ConsumerCount: 3}
	if cfg.MatrixLen() != 64 {
		t.Errorf("expected matrix length 64, got %d", cfg.MatrixLen())
	}
	if cfg.ChannelCapacity() != 6 {
		t.Errorf("expected channel capacity 6, got %d", cfg.ChannelCapacity())
	}
}

func TestSeedHelper(t *testing.T) {
	s := Seed(42)
	if s == nil || *s != 42 {
		t.Errorf("expected *uint64(42), got %v", s)
	}
}
