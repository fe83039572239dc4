// Package validation provides input validation for matrixflow configuration.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// the default path for pipeline and CLI config structs.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    MatrixSize    int `validate:"required,gt=0"`
//	    ConsumerCount int `validate:"required,gt=0"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Min("iterations", cfg.Iterations, 0)
//	err := v.Validate()
package validation
