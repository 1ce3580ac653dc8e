// SPDX-License-Identifier: MIT
// Package: manybody/hilbert
//
// config.go — strongly typed per-variant parameters and the New dispatcher.
//
// Struct tags cover range checks (validator/v10); rules tags cannot express
// (half-integer spin, constraint feasibility) live in the constructors. Every
// failure wraps ErrInvalidInput.

package hilbert

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/manybody/lattice"
)

const methodNew = "New"

var configValidate = validator.New(validator.WithRequiredStructEnabled())

// SpinConfig parameterizes a Spin space.
type SpinConfig struct {
	// S is the spin magnitude; positive, integer or half-integer.
	S float64 `validate:"gt=0"`
	// TotalSz, when non-nil, fixes the total magnetization.
	TotalSz *float64
}

// BosonConfig parameterizes a Boson space.
type BosonConfig struct {
	// Nmax is the maximum occupation per site.
	Nmax int `validate:"gt=0"`
	// Nbosons, when non-nil, fixes the total particle number.
	Nbosons *int `validate:"omitempty,gte=0"`
}

// Config selects and parameterizes one variant for New.
type Config struct {
	Kind        Kind         `validate:"required,oneof=Spin Boson Qubit Custom"`
	Spin        *SpinConfig  `validate:"required_if=Kind Spin"`
	Boson       *BosonConfig `validate:"required_if=Kind Boson"`
	LocalStates []float64    `validate:"required_if=Kind Custom"`
}

// validateConfig runs the struct tags and wraps failures in ErrInvalidInput.
func validateConfig(method string, cfg any) error {
	if err := configValidate.Struct(cfg); err != nil {
		return fmt.Errorf("%s: %v: %w", method, err, ErrInvalidInput)
	}

	return nil
}

// New builds the variant named by cfg.Kind on g. An empty Kind with
// LocalStates set selects KindCustom.
func New(g lattice.Graph, cfg Config, opts ...Option) (Space, error) {
	if cfg.Kind == "" && cfg.LocalStates != nil {
		cfg.Kind = KindCustom
	}
	if err := validateConfig(methodNew, cfg); err != nil {
		return nil, err
	}

	var (
		sp  Space
		err error
	)
	switch cfg.Kind {
	case KindSpin:
		sp, err = asSpace(NewSpin(g, *cfg.Spin, opts...))
	case KindBoson:
		sp, err = asSpace(NewBoson(g, *cfg.Boson, opts...))
	case KindQubit:
		sp, err = asSpace(NewQubit(g, opts...))
	case KindCustom:
		sp, err = asSpace(NewCustom(g, cfg.LocalStates, opts...))
	default:
		// unreachable: oneof rejects unknown kinds
		err = fmt.Errorf("%s: unknown Hilbert type %q: %w", methodNew, cfg.Kind, ErrInvalidInput)
	}

	return sp, err
}

// asSpace drops the concrete type without leaking a typed nil on error.
func asSpace[T Space](s T, err error) (Space, error) {
	if err != nil {
		return nil, err
	}

	return s, nil
}
