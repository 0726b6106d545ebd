// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ambi

import (
	"errors"
	"strconv"

	"code.hybscloud.com/kont"
)

var (
	// ErrConfiguration is matched by every [*ConfigurationError].
	ErrConfiguration = errors.New("ambi: invalid configuration")
	// ErrStepSpec is matched by every [*StepSpecError].
	ErrStepSpec = errors.New("ambi: malformed step")
	// ErrNilFuture aborts a plan whose suspending routine returned no Future.
	ErrNilFuture = errors.New("ambi: suspending routine returned a nil Future")
)

// ConfigurationError reports a Host built with an unrecognized Mode.
type ConfigurationError struct {
	Mode Mode
}

func (e *ConfigurationError) Error() string {
	return "ambi: mode must be Blocking or Suspending, got " + e.Mode.String()
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// StepSpecError reports a step specification that is not a routine,
// a one-element [blocking] sequence, or a two-element [blocking, suspending]
// sequence. Index is the position of the offending spec.
type StepSpecError struct {
	Index  int
	Reason string
}

func (e *StepSpecError) Error() string {
	return "ambi: step " + strconv.Itoa(e.Index) + ": " + e.Reason
}

// Is reports whether target is ErrStepSpec.
func (e *StepSpecError) Is(target error) bool { return target == ErrStepSpec }

// outcome is the answer type of a running plan: Left on the first step
// error, Right with the last step's raw value.
type outcome = kont.Either[error, any]

func complete(a Accum) outcome {
	return kont.Right[error, any](a.value)
}

func abort(err error) outcome {
	return kont.Left[error, any](err)
}
