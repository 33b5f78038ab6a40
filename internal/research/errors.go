package research

import (
	"context"
	"errors"
	"fmt"
	"net"

	"labelscan/internal/domain"
)

// Failure is a typed research error. The reason is what the merge step
// consumes; the wrapped error is for logs only.
type Failure struct {
	Reason domain.FailureReason
	Err    error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("research failed (%s): %v", f.Reason, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// NewFailure creates a Failure with the given reason.
func NewFailure(reason domain.FailureReason, err error) *Failure {
	return &Failure{Reason: reason, Err: err}
}

// Classify maps an arbitrary research error to a failure reason. Typed
// failures keep their reason; deadline and network timeouts map to timeout;
// everything else is a provider error.
func Classify(err error) domain.FailureReason {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Reason
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.FailureTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.FailureTimeout
	}
	return domain.FailureProviderError
}
