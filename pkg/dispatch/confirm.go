package dispatch

import "context"

// Confirmer asks the operator whether n messages may be sent.
type Confirmer interface {
	Confirm(ctx context.Context, n int) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(ctx context.Context, n int) (bool, error)

// Confirm calls f.
func (f ConfirmerFunc) Confirm(ctx context.Context, n int) (bool, error) {
	return f(ctx, n)
}

// Confirm is the pre-flight gate. An empty batch passes without asking. A
// declined or failed prompt yields DISPATCH_CONFIRMATION_DECLINED, wrapping
// the prompt error if there was one.
func Confirm(ctx context.Context, c Confirmer, n int) error {
	if n == 0 {
		return nil
	}

	ok, err := c.Confirm(ctx, n)
	if err != nil {
		return dispatchErrors.NewWithCause(ErrConfirmationDeclined, err).WithDetail("count", n)
	}
	if !ok {
		return dispatchErrors.New(ErrConfirmationDeclined).WithDetail("count", n)
	}
	return nil
}
