package port

import "context"

// ReportSender delivers a generated report to a recipient. Callers treat
// it as fire-and-forget: failures are logged, not retried synchronously.
type ReportSender interface {
	Deliver(ctx context.Context, recipient, subject string, payload []byte) error
}
