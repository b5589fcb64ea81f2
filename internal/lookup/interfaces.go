package lookup

import (
	"context"
	"time"

	"github.com/ytget/zip-lookup/internal/model"
)

// Dispatcher defines the interface for the lookup service.
type Dispatcher interface {
	// SetResultCallback registers the function invoked once per completed dispatch.
	SetResultCallback(func(*model.LookupTask))

	// Dispatch starts an asynchronous lookup. Invalid codes are ignored and
	// reported with ok == false; no request is made for them.
	Dispatch(zip string) (task *model.LookupTask, ok bool)

	// Lookup performs a blocking lookup. The error is non-nil only for invalid
	// input; transport and decoding failures are reported in the result.
	Lookup(ctx context.Context, zip string) (model.LookupResult, error)

	// ActiveCount returns the number of requests still in flight.
	ActiveCount() int

	// SetBaseURL sets the postal service endpoint
	SetBaseURL(baseURL string)

	// SetTimeout sets the per-request timeout, zero disables it
	SetTimeout(timeout time.Duration)
}

var _ Dispatcher = (*Service)(nil)
