package capability

import "context"

// Adapter performs one request/response cycle against one specific external
// model-serving endpoint. A single attempt per invocation is the documented
// behavior: no retry, no backoff.
//
// Transport failures never escape an adapter; they are attached to the
// returned Result's Err field. Callers must check Err before using the
// payload.
type Adapter interface {
	// Capability names the kind of model invocation this adapter performs.
	Capability() Capability

	// Invoke builds the endpoint payload, performs a single synchronous HTTP
	// call, and decodes the response into a Result.
	Invoke(ctx context.Context, req Request) Result
}
