package fetch

import (
	"context"
	"maps"
)

// RequestOption configures a single request.
type RequestOption func(*requestOptions)

type requestOptions struct {
	ctx      context.Context
	header   map[string]string
	response any
}

// WithContext sets a custom context for the request. The client's
// timeout still applies on top of it.
func WithContext(ctx context.Context) RequestOption {
	return func(opt *requestOptions) {
		if ctx != nil {
			opt.ctx = ctx
		}
	}
}

// WithHeader sets additional headers for the request.
func WithHeader(header map[string]string) RequestOption {
	return func(opt *requestOptions) {
		maps.Copy(opt.header, header)
	}
}

// WithResponse sets the target the response body is decoded into.
func WithResponse(response any) RequestOption {
	return func(opt *requestOptions) {
		opt.response = response
	}
}

func newRequestOptions(opts []RequestOption) *requestOptions {
	opt := &requestOptions{
		ctx:    context.Background(),
		header: make(map[string]string, 4),
	}

	for _, o := range opts {
		o(opt)
	}

	return opt
}
