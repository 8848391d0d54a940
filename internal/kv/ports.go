package kv

import "context"

// Ports for the durable key-value capability.
type (
	Reader interface {
		// Get returns the value stored under key, and false when there is none.
		Get(ctx context.Context, key string) (value string, ok bool, err error)
	}

	Writer interface {
		// Set stores value under key, replacing any previous value.
		Set(ctx context.Context, key, value string) error
	}

	KeyValue interface {
		Reader
		Writer
	}
)
