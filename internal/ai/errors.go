package ai

import (
	"errors"
	"fmt"
)

// ErrProviderUnusable marks a backend that cannot serve requests at all,
// such as bad credentials, exhausted quota or a dead endpoint. The router
// treats it as the signal to fail over permanently; any other error stays
// with the request that produced it.
var ErrProviderUnusable = errors.New("provider unusable")

func unusable(backend string, err error) error {
	return fmt.Errorf("%s: %w: %w", backend, ErrProviderUnusable, err)
}
