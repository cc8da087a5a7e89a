// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build !cgo

package x509token

import "context"

// List always fails with [ErrUnsupported] in builds without cgo.
func List(ctx context.Context, cfg Config) ([]Object, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return nil, ErrUnsupported
}
