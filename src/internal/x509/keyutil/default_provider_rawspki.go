// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build rawspki

package x509keyutil

func defaultProvider() KeyProvider { return RawProvider{} }
