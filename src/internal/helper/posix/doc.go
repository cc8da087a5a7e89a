// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides process helpers that behave the same on [POSIX]
// systems and Windows.
//
// [ExecutableName] turns os.Args[0] into the bare program name shown in
// usage lines:
//
//	cmd.Use = posix.ExecutableName("x509-keygrip") + " -f CERT [FLAGS]"
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
