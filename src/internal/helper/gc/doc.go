// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides reusable byte buffer pooling to reduce garbage collection overhead.
// It abstracts the [bytebufferpool] library so scratch memory for hex intermediates,
// canonical key encodings and rendered reports is borrowed and returned through one
// consistent interface. [TrackedPool] counts borrowed buffers for leak checks.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc
