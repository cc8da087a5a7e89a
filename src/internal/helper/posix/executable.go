// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// ExecutableName returns the base name of os.Args[0] without a trailing .exe.
// Both '/' and '\' separate path components, so a Windows path seen on Unix
// still yields its last element. fallback is returned when os.Args[0] is
// missing or empty.
func ExecutableName(fallback string) string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return fallback
	}
	return baseName(os.Args[0], fallback)
}

func baseName(path, fallback string) string {
	name := filepath.Base(path)

	if strings.ContainsAny(name, `/\`) {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) == 0 {
			return fallback
		}
		name = parts[len(parts)-1]
	}

	name = strings.TrimSuffix(name, ".exe")
	if name == "" || name == "." || name == string(filepath.Separator) {
		return fallback
	}
	return name
}
