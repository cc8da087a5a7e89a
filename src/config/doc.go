// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads x509-keygrip settings from a JSON or YAML file.
//
// Values are resolved in this order:
//  1. Built-in defaults
//  2. The file given to [Load], or named by X509_KEYGRIP_CONFIG_FILE
//  3. X509_KEYGRIP_PKCS11_PIN when the file sets no PIN
//
// Supported file extensions: .json, .yaml, .yml. Anything else is read as JSON.
package config
