/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package util contains the errors shared by name handling in the ndn packages.
package util

import "errors"

// Name errors.
var (
	ErrDecodeNameComponent = errors.New("error decoding name component")
	ErrOutOfRange          = errors.New("value outside of allowed range")
)
