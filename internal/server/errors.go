// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrSocketAttach is returned by [Run] when the listener cannot be bound
	// into the server. Every construction failure matches it with [errors.Is].
	ErrSocketAttach = errors.New("cannot attach listening socket")

	// ErrServerAlreadyRunning is returned by a second call to RunServer on
	// the same handle.
	ErrServerAlreadyRunning = errors.New("server is already running")

	errNilListener        = errors.New("listener is nil")
	errUnsupportedNetwork = errors.New("listener is not a TCP socket")
	errSocketNotListening = errors.New("socket is not in listening state")
)
