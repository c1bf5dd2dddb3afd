// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPServerConfigured is returned by NewServer when the handler
// bundle carries no HTTP handler, leaving nothing for the process to run.
var errNoHTTPServerConfigured = errors.New("server: no HTTP handler configured")
