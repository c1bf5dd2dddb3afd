// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrMissingBody is returned when an upload request carries an empty body.
var ErrMissingBody = errors.New("missing request body")

// StatusPasswordRequired is the non-standard status this API returns from a
// fetch when the record requires a password. The ciphertext is still
// delivered in the body so the client can attempt the KDF locally.
const StatusPasswordRequired = 498
