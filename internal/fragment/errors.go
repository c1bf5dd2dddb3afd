// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fragment

import "errors"

// ErrMalformedFragment is returned when a URL fragment matches neither the
// symmetric nor the password-protected shape documented on the package.
var ErrMalformedFragment = errors.New("fragment: malformed URL fragment")
