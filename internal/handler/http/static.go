// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// staticHandler returns the external static-asset collaborator's concrete
// placeholder: a plain http.FileServer rooted at dir. No caching policy is
// applied; the bundled web frontend is out of this package's core contract.
func staticHandler(dir string) http.Handler {
	return http.FileServer(http.Dir(dir))
}
