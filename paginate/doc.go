// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package paginate splits a counted list into fixed-size pages and builds
// the page-control links rendered under the quiz list.
package paginate
