// SPDX-License-Identifier: MIT

//go:build !hilbertdebug

package hilbert

// debugChecks enables post-update invariant assertions (-tags hilbertdebug).
const debugChecks = false
