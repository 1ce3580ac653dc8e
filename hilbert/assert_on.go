// SPDX-License-Identifier: MIT

//go:build hilbertdebug

package hilbert

const debugChecks = true
