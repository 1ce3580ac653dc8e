package hilbert

// DebugChecks exposes the build-tag switch to external tests.
const DebugChecks = debugChecks
