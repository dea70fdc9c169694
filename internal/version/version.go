package version

// Version is the semantic version of the saasbridge binary. It is set at
// build time via -ldflags for release builds.
var Version = "0.1.0-dev"
