package common

// Version is the tool version, overridden at build time via ldflags.
var Version = "dev"
