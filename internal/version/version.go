package version

// Version is set at build time with -ldflags "-X phagetools/internal/version.Version=...".
var Version = "0.3.0"
