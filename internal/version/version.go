package version

// Version is overridden at build time with -ldflags "-X kinvec/internal/version.Version=...".
var Version = "dev"
