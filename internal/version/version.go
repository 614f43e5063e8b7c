package version

// Version is the queuectl release version. Overridden at build time with
// -ldflags "-X github.com/queuectl/queuectl/internal/version.Version=...".
var Version = "dev"
