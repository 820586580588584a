package version

// Version is set at build time with -ldflags "-X github.com/alapierre/credstore/version.Version=...".
var Version = "dev"
