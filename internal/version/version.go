// internal/version/version.go
package version

// Version is overridable at build time via -ldflags "-X ...".
var Version = "0.1.0"
