// Package version reports the library version sent in the User-Agent header.
//
// Version can be pinned at build time:
//
//	go build -ldflags "-X github.com/kbukum/fidor/version.Version=1.2.0"
//
// Otherwise it is taken from the module build info of the importing binary.
package version
