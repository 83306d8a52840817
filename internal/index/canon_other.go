//go:build !windows

package index

func simplifyVolume(p string) string { return p }
