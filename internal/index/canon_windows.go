//go:build windows

package index

import "strings"

// simplifyVolume strips the \\?\ verbatim prefix when the remainder is a plain
// drive path, so equivalent invocations produce the same readable key.
// Verbatim UNC paths (\\?\UNC\server\share) are rewritten to \\server\share.
func simplifyVolume(p string) string {
	const verbatim = `\\?\`
	if !strings.HasPrefix(p, verbatim) {
		return p
	}
	rest := p[len(verbatim):]
	if strings.HasPrefix(strings.ToUpper(rest), `UNC\`) {
		return `\\` + rest[len(`UNC\`):]
	}
	if len(rest) >= 2 && rest[1] == ':' && len(rest) < 260 {
		return rest
	}
	return p
}
