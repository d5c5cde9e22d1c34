// Package gituri builds structured git URIs from a scheme, an authority and a path.
package gituri

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrSyntax is returned when a component cannot form a valid URI
var ErrSyntax = errors.New("invalid git uri")

// SchemeSSH is the scheme used for canonical repository URIs
const SchemeSSH = "ssh"

// GitURI is an immutable URI pointing at a git repository
type GitURI struct {
	u *url.URL
}

// SSH builds an ssh:// URI from an authority and an absolute path
func SSH(authority, path string) (GitURI, error) {
	return New(SchemeSSH, authority, path)
}

// New builds a URI from scheme, authority and path.
// The authority is [userinfo@]host[:port]; it must not carry a path, query or fragment.
func New(scheme, authority, path string) (GitURI, error) {
	if scheme == "" {
		return GitURI{}, fmt.Errorf("%w: empty scheme", ErrSyntax)
	}
	if authority == "" {
		return GitURI{}, fmt.Errorf("%w: empty authority", ErrSyntax)
	}
	if strings.ContainsAny(authority, "/?#") {
		return GitURI{}, fmt.Errorf("%w: authority %q contains a reserved delimiter", ErrSyntax, authority)
	}
	if path != "" && !strings.HasPrefix(path, "/") {
		return GitURI{}, fmt.Errorf("%w: path %q is not absolute", ErrSyntax, path)
	}

	parsed, err := url.Parse(scheme + "://" + authority)
	if err != nil {
		return GitURI{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if parsed.Scheme != strings.ToLower(scheme) {
		return GitURI{}, fmt.Errorf("%w: invalid scheme %q", ErrSyntax, scheme)
	}
	if parsed.Hostname() == "" {
		return GitURI{}, fmt.Errorf("%w: authority %q has no host", ErrSyntax, authority)
	}

	// net/url decodes and re-encodes userinfo; only accept authorities that survive unchanged
	rebuilt := parsed.Host
	if parsed.User != nil {
		rebuilt = parsed.User.String() + "@" + rebuilt
	}
	if rebuilt != authority {
		return GitURI{}, fmt.Errorf("%w: authority %q is not in canonical form (would become %q)", ErrSyntax, authority, rebuilt)
	}

	return GitURI{u: &url.URL{
		Scheme:  parsed.Scheme,
		User:    parsed.User,
		Host:    parsed.Host,
		Path:    path,
		RawPath: escapePath(path),
	}}, nil
}

// escapePath percent-encodes only what RFC 3986 forbids in a path:
// unreserved characters, sub-delims, ':', '@' and '/' stay literal.
func escapePath(path string) string {
	var b strings.Builder
	for i := 0; i < len(path); i++ {
		c := path[i]
		if isPathChar(c) {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

func isPathChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-._~!$&'()*+,;=:@/", c) >= 0
}

// IsZero reports whether the URI was never built
func (g GitURI) IsZero() bool { return g.u == nil }

// Scheme returns the URI scheme
func (g GitURI) Scheme() string {
	if g.u == nil {
		return ""
	}
	return g.u.Scheme
}

// Authority returns the authority as it appears in String()
func (g GitURI) Authority() string {
	if g.u == nil {
		return ""
	}
	if g.u.User == nil {
		return g.u.Host
	}
	return g.u.User.String() + "@" + g.u.Host
}

// User returns the userinfo part, or "" when absent
func (g GitURI) User() string {
	if g.u == nil || g.u.User == nil {
		return ""
	}
	return g.u.User.String()
}

// Host returns host[:port]
func (g GitURI) Host() string {
	if g.u == nil {
		return ""
	}
	return g.u.Host
}

// Hostname returns the host without port or IPv6 brackets
func (g GitURI) Hostname() string {
	if g.u == nil {
		return ""
	}
	return g.u.Hostname()
}

// Port returns the port, or "" when absent
func (g GitURI) Port() string {
	if g.u == nil {
		return ""
	}
	return g.u.Port()
}

// Path returns the unescaped path
func (g GitURI) Path() string {
	if g.u == nil {
		return ""
	}
	return g.u.Path
}

// URL returns a copy of the underlying URL
func (g GitURI) URL() *url.URL {
	if g.u == nil {
		return nil
	}
	c := *g.u
	if g.u.User != nil {
		user := *g.u.User
		c.User = &user
	}
	return &c
}

// Equal reports whether both URIs have the same string form
func (g GitURI) Equal(other GitURI) bool {
	return g.String() == other.String()
}

func (g GitURI) String() string {
	if g.u == nil {
		return ""
	}
	return g.u.String()
}
