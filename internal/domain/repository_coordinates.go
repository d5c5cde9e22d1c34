package domain

import (
	"fmt"
	"strings"

	"github.com/gitcoords/gitcoords/internal/gituri"
)

// RepositoryCoordinates identifies a repository by authority, owner and name.
// The repository is reachable at ssh://authority/owner/repo.git, the layout
// used by hosts such as GitHub or Bitbucket.
//
// The authority may also be host:port, carry a userinfo part
// (git@host), or be an IP literal. It is not interpreted here.
type RepositoryCoordinates struct {
	authority string
	owner     string
	repo      string
	uri       gituri.GitURI
}

// NewRepositoryCoordinates validates the arguments and derives the canonical URI.
// Errors returned by the URI builder are passed through as is.
func NewRepositoryCoordinates(authority, owner, repo string) (RepositoryCoordinates, error) {
	if authority == "" {
		return RepositoryCoordinates{}, fmt.Errorf("%w: authority", ErrMissingArgument)
	}
	if owner == "" {
		return RepositoryCoordinates{}, fmt.Errorf("%w: owner", ErrMissingArgument)
	}
	if repo == "" {
		return RepositoryCoordinates{}, fmt.Errorf("%w: repository name", ErrMissingArgument)
	}
	if strings.Contains(owner, "/") {
		return RepositoryCoordinates{}, fmt.Errorf("%w: owner must not contain a path separator", ErrInvalidArgument)
	}
	if strings.Contains(repo, "/") {
		return RepositoryCoordinates{}, fmt.Errorf("%w: repository name must not contain a path separator", ErrInvalidArgument)
	}

	uri, err := gituri.SSH(authority, "/"+owner+"/"+repo+".git")
	if err != nil {
		return RepositoryCoordinates{}, err
	}

	return RepositoryCoordinates{
		authority: authority,
		owner:     owner,
		repo:      repo,
		uri:       uri,
	}, nil
}

func (c RepositoryCoordinates) Authority() string { return c.authority }

func (c RepositoryCoordinates) Owner() string { return c.owner }

func (c RepositoryCoordinates) RepositoryName() string { return c.repo }

// GitURI returns the URI computed at construction
func (c RepositoryCoordinates) GitURI() gituri.GitURI { return c.uri }

// ID returns "owner/repo".
//
// Deprecated: the pair only identifies a repository once an authority is
// known; use GitURI instead.
func (c RepositoryCoordinates) ID() string {
	return c.owner + "/" + c.repo
}

func (c RepositoryCoordinates) String() string {
	return c.uri.String()
}
