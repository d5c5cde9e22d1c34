package cmd

import (
	"context"
	"fmt"

	"github.com/gitcoords/gitcoords/internal/domain"
	"github.com/gitcoords/gitcoords/internal/logging"
	"github.com/gitcoords/gitcoords/internal/services"
	"github.com/gitcoords/gitcoords/internal/theme"
)

// URICmd prints the canonical URI of repository coordinates
type URICmd struct {
	Authority string `help:"Authority: host, host:port or user@host (default: settings or github.com)" short:"a"`
	Format    string `help:"Output format: uri, table, json or yaml" enum:"uri,table,json,yaml" default:"uri"`
	ID        bool   `help:"Print owner/repo instead of the URI (deprecated)" name:"id"`
	Owner     string `arg:"" help:"Repository owner (user or organization)"`
	Repo      string `arg:"" help:"Repository name, without the .git suffix"`
}

type coordinatesView struct {
	Authority  string `json:"authority" yaml:"authority"`
	Host       string `json:"host" yaml:"host"`
	Owner      string `json:"owner" yaml:"owner"`
	Port       string `json:"port,omitempty" yaml:"port,omitempty"`
	Repository string `json:"repository" yaml:"repository"`
	URI        string `json:"uri" yaml:"uri"`
	User       string `json:"user,omitempty" yaml:"user,omitempty"`
}

func newCoordinatesView(coords domain.RepositoryCoordinates) coordinatesView {
	uri := coords.GitURI()
	return coordinatesView{
		Authority:  coords.Authority(),
		Host:       uri.Hostname(),
		Owner:      coords.Owner(),
		Port:       uri.Port(),
		Repository: coords.RepositoryName(),
		URI:        uri.String(),
		User:       uri.User(),
	}
}

// Run executes the uri command
func (u *URICmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing uri command", "owner", u.Owner, "repo", u.Repo, "authority", u.Authority)

	coords, err := cli.Container.CoordinatesService.Resolve(context.Background(), services.ResolveParams{
		Authority: u.Authority,
		Owner:     u.Owner,
		Repo:      u.Repo,
	})
	if err != nil {
		return fmt.Errorf("invalid repository coordinates: %w", err)
	}

	w := cli.out()

	if u.ID {
		fmt.Fprintln(w, coords.ID())
		return nil
	}

	switch u.Format {
	case "uri":
		fmt.Fprintln(w, coords.GitURI().String())
	case "table":
		view := newCoordinatesView(coords)
		fmt.Fprintln(w, theme.TitleStyle.Render("Repository"))
		fmt.Fprintln(w, theme.Field("authority", view.Authority))
		fmt.Fprintln(w, theme.Field("owner", view.Owner))
		fmt.Fprintln(w, theme.Field("repository", view.Repository))
		fmt.Fprintln(w, theme.LabelStyle.Render("uri")+theme.URIStyle.Render(view.URI))
	default:
		return writeStructured(w, u.Format, newCoordinatesView(coords))
	}

	return nil
}
