package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/gitcoords/gitcoords/internal/domain"
	"github.com/gitcoords/gitcoords/internal/logging"
	"github.com/gitcoords/gitcoords/internal/services"
	"github.com/gitcoords/gitcoords/internal/theme"
)

// StampCmd prints an identity stamp for the current time
type StampCmd struct {
	Email    string `help:"Email address (default: settings user_email)"`
	Format   string `help:"Output format: ident, table, json or yaml" enum:"ident,table,json,yaml" default:"ident"`
	Name     string `help:"Display name (default: settings user_name)"`
	TimeZone string `help:"IANA time zone, e.g. Europe/Paris (default: settings time_zone, then local)" name:"tz"`
}

type stampView struct {
	Email     string `json:"email" yaml:"email"`
	Ident     string `json:"ident" yaml:"ident"`
	Name      string `json:"name" yaml:"name"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Unix      int64  `json:"unix" yaml:"unix"`
	Zone      string `json:"zone" yaml:"zone"`
}

func newStampView(stamp domain.IDStamp) stampView {
	ts := stamp.Timestamp()
	return stampView{
		Email:     stamp.Email(),
		Ident:     stamp.Ident(),
		Name:      stamp.Name(),
		Timestamp: ts.Format(time.RFC3339),
		Unix:      ts.Unix(),
		Zone:      ts.Location().String(),
	}
}

// Run executes the stamp command
func (s *StampCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing stamp command", "name", s.Name, "email", s.Email, "tz", s.TimeZone)

	stamp, err := cli.Container.StampService.Stamp(context.Background(), services.StampParams{
		Email:    s.Email,
		Name:     s.Name,
		TimeZone: s.TimeZone,
	})
	if err != nil {
		return fmt.Errorf("failed to create identity stamp: %w", err)
	}

	w := cli.out()

	switch s.Format {
	case "ident":
		fmt.Fprintln(w, stamp.Ident())
	case "table":
		view := newStampView(stamp)
		fmt.Fprintln(w, theme.TitleStyle.Render("Identity"))
		fmt.Fprintln(w, theme.Field("name", view.Name))
		fmt.Fprintln(w, theme.Field("email", view.Email))
		fmt.Fprintln(w, theme.Field("timestamp", view.Timestamp))
		fmt.Fprintln(w, theme.Field("zone", view.Zone))
	default:
		return writeStructured(w, s.Format, newStampView(stamp))
	}

	return nil
}
