package cmd

import (
	"errors"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/gitcoords/gitcoords/internal/config"
	"github.com/gitcoords/gitcoords/internal/gituri"
	"github.com/gitcoords/gitcoords/internal/logging"
	"github.com/gitcoords/gitcoords/internal/theme"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	Set  SettingsSetCmd  `cmd:"set" help:"Update values in settings.json"`
}

// SettingsSetCmd writes values to settings.json, leaving unset flags untouched
type SettingsSetCmd struct {
	DefaultAuthority string `help:"Authority used when uri gets no --authority" name:"default-authority"`
	TimeZone         string `help:"IANA time zone for stamps" name:"time-zone"`
	UserEmail        string `help:"Email used by stamp" name:"user-email"`
	UserName         string `help:"Name used by stamp" name:"user-name"`
}

// Run executes the set command
func (s *SettingsSetCmd) Run(cli *CLI) error {
	if s.DefaultAuthority == "" && s.TimeZone == "" && s.UserEmail == "" && s.UserName == "" {
		return errors.New("nothing to set: pass at least one of --default-authority, --time-zone, --user-email, --user-name")
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	if s.DefaultAuthority != "" {
		if _, err := gituri.SSH(s.DefaultAuthority, ""); err != nil {
			return fmt.Errorf("invalid default authority: %w", err)
		}
		settings.DefaultAuthority = s.DefaultAuthority
	}
	if s.TimeZone != "" {
		settings.TimeZone = s.TimeZone
	}
	if s.UserEmail != "" {
		settings.UserEmail = s.UserEmail
	}
	if s.UserName != "" {
		settings.UserName = s.UserName
	}

	if err := settings.Validate(); err != nil {
		return err
	}
	if err := config.SaveSettings(settings); err != nil {
		return err
	}

	logging.Logger.Info("Settings saved", "path", config.GetSettingsPath())
	fmt.Fprintf(cli.out(), "Settings saved to %s\n", config.GetSettingsPath())
	return nil
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()
	w := cli.out()

	if s.Format != "table" {
		return writeStructured(w, s.Format, map[string]any{
			"settings_file":     settingsFile,
			"default_authority": cli.settings.Authority(),
			"format":            example,
		})
	}

	fmt.Fprintln(w, theme.Field("file", settingsFile))
	fmt.Fprintln(w, theme.Field("authority", cli.settings.Authority()))
	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.TitleStyle.Render("Example settings.json"))

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(tw, "%s\t%v\n", key, example[key])
	}
	tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.MutedStyle.Render("All settings are optional and have sensible defaults."))

	return nil
}
