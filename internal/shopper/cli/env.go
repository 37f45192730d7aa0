package cli

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tair/storefront/internal/storefront"
	"github.com/tair/storefront/internal/storefront/api"
)

// env is what a command needs to talk to the API
type env struct {
	opts     *RootOptions
	profile  *Profile
	client   *api.Client
	notifier storefront.Notifier
	printer  *printer
}

func newEnv(opts *RootOptions, cmd *cobra.Command) (*env, error) {
	profile, err := LoadProfile(opts.Profile)
	if err != nil {
		return nil, err
	}

	base := opts.API
	if base == "" {
		base = profile.API
	}
	if base == "" {
		base = DefaultAPI
	}

	return &env{
		opts:     opts,
		profile:  profile,
		client:   api.NewClient(base, opts.Timeout),
		notifier: newNotifier(cmd.ErrOrStderr(), opts.Verbose),
		printer:  &printer{format: opts.Format, out: cmd.OutOrStdout()},
	}, nil
}

// session returns the saved session or an exit error telling the shopper to log in
func (e *env) session() (storefront.Session, error) {
	if !e.profile.Session.Valid() {
		return storefront.Session{}, &ExitError{
			Code:    ExitUnauthorized,
			Message: "not logged in, run `shopper login` first",
			Err:     storefront.ErrUnauthorized,
		}
	}
	return e.profile.Session, nil
}

func (e *env) save() error {
	return e.profile.Save(e.opts.Profile)
}

// newNotifier reports failures on w; successes only when verbose
func newNotifier(w io.Writer, verbose bool) storefront.Notifier {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}).
		Level(level)
	return storefront.NewLogNotifier(log)
}
