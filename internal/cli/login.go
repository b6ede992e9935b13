package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	appservice "taskboard/internal/app/service"
	"taskboard/internal/app/session"
	"taskboard/internal/core/domain"
)

func (a *app) newLoginCmd() *cobra.Command {
	var creds domain.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and print the session token",
		Long: `Sign in against the remote task service and print the session token.

Export it for later commands:
  export SESSION_TOKEN=$(taskboard login --username ann --password secret)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := session.New()
			auth := appservice.NewAuthenticator(a.restClient(), sess)
			if _, err := auth.Login(cmd.Context(), creds); err != nil {
				return describe(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), sess.SessionToken())
			return nil
		},
	}

	cmd.Flags().StringVar(&creds.UserName, "username", "", "account username")
	cmd.Flags().StringVar(&creds.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// describe prefers the remote service's own message when it sent one,
// keeping the original error in the chain.
func describe(err error) error {
	if msg := domain.ServiceMessage(err); msg != "" {
		return &remoteMessageError{msg: msg, err: err}
	}
	return err
}

type remoteMessageError struct {
	msg string
	err error
}

func (e *remoteMessageError) Error() string { return e.msg }

func (e *remoteMessageError) Unwrap() error { return e.err }
