package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jenjinstudios/jt/internal/jira"
	"github.com/jenjinstudios/jt/internal/prompt"
	"github.com/jenjinstudios/jt/internal/storage"
)

func setupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Run the setup questions again",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(app)
		},
	}
}

// runSetup walks the first-use questions: JIRA yes/no, credentials with an
// interactive retry on bad logins, then an initial task sync. All three
// documents are saved at the end.
func runSetup(a *appState) error {
	fmt.Println("Welcome to jt! A handy little CLI timer with JIRA integration")
	fmt.Println("To get started, lets go through a few setup questions...")

	useJira, err := prompt.Confirm("Would you like to use JIRA integration?")
	if err != nil {
		return err
	}
	a.opts.UseJira = useJira

	if useJira {
		if err := runJiraLogin(a); err != nil {
			return err
		}
		if err := syncTasks(context.Background(), a); err != nil {
			// Sync failure is reported but does not block setup; the
			// existing (possibly empty) task list stays as it is.
			fmt.Println(err)
		}
	}

	a.opts.Setup = true
	return a.saveAll()
}

// runJiraLogin asks for credentials until JIRA accepts them.
func runJiraLogin(a *appState) error {
	for {
		rawURL, err := prompt.Input(
			"What is your JIRA url? (e.g. jenjinstudios.atlassian.net)",
			"sidigital.atlassian.net", nil)
		if err != nil {
			return err
		}
		baseURL := normalizeBaseURL(rawURL)

		username, err := prompt.Input("What is your JIRA username?", "admin", nil)
		if err != nil {
			return err
		}
		password, err := prompt.Password("What is your JIRA password? (This will not be stored)")
		if err != nil {
			return err
		}

		fmt.Println("Testing credentials. Just a moment!")
		client := jira.NewClient(baseURL)
		session, err := client.Login(context.Background(), username, password)
		if errors.Is(err, jira.ErrLoginFailed) {
			fmt.Println("Sorry, they didn't work. Please try again.")
			continue
		}
		if err != nil {
			return err
		}

		fmt.Println("Logged in! Storing session cookie for future requests.")
		a.opts.LoggedIn = true
		a.opts.BaseURL = baseURL
		a.opts.Username = username
		a.opts.Session = storage.Session(session)
		return nil
	}
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}
