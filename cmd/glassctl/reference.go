package main

import (
	"context"
	"os"
	"strconv"

	"glass-connect-backend/internal/client"

	"github.com/spf13/cobra"
)

var apiURL string

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", envOr("GLASS_API_URL", "http://localhost:7008/api/v1"), "Base URL of the API")
	rootCmd.AddCommand(referenceCmd)
	rootCmd.AddCommand(profileCmd)
}

var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Fetch the reference vocabularies from a running API",
	Long: `Fetch the lab offer taxonomy and the ERC disciplines in one call.

Examples:
  glassctl reference
  glassctl reference --api-url https://api.example.org/api/v1 --human`,
	Args: cobra.NoArgs,
	RunE: runReference,
}

var profileCmd = &cobra.Command{
	Use:   "profile LAB_ID",
	Short: "Show the offer profile of a lab",
	Long: `Show the offer profile of a lab. Signs in first when GLASS_EMAIL and
GLASS_PASSWORD are set, using GLASS_AUTH_URL and GLASS_AUTH_KEY.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfile,
}

func runReference(cmd *cobra.Command, args []string) error {
	c, err := client.NewClient(apiURL)
	if err != nil {
		return withCode(ExitConfigError, "%v", err)
	}

	data, err := c.FetchReferenceData(cmd.Context())
	if err != nil {
		return withCode(ExitError, "fetching reference data: %v", err)
	}

	out := cmd.OutOrStdout()
	if humanOutput {
		for _, o := range data.OfferOptions {
			outputHuman(out, "%-20s %-20s %s", o.OptionGroup, o.Code, o.LabelEn)
		}
		for _, d := range data.ErcDisciplines {
			outputHuman(out, "%-5s %s", d.Code, d.Title)
		}
		return nil
	}
	return outputJSON(out, data)
}

func runProfile(cmd *cobra.Command, args []string) error {
	labID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || labID <= 0 {
		return withCode(ExitError, "invalid lab ID %q", args[0])
	}

	ctx := cmd.Context()
	opts, signOut, err := sessionOptions(ctx)
	if err != nil {
		return err
	}
	defer signOut()

	c, err := client.NewClient(apiURL, opts...)
	if err != nil {
		return withCode(ExitConfigError, "%v", err)
	}
	profile, err := c.GetOfferProfile(ctx, labID)
	if err != nil {
		return withCode(ExitError, "fetching offer profile: %v", err)
	}
	if profile == nil {
		return withCode(ExitError, "lab %d has no offer profile", labID)
	}
	return outputJSON(cmd.OutOrStdout(), profile)
}

// sessionOptions signs in when credentials are present in the environment.
func sessionOptions(ctx context.Context) ([]client.Option, func(), error) {
	email, password := os.Getenv("GLASS_EMAIL"), os.Getenv("GLASS_PASSWORD")
	if email == "" || password == "" {
		return nil, func() {}, nil
	}
	authURL := os.Getenv("GLASS_AUTH_URL")
	if authURL == "" {
		return nil, nil, withCode(ExitConfigError, "GLASS_AUTH_URL is required to sign in")
	}

	session := client.NewPasswordSession(authURL, os.Getenv("GLASS_AUTH_KEY"), nil)
	if _, err := session.SignIn(ctx, email, password); err != nil {
		return nil, nil, withCode(ExitConfigError, "signing in: %v", err)
	}
	signOut := func() { _ = session.SignOut(context.Background()) }
	return []client.Option{client.WithSession(session)}, signOut, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
