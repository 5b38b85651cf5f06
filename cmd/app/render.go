package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"teamfortasks/internal/config"
	"teamfortasks/internal/pricing"
	"teamfortasks/internal/services"
	"teamfortasks/web/templates/pages/landing"
)

func newRenderCmd(envFile *string) *cobra.Command {
	var (
		billing string
		team    string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the landing page as a static HTML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*envFile)
			if err != nil {
				return err
			}
			svc, err := services.New(cfg.Fixtures.File)
			if err != nil {
				return err
			}

			page, err := svc.NewPage()
			if err != nil {
				return err
			}
			period, err := pricing.ParseBillingPeriod(billing)
			if err != nil {
				return err
			}
			page.SetBilling(period)
			if team != "" {
				if err := page.SelectTeam(team); err != nil {
					return err
				}
			}

			doc := landing.Standalone(page.Model(time.Now()))
			if out == "" {
				return doc.Render(cmd.Context(), cmd.OutOrStdout())
			}
			return writeFile(out, func(w io.Writer) error {
				return doc.Render(cmd.Context(), w)
			})
		},
	}
	cmd.Flags().StringVar(&billing, "billing", "annual", "billing period: annual or monthly")
	cmd.Flags().StringVar(&team, "team", "", "active mini-board team (default: first team)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}

// writeFile creates path and reports a failed close when write succeeded.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return write(f)
}
