package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"qazaqspace/internal/asset"
	"qazaqspace/internal/logging"
	"qazaqspace/internal/session"
	"qazaqspace/internal/ui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Run the interactive mission control dashboard",
	Long:  "dashboard opens the terminal control panel: telemetry sliders, gauges, risk banner, scenario presets, AI analysis and the assistant.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("dashboard needs a terminal; use ask, evaluate or replay instead")
		}
		log := logging.FromContext(cmd.Context())
		opts, cfg, err := sessionOptions(cmd)
		if err != nil {
			return err
		}
		s := session.New(opts)

		banner, err := asset.Banner(cfg.AssetPath)
		if err != nil {
			log.Warn("asset unavailable", "path", cfg.AssetPath, "err", err)
		}
		m := ui.New(s, ui.Options{Asset: banner, AssetMissing: err != nil, Logger: log})

		log.Info("dashboard started", "session", s.ID(), "presets", len(s.Presets()))
		final, err := ui.Run(cmd.Context(), m)
		log.Info("dashboard closed", "session", s.ID(), "log_entries", len(final.Session().Log()))
		return err
	},
}
