// Package commands holds helpers shared by the subcommands.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/redjax/sysfacts/internal/config"
	platformservice "github.com/redjax/sysfacts/internal/services/platformService"
)

// Settings returns the configuration loaded by the root command.
func Settings(cmd *cobra.Command) *config.Settings {
	return config.FromContext(cmd.Context())
}

// NewService builds a platform service from the loaded configuration.
func NewService(cmd *cobra.Command) (*platformservice.Service, error) {
	return NewServiceFromSettings(Settings(cmd))
}

// NewServiceFromSettings builds a platform service for the configured
// profile, applying any interface overrides.
func NewServiceFromSettings(s *config.Settings) (*platformservice.Service, error) {
	profile, err := platformservice.ProfileByID(s.Platform)
	if err != nil {
		return nil, err
	}

	return platformservice.New(platformservice.Options{
		Profile: &profile,
		Overrides: platformservice.Overrides{
			WiFiInterface: s.WiFi.Interface,
			AuxInterface:  s.WiFi.AuxInterface,
			TetherMatch:   s.WiFi.TetherMatch,
		},
	})
}
