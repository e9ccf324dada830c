package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"alfredoptarigan/resume-vibes/internal/services"
)

func newModelsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List Gemini models that support content generation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.loadConfig()

			names, err := services.NewGeminiService(nil).ListModels(cmd.Context(), cfg.Gemini)
			if err != nil {
				return err
			}

			for _, name := range names {
				marker := " "
				if name == cfg.Gemini.Model || name == "models/"+cfg.Gemini.Model {
					marker = color.GreenString("*")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
			return nil
		},
	}
}
