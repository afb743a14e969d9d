package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/champagne/pkg/pipeline"
)

// paramsCommand creates the params command listing the parameter schema.
func (c *CLI) paramsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "params",
		Short: "List the panel parameters with defaults and ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			specs := pipeline.Schema()
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(specs)
			}
			fmt.Println(paramsTable(specs))
			printNewline()
			printDetail("Ranges are advisory; values outside them are accepted with a warning.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the schema as JSON")
	return cmd
}

// paramsTable renders the schema with the flag that sets each parameter.
func paramsTable(specs []pipeline.ParamSpec) string {
	rows := make([][]string, 0, len(specs))
	for _, s := range specs {
		rows = append(rows, []string{s.Name, s.Title, fmt.Sprint(s.Default), s.Range(), flagFor(s.Name)})
	}
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Title", "Default", "Range", "Flag").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			case col == 4:
				return styleCommand
			}
			return StyleValue
		}).
		Render()
}

// flagFor returns the generate flag for a schema name. Steps share one flag.
func flagFor(name string) string {
	if strings.HasPrefix(name, "step") {
		return "--steps"
	}
	return "--" + strings.ReplaceAll(name, "_", "-")
}
