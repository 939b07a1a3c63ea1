package main

import (
	"fmt"
	"os"

	"github.com/adrianliechti/toolify/pkg/docx"

	"github.com/spf13/cobra"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <docx>",
		Short: "Print the paragraphs of a Word document",

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])

			if err != nil {
				return err
			}

			paragraphs, err := docx.Paragraphs(data)

			if err != nil {
				return err
			}

			for i, p := range paragraphs {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i+1, p)
			}

			return nil
		},
	}
}
