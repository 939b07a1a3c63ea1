package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/adrianliechti/toolify/pkg/action"

	"github.com/spf13/cobra"
)

func newBackgroundCommand(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "background <image>",
		Short: "Remove the background of an image",

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := readDataURL(args[0])

			if err != nil {
				return err
			}

			r, err := newRunner(opts)

			if err != nil {
				return err
			}

			defer r.Close()

			result, err := r.RemoveBackground(cmd.Context(), image)

			if err != nil {
				return err
			}

			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + "-nobg.png"
			}

			return writeDataURL(output, result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")

	return cmd
}

func newOCRCommand(opts *options) *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "ocr <image>",
		Short: "Extract the text of an image",

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := readDataURL(args[0])

			if err != nil {
				return err
			}

			r, err := newRunner(opts)

			if err != nil {
				return err
			}

			defer r.Close()

			text, err := r.ExtractText(cmd.Context(), image, language)

			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "tesseract language code, e.g. eng+deu")

	return cmd
}

func newParaphraseCommand(opts *options) *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "paraphrase [text]",
		Short: "Rewrite a text, read from stdin when no argument is given",

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			var text string

			if len(args) > 0 {
				text = args[0]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())

				if err != nil {
					return err
				}

				text = string(data)
			}

			r, err := newRunner(opts)

			if err != nil {
				return err
			}

			defer r.Close()

			result, err := r.Paraphrase(cmd.Context(), text, style)

			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&style, "style", "s", string(action.StyleStandard), "paraphrase style")

	return cmd
}

func newConvertCommand(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert <pdf>",
		Short: "Convert a PDF into a Word document",

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readDataURL(args[0])

			if err != nil {
				return err
			}

			r, err := newRunner(opts)

			if err != nil {
				return err
			}

			defer r.Close()

			result, err := r.Convert(cmd.Context(), input)

			if err != nil {
				return err
			}

			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".docx"
			}

			return writeDataURL(output, result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")

	return cmd
}

func newMergeCommand(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "merge <pdf> <pdf>...",
		Short: "Merge several PDFs into one Word document",

		Args: cobra.MinimumNArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			var inputs []string

			for _, path := range args {
				input, err := readDataURL(path)

				if err != nil {
					return err
				}

				inputs = append(inputs, input)
			}

			r, err := newRunner(opts)

			if err != nil {
				return err
			}

			defer r.Close()

			result, err := r.Merge(cmd.Context(), inputs)

			if err != nil {
				return err
			}

			return writeDataURL(output, result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "merged.docx", "output file")

	return cmd
}
