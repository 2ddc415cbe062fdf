package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"forum/internal/config"
	"forum/internal/domain/models/forum"
	"forum/internal/service/formatting"
)

// contentService is the part of the content pipeline the commands use.
type contentService interface {
	Prepare(raw string) string
	Render(stored string) *forum.Fragment
	Excerpt(stored string, maxRunes int) string
}

func newPrepareCmd(svc contentService) *cobra.Command {
	return &cobra.Command{
		Use:   "prepare [file]",
		Short: "Canonicalize and sanitize editor HTML into stored form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), svc.Prepare(raw))
			return err
		},
	}
}

func newRenderCmd(svc contentService) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Expand media placeholders in stored content",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stored, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			frag := svc.Render(stored)
			if !asJSON {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), frag.HTML)
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(frag)
		},
	}
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "print the fragment and its media registry as JSON")
	return cmd
}

func newExcerptCmd(svc contentService) *cobra.Command {
	var length int
	cmd := &cobra.Command{
		Use:   "excerpt [file]",
		Short: "Print the plain-text listing preview of stored content",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stored, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), svc.Excerpt(stored, length))
			return err
		},
	}
	cmd.Flags().IntVarP(&length, "length", "n", config.ExcerptLength, "maximum length in characters")
	return cmd
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <text>",
		Short: "Render curiosity markdown (bold and italic) to HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), formatting.Render(args[0]))
			return err
		},
	}
}

// readInput reads the file named by the first argument, or stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 1 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
