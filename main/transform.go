package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rawbytedev/dynstr"
	"github.com/rawbytedev/dynstr/pkg/lineio"
)

var (
	flagChain    []string
	flagRemove   string
	flagReplace  string
	flagTruncate string
)

var transformCmd = &cobra.Command{
	Use:   "transform [text...]",
	Short: "Apply a transform chain to argument text",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTransform,
}

func init() {
	transformCmd.Flags().StringSliceVar(&flagChain, "chain", nil, "transform chain (upper, lower, title, reverse); defaults to config")
	transformCmd.Flags().StringVar(&flagRemove, "remove", "", "remove the first occurrence of this word")
	transformCmd.Flags().StringVar(&flagReplace, "replace", "", "replace first occurrence, as old=new")
	transformCmd.Flags().StringVar(&flagTruncate, "truncate-after", "", "truncate after the last occurrence of this byte")
	rootCmd.AddCommand(transformCmd)
}

func runTransform(cmd *cobra.Command, args []string) error {
	s := dynstr.New()
	defer s.Free()
	if err := s.Append(strings.Join(args, " ")); err != nil {
		return err
	}

	chain := flagChain
	if chain == nil {
		chain = config.Transform.Chain
	}
	if err := applyChain(s, chain); err != nil {
		return err
	}

	if flagRemove != "" {
		if err := s.RemoveWord(flagRemove); err != nil {
			return fmt.Errorf("remove %q: %w", flagRemove, err)
		}
	}
	if flagReplace != "" {
		old, repl, ok := strings.Cut(flagReplace, "=")
		if !ok {
			return fmt.Errorf("replace argument %q: want old=new", flagReplace)
		}
		if err := s.ReplaceWord(old, repl); err != nil {
			return fmt.Errorf("replace %q: %w", flagReplace, err)
		}
	}
	if flagTruncate != "" {
		if len(flagTruncate) != 1 {
			return fmt.Errorf("truncate-after %q: want a single byte", flagTruncate)
		}
		if err := s.TruncateAfterLast(flagTruncate[0]); err != nil {
			return fmt.Errorf("truncate after %q: %w", flagTruncate, err)
		}
	}

	sink := lineio.NewWriter(cmd.OutOrStdout())
	if err := sink.WriteContent(s.String()); err != nil {
		return err
	}
	return sink.WriteContent("\n")
}

// applyChain runs the named in-place transforms in order.
func applyChain(s *dynstr.Str, chain []string) error {
	for _, name := range chain {
		var err error
		switch name {
		case "upper":
			err = s.Upper()
		case "lower":
			err = s.Lower()
		case "title":
			err = s.TitleCase()
		case "reverse":
			err = s.Reverse()
		case "":
			// allow empty entries from sloppy config
		default:
			return fmt.Errorf("unknown transform %q", name)
		}
		if err != nil {
			return fmt.Errorf("transform %s: %w", name, err)
		}
	}
	return nil
}
