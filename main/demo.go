package main

import (
	"errors"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rawbytedev/dynstr"
	"github.com/rawbytedev/dynstr/pkg/lineio"
	"github.com/rawbytedev/dynstr/pkg/refreg"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Read lines from stdin, transform them, track them in a registry",
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	src := lineio.NewReader(cmd.InOrStdin())
	sink := lineio.NewWriter(cmd.OutOrStdout())
	registry := refreg.New()

	lines := 0
	for {
		err := demoLine(src, sink, registry)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		lines++
	}

	log.Info().Int("lines", lines).Int("registry_len", registry.Len()).Msg("demo finished")
	return nil
}

// demoLine processes one input line through a fresh instance. Whatever
// happens, the instance's remaining registry nodes are released before it is
// freed; the registry never invalidates nodes on its own.
func demoLine(src *lineio.Reader, sink *lineio.Writer, registry *refreg.List) error {
	s := dynstr.New()
	defer s.Free()
	defer func() {
		for registry.Refs(s) > 0 {
			_ = registry.Deregister(s)
		}
	}()

	var err error
	if max := config.Input.MaxLineBytes; max > 0 {
		var line string
		line, err = src.ReadLine(max)
		if err == nil {
			err = s.Append(line)
		}
	} else {
		err = s.SetFromInput(src)
	}
	if err != nil {
		return err
	}

	// One node per holder: the transform stage and the output stage each
	// check the line out.
	for i := 0; i < 2; i++ {
		if err := registry.Register(s); err != nil {
			return err
		}
	}
	log.Debug().
		Str("handle", s.Handle().String()).
		Int("len", s.Len()).
		Int("refs", registry.Refs(s)).
		Msg("line checked out")

	if err := applyChain(s, config.Transform.Chain); err != nil {
		return err
	}
	if err := registry.Deregister(s); err != nil {
		return err
	}

	if err := sink.WriteContent(s.String()); err != nil {
		return err
	}
	return sink.WriteContent("\n")
}
