package main

import (
	"github.com/go-faster/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/yaroher/protoc-gen-go-leo/generator/field"
	"github.com/yaroher/protoc-gen-go-leo/internal/preview"
	"github.com/yaroher/protoc-gen-go-leo/logger"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "leo-preview",
		Short:        "Preview protoc-gen-go-leo output for a YAML message",
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCmd(), newMessageCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	var phases []string
	cmd := &cobra.Command{
		Use:   "render FILE.yaml",
		Short: "Print the fragments of every field, phase by phase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := preview.LoadFile(args[0])
			if err != nil {
				return err
			}
			selected, err := parsePhases(phases)
			if err != nil {
				return err
			}
			fragments, err := m.Fragments(selected...)
			if err != nil {
				return err
			}
			return preview.WriteFragments(cmd.OutOrStdout(), fragments)
		},
	}
	cmd.Flags().StringSliceVar(&phases, "phase", nil, "phases to print (default all)")
	return cmd
}

func newMessageCmd() *cobra.Command {
	var parameter string
	cmd := &cobra.Command{
		Use:   "message FILE.yaml",
		Short: "Print the generated file for the message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := preview.LoadFile(args[0])
			if err != nil {
				return err
			}
			log := logger.Logger.Named("preview").With(zap.String("message", m.Name))
			content, err := m.Generate(parameter, log)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write([]byte(content))
			return err
		},
	}
	cmd.Flags().StringVar(&parameter, "parameter", "", "plugin parameter, e.g. json=false,suffix=Msg")
	return cmd
}

func parsePhases(names []string) ([]field.Phase, error) {
	phases := lo.Map(names, func(name string, _ int) field.Phase { return field.Phase(name) })
	if unknown, ok := lo.Find(phases, func(p field.Phase) bool {
		return !lo.Contains(field.Phases, p)
	}); ok {
		return nil, errors.Wrapf(field.ErrUnknownPhase, "%q", unknown)
	}
	return phases, nil
}
