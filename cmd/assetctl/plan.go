package main

import (
	"github.com/spf13/cobra"

	"github.com/marcos-nsantos/asset-store/internal/usecase/variant"
)

type plannedVariant struct {
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

func newPlanCmd(e *env, flags *globalFlags) *cobra.Command {
	var thumbnail bool

	cmd := &cobra.Command{
		Use:   "plan <file>",
		Short: "Print the variants an upload of file would write",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imageCfg, err := e.loadImage()
			if err != nil {
				return err
			}

			a, data, err := e.describeFile(args[0], thumbnail)
			if err != nil {
				return err
			}

			observer, done, err := e.observer(flags)
			if err != nil {
				return err
			}
			defer done()

			variants, err := variant.NewPlanner(e.codec, imageCfg.Optimize, observer).Plan(a, data, imageCfg.Sizes)
			if err != nil {
				return err
			}

			category := a.Category()
			planned := make([]plannedVariant, len(variants))
			for i, v := range variants {
				planned[i] = plannedVariant{
					Key:         variant.Key(category, v.Path),
					ContentType: v.ContentType,
					Size:        len(v.Data),
				}
			}

			out := cmd.OutOrStdout()
			if flags.json {
				return writeJSON(out, planned)
			}
			for _, p := range planned {
				if err := writePlain(out, "%s\t%s\t%d\n", p.Key, p.ContentType, p.Size); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&thumbnail, "thumbnail", false, "plan as a thumbnail upload")

	return cmd
}
