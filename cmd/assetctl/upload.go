package main

import (
	"maps"

	"github.com/spf13/cobra"

	adapterStorage "github.com/marcos-nsantos/asset-store/internal/adapter/storage"
)

type uploadResult struct {
	Hash     string   `json:"hash"`
	Ext      string   `json:"ext"`
	Mime     string   `json:"mime"`
	URL      string   `json:"url"`
	Variants []string `json:"variants"`
}

func newUploadCmd(e *env, flags *globalFlags) *cobra.Command {
	var (
		thumbnail bool
		params    map[string]string
	)

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Write every variant of file to the bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, storageCfg, done, err := e.provider(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer done()

			a, data, err := e.describeFile(args[0], thumbnail)
			if err != nil {
				return err
			}

			merged := adapterStorage.Params{}
			maps.Copy(merged, storageCfg.Params)
			maps.Copy(merged, params)

			url, err := provider.Upload(cmd.Context(), a, data, merged)
			if err != nil {
				return err
			}

			result := uploadResult{
				Hash:     a.Hash,
				Ext:      a.Ext,
				Mime:     a.Mime,
				URL:      url,
				Variants: provider.URLs(a),
			}

			out := cmd.OutOrStdout()
			if flags.json {
				return writeJSON(out, result)
			}
			return writePlain(out, "%s\n", result.URL)
		},
	}

	cmd.Flags().BoolVar(&thumbnail, "thumbnail", false, "store as a thumbnail")
	cmd.Flags().StringToStringVar(&params, "param", nil, "object parameter, e.g. --param CacheControl=max-age=60")

	return cmd
}
