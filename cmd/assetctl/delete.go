package main

import (
	"fmt"
	"maps"
	"path"
	"strings"

	"github.com/spf13/cobra"

	adapterStorage "github.com/marcos-nsantos/asset-store/internal/adapter/storage"
	"github.com/marcos-nsantos/asset-store/internal/domain/entity"
)

type deleteResult struct {
	Deleted int               `json:"deleted"`
	Failed  map[string]string `json:"failed,omitempty"`
}

func newDeleteCmd(e *env, flags *globalFlags) *cobra.Command {
	var params map[string]string

	cmd := &cobra.Command{
		Use:   "delete <hash><ext>",
		Short: "Remove every object stored for an asset",
		Args:  requireObjectName,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, storageCfg, done, err := e.provider(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer done()

			ext := path.Ext(args[0])
			a := &entity.Asset{Hash: strings.TrimSuffix(args[0], ext), Ext: ext}

			merged := adapterStorage.Params{}
			maps.Copy(merged, storageCfg.Params)
			maps.Copy(merged, params)

			failures := provider.Delete(cmd.Context(), a, merged)

			result := deleteResult{Deleted: len(provider.URLs(a)) - len(failures)}
			if len(failures) > 0 {
				result.Failed = make(map[string]string, len(failures))
				for _, f := range failures {
					result.Failed[f.Key] = f.Err.Error()
				}
			}

			out := cmd.OutOrStdout()
			if flags.json {
				if err := writeJSON(out, result); err != nil {
					return err
				}
			} else {
				for _, f := range failures {
					if err := writePlain(cmd.ErrOrStderr(), "failed %s: %v\n", f.Key, f.Err); err != nil {
						return err
					}
				}
				if err := writePlain(out, "deleted %d objects\n", result.Deleted); err != nil {
					return err
				}
			}

			if len(failures) > 0 {
				return fmt.Errorf("%d of %d deletes failed", len(failures), result.Deleted+len(failures))
			}
			return nil
		},
	}

	cmd.Flags().StringToStringVar(&params, "param", nil, "delete parameter, e.g. --param VersionId=abc")

	return cmd
}

func requireObjectName(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one <hash><ext> argument, got %d", len(args))
	}
	if path.Ext(args[0]) == "" || strings.ContainsRune(args[0], '/') {
		return fmt.Errorf("invalid object name %q: want <hash><ext>", args[0])
	}
	return nil
}
