package infocmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	kanjidic "github.com/acronis/go-kanjidic"
	"github.com/acronis/go-kanjidic/internal/app/command"
)

const queryFlag = "query"

func New(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <kanji>",
		Short: "print the dictionary entry of a kanji as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := command.LoadDictionary(cmd)
			if err != nil {
				return command.WrapError(err)
			}
			query, err := cmd.Flags().GetString(queryFlag)
			if err != nil {
				return fmt.Errorf("get query flag: %w", err)
			}

			return command.WrapError(execute(ctx, cmd, d, args[0], query))
		},
	}
	cmd.Flags().StringP(queryFlag, "q", "", "print only the value at the given gjson path")
	return cmd
}

func execute(_ context.Context, cmd *cobra.Command, d kanjidic.Dictionary, kanji, query string) error {
	e, ok := d[kanji]
	if !ok {
		return fmt.Errorf("kanji %q is not in the dictionary", kanji)
	}

	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	if query != "" {
		res := gjson.GetBytes(data, query)
		if !res.Exists() {
			return fmt.Errorf("no value at path %q", query)
		}
		cmd.Println(res.String())
		return nil
	}

	cmd.Println(string(data))
	return nil
}
