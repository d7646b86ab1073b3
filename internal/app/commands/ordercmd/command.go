package ordercmd

import (
	"context"

	"github.com/spf13/cobra"

	kanjidic "github.com/acronis/go-kanjidic"
	"github.com/acronis/go-kanjidic/internal/app/command"
)

func New(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "print all kanji in stroke/radical/JIS order with their ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := command.LoadDictionary(cmd)
			if err != nil {
				return command.WrapError(err)
			}

			return command.WrapError(execute(ctx, cmd, d))
		},
	}
}

func execute(_ context.Context, cmd *cobra.Command, d kanjidic.Dictionary) error {
	for _, k := range kanjidic.Ordering(d) {
		e := d[k]
		cmd.Printf("%d\t%s\tS%d\tB%d\t%s\n", e.KanjiID, k, e.Stroke(), e.Radical, e.JIS)
	}
	return nil
}
