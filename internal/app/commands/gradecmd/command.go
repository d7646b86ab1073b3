package gradecmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	kanjidic "github.com/acronis/go-kanjidic"
	"github.com/acronis/go-kanjidic/internal/app/command"
)

func New(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "grade [n]",
		Short: "list kanji of a school grade in dictionary order, or all grades",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := command.LoadDictionary(cmd)
			if err != nil {
				return command.WrapError(err)
			}

			if len(args) == 0 {
				return command.WrapError(executeAll(ctx, cmd, d))
			}

			grade, err := strconv.Atoi(args[0])
			if err != nil || grade < kanjidic.GradeJoyoMin || grade > kanjidic.GradeJinmeiyoMax {
				return fmt.Errorf("grade must be a number between %d and %d",
					kanjidic.GradeJoyoMin, kanjidic.GradeJinmeiyoMax)
			}

			return command.WrapError(execute(ctx, cmd, d, grade))
		},
	}
}

func execute(_ context.Context, cmd *cobra.Command, d kanjidic.Dictionary, grade int) error {
	for _, k := range kanjidic.ByGrade(d, grade) {
		cmd.Println(k)
	}
	return nil
}

func executeAll(_ context.Context, cmd *cobra.Command, d kanjidic.Dictionary) error {
	idx := kanjidic.GradeIndex(d)
	for pair := idx.Oldest(); pair != nil; pair = pair.Next() {
		cmd.Printf("grade %d (%d kanji):\n", pair.Key, len(pair.Value))
		for _, k := range pair.Value {
			cmd.Printf("  %s\n", k)
		}
	}
	return nil
}
