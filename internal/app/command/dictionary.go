package command

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	kanjidic "github.com/acronis/go-kanjidic"
	"github.com/acronis/go-kanjidic/kanjifile"
)

const (
	dictFileFlag = "file"
	encodingFlag = "encoding"
	strictFlag   = "strict"
)

func AddDictionaryFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(dictFileFlag, "f", "kanjidic", "path to the dictionary file")
	cmd.PersistentFlags().StringP(encodingFlag, "e", string(kanjifile.EncodingEUCJP), "dictionary file encoding (euc-jp or utf-8)")
	cmd.PersistentFlags().Bool(strictFlag, false, "fail on unrecognized tokens instead of skipping them")
}

// LoadDictionary reads and parses the dictionary selected by the command
// flags. Skipped tokens are logged as warnings.
func LoadDictionary(cmd *cobra.Command) (kanjidic.Dictionary, error) {
	path, err := cmd.Flags().GetString(dictFileFlag)
	if err != nil {
		return nil, fmt.Errorf("get file flag: %w", err)
	}
	enc, err := cmd.Flags().GetString(encodingFlag)
	if err != nil {
		return nil, fmt.Errorf("get encoding flag: %w", err)
	}
	strict, err := cmd.Flags().GetBool(strictFlag)
	if err != nil {
		return nil, fmt.Errorf("get strict flag: %w", err)
	}

	if sum, sumErr := kanjifile.Checksum(path); sumErr == nil {
		slog.Debug("Loading dictionary", slog.String("path", path), slog.String("checksum", sum))
	}

	lines, err := kanjifile.ReadLines(path, kanjifile.Encoding(enc))
	if err != nil {
		return nil, err
	}

	d, err := kanjidic.Parse(lines,
		kanjidic.WithStrictTokens(strict),
		kanjidic.WithWarnFunc(func(line int, kanji string, warnErr error) {
			slog.Warn("Skipped dictionary field",
				slog.Int("line", line), slog.String("kanji", kanji), slog.String("reason", warnErr.Error()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("parse dictionary %s: %w", path, err)
	}

	slog.Debug("Dictionary loaded", slog.Int("entries", len(d)))
	return d, nil
}
