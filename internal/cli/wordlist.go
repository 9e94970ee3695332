package cli

import (
	"github.com/spf13/cobra"
)

func newWordListCmd(d *deps) *cobra.Command {
	var (
		listAll bool
		from    string
	)

	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Show word list and dictionary statistics",
		Long: `Load the root word list and report where it came from and how many
words it and the dictionary hold.

With --all every root word is listed. With --from every dictionary word that
can be made from the given root word is listed, longest first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := d.app.WordListService.Load(cmd.Context())
			if err != nil {
				return err
			}

			stats := WordListStats{
				Source:          d.app.WordListService.Source(),
				RootWords:       len(words),
				DictionaryWords: d.app.DictionaryService.WordCount(),
			}
			switch {
			case from != "":
				stats.Words = d.app.DictionaryService.FindFormableWords(from)
			case listAll:
				stats.Words = words
			}

			d.out.Print(stats)
			return nil
		},
	}

	cmd.Flags().BoolVar(&listAll, "all", false, "List every root word")
	cmd.Flags().StringVar(&from, "from", "", "List dictionary words formable from this root word")

	return cmd
}
