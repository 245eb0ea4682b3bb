package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rechati/stripcomments/cmd/languages"
)

// languagesCmd lists the supported languages, in registration order, with
// the extensions mapped to each. Useful for picking a --lang value.
var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages and their file extensions",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range languages.Names() {
			lang, _ := languages.Get(name)
			if len(lang.Extensions) == 0 {
				fmt.Println(name)
				continue
			}
			fmt.Printf("%s (%s)\n", name, strings.Join(lang.Extensions, " "))
		}
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
