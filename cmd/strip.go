package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.design/x/clipboard"

	"github.com/rechati/stripcomments/cmd/languages"
)

// langFlag forces a language instead of inferring it from the extension.
// outFlag redirects the result to a file, dirFlag/filePattern select batch
// mode over a directory tree.
var (
	langFlag    string
	outFlag     string
	copyFlag    bool
	dirFlag     string
	filePattern string
	writeFlag   bool
)

// outputSuffix is inserted before the extension when results are saved next
// to their sources, e.g. app.py -> app_nocomments.py.
const outputSuffix = "_nocomments"

// stripCmd defines a Cobra command that removes comments from a single file,
// from stdin, or from every matching file under a directory.
var stripCmd = &cobra.Command{
	Use:   "strip [file]",
	Short: "Remove comments from a file, stdin, or a directory tree",
	Long: `Strip removes comments from source code.

Single file (language inferred from the extension unless --lang is given):
  stripcomments strip app.py
  stripcomments strip query.sql -o query_clean.sql
  stripcomments strip - --lang Lua < init.lua

Whole tree, saving each result next to its source with a _nocomments suffix:
  stripcomments strip --dir ./src --files "*.js" --write
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if dirFlag != "" {
			if len(args) > 0 {
				return fmt.Errorf("cannot combine a file argument with --dir")
			}
			return stripTree(dirFlag, filePattern)
		}
		if len(args) == 0 {
			return fmt.Errorf(`missing input file (use "-" for stdin)`)
		}
		return stripOne(args[0])
	},
}

// init registers stripCmd and its flags on the root command.
func init() {
	rootCmd.AddCommand(stripCmd)

	stripCmd.Flags().StringVarP(&langFlag, "lang", "l", "",
		"Language identifier (default: inferred from the file extension)")
	stripCmd.Flags().StringVarP(&outFlag, "output", "o", "",
		"Write the result to this file instead of stdout")
	stripCmd.Flags().BoolVarP(&copyFlag, "copy", "c", false,
		"Also copy the result to the system clipboard")
	stripCmd.Flags().StringVarP(&dirFlag, "dir", "d", "",
		"Strip every matching file under this directory")
	stripCmd.Flags().StringVarP(&filePattern, "files", "f", "*",
		"File pattern to match in --dir mode (e.g. *.py)")
	stripCmd.Flags().BoolVarP(&writeFlag, "write", "w", false,
		"In --dir mode, save each result next to its source")
}

// stripOne processes a single file, or stdin when path is "-". The result
// goes to --output if set, otherwise to stdout.
func stripOne(path string) error {
	var (
		source []byte
		err    error
	)
	if path == "-" {
		source, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		source, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
	}

	lang, err := resolveLanguage(path)
	if err != nil {
		return err
	}
	cleaned := languages.RemoveComments(string(source), lang)

	if copyFlag {
		if err := clipboard.Init(); err != nil {
			return fmt.Errorf("clipboard unavailable: %w", err)
		}
		clipboard.Write(clipboard.FmtText, []byte(cleaned))
	}

	if outFlag != "" {
		if err := os.WriteFile(outFlag, []byte(cleaned+"\n"), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outFlag, err)
		}
		return nil
	}
	fmt.Println(cleaned)
	return nil
}

// stripTree strips every file under dir whose base name matches pattern.
// With --write each result is saved as a _nocomments sibling; otherwise
// results are printed to stdout under per-file headers. I/O failures on
// individual files are logged and skipped, they never abort the batch.
func stripTree(dir, pattern string) error {
	files, err := collectFiles(dir, pattern)
	if err != nil {
		return fmt.Errorf("collecting files: %w", err)
	}
	if len(files) == 0 {
		fmt.Println("No files matched.")
		return nil
	}

	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Skipping %s: %v", path, err)
			continue
		}
		lang, err := resolveLanguage(path)
		if err != nil {
			return err
		}
		cleaned := languages.RemoveComments(string(source), lang)

		if writeFlag {
			out := outputName(path)
			if err := os.WriteFile(out, []byte(cleaned+"\n"), 0644); err != nil {
				log.Printf("Skipping %s: %v", path, err)
				continue
			}
			fmt.Printf("%s -> %s\n", path, out)
			continue
		}
		fmt.Printf("## %s (%s)\n\n%s\n\n", path, lang, cleaned)
	}
	return nil
}

// resolveLanguage picks the language for path: the --lang flag when set
// (which must name a registered language), otherwise the file extension.
func resolveLanguage(path string) (string, error) {
	if langFlag != "" {
		if _, ok := languages.Get(langFlag); !ok {
			return "", fmt.Errorf("unknown language %q (run \"stripcomments languages\" for the list)", langFlag)
		}
		return langFlag, nil
	}
	return languages.ForFilename(path), nil
}

// collectFiles scans the provided directory and returns a list of files
// matching the specified pattern. Files produced by a previous run (the
// _nocomments suffix) are skipped so repeated runs don’t strip their own
// output.
func collectFiles(dir, pattern string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if isGenerated(path) {
			return nil
		}
		matched, err := filepath.Match(pattern, filepath.Base(path))
		if err != nil {
			return err
		}
		if matched {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// outputName builds the sibling output path: foo.py -> foo_nocomments.py.
func outputName(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + outputSuffix + ext
}

// isGenerated reports whether path looks like one of our own outputs.
func isGenerated(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(strings.TrimSuffix(base, filepath.Ext(base)), outputSuffix)
}
