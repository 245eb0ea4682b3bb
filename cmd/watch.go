package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/rechati/stripcomments/cmd/languages"
)

// Directories that never contain sources worth watching.
var ignoreDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	".venv":        true,
	"__pycache__":  true,
	"vendor":       true,
}

// watchCmd defines a Cobra command that keeps stripped copies of a file or
// directory tree up to date as the sources change.
var watchCmd = &cobra.Command{
	Use:   "watch <path>",
	Short: "Watch a file or directory and restrip on every change",
	Long: `Watch monitors a file or a directory tree and re-runs comment removal
whenever a matching source file is written, saving the result next to the
source with a _nocomments suffix. Stop it with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchPath(args[0], filePattern)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&langFlag, "lang", "l", "",
		"Language identifier (default: inferred from each file's extension)")
	watchCmd.Flags().StringVarP(&filePattern, "files", "f", "*",
		"File pattern to restrip (e.g. *.py)")
}

// watchPath watches root (a file or a directory, recursively) and restrips
// matching files on write and create events. Editors often fire several
// writes per save, so events for the same path are debounced.
func watchPath(root, pattern string) error {
	absPath, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("watching %s: %w", root, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if info.IsDir() {
		// Walk and add all directories; fsnotify does not recurse itself.
		err = filepath.Walk(absPath, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return nil // skip inaccessible paths
			}
			if fi.IsDir() {
				if ignoreDirs[fi.Name()] && path != absPath {
					return filepath.SkipDir
				}
				return fw.Add(path)
			}
			return nil
		})
	} else {
		// Watch the parent: editors replace files rather than write in place.
		err = fw.Add(filepath.Dir(absPath))
	}
	if err != nil {
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	debounce := make(map[string]time.Time)
	const debounceInterval = 100 * time.Millisecond

	log.Printf("Watching %s (pattern %s)", absPath, pattern)
	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			path := event.Name

			// New directories join the watch list.
			if event.Has(fsnotify.Create) {
				if fi, err := os.Stat(path); err == nil && fi.IsDir() {
					if !ignoreDirs[fi.Name()] {
						fw.Add(path)
					}
					continue
				}
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !info.IsDir() && path != absPath {
				continue // single-file mode: ignore siblings
			}
			if isGenerated(path) {
				continue
			}
			if matched, err := filepath.Match(pattern, filepath.Base(path)); err != nil || !matched {
				continue
			}

			now := time.Now()
			if last, seen := debounce[path]; seen && now.Sub(last) < debounceInterval {
				continue
			}
			debounce[path] = now

			if err := restrip(path); err != nil {
				log.Printf("Skipping %s: %v", path, err)
			}

		case werr, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watch error: %v", werr)

		case <-stop:
			log.Printf("Stopping.")
			return nil
		}
	}
}

// restrip strips path and writes the result to its _nocomments sibling.
func restrip(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	lang, err := resolveLanguage(path)
	if err != nil {
		return err
	}
	cleaned := languages.RemoveComments(string(source), lang)

	out := outputName(path)
	if err := os.WriteFile(out, []byte(cleaned+"\n"), 0644); err != nil {
		return err
	}
	log.Printf("%s -> %s", path, out)
	return nil
}
