package cmd

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rechati/stripcomments/cmd/languages"
)

// configFile mirrors the YAML layout:
//
//	languages:
//	  - name: Shell
//	    extensions: [".sh", ".bash"]
//	    single_line: '[ \t]*#.*'
//	extensions:
//	  ".zig": "C/C++/Java/C#/JavaScript/Rust"
//
// Block patterns that should span lines need an explicit (?s) prefix.
type configFile struct {
	Languages  []configLanguage  `yaml:"languages"`
	Extensions map[string]string `yaml:"extensions"`
}

type configLanguage struct {
	Name       string   `yaml:"name"`
	Extensions []string `yaml:"extensions"`
	SingleLine string   `yaml:"single_line"`
	Block      string   `yaml:"block"`
}

// loadConfig reads path and registers its extra languages and extension
// overrides on top of the built-in registry. Languages register first so
// an extension override may target a language defined in the same file.
func loadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	for _, cl := range cfg.Languages {
		lang, err := cl.compile()
		if err != nil {
			return fmt.Errorf("config language %q: %w", cl.Name, err)
		}
		languages.Register(lang)
	}
	for ext, name := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if err := languages.MapExtension(ext, name); err != nil {
			return fmt.Errorf("config extension %s: %w", ext, err)
		}
	}
	return nil
}

// compile validates a config entry and turns it into a Language profile.
func (cl configLanguage) compile() (languages.Language, error) {
	if cl.Name == "" {
		return languages.Language{}, fmt.Errorf("missing name")
	}
	if cl.SingleLine == "" && cl.Block == "" {
		return languages.Language{}, fmt.Errorf("needs a single_line or block pattern")
	}

	lang := languages.Language{Name: cl.Name, Extensions: cl.Extensions}
	if cl.SingleLine != "" {
		re, err := regexp.Compile(cl.SingleLine)
		if err != nil {
			return languages.Language{}, fmt.Errorf("single_line pattern: %w", err)
		}
		lang.SingleLine = re
	}
	if cl.Block != "" {
		re, err := regexp.Compile(cl.Block)
		if err != nil {
			return languages.Language{}, fmt.Errorf("block pattern: %w", err)
		}
		lang.Block = re
	}
	return lang, nil
}
