package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores the package-level flag variables after a test, since
// the command flags bind to shared vars.
func resetFlags(t *testing.T) {
	t.Cleanup(func() {
		langFlag = ""
		outFlag = ""
		copyFlag = false
		dirFlag = ""
		filePattern = "*"
		writeFlag = false
	})
}

// TestOutputName checks the _nocomments sibling naming, including files
// without an extension.
func TestOutputName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"foo.py", "foo_nocomments.py"},
		{"src/app.test.js", "src/app.test_nocomments.js"},
		{"noext", "noext_nocomments"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, outputName(tc.input))
	}
}

// TestIsGenerated makes sure our own outputs are recognized and everything
// else is not.
func TestIsGenerated(t *testing.T) {
	assert.True(t, isGenerated("foo_nocomments.py"))
	assert.True(t, isGenerated("dir/noext_nocomments"))
	assert.False(t, isGenerated("foo.py"))
	assert.False(t, isGenerated("nocomments.py"))
}

// TestCollectFiles verifies pattern matching over a tree and that generated
// outputs are excluded from the batch.
func TestCollectFiles(t *testing.T) {
	tempDir := t.TempDir()
	for _, name := range []string{"a.py", "a_nocomments.py", "b.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, name), []byte("x = 1\n"), 0644))
	}
	subDir := filepath.Join(tempDir, "sub")
	require.NoError(t, os.Mkdir(subDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(subDir, "c.py"), []byte("y = 2\n"), 0644))

	files, err := collectFiles(tempDir, "*.py")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(tempDir, "a.py"),
		filepath.Join(subDir, "c.py"),
	}, files)
}

// TestResolveLanguage covers the flag override, the unknown-flag error and
// the extension fallback.
func TestResolveLanguage(t *testing.T) {
	resetFlags(t)

	lang, err := resolveLanguage("main.rs")
	require.NoError(t, err)
	assert.Equal(t, "C/C++/Java/C#/JavaScript/Rust", lang)

	langFlag = "Lua"
	lang, err = resolveLanguage("main.rs")
	require.NoError(t, err)
	assert.Equal(t, "Lua", lang)

	langFlag = "Klingon"
	_, err = resolveLanguage("main.rs")
	assert.Error(t, err)
}

// TestStripOneWritesOutput runs the single-file path end-to-end with -o.
func TestStripOneWritesOutput(t *testing.T) {
	resetFlags(t)
	tempDir := t.TempDir()

	input := filepath.Join(tempDir, "main.c")
	source := "int x = 1; // comment\n/* block\nspanning lines */\nint y = 2;\n"
	require.NoError(t, os.WriteFile(input, []byte(source), 0644))

	outFlag = filepath.Join(tempDir, "main_clean.c")
	require.NoError(t, stripOne(input))

	cleaned, err := os.ReadFile(outFlag)
	require.NoError(t, err)
	assert.Equal(t, "int x = 1;\n\nint y = 2;\n", string(cleaned))
}

// TestStripOneMissingFile: unreadable input is an error, so the CLI exits
// non-zero.
func TestStripOneMissingFile(t *testing.T) {
	resetFlags(t)
	assert.Error(t, stripOne(filepath.Join(t.TempDir(), "missing.py")))
}

// TestStripTreeWrite runs batch mode with --write over a small tree.
func TestStripTreeWrite(t *testing.T) {
	resetFlags(t)
	tempDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "app.py"),
		[]byte("x = 1  # set x\n\n\n\ndef f():\n    pass  # noop\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "notes.txt"),
		[]byte("# not stripped\n"), 0644))

	writeFlag = true
	require.NoError(t, stripTree(tempDir, "*.py"))

	cleaned, err := os.ReadFile(filepath.Join(tempDir, "app_nocomments.py"))
	require.NoError(t, err)
	assert.Equal(t, "x = 1\n\ndef f():\n    pass\n", string(cleaned))

	// The .txt file did not match the pattern.
	_, err = os.Stat(filepath.Join(tempDir, "notes_nocomments.txt"))
	assert.True(t, os.IsNotExist(err))
}
