package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTranspileFilesWritesSwiftToStdoutByDefault(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "MyView.h")
	if err := os.WriteFile(input, []byte("@interface MyView : UIView\n@end\n"), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	transpileOutputFile = ""
	transpileVerbose = false
	configFile = ""
	defer func() { transpileOutputFile, transpileVerbose, configFile = "", false, "" }()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	err := transpileFiles(nil, []string{input})
	w.Close()
	os.Stdout = old
	if err != nil {
		t.Fatalf("transpileFiles: %v", err)
	}

	buf := make([]byte, 4096)
	n, _ := r.Read(buf)
	out := string(buf[:n])
	if !strings.Contains(out, "class MyView: UIView") {
		t.Fatalf("missing class declaration in output:\n%s", out)
	}
}

func TestTranspileFilesReportsFailureForMalformedInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "bad.h")
	if err := os.WriteFile(input, []byte("@interface"), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	transpileOutputFile = ""
	transpileVerbose = false
	configFile = ""
	defer func() { transpileOutputFile, transpileVerbose, configFile = "", false, "" }()

	if err := transpileFiles(nil, []string{input}); err == nil {
		t.Fatalf("expected an error for malformed input")
	}
}

func TestSwiftOutputNameReplacesExtension(t *testing.T) {
	if got, want := swiftOutputName("MyView.h"), "MyView.swift"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if got, want := swiftOutputName("NoExt"), "NoExt.swift"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
