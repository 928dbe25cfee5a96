package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDescribeTypeWithQueryPrintsResult(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "MyView.h")
	src := `
@interface MyView : UIView
@property (nonatomic, strong) NSString *title;
@end
`
	if err := os.WriteFile(input, []byte(src), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	describeQuery = `#(name=="MyView").superName`
	defer func() { describeQuery = "" }()

	if err := describeType(nil, []string{input}); err != nil {
		t.Fatalf("describeType: %v", err)
	}
}

func TestDescribeTypeAcceptsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "empty.h")
	if err := os.WriteFile(input, []byte(""), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	describeQuery = ""
	if err := describeType(nil, []string{input}); err != nil {
		t.Fatalf("describeType on empty file should not error: %v", err)
	}
}
