package fundtrend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/fundtrend/date"
	"github.com/google/go-cmp/cmp"
)

// cmpOpts compares values with unexported fields by their meaning.
var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b Money) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
}

// fundHeader is the column header of fund sections in the brokerage export.
const fundHeader = `"ファンド名","買付日","数量","取得単価","現在値","前日比","評価額","損益","損益（％）"`

// writeFiles creates files in a new temporary directory and returns its path.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

// mustRead returns the decoded content of a file.
func mustRead(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	content, err := Decode(data)
	if err != nil {
		t.Fatalf("failed to decode %s: %v", name, err)
	}
	return content
}
