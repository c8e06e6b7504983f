package fundtrend

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	content := "ポートフォリオ一覧\r\n" +
		"\r\n" +
		"\"投資信託（金額/特定預り）\"\r\n" +
		fundHeader + "\r\n" +
		"\"Fund A\",\"--\",\"1\",\"1\",\"1\",\"0\",\"1,000\",\"0\",\"0\"\r\n" +
		",,,,\r\n" +
		"\"投資信託（金額/NISA預り（成長投資枠））\"\r\n" +
		fundHeader + "\r\n" +
		"\"Fund B\",\"--\",\"1\",\"1\",\"1\",\"0\",\"2,000\",\"0\",\"0\"\r\n" +
		"\"投資信託（金額/NISA預り（つみたて投資枠））\"\r\n" +
		fundHeader + "\r\n" +
		"\r\n" +
		"\"投資信託（金額/特定預り）合計\"\r\n" +
		"\"評価額\"\r\n" +
		"\"3,000\"\r\n"

	sections := DefaultProfile().Split(content)

	var titles []string
	for _, s := range sections {
		titles = append(titles, s.Title)
	}
	want := []string{
		"投資信託（金額/特定預り）",
		"投資信託（金額/NISA預り（成長投資枠））",
		"投資信託（金額/NISA預り（つみたて投資枠））",
	}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Fatalf("Split() titles mismatch (-want +got):\n%s", diff)
	}

	if got := len(sections[0].Rows); got != 1 {
		t.Errorf("first section has %d rows, want 1", got)
	}
	if got := sections[0].Rows[0].Fields[6]; got != "1,000" {
		t.Errorf("quoted value = %q, want \"1,000\"", got)
	}
	if got := sections[0].Rows[0].Line; got != 5 {
		t.Errorf("first row line = %d, want 5", got)
	}
	if got := len(sections[1].Rows); got != 1 {
		t.Errorf("second section has %d rows, want 1", got)
	}
	if got := len(sections[2].Rows); got != 0 {
		t.Errorf("third section has %d rows, want 0", got)
	}
}

// mmfAfterFund is a fund section directly followed by a foreign currency MMF section,
// without any blank line in between.
const mmfAfterFund = "\"投資信託（金額/特定預り）\"\n" +
	fundHeader + "\n" +
	"\"Fund A\",\"--\",\"1\",\"1\",\"1\",\"0\",\"1,000\",\"0\",\"0\"\n" +
	"\"外貨建MMF（特定預り）\"\n" +
	"\"銘柄\",\"数量\",\"前日比\",\"評価額\"\n" +
	"\"USD MMF\",\"5,000\",\"0\",\"5,000\"\n"

func TestSplitUnknownTitleStartsSection(t *testing.T) {
	sections := DefaultProfile().Split(mmfAfterFund)

	var titles []string
	for _, s := range sections {
		titles = append(titles, s.Title)
	}
	want := []string{"投資信託（金額/特定預り）", "外貨建MMF（特定預り）"}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Fatalf("Split() titles mismatch (-want +got):\n%s", diff)
	}
	if got := len(sections[0].Rows); got != 1 {
		t.Errorf("fund section has %d rows, want 1", got)
	}
	if got := sections[1].Rows[0].Fields[0]; got != "USD MMF" {
		t.Errorf("MMF section first row = %q, want \"USD MMF\"", got)
	}
}

func TestSplitEmpty(t *testing.T) {
	for _, content := range []string{"", "\n\n\n", "ポートフォリオ一覧\n", "\"総合計\"\n\"評価額合計\"\n\"1,000\"\n"} {
		if got := DefaultProfile().Split(content); len(got) != 0 {
			t.Errorf("Split(%q) = %v, want no section", content, got)
		}
	}
}

func TestSplitLine(t *testing.T) {
	fields, ok := splitLine(`"a, b", c ,"1,234"`)
	if !ok {
		t.Fatalf("splitLine() failed")
	}
	if diff := cmp.Diff([]string{"a, b", "c", "1,234"}, fields); diff != "" {
		t.Errorf("splitLine() mismatch (-want +got):\n%s", diff)
	}
}
