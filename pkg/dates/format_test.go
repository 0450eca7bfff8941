package dates

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/nikogura/portfolio/pkg/i18n"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lang  i18n.Lang
		want  string
	}{
		{name: "english month", input: "2023-08", lang: i18n.English, want: "Aug 2023"},
		{name: "chinese month", input: "2023-08", lang: i18n.TraditionalChinese, want: "2023年8月"},
		{name: "chinese december", input: "2022-12", lang: i18n.TraditionalChinese, want: "2022年12月"},
		{name: "english january", input: "2019-01", lang: i18n.English, want: "Jan 2019"},
		{name: "year only english", input: "2019", lang: i18n.English, want: "2019"},
		{name: "year only chinese", input: "2019", lang: i18n.TraditionalChinese, want: "2019"},
		{name: "day ignored", input: "2023-08-18", lang: i18n.English, want: "Aug 2023"},
		{name: "empty", input: "", lang: i18n.English, want: ""},
		{name: "upper-case tag", input: "2023-08", lang: i18n.Lang("ZH-TW"), want: "2023年8月"},
		{name: "underscore tag", input: "2023-08", lang: i18n.Lang("zh_tw"), want: "2023年8月"},
		{name: "unknown locale uses english", input: "2023-08", lang: i18n.Lang("fr"), want: "Aug 2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDate(tt.input, tt.lang)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFormatDateMalformed(t *testing.T) {
	inputs := []string{"2023-13", "2023-00", "2023-8", "23-08", "2023-ab", "abcd", "2023-08-18-01", "2023/08", "2023-02-30"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := FormatDate(input, i18n.English)
			if err == nil {
				t.Fatalf("Expected error for %q, got nil", input)
			}
			if !stderrors.Is(err, ErrMalformedDate) {
				t.Errorf("Expected ErrMalformedDate, got %v", err)
			}
		})
	}
}

func TestFormatDateRange(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		lang  i18n.Lang
		want  string
	}{
		{name: "ongoing english", start: "2019-06", lang: i18n.English, want: "Jun 2019 - Present"},
		{name: "ongoing chinese", start: "2019-06", lang: i18n.TraditionalChinese, want: "2019年6月 - 至今"},
		{name: "closed english", start: "2019-06", end: "2022-02", lang: i18n.English, want: "Jun 2019 - Feb 2022"},
		{name: "closed chinese", start: "2015-09", end: "2017-06", lang: i18n.TraditionalChinese, want: "2015年9月 - 2017年6月"},
		{name: "years", start: "2011", end: "2015", lang: i18n.English, want: "2011 - 2015"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDateRange(tt.start, tt.end, tt.lang)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}

	_, err := FormatDateRange("2019-06", "2022-14", i18n.English)
	if err == nil {
		t.Error("Expected error for malformed end, got nil")
	}
}

func TestFormatFullDate(t *testing.T) {
	got, err := FormatFullDate("2023-08-18", i18n.English)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, part := range []string{"August", "18", "2023"} {
		if !strings.Contains(got, part) {
			t.Errorf("Expected %q to contain %q", got, part)
		}
	}
	if got != "August 18, 2023" {
		t.Errorf("Expected 'August 18, 2023', got %q", got)
	}

	got, err = FormatFullDate("2022-11-05", i18n.TraditionalChinese)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "2022年11月5日" {
		t.Errorf("Expected '2022年11月5日', got %q", got)
	}

	_, err = FormatFullDate("2023-08", i18n.English)
	if !stderrors.Is(err, ErrMalformedDate) {
		t.Errorf("Expected ErrMalformedDate for month-only input, got %v", err)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  Precision
	}{
		{input: "2019", want: Year},
		{input: "2019-06", want: Month},
		{input: "2023-08-18", want: Day},
	}

	for _, tt := range tests {
		got, err := Classify(tt.input)
		if err != nil {
			t.Fatalf("Unexpected error for %q: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Expected %s for %q, got %s", tt.want, tt.input, got)
		}
	}

	_, err := Classify("")
	if err == nil {
		t.Error("Expected error classifying empty string, got nil")
	}
}

func TestPresent(t *testing.T) {
	if Present(i18n.English) != "Present" {
		t.Errorf("Expected 'Present', got %q", Present(i18n.English))
	}
	if Present(i18n.TraditionalChinese) != "至今" {
		t.Errorf("Expected '至今', got %q", Present(i18n.TraditionalChinese))
	}
	if Present(i18n.Lang("ZH-TW")) != "至今" {
		t.Errorf("Expected '至今' for upper-case tag, got %q", Present(i18n.Lang("ZH-TW")))
	}
	got, err := FormatFullDate("2023-08-18", i18n.Lang("ZH-TW"))
	if err != nil || got != "2023年8月18日" {
		t.Errorf("Expected '2023年8月18日' for upper-case tag, got %q (%v)", got, err)
	}
	if Present(i18n.Lang("de")) != "Present" {
		t.Errorf("Expected fallback 'Present', got %q", Present(i18n.Lang("de")))
	}
}
