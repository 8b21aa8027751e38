package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStruct(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		input    any
		errMatch string
	}{
		{"imaan in range", ImaanInput{Level: 10}, ""},
		{"imaan too high", ImaanInput{Level: 11}, "level must be at most 10"},
		{"imaan negative", ImaanInput{Level: -1}, "level must be at least 0"},
		{"quran ok", QuranInput{Pages: 0, Minutes: 30}, ""},
		{"quran negative pages", QuranInput{Pages: -2}, "pages must be at least 0"},
		{"dhikr ok", DhikrInput{Times: 33}, ""},
		{"dhikr zero", DhikrInput{Times: 0}, "times must be at least 1"},
		{"prayer ok", PrayerInput{Name: "Maghrib"}, ""},
		{"prayer unknown", PrayerInput{Name: "Witr"}, "name must be one of Fajr"},
		{"deed ok", DeedInput{Description: "called my parents"}, ""},
		{"deed empty", DeedInput{}, "description is required"},
		{"donation ok", DonationInput{Amount: 5.5, Description: "food bank"}, ""},
		{"donation zero", DonationInput{Amount: 0, Description: "x"}, "amount must be greater than 0"},
		{"donation negative", DonationInput{Amount: -3, Description: "x"}, "amount must be greater than 0"},
		{"donation infinite", DonationInput{Amount: math.Inf(1), Description: "x"}, "amount must be a finite number"},
		{"donation negative infinite", DonationInput{Amount: math.Inf(-1), Description: "x"}, "amount must be a finite number"},
		{"donation nan", DonationInput{Amount: math.NaN(), Description: "x"}, "amount must be a finite number"},
		{"note ok", NoteInput{Title: "t", Content: "c", Tags: []string{"a"}}, ""},
		{"note blank tag", NoteInput{Title: "t", Content: "c", Tags: []string{""}}, "is required"},
		{"note missing content", NoteInput{Title: "t"}, "content is required"},
		{"goal ok", GoalInput{Title: "Read", Category: "quran", Target: 30, Deadline: "2026-04-01"}, ""},
		{"goal bad category", GoalInput{Title: "Read", Category: "sport", Target: 1, Deadline: "2026-04-01"}, "category must be one of prayer"},
		{"goal zero target", GoalInput{Title: "Read", Category: "quran", Target: 0, Deadline: "2026-04-01"}, "target must be greater than 0"},
		{"goal bad deadline", GoalInput{Title: "Read", Category: "quran", Target: 1, Deadline: "04/01/2026"}, "YYYY-MM-DD"},
		{"progress negative", ProgressInput{Current: -1}, "current must be at least 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.errMatch == "" {
				if err != nil {
					t.Errorf("Struct() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errMatch) {
				t.Errorf("Struct() error = %v, want containing %q", err, tt.errMatch)
			}
		})
	}
}

func TestStruct_MultipleFailures(t *testing.T) {
	err := New().Struct(GoalInput{})
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"title is required", "category is required", "deadline is required"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestParseInt(t *testing.T) {
	if n, err := ParseInt(" 42 "); err != nil || n != 42 {
		t.Errorf("ParseInt(42) = %d, %v", n, err)
	}
	if _, err := ParseInt("4.5"); err == nil {
		t.Error("ParseInt(4.5) should fail")
	}
	if _, err := ParseInt("abc"); err == nil {
		t.Error("ParseInt(abc) should fail")
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"12.75", 12.75, false},
		{" 3 ", 3, false},
		{"ten", 0, true},
		{"inf", 0, true},
		{"-inf", 0, true},
		{"+Infinity", 0, true},
		{"nan", 0, true},
		{"NaN", 0, true},
		{"1e400", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAmount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTags(t *testing.T) {
	got := ParseTags(" quran, dua,,quran , ")
	if diff := cmp.Diff([]string{"quran", "dua"}, got); diff != "" {
		t.Errorf("ParseTags() mismatch (-want +got):\n%s", diff)
	}
	if got := ParseTags(""); got == nil || len(got) != 0 {
		t.Errorf("ParseTags(\"\") = %#v, want empty non-nil", got)
	}
}

func TestNormalizePrayerName(t *testing.T) {
	tests := map[string]string{
		"fajr":    "Fajr",
		" ISHA ":  "Isha",
		"Maghrib": "Maghrib",
		"duha":    "duha",
	}
	for in, want := range tests {
		if got := NormalizePrayerName(in); got != want {
			t.Errorf("NormalizePrayerName(%q) = %q, want %q", in, got, want)
		}
	}
}
