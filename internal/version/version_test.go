package version

import (
	"strings"
	"testing"
)

func TestBuildNumber(t *testing.T) {
	cases := []struct {
		name    string
		date    string
		want    int
		wantErr bool
	}{
		{"день эпохи", "2025-06-01", 0, false},
		{"следующий день", "2025-06-02", 1, false},
		{"через месяц", "2025-07-01", 30, false},
		{"пустая дата", "", 0, true},
		{"мусор вместо даты", "not-a-date", 0, true},
		{"до старта проекта", "2025-05-31", 0, true},
	}

	orig := BuildDate
	defer func() { BuildDate = orig }()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			BuildDate = tc.date
			got, err := BuildNumber()
			if tc.wantErr {
				if err == nil {
					t.Fatalf("BuildNumber() with date %q: expected error, got %d", tc.date, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildNumber() with date %q failed: %v", tc.date, err)
			}
			if got != tc.want {
				t.Errorf("BuildNumber() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCurrent_Unstamped(t *testing.T) {
	orig := BuildDate
	defer func() { BuildDate = orig }()

	BuildDate = ""
	if info := Current(); info.Stamped {
		t.Error("unstamped binary must report Stamped=false")
	}
	if s := String(); !strings.Contains(s, "unstamped") {
		t.Errorf("String() = %q, want unstamped marker", s)
	}

	BuildDate = "2025-06-02"
	info := Current()
	if !info.Stamped || info.Build != 1 {
		t.Errorf("Current() = %+v, want stamped build 1", info)
	}
	s := String()
	if !strings.Contains(s, "build 1") || !strings.Contains(s, "ci[local]") {
		t.Errorf("String() = %q", s)
	}
}
