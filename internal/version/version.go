package version

import (
	"fmt"
	"time"
)

// Метаданные сборки. В релизных бинарях заполняются через -ldflags,
// при локальном go run остаются пустыми.
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildCI     string
)

// Нумерация сборок: номер - число дней от старта проекта до BuildDate.
// Монотонно растет без отдельного счетчика в CI.
var projectEpoch = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

// Info - метаданные сборки для ручки /version
type Info struct {
	Build   int    `json:"build,omitempty"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
	CI      string `json:"ci,omitempty"`
	Stamped bool   `json:"stamped"`
}

// BuildNumber вычисляет номер сборки из BuildDate.
// Ошибка означает нештампованный или испорченный бинарь.
func BuildNumber() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("binary is not stamped")
	}

	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}
	if t.Before(projectEpoch) {
		return 0, fmt.Errorf("BuildDate %s predates the project", BuildDate)
	}

	// Деление часов, а не вычитание дат: обе точки в UTC, DST не мешает
	return int(t.Sub(projectEpoch).Hours() / 24), nil
}

// Current собирает метаданные сборки. Безопасен в любой момент:
// нештампованный бинарь дает Stamped=false, а не ошибку.
func Current() Info {
	n, err := BuildNumber()
	if err != nil {
		return Info{Commit: BuildCommit, CI: BuildCI}
	}
	return Info{
		Build:   n,
		Date:    BuildDate,
		Commit:  BuildCommit,
		CI:      BuildCI,
		Stamped: true,
	}
}

// String - однострочный баннер для лога старта
func String() string {
	info := Current()
	if !info.Stamped {
		return "sigsnakes dev build (unstamped)"
	}

	commit := info.Commit
	if commit == "" {
		commit = "unknown"
	}
	ci := info.CI
	if ci == "" {
		ci = "local"
	}
	return fmt.Sprintf("sigsnakes build %d (%s) commit[%s] ci[%s]", info.Build, info.Date, commit, ci)
}
