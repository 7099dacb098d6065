package version

import (
	"fmt"
	"time"
)

// Заполняются через -ldflags "-X github.com/RemiF1908/pcd/internal/version.Version=..."
var (
	Version     = "dev"
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// buildEpoch - день первого релиза, номер сборки считается от него
var buildEpoch = time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC)

// BuildInfo - метаданные сборки
type BuildInfo struct {
	Version    string `json:"version"`
	BuildID    int    `json:"buildId"`
	BuildDate  string `json:"buildDate,omitempty"`
	Commit     string `json:"commit,omitempty"`
	Branch     string `json:"branch,omitempty"`
	Calculated bool   `json:"calculated"`
	Error      string `json:"error,omitempty"`
}

// BuildID возвращает номер сборки: дни от эпохи до BuildDate
func BuildID(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("build date is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("build date %s is before epoch", date)
	}

	// Обе даты в UTC, поэтому сутки всегда 24 часа
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

func Info() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
	}

	id, err := BuildID(BuildDate)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.BuildID = id
	info.Calculated = true
	return info
}

// String - строка для логов и команды version
func String() string {
	info := Info()
	if !info.Calculated {
		return fmt.Sprintf("dungeond %s (build unknown)", info.Version)
	}
	return fmt.Sprintf("dungeond %s build %d (%s) commit[%s] branch[%s]",
		info.Version,
		info.BuildID,
		info.BuildDate,
		coalesce(info.Commit, "unknown"),
		coalesce(info.Branch, "unknown"),
	)
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
