package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/nao1215/confreport/internal/model"
)

func legacyDiagnostic(name string) model.Diagnostic {
	return model.Diagnostic{
		Kind:          model.DiagnosticDeprecation,
		Project:       ":",
		ProjectName:   "myLib",
		Configuration: name,
		Message:       model.LegacyLegend,
	}
}

// TestDispatch tests that diagnostics become warning records.
func TestDispatch(t *testing.T) {
	t.Parallel()

	t.Run("one warning per diagnostic", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)

		Dispatch(logger, []model.Diagnostic{legacyDiagnostic("a"), legacyDiagnostic("b")})

		output := buf.String()
		if got := strings.Count(output, "level=WARN"); got != 2 {
			t.Errorf("expected 2 warnings, got %d:\n%s", got, output)
		}
		if !strings.Contains(output, "configuration=a") || !strings.Contains(output, "configuration=b") {
			t.Errorf("expected configuration names in output:\n%s", output)
		}
		if !strings.Contains(output, "kind=deprecation") {
			t.Errorf("expected kind attribute in output:\n%s", output)
		}
		if !strings.Contains(output, "Those are variants created for backwards compatibility") {
			t.Errorf("expected legacy message in output:\n%s", output)
		}
	})

	t.Run("no diagnostics logs nothing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		Dispatch(NewLogger(&buf, true), nil)
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})

	t.Run("json logger", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		Dispatch(NewJSONLogger(&buf, false), []model.Diagnostic{legacyDiagnostic("legacyConf")})

		var record map[string]any
		if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
			t.Fatalf("expected a JSON record, got %q: %v", buf.String(), err)
		}
		if record["level"] != "WARN" || record["configuration"] != "legacyConf" {
			t.Errorf("unexpected record %v", record)
		}
	})
}

// TestDedupHandler tests de-duplication of identical warnings.
func TestDedupHandler(t *testing.T) {
	t.Parallel()

	t.Run("identical warnings are emitted once", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)

		d := legacyDiagnostic("legacyConf")
		Dispatch(logger, []model.Diagnostic{d})
		Dispatch(logger, []model.Diagnostic{d})

		if got := strings.Count(buf.String(), "level=WARN"); got != 1 {
			t.Errorf("expected 1 warning, got %d:\n%s", got, buf.String())
		}
	})

	t.Run("different projects are kept apart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)

		a := legacyDiagnostic("legacyConf")
		b := legacyDiagnostic("legacyConf")
		b.Project = ":lib"
		Dispatch(logger, []model.Diagnostic{a, b})

		if got := strings.Count(buf.String(), "level=WARN"); got != 2 {
			t.Errorf("expected 2 warnings, got %d:\n%s", got, buf.String())
		}
	})

	t.Run("root projects with different names are kept apart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)

		app := legacyDiagnostic("default")
		app.ProjectName = "app"
		lib := legacyDiagnostic("default")
		lib.ProjectName = "lib"
		Dispatch(logger, []model.Diagnostic{app})
		Dispatch(logger, []model.Diagnostic{lib})

		output := buf.String()
		if got := strings.Count(output, "level=WARN"); got != 2 {
			t.Errorf("expected 2 warnings, got %d:\n%s", got, output)
		}
		if !strings.Contains(output, "projectName=app") || !strings.Contains(output, "projectName=lib") {
			t.Errorf("expected both project names in output:\n%s", output)
		}
	})

	t.Run("different sources are kept apart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)

		d := legacyDiagnostic("default")
		Dispatch(logger.With("source", "a.yaml"), []model.Diagnostic{d})
		Dispatch(logger.With("source", "b.yaml"), []model.Diagnostic{d})

		if got := strings.Count(buf.String(), "level=WARN"); got != 2 {
			t.Errorf("expected 2 warnings, got %d:\n%s", got, buf.String())
		}
	})

	t.Run("derived handlers share state", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)

		logger.Warn("same")
		logger.With("scope", "x").Warn("same")
		logger.With("scope", "x").Warn("same")

		if got := strings.Count(buf.String(), "level=WARN"); got != 2 {
			t.Errorf("expected 2 warnings, got %d:\n%s", got, buf.String())
		}
	})

	t.Run("info records are not de-duplicated", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, true)

		logger.Info("loaded")
		logger.Info("loaded")

		if got := strings.Count(buf.String(), "level=INFO"); got != 2 {
			t.Errorf("expected 2 info records, got %d:\n%s", got, buf.String())
		}
	})

	t.Run("verbose controls level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)
		logger.Debug("hidden")
		logger.Info("hidden")
		if buf.Len() != 0 {
			t.Errorf("expected debug and info to be filtered, got %q", buf.String())
		}
	})

	t.Run("nil handler falls back to default", func(t *testing.T) {
		t.Parallel()

		h := NewDedupHandler(nil)
		if h.handler == nil {
			t.Error("expected fallback handler")
		}
		if !h.Enabled(t.Context(), slog.LevelError) {
			t.Error("expected default handler to enable errors")
		}
	})
}
