package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nao1215/confreport/internal/model"
)

const testSnapshot = `project:
  path: ":"
  name: myLib
configurations:
  - name: someConf
    resolvable: true
  - name: legacyConf
    resolvable: true
    consumable: true
`

// discardLogger returns a logger that drops every record.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeSnapshot writes a snapshot file in a temporary directory.
func writeSnapshot(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}
	return path
}

// recordStep records its name into a shared slice.
type recordStep struct {
	name string
	log  *[]string
	err  error
}

func (s *recordStep) Name() string { return s.name }

func (s *recordStep) Do(_ context.Context, _ *Job) error {
	*s.log = append(*s.log, s.name)
	return s.err
}

func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("runs steps in order", func(t *testing.T) {
		t.Parallel()

		var order []string
		p := New(WithLogger(discardLogger()))
		p.AddStep(&recordStep{name: "a", log: &order})
		p.AddSteps(&recordStep{name: "b", log: &order}, &recordStep{name: "c", log: &order})

		job := NewJob("x")
		if err := p.Execute(t.Context(), job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"a", "b", "c"}
		if diff := cmp.Diff(want, order); diff != "" {
			t.Errorf("order mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(want, job.PerformedSteps); diff != "" {
			t.Errorf("performed steps mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(want, p.StepNames()); diff != "" {
			t.Errorf("step names mismatch (-want +got):\n%s", diff)
		}
		if p.StepCount() != 3 {
			t.Errorf("expected 3 steps, got %d", p.StepCount())
		}
	})

	t.Run("stops at first error", func(t *testing.T) {
		t.Parallel()

		errBoom := errors.New("boom")
		var order []string
		p := New(WithLogger(discardLogger()))
		p.AddSteps(
			&recordStep{name: "a", log: &order},
			&recordStep{name: "b", log: &order, err: errBoom},
			&recordStep{name: "c", log: &order},
		)

		job := NewJob("x")
		err := p.Execute(t.Context(), job)
		if !errors.Is(err, errBoom) {
			t.Fatalf("expected errBoom, got %v", err)
		}
		if !errors.Is(job.Err, errBoom) {
			t.Errorf("expected job.Err to be errBoom, got %v", job.Err)
		}
		if diff := cmp.Diff([]string{"a"}, job.PerformedSteps); diff != "" {
			t.Errorf("performed steps mismatch (-want +got):\n%s", diff)
		}
		if len(order) != 2 {
			t.Errorf("expected step c to be skipped, ran %v", order)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		var order []string
		p := New(WithLogger(discardLogger()))
		p.AddStep(&recordStep{name: "a", log: &order})

		job := NewJob("x")
		if err := p.Execute(ctx, job); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if len(order) != 0 {
			t.Errorf("expected no steps to run, ran %v", order)
		}
	})
}

func TestDefaultPipeline(t *testing.T) {
	t.Parallel()

	t.Run("builds report from file", func(t *testing.T) {
		t.Parallel()

		p := DefaultPipeline(discardLogger(), nil)
		if diff := cmp.Diff([]string{StepLoad, StepOptions, StepBuild}, p.StepNames()); diff != "" {
			t.Errorf("step names mismatch (-want +got):\n%s", diff)
		}

		job := NewJob(writeSnapshot(t, "snapshot.yaml", testSnapshot))
		if err := p.Execute(t.Context(), job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Report == nil {
			t.Fatal("expected report")
		}
		if len(job.Report.Sections) != 1 || job.Report.Sections[0].Name != "someConf" {
			t.Errorf("unexpected sections %+v", job.Report.Sections)
		}
	})

	t.Run("resolver controls options", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		resolve := func(path string) model.Options {
			gotPath = path
			return model.Options{IncludeAll: true}
		}

		job := NewJob(writeSnapshot(t, "snapshot.yaml", testSnapshot))
		if err := DefaultPipeline(discardLogger(), resolve).Execute(t.Context(), job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPath != ":" {
			t.Errorf("expected resolver to receive project path, got %q", gotPath)
		}
		if len(job.Report.Sections) != 2 {
			t.Errorf("expected legacy configuration to be included, got %+v", job.Report.Sections)
		}
		if len(job.Report.Diagnostics) != 1 {
			t.Errorf("expected one diagnostic, got %+v", job.Report.Diagnostics)
		}
	})

	t.Run("reads stdin source", func(t *testing.T) {
		t.Parallel()

		p := DefaultPipeline(discardLogger(), nil, WithStdin(strings.NewReader(testSnapshot)))
		job := NewJob("-")
		if err := p.Execute(t.Context(), job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Snapshot.Project.Name != "myLib" {
			t.Errorf("expected myLib, got %q", job.Snapshot.Project.Name)
		}
	})

	t.Run("load failure leaves no report", func(t *testing.T) {
		t.Parallel()

		job := NewJob(filepath.Join(t.TempDir(), "missing.yaml"))
		if err := DefaultPipeline(discardLogger(), nil).Execute(t.Context(), job); err == nil {
			t.Fatal("expected error")
		}
		if job.Report != nil {
			t.Error("expected no report")
		}
	})
}

func TestStepsWithoutSnapshot(t *testing.T) {
	t.Parallel()

	for _, step := range []Step{NewOptionsStep(nil), NewBuildStep()} {
		t.Run(step.Name(), func(t *testing.T) {
			t.Parallel()

			if err := step.Do(t.Context(), NewJob("x")); !errors.Is(err, errNoSnapshot) {
				t.Errorf("expected errNoSnapshot, got %v", err)
			}
		})
	}
}
