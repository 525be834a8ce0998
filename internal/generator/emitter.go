package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type Status string

const (
	StatusWritten   Status = "written"
	StatusFailed    Status = "failed"
	StatusAppended  Status = "appended"
	StatusDuplicate Status = "duplicate"
	StatusSkipped   Status = "skipped"
)

// Artifact is one rendered file waiting to be written. Path is relative to the
// project base path.
type Artifact struct {
	Name    string
	Stub    string
	Path    string
	Content string
}

type ArtifactResult struct {
	Name   string `json:"name" yaml:"name"`
	Path   string `json:"path" yaml:"path"`
	Status Status `json:"status" yaml:"status"`
	Err    error  `json:"-" yaml:"-"`
}

// plannedArtifacts lists the files produced for one model, in write order.
func plannedArtifacts(n Names) []Artifact {
	return []Artifact{
		{Name: "model", Stub: StubModel, Path: filepath.Join("app", "Models", n.Model+".php")},
		{Name: "controller", Stub: StubController, Path: filepath.Join("app", "Http", "Controllers", "Api", n.Controller+".php")},
		{Name: "create request", Stub: StubRequestCreate, Path: filepath.Join("app", "Http", "Requests", "Api", n.CreateRequest+".php")},
		{Name: "update request", Stub: StubRequestUpdate, Path: filepath.Join("app", "Http", "Requests", "Api", n.UpdateRequest+".php")},
		{Name: "seeder", Stub: StubSeeder, Path: filepath.Join("database", "seeders", n.Seeder+".php")},
	}
}

// RenderArtifacts loads and renders every stub. Nothing is returned unless all
// of them render.
func RenderArtifacts(loader StubLoader, params TemplateParams, n Names) ([]Artifact, error) {
	artifacts := plannedArtifacts(n)
	for i := range artifacts {
		tmpl, err := loader.Load(artifacts[i].Stub)
		if err != nil {
			return nil, err
		}
		content, err := Render(tmpl, params)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s stub: %w", artifacts[i].Stub, err)
		}
		artifacts[i].Content = content
	}
	return artifacts, nil
}

// WriteArtifacts attempts every write and reports each one. Files written
// before a failure stay on disk.
func WriteArtifacts(basePath string, artifacts []Artifact) ([]ArtifactResult, error) {
	results := make([]ArtifactResult, 0, len(artifacts))
	var errs []error

	for _, a := range artifacts {
		full := filepath.Join(basePath, a.Path)
		res := ArtifactResult{Name: a.Name, Path: a.Path, Status: StatusWritten}

		if err := writeFile(full, a.Content); err != nil {
			res.Status = StatusFailed
			res.Err = err
			errs = append(errs, err)
		}
		results = append(results, res)
	}

	return results, errors.Join(errs...)
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPathUnwritable, path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPathUnwritable, path, err)
	}
	return nil
}
