// Command docgen generates the API reference of the public packages with
// gomarkdoc and writes one Markdown page per package with YAML front matter.
//
//	go run ./cmd/docgen [-out docs/api]
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Package is a package to document.
type Package struct {
	Name  string
	Title string
	Path  string
}

// Packages to document, in sidebar order.
var packages = []Package{
	{Name: "core", Title: "Core", Path: "pkg/core"},
	{Name: "views", Title: "Views", Path: "pkg/views"},
	{Name: "app", Title: "App", Path: "pkg/app"},
	{Name: "layout", Title: "Layout", Path: "pkg/layout"},
	{Name: "platform", Title: "Platform", Path: "pkg/platform"},
	{Name: "headless", Title: "Headless Backend", Path: "pkg/headless"},
	{Name: "animation", Title: "Animation", Path: "pkg/animation"},
	{Name: "graphics", Title: "Graphics", Path: "pkg/graphics"},
	{Name: "config", Title: "Configuration", Path: "pkg/config"},
	{Name: "errors", Title: "Errors", Path: "pkg/errors"},
}

// frontMatter is the page header read by the documentation site.
type frontMatter struct {
	ID              string `yaml:"id"`
	Title           string `yaml:"title"`
	SidebarPosition int    `yaml:"sidebar_position"`
}

func main() {
	out := flag.String("out", filepath.Join("docs", "api"), "output directory, relative to the module root")
	flag.Parse()

	if err := run(*out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(out string) error {
	root, err := findRepoRoot()
	if err != nil {
		return err
	}
	if _, err := exec.LookPath("gomarkdoc"); err != nil {
		return fmt.Errorf("gomarkdoc not found; install it with go install github.com/princjef/gomarkdoc/cmd/gomarkdoc@latest")
	}

	dir := filepath.Join(root, out)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i, pkg := range packages {
		if _, err := os.Stat(filepath.Join(root, pkg.Path)); os.IsNotExist(err) {
			fmt.Printf("Skipping %s (not found)\n", pkg.Name)
			continue
		}
		fmt.Printf("Generating docs for %s...\n", pkg.Name)
		markdown, err := gomarkdoc(root, pkg)
		if err != nil {
			return fmt.Errorf("%s: %w", pkg.Name, err)
		}
		page, err := renderPage(pkg, i+1, markdown)
		if err != nil {
			return fmt.Errorf("%s: %w", pkg.Name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, pkg.Name+".md"), page, 0o644); err != nil {
			return err
		}
	}
	fmt.Printf("Documentation written to %s\n", dir)
	return nil
}

func findRepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod in any parent directory")
		}
		dir = parent
	}
}

func gomarkdoc(root string, pkg Package) (string, error) {
	cmd := exec.Command("gomarkdoc", "./"+pkg.Path)
	cmd.Dir = root
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("gomarkdoc: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// renderPage prefixes the cleaned gomarkdoc output with front matter.
func renderPage(pkg Package, position int, markdown string) ([]byte, error) {
	header, err := yaml.Marshal(frontMatter{ID: pkg.Name, Title: pkg.Title, SidebarPosition: position})
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(cleanMarkdown(markdown))
	return b.Bytes(), nil
}

// cleanMarkdown drops the parts of gomarkdoc output the site renders
// itself: the title, the index and the import block. Collapsible example
// blocks become bold headings.
func cleanMarkdown(content string) string {
	lines := strings.Split(content, "\n")
	var out []string
	inIndex, inImport := false, false

	for i, line := range lines {
		if i == 0 && strings.HasPrefix(line, "# ") {
			continue
		}

		if line == "## Index" {
			inIndex = true
			continue
		}
		if inIndex {
			if !strings.HasPrefix(line, "## ") {
				continue
			}
			inIndex = false
		}

		if strings.HasPrefix(line, "```go") && i+1 < len(lines) && strings.HasPrefix(lines[i+1], "import ") {
			inImport = true
		}
		if inImport {
			if line == "```" {
				inImport = false
			}
			continue
		}

		if summary, ok := strings.CutPrefix(line, "<details><summary>"); ok && strings.HasSuffix(summary, "</summary>") {
			out = append(out, "", "**"+strings.TrimSuffix(summary, "</summary>")+":**", "")
			continue
		}
		switch line {
		case "</details>", "<p>", "</p>":
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
