package utils

import (
	"fmt"
	"html/template"
	"io/fs"
)

// LoadTemplates parses every *.html file under dir in fsys.
func LoadTemplates(fsys fs.FS, dir string) (*template.Template, error) {
	pattern := dir + "/*.html"

	files, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to glob templates: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found in %s", dir)
	}

	root := template.New("").Funcs(GetTemplateFuncs())
	if _, err := root.ParseFS(fsys, pattern); err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return root, nil
}
