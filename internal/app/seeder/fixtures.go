package seeder

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
	"github.com/heartmarshall/eventorias-backend/internal/service/event"
)

// Fixture is one demo event. Image and Attachment are file paths relative
// to the fixtures file.
type Fixture struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"`
	Time        string `yaml:"time"`
	Address     string `yaml:"address"`
	Image       string `yaml:"image"`
	Attachment  string `yaml:"attachment"`
}

type fixtureFile struct {
	Events []Fixture `yaml:"events"`
}

// ParseFixtures decodes an `events:` list. Unknown keys are rejected.
func ParseFixtures(r io.Reader) ([]Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f fixtureFile
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return f.Events, nil
}

// LoadFixtures reads the fixtures file at path.
func LoadFixtures(path string) ([]Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()

	return ParseFixtures(f)
}

// input builds the creation draft, opening referenced files under dir. The
// returned func closes them.
func (f Fixture) input(dir string) (event.CreateEventInput, func(), error) {
	in := event.CreateEventInput{
		Title:       f.Title,
		Description: f.Description,
		Date:        f.Date,
		Time:        f.Time,
		Address:     f.Address,
	}

	var files []*os.File
	closeAll := func() {
		for _, fh := range files {
			fh.Close() //nolint:errcheck
		}
	}

	open := func(rel string) (*domain.File, error) {
		if rel == "" {
			return nil, nil
		}
		path := rel
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, rel)
		}
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		files = append(files, fh)

		ct := mime.TypeByExtension(filepath.Ext(path))
		if ct == "" {
			ct = "application/octet-stream"
		}
		return &domain.File{Name: filepath.Base(path), ContentType: ct, Body: fh}, nil
	}

	var err error
	if in.Image, err = open(f.Image); err != nil {
		closeAll()
		return in, nil, fmt.Errorf("image: %w", err)
	}
	if in.Attachment, err = open(f.Attachment); err != nil {
		closeAll()
		return in, nil, fmt.Errorf("attachment: %w", err)
	}
	return in, closeAll, nil
}
