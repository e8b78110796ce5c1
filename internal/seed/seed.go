// Package seed loads the reference vocabularies from YAML seed files.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"glass-connect-backend/internal/logger"
	"glass-connect-backend/internal/schema"
	"glass-connect-backend/internal/service"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the seed file shipped with the backend.
const DefaultPath = "config/taxonomy.yaml"

// File is the on-disk layout of a taxonomy seed file
type File struct {
	Options        []OptionData     `yaml:"options"`
	ErcDisciplines []DisciplineData `yaml:"erc_disciplines"`
}

type OptionData struct {
	Group     string `yaml:"group"`
	Code      string `yaml:"code"`
	LabelEn   string `yaml:"label_en"`
	LabelFr   string `yaml:"label_fr"`
	Active    *bool  `yaml:"active,omitempty"`
	SortOrder *int   `yaml:"sort_order,omitempty"`
}

// DisciplineData is an ERC panel. The domain defaults to the code prefix.
type DisciplineData struct {
	Code   string `yaml:"code"`
	Domain string `yaml:"domain,omitempty"`
	Title  string `yaml:"title"`
}

// Importer writes vocabularies to the store
type Importer interface {
	Import(options []schema.LabOfferTaxonomyOption, disciplines []schema.ErcDisciplineOption) (*service.ImportResult, error)
}

// Load reads and parses a seed file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	file, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Parse decodes a seed document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return &file, nil
		}
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &file, nil
}

// Records converts the file into schema records. Options without a sort
// order are ranked by their position within the group.
func (f *File) Records() ([]schema.LabOfferTaxonomyOption, []schema.ErcDisciplineOption) {
	options := make([]schema.LabOfferTaxonomyOption, 0, len(f.Options))
	positions := make(map[string]int)
	for _, o := range f.Options {
		positions[o.Group]++
		opt := schema.NewTaxonomyOption(schema.OptionGroup(o.Group), o.Code, o.LabelEn, o.LabelFr)
		opt.SortOrder = positions[o.Group] * 10
		if o.SortOrder != nil {
			opt.SortOrder = *o.SortOrder
		}
		if o.Active != nil {
			opt.IsActive = *o.Active
		}
		options = append(options, opt)
	}

	disciplines := make([]schema.ErcDisciplineOption, 0, len(f.ErcDisciplines))
	for _, d := range f.ErcDisciplines {
		code := strings.ToUpper(strings.TrimSpace(d.Code))
		domain := schema.ErcDomain(strings.ToUpper(strings.TrimSpace(d.Domain)))
		if domain == "" {
			domain, _ = schema.ErcDomainOf(code)
		}
		disciplines = append(disciplines, schema.ErcDisciplineOption{Code: code, Domain: domain, Title: d.Title})
	}
	return options, disciplines
}

// Run loads the seed file at path and imports it. Nothing is written when
// any record is invalid.
func Run(path string, importer Importer) (*service.ImportResult, error) {
	file, err := Load(path)
	if err != nil {
		return nil, err
	}
	options, disciplines := file.Records()

	result, err := importer.Import(options, disciplines)
	if err != nil {
		return nil, err
	}
	logger.New().WithFields(map[string]interface{}{
		"path":        path,
		"options":     result.Options,
		"disciplines": result.Disciplines,
	}).Info("Seed file loaded")
	return result, nil
}
