package repository

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"tourquote/internal/domain"
	apperrors "tourquote/internal/errors"
)

// YAMLSpecialServiceRepository serves the fixed-surcharge add-on table from a
// YAML data file, so adding a toggle is a data change rather than a code change.
type YAMLSpecialServiceRepository struct {
	services []domain.SpecialService
	byTag    map[string]domain.SpecialService
}

func NewYAMLSpecialServiceRepository(path string) (*YAMLSpecialServiceRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading special services file: %w", err)
	}

	var doc struct {
		Services []domain.SpecialService `yaml:"services"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing special services file: %w", err)
	}

	byTag := make(map[string]domain.SpecialService, len(doc.Services))
	for _, svc := range doc.Services {
		if svc.Tag == "" {
			return nil, fmt.Errorf("special service entry without tag")
		}
		if _, exists := byTag[svc.Tag]; exists {
			return nil, fmt.Errorf("duplicate special service tag %q", svc.Tag)
		}
		byTag[svc.Tag] = svc
	}

	return &YAMLSpecialServiceRepository{
		services: doc.Services,
		byTag:    byTag,
	}, nil
}

func (r *YAMLSpecialServiceRepository) FindByTag(tag string) (*domain.SpecialService, error) {
	svc, ok := r.byTag[tag]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("special service %q not found", tag))
	}
	return &svc, nil
}

func (r *YAMLSpecialServiceRepository) FindAll() []domain.SpecialService {
	out := make([]domain.SpecialService, len(r.services))
	copy(out, r.services)
	return out
}
