package services

import (
	"fmt"

	"jmorrow.dev/internal/models"
)

// ProjectService exposes the ordered project catalog to the rendering and
// API layers. The catalog is loaded once and never mutated.
type ProjectService struct {
	projects *models.ProjectList
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects *models.ProjectList) *ProjectService {
	return &ProjectService{projects: projects}
}

// All returns every project in display order, unchanged.
func (s *ProjectService) All() []models.Project {
	return s.projects.Projects
}

// BySlug returns the project whose title slug matches.
func (s *ProjectService) BySlug(slug string) (*models.Project, error) {
	for i := range s.projects.Projects {
		if s.projects.Projects[i].Slug == slug {
			return &s.projects.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("project not found: %s", slug)
}

// List returns the wrapped catalog in its storage form, for serialization.
func (s *ProjectService) List() *models.ProjectList {
	return s.projects
}
