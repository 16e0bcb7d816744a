package service

import (
	"strings"

	"github.com/prodlens/prodlens-core/internal/dossiers/domain"
)

// DossierService serves the seeded dossier board. Listing and filtering
// only; dossiers are not edited from the dashboard.
type DossierService struct {
	dossiers []domain.Dossier
}

func NewDossierService() *DossierService {
	return &DossierService{dossiers: domain.Seed()}
}

func (s *DossierService) List() []domain.Dossier {
	return append([]domain.Dossier{}, s.dossiers...)
}

// Search filters by a case-insensitive title term and status.
func (s *DossierService) Search(term, status string) []domain.Dossier {
	term = strings.ToLower(term)
	out := make([]domain.Dossier, 0, len(s.dossiers))
	for _, d := range s.dossiers {
		if term != "" && !strings.Contains(strings.ToLower(d.Title), term) {
			continue
		}
		if status != "" && status != "all" && d.Status != status {
			continue
		}
		out = append(out, d)
	}
	return out
}
