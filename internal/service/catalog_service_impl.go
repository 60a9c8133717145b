package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/creative-h/aopplan/internal/contract"
	"github.com/creative-h/aopplan/internal/db"
	"github.com/creative-h/aopplan/internal/domain"
	"github.com/creative-h/aopplan/internal/importer"
	"github.com/creative-h/aopplan/internal/repository"
)

type catalogService struct {
	catalog repository.CatalogRepo
	uow     db.UnitOfWork
}

// NewCatalogService creates a CatalogService. Imports replace actions
// within one transaction on uow.
func NewCatalogService(catalog repository.CatalogRepo, uow db.UnitOfWork) CatalogService {
	return &catalogService{catalog: catalog, uow: uow}
}

func (s *catalogService) ImportCatalog(ctx context.Context, file *importer.CatalogFile) (*contract.CatalogStats, error) {
	if errs := importer.ValidateCatalogFile(file); len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog file: %w", errors.Join(errs...))
	}

	actions := importer.CatalogActions(file)
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteCatalogRepo(tx)
		for name, effect := range actions {
			if err := repo.Upsert(ctx, name, effect); err != nil {
				return fmt.Errorf("importing action %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &contract.CatalogStats{ActionsImported: len(actions)}, nil
}

func (s *catalogService) GetCatalog(ctx context.Context) (domain.ActionCatalog, error) {
	return s.catalog.Get(ctx)
}
