package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Skotchmaster/shop_api/internal/events"
	"github.com/Skotchmaster/shop_api/internal/models"
	"github.com/Skotchmaster/shop_api/internal/repo"
	"github.com/Skotchmaster/shop_api/pkg/logging"
)

// CatalogService keeps products in the database. When Index is set, writes
// are mirrored into it and searches are served from it.
type CatalogService struct {
	Repo   ProductRepo
	Index  ProductIndex
	Events events.Publisher
}

func validateProduct(name *string, price *float64) error {
	if name != nil && *name == "" {
		return fmt.Errorf("name must not be empty: %w", ErrValidation)
	}
	if price != nil {
		if math.IsNaN(*price) || math.IsInf(*price, 0) {
			return fmt.Errorf("price must be a number: %w", ErrValidation)
		}
		if *price < 0 {
			return fmt.Errorf("price must not be negative: %w", ErrValidation)
		}
	}
	return nil
}

func productNotFound(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return ErrProductNotFound
	}
	return err
}

func (s *CatalogService) Create(ctx context.Context, name string, price float64) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.create")

	if err := validateProduct(&name, &price); err != nil {
		return nil, err
	}

	prod := &models.Product{Name: name, Price: price}
	if err := s.Repo.CreateProduct(ctx, prod); err != nil {
		l.Error("create_product_error", "status", 500, "error", err)
		return nil, err
	}

	s.indexProduct(ctx, *prod)
	publish(ctx, s.Events, events.TopicProducts, idKey(prod.ID), map[string]any{
		"type":       "product_created",
		"product_id": prod.ID,
		"name":       prod.Name,
		"price":      prod.Price,
	})
	return prod, nil
}

func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id uint) (*models.Product, error) {
	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, productNotFound(err)
	}
	return prod, nil
}

func (s *CatalogService) Update(ctx context.Context, id uint, patch models.ProductPatch) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.update", "product_id", id)

	if err := validateProduct(patch.Name, patch.Price); err != nil {
		return nil, err
	}

	prod, err := s.Repo.UpdateProduct(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		l.Error("update_product_error", "status", 500, "error", err)
		return nil, err
	}

	s.indexProduct(ctx, *prod)
	publish(ctx, s.Events, events.TopicProducts, idKey(prod.ID), map[string]any{
		"type":       "product_updated",
		"product_id": prod.ID,
		"name":       prod.Name,
		"price":      prod.Price,
	})
	return prod, nil
}

// Delete leaves cart lines that reference the product in place.
func (s *CatalogService) Delete(ctx context.Context, id uint) error {
	l := logging.FromContext(ctx).With("svc", "catalog.delete", "product_id", id)

	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrProductNotFound
		}
		l.Error("delete_product_error", "status", 500, "error", err)
		return err
	}

	if s.Index != nil {
		if err := s.Index.DeleteProduct(ctx, id); err != nil {
			l.Error("unindex_product_error", "error", err)
		}
	}
	publish(ctx, s.Events, events.TopicProducts, idKey(id), map[string]any{
		"type":       "product_deleted",
		"product_id": id,
	})
	return nil
}

// Search matches q case-insensitively anywhere in the product name.
func (s *CatalogService) Search(ctx context.Context, q string) ([]models.Product, error) {
	if q == "" {
		return nil, fmt.Errorf("query must not be empty: %w", ErrValidation)
	}
	if s.Index != nil {
		return s.Index.SearchProducts(ctx, q)
	}
	return s.Repo.SearchProducts(ctx, q)
}

func (s *CatalogService) indexProduct(ctx context.Context, prod models.Product) {
	if s.Index == nil {
		return
	}
	if err := s.Index.IndexProduct(ctx, prod); err != nil {
		logging.FromContext(ctx).Error("index_product_error", "product_id", prod.ID, "error", err)
	}
}
