package filestore

import (
	"context"
	"sync"

	"github.com/avbilling/avbilling/internal/domain/product"
	"github.com/avbilling/avbilling/internal/logger"
	"github.com/avbilling/avbilling/internal/storage"
)

type productDocument struct {
	Products []*product.Product `json:"products"`
}

type productRepository struct {
	path string
	log  *logger.Logger

	mu  sync.RWMutex
	doc productDocument
}

// NewProductRepository loads the product registry document at path,
// defaulting to an empty registry when the file is missing or corrupt
func NewProductRepository(path string, log *logger.Logger) (product.Repository, error) {
	doc, err := storage.Load[productDocument](path)
	if err != nil {
		return nil, err
	}
	return &productRepository{path: path, log: log, doc: doc}, nil
}

func copyProduct(p *product.Product) *product.Product {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

func (r *productRepository) List(ctx context.Context) ([]*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*product.Product, len(r.doc.Products))
	for i, p := range r.doc.Products {
		result[i] = copyProduct(p)
	}
	return result, nil
}

func (r *productRepository) FindByCode(ctx context.Context, code string) (*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.doc.Products {
		if keyEqual(p.ProductCode, code) {
			return copyProduct(p), nil
		}
	}
	return nil, nil
}

func (r *productRepository) FindByName(ctx context.Context, name string) (*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.doc.Products {
		if keyEqual(p.ProductName, name) {
			return copyProduct(p), nil
		}
	}
	return nil, nil
}

func (r *productRepository) Upsert(ctx context.Context, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyProduct(p)
	for i, existing := range r.doc.Products {
		if keyEqual(existing.ProductCode, p.ProductCode) {
			r.doc.Products[i] = stored
			if err := storage.Save(r.path, r.doc); err != nil {
				// The replacement must not survive a failed persist
				r.doc.Products[i] = existing
				return err
			}
			return nil
		}
	}
	r.doc.Products = append(r.doc.Products, stored)
	if err := storage.Save(r.path, r.doc); err != nil {
		r.doc.Products = r.doc.Products[:len(r.doc.Products)-1]
		return err
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, code string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]*product.Product, 0, len(r.doc.Products))
	for _, p := range r.doc.Products {
		if !keyEqual(p.ProductCode, code) {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(r.doc.Products) {
		return false, nil
	}
	previous := r.doc.Products
	r.doc.Products = kept
	if err := storage.Save(r.path, r.doc); err != nil {
		// Keep the record in memory so a retry can persist the deletion
		r.doc.Products = previous
		return false, err
	}
	return true, nil
}
