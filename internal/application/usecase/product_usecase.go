package usecase

import (
	"context"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/domain"
	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/domain/repository"
)

// ProductUseCase catálogo de paquetes de acceso.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// GetAll lista el catálogo completo (incluye inactivos).
func (uc *ProductUseCase) GetAll(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toProductResponse), nil
}

// GetActive lista solo los paquetes a la venta.
func (uc *ProductUseCase) GetActive(ctx context.Context) ([]dto.ProductResponse, error) {
	all, err := uc.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(all))
	for _, p := range all {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

// Create crea un paquete; por defecto queda activo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	p := &entity.VoucherPack{
		Name:        in.Name,
		Description: in.Description,
		Type:        entity.VoucherType(in.Type),
		AccessCount: in.AccessCount,
		Price:       in.Price,
		Features:    in.Features,
		IsActive:    true,
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if !p.Type.IsValid() {
		return nil, invalidEnum("type")
	}
	if !p.Validate() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// Update cambia precio y/o disponibilidad.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	return uc.repo.Update(ctx, id, repository.ProductPatch{Price: in.Price, IsActive: in.IsActive})
}

func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
