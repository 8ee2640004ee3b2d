package usecase

import (
	"context"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/domain/repository"
	"github.com/jhoicas/privilege-pass-api/pkg/generator"
	"github.com/jhoicas/privilege-pass-api/pkg/password"
)

// AdminUseCase perfil del administrador y staff del back-office.
type AdminUseCase struct {
	repo repository.AdminRepository
}

func NewAdminUseCase(repo repository.AdminRepository) *AdminUseCase {
	return &AdminUseCase{repo: repo}
}

// GetProfile devuelve domain.ErrNotFound si el perfil aún no fue creado.
func (uc *AdminUseCase) GetProfile(ctx context.Context) (*dto.AdminUserResponse, error) {
	p, err := uc.repo.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	out := toAdminUserResponse(p)
	return &out, nil
}

func (uc *AdminUseCase) UpdateProfile(ctx context.Context, in dto.UpdateAdminProfileRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	patch := repository.AdminPatch{Name: in.Name, Email: normalizeEmailPtr(in.Email), AvatarURL: in.AvatarURL}
	if in.Password != nil {
		hash, err := password.Hash(*in.Password)
		if err != nil {
			return err
		}
		patch.Password = &hash
	}
	return uc.repo.UpdateProfile(ctx, patch)
}

func (uc *AdminUseCase) GetStaff(ctx context.Context) ([]dto.AdminUserResponse, error) {
	list, err := uc.repo.ListStaff(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toAdminUserResponse), nil
}

// AddStaff da de alta un miembro del staff; el email se guarda en minúsculas.
func (uc *AdminUseCase) AddStaff(ctx context.Context, in dto.AddStaffRequest) (*dto.AdminUserResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	role := entity.AdminRole(in.Role)
	if !role.IsValid() {
		return nil, invalidEnum("role")
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.AdminUser{
		Name:      in.Name,
		Email:     NormalizeEmail(in.Email),
		Password:  hash,
		Role:      role,
		AvatarURL: orDefault(in.AvatarURL, generator.AvatarURL(in.Name)),
	}
	if err := uc.repo.AddStaff(ctx, u); err != nil {
		return nil, err
	}
	out := toAdminUserResponse(u)
	return &out, nil
}

func (uc *AdminUseCase) RemoveStaff(ctx context.Context, id string) error {
	return uc.repo.RemoveStaff(ctx, id)
}
