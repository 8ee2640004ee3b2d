package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/application/usecase"
	"github.com/jhoicas/privilege-pass-api/internal/domain"
	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/domain/repository"
	"github.com/jhoicas/privilege-pass-api/internal/domain/session"
	"github.com/jhoicas/privilege-pass-api/pkg/jwt"
	"github.com/jhoicas/privilege-pass-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TokenRevoker lista de tokens cerrados antes de su expiración.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthUseCase registro, inicio y cierre de sesión para administradores, afiliados y clientes.
type AuthUseCase struct {
	admins    repository.AdminRepository
	partners  repository.PartnerRepository
	customers repository.CustomerRepository
	customerU *usecase.CustomerUseCase
	partnerU  *usecase.PartnerUseCase
	revoker   TokenRevoker
	jwtCfg    JWTConfig
	markers   session.Markers
	now       func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	admins repository.AdminRepository,
	partners repository.PartnerRepository,
	customers repository.CustomerRepository,
	customerU *usecase.CustomerUseCase,
	partnerU *usecase.PartnerUseCase,
	revoker TokenRevoker,
	jwtCfg JWTConfig,
	markers session.Markers,
) *AuthUseCase {
	return &AuthUseCase{
		admins: admins, partners: partners, customers: customers,
		customerU: customerU, partnerU: partnerU,
		revoker: revoker, jwtCfg: jwtCfg, markers: markers, now: time.Now,
	}
}

// account cuenta encontrada en alguna de las tablas de usuarios.
type account struct {
	id, name, email, password string
	role                      session.Role
	blocked                   bool
	rehash                    func(ctx context.Context, hash string) error
}

// SignUp registra un cliente y abre su sesión.
func (uc *AuthUseCase) SignUp(ctx context.Context, in dto.SignUpRequest) (*dto.SessionResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	c, err := uc.customerU.Create(ctx, dto.CreateCustomerRequest{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Password: in.Password,
		CPF:      in.CPF,
	})
	if errors.Is(err, domain.ErrDuplicate) {
		return nil, domain.ErrEmailAlreadyExists
	}
	if err != nil {
		return nil, err
	}
	return uc.issue(account{id: c.ID, name: c.Name, email: c.Email, role: session.RoleCustomer})
}

// RegisterPartner registro público de afiliados. Exige contraseña para poder iniciar sesión luego.
func (uc *AuthUseCase) RegisterPartner(ctx context.Context, in dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	if in.Password == "" {
		return nil, domain.NewValidationError("password", "obligatorio")
	}
	p, err := uc.partnerU.Create(ctx, in)
	if errors.Is(err, domain.ErrDuplicate) {
		return nil, domain.ErrEmailAlreadyExists
	}
	return p, err
}

// SignIn busca la cuenta en admin_profile, admin_users, partners y customers, en ese orden.
// El rol del token sale de la tabla donde está la cuenta, nunca del texto del email.
// Una contraseña heredada en texto plano se re-hashea tras un login correcto.
func (uc *AuthUseCase) SignIn(ctx context.Context, in dto.SignInRequest) (*dto.SessionResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	email := usecase.NormalizeEmail(in.Email)
	acc, err := uc.find(ctx, email)
	if err != nil {
		return nil, err
	}
	ok, needsRehash := password.Verify(acc.password, in.Password)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if acc.blocked {
		return nil, domain.ErrForbidden
	}
	if needsRehash {
		hash, err := password.Hash(in.Password)
		if err != nil {
			return nil, err
		}
		if err := acc.rehash(ctx, hash); err != nil {
			return nil, err
		}
	}
	return uc.issue(*acc)
}

func (uc *AuthUseCase) find(ctx context.Context, email string) (*account, error) {
	if p, err := uc.admins.GetProfile(ctx); err == nil && usecase.NormalizeEmail(p.Email) == email {
		return &account{
			id: p.ID, name: p.Name, email: p.Email, password: p.Password, role: session.RoleAdmin,
			rehash: func(ctx context.Context, hash string) error {
				now := uc.now()
				return uc.admins.UpdateProfile(ctx, repository.AdminPatch{Password: &hash, LastActive: &now})
			},
		}, nil
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if s, err := uc.admins.GetStaffByEmail(ctx, email); err == nil {
		return &account{
			id: s.ID, name: s.Name, email: s.Email, password: s.Password, role: session.RoleAdmin,
			rehash: func(ctx context.Context, hash string) error {
				return uc.admins.UpdateStaff(ctx, s.ID, repository.AdminPatch{Password: &hash})
			},
		}, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if p, err := uc.partners.GetByEmail(ctx, email); err == nil {
		return &account{
			id: p.ID, name: p.Name, email: p.Email, password: p.Password, role: session.RolePartner,
			blocked: p.Status == entity.PartnerBlocked,
			rehash: func(ctx context.Context, hash string) error {
				return uc.partners.UpdatePassword(ctx, p.ID, hash)
			},
		}, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	c, err := uc.customers.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	return &account{
		id: c.ID, name: c.Name, email: c.Email, password: c.Password, role: session.RoleCustomer,
		rehash: func(ctx context.Context, hash string) error {
			return uc.customers.UpdatePassword(ctx, c.ID, hash)
		},
	}, nil
}

func (uc *AuthUseCase) issue(acc account) (*dto.SessionResponse, error) {
	expires := uc.now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute)
	token, err := jwt.Generate(uc.jwtCfg.Secret, acc.id, acc.email, string(acc.role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{
		Token:     token,
		ExpiresAt: expires,
		Role:      string(acc.role),
		UIRole:    string(session.ResolveRole(acc.email, uc.markers)),
		User:      dto.SessionUser{ID: acc.id, Name: acc.name, Email: acc.email},
	}, nil
}

// SignOut revoca el token hasta su expiración natural.
func (uc *AuthUseCase) SignOut(ctx context.Context, claims *jwt.Claims) error {
	return uc.revoker.Revoke(ctx, claims.ID, claims.Remaining(uc.now()))
}

// Session describe la sesión del token.
func (uc *AuthUseCase) Session(claims *jwt.Claims) dto.SessionInfo {
	info := dto.SessionInfo{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info
}
