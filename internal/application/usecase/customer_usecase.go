package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/privilege-pass-api/internal/application/dto"
	"github.com/jhoicas/privilege-pass-api/internal/domain"
	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/domain/repository"
	"github.com/jhoicas/privilege-pass-api/pkg/generator"
	"github.com/jhoicas/privilege-pass-api/pkg/password"
)

// CustomerUseCase casos de uso de clientes (socios con vouchers).
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	vouchers repository.VoucherRepository
	now      func() time.Time
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, vouchers repository.VoucherRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, vouchers: vouchers, now: time.Now}
}

// GetAll lista todos los clientes con sus vouchers, los más recientes primero.
func (uc *CustomerUseCase) GetAll(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toCustomerResponse), nil
}

// GetByEmail devuelve domain.ErrNotFound si no hay cliente con ese email.
func (uc *CustomerUseCase) GetByEmail(ctx context.Context, email string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	out := toCustomerResponse(c)
	return &out, nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toCustomerResponse(c)
	return &out, nil
}

// Create da de alta un cliente. Gasto, última compra, ID de membresía y vouchers siempre parten
// de sus valores por defecto, aunque vengan en la entrada.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	c := &entity.Customer{
		Name:                 in.Name,
		Email:                NormalizeEmail(in.Email),
		Phone:                in.Phone,
		Password:             hash,
		AvatarURL:            orDefault(in.AvatarURL, generator.AvatarURL(in.Name)),
		TotalSpend:           decimal.Zero,
		Location:             orDefault(in.Location, entity.DefaultCustomerLocation),
		LastPurchaseDate:     entity.NoPurchaseDate,
		ExternalMembershipID: entity.PendingMembershipID,
		Vouchers:             []entity.Voucher{},
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := toCustomerResponse(c)
	return &out, nil
}

// Update aplica una actualización parcial. Si ActiveVouchers está presente, se insertan solo los
// vouchers cuyo ID aún no existe; los ya guardados no se modifican ni se borran.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerUpdateResult, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	var vouchers []entity.Voucher
	for _, vr := range in.ActiveVouchers {
		v, err := buildVoucher(id, vr, uc.now())
		if err != nil {
			return nil, err
		}
		vouchers = append(vouchers, *v)
	}

	patch := repository.CustomerPatch{
		Name:                 in.Name,
		Email:                normalizeEmailPtr(in.Email),
		Phone:                in.Phone,
		AvatarURL:            in.AvatarURL,
		TotalSpend:           in.TotalSpend,
		Location:             in.Location,
		LastPurchaseDate:     in.LastPurchaseDate,
		ExternalMembershipID: in.ExternalMembershipID,
	}
	if err := uc.repo.Update(ctx, id, patch); err != nil {
		return nil, err
	}

	result := &dto.CustomerUpdateResult{InsertedVoucherIDs: []string{}}
	if in.ActiveVouchers == nil {
		return result, nil
	}
	inserted, err := uc.vouchers.InsertIfAbsent(ctx, id, vouchers)
	if err != nil {
		return nil, err
	}
	if inserted != nil {
		result.InsertedVoucherIDs = inserted
	}
	return result, nil
}

// Delete elimina un cliente y sus vouchers.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// buildVoucher completa los valores por defecto de un voucher entrante y lo valida.
// Sin ID, el voucher toma un ID de pedido (PP-<ms>-<aleatorio>-<cliente>).
func buildVoucher(customerID string, in dto.VoucherRequest, now time.Time) (*entity.Voucher, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	v := &entity.Voucher{
		ID:              orDefault(in.ID, generator.OrderID(customerID)),
		CustomerID:      customerID,
		PackName:        in.PackName,
		Code:            orDefault(in.Code, generator.VoucherCode()),
		RemainingAccess: in.RemainingAccess,
		TotalAccess:     in.TotalAccess,
		Status:          entity.VoucherStatus(orDefault(in.Status, string(entity.VoucherActive))),
		PurchaseDate:    orDefault(in.PurchaseDate, now.Format("2006-01-02")),
		QRCodeURL:       in.QRCodeURL,
	}
	if !v.Status.IsValid() {
		return nil, invalidEnum("status")
	}
	if !v.Validate() {
		return nil, domain.NewValidationError("remainingAccess", "debe estar entre 0 y totalAccess")
	}
	return v, nil
}
