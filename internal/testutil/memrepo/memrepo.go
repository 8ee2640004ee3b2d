// Package memrepo implementa los puertos de repositorio en memoria para tests de casos de uso.
// Reproduce las reglas que la base garantiza: unicidad de email y cupón, ErrNotFound, orden de listados.
package memrepo

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/privilege-pass-api/internal/domain"
	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
	"github.com/jhoicas/privilege-pass-api/internal/domain/repository"
)

var (
	_ repository.CustomerRepository       = (*Customers)(nil)
	_ repository.VoucherRepository        = (*Vouchers)(nil)
	_ repository.PartnerRepository        = (*Partners)(nil)
	_ repository.ProductRepository        = (*Products)(nil)
	_ repository.BenefitRepository        = (*Benefits)(nil)
	_ repository.FAQRepository            = (*FAQ)(nil)
	_ repository.MarketingAssetRepository = (*Marketing)(nil)
	_ repository.TransactionRepository    = (*Transactions)(nil)
	_ repository.EmailCampaignRepository  = (*Campaigns)(nil)
	_ repository.AdminRepository          = (*Admin)(nil)
)

// Store agrupa todas las tablas y comparte el reloj y el contador de IDs.
type Store struct {
	mu  sync.Mutex
	seq int
	now time.Time

	customers    map[string]*entity.Customer
	vouchers     map[string]*entity.Voucher
	partners     map[string]*entity.Partner
	products     map[string]*entity.VoucherPack
	benefits     map[string]*entity.Benefit
	faq          map[string]*entity.FAQItem
	marketing    map[string]*entity.MarketingAsset
	transactions map[string]*entity.Transaction
	campaigns    map[string]*entity.EmailCampaign
	staff        map[string]*entity.AdminUser
	profile      *entity.AdminUser

	// Fail, si no es nil, lo devuelven todas las lecturas de listados.
	Fail error
}

func New() *Store {
	return &Store{
		now:          time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
		customers:    map[string]*entity.Customer{},
		vouchers:     map[string]*entity.Voucher{},
		partners:     map[string]*entity.Partner{},
		products:     map[string]*entity.VoucherPack{},
		benefits:     map[string]*entity.Benefit{},
		faq:          map[string]*entity.FAQItem{},
		marketing:    map[string]*entity.MarketingAsset{},
		transactions: map[string]*entity.Transaction{},
		campaigns:    map[string]*entity.EmailCampaign{},
		staff:        map[string]*entity.AdminUser{},
	}
}

// stamp asigna ID y CreatedAt crecientes, como haría la base.
func (s *Store) stamp(prefix string) (string, time.Time) {
	s.seq++
	s.now = s.now.Add(time.Second)
	return prefix + "-" + strconv.Itoa(s.seq), s.now
}

func (s *Store) Customers() *Customers       { return &Customers{s} }
func (s *Store) Vouchers() *Vouchers         { return &Vouchers{s} }
func (s *Store) Partners() *Partners         { return &Partners{s} }
func (s *Store) Products() *Products         { return &Products{s} }
func (s *Store) Benefits() *Benefits         { return &Benefits{s} }
func (s *Store) FAQ() *FAQ                   { return &FAQ{s} }
func (s *Store) Marketing() *Marketing       { return &Marketing{s} }
func (s *Store) Transactions() *Transactions { return &Transactions{s} }
func (s *Store) Campaigns() *Campaigns       { return &Campaigns{s} }
func (s *Store) Admin() *Admin               { return &Admin{s} }

// SetProfile guarda el perfil de administrador.
func (s *Store) SetProfile(u entity.AdminUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &u
}

// ────────────────────────────────────────────────────────────────────────────
// Customers / Vouchers
// ────────────────────────────────────────────────────────────────────────────

type Customers struct{ s *Store }

func (r *Customers) withVouchers(c *entity.Customer) *entity.Customer {
	cp := *c
	cp.Vouchers = []entity.Voucher{}
	for _, v := range r.s.vouchers {
		if v.CustomerID == c.ID {
			cp.Vouchers = append(cp.Vouchers, *v)
		}
	}
	sort.Slice(cp.Vouchers, func(i, j int) bool { return cp.Vouchers[i].CreatedAt.Before(cp.Vouchers[j].CreatedAt) })
	return &cp
}

func (r *Customers) List(context.Context) ([]*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	out := make([]*entity.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		out = append(out, r.withVouchers(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Customers) GetByEmail(_ context.Context, email string) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.customers {
		if c.Email == strings.ToLower(email) {
			return r.withVouchers(c), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *Customers) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r.withVouchers(c), nil
}

func (r *Customers) Create(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, ex := range r.s.customers {
		if ex.Email == c.Email {
			return &domain.DuplicateError{Field: "email"}
		}
	}
	c.ID, c.CreatedAt = r.s.stamp("cus")
	cp := *c
	cp.Vouchers = nil
	r.s.customers[c.ID] = &cp
	return nil
}

func (r *Customers) Update(_ context.Context, id string, p repository.CustomerPatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[id]
	if !ok {
		return domain.ErrNotFound
	}
	setStr(&c.Name, p.Name)
	if p.Email != nil {
		c.Email = strings.ToLower(*p.Email)
	}
	setStr(&c.Phone, p.Phone)
	setStr(&c.AvatarURL, p.AvatarURL)
	setDec(&c.TotalSpend, p.TotalSpend)
	setStr(&c.Location, p.Location)
	setStr(&c.LastPurchaseDate, p.LastPurchaseDate)
	setStr(&c.ExternalMembershipID, p.ExternalMembershipID)
	return nil
}

func (r *Customers) UpdatePassword(_ context.Context, id, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Password = hash
	return nil
}

func (r *Customers) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.customers, id)
	for vid, v := range r.s.vouchers {
		if v.CustomerID == id {
			delete(r.s.vouchers, vid)
		}
	}
	return nil
}

func (r *Customers) Emails(context.Context) ([]string, error) {
	list, err := r.List(context.Background())
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.Email)
	}
	return out, nil
}

type Vouchers struct{ s *Store }

func (r *Vouchers) insert(v *entity.Voucher) {
	id, created := r.s.stamp("vou")
	if v.ID == "" {
		v.ID = id
	}
	v.CreatedAt = created
	cp := *v
	r.s.vouchers[v.ID] = &cp
}

func (r *Vouchers) Create(_ context.Context, v *entity.Voucher) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[v.CustomerID]; !ok {
		return fmt.Errorf("vouchers.create: %w", domain.ErrConflict)
	}
	if _, ok := r.s.vouchers[v.ID]; ok && v.ID != "" {
		return &domain.DuplicateError{Field: "id"}
	}
	r.insert(v)
	return nil
}

func (r *Vouchers) InsertIfAbsent(_ context.Context, customerID string, vouchers []entity.Voucher) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var inserted []string
	for i := range vouchers {
		v := vouchers[i]
		if _, ok := r.s.vouchers[v.ID]; ok && v.ID != "" {
			continue
		}
		v.CustomerID = customerID
		r.insert(&v)
		inserted = append(inserted, v.ID)
	}
	return inserted, nil
}

func (r *Vouchers) GetByID(_ context.Context, id string) (*entity.Voucher, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.vouchers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *Vouchers) Update(_ context.Context, id string, p repository.VoucherPatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.vouchers[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.RemainingAccess != nil {
		v.RemainingAccess = *p.RemainingAccess
	}
	if p.Status != nil {
		v.Status = *p.Status
	}
	return nil
}

func (r *Vouchers) Redeem(_ context.Context, id string) (*entity.Voucher, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.vouchers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if v.RemainingAccess == 0 || v.Status != entity.VoucherActive {
		return nil, domain.ErrNoAccessLeft
	}
	v.RemainingAccess--
	if v.RemainingAccess == 0 {
		v.Status = entity.VoucherRedeemed
	}
	cp := *v
	return &cp, nil
}

// ────────────────────────────────────────────────────────────────────────────
// Partners
// ────────────────────────────────────────────────────────────────────────────

type Partners struct{ s *Store }

func (r *Partners) List(context.Context) ([]*entity.Partner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	out := make([]*entity.Partner, 0, len(r.s.partners))
	for _, p := range r.s.partners {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Partners) find(match func(*entity.Partner) bool) (*entity.Partner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.partners {
		if match(p) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *Partners) GetByEmail(_ context.Context, email string) (*entity.Partner, error) {
	return r.find(func(p *entity.Partner) bool { return p.Email == strings.ToLower(email) })
}

func (r *Partners) GetByID(_ context.Context, id string) (*entity.Partner, error) {
	return r.find(func(p *entity.Partner) bool { return p.ID == id })
}

func (r *Partners) GetByCouponCode(_ context.Context, code string) (*entity.Partner, error) {
	return r.find(func(p *entity.Partner) bool { return p.CouponCode == strings.ToUpper(code) })
}

func (r *Partners) Create(_ context.Context, p *entity.Partner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, ex := range r.s.partners {
		if ex.Email == p.Email {
			return &domain.DuplicateError{Field: "email"}
		}
		if ex.CouponCode == p.CouponCode {
			return &domain.DuplicateError{Field: "couponCode"}
		}
	}
	p.ID, p.CreatedAt = r.s.stamp("par")
	cp := *p
	r.s.partners[p.ID] = &cp
	return nil
}

func (r *Partners) Update(_ context.Context, id string, patch repository.PartnerPatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.partners[id]
	if !ok {
		return domain.ErrNotFound
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.TotalSales != nil {
		p.TotalSales = *patch.TotalSales
	}
	setDec(&p.TotalEarned, patch.TotalEarned)
	return nil
}

func (r *Partners) AddSale(_ context.Context, id string, commission decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.partners[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.TotalSales++
	p.TotalEarned = p.TotalEarned.Add(commission)
	return nil
}

func (r *Partners) UpdatePassword(_ context.Context, id, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.partners[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Password = hash
	return nil
}

func (r *Partners) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.partners[id]; !ok {
		return domain.ErrNotFound
	}
	for _, t := range r.s.transactions {
		if t.PartnerID == id {
			return fmt.Errorf("partners.delete: %w", domain.ErrConflict)
		}
	}
	delete(r.s.partners, id)
	return nil
}

func (r *Partners) Emails(context.Context) ([]string, error) {
	list, err := r.List(context.Background())
	if err != nil {
		return nil, err
	}
	var out []string
	for _, p := range list {
		if p.Status == entity.PartnerActive {
			out = append(out, p.Email)
		}
	}
	return out, nil
}

// ────────────────────────────────────────────────────────────────────────────
// Catálogo y contenido
// ────────────────────────────────────────────────────────────────────────────

type Products struct{ s *Store }

func (r *Products) List(context.Context) ([]*entity.VoucherPack, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	out := make([]*entity.VoucherPack, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].AccessCount < out[j].AccessCount
	})
	return out, nil
}

func (r *Products) GetByID(_ context.Context, id string) (*entity.VoucherPack, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *Products) Create(_ context.Context, p *entity.VoucherPack) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID, p.CreatedAt = r.s.stamp("pro")
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *Products) Update(_ context.Context, id string, patch repository.ProductPatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	setDec(&p.Price, patch.Price)
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	return nil
}

func (r *Products) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

type Benefits struct{ s *Store }

func (r *Benefits) List(context.Context) ([]*entity.Benefit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	return sortedCopies(r.s.benefits, func(b *entity.Benefit) time.Time { return b.CreatedAt }, true), nil
}

func (r *Benefits) Create(_ context.Context, b *entity.Benefit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b.ID, b.CreatedAt = r.s.stamp("ben")
	cp := *b
	r.s.benefits[b.ID] = &cp
	return nil
}

func (r *Benefits) Delete(_ context.Context, id string) error {
	return deleteFrom(r.s, r.s.benefits, id)
}

type FAQ struct{ s *Store }

func (r *FAQ) List(context.Context) ([]*entity.FAQItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	return sortedCopies(r.s.faq, func(f *entity.FAQItem) time.Time { return f.CreatedAt }, false), nil
}

func (r *FAQ) Create(_ context.Context, f *entity.FAQItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f.ID, f.CreatedAt = r.s.stamp("faq")
	cp := *f
	r.s.faq[f.ID] = &cp
	return nil
}

func (r *FAQ) Update(_ context.Context, id string, p repository.FAQPatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.faq[id]
	if !ok {
		return domain.ErrNotFound
	}
	setStr(&f.Question, p.Question)
	setStr(&f.Answer, p.Answer)
	if p.Category != nil {
		f.Category = *p.Category
	}
	return nil
}

func (r *FAQ) Delete(_ context.Context, id string) error {
	return deleteFrom(r.s, r.s.faq, id)
}

type Marketing struct{ s *Store }

func (r *Marketing) List(context.Context) ([]*entity.MarketingAsset, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	return sortedCopies(r.s.marketing, func(a *entity.MarketingAsset) time.Time { return a.CreatedAt }, true), nil
}

func (r *Marketing) Create(_ context.Context, a *entity.MarketingAsset) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a.ID, a.CreatedAt = r.s.stamp("mkt")
	cp := *a
	r.s.marketing[a.ID] = &cp
	return nil
}

func (r *Marketing) Delete(_ context.Context, id string) error {
	return deleteFrom(r.s, r.s.marketing, id)
}

// ────────────────────────────────────────────────────────────────────────────
// Transacciones, campañas y administración
// ────────────────────────────────────────────────────────────────────────────

type Transactions struct{ s *Store }

func (r *Transactions) List(context.Context) ([]*entity.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	return sortedCopies(r.s.transactions, func(t *entity.Transaction) time.Time { return t.Date }, true), nil
}

func (r *Transactions) ListByPartner(ctx context.Context, partnerID string) ([]*entity.Transaction, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*entity.Transaction
	for _, t := range all {
		if t.PartnerID == partnerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *Transactions) Create(_ context.Context, t *entity.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.partners[t.PartnerID]; !ok {
		return fmt.Errorf("transactions.create: %w", domain.ErrConflict)
	}
	t.ID, t.CreatedAt = r.s.stamp("trx")
	cp := *t
	r.s.transactions[t.ID] = &cp
	return nil
}

func (r *Transactions) Update(_ context.Context, id string, p repository.TransactionPatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.transactions[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Archived != nil {
		t.Archived = *p.Archived
	}
	if p.ScheduledDate != nil {
		d := *p.ScheduledDate
		t.ScheduledDate = &d
	}
	return nil
}

type Campaigns struct{ s *Store }

func (r *Campaigns) List(context.Context) ([]*entity.EmailCampaign, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	return sortedCopies(r.s.campaigns, func(c *entity.EmailCampaign) time.Time {
		if c.SentDate == nil {
			return time.Time{}
		}
		return *c.SentDate
	}, true), nil
}

func (r *Campaigns) Create(_ context.Context, c *entity.EmailCampaign) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID, c.CreatedAt = r.s.stamp("cam")
	cp := *c
	r.s.campaigns[c.ID] = &cp
	return nil
}

type Admin struct{ s *Store }

func (r *Admin) GetProfile(context.Context) (*entity.AdminUser, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.profile == nil {
		return nil, domain.ErrNotFound
	}
	cp := *r.s.profile
	return &cp, nil
}

func applyAdminPatch(u *entity.AdminUser, p repository.AdminPatch) {
	setStr(&u.Name, p.Name)
	if p.Email != nil {
		u.Email = strings.ToLower(*p.Email)
	}
	setStr(&u.Password, p.Password)
	setStr(&u.AvatarURL, p.AvatarURL)
	if p.LastActive != nil {
		u.LastActive = *p.LastActive
	}
}

func (r *Admin) UpdateProfile(_ context.Context, p repository.AdminPatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.profile == nil {
		return domain.ErrNotFound
	}
	applyAdminPatch(r.s.profile, p)
	return nil
}

func (r *Admin) ListStaff(context.Context) ([]*entity.AdminUser, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	return sortedCopies(r.s.staff, func(u *entity.AdminUser) time.Time { return u.CreatedAt }, false), nil
}

func (r *Admin) GetStaffByEmail(_ context.Context, email string) (*entity.AdminUser, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.staff {
		if u.Email == strings.ToLower(email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *Admin) AddStaff(_ context.Context, u *entity.AdminUser) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u.Email = strings.ToLower(u.Email)
	for _, ex := range r.s.staff {
		if ex.Email == u.Email {
			return &domain.DuplicateError{Field: "email"}
		}
	}
	u.ID, u.CreatedAt = r.s.stamp("adm")
	u.LastActive = u.CreatedAt
	cp := *u
	r.s.staff[u.ID] = &cp
	return nil
}

func (r *Admin) UpdateStaff(_ context.Context, id string, p repository.AdminPatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.staff[id]
	if !ok {
		return domain.ErrNotFound
	}
	applyAdminPatch(u, p)
	return nil
}

func (r *Admin) RemoveStaff(_ context.Context, id string) error {
	return deleteFrom(r.s, r.s.staff, id)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func setStr(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDec(dst *decimal.Decimal, v *decimal.Decimal) {
	if v != nil {
		*dst = *v
	}
}

func deleteFrom[T any](s *Store, m map[string]*T, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := m[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m, id)
	return nil
}

func sortedCopies[T any](m map[string]*T, key func(*T) time.Time, desc bool) []*T {
	out := make([]*T, 0, len(m))
	for _, v := range m {
		cp := *v
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if desc {
			return key(out[i]).After(key(out[j]))
		}
		return key(out[i]).Before(key(out[j]))
	})
	return out
}
