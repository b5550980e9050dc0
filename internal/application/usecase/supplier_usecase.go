package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/restaurant-ops/internal/application/dto"
	"github.com/jhoicas/restaurant-ops/internal/domain"
	"github.com/jhoicas/restaurant-ops/internal/domain/entity"
	"github.com/jhoicas/restaurant-ops/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
	log  zerolog.Logger
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, log zerolog.Logger) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, log: log}
}

// Create registra un proveedor. El saldo puede ser negativo (crédito a favor del restaurante).
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	s, err := supplierFromRequest(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	s.ID = uuid.New().String()
	s.CreatedAt = now
	s.UpdatedAt = now
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	uc.log.Debug().Str("supplier_id", s.ID).Str("name", s.Name).Msg("proveedor creado")
	return toSupplierResponse(s), nil
}

// GetByID obtiene un proveedor. ErrNotFound si no existe.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(s), nil
}

// Update reemplaza los datos de un proveedor existente.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	s, err := supplierFromRequest(in)
	if err != nil {
		return nil, err
	}
	s.ID = current.ID
	s.CreatedAt = current.CreatedAt
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	uc.log.Debug().Str("supplier_id", s.ID).Msg("proveedor actualizado")
	return toSupplierResponse(s), nil
}

// Delete elimina un proveedor. Los ingredientes que lo referencian conservan el ID.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Debug().Str("supplier_id", id).Msg("proveedor eliminado")
	return nil
}

// List lista proveedores; search filtra por subcadena del nombre sin distinguir mayúsculas.
func (uc *SupplierUseCase) List(ctx context.Context, search string) (*dto.ListResponse[dto.SupplierResponse], error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	search = strings.ToLower(strings.TrimSpace(search))
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		if search != "" && !strings.Contains(strings.ToLower(s.Name), search) {
			continue
		}
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.ListResponse[dto.SupplierResponse]{Items: items, Total: len(items)}, nil
}

func supplierFromRequest(in dto.SupplierRequest) (*entity.Supplier, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	return &entity.Supplier{
		Name:          name,
		ContactPerson: strings.TrimSpace(in.ContactPerson),
		Phone:         strings.TrimSpace(in.Phone),
		Location:      strings.TrimSpace(in.Location),
		PaymentTerms:  strings.TrimSpace(in.PaymentTerms),
		Balance:       in.Balance,
	}, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Location:      s.Location,
		PaymentTerms:  s.PaymentTerms,
		Balance:       s.Balance,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
