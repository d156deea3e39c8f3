package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/folyotek/folyo-erp/internal/application/dto"
	"github.com/folyotek/folyo-erp/internal/domain"
	"github.com/folyotek/folyo-erp/internal/domain/entity"
	"github.com/folyotek/folyo-erp/internal/domain/manufacturing"
	"github.com/folyotek/folyo-erp/internal/domain/repository"
	"github.com/folyotek/folyo-erp/pkg/logger"
	"github.com/folyotek/folyo-erp/pkg/metrics"
)

// ManufacturingUseCase creates, updates and deletes production run records
// and posts the automatic spool/gas consumption tied to each run.
type ManufacturingUseCase struct {
	recordRepo      repository.ManufacturingRepository
	materialRepo    repository.MaterialRepository
	consumptionRepo repository.ConsumptionRepository
	log             *logger.Logger
}

// NewManufacturingUseCase builds the use case.
func NewManufacturingUseCase(
	recordRepo repository.ManufacturingRepository,
	materialRepo repository.MaterialRepository,
	consumptionRepo repository.ConsumptionRepository,
	log *logger.Logger,
) *ManufacturingUseCase {
	return &ManufacturingUseCase{
		recordRepo:      recordRepo,
		materialRepo:    materialRepo,
		consumptionRepo: consumptionRepo,
		log:             log,
	}
}

// Create persists a production run with derived square meters, model label
// and color-name snapshot, then posts the auto-consumption side effects:
//
//  1. spool stock, when the spool type is not the "Masura Yok" sentinel —
//     the raw material whose name equals the spool label;
//  2. gas stock — the raw material with the reserved code GAZ001.
//
// Both postings are best-effort: a missing material or insufficient stock
// skips the posting (logged and counted, never surfaced to the caller), and
// no side-effect failure rolls back the record. The authoritative production
// record always wins over the auxiliary bookkeeping.
func (uc *ManufacturingUseCase) Create(ctx context.Context, in dto.ManufacturingInput, actor string) (*dto.ManufacturingResponse, error) {
	if err := validateManufacturingInput(in); err != nil {
		return nil, err
	}
	colorName, err := uc.resolveColorName(ctx, in.ColorMaterialID)
	if err != nil {
		return nil, err
	}

	r := &entity.ManufacturingRecord{
		ID:               uuid.New().String(),
		ProductionDate:   in.ProductionDate,
		Machine:          in.Machine,
		ThicknessMM:      in.ThicknessMM,
		WidthCM:          in.WidthCM,
		LengthM:          in.LengthM,
		Quantity:         in.Quantity,
		SquareMeters:     manufacturing.SquareMeters(in.WidthCM, in.LengthM, in.Quantity),
		MasuraType:       in.MasuraType,
		MasuraQuantity:   in.MasuraQuantity,
		ColorMaterialID:  in.ColorMaterialID,
		ColorName:        colorName,
		Model:            manufacturing.ModelLabel(in.ThicknessMM, in.WidthCM, in.LengthM),
		GasConsumptionKG: in.GasConsumptionKG,
		CreatedBy:        actor,
		CreatedAt:        time.Now().UTC(),
	}
	if err := uc.recordRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	// Side effects run after the record is durable and never fail the call.
	if r.MasuraType != entity.MasuraNone && r.MasuraQuantity > 0 {
		uc.postAutoConsumption(ctx, r.ID, actor, func(ctx context.Context) (*entity.RawMaterial, error) {
			return uc.materialRepo.GetByName(ctx, r.MasuraType)
		}, decimal.NewFromInt(int64(r.MasuraQuantity)), r.MasuraType)
	}
	if r.GasConsumptionKG.IsPositive() {
		uc.postAutoConsumption(ctx, r.ID, actor, func(ctx context.Context) (*entity.RawMaterial, error) {
			return uc.materialRepo.GetByCode(ctx, entity.GasMaterialCode)
		}, r.GasConsumptionKG, entity.GasMaterialCode)
	}

	return toManufacturingResponse(r), nil
}

// postAutoConsumption decrements the auxiliary material (conditional, only
// when stock covers the quantity) and appends the consumption event carrying
// the run's id as production reference. Skips are deliberate policy, not
// errors; they are logged as structured warnings and counted so operators can
// see them.
func (uc *ManufacturingUseCase) postAutoConsumption(
	ctx context.Context,
	recordID, actor string,
	lookup func(context.Context) (*entity.RawMaterial, error),
	quantity decimal.Decimal,
	label string,
) {
	material, err := lookup(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Str("material", label).Str("record_id", recordID).
			Msg("auto-consumption lookup failed, skipping")
		metrics.AutoConsumptionSkipped.WithLabelValues(label, "lookup_error").Inc()
		return
	}
	if material == nil {
		uc.log.Warn().Str("material", label).Str("record_id", recordID).
			Msg("auto-consumption material not found, skipping")
		metrics.AutoConsumptionSkipped.WithLabelValues(label, "missing").Inc()
		return
	}
	ok, err := uc.materialRepo.ConsumeStock(ctx, material.ID, quantity)
	if err != nil {
		uc.log.Warn().Err(err).Str("material", label).Str("record_id", recordID).
			Msg("auto-consumption decrement failed, skipping")
		metrics.AutoConsumptionSkipped.WithLabelValues(label, "error").Inc()
		return
	}
	if !ok {
		uc.log.Warn().Str("material", label).Str("record_id", recordID).
			Str("quantity", quantity.String()).
			Msg("auto-consumption skipped: insufficient stock")
		metrics.AutoConsumptionSkipped.WithLabelValues(label, "insufficient_stock").Inc()
		return
	}
	c := &entity.Consumption{
		ID:              uuid.New().String(),
		ProductionRefID: recordID,
		MaterialID:      material.ID,
		MaterialName:    material.Name,
		Quantity:        quantity,
		CreatedBy:       actor,
		CreatedAt:       time.Now().UTC(),
	}
	if err := uc.consumptionRepo.Create(ctx, c); err != nil {
		// Stock is already decremented; the event is the best-effort part.
		uc.log.Warn().Err(err).Str("material", label).Str("record_id", recordID).
			Msg("auto-consumption event insert failed")
	}
}

// Update recomputes the derived fields and overwrites the stored record. It
// does NOT re-run or reverse the auto-consumption posted at creation:
// editing spool or gas quantities after the fact leaves the original
// consumption events as they were.
func (uc *ManufacturingUseCase) Update(ctx context.Context, id string, in dto.ManufacturingInput) (*dto.ManufacturingResponse, error) {
	if err := validateManufacturingInput(in); err != nil {
		return nil, err
	}
	existing, err := uc.recordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	colorName, err := uc.resolveColorName(ctx, in.ColorMaterialID)
	if err != nil {
		return nil, err
	}

	existing.ProductionDate = in.ProductionDate
	existing.Machine = in.Machine
	existing.ThicknessMM = in.ThicknessMM
	existing.WidthCM = in.WidthCM
	existing.LengthM = in.LengthM
	existing.Quantity = in.Quantity
	existing.SquareMeters = manufacturing.SquareMeters(in.WidthCM, in.LengthM, in.Quantity)
	existing.MasuraType = in.MasuraType
	existing.MasuraQuantity = in.MasuraQuantity
	existing.ColorMaterialID = in.ColorMaterialID
	existing.ColorName = colorName
	existing.Model = manufacturing.ModelLabel(in.ThicknessMM, in.WidthCM, in.LengthM)
	existing.GasConsumptionKG = in.GasConsumptionKG

	if err := uc.recordRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return toManufacturingResponse(existing), nil
}

// Delete removes the record only. Consumption events and stock decrements
// posted at creation are not reversed.
func (uc *ManufacturingUseCase) Delete(ctx context.Context, id string) error {
	return uc.recordRepo.Delete(ctx, id)
}

// List returns records, newest production date first.
func (uc *ManufacturingUseCase) List(ctx context.Context, limit int) ([]dto.ManufacturingResponse, error) {
	records, err := uc.recordRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ManufacturingResponse, 0, len(records))
	for _, r := range records {
		out = append(out, *toManufacturingResponse(r))
	}
	return out, nil
}

// resolveColorName snapshots the color material's name. An empty reference
// yields no color; a dangling reference is tolerated (no color) to match the
// write path's lenient lookup.
func (uc *ManufacturingUseCase) resolveColorName(ctx context.Context, colorMaterialID string) (string, error) {
	if colorMaterialID == "" {
		return "", nil
	}
	material, err := uc.materialRepo.GetByID(ctx, colorMaterialID)
	if err != nil {
		return "", err
	}
	if material == nil {
		return "", nil
	}
	return material.Name, nil
}

func validateManufacturingInput(in dto.ManufacturingInput) error {
	if !entity.ValidMachine(in.Machine) {
		return domain.ErrInvalidInput
	}
	if !entity.ValidMasuraType(in.MasuraType) {
		return domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || !in.WidthCM.IsPositive() || !in.LengthM.IsPositive() || !in.ThicknessMM.IsPositive() {
		return domain.ErrInvalidInput
	}
	if in.MasuraQuantity < 0 || in.GasConsumptionKG.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

func toManufacturingResponse(r *entity.ManufacturingRecord) *dto.ManufacturingResponse {
	return &dto.ManufacturingResponse{
		ID:               r.ID,
		ProductionDate:   r.ProductionDate,
		Machine:          r.Machine,
		ThicknessMM:      r.ThicknessMM,
		WidthCM:          r.WidthCM,
		LengthM:          r.LengthM,
		Quantity:         r.Quantity,
		SquareMeters:     r.SquareMeters,
		MasuraType:       r.MasuraType,
		MasuraQuantity:   r.MasuraQuantity,
		ColorMaterialID:  r.ColorMaterialID,
		ColorName:        r.ColorName,
		Model:            r.Model,
		GasConsumptionKG: r.GasConsumptionKG,
		CreatedBy:        r.CreatedBy,
		CreatedAt:        r.CreatedAt,
	}
}
