package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/miamente/miamente-sub002/internal/domain/booking"
	"github.com/miamente/miamente-sub002/internal/httperr"
	"github.com/miamente/miamente-sub002/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

// Transaction maps the transaction-as-closure model onto gorm: fn
// receives a repository bound to the tx connection, and any error
// rolls everything back.
func (r *BookingGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *BookingGormRepository) GetProfessionalByID(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).First(&pro, id).Error; err != nil {
		return nil, notFoundOr(err, "professional_not_found", "Professional not found.")
	}
	return &pro, nil
}

func (r *BookingGormRepository) GetProfessionalByUserID(
	ctx context.Context,
	userID uint,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&pro).Error; err != nil {
		return nil, notFoundOr(err, "professional_not_found", "Professional not found.")
	}
	return &pro, nil
}

// --------------------------------------------------
// Slot
// --------------------------------------------------

func (r *BookingGormRepository) CreateSlot(
	ctx context.Context,
	slot *models.Slot,
) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *BookingGormRepository) GetSlotByID(
	ctx context.Context,
	id uint,
) (*models.Slot, error) {

	var slot models.Slot
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		return nil, notFoundOr(err, "slot_not_found", "Slot not found.")
	}
	return &slot, nil
}

func (r *BookingGormRepository) GetSlotByIDForUpdate(
	ctx context.Context,
	id uint,
) (*models.Slot, error) {

	var slot models.Slot
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&slot, id).Error; err != nil {
		return nil, notFoundOr(err, "slot_not_found", "Slot not found.")
	}
	return &slot, nil
}

func (r *BookingGormRepository) UpdateSlot(
	ctx context.Context,
	slot *models.Slot,
) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *BookingGormRepository) ListSlotsInRange(
	ctx context.Context,
	professionalID uint,
	from time.Time,
	to time.Time,
) ([]models.Slot, error) {

	var slots []models.Slot
	if err := r.db.WithContext(ctx).
		Where(
			"professional_id = ? AND start_time < ? AND end_time > ?",
			professionalID, to, from,
		).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *BookingGormRepository) ListSlots(
	ctx context.Context,
	q domain.SlotQuery,
) ([]models.Slot, error) {

	tx := r.db.WithContext(ctx).
		Where("professional_id = ?", q.ProfessionalID)

	if q.From != nil {
		tx = tx.Where("start_time >= ?", *q.From)
	}
	if q.To != nil {
		tx = tx.Where("start_time < ?", *q.To)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}

	var slots []models.Slot
	if err := tx.Order("start_time ASC").Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *BookingGormRepository) ListStaleHeldSlots(
	ctx context.Context,
	olderThan time.Time,
	limit int,
) ([]models.Slot, error) {

	tx := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", string(domain.SlotHeld), olderThan).
		Order("updated_at ASC")

	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var slots []models.Slot
	if err := tx.Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, notFoundOr(err, "appointment_not_found", "Appointment not found.")
	}
	return &ap, nil
}

func (r *BookingGormRepository) GetAppointmentByIDForUpdate(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&ap, id).Error; err != nil {
		return nil, notFoundOr(err, "appointment_not_found", "Appointment not found.")
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) ListAppointmentsBySlot(
	ctx context.Context,
	slotID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("slot_id = ?", slotID).
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *BookingGormRepository) ListAppointmentsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func notFoundOr(err error, code, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(code, message)
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
