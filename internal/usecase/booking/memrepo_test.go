package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/miamente/miamente-sub002/internal/domain/booking"
	"github.com/miamente/miamente-sub002/internal/httperr"
	"github.com/miamente/miamente-sub002/internal/models"
)

// memRepo is an in-memory Repository used by the use-case tests. A
// single mutex serializes transactions, which models the store-level
// isolation the booking core relies on; failed transactions restore a
// snapshot so partial writes never leak out.
type memRepo struct {
	mu sync.Mutex

	professionals map[uint]*models.Professional
	slots         map[uint]*models.Slot
	appointments  map[uint]*models.Appointment

	nextProfessionalID uint
	nextSlotID         uint
	nextAppointmentID  uint
}

func newMemRepo() *memRepo {
	return &memRepo{
		professionals: make(map[uint]*models.Professional),
		slots:         make(map[uint]*models.Slot),
		appointments:  make(map[uint]*models.Appointment),
	}
}

func (r *memRepo) addProfessional(pro models.Professional) *models.Professional {
	r.mu.Lock()
	defer r.mu.Unlock()

	if pro.ID == 0 {
		r.nextProfessionalID++
		pro.ID = r.nextProfessionalID
	}
	cp := pro
	r.professionals[cp.ID] = &cp
	return &cp
}

func (r *memRepo) addSlot(slot models.Slot) *models.Slot {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slot.ID == 0 {
		r.nextSlotID++
		slot.ID = r.nextSlotID
	}
	cp := slot
	r.slots[cp.ID] = &cp
	return &cp
}

func (r *memRepo) slot(id uint) models.Slot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return *r.slots[id]
}

func (r *memRepo) appointment(id uint) models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return *r.appointments[id]
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

type snapshot struct {
	slots        map[uint]*models.Slot
	appointments map[uint]*models.Appointment
}

func (r *memRepo) take() snapshot {
	s := snapshot{
		slots:        make(map[uint]*models.Slot, len(r.slots)),
		appointments: make(map[uint]*models.Appointment, len(r.appointments)),
	}
	for id, v := range r.slots {
		cp := *v
		s.slots[id] = &cp
	}
	for id, v := range r.appointments {
		cp := *v
		s.appointments[id] = &cp
	}
	return s
}

func (r *memRepo) Transaction(ctx context.Context, fn func(tx domain.Repository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := r.take()
	if err := fn(&memTx{r}); err != nil {
		r.slots = snap.slots
		r.appointments = snap.appointments
		return err
	}
	return nil
}

// memTx is the view handed to a transaction body: same store, lock
// already held.
type memTx struct {
	r *memRepo
}

func (t *memTx) Transaction(ctx context.Context, fn func(tx domain.Repository) error) error {
	return fn(t)
}

// --------------------------------------------------
// Reads / writes (lock held by Transaction or taken here)
// --------------------------------------------------

func (r *memRepo) GetProfessionalByID(ctx context.Context, id uint) (*models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return getProfessional(r, id)
}

func (t *memTx) GetProfessionalByID(ctx context.Context, id uint) (*models.Professional, error) {
	return getProfessional(t.r, id)
}

func getProfessional(r *memRepo, id uint) (*models.Professional, error) {
	pro, ok := r.professionals[id]
	if !ok {
		return nil, httperr.ErrNotFound("professional_not_found", "Professional not found.")
	}
	cp := *pro
	return &cp, nil
}

func (r *memRepo) GetProfessionalByUserID(ctx context.Context, userID uint) (*models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return getProfessionalByUser(r, userID)
}

func (t *memTx) GetProfessionalByUserID(ctx context.Context, userID uint) (*models.Professional, error) {
	return getProfessionalByUser(t.r, userID)
}

func getProfessionalByUser(r *memRepo, userID uint) (*models.Professional, error) {
	for _, pro := range r.professionals {
		if pro.UserID == userID {
			cp := *pro
			return &cp, nil
		}
	}
	return nil, httperr.ErrNotFound("professional_not_found", "Professional not found.")
}

func (r *memRepo) CreateSlot(ctx context.Context, slot *models.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return createSlot(r, slot)
}

func (t *memTx) CreateSlot(ctx context.Context, slot *models.Slot) error {
	return createSlot(t.r, slot)
}

func createSlot(r *memRepo, slot *models.Slot) error {
	r.nextSlotID++
	slot.ID = r.nextSlotID
	now := time.Now()
	if slot.CreatedAt.IsZero() {
		slot.CreatedAt = now
	}
	if slot.UpdatedAt.IsZero() {
		slot.UpdatedAt = now
	}
	cp := *slot
	r.slots[cp.ID] = &cp
	return nil
}

func (r *memRepo) GetSlotByID(ctx context.Context, id uint) (*models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return getSlot(r, id)
}

func (t *memTx) GetSlotByID(ctx context.Context, id uint) (*models.Slot, error) {
	return getSlot(t.r, id)
}

func (r *memRepo) GetSlotByIDForUpdate(ctx context.Context, id uint) (*models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return getSlot(r, id)
}

func (t *memTx) GetSlotByIDForUpdate(ctx context.Context, id uint) (*models.Slot, error) {
	return getSlot(t.r, id)
}

func getSlot(r *memRepo, id uint) (*models.Slot, error) {
	slot, ok := r.slots[id]
	if !ok {
		return nil, httperr.ErrNotFound("slot_not_found", "Slot not found.")
	}
	cp := *slot
	return &cp, nil
}

func (r *memRepo) UpdateSlot(ctx context.Context, slot *models.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return updateSlot(r, slot)
}

func (t *memTx) UpdateSlot(ctx context.Context, slot *models.Slot) error {
	return updateSlot(t.r, slot)
}

func updateSlot(r *memRepo, slot *models.Slot) error {
	cp := *slot
	r.slots[cp.ID] = &cp
	return nil
}

func (r *memRepo) ListSlotsInRange(ctx context.Context, professionalID uint, from, to time.Time) ([]models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return listSlotsInRange(r, professionalID, from, to)
}

func (t *memTx) ListSlotsInRange(ctx context.Context, professionalID uint, from, to time.Time) ([]models.Slot, error) {
	return listSlotsInRange(t.r, professionalID, from, to)
}

func listSlotsInRange(r *memRepo, professionalID uint, from, to time.Time) ([]models.Slot, error) {
	var out []models.Slot
	for _, s := range r.slots {
		if s.ProfessionalID == professionalID && s.StartTime.Before(to) && s.EndTime.After(from) {
			out = append(out, *s)
		}
	}
	sortSlots(out)
	return out, nil
}

func (r *memRepo) ListSlots(ctx context.Context, q domain.SlotQuery) ([]models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return listSlots(r, q)
}

func (t *memTx) ListSlots(ctx context.Context, q domain.SlotQuery) ([]models.Slot, error) {
	return listSlots(t.r, q)
}

func listSlots(r *memRepo, q domain.SlotQuery) ([]models.Slot, error) {
	var out []models.Slot
	for _, s := range r.slots {
		if s.ProfessionalID != q.ProfessionalID {
			continue
		}
		if q.From != nil && s.StartTime.Before(*q.From) {
			continue
		}
		if q.To != nil && !s.StartTime.Before(*q.To) {
			continue
		}
		if q.Status != "" && s.Status != q.Status {
			continue
		}
		out = append(out, *s)
	}
	sortSlots(out)
	return out, nil
}

func (r *memRepo) ListStaleHeldSlots(ctx context.Context, olderThan time.Time, limit int) ([]models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return listStaleHeldSlots(r, olderThan, limit)
}

func (t *memTx) ListStaleHeldSlots(ctx context.Context, olderThan time.Time, limit int) ([]models.Slot, error) {
	return listStaleHeldSlots(t.r, olderThan, limit)
}

func listStaleHeldSlots(r *memRepo, olderThan time.Time, limit int) ([]models.Slot, error) {
	var out []models.Slot
	for _, s := range r.slots {
		if s.Status == string(domain.SlotHeld) && s.UpdatedAt.Before(olderThan) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.Before(out[j].UpdatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return createAppointment(r, ap)
}

func (t *memTx) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return createAppointment(t.r, ap)
}

func createAppointment(r *memRepo, ap *models.Appointment) error {
	r.nextAppointmentID++
	ap.ID = r.nextAppointmentID
	cp := *ap
	r.appointments[cp.ID] = &cp
	return nil
}

func (r *memRepo) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return getAppointment(r, id)
}

func (t *memTx) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	return getAppointment(t.r, id)
}

func (r *memRepo) GetAppointmentByIDForUpdate(ctx context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return getAppointment(r, id)
}

func (t *memTx) GetAppointmentByIDForUpdate(ctx context.Context, id uint) (*models.Appointment, error) {
	return getAppointment(t.r, id)
}

func getAppointment(r *memRepo, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
	}
	cp := *ap
	return &cp, nil
}

func (r *memRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return updateAppointment(r, ap)
}

func (t *memTx) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return updateAppointment(t.r, ap)
}

func updateAppointment(r *memRepo, ap *models.Appointment) error {
	cp := *ap
	r.appointments[cp.ID] = &cp
	return nil
}

func (r *memRepo) ListAppointmentsBySlot(ctx context.Context, slotID uint) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return listAppointmentsBySlot(r, slotID)
}

func (t *memTx) ListAppointmentsBySlot(ctx context.Context, slotID uint) ([]models.Appointment, error) {
	return listAppointmentsBySlot(t.r, slotID)
}

func listAppointmentsBySlot(r *memRepo, slotID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.SlotID == slotID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *memRepo) ListAppointmentsForUser(ctx context.Context, userID uint) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return listAppointmentsForUser(r, userID)
}

func (t *memTx) ListAppointmentsForUser(ctx context.Context, userID uint) ([]models.Appointment, error) {
	return listAppointmentsForUser(t.r, userID)
}

func listAppointmentsForUser(r *memRepo, userID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.UserID == userID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func sortSlots(slots []models.Slot) {
	sort.Slice(slots, func(i, j int) bool { return slots[i].StartTime.Before(slots[j].StartTime) })
}

var (
	_ domain.Repository = (*memRepo)(nil)
	_ domain.Repository = (*memTx)(nil)
)
