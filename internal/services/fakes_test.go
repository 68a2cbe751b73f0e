package services

import (
	"context"
	"strconv"
	"time"

	"medequip-system/internal/dto"
	"medequip-system/internal/entities"
	apperrors "medequip-system/pkg/errors"
)

type fakeEquipmentRepo struct {
	equipments map[uint64]entities.Equipment
	nextID     uint64
	createErr  error
}

func newFakeEquipmentRepo(items ...entities.Equipment) *fakeEquipmentRepo {
	repo := &fakeEquipmentRepo{equipments: make(map[uint64]entities.Equipment), nextID: 1}
	for _, e := range items {
		if e.ID >= repo.nextID {
			repo.nextID = e.ID + 1
		}
		repo.equipments[e.ID] = e
	}
	return repo
}

func (r *fakeEquipmentRepo) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	var result []entities.Equipment
	for id := uint64(1); id < r.nextID; id++ {
		if e, ok := r.equipments[id]; ok {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *fakeEquipmentRepo) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	if e, ok := r.equipments[id]; ok {
		return &e, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeEquipmentRepo) FindEquipmentByBarcode(ctx context.Context, barcode string) (*entities.Equipment, error) {
	for _, e := range r.equipments {
		if e.Barcode == barcode {
			return &e, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeEquipmentRepo) FindEquipmentsByIDs(ctx context.Context, ids []uint64) (map[uint64]entities.Equipment, error) {
	result := make(map[uint64]entities.Equipment)
	for _, id := range ids {
		if e, ok := r.equipments[id]; ok {
			result[id] = e
		}
	}
	return result, nil
}

func (r *fakeEquipmentRepo) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	e := entities.Equipment{
		ID: r.nextID, Name: payload.Name, Model: payload.Model,
		Manufacturer: payload.Manufacturer, SerialNumber: payload.SerialNumber,
		Barcode: payload.Barcode, Department: payload.Department,
		Location: payload.Location, Status: payload.Status,
		Specifications: payload.Specifications, CreatedAt: time.Now(),
	}
	r.nextID++
	r.equipments[e.ID] = e
	return &e, nil
}

func (r *fakeEquipmentRepo) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	e, ok := r.equipments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if payload.Status != nil {
		e.Status = *payload.Status
	}
	if payload.Location != nil {
		e.Location = *payload.Location
	}
	r.equipments[id] = e
	return &e, nil
}

type fakeUserRepo struct {
	users     map[uint64]entities.User
	findErr   error
	createErr error
}

func newFakeUserRepo(users ...entities.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uint64]entities.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) FindUserByName(ctx context.Context, name string) (*entities.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Name == name {
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) FindUsersByIDs(ctx context.Context, ids []uint64) (map[uint64]entities.User, error) {
	result := make(map[uint64]entities.User)
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			result[id] = u
		}
	}
	return result, nil
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *user
	created.ID = uint64(len(r.users) + 1)
	r.users[created.ID] = created
	return &created, nil
}

type fakeFaultRepo struct {
	reports map[uint64]entities.FaultReport
	nextID  uint64
}

func newFakeFaultRepo(reports ...entities.FaultReport) *fakeFaultRepo {
	repo := &fakeFaultRepo{reports: make(map[uint64]entities.FaultReport), nextID: 1}
	for _, fr := range reports {
		if fr.ID >= repo.nextID {
			repo.nextID = fr.ID + 1
		}
		repo.reports[fr.ID] = fr
	}
	return repo
}

func (r *fakeFaultRepo) GetFaultReports(ctx context.Context, filter dto.FaultReportFilter) ([]entities.FaultReport, error) {
	var result []entities.FaultReport
	for id := uint64(1); id < r.nextID; id++ {
		fr, ok := r.reports[id]
		if !ok {
			continue
		}
		if filter.Status != "" && fr.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && fr.Priority != filter.Priority {
			continue
		}
		result = append(result, fr)
	}
	return result, nil
}

func (r *fakeFaultRepo) FindFaultReport(ctx context.Context, id uint64) (*entities.FaultReport, error) {
	if fr, ok := r.reports[id]; ok {
		return &fr, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeFaultRepo) CreateFaultReport(ctx context.Context, report *entities.FaultReport) (*entities.FaultReport, error) {
	created := *report
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	r.nextID++
	r.reports[created.ID] = created
	return &created, nil
}

func (r *fakeFaultRepo) UpdateFaultReport(ctx context.Context, id uint64, payload dto.UpdateFaultReportDTO, resolvedAt *time.Time) (*entities.FaultReport, error) {
	fr, ok := r.reports[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if payload.Status != nil {
		fr.Status = *payload.Status
	}
	if payload.AssignedTo != nil {
		fr.AssignedTo.SetValid(*payload.AssignedTo)
	}
	if payload.ResolutionNotes != nil {
		fr.ResolutionNotes.SetValid(*payload.ResolutionNotes)
	}
	if resolvedAt != nil {
		fr.ResolvedAt = resolvedAt
	}
	r.reports[id] = fr
	return &fr, nil
}

type fakeMaintenanceRepo struct {
	records map[uint64]entities.MaintenanceRecord
	nextID  uint64
}

func newFakeMaintenanceRepo(records ...entities.MaintenanceRecord) *fakeMaintenanceRepo {
	repo := &fakeMaintenanceRepo{records: make(map[uint64]entities.MaintenanceRecord), nextID: 1}
	for _, m := range records {
		if m.ID >= repo.nextID {
			repo.nextID = m.ID + 1
		}
		repo.records[m.ID] = m
	}
	return repo
}

func (r *fakeMaintenanceRepo) GetMaintenanceRecords(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceRecord, error) {
	var result []entities.MaintenanceRecord
	for id := uint64(1); id < r.nextID; id++ {
		m, ok := r.records[id]
		if !ok {
			continue
		}
		if equipmentID != 0 && m.EquipmentID != equipmentID {
			continue
		}
		result = append(result, m)
	}
	return result, nil
}

func (r *fakeMaintenanceRepo) FindMaintenanceRecord(ctx context.Context, id uint64) (*entities.MaintenanceRecord, error) {
	if m, ok := r.records[id]; ok {
		return &m, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeMaintenanceRepo) CreateMaintenanceRecord(ctx context.Context, payload dto.CreateMaintenanceRecordDTO, status string) (*entities.MaintenanceRecord, error) {
	m := entities.MaintenanceRecord{
		ID: r.nextID, EquipmentID: payload.EquipmentID, TechnicianID: payload.TechnicianID,
		Type: payload.Type, Description: payload.Description, PartsReplaced: payload.PartsReplaced,
		StartDate: payload.StartDate, CompletionDate: payload.CompletionDate,
		Status: status, CreatedAt: time.Now(),
	}
	if payload.Cost != nil {
		m.Cost.SetValid(*payload.Cost)
	}
	if payload.Notes != nil {
		m.Notes.SetValid(*payload.Notes)
	}
	r.nextID++
	r.records[m.ID] = m
	return &m, nil
}

func (r *fakeMaintenanceRepo) UpdateMaintenanceRecord(ctx context.Context, id uint64, payload dto.UpdateMaintenanceRecordDTO) (*entities.MaintenanceRecord, error) {
	m, ok := r.records[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if payload.Status != nil {
		m.Status = *payload.Status
	}
	if payload.CompletionDate != nil {
		m.CompletionDate = payload.CompletionDate
	}
	r.records[id] = m
	return &m, nil
}

type fakeCheckRepo struct {
	checks []entities.DailyCheck
	nextID uint64
}

func newFakeCheckRepo(checks ...entities.DailyCheck) *fakeCheckRepo {
	return &fakeCheckRepo{checks: checks, nextID: uint64(len(checks) + 1)}
}

func (r *fakeCheckRepo) GetChecks(ctx context.Context) ([]entities.DailyCheck, error) {
	result := make([]entities.DailyCheck, len(r.checks))
	copy(result, r.checks)
	return result, nil
}

func (r *fakeCheckRepo) GetChecksForDay(ctx context.Context, dayStart, dayEnd time.Time) ([]entities.DailyCheck, error) {
	var result []entities.DailyCheck
	for _, c := range r.checks {
		if !c.CreatedAt.Before(dayStart) && c.CreatedAt.Before(dayEnd) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *fakeCheckRepo) CreateDailyCheck(ctx context.Context, payload dto.CreateDailyCheckDTO) (*entities.DailyCheck, error) {
	c := entities.DailyCheck{
		ID: r.nextID, EquipmentID: payload.EquipmentID, TechnicianID: payload.TechnicianID,
		CheckDate: payload.CheckDate, Status: payload.Status, CreatedAt: time.Now(),
	}
	if payload.Notes != nil {
		c.Notes.SetValid(*payload.Notes)
	}
	r.nextID++
	r.checks = append(r.checks, c)
	return &c, nil
}

type fakeCacheRepo struct {
	values   map[string]string
	counters map[string]int64
	getErr   error
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{values: make(map[string]string), counters: make(map[string]int64)}
}

func (r *fakeCacheRepo) Get(ctx context.Context, key string) (string, error) {
	if r.getErr != nil {
		return "", r.getErr
	}
	if count, ok := r.counters[key]; ok {
		return strconv.FormatInt(count, 10), nil
	}
	if value, ok := r.values[key]; ok {
		return value, nil
	}
	return "", apperrors.ErrNotFound
}

func (r *fakeCacheRepo) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	r.values[key] = value
	return nil
}

func (r *fakeCacheRepo) Delete(ctx context.Context, key string) error {
	delete(r.values, key)
	delete(r.counters, key)
	return nil
}

func (r *fakeCacheRepo) Increment(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	r.counters[key]++
	return r.counters[key], nil
}

type fakeSyncRepo struct {
	records []entities.DriveSync
	nextID  uint64
}

func newFakeSyncRepo() *fakeSyncRepo {
	return &fakeSyncRepo{nextID: 1}
}

func (r *fakeSyncRepo) GetSyncHistory(ctx context.Context, limit int) ([]entities.DriveSync, error) {
	var result []entities.DriveSync
	for i := len(r.records) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, r.records[i])
	}
	return result, nil
}

func (r *fakeSyncRepo) FindLatestByType(ctx context.Context, syncType string) (*entities.DriveSync, error) {
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].SyncType == syncType {
			record := r.records[i]
			return &record, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeSyncRepo) CreateSyncRecord(ctx context.Context, sync *entities.DriveSync) (*entities.DriveSync, error) {
	created := *sync
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	r.nextID++
	r.records = append(r.records, created)
	return &created, nil
}
