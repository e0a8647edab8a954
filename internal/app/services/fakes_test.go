package services

import (
	"context"

	"github.com/merdan/studentinfo/internal/app/models"
	"github.com/merdan/studentinfo/internal/app/repositories"
	"github.com/merdan/studentinfo/internal/pkg/apperrors"
	"github.com/merdan/studentinfo/internal/pkg/slug"
)

// fakeReferenceStore is an in-memory referenceStore.
type fakeReferenceStore struct {
	kind     models.ReferenceKind
	notFound error
	records  map[string]*models.Reference
	nextID   int64

	createErr error
}

func newFakeReferenceStore(kind models.ReferenceKind, notFound error) *fakeReferenceStore {
	return &fakeReferenceStore{
		kind:     kind,
		notFound: notFound,
		records:  map[string]*models.Reference{},
	}
}

func (f *fakeReferenceStore) add(slugVal, title string) *models.Reference {
	f.nextID++
	ref := &models.Reference{Base: models.Base{ID: f.nextID, Slug: slugVal, IsActive: true}, Title: title}
	f.records[slugVal] = ref
	return ref
}

func (f *fakeReferenceStore) Kind() models.ReferenceKind { return f.kind }

func (f *fakeReferenceStore) Create(ctx context.Context, ref *models.Reference) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	if ref.Slug == "" {
		ref.Slug = slug.New()
	}
	f.nextID++
	ref.ID = f.nextID
	ref.IsActive = true
	stored := *ref
	f.records[ref.Slug] = &stored
	return ref.ID, nil
}

func (f *fakeReferenceStore) GetBySlug(ctx context.Context, slugVal string) (*models.Reference, error) {
	ref, ok := f.records[slugVal]
	if !ok {
		return nil, f.notFound
	}
	copied := *ref
	return &copied, nil
}

func (f *fakeReferenceStore) ListActive(ctx context.Context) ([]models.Reference, error) {
	records := []models.Reference{}
	for _, ref := range f.records {
		if ref.IsActive {
			records = append(records, *ref)
		}
	}
	return records, nil
}

func (f *fakeReferenceStore) List(ctx context.Context, filter repositories.ReferenceFilter) ([]models.Reference, error) {
	records := []models.Reference{}
	for _, ref := range f.records {
		if filter.IsActive != nil && ref.IsActive != *filter.IsActive {
			continue
		}
		records = append(records, *ref)
	}
	return records, nil
}

func (f *fakeReferenceStore) UpdateTitle(ctx context.Context, slugVal, title string) error {
	ref, ok := f.records[slugVal]
	if !ok {
		return f.notFound
	}
	ref.Title = title
	return nil
}

func (f *fakeReferenceStore) SetActive(ctx context.Context, slugVal string, active bool) error {
	ref, ok := f.records[slugVal]
	if !ok {
		return f.notFound
	}
	ref.IsActive = active
	return nil
}

func (f *fakeReferenceStore) Delete(ctx context.Context, slugVal string) error {
	if _, ok := f.records[slugVal]; !ok {
		return f.notFound
	}
	delete(f.records, slugVal)
	return nil
}

// fakeStudentStore is an in-memory studentStore recording list calls.
type fakeStudentStore struct {
	students map[string]*models.Student
	nextID   int64

	createErr error
	total     int64

	lastFilter repositories.StudentFilter
	lastLimit  int
	lastOffset uint64
	lastUpdate *models.Student
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: map[string]*models.Student{}}
}

func (f *fakeStudentStore) add(s models.Student) *models.Student {
	f.nextID++
	s.ID = f.nextID
	f.students[s.Slug] = &s
	return &s
}

func (f *fakeStudentStore) List(ctx context.Context, filter repositories.StudentFilter, limit int, offset uint64) ([]models.Student, error) {
	f.lastFilter = filter
	f.lastLimit = limit
	f.lastOffset = offset

	students := []models.Student{}
	for _, s := range f.students {
		if s.IsActive {
			students = append(students, *s)
		}
	}
	return students, nil
}

func (f *fakeStudentStore) Count(ctx context.Context, filter repositories.StudentFilter) (int64, error) {
	return f.total, nil
}

func (f *fakeStudentStore) GetBySlug(ctx context.Context, slugVal string) (*models.Student, error) {
	s, ok := f.students[slugVal]
	if !ok || !s.IsActive {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeStudentStore) AdminGetBySlug(ctx context.Context, slugVal string) (*models.Student, error) {
	s, ok := f.students[slugVal]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeStudentStore) AdminList(ctx context.Context, filter repositories.AdminStudentFilter) ([]models.Student, error) {
	students := []models.Student{}
	for _, s := range f.students {
		students = append(students, *s)
	}
	return students, nil
}

func (f *fakeStudentStore) Create(ctx context.Context, student *models.Student) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	if student.Slug == "" {
		student.Slug = slug.New()
	}
	f.nextID++
	student.ID = f.nextID
	student.IsActive = true
	stored := *student
	f.students[student.Slug] = &stored
	return student.ID, nil
}

func (f *fakeStudentStore) Update(ctx context.Context, student *models.Student) error {
	current, ok := f.students[student.Slug]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.ID = current.ID
	student.IsActive = current.IsActive
	stored := *student
	f.students[student.Slug] = &stored
	f.lastUpdate = &stored
	return nil
}

func (f *fakeStudentStore) SetActive(ctx context.Context, slugVal string, active bool) error {
	s, ok := f.students[slugVal]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	s.IsActive = active
	return nil
}

func (f *fakeStudentStore) Delete(ctx context.Context, slugVal string) error {
	if _, ok := f.students[slugVal]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, slugVal)
	return nil
}

// fakeStudentResolver resolves student slugs for the mark service.
type fakeStudentResolver struct {
	ids map[string]int64
}

func (f *fakeStudentResolver) IDBySlug(ctx context.Context, slugVal string) (int64, error) {
	id, ok := f.ids[slugVal]
	if !ok {
		return 0, apperrors.ErrStudentNotFound
	}
	return id, nil
}

// fakeMarkStore is an in-memory markStore.
type fakeMarkStore struct {
	marks  map[string]*models.Mark
	nextID int64

	createErr error
}

func newFakeMarkStore() *fakeMarkStore {
	return &fakeMarkStore{marks: map[string]*models.Mark{}}
}

func (f *fakeMarkStore) List(ctx context.Context, filter repositories.MarkFilter) ([]models.Mark, error) {
	marks := []models.Mark{}
	for _, m := range f.marks {
		if m.IsActive {
			marks = append(marks, *m)
		}
	}
	return marks, nil
}

func (f *fakeMarkStore) AdminList(ctx context.Context, filter repositories.AdminMarkFilter) ([]models.Mark, error) {
	marks := []models.Mark{}
	for _, m := range f.marks {
		marks = append(marks, *m)
	}
	return marks, nil
}

func (f *fakeMarkStore) GetBySlug(ctx context.Context, slugVal string) (*models.Mark, error) {
	m, ok := f.marks[slugVal]
	if !ok {
		return nil, apperrors.ErrMarkNotFound
	}
	copied := *m
	return &copied, nil
}

func (f *fakeMarkStore) Create(ctx context.Context, mark *models.Mark) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	if mark.Slug == "" {
		mark.Slug = slug.New()
	}
	f.nextID++
	mark.ID = f.nextID
	mark.IsActive = true
	stored := *mark
	f.marks[mark.Slug] = &stored
	return mark.ID, nil
}

func (f *fakeMarkStore) Update(ctx context.Context, slugVal string, markType models.MarkType, mark models.MarkValue) error {
	m, ok := f.marks[slugVal]
	if !ok {
		return apperrors.ErrMarkNotFound
	}
	m.MarkType = markType
	m.Mark = mark
	return nil
}

func (f *fakeMarkStore) SetActive(ctx context.Context, slugVal string, active bool) error {
	m, ok := f.marks[slugVal]
	if !ok {
		return apperrors.ErrMarkNotFound
	}
	m.IsActive = active
	return nil
}

func (f *fakeMarkStore) Delete(ctx context.Context, slugVal string) error {
	if _, ok := f.marks[slugVal]; !ok {
		return apperrors.ErrMarkNotFound
	}
	delete(f.marks, slugVal)
	return nil
}
