package store

import (
	"sort"
	"sync"

	"student-portal/errors"
	"student-portal/models"
)

// Store owns every piece of portal state for the session lifetime: the fee
// catalog, the payment selection, the transaction history and the academic
// read models. All mutation goes through its methods; FeeItem status is only
// ever flipped by CompletePayment, which keeps the single-writer invariant
// checkable in one place. The zero value is not usable; call New.
type Store struct {
	mu sync.RWMutex

	fees         []models.FeeItem
	transactions []models.Transaction
	selection    map[string]struct{}

	attendance    map[string]map[string][]models.SubjectAttendance
	grades        map[string][]models.SubjectGrade
	semesterGPAs  []models.SemesterGPA
	cgpa          float64
	courses       []models.Course
	announcements []models.Announcement
	profile       models.StudentProfile
}

// New returns a store seeded with the demo fixtures.
func New() *Store {
	s := &Store{selection: make(map[string]struct{})}
	s.seed()
	return s
}

// Fees returns the fee catalog, optionally filtered by category.
// An empty or "all" category returns every item.
func (s *Store) Fees(category string) []models.FeeItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.FeeItem, 0, len(s.fees))
	for _, f := range s.fees {
		if category == "" || category == "all" || f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

// Fee looks up a single fee item by id.
func (s *Store) Fee(id string) (models.FeeItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.fees {
		if f.ID == id {
			return f, true
		}
	}
	return models.FeeItem{}, false
}

// Summary aggregates total, paid and pending amounts over the whole catalog.
func (s *Store) Summary() models.FeeSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum models.FeeSummary
	for _, f := range s.fees {
		sum.Total += f.Amount
		if f.Status == models.FeeStatusPaid {
			sum.Paid += f.Amount
		} else {
			sum.Pending += f.Amount
		}
	}
	return sum
}

// ToggleSelection flips membership of a fee item in the payment selection.
// Toggling a paid item is a silent no-op, so the selection can never hold an
// id whose status is paid. Unknown ids are rejected.
func (s *Store) ToggleSelection(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var item *models.FeeItem
	for i := range s.fees {
		if s.fees[i].ID == id {
			item = &s.fees[i]
			break
		}
	}
	if item == nil {
		return errors.NewNotFoundError("fee item not found: " + id)
	}
	if !item.Payable() {
		return nil
	}

	if _, ok := s.selection[id]; ok {
		delete(s.selection, id)
	} else {
		s.selection[id] = struct{}{}
	}
	return nil
}

// SelectAll sets the selection to exactly the unpaid items matching the
// category filter. If the selection already equals that full set, it clears
// instead (toggle semantics).
func (s *Store) SelectAll(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := make(map[string]struct{})
	for _, f := range s.fees {
		if !f.Payable() {
			continue
		}
		if category == "" || category == "all" || f.Category == category {
			target[f.ID] = struct{}{}
		}
	}

	if len(target) == len(s.selection) {
		same := true
		for id := range target {
			if _, ok := s.selection[id]; !ok {
				same = false
				break
			}
		}
		if same {
			s.selection = make(map[string]struct{})
			return
		}
	}
	s.selection = target
}

// Selection returns the selected fee ids in a stable order.
func (s *Store) Selection() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.selection))
	for id := range s.selection {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SelectedFees returns the fee items currently selected, in catalog order.
func (s *Store) SelectedFees() []models.FeeItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.FeeItem
	for _, f := range s.fees {
		if _, ok := s.selection[f.ID]; ok {
			out = append(out, f)
		}
	}
	return out
}

// SelectionTotal recomputes the sum of the selected amounts on every call;
// nothing is cached, so a status flip is reflected immediately.
func (s *Store) SelectionTotal() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, f := range s.fees {
		if _, ok := s.selection[f.ID]; ok && f.Payable() {
			total += f.Amount
		}
	}
	return total
}

// ClearSelection empties the payment selection.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = make(map[string]struct{})
}

// CompletePayment applies a successful payment in one step: every fee in ids
// becomes paid, the transaction is prepended to the history (most recent
// first) and the paid ids leave the selection. When clearSelection is set
// (bulk payments) the whole selection is dropped.
func (s *Store) CompletePayment(ids []string, txn models.Transaction, clearSelection bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		for i := range s.fees {
			if s.fees[i].ID == id {
				s.fees[i].Status = models.FeeStatusPaid
				break
			}
		}
		delete(s.selection, id)
	}
	if clearSelection {
		s.selection = make(map[string]struct{})
	}
	s.transactions = append([]models.Transaction{txn}, s.transactions...)
}

// Transactions returns the payment history, most recent first.
func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Transaction looks up a completed payment by its TXN reference.
func (s *Store) Transaction(txnID string) (models.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.transactions {
		if t.TransactionID == txnID {
			return t, true
		}
	}
	return models.Transaction{}, false
}

// Attendance returns the attendance report for an academic year and semester.
func (s *Store) Attendance(year, semester string) (models.AttendanceReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	semesters, ok := s.attendance[year]
	if !ok {
		return models.AttendanceReport{}, errors.NewNotFoundError("no attendance records for " + year)
	}
	subjects, ok := semesters[semester]
	if !ok {
		return models.AttendanceReport{}, errors.NewNotFoundError("no attendance records for " + year + " " + semester + " semester")
	}

	report := models.AttendanceReport{
		AcademicYear: year,
		Semester:     semester,
		Subjects:     subjects,
	}
	for _, sub := range subjects {
		report.TotalClasses += sub.Total
		report.TotalPresent += sub.Present
	}
	if report.TotalClasses > 0 {
		report.OverallPct = models.SubjectAttendance{
			Present: report.TotalPresent,
			Total:   report.TotalClasses,
		}.Percentage()
	}
	return report, nil
}

// Grades returns the subject grades for the given semester (odd or even).
func (s *Store) Grades(semester string) ([]models.SubjectGrade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grades, ok := s.grades[semester]
	if !ok {
		return nil, errors.NewNotFoundError("no grades for " + semester + " semester")
	}
	return grades, nil
}

// SemesterGPAs returns the GPA trend across completed semesters.
func (s *Store) SemesterGPAs() []models.SemesterGPA {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SemesterGPA, len(s.semesterGPAs))
	copy(out, s.semesterGPAs)
	return out
}

// OverallCGPA returns the cumulative grade point average.
func (s *Store) OverallCGPA() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cgpa
}

// Courses returns the currently enrolled courses.
func (s *Store) Courses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Course, len(s.courses))
	copy(out, s.courses)
	return out
}

// Announcements returns the dashboard notices.
func (s *Store) Announcements() []models.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Announcement, len(s.announcements))
	copy(out, s.announcements)
	return out
}

// Profile returns the student profile.
func (s *Store) Profile() models.StudentProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}
