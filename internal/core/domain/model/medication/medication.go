package medication

import (
	"errors"
	"fmt"
	"math"
	"regexp"

	"medidrone/internal/pkg/errs"
	"medidrone/internal/pkg/guard"
)

var (
	// ErrMedicationIsNotConstructed is returned by Validate on a zero value Medication.
	ErrMedicationIsNotConstructed = errors.New(
		"Medication must be created via NewMedication or RestoreMedication constructor",
	)

	namePattern = regexp.MustCompile(`^[\w_-]+$`)
	codePattern = regexp.MustCompile(`^[A-Z_0-9]+$`)
)

// Medication is a payload item that can be attached to a drone.
//
// Invariants:
//   - name matches ^[\w_-]+$
//   - code matches ^[A-Z_0-9]+$
//   - weight is finite and not negative
//   - droneID is nil while the medication is unassigned
type Medication struct {
	id      int64
	name    string
	weight  float64
	code    string
	image   *string
	droneID *int64

	guard guard.ConstructorGuard
}

// NewMedication creates an unassigned medication that has not been persisted yet (ID() == 0).
// All field errors are reported together.
func NewMedication(name string, weight float64, code string, image *string) (*Medication, error) {
	m := &Medication{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		m.SetName(name),
		m.SetWeight(weight),
		m.SetCode(code),
	); err != nil {
		return nil, err
	}
	m.image = cloneString(image)

	return m, nil
}

// RestoreMedication rebuilds a persisted medication.
func RestoreMedication(
	id int64,
	name string,
	weight float64,
	code string,
	image *string,
	droneID *int64,
) (*Medication, error) {
	if id <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("id", id, 1, math.MaxInt64)
	}

	m, err := NewMedication(name, weight, code, image)
	if err != nil {
		return nil, err
	}
	m.id = id
	if droneID != nil {
		if err = m.AssignToDrone(*droneID); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Medication) Validate() error {
	if m == nil {
		return ErrMedicationIsNotConstructed
	}
	return m.guard.Validate(ErrMedicationIsNotConstructed)
}

func (m *Medication) ID() int64 {
	return m.id
}

func (m *Medication) Name() string {
	return m.name
}

func (m *Medication) Weight() float64 {
	return m.weight
}

func (m *Medication) Code() string {
	return m.code
}

// Image returns the stored image URL, nil when the medication has none.
func (m *Medication) Image() *string {
	return cloneString(m.image)
}

// DroneID returns the owning drone id, nil when unassigned.
func (m *Medication) DroneID() *int64 {
	if m.droneID == nil {
		return nil
	}
	id := *m.droneID
	return &id
}

// IsValidName reports whether name matches the medication name format.
func IsValidName(name string) bool {
	return namePattern.MatchString(name)
}

// IsValidCode reports whether code matches the medication code format.
func IsValidCode(code string) bool {
	return codePattern.MatchString(code)
}

// IsAssignedTo reports whether the medication currently belongs to droneID.
func (m *Medication) IsAssignedTo(droneID int64) bool {
	return m.droneID != nil && *m.droneID == droneID
}

func (m *Medication) SetName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if !namePattern.MatchString(name) {
		return errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("%q must match %s", name, namePattern))
	}
	m.name = name
	return nil
}

func (m *Medication) SetWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return errs.NewValueIsOutOfRangeError("weight", weight, 0, math.Inf(1))
	}
	m.weight = weight
	return nil
}

func (m *Medication) SetCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	if !codePattern.MatchString(code) {
		return errs.NewValueIsInvalidErrorWithCause("code", fmt.Errorf("%q must match %s", code, codePattern))
	}
	m.code = code
	return nil
}

// ReplaceImage stores url as the new image and returns the previous one so the caller can
// delete the superseded file once the change is committed.
func (m *Medication) ReplaceImage(url string) (*string, error) {
	if url == "" {
		return nil, errs.NewValueIsRequiredError("image")
	}
	previous := m.image
	m.image = &url
	return previous, nil
}

// AssignToDrone points the medication at a persisted drone. Reassignment moves it.
func (m *Medication) AssignToDrone(droneID int64) error {
	if droneID <= 0 {
		return errs.NewValueIsOutOfRangeError("drone_id", droneID, 1, math.MaxInt64)
	}
	m.droneID = &droneID
	return nil
}

// Detach clears the drone reference.
func (m *Medication) Detach() {
	m.droneID = nil
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
