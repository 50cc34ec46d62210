package delivery

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pricing"
	"logistics/internal/pkg/errs"
)

// ErrServiceIsNotConstructed is returned when a Service instance was not
// created through the NewService or RestoreService factory methods.
var ErrServiceIsNotConstructed = errors.New("Service must be created via NewService or RestoreService constructor")

// ErrDistanceRecordIsNotConstructed is returned when a DistanceRecord was not
// created through NewDistanceRecord.
var ErrDistanceRecordIsNotConstructed = errors.New("DistanceRecord must be created via NewDistanceRecord constructor")

// ErrNotCovered is returned when a province pair is outside the service's
// distance records.
var ErrNotCovered = errors.New("province pair is not covered by the delivery service")

// DistanceRecord classifies one province pair into a distance zone.
// Records are symmetric: the pair (from, to) also covers (to, from).
type DistanceRecord struct {
	fromProvince string
	toProvince   string
	zone         kernel.Zone

	isConstructed bool
}

// NewDistanceRecord creates a coverage record for a province pair.
// A record may name the same province twice, which is how provincial
// coverage is expressed.
func NewDistanceRecord(fromProvince, toProvince string, zone kernel.Zone) (DistanceRecord, error) {
	if fromProvince == "" {
		return DistanceRecord{}, errs.NewValueIsRequiredError("fromProvince")
	}
	if toProvince == "" {
		return DistanceRecord{}, errs.NewValueIsRequiredError("toProvince")
	}
	if err := zone.Validate(); err != nil {
		return DistanceRecord{}, err
	}

	return DistanceRecord{
		fromProvince:  fromProvince,
		toProvince:    toProvince,
		zone:          zone,
		isConstructed: true,
	}, nil
}

// Validate ensures the DistanceRecord was properly constructed.
func (r DistanceRecord) Validate() error {
	if !r.isConstructed {
		return ErrDistanceRecordIsNotConstructed
	}
	return nil
}

// FromProvince returns the record's first endpoint province.
func (r DistanceRecord) FromProvince() string {
	return r.fromProvince
}

// ToProvince returns the record's second endpoint province.
func (r DistanceRecord) ToProvince() string {
	return r.toProvince
}

// Zone returns the distance zone assigned to the province pair.
func (r DistanceRecord) Zone() kernel.Zone {
	return r.zone
}

// matches reports whether the record classifies the given pair, in either direction.
func (r DistanceRecord) matches(a, b string) bool {
	return (r.fromProvince == a && r.toProvince == b) ||
		(r.fromProvince == b && r.toProvince == a)
}

// Service is the delivery service aggregate. It owns the distance records
// defining its coverage and references the price table used to fee its
// shipments.
type Service struct {
	id        kernel.UUID
	name      string
	distances []DistanceRecord
	priceID   kernel.UUID

	isConstructed bool
}

// NewService creates a delivery service with its coverage records.
func NewService(id kernel.UUID, name string, distances []DistanceRecord, priceID kernel.UUID) (*Service, error) {
	service := &Service{
		isConstructed: true,
	}

	if err := errors.Join(
		service.setID(id),
		service.setName(name),
		service.setDistances(distances),
		service.setPriceID(priceID),
	); err != nil {
		return nil, err
	}

	return service, nil
}

// RestoreService reconstructs a delivery service from persistence.
func RestoreService(id kernel.UUID, name string, distances []DistanceRecord, priceID kernel.UUID) (*Service, error) {
	return NewService(id, name, distances, priceID)
}

// Validate ensures the Service instance was properly constructed.
func (s *Service) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrServiceIsNotConstructed
	}
	return nil
}

// ID returns the service's unique identifier.
func (s *Service) ID() kernel.UUID {
	return s.id
}

// Name returns the service's display name.
func (s *Service) Name() string {
	return s.name
}

// PriceID returns the identifier of the service's price table.
func (s *Service) PriceID() kernel.UUID {
	return s.priceID
}

// Distances returns a copy of the service's coverage records.
func (s *Service) Distances() []DistanceRecord {
	distances := make([]DistanceRecord, len(s.distances))
	copy(distances, s.distances)
	return distances
}

// Serves reports whether the service covers the given province. A province is
// covered when at least one distance record names it as an endpoint.
func (s *Service) Serves(province string) bool {
	for _, record := range s.distances {
		if record.fromProvince == province || record.toProvince == province {
			return true
		}
	}
	return false
}

// ZoneBetween classifies the movement between two provinces into a distance
// zone. Records are matched in either direction; the first match wins. When
// no record classifies the pair the service does not cover the movement and
// ErrNotCovered is returned.
func (s *Service) ZoneBetween(fromProvince, toProvince string) (kernel.Zone, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	for _, record := range s.distances {
		if record.matches(fromProvince, toProvince) {
			return record.zone, nil
		}
	}

	return 0, fmt.Errorf("%w: %s to %s", ErrNotCovered, fromProvince, toProvince)
}

// FeeFor prices one shipment leg of the given quantity between two covered
// provinces using the supplied price table.
func (s *Service) FeeFor(
	fromProvince, toProvince string,
	quantity float64,
	unit kernel.Unit,
	price *pricing.Price,
	taxes []pricing.Tax,
	surcharges []float64,
) (int64, error) {
	zone, err := s.ZoneBetween(fromProvince, toProvince)
	if err != nil {
		return 0, err
	}

	return pricing.CalculateFee(zone, quantity, price, unit, taxes, surcharges)
}

func (s *Service) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Service) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Service) setDistances(distances []DistanceRecord) error {
	if len(distances) == 0 {
		return errs.NewValueIsRequiredError("distances")
	}
	for _, record := range distances {
		if err := record.Validate(); err != nil {
			return err
		}
	}

	s.distances = make([]DistanceRecord, len(distances))
	copy(s.distances, distances)
	return nil
}

func (s *Service) setPriceID(priceID kernel.UUID) error {
	if err := priceID.Validate(); err != nil {
		return err
	}
	s.priceID = priceID
	return nil
}
