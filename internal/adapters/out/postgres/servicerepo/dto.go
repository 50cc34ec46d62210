// Package servicerepo provides data transfer objects and mapping functions for
// delivery service persistence, covering the service itself, its distance
// records and its price tables.
package servicerepo

import (
	"sort"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

// ServiceDTO represents the database structure for persisting delivery services.
type ServiceDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null"`
	PriceID uuid.UUID `gorm:"type:uuid;not null"`

	Distances []DistanceRecordDTO `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for delivery service entities.
func (ServiceDTO) TableName() string {
	return "delivery_services"
}

// DistanceRecordDTO represents one coverage record of a delivery service.
type DistanceRecordDTO struct {
	ServiceID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position     int       `gorm:"primaryKey"`
	FromProvince string    `gorm:"type:varchar(255);not null"`
	ToProvince   string    `gorm:"type:varchar(255);not null"`
	Zone         int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for distance record entities.
func (DistanceRecordDTO) TableName() string {
	return "distance_records"
}

// PriceDTO represents the database structure for persisting price tables.
type PriceDTO struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Tiers []PriceTierDTO `gorm:"foreignKey:PriceID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for price table entities.
func (PriceDTO) TableName() string {
	return "prices"
}

// PriceTierDTO represents one tier of a price table. The tier carries one
// price column per zone code.
type PriceTierDTO struct {
	PriceID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Unit      int       `gorm:"primaryKey"`
	Position  int       `gorm:"primaryKey"`
	Continues bool      `gorm:"not null"`
	Step      float64   `gorm:"not null"`
	PriceA    float64   `gorm:"not null"`
	PriceB    float64   `gorm:"not null"`
	PriceC    float64   `gorm:"not null"`
	PriceF    float64   `gorm:"not null"`
}

// TableName specifies the database table name for price tier entities.
func (PriceTierDTO) TableName() string {
	return "price_tiers"
}

func serviceFromDomain(service *delivery.Service) ServiceDTO {
	serviceID := service.ID().Bytes()

	records := service.Distances()
	recordDTOs := make([]DistanceRecordDTO, 0, len(records))
	for i, record := range records {
		recordDTOs = append(recordDTOs, DistanceRecordDTO{
			ServiceID:    serviceID,
			Position:     i,
			FromProvince: record.FromProvince(),
			ToProvince:   record.ToProvince(),
			Zone:         int(record.Zone()),
		})
	}

	return ServiceDTO{
		ID:        serviceID,
		Name:      service.Name(),
		PriceID:   service.PriceID().Bytes(),
		Distances: recordDTOs,
	}
}

func serviceToDomain(dto ServiceDTO) (*delivery.Service, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	priceID, err := kernel.UUIDFromBytes(dto.PriceID[:])
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.Distances, func(i, j int) bool {
		return dto.Distances[i].Position < dto.Distances[j].Position
	})
	records := make([]delivery.DistanceRecord, 0, len(dto.Distances))
	for _, recordDTO := range dto.Distances {
		record, recordErr := delivery.NewDistanceRecord(
			recordDTO.FromProvince, recordDTO.ToProvince, kernel.Zone(recordDTO.Zone))
		if recordErr != nil {
			return nil, recordErr
		}
		records = append(records, record)
	}

	return delivery.RestoreService(id, dto.Name, records, priceID)
}

func priceFromDomain(price *pricing.Price) (PriceDTO, error) {
	priceID := price.ID().Bytes()

	dto := PriceDTO{ID: priceID}
	for _, unit := range []kernel.Unit{kernel.UnitKilogram, kernel.UnitTon, kernel.UnitCubicMeter} {
		tiers, err := price.TiersFor(unit)
		if err != nil {
			return PriceDTO{}, err
		}
		for i, tier := range tiers {
			tierDTO, err := tierFromDomain(priceID, unit, i, tier)
			if err != nil {
				return PriceDTO{}, err
			}
			dto.Tiers = append(dto.Tiers, tierDTO)
		}
	}

	return dto, nil
}

func tierFromDomain(priceID uuid.UUID, unit kernel.Unit, position int, tier pricing.Tier) (PriceTierDTO, error) {
	dto := PriceTierDTO{
		PriceID:   priceID,
		Unit:      int(unit),
		Position:  position,
		Continues: tier.Continues(),
		Step:      tier.Step(),
	}

	columns := []*float64{&dto.PriceA, &dto.PriceB, &dto.PriceC, &dto.PriceF}
	for i, zone := range []kernel.Zone{kernel.ZoneProvincial, kernel.ZoneShortHaul, kernel.ZoneMediumHaul, kernel.ZoneLongHaul} {
		price, err := tier.PriceForZone(zone)
		if err != nil {
			return PriceTierDTO{}, err
		}
		*columns[i] = price
	}

	return dto, nil
}

func priceToDomain(dto PriceDTO) (*pricing.Price, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.Tiers, func(i, j int) bool {
		if dto.Tiers[i].Unit != dto.Tiers[j].Unit {
			return dto.Tiers[i].Unit < dto.Tiers[j].Unit
		}
		return dto.Tiers[i].Position < dto.Tiers[j].Position
	})

	byUnit := map[kernel.Unit][]pricing.Tier{}
	for _, tierDTO := range dto.Tiers {
		tier, tierErr := pricing.NewTier(tierDTO.Continues, tierDTO.Step,
			[]float64{tierDTO.PriceA, tierDTO.PriceB, tierDTO.PriceC, tierDTO.PriceF})
		if tierErr != nil {
			return nil, tierErr
		}
		unit := kernel.Unit(tierDTO.Unit)
		byUnit[unit] = append(byUnit[unit], tier)
	}

	return pricing.RestorePrice(id,
		byUnit[kernel.UnitKilogram], byUnit[kernel.UnitTon], byUnit[kernel.UnitCubicMeter])
}
