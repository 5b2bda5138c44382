package store

import (
	"github.com/shrimpsizemoose/flightrec/internal/models"
)

type DatabaseType string

const (
	DBTypePostgres DatabaseType = "postgres"
	DBTypeSQLite   DatabaseType = "sqlite"
)

type DBConfig struct {
	DSN  string
	Type DatabaseType
}

type SearchCriterion string

const (
	SearchByDestination SearchCriterion = "destination"
	SearchByStatus      SearchCriterion = "status"
	SearchByDate        SearchCriterion = "date"
	SearchAll           SearchCriterion = "all"
)

// FlightQuery selects flights. Text is used by the substring criteria, Day by
// SearchByDate.
type FlightQuery struct {
	Criterion SearchCriterion
	Text      string
	Day       models.Timestamp
}

// PilotUpdate carries one optional slot per updatable pilots column.
type PilotUpdate struct {
	Name            *string
	LicenseID       *string
	YearsExperience *int
}

func (u PilotUpdate) columns() []columnValue {
	var cols []columnValue
	if u.Name != nil {
		cols = append(cols, columnValue{"name", *u.Name})
	}
	if u.LicenseID != nil {
		cols = append(cols, columnValue{"license_id", *u.LicenseID})
	}
	if u.YearsExperience != nil {
		cols = append(cols, columnValue{"years_experience", *u.YearsExperience})
	}
	return cols
}

func (u PilotUpdate) Empty() bool { return len(u.columns()) == 0 }

type DestinationUpdate struct {
	City        *string
	Country     *string
	AirportCode *string
}

func (u DestinationUpdate) columns() []columnValue {
	var cols []columnValue
	if u.City != nil {
		cols = append(cols, columnValue{"city", *u.City})
	}
	if u.Country != nil {
		cols = append(cols, columnValue{"country", *u.Country})
	}
	if u.AirportCode != nil {
		cols = append(cols, columnValue{"airport_code", *u.AirportCode})
	}
	return cols
}

func (u DestinationUpdate) Empty() bool { return len(u.columns()) == 0 }

// FlightUpdate covers the only mutable flight columns.
type FlightUpdate struct {
	DepartureTime *models.Timestamp
	Status        *models.FlightStatus
}

func (u FlightUpdate) columns() []columnValue {
	var cols []columnValue
	if u.DepartureTime != nil {
		cols = append(cols, columnValue{"departure_time", *u.DepartureTime})
	}
	if u.Status != nil {
		cols = append(cols, columnValue{"status", string(*u.Status)})
	}
	return cols
}

func (u FlightUpdate) Empty() bool { return len(u.columns()) == 0 }
