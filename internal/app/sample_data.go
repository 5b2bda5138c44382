package app

import (
	"time"

	"github.com/shrimpsizemoose/flightrec/internal/models"
)

func intPtr(n int) *int { return &n }

func at(s string) models.Timestamp {
	t, err := time.Parse(models.TimestampLayout, s)
	if err != nil {
		panic(err)
	}
	return models.NewTimestamp(t)
}

// SampleData is the demonstration data set loaded by PopulateSampleData.
// Flights and assignments refer to rows by position, several flights
// carry two pilots.
func SampleData() *models.SampleData {
	return &models.SampleData{
		Pilots: []models.Pilot{
			{Name: "James Smith", LicenseID: "UK10001", YearsExperience: intPtr(15)},
			{Name: "Jane Smith", LicenseID: "UK10002", YearsExperience: intPtr(12)},
			{Name: "Michael Scott", LicenseID: "UK10003", YearsExperience: intPtr(8)},
			{Name: "Tim Robinson", LicenseID: "UK10004", YearsExperience: intPtr(20)},
			{Name: "Taylor Swift", LicenseID: "UK10005", YearsExperience: intPtr(10)},
			{Name: "Matthew Fox", LicenseID: "UK10006", YearsExperience: intPtr(7)},
			{Name: "John Locke", LicenseID: "UK10007", YearsExperience: intPtr(5)},
			{Name: "Jim Halpert", LicenseID: "UK10008", YearsExperience: intPtr(18)},
			{Name: "Adam Scott", LicenseID: "UK10009", YearsExperience: intPtr(25)},
			{Name: "Travis Touchdown", LicenseID: "UK10010", YearsExperience: intPtr(3)},
			{Name: "Sarah Connor", LicenseID: "UK10011", YearsExperience: intPtr(22)},
			{Name: "Ellen Ripley", LicenseID: "UK10012", YearsExperience: intPtr(19)},
			{Name: "Han Solo", LicenseID: "UK10013", YearsExperience: intPtr(30)},
			{Name: "Cloud Strife", LicenseID: "UK10014", YearsExperience: intPtr(15)},
			{Name: "Luke Skywalker", LicenseID: "UK10015", YearsExperience: intPtr(12)},
		},
		Destinations: []models.Destination{
			{City: "London", Country: "UK", AirportCode: "LHR"},
			{City: "Tokyo", Country: "Japan", AirportCode: "HND"},
			{City: "Seoul", Country: "Korea", AirportCode: "KIX"},
			{City: "Paris", Country: "France", AirportCode: "CDG"},
			{City: "Berlin", Country: "Germany", AirportCode: "BER"},
			{City: "New York", Country: "USA", AirportCode: "JFK"},
			{City: "Dubai", Country: "UAE", AirportCode: "DXB"},
			{City: "Sydney", Country: "Australia", AirportCode: "SYD"},
			{City: "Toronto", Country: "Canada", AirportCode: "YYZ"},
			{City: "Los Angeles", Country: "USA", AirportCode: "LAX"},
			{City: "Singapore", Country: "Singapore", AirportCode: "SIN"},
			{City: "Hong Kong", Country: "China", AirportCode: "HKG"},
			{City: "Rome", Country: "Italy", AirportCode: "FCO"},
			{City: "Madrid", Country: "Spain", AirportCode: "MAD"},
			{City: "Cape Town", Country: "South Africa", AirportCode: "CPT"},
		},
		Flights: []models.SampleFlight{
			{FlightNumber: "BA101", Origin: 0, Destination: 1, DepartureTime: at("2025-03-10 10:00:00"), Status: models.StatusScheduled},
			{FlightNumber: "BA102", Origin: 1, Destination: 0, DepartureTime: at("2025-03-10 14:00:00"), Status: models.StatusScheduled},
			{FlightNumber: "BA103", Origin: 0, Destination: 2, DepartureTime: at("2025-03-11 09:00:00"), Status: models.StatusScheduled},
			{FlightNumber: "BA104", Origin: 2, Destination: 3, DepartureTime: at("2025-03-12 12:00:00"), Status: models.StatusScheduled},
			{FlightNumber: "BA105", Origin: 3, Destination: 4, DepartureTime: at("2025-03-13 15:00:00"), Status: models.StatusScheduled},
			{FlightNumber: "BA106", Origin: 4, Destination: 5, DepartureTime: at("2025-03-14 08:00:00"), Status: models.StatusScheduled},
			{FlightNumber: "BA107", Origin: 5, Destination: 6, DepartureTime: at("2025-03-15 11:00:00"), Status: models.StatusScheduled},
			{FlightNumber: "BA108", Origin: 6, Destination: 7, DepartureTime: at("2025-03-16 13:00:00"), Status: models.StatusScheduled},
			{FlightNumber: "BA109", Origin: 7, Destination: 8, DepartureTime: at("2025-03-17 16:00:00"), Status: models.StatusScheduled},
			{FlightNumber: "BA110", Origin: 8, Destination: 9, DepartureTime: at("2025-03-18 18:00:00"), Status: models.StatusScheduled},
			{FlightNumber: "BA111", Origin: 9, Destination: 10, DepartureTime: at("2025-03-19 07:00:00"), Status: models.StatusScheduled},
			{FlightNumber: "BA112", Origin: 10, Destination: 11, DepartureTime: at("2025-03-20 09:00:00"), Status: models.StatusScheduled},
			{FlightNumber: "BA113", Origin: 11, Destination: 12, DepartureTime: at("2025-03-21 11:00:00"), Status: models.StatusScheduled},
			{FlightNumber: "BA114", Origin: 12, Destination: 13, DepartureTime: at("2025-03-22 13:00:00"), Status: models.StatusScheduled},
			{FlightNumber: "BA115", Origin: 13, Destination: 14, DepartureTime: at("2025-03-23 15:00:00"), Status: models.StatusScheduled},
		},
		Assignments: []models.SampleAssignment{
			{Flight: 0, Pilot: 0, AssignmentDate: at("2025-02-01 10:00:00")},
			{Flight: 0, Pilot: 1, AssignmentDate: at("2025-02-01 10:00:00")},
			{Flight: 1, Pilot: 2, AssignmentDate: at("2025-02-02 14:00:00")},
			{Flight: 2, Pilot: 3, AssignmentDate: at("2025-02-03 09:00:00")},
			{Flight: 2, Pilot: 4, AssignmentDate: at("2025-03-03 09:00:00")},
			{Flight: 3, Pilot: 5, AssignmentDate: at("2025-03-04 12:00:00")},
			{Flight: 4, Pilot: 6, AssignmentDate: at("2025-03-05 15:00:00")},
			{Flight: 5, Pilot: 7, AssignmentDate: at("2025-03-06 08:00:00")},
			{Flight: 6, Pilot: 8, AssignmentDate: at("2025-03-07 11:00:00")},
			{Flight: 7, Pilot: 9, AssignmentDate: at("2025-03-08 13:00:00")},
			{Flight: 7, Pilot: 0, AssignmentDate: at("2025-03-08 13:00:00")},
			{Flight: 8, Pilot: 10, AssignmentDate: at("2025-03-09 16:00:00")},
			{Flight: 9, Pilot: 11, AssignmentDate: at("2025-03-10 18:00:00")},
			{Flight: 10, Pilot: 12, AssignmentDate: at("2025-03-11 07:00:00")},
			{Flight: 11, Pilot: 13, AssignmentDate: at("2025-03-12 09:00:00")},
			{Flight: 11, Pilot: 14, AssignmentDate: at("2025-03-12 09:00:00")},
		},
	}
}
