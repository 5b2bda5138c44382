package menu

import (
	"context"

	"github.com/shrimpsizemoose/flightrec/internal/store"
)

func (m *Menu) handleDestinations(ctx context.Context) error {
	choice, err := m.choose("Destinations:", map[string]string{
		"1": "View all destinations",
		"2": "Add a destination",
		"3": "Update a destination",
	})
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		destinations, err := m.svc.ListDestinations(ctx)
		if err != nil {
			return err
		}
		DestinationsTable(m.out, destinations)
		return nil
	case "2":
		return m.addDestination(ctx)
	default:
		return m.updateDestination(ctx)
	}
}

func (m *Menu) addDestination(ctx context.Context) error {
	city, err := m.prompt("Enter city: ")
	if err != nil {
		return err
	}
	country, err := m.prompt("Enter country: ")
	if err != nil {
		return err
	}
	code, err := m.prompt("Enter airport code: ")
	if err != nil {
		return err
	}

	id, err := m.svc.AddDestination(ctx, city, country, code)
	if err != nil {
		return err
	}
	m.noticef("Destination %s added with ID %d", city, id)
	return nil
}

func (m *Menu) updateDestination(ctx context.Context) error {
	id, err := m.promptID("Enter destination ID to update: ")
	if err != nil {
		return err
	}

	var update store.DestinationUpdate
	if update.City, err = m.promptOptional("New city (blank to keep): "); err != nil {
		return err
	}
	if update.Country, err = m.promptOptional("New country (blank to keep): "); err != nil {
		return err
	}
	if update.AirportCode, err = m.promptOptional("New airport code (blank to keep): "); err != nil {
		return err
	}

	updated, err := m.svc.UpdateDestination(ctx, id, update)
	if err != nil {
		return err
	}
	if !updated {
		m.noticef("No changes made")
		return nil
	}
	m.noticef("Destination %d updated", id)
	return nil
}
