package menu

import (
	"context"

	"github.com/shrimpsizemoose/flightrec/internal/store"
)

func (m *Menu) handleManagePilots(ctx context.Context) error {
	choice, err := m.choose("Manage pilots:", map[string]string{
		"1": "View all pilots",
		"2": "Add a pilot",
		"3": "Update a pilot",
		"4": "Delete a pilot",
	})
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		pilots, err := m.svc.ListPilots(ctx)
		if err != nil {
			return err
		}
		PilotsTable(m.out, pilots)
		return nil
	case "2":
		return m.addPilot(ctx)
	case "3":
		return m.updatePilot(ctx)
	default:
		return m.deletePilot(ctx)
	}
}

func (m *Menu) addPilot(ctx context.Context) error {
	name, err := m.prompt("Enter pilot name: ")
	if err != nil {
		return err
	}
	license, err := m.prompt("Enter license ID: ")
	if err != nil {
		return err
	}
	years, err := m.promptOptionalInt("Enter years of experience (blank if unknown): ")
	if err != nil {
		return err
	}

	id, err := m.svc.AddPilot(ctx, name, license, years)
	if err != nil {
		return err
	}
	m.noticef("Pilot %s added with ID %d", name, id)
	return nil
}

func (m *Menu) updatePilot(ctx context.Context) error {
	id, err := m.promptID("Enter pilot ID to update: ")
	if err != nil {
		return err
	}

	var update store.PilotUpdate
	if update.Name, err = m.promptOptional("New name (blank to keep): "); err != nil {
		return err
	}
	if update.LicenseID, err = m.promptOptional("New license ID (blank to keep): "); err != nil {
		return err
	}
	if update.YearsExperience, err = m.promptOptionalInt("New years of experience (blank to keep): "); err != nil {
		return err
	}

	updated, err := m.svc.UpdatePilot(ctx, id, update)
	if err != nil {
		return err
	}
	if !updated {
		m.noticef("No changes made")
		return nil
	}
	m.noticef("Pilot %d updated", id)
	return nil
}

func (m *Menu) deletePilot(ctx context.Context) error {
	id, err := m.promptID("Enter pilot ID to delete: ")
	if err != nil {
		return err
	}
	if err := m.svc.DeletePilot(ctx, id); err != nil {
		return err
	}
	m.noticef("Pilot %d deleted", id)
	return nil
}

func (m *Menu) handlePilotSchedule(ctx context.Context) error {
	id, err := m.promptID("Enter pilot ID: ")
	if err != nil {
		return err
	}
	entries, err := m.svc.PilotSchedule(ctx, id)
	if err != nil {
		return err
	}
	ScheduleTable(m.out, entries, m.layout)
	return nil
}

func (m *Menu) handleDeleteAssignment(ctx context.Context) error {
	id, err := m.promptID("Enter assignment ID to delete: ")
	if err != nil {
		return err
	}
	if err := m.svc.DeleteAssignment(ctx, id); err != nil {
		return err
	}
	m.noticef("Assignment %d deleted", id)
	return nil
}
