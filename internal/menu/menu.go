package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/flightrec/internal/app"
)

const mainMenu = `
Flight Management System
 1. Add a new flight
 2. View flights by criteria
 3. Update flight information
 4. Assign pilot to flight
 5. View pilot schedule
 6. View/Update destination information
 7. Delete a flight
 8. Flights per destination
 9. Pilot flight summary
10. Destination statistics
11. Manage pilots
12. Delete a pilot assignment
13. Populate sample data
14. Exit`

const exitOption = "14"

type optionHandler func(ctx context.Context) error

// Menu drives the interactive console. Every option reports its own errors
// and the loop carries on; only end of input or the exit option stop it.
type Menu struct {
	svc     *app.Service
	in      *bufio.Scanner
	out     io.Writer
	layout  string
	errs    *color.Color
	notice  *color.Color
	heading *color.Color
}

func New(svc *app.Service, in io.Reader, out io.Writer, colored bool) *Menu {
	m := &Menu{
		svc:     svc,
		in:      bufio.NewScanner(in),
		out:     out,
		layout:  svc.Config.Display.TimestampFormat,
		errs:    color.New(color.FgRed),
		notice:  color.New(color.FgGreen),
		heading: color.New(color.FgHiCyan, color.Bold),
	}
	for _, c := range []*color.Color{m.errs, m.notice, m.heading} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return m
}

func (m *Menu) routeOptions(option string) (optionHandler, bool) {
	options := map[string]optionHandler{
		"1":  m.handleAddFlight,
		"2":  m.handleViewFlights,
		"3":  m.handleUpdateFlight,
		"4":  m.handleAssignPilot,
		"5":  m.handlePilotSchedule,
		"6":  m.handleDestinations,
		"7":  m.handleDeleteFlight,
		"8":  m.handleFlightsPerDestination,
		"9":  m.handlePilotSummary,
		"10": m.handleDestinationStatistics,
		"11": m.handleManagePilots,
		"12": m.handleDeleteAssignment,
		"13": m.handlePopulateSampleData,
	}
	handler, found := options[option]
	return handler, found
}

func (m *Menu) Run(ctx context.Context) error {
	for {
		m.heading.Fprintln(m.out, mainMenu)

		option, err := m.prompt("Enter your choice (1-14): ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if option == exitOption {
			fmt.Fprintln(m.out, "Exiting Flight Management System.")
			return nil
		}

		handler, ok := m.routeOptions(option)
		if !ok {
			m.errorf("Invalid choice %q, enter a number between 1 and 14", option)
			continue
		}

		err = handler(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			logger.Error.Printf("Option %s failed: %v", option, err)
			m.errorf("Error: %v", err)
		}
	}
}

// prompt prints label and returns the next trimmed input line. It returns
// io.EOF once input is exhausted.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) promptID(label string) (int64, error) {
	v, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid ID", v)
	}
	return id, nil
}

// promptOptional returns nil for a blank answer.
func (m *Menu) promptOptional(label string) (*string, error) {
	v, err := m.prompt(label)
	if err != nil || v == "" {
		return nil, err
	}
	return &v, nil
}

func (m *Menu) promptOptionalInt(label string) (*int, error) {
	v, err := m.promptOptional(label)
	if err != nil || v == nil {
		return nil, err
	}
	n, err := strconv.Atoi(*v)
	if err != nil {
		return nil, fmt.Errorf("%q is not a whole number", *v)
	}
	return &n, nil
}

// choose shows a numbered submenu and returns the key picked.
func (m *Menu) choose(title string, choices map[string]string) (string, error) {
	keys := make([]string, 0, len(choices))
	for k := range choices {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m.heading.Fprintln(m.out, title)
	for _, k := range keys {
		fmt.Fprintf(m.out, "%s. %s\n", k, choices[k])
	}
	choice, err := m.prompt("Enter your choice: ")
	if err != nil {
		return "", err
	}
	if _, ok := choices[choice]; !ok {
		return "", fmt.Errorf("invalid choice %q", choice)
	}
	return choice, nil
}

func (m *Menu) errorf(format string, args ...any) {
	m.errs.Fprintf(m.out, format+"\n", args...)
}

func (m *Menu) noticef(format string, args ...any) {
	m.notice.Fprintf(m.out, format+"\n", args...)
}
