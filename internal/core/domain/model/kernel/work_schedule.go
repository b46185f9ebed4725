package kernel

import (
	"strings"
	"time"

	"verification/internal/pkg/errs"
)

// spanishWeekdays maps the day names used in schedule descriptors to weekdays.
// Keys are uppercased and accent-free, matching the normalization applied
// during parsing.
var spanishWeekdays = map[string]time.Weekday{
	"LUNES":     time.Monday,
	"MARTES":    time.Tuesday,
	"MIERCOLES": time.Wednesday,
	"JUEVES":    time.Thursday,
	"VIERNES":   time.Friday,
	"SABADO":    time.Saturday,
	"DOMINGO":   time.Sunday,
}

// orderedWeekdayNames lists day names in calendar order for range expansion.
var orderedWeekdayNames = []string{
	"LUNES", "MARTES", "MIERCOLES", "JUEVES", "VIERNES", "SABADO", "DOMINGO",
}

// WorkSchedule is the value object for a verifier's declared working days,
// parsed from a free-text descriptor such as:
//
//	"LUNES A VIERNES 09:00-18:00"
//	"LUNES-SABADO"
//	"LUNES,MIERCOLES,VIERNES"
//
// Parsing is best effort: day names are matched case- and accent-insensitively,
// "X A Y" and "X-Y" expand to the inclusive calendar range, and comma-separated
// lists add individual days. Hour fragments are kept only for display. A
// descriptor with no recognizable day covers nothing, so the assignment
// heuristic will skip the verifier rather than guess.
type WorkSchedule struct {
	descriptor string
	days       map[time.Weekday]bool
}

// NewWorkSchedule parses a schedule descriptor.
// Only an empty descriptor is rejected; unrecognized content yields a schedule
// covering no days.
func NewWorkSchedule(descriptor string) (WorkSchedule, error) {
	descriptor = strings.TrimSpace(descriptor)
	if descriptor == "" {
		return WorkSchedule{}, errs.NewValueIsRequiredError("work schedule")
	}

	return WorkSchedule{
		descriptor: descriptor,
		days:       parseScheduleDays(descriptor),
	}, nil
}

func parseScheduleDays(descriptor string) map[time.Weekday]bool {
	days := make(map[time.Weekday]bool)
	normalized := normalizeSchedule(descriptor)

	// Ranges first: "LUNES A VIERNES" or "LUNES-VIERNES".
	tokens := strings.Fields(strings.NewReplacer(",", " ", "-", " - ").Replace(normalized))
	for i := 0; i < len(tokens); i++ {
		from, okFrom := spanishWeekdays[tokens[i]]
		if !okFrom {
			continue
		}

		if i+2 < len(tokens) && (tokens[i+1] == "A" || tokens[i+1] == "-") {
			if _, okTo := spanishWeekdays[tokens[i+2]]; okTo {
				for _, name := range expandRange(tokens[i], tokens[i+2]) {
					days[spanishWeekdays[name]] = true
				}
				i += 2
				continue
			}
		}

		days[from] = true
	}

	return days
}

// expandRange returns the inclusive run of day names between from and to
// in calendar order. An inverted range wraps around the week.
func expandRange(from, to string) []string {
	fromIdx, toIdx := -1, -1
	for i, name := range orderedWeekdayNames {
		if name == from {
			fromIdx = i
		}
		if name == to {
			toIdx = i
		}
	}

	names := make([]string, 0, len(orderedWeekdayNames))
	for i := fromIdx; ; i = (i + 1) % len(orderedWeekdayNames) {
		names = append(names, orderedWeekdayNames[i])
		if i == toIdx {
			break
		}
	}
	return names
}

// normalizeSchedule uppercases the descriptor and strips the accents that
// appear in day names.
func normalizeSchedule(s string) string {
	s = strings.ToUpper(s)
	return strings.NewReplacer("Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U").Replace(s)
}

// Descriptor returns the original free-text schedule.
func (w WorkSchedule) Descriptor() string {
	return w.descriptor
}

// CoversDay reports whether the schedule includes the given weekday.
func (w WorkSchedule) CoversDay(day time.Weekday) bool {
	return w.days[day]
}

// CoveredDays returns the number of weekdays the schedule includes.
func (w WorkSchedule) CoveredDays() int {
	return len(w.days)
}

// String implements fmt.Stringer.
func (w WorkSchedule) String() string {
	return w.descriptor
}

// Validate returns an error for a zero-value WorkSchedule.
func (w WorkSchedule) Validate() error {
	if w.descriptor == "" {
		return errs.NewValueIsRequiredError("WorkSchedule must be created via NewWorkSchedule")
	}
	return nil
}
