package cmd

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

type ParsedDate struct {
	Date     time.Time
	Year     bool
	Month    bool
	Day      bool
	Relative bool
}

// parseOptionalDateRange is parseDateRangeFromArgs with no arguments
// meaning the whole archive (zero start and end).
func parseOptionalDateRange(args []string) (start time.Time, end time.Time, err error) {
	if len(args) == 0 {
		return
	}
	return parseDateRangeFromArgs(args)
}

func parseDateRangeFromArgs(args []string) (start time.Time, end time.Time, err error) {
	switch len(args) {
	case 1:
		start, end, err = getImplicitDateRange(args[0])

	case 2:
		start, end, err = getExplicitDateRange(args[0], args[1])

	default:
		err = fmt.Errorf("Expected one or two date arguments")
	}
	return
}

func getImplicitDateRange(ds string) (start time.Time, end time.Time, err error) {
	date, err := parseSingleDatestring(ds)
	if err != nil {
		return
	}

	start = date.Date
	switch {
	case date.Relative:
		end = time.Now()

	case date.Year:
		end = start.AddDate(1, 0, 0)

	case date.Month:
		end = start.AddDate(0, 1, 0)

	case date.Day:
		end = start.AddDate(0, 0, 1)

	default:
		err = fmt.Errorf("Invalid format: %q", ds)
	}

	return
}

func getExplicitDateRange(startString, endString string) (start time.Time, end time.Time, err error) {
	startParsed, err := parseSingleDatestring(startString)
	if err != nil {
		return
	}
	start = startParsed.Date

	endParsed, err := parseSingleDatestring(endString)
	if err != nil {
		return
	}
	end = endParsed.Date

	return
}

func parseSingleDatestring(ds string) (date ParsedDate, err error) {
	matched, err := regexp.Match(`^\d{4}$`, []byte(ds))
	if err != nil {
		err = fmt.Errorf("Parsing datestring as year: %w", err)
		return
	}
	if matched {
		date.Date, err = time.Parse("2006", ds)
		if err != nil {
			err = fmt.Errorf("Parsing datestring as year: %w", err)
			return
		}
		date.Year = true
		return
	}

	matched, err = regexp.Match(`^\d{4}-\d{2}$`, []byte(ds))
	if err != nil {
		err = fmt.Errorf("Parsing datestring as month: %w", err)
		return
	}
	if matched {
		date.Date, err = time.Parse("2006-01", ds)
		if err != nil {
			err = fmt.Errorf("Parsing datestring as month: %w", err)
			return
		}
		date.Month = true
		return
	}

	matched, err = regexp.Match(`^\d{4}-\d{2}-\d{2}$`, []byte(ds))
	if err != nil {
		err = fmt.Errorf("Parsing datestring as day: %w", err)
		return
	}
	if matched {
		date.Date, err = time.Parse("2006-01-02", ds)
		if err != nil {
			err = fmt.Errorf("Parsing datestring as day: %w", err)
			return
		}
		date.Day = true
		return
	}

	matched, err = regexp.Match(`^\d+[dwmy]$`, []byte(ds))
	if err != nil {
		err = fmt.Errorf("Parsing relative datestring: %w", err)
		return
	}
	if matched {
		date.Date, err = parseRelativeDatestring(ds)
		if err != nil {
			return
		}
		date.Relative = true
		return
	}

	err = fmt.Errorf("Invalid format: %q", ds)
	return
}

// parseRelativeDatestring turns e.g. "30d" into a date that far back
// from now.
func parseRelativeDatestring(ds string) (time.Time, error) {
	amount, err := strconv.Atoi(ds[:len(ds)-1])
	if err != nil {
		return time.Time{}, fmt.Errorf("Parsing relative datestring: %w", err)
	}

	now := time.Now()
	switch ds[len(ds)-1] {
	case 'd':
		return now.AddDate(0, 0, -amount), nil
	case 'w':
		return now.AddDate(0, 0, -amount*7), nil
	case 'm':
		return now.AddDate(0, -amount, 0), nil
	case 'y':
		return now.AddDate(-amount, 0, 0), nil
	}
	return time.Time{}, fmt.Errorf("Invalid format: %q", ds)
}
