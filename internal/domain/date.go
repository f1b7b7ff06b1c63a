package domain

import "fmt"

// Date is a calendar day without time zone.
type Date struct {
	Day   int
	Month int
	Year  int
}

func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Midnight is the start of any day.
var Midnight = TimeOfDay{}
