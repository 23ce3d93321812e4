package view

import "time"

// Greeting phrases by time of day.
const (
	greetingNight     = "Доброй ночи!"
	greetingMorning   = "Доброе утро!"
	greetingAfternoon = "Добрый день!"
	greetingEvening   = "Добрый вечер!"
)

// Greeting returns the salutation for the given wall-clock time. It depends
// only on the current time of day, not on the query date.
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 6:
		return greetingNight
	case h < 12:
		return greetingMorning
	case h < 18:
		return greetingAfternoon
	default:
		return greetingEvening
	}
}
