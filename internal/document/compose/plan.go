package compose

import "strings"

// Plan is the display form of a membership plan.
type Plan struct {
	Title    string
	Features []string
}

// LookupPlan resolves a plan identifier to its display title and feature
// list. Unknown identifiers fall back to an upper-cased echo of the id with
// no features; that is policy for forward compatibility, not an error.
func LookupPlan(id string) Plan {
	switch strings.ToLower(strings.TrimSpace(id)) {
	case "basic":
		return Plan{
			Title: "Basic Membership",
			Features: []string{
				"Locker room access during staffed hours",
				"One personal locker assignment",
				"RFID card entry",
			},
		}
	case "premium":
		return Plan{
			Title: "Premium Membership",
			Features: []string{
				"24/7 locker room access",
				"One personal locker assignment",
				"RFID card entry with backup card",
				"Towel and laundry service",
				"Two guest passes per month",
			},
		}
	case "executive":
		return Plan{
			Title: "Executive Membership",
			Features: []string{
				"24/7 locker room access",
				"Private full-height locker",
				"RFID card entry with backup card",
				"Towel and laundry service",
				"Unlimited guest passes",
				"Priority kiosk support",
			},
		}
	default:
		return Plan{Title: strings.ToUpper(strings.TrimSpace(id))}
	}
}
