package memory

import "schoolactivities/internal/domain"

// SeedActivities returns the activity catalog the registry is populated with
// at process start. The registry is never persisted, so this is the state
// after every restart.
func SeedActivities() map[string]*domain.Activity {
	return map[string]*domain.Activity{
		"Chess Club": domain.NewActivity(
			"Learn strategies and compete in chess tournaments",
			"Fridays, 3:30 PM - 5:00 PM",
			12,
			[]string{"michael@mergington.edu", "daniel@mergington.edu"},
		),
		"Programming Class": domain.NewActivity(
			"Learn programming fundamentals and build software projects",
			"Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			20,
			[]string{"emma@mergington.edu", "sophia@mergington.edu"},
		),
		"Gym Class": domain.NewActivity(
			"Physical education and sports activities",
			"Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			30,
			[]string{"john@mergington.edu", "olivia@mergington.edu"},
		),
		"Soccer Team": domain.NewActivity(
			"Join the school soccer team and compete in matches",
			"Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			22,
			[]string{"liam@mergington.edu", "noah@mergington.edu"},
		),
		"Basketball Team": domain.NewActivity(
			"Practice and play basketball with the school team",
			"Wednesdays and Fridays, 3:30 PM - 5:00 PM",
			15,
			[]string{"ava@mergington.edu", "mia@mergington.edu"},
		),
		"Art Club": domain.NewActivity(
			"Explore your creativity through painting and drawing",
			"Thursdays, 3:30 PM - 5:00 PM",
			15,
			[]string{"amelia@mergington.edu", "harper@mergington.edu"},
		),
		"Drama Club": domain.NewActivity(
			"Act, direct, and produce plays and performances",
			"Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			20,
			[]string{"ella@mergington.edu", "scarlett@mergington.edu"},
		),
		"Math Club": domain.NewActivity(
			"Solve challenging problems and prepare for math competitions",
			"Tuesdays, 3:30 PM - 4:30 PM",
			10,
			[]string{"james@mergington.edu", "benjamin@mergington.edu"},
		),
		"Debate Team": domain.NewActivity(
			"Develop public speaking and argumentation skills",
			"Fridays, 4:00 PM - 5:30 PM",
			12,
			[]string{"charlotte@mergington.edu", "henry@mergington.edu"},
		),
	}
}
