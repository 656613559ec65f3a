package domain

// DefaultCatalog returns the fixed set of activities the school offers.
// The catalog is seeded once at startup and never grows or shrinks at
// runtime; only each activity's participant roster changes.
func DefaultCatalog() map[string]*Activity {
	return map[string]*Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Basketball Team": {
			Description:     "Competitive basketball training and interschool games",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{},
		},
		"Swimming Club": {
			Description:     "Swimming lessons and competitive swimming events",
			Schedule:        "Mondays and Wednesdays, 3:00 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{},
		},
		"Art Studio": {
			Description:     "Explore painting, drawing, and mixed media art projects",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{},
		},
		"Drama Club": {
			Description:     "Acting, theater production, and performance skills",
			Schedule:        "Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{},
		},
		"Debate Team": {
			Description:     "Develop critical thinking and public speaking through competitive debates",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{},
		},
		"Science Olympiad": {
			Description:     "Prepare for science competitions and conduct experiments",
			Schedule:        "Fridays, 3:00 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{},
		},
	}
}
