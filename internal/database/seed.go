package database

import "github.com/Shivanand-hulikatti/activity-signup/internal/model"

// DefaultActivities returns the activities a fresh database is seeded with.
func DefaultActivities() model.ActivitySet {
	return model.ActivitySet{
		{Name: "Chess Club", ActivityDetails: model.ActivityDetails{
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		}},
		{Name: "Programming Class", ActivityDetails: model.ActivityDetails{
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		}},
		{Name: "Gym Class", ActivityDetails: model.ActivityDetails{
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		}},
		{Name: "Basketball", ActivityDetails: model.ActivityDetails{
			Description:     "Team sport focused on skill development and competitive play",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu"},
		}},
		{Name: "Swimming", ActivityDetails: model.ActivityDetails{
			Description:     "Learn swimming techniques and prepare for competitions",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"alex@mergington.edu"},
		}},
		{Name: "Drama Club", ActivityDetails: model.ActivityDetails{
			Description:     "Perform in theatrical productions and develop acting skills",
			Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"isabella@mergington.edu"},
		}},
		{Name: "Art Studio", ActivityDetails: model.ActivityDetails{
			Description:     "Explore painting, sculpture, and various art mediums",
			Schedule:        "Mondays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"grace@mergington.edu"},
		}},
		{Name: "Debate Team", ActivityDetails: model.ActivityDetails{
			Description:     "Develop argumentation and public speaking skills",
			Schedule:        "Tuesdays and Fridays, 3:30 PM - 4:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"lucas@mergington.edu"},
		}},
		{Name: "Math Club", ActivityDetails: model.ActivityDetails{
			Description:     "Solve challenging problems and participate in math competitions",
			Schedule:        "Wednesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 14,
			Participants:    []string{"noah@mergington.edu"},
		}},
	}
}
