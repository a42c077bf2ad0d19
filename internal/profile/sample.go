package profile

// Sample returns a filled-in demo profile, useful for trying templates
// before entering real data.
func Sample() Profile {
	return Profile{
		Name:     "John Doe",
		Title:    "Full Stack Developer",
		About:    "Passionate developer with 5+ years of experience building web applications.",
		Email:    "john.doe@example.com",
		Location: "San Francisco, CA",
		GitHub:   "https://github.com/johndoe",
		Skills:   []string{"JavaScript", "React", "Node.js", "TypeScript", "CSS", "HTML"},
		Experiences: []Experience{
			{
				Company:     "Tech Solutions Inc.",
				Position:    "Senior Developer",
				StartDate:   "2020-01",
				EndDate:     "Present",
				Description: "Leading development of web applications using React and Node.js.",
			},
		},
		Education: []Education{
			{
				Institution: "University of Technology",
				Degree:      "Bachelor of Science",
				Field:       "Computer Science",
				StartDate:   "2012-09",
				EndDate:     "2016-05",
			},
		},
		Projects: []Project{
			{
				Title:        "Task Board",
				Description:  "A realtime kanban board with drag and drop.",
				Technologies: []string{"React", "Node.js", "MongoDB"},
				Link:         "https://example.com",
			},
		},
	}
}
