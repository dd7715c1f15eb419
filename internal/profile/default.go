package profile

const (
	summarizerDescription = "A web application that uses the Gemini API to summarize long articles and documents, providing quick insights."
	storefrontDescription = "A full-featured e-commerce website with product management, user authentication, and a Stripe payment integration."
	whiteboardDescription = "An interactive whiteboard application allowing multiple users to draw and brainstorm together in real-time using WebSockets."
)

var example = Profile{
	Name:         "Alex Doe",
	Title:        "Full-Stack Developer & AI Enthusiast",
	ContactEmail: "alex.doe@email.com",
	Socials: Socials{
		GitHub:   "https://github.com",
		LinkedIn: "https://linkedin.com",
		Drive:    "https://drive.google.com",
	},
	Skills: []Skill{
		{Name: "JavaScript (ES6+)", Description: "Expert in modern JavaScript, including asynchronous patterns."},
		{Name: "React & Next.js", Description: "Building scalable and performant web applications."},
		{Name: "Node.js & Express", Description: "Creating robust and secure server-side applications."},
		{Name: "UI/UX Design", Description: "Focus on user-centric design principles and wireframing."},
		{Name: "Gemini API", Description: "Integrating cutting-edge AI models into applications."},
		{Name: "Cloud & DevOps", Description: "Experience with AWS, Docker, and CI/CD pipelines."},
	},
	Certifications: []string{
		"Google Certified Professional Cloud Architect",
		"AWS Certified Solutions Architect - Associate",
		"Certified Kubernetes Application Developer (CKAD)",
	},
	Projects: []Project{
		{
			Title:       "AI-Powered Content Summarizer",
			Description: summarizerDescription,
			Tags:        []string{"React", "Node.js", "Gemini API", "Material UI"},
			LiveURL:     "#",
			SourceURL:   "#",
			DriveURL:    "#",
		},
		{
			Title:       "E-commerce Platform",
			Description: storefrontDescription,
			Tags:        []string{"Next.js", "MongoDB", "Stripe API", "Tailwind CSS"},
			LiveURL:     "#",
			SourceURL:   "#",
			DriveURL:    "#",
		},
		{
			Title:       "Real-time Collaborative Whiteboard",
			Description: whiteboardDescription,
			Tags:        []string{"React", "Express", "Socket.IO", "Canvas API"},
			LiveURL:     "#",
			SourceURL:   "#",
			DriveURL:    "#",
		},
	},
	JobHistory: []Job{
		{
			Company:     "Tech Solutions Inc.",
			Title:       "Senior Frontend Engineer",
			Date:        "Jan 2021 - Present",
			Description: "Leading the development of a new client-facing dashboard. Mentoring junior developers and improving code quality across the team.",
		},
		{
			Company:     "Innovate Co.",
			Title:       "Software Developer",
			Date:        "Jun 2018 - Dec 2020",
			Description: "Developed and maintained features for a large-scale SaaS application. Collaborated with product managers to define project requirements.",
		},
	},
	Accomplishments: []string{
		"Speaker at DevConf 2023 on 'The Future of AI in Web Dev'.",
		"Winner of the 2022 Internal Company Hackathon.",
		"Contributed to several open-source projects.",
	},
}

// Default returns the built-in profile. Each call gets its own copy.
func Default() Profile {
	return example.Clone()
}
