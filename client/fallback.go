package client

// FallbackSnapshot is the content rendered when the API is unreachable. It is
// a value copy per call so callers can mutate their snapshot freely.
func FallbackSnapshot() Snapshot {
	return Snapshot{
		About: About{
			Title:       "Lecturer & Researcher",
			Subtitle:    "Institute of Higher Education",
			Description: "Academic leader and lecturer working across higher education, with research interests in distributed systems and applied machine learning.",
			ImageURL:    "/images/profile.webp",
		},
		Work: []WorkItem{
			{
				ID:           1,
				Title:        "Program Director - IT and Systems",
				Company:      "Institute of Higher Education",
				Period:       "2023 - Present",
				Description:  "Leading the IT and systems program: curriculum development, academic leadership and student success.",
				Skills:       "Academic Leadership, Curriculum Development, Lecturing",
				DisplayOrder: 1,
			},
			{
				ID:           2,
				Title:        "PhD Research - Distributed Systems",
				Company:      "University",
				Period:       "Current",
				Description:  "Doctoral research on security and privacy in edge computing using distributed ledger technology.",
				Skills:       "Distributed Systems, Edge Computing, Security, Research",
				DisplayOrder: 2,
			},
		},
		Publications: []Publication{
			{
				ID:           1,
				Title:        "Improving Weed Identification with Pre-trained Deep Neural Networks",
				Publisher:    "IEEE",
				Year:         2022,
				URL:          "https://example.org/publications/weeds",
				DisplayOrder: 1,
			},
			{
				ID:           2,
				Title:        "Ledger Technology and its Impact on Operational Performance of Banks",
				Publisher:    "IEEE",
				Year:         2022,
				URL:          "https://example.org/publications/ledger",
				DisplayOrder: 2,
			},
		},
		Contact: Contact{
			Email:  "hello@example.org",
			GitHub: "https://github.com/example",
		},
	}
}
