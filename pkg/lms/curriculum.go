package lms

// ParseCurriculum flattens a raw curriculum into ordered items and the
// subset of video lectures. Chapters open a new section and reset the
// per-section lecture counter; lectures and quizzes are numbered within
// their section. categoryFor resolves the content category for a section
// number (see course.Config.CategoryFor).
func ParseCurriculum(cur *Curriculum, categoryFor func(section int) string) ([]Item, []VideoLecture) {
	var (
		items  []Item
		videos []VideoLecture

		section      int
		lecture      int
		sectionTitle string
	)

	for _, raw := range cur.Results {
		switch raw.Class {
		case "chapter":
			section++
			lecture = 0
			sectionTitle = raw.Title

		case "lecture":
			lecture++
			assetType := "Unknown"
			if raw.Asset != nil && raw.Asset.AssetType != "" {
				assetType = raw.Asset.AssetType
			}
			items = append(items, Item{
				Type:         "lecture",
				Section:      section,
				Lecture:      lecture,
				ID:           raw.ID,
				Title:        raw.Title,
				AssetType:    assetType,
				SectionTitle: sectionTitle,
				Category:     categoryFor(section),
			})
			if assetType == "Video" {
				videos = append(videos, VideoLecture{
					Section: section,
					Lecture: lecture,
					ID:      raw.ID,
					Title:   raw.Title,
				})
			}

		case "quiz":
			lecture++
			title := raw.Title
			if title == "" {
				title = "Quiz"
			}
			items = append(items, Item{
				Type:         "quiz",
				Section:      section,
				Lecture:      lecture,
				ID:           raw.ID,
				Title:        title,
				AssetType:    "Quiz",
				SectionTitle: sectionTitle,
				Category:     categoryFor(section),
			})
		}
	}

	return items, videos
}
