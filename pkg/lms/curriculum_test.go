package lms

import "testing"

func sampleCurriculum() *Curriculum {
	return &Curriculum{
		Count: 6,
		Results: []CurriculumItem{
			{Class: "chapter", ID: 100, Title: "Intro to GPUs"},
			{Class: "lecture", ID: 101, Title: "Welcome", Asset: &Asset{AssetType: "Video"}},
			{Class: "lecture", ID: 102, Title: "Slides", Asset: &Asset{AssetType: "File"}},
			{Class: "quiz", ID: 103, Title: ""},
			{Class: "chapter", ID: 200, Title: "Setup"},
			{Class: "lecture", ID: 201, Title: "Installing CUDA", Asset: &Asset{AssetType: "Video"}},
		},
	}
}

func TestParseCurriculum(t *testing.T) {
	categories := map[int]string{1: "gpu-hardware", 2: "setup"}
	categoryFor := func(s int) string { return categories[s] }

	items, videos := ParseCurriculum(sampleCurriculum(), categoryFor)

	if len(items) != 4 {
		t.Fatalf("items = %d, want 4", len(items))
	}
	if len(videos) != 2 {
		t.Fatalf("videos = %d, want 2", len(videos))
	}

	first := items[0]
	if first.Section != 1 || first.Lecture != 1 || first.Type != "lecture" {
		t.Errorf("first item = %+v", first)
	}
	if first.SectionTitle != "Intro to GPUs" || first.Category != "gpu-hardware" {
		t.Errorf("first item metadata = %+v", first)
	}

	// Quiz numbering continues within the section and defaults its title.
	quiz := items[2]
	if quiz.Type != "quiz" || quiz.Lecture != 3 || quiz.Title != "Quiz" || quiz.AssetType != "Quiz" {
		t.Errorf("quiz item = %+v", quiz)
	}

	// A new chapter resets the lecture counter.
	second := items[3]
	if second.Section != 2 || second.Lecture != 1 || second.Category != "setup" {
		t.Errorf("second section item = %+v", second)
	}

	// Only Video assets become video lectures.
	if videos[0].ID != 101 || videos[1].ID != 201 {
		t.Errorf("videos = %+v", videos)
	}
	if videos[1].Section != 2 || videos[1].Lecture != 1 {
		t.Errorf("video numbering = %+v", videos[1])
	}
}

func TestParseCurriculumEmpty(t *testing.T) {
	items, videos := ParseCurriculum(&Curriculum{}, func(int) string { return "" })
	if len(items) != 0 || len(videos) != 0 {
		t.Errorf("empty curriculum should yield nothing, got %d items, %d videos", len(items), len(videos))
	}
}

func TestParseCurriculumLectureWithoutAsset(t *testing.T) {
	cur := &Curriculum{Results: []CurriculumItem{
		{Class: "chapter", Title: "S1"},
		{Class: "lecture", ID: 1, Title: "No asset"},
	}}
	items, videos := ParseCurriculum(cur, func(int) string { return "misc" })
	if len(items) != 1 || items[0].AssetType != "Unknown" {
		t.Errorf("items = %+v", items)
	}
	if len(videos) != 0 {
		t.Errorf("lecture without video asset should not be a video, got %+v", videos)
	}
}
