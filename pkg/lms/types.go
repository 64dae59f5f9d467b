package lms

// Curriculum is the raw curriculum response: a flat list of chapter,
// lecture, and quiz items in course order.
type Curriculum struct {
	Count   int              `json:"count"`
	Results []CurriculumItem `json:"results"`
}

// CurriculumItem is one entry of the raw curriculum. Class discriminates
// the shape: "chapter" items open a new section, "lecture" and "quiz"
// items belong to the most recent chapter.
type CurriculumItem struct {
	Class       string `json:"_class"`
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ObjectIndex int    `json:"object_index,omitempty"`
	Asset       *Asset `json:"asset,omitempty"`
}

// Asset describes a lecture's primary asset (video, article, file).
type Asset struct {
	Title     string    `json:"title"`
	AssetType string    `json:"asset_type"`
	Length    int       `json:"length,omitempty"`
	Captions  []Caption `json:"captions,omitempty"`
}

// Caption is one subtitle track attached to a video asset.
type Caption struct {
	LocaleID   string `json:"locale_id"`
	VideoLabel string `json:"video_label"`
	URL        string `json:"url"`
}

// lectureResponse is the per-lecture endpoint payload used for caption
// lookup.
type lectureResponse struct {
	Asset *Asset `json:"asset"`
}

// Item is one flattened curriculum entry with section bookkeeping and
// category metadata resolved, ready for snapshotting.
type Item struct {
	Type         string `json:"type"`
	Section      int    `json:"section"`
	Lecture      int    `json:"lecture"`
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	AssetType    string `json:"asset_type"`
	SectionTitle string `json:"section_title"`
	Category     string `json:"category"`
}

// VideoLecture is the compact shape used by scaffolding and generation.
// The short JSON keys match the snapshot format consumed by the content
// site.
type VideoLecture struct {
	Section int    `json:"s"`
	Lecture int    `json:"l"`
	ID      int64  `json:"id"`
	Title   string `json:"title"`
}
