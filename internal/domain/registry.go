package domain

// Topic describes one of the fixed subject-matter categories that group
// performance and weakness tracking. The registry is descriptive only;
// the store accepts any string as a topic key.
type Topic struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Color       string `json:"color"`
}

// Tool describes one of the practice activities that report results into
// the shared store. Page is the UI entry point for the tool and is not
// interpreted by this layer.
type Tool struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Page        string `json:"page"`
}

// Topics is the fixed registry of subject areas.
var Topics = []Topic{
	{ID: "pharmacology", DisplayName: "Pharmacology", Color: "#7c3aed"},
	{ID: "dosage-calc", DisplayName: "Dosage Calculations", Color: "#2563eb"},
	{ID: "pharmacy-law", DisplayName: "Pharmacy Law", Color: "#dc2626"},
	{ID: "sterile-compounding", DisplayName: "Sterile Compounding", Color: "#059669"},
	{ID: "top-drugs", DisplayName: "Top 200 Drugs", Color: "#d97706"},
}

// Tools is the fixed registry of practice tools.
var Tools = []Tool{
	{ID: "flashcards", DisplayName: "Flashcards", Page: "flashcards.html"},
	{ID: "mcq-quiz", DisplayName: "Practice Quiz", Page: "quiz.html"},
	{ID: "dosage-trainer", DisplayName: "Dosage Trainer", Page: "dosage.html"},
	{ID: "drug-match", DisplayName: "Drug Matching", Page: "match.html"},
	{ID: "law-drill", DisplayName: "Law Drill", Page: "law.html"},
	{ID: "sig-decoder", DisplayName: "Sig Code Decoder", Page: "sig.html"},
	{ID: "compounding-sim", DisplayName: "Compounding Sim", Page: "compounding.html"},
	{ID: "brand-generic", DisplayName: "Brand / Generic", Page: "brandgeneric.html"},
	{ID: "case-studies", DisplayName: "Case Studies", Page: "cases.html"},
	{ID: "exam-sim", DisplayName: "Exam Simulator", Page: "exam.html"},
}

// TopicByID looks up a registered topic by id.
func TopicByID(id string) (Topic, bool) {
	for _, t := range Topics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

// ToolByID looks up a registered tool by id.
func ToolByID(id string) (Tool, bool) {
	for _, t := range Tools {
		if t.ID == id {
			return t, true
		}
	}
	return Tool{}, false
}

// TopicDisplayName returns the display name for a topic id, falling back
// to the raw id for unregistered topics.
func TopicDisplayName(id string) string {
	if t, ok := TopicByID(id); ok {
		return t.DisplayName
	}
	return id
}

// ToolDisplayName returns the display name for a tool id, falling back
// to the raw id for unregistered tools.
func ToolDisplayName(id string) string {
	if t, ok := ToolByID(id); ok {
		return t.DisplayName
	}
	return id
}
