package models

// DocumentType classifies an uploaded course document by its extension.
type DocumentType string

const (
	DocumentTypePDF   DocumentType = "pdf"
	DocumentTypeDoc   DocumentType = "doc"
	DocumentTypeExcel DocumentType = "xlsx"
	DocumentTypePPT   DocumentType = "ppt"
	DocumentTypeImage DocumentType = "img"
	DocumentTypeOther DocumentType = "other"
)

// NoteCategory groups course notes by purpose.
type NoteCategory string

const (
	NoteCategoryLecture    NoteCategory = "lecture"
	NoteCategorySummary    NoteCategory = "summary"
	NoteCategoryExamPrep   NoteCategory = "exam_prep"
	NoteCategoryAssignment NoteCategory = "assignment"
	NoteCategoryReference  NoteCategory = "reference"
)

// DifficultyLevel grades course notes by difficulty.
type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "beginner"
	DifficultyIntermediate DifficultyLevel = "intermediate"
	DifficultyAdvanced     DifficultyLevel = "advanced"
)
