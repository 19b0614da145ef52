package store

import "fmt"

// DanglingReference is a foreign key whose target does not exist.
type DanglingReference struct {
	Collection string `json:"collection"`
	ID         string `json:"id"`
	Field      string `json:"field"`
	Target     string `json:"target"`
}

func (r DanglingReference) String() string {
	return fmt.Sprintf("%s %s: %s %q does not exist", r.Collection, r.ID, r.Field, r.Target)
}

// Integrity lists every foreign key that points at a missing entity.
func (s State) Integrity() []DanglingReference {
	var dangling []DanglingReference
	for _, q := range s.Quotes {
		if !s.hasBook(q.BookID) {
			dangling = append(dangling, DanglingReference{Collection: "quotes", ID: q.ID, Field: "bookId", Target: q.BookID})
		}
	}
	for _, l := range s.Lessons {
		if !s.hasSubject(l.SubjectID) {
			dangling = append(dangling, DanglingReference{Collection: "lessons", ID: l.ID, Field: "subjectId", Target: l.SubjectID})
		}
	}
	for _, e := range s.StudyPlan {
		if !s.hasSubject(e.SubjectID) {
			dangling = append(dangling, DanglingReference{Collection: "studyPlan", ID: e.ID, Field: "subjectId", Target: e.SubjectID})
		}
		for _, sl := range e.Lessons {
			if !s.hasLesson(sl.LessonID) {
				dangling = append(dangling, DanglingReference{Collection: "studyPlan", ID: e.ID, Field: "lessonId", Target: sl.LessonID})
			}
		}
	}
	return dangling
}
