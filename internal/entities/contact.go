package entities

// ContactNotification is the payload behind one outbound email. Lesson
// fields are optional; when all four are set the notification is treated as
// a lesson-booking inquiry rather than a general one.
type ContactNotification struct {
	Name    string
	Phone   string
	Email   string
	Message string

	LessonDate     string
	LessonTime     string
	LessonDuration string
	LessonPrice    string
}

// IsLessonInquiry reports whether every lesson field is present.
func (n ContactNotification) IsLessonInquiry() bool {
	return n.LessonDate != "" && n.LessonTime != "" && n.LessonDuration != "" && n.LessonPrice != ""
}
